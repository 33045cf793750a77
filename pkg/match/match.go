// Package match holds the keyword containment primitive every scorer and the
// industry classifier are built on.
//
// Matching is literal substring containment after lower-casing both sides. There
// is no stemming and no word-boundary enforcement, so short phrases such as "ea"
// also match inside longer words.
package match

import "strings"

// Contains reports whether phrase occurs in text, ignoring case.
func Contains(text, phrase string) (found bool) {
	if phrase == "" {
		return found
	}
	found = strings.Contains(strings.ToLower(text), strings.ToLower(phrase))
	return found
}

// CountHits returns how many of the phrases occur in text. Each phrase counts at most once.
func CountHits(text string, phrases []string) (hits int) {
	lower := strings.ToLower(text)
	for _, phrase := range phrases {
		if phrase == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(phrase)) {
			hits++
		}
	}
	return hits
}

// Any reports whether at least one of the phrases occurs in text.
func Any(text string, phrases []string) (found bool) {
	found = CountHits(text, phrases) > 0
	return found
}

// CountItems returns how many items contain at least one of the phrases.
func CountItems(items []string, phrases []string) (count int) {
	for _, item := range items {
		if Any(item, phrases) {
			count++
		}
	}
	return count
}

// Join concatenates the parts with single spaces and lower-cases the result.
func Join(parts ...string) (text string) {
	text = strings.ToLower(strings.Join(parts, " "))
	return text
}
