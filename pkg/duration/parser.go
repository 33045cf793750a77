package duration

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// DefaultFallbackMonths is what Months returns when a non-empty duration cannot be parsed.
const DefaultFallbackMonths = 12

const daysPerMonth = 30

// MaxYears bounds "<N> years" and "<N> months" counts. Anything longer is unparsable.
const MaxYears = 100

// ErrUnparsable is returned by Parse when no known duration shape is found.
var ErrUnparsable = errors.New("unparsable duration")

//nolint:gochecknoglobals // Compiled patterns
var (
	rangePattern = regexp.MustCompile(`(?i)(\d{1,2}/\d{4}|(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.? \d{4})\s*(?:to|-|–|—)\s*(\d{1,2}/\d{4}|(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.? \d{4}|present|current|now)`)
	yearsPattern  = regexp.MustCompile(`(?i)(\d+)\s*year`)
	monthsPattern = regexp.MustCompile(`(?i)(\d+)\s*month`)
)

//nolint:gochecknoglobals // Month lookup table
var monthNames = map[string]time.Month{
	"jan": time.January,
	"feb": time.February,
	"mar": time.March,
	"apr": time.April,
	"may": time.May,
	"jun": time.June,
	"jul": time.July,
	"aug": time.August,
	"sep": time.September,
	"oct": time.October,
	"nov": time.November,
	"dec": time.December,
}

// Parser converts free-text employment durations into month counts.
type Parser struct {
	// Now is the evaluation-time clock used for open-ended ranges.
	Now func() time.Time
	// FallbackMonths is returned by Months when parsing fails.
	FallbackMonths int
}

// NewParser creates a parser using the wall clock and the default fallback.
func NewParser() (parser *Parser) {
	parser = &Parser{
		Now:            time.Now,
		FallbackMonths: DefaultFallbackMonths,
	}
	return parser
}

// Months returns the duration in months, substituting the fallback for anything unparsable.
func (p *Parser) Months(input string) (months int) {
	var err error
	months, err = p.Parse(input)
	if err != nil {
		months = p.FallbackMonths
		return months
	}
	return months
}

// Parse tries a date range first, then "<N> years", then "<N> months".
// An empty input is zero months, not an error.
func (p *Parser) Parse(input string) (months int, err error) {
	if strings.TrimSpace(input) == "" {
		return months, err
	}

	var rangeErr error
	months, rangeErr = p.parseRange(input)
	if rangeErr == nil {
		return months, err
	}

	if n, ok := count(yearsPattern, input, MaxYears); ok {
		months = n * 12
		return months, err
	}

	if n, ok := count(monthsPattern, input, MaxYears*12); ok {
		months = n
		return months, err
	}

	months = 0
	err = errors.Wrapf(ErrUnparsable, "%q", input)
	return months, err
}

// count reads the number captured by pattern. Counts above limit, or too
// large for an int, are rejected.
func count(pattern *regexp.Regexp, input string, limit int) (n int, ok bool) {
	m := pattern.FindStringSubmatch(input)
	if m == nil {
		return n, ok
	}
	var err error
	n, err = strconv.Atoi(m[1])
	if err != nil || n > limit {
		n = 0
		return n, ok
	}
	ok = true
	return n, ok
}

func (p *Parser) parseRange(input string) (months int, err error) {
	m := rangePattern.FindStringSubmatch(input)
	if m == nil {
		err = errors.New("no date range")
		return months, err
	}

	var start time.Time
	start, err = parseEndpoint(m[1])
	if err != nil {
		return months, err
	}

	// "present" or "current" anywhere in the input makes the range open-ended,
	// even when a closing date is given.
	var end time.Time
	lower := strings.ToLower(input)
	if strings.Contains(lower, "present") || strings.Contains(lower, "current") || isOpenEnded(m[2]) {
		end = p.now()
	} else {
		end, err = parseEndpoint(m[2])
		if err != nil {
			return months, err
		}
	}

	if end.Before(start) {
		err = errors.Errorf("range ends before it starts: %s", m[0])
		return months, err
	}

	days := int(end.Sub(start).Hours() / 24)
	months = days / daysPerMonth
	return months, err
}

func (p *Parser) now() (now time.Time) {
	if p.Now == nil {
		now = time.Now()
		return now
	}
	now = p.Now()
	return now
}

func isOpenEnded(endpoint string) (open bool) {
	switch strings.ToLower(endpoint) {
	case "present", "current", "now":
		open = true
	}
	return open
}

// parseEndpoint accepts "MM/YYYY" or "<month name> YYYY".
func parseEndpoint(endpoint string) (date time.Time, err error) {
	var month time.Month
	var yearText string

	if before, after, found := strings.Cut(endpoint, "/"); found {
		var n int
		n, err = strconv.Atoi(before)
		if err != nil || n < 1 || n > 12 {
			err = errors.Errorf("invalid month in %q", endpoint)
			return date, err
		}
		month = time.Month(n)
		yearText = after
	} else {
		fields := strings.Fields(endpoint)
		if len(fields) != 2 || len(fields[0]) < 3 {
			err = errors.Errorf("invalid date %q", endpoint)
			return date, err
		}
		var ok bool
		month, ok = monthNames[strings.ToLower(fields[0][:3])]
		if !ok {
			err = errors.Errorf("unknown month in %q", endpoint)
			return date, err
		}
		yearText = fields[1]
	}

	var year int
	year, err = strconv.Atoi(yearText)
	if err != nil {
		err = errors.Wrapf(err, "invalid year in %q", endpoint)
		return date, err
	}

	date = time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return date, err
}
