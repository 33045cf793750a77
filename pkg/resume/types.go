package resume

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Section names as they appear at the top level of a résumé document.
const (
	SectionSummary         = "summary"
	SectionExperience      = "experience"
	SectionEducation       = "education"
	SectionSkills          = "skills"
	SectionAccomplishments = "accomplishments"
)

//nolint:gochecknoglobals // Canonical section order for records built in code
var defaultSectionOrder = []string{
	SectionSummary,
	SectionExperience,
	SectionEducation,
	SectionSkills,
	SectionAccomplishments,
}

// Record is a résumé already parsed into fields by an upstream extractor.
// Any field may be missing; absence is treated as empty.
type Record struct {
	Summary         string            `json:"summary" yaml:"summary"`
	Experience      []ExperienceEntry `json:"experience" yaml:"experience"`
	Education       []EducationEntry  `json:"education" yaml:"education"`
	Skills          []string          `json:"skills" yaml:"skills"`
	Accomplishments []string          `json:"accomplishments" yaml:"accomplishments"`

	// SectionOrder is the lower-cased top-level key order of the source document.
	SectionOrder []string `json:"-" yaml:"-"`
}

// ExperienceEntry is one position held.
type ExperienceEntry struct {
	Title       string `json:"title" yaml:"title"`
	Company     string `json:"company" yaml:"company"`
	Duration    string `json:"duration" yaml:"duration"`
	Description string `json:"description" yaml:"description"`
}

// EducationEntry is one degree or course of study.
type EducationEntry struct {
	Degree      string `json:"degree" yaml:"degree"`
	Institution string `json:"institution" yaml:"institution"`
	Year        string `json:"year" yaml:"year"`
	Description string `json:"description" yaml:"description"`
}

// recordFields avoids recursing into the custom unmarshalers.
type recordFields Record

// UnmarshalJSON decodes the record and remembers the order of its top-level keys.
func (r *Record) UnmarshalJSON(data []byte) (err error) {
	if string(bytes.TrimSpace(data)) == "null" {
		return err
	}

	var fields recordFields
	err = json.Unmarshal(data, &fields)
	if err != nil {
		return err
	}

	var order []string
	order, err = jsonKeyOrder(data)
	if err != nil {
		return err
	}

	*r = Record(fields)
	r.SectionOrder = order
	return err
}

// UnmarshalYAML decodes the record and remembers the order of its top-level keys.
// Section keys match case-insensitively, as they do for JSON.
func (r *Record) UnmarshalYAML(node *yaml.Node) (err error) {
	node = lowerKeys(node)

	var fields recordFields
	err = node.Decode(&fields)
	if err != nil {
		return err
	}

	*r = Record(fields)
	r.SectionOrder = yamlKeyOrder(node)
	return err
}

// Sections returns the top-level section order. Records built in code list
// their non-empty sections in canonical order.
func (r *Record) Sections() (sections []string) {
	if len(r.SectionOrder) > 0 {
		sections = r.SectionOrder
		return sections
	}
	for _, name := range defaultSectionOrder {
		if r.HasSection(name) {
			sections = append(sections, name)
		}
	}
	return sections
}

// HasSection reports whether the named section is present and non-empty.
func (r *Record) HasSection(name string) (present bool) {
	switch name {
	case SectionSummary:
		present = r.Summary != ""
	case SectionExperience:
		present = len(r.Experience) > 0
	case SectionEducation:
		present = len(r.Education) > 0
	case SectionSkills:
		present = len(r.Skills) > 0
	case SectionAccomplishments:
		present = len(r.Accomplishments) > 0
	}
	return present
}

// Descriptions returns every experience description in order.
func (r *Record) Descriptions() (descriptions []string) {
	descriptions = make([]string, 0, len(r.Experience))
	for _, exp := range r.Experience {
		descriptions = append(descriptions, exp.Description)
	}
	return descriptions
}

func jsonKeyOrder(data []byte) (keys []string, err error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	var tok json.Token
	tok, err = dec.Token()
	if err != nil {
		err = errors.Wrap(err, "failed to read record")
		return keys, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		err = errors.New("record must be a JSON object")
		return keys, err
	}

	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			err = errors.Wrap(err, "failed to read record key")
			return keys, err
		}
		key, _ := tok.(string)
		keys = append(keys, strings.ToLower(key))

		var skip json.RawMessage
		err = dec.Decode(&skip)
		if err != nil {
			err = errors.Wrapf(err, "failed to read value of %s", key)
			return keys, err
		}
	}

	return keys, err
}

func yamlKeyOrder(node *yaml.Node) (keys []string) {
	if node.Kind != yaml.MappingNode {
		return keys
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		keys = append(keys, strings.ToLower(node.Content[i].Value))
	}
	return keys
}

// lowerKeys returns a copy of a mapping node with lower-cased keys.
func lowerKeys(node *yaml.Node) (lowered *yaml.Node) {
	if node.Kind != yaml.MappingNode {
		lowered = node
		return lowered
	}

	copied := *node
	copied.Content = make([]*yaml.Node, len(node.Content))
	for i, child := range node.Content {
		if i%2 == 0 {
			key := *child
			key.Value = strings.ToLower(child.Value)
			child = &key
		}
		copied.Content[i] = child
	}
	lowered = &copied
	return lowered
}
