// Package requirements holds the job requirements a résumé is checked against.
//
// A Requirements value is never mutated once built. Merge returns a new value
// with overrides applied on top of the receiver.
package requirements

import (
	"os"
	"slices"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Education levels, lowest first.
const (
	LevelAssociate = "associate"
	LevelBachelor  = "bachelor"
	LevelMaster    = "master"
	LevelPhD       = "phd"
)

// ErrUnknownEducationLevel is returned by Validate for a level outside the known ranking.
var ErrUnknownEducationLevel = errors.New("unknown education level")

//nolint:gochecknoglobals // Education ranking
var educationLevels = []string{LevelAssociate, LevelBachelor, LevelMaster, LevelPhD}

// Requirements are the criteria a batch of résumés is evaluated against.
type Requirements struct {
	RequiredSections        []string                      `mapstructure:"required_sections" yaml:"required_sections" json:"required_sections"`
	MinExperienceYears      float64                       `mapstructure:"min_experience_years" yaml:"min_experience_years" json:"min_experience_years"`
	RequiredSkills          []string                      `mapstructure:"required_skills" yaml:"required_skills" json:"required_skills"`
	EducationLevel          string                        `mapstructure:"education_level" yaml:"education_level" json:"education_level,omitempty"`
	Keywords                []string                      `mapstructure:"keywords" yaml:"keywords" json:"keywords"`
	PreferredIndustries     []string                      `mapstructure:"preferred_industries" yaml:"preferred_industries" json:"preferred_industries"`
	IndustrySpecificWeights map[string]map[string]float64 `mapstructure:"industry_specific_weights" yaml:"industry_specific_weights" json:"industry_specific_weights"`
}

// Default returns the baseline requirements.
func Default() (reqs Requirements) {
	reqs = Requirements{
		RequiredSections:        []string{"summary", "experience", "education", "skills"},
		MinExperienceYears:      2,
		RequiredSkills:          []string{},
		Keywords:                []string{},
		PreferredIndustries:     []string{},
		IndustrySpecificWeights: defaultIndustryWeights(),
	}
	return reqs
}

// Merge applies overrides to a copy of r. Keys that are not requirement
// fields are ignored. industry_specific_weights is merged per industry and
// per factor instead of being replaced.
func (r Requirements) Merge(overrides map[string]any) (merged Requirements, err error) {
	merged = r.clone()
	if len(overrides) == 0 {
		return merged, err
	}

	known := make(map[string]any, len(overrides))
	for key, value := range overrides {
		if isField(key) {
			known[key] = value
		}
	}

	var patch Requirements
	cfg := &mapstructure.DecoderConfig{
		Result:           &patch,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
	}

	var decoder *mapstructure.Decoder
	decoder, err = mapstructure.NewDecoder(cfg)
	if err != nil {
		err = errors.Wrap(err, "failed to create requirements decoder")
		return merged, err
	}

	err = decoder.Decode(known)
	if err != nil {
		err = errors.Wrap(err, "failed to decode requirements")
		return merged, err
	}

	for key := range known {
		switch key {
		case "required_sections":
			merged.RequiredSections = patch.RequiredSections
		case "min_experience_years":
			merged.MinExperienceYears = patch.MinExperienceYears
		case "required_skills":
			merged.RequiredSkills = patch.RequiredSkills
		case "education_level":
			merged.EducationLevel = normalizeLevel(patch.EducationLevel)
		case "keywords":
			merged.Keywords = patch.Keywords
		case "preferred_industries":
			merged.PreferredIndustries = patch.PreferredIndustries
		case "industry_specific_weights":
			for industry, factors := range patch.IndustrySpecificWeights {
				if merged.IndustrySpecificWeights[industry] == nil {
					merged.IndustrySpecificWeights[industry] = map[string]float64{}
				}
				for factor, weight := range factors {
					merged.IndustrySpecificWeights[industry][factor] = weight
				}
			}
		}
	}

	return merged, err
}

// Validate rejects requirements that cannot be compared against.
func (r Requirements) Validate() (err error) {
	if r.MinExperienceYears < 0 {
		err = errors.Errorf("min_experience_years must not be negative, got %v", r.MinExperienceYears)
		return err
	}

	if r.EducationLevel != "" {
		if _, ok := EducationRank(r.EducationLevel); !ok {
			err = errors.Wrapf(ErrUnknownEducationLevel, "%q", r.EducationLevel)
			return err
		}
	}

	return err
}

// EducationRank returns the position of level in the ranking associate < bachelor < master < phd.
func EducationRank(level string) (rank int, ok bool) {
	level = normalizeLevel(level)
	for i, known := range educationLevels {
		if known == level {
			rank = i
			ok = true
			return rank, ok
		}
	}
	rank = -1
	return rank, ok
}

// Parse decodes a JSON or YAML requirements document into an override map.
func Parse(data []byte) (overrides map[string]any, err error) {
	err = yaml.Unmarshal(data, &overrides)
	if err != nil {
		err = errors.Wrap(err, "failed to parse requirements")
		return overrides, err
	}
	return overrides, err
}

// Load reads a requirements document and merges it over the defaults.
func Load(path string) (reqs Requirements, err error) {
	var data []byte
	data, err = os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read requirements file: %s", path)
		return reqs, err
	}

	var overrides map[string]any
	overrides, err = Parse(data)
	if err != nil {
		err = errors.Wrapf(err, "invalid requirements file: %s", path)
		return reqs, err
	}

	reqs, err = Default().Merge(overrides)
	return reqs, err
}

func isField(key string) (ok bool) {
	switch key {
	case "required_sections", "min_experience_years", "required_skills", "education_level",
		"keywords", "preferred_industries", "industry_specific_weights":
		ok = true
	}
	return ok
}

func normalizeLevel(level string) (normalized string) {
	normalized = strings.ToLower(strings.TrimSpace(level))
	if normalized == "none" {
		normalized = ""
	}
	return normalized
}

func (r Requirements) clone() (c Requirements) {
	c = r
	c.RequiredSections = slices.Clone(r.RequiredSections)
	c.RequiredSkills = slices.Clone(r.RequiredSkills)
	c.Keywords = slices.Clone(r.Keywords)
	c.PreferredIndustries = slices.Clone(r.PreferredIndustries)
	c.IndustrySpecificWeights = make(map[string]map[string]float64, len(r.IndustrySpecificWeights))
	for industry, factors := range r.IndustrySpecificWeights {
		copied := make(map[string]float64, len(factors))
		for factor, weight := range factors {
			copied[factor] = weight
		}
		c.IndustrySpecificWeights[industry] = copied
	}
	return c
}

func defaultIndustryWeights() (weights map[string]map[string]float64) {
	weights = map[string]map[string]float64{
		"finance":           {"experience": 0.35, "certifications": 0.15, "technical_skills": 0.25},
		"media":             {"creativity": 0.20, "project_management": 0.25, "technical_skills": 0.15},
		"hospitality":       {"customer_service": 0.30, "operations": 0.25, "technical_skills": 0.15},
		"social_services":   {"case_management": 0.30, "client_relations": 0.25, "crisis_intervention": 0.20},
		"natural_resources": {"field_experience": 0.35, "technical_skills": 0.25, "regulatory_knowledge": 0.20},
		"retail_fashion": {
			"sales_performance": 0.30, "team_leadership": 0.25, "customer_service": 0.25, "business_development": 0.20,
		},
		"beauty_cosmetics": {
			"artistry_skills": 0.30, "customer_service": 0.25, "sales_performance": 0.20,
			"product_knowledge": 0.15, "creativity": 0.10,
		},
		"hospitality_food": {
			"customer_service": 0.35, "food_safety": 0.20, "pos_systems": 0.15, "upselling": 0.15, "teamwork": 0.15,
		},
		"arts_education": {
			"curriculum_development": 0.30, "teaching_experience": 0.25, "artistic_skills": 0.20,
			"technology_integration": 0.15, "leadership": 0.10,
		},
		"it_architecture": {
			"technical_skills": 0.30, "project_management": 0.25, "team_leadership": 0.20,
			"solution_design": 0.15, "industry_knowledge": 0.10,
		},
		"education_administration": {
			"leadership": 0.30, "policy_implementation": 0.25, "budget_management": 0.20,
			"staff_development": 0.15, "academic_improvement": 0.10,
		},
		"military_aviation": {
			"technical_skills": 0.25, "leadership": 0.25, "training_development": 0.20,
			"safety_compliance": 0.15, "operational_experience": 0.15,
		},
		"entry_level_service": {
			"customer_service": 0.35, "teamwork": 0.25, "multitasking": 0.20,
			"technical_skills": 0.10, "safety_compliance": 0.10,
		},
		"financial_services": {
			"financial_analysis": 0.30, "client_management": 0.25, "regulatory_compliance": 0.20,
			"portfolio_management": 0.15, "technical_skills": 0.10,
		},
		"entry_level_finance": {
			"financial_analysis": 0.35, "academic_achievement": 0.25, "technical_skills": 0.20,
			"client_service": 0.15, "teamwork": 0.05,
		},
		"bpo_operations": {
			"operations_management": 0.30, "team_leadership": 0.25, "performance_metrics": 0.20,
			"client_management": 0.15, "process_improvement": 0.10,
		},
		"customer_service": {
			"customer_relations": 0.35, "multilingual": 0.20, "problem_solving": 0.20,
			"technical_skills": 0.15, "teamwork": 0.10,
		},
		"general": {"experience": 0.30, "education": 0.20, "skills": 0.20},
	}
	return weights
}
