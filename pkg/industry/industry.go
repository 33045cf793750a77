// Package industry classifies a résumé into one of a fixed set of industries
// by weighted keyword voting over its free text.
package industry

import (
	"github.com/nikogura/cv-evaluator/pkg/match"
	"github.com/nikogura/cv-evaluator/pkg/resume"
)

// Industry is a classification label. It selects the factor scorers, weights
// and thresholds used for a résumé.
type Industry string

// Named industries, in classification order.
const (
	Finance                 Industry = "finance"
	Media                   Industry = "media"
	Hospitality             Industry = "hospitality"
	SocialServices          Industry = "social_services"
	CustomerService         Industry = "customer_service"
	NaturalResources        Industry = "natural_resources"
	RetailFashion           Industry = "retail_fashion"
	BeautyCosmetics         Industry = "beauty_cosmetics"
	HospitalityFood         Industry = "hospitality_food"
	ArtsEducation           Industry = "arts_education"
	ITArchitecture          Industry = "it_architecture"
	EducationAdministration Industry = "education_administration"
	MilitaryAviation        Industry = "military_aviation"
	EntryLevelService       Industry = "entry_level_service"
	FinancialServices       Industry = "financial_services"
	EntryLevelFinance       Industry = "entry_level_finance"
	BPOOperations           Industry = "bpo_operations"
)

const (
	// General is returned when no industry keyword is found.
	General Industry = "general"
	// Unknown labels reports for résumés that could not be evaluated.
	Unknown Industry = "unknown"
)

// Keyword is a phrase and the vote it casts when found.
type Keyword struct {
	Phrase string
	Weight float64
}

// Score is the total vote of one industry.
type Score struct {
	Industry Industry
	Score    float64
}

type table struct {
	industry Industry
	keywords []Keyword
}

// tables are evaluated in order; the first industry to reach the maximum wins.
//
//nolint:gochecknoglobals // Classification configuration constants
var tables = []table{
	{Finance, []Keyword{
		{"financial", 2}, {"accounting", 2}, {"audit", 2}, {"tax", 1.5},
		{"gaap", 1.5}, {"reconciliation", 1.5}, {"ledger", 1.5},
		{"accounts payable", 2}, {"accounts receivable", 2}, {"cpa", 1.5},
		{"portfolio", 1.5}, {"investment", 1.5}, {"derivative", 1.5},
	}},
	{Media, unweighted("media", "marketing", "public relations", "content")},
	{Hospitality, unweighted("hotel", "culinary", "hospitality", "guest")},
	{SocialServices, []Keyword{
		{"victim", 2}, {"advocate", 2}, {"case management", 2}, {"crisis", 1.5},
		{"social work", 2}, {"counseling", 1.5}, {"community", 1},
	}},
	{CustomerService, []Keyword{
		{"customer service", 3}, {"client relations", 2}, {"customer support", 2},
		{"call center", 1.5}, {"problem resolution", 1.5}, {"multilingual", 1.5},
		{"help desk", 1}, {"client retention", 1}, {"customer satisfaction", 1.5},
	}},
	{NaturalResources, []Keyword{
		{"natural resource", 3}, {"rangeland", 3}, {"conservation", 2.5},
		{"environmental", 2}, {"wildlife", 2}, {"forestry", 2},
		{"agriculture", 2}, {"grazing", 2.5}, {"watershed", 2},
		{"ecology", 1.5}, {"bureau of land management", 2.5},
		{"animal unit months", 2}, {"aums", 2}, {"soil", 1.5},
	}},
	{RetailFashion, []Keyword{
		{"retail", 2}, {"fashion", 2}, {"apparel", 2}, {"luxury", 1.5},
		{"merchandise", 1.5}, {"boutique", 1.5}, {"department store", 2},
		{"sales goals", 1.5}, {"client development", 1.5}, {"brand imaging", 1.5},
	}},
	{BeautyCosmetics, []Keyword{
		{"makeup", 3}, {"cosmetics", 2}, {"beauty", 2}, {"artistry", 1.5},
		{"skincare", 1.5}, {"stylist", 1.5}, {"bridal", 1}, {"makeover", 1},
		{"product knowledge", 1.5}, {"clienteling", 1.5},
	}},
	{HospitalityFood, []Keyword{
		{"food server", 3}, {"restaurant", 2}, {"pos system", 2}, {"cash handling", 2},
		{"upselling", 1.5}, {"food safety", 1.5}, {"wait staff", 1.5}, {"crew trainer", 1.5},
		{"casino", 1}, {"barista", 1}, {"bartender", 1},
	}},
	{ArtsEducation, []Keyword{
		{"art education", 3}, {"curriculum", 2}, {"teaching", 2}, {"lesson plan", 2},
		{"art instructor", 2}, {"classroom", 1.5}, {"student", 1.5}, {"pedagogy", 1.5},
		{"ceramics", 1}, {"photography", 1}, {"visual arts", 1},
	}},
	{ITArchitecture, []Keyword{
		{"mdm", 3}, {"master data management", 3}, {"architecture", 2},
		{"tibco", 2}, {"solution design", 2}, {"enterprise", 1.5},
		{"integration", 1.5}, {"data modeling", 1.5}, {"technical lead", 1.5},
	}},
	{EducationAdministration, []Keyword{
		{"principal", 3}, {"deputy principal", 3}, {"education administration", 2},
		{"school improvement", 2}, {"curriculum", 1.5}, {"policy development", 1.5},
		{"budget management", 1.5}, {"staff evaluation", 1.5}, {"academic leadership", 1.5},
	}},
	{MilitaryAviation, []Keyword{
		{"aviation", 3}, {"warrant officer", 3}, {"pilot", 2}, {"flight", 2},
		{"standardization", 1.5}, {"aircrew", 1.5}, {"rotary-wing", 1.5},
		{"combat", 1}, {"medevac", 1}, {"nvg", 1},
	}},
	{EntryLevelService, []Keyword{
		{"customer service", 3}, {"retail", 2}, {"food service", 2},
		{"security", 1.5}, {"warehouse", 1.5}, {"forklift", 1},
		{"cashier", 1}, {"call center", 1}, {"shift manager", 1},
	}},
	{FinancialServices, []Keyword{
		{"vice president", 3}, {"portfolio", 2}, {"underwrote", 2},
		{"fannie mae", 1.5}, {"freddie mac", 1.5}, {"treasury", 1.5},
		{"loan production", 1.5}, {"credit union", 1}, {"small business banking", 2},
	}},
	{EntryLevelFinance, []Keyword{
		{"internship", 2}, {"assistant", 2}, {"graduate", 1.5},
		{"entry level", 2}, {"financial modeling", 1.5}, {"analysis", 1.5},
		{"student", 1}, {"master", 1}, {"bachelor", 1},
	}},
	{BPOOperations, []Keyword{
		{"bpo", 3}, {"call center", 2}, {"operations management", 2},
		{"kpi", 1.5}, {"sales performance", 1.5}, {"conversion metrics", 1.5},
		{"p&l", 1}, {"gross margin", 1}, {"direct sales", 1.5},
	}},
}

func unweighted(phrases ...string) (keywords []Keyword) {
	keywords = make([]Keyword, 0, len(phrases))
	for _, phrase := range phrases {
		keywords = append(keywords, Keyword{Phrase: phrase, Weight: 1})
	}
	return keywords
}

// All returns the named industries in classification order. General and Unknown are not included.
func All() (industries []Industry) {
	industries = make([]Industry, 0, len(tables))
	for _, t := range tables {
		industries = append(industries, t.industry)
	}
	return industries
}

// Known reports whether name is a named industry or General.
func Known(name string) (known bool) {
	if Industry(name) == General {
		known = true
		return known
	}
	for _, t := range tables {
		if string(t.industry) == name {
			known = true
			return known
		}
	}
	return known
}

// ClassificationText is the lower-cased summary, experience descriptions and skills the classifier reads.
func ClassificationText(record *resume.Record) (text string) {
	parts := []string{record.Summary}
	parts = append(parts, record.Descriptions()...)
	parts = append(parts, record.Skills...)
	text = match.Join(parts...)
	return text
}

// Scores returns the vote of every named industry for text, in classification order.
func Scores(text string) (scores []Score) {
	scores = make([]Score, 0, len(tables))
	for _, t := range tables {
		var total float64
		for _, kw := range t.keywords {
			if match.Contains(text, kw.Phrase) {
				total += kw.Weight
			}
		}
		scores = append(scores, Score{Industry: t.industry, Score: total})
	}
	return scores
}

// ClassifyText picks the industry with the highest vote. Ties go to the
// industry listed first; a zero vote everywhere yields General.
func ClassifyText(text string) (industry Industry) {
	industry = General
	var best float64
	for _, s := range Scores(text) {
		if s.Score > best {
			best = s.Score
			industry = s.Industry
		}
	}
	return industry
}

// Classify returns the industry of a résumé.
func Classify(record *resume.Record) (industry Industry) {
	industry = ClassifyText(ClassificationText(record))
	return industry
}
