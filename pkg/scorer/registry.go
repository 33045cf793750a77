package scorer

import (
	"github.com/nikogura/cv-evaluator/pkg/feedback"
	"github.com/nikogura/cv-evaluator/pkg/industry"
)

// Profile is everything that varies by industry.
type Profile struct {
	Industry industry.Industry
	// Factors are scored in addition to the base factors.
	Factors []Factor
	// Weights replace or add to BaseWeights.
	Weights    map[string]float64
	Thresholds Thresholds
	// Feedback rules run after the base rules.
	Feedback []feedback.Rule
	// Highlights add to the base strength labels.
	Highlights []feedback.Rule
	// SkillKeywords earn a skill the industry bonus.
	SkillKeywords []string
	// PositiveKeywords earn an experience entry the industry bonus.
	PositiveKeywords []string
	// Minimums gate the industry_specific requirement check.
	Minimums []Minimum
}

// Minimum is a factor score floor used by the industry requirement check.
type Minimum struct {
	Factor string  `json:"factor"`
	Score  float64 `json:"score"`
}

// genericMinimum applies to each of the first factors of a profile without its own minimums.
const (
	genericMinimum        = 50
	genericMinimumFactors = 3
)

// ProfileFor returns the profile of ind, or the general profile for anything unregistered.
func ProfileFor(ind industry.Industry) (profile *Profile) {
	profile, ok := registry[ind]
	if !ok {
		profile = registry[industry.General]
	}
	return profile
}

// IndustryMinimums returns the explicit minimums, or 50 on each of the first three factors.
func (p *Profile) IndustryMinimums() (minimums []Minimum) {
	if len(p.Minimums) > 0 {
		minimums = p.Minimums
		return minimums
	}
	for i, f := range p.Factors {
		if i == genericMinimumFactors {
			break
		}
		minimums = append(minimums, Minimum{Factor: f.Name, Score: genericMinimum})
	}
	return minimums
}

// MeetsMinimums reports whether every industry minimum holds. Missing factors read as 0.
func (p *Profile) MeetsMinimums(breakdown Breakdown) (meets bool) {
	meets = true
	for _, m := range p.IndustryMinimums() {
		if breakdown[m.Factor] < m.Score {
			meets = false
			return meets
		}
	}
	return meets
}

//nolint:gochecknoglobals // Scoring configuration constants
var registry = map[industry.Industry]*Profile{
	industry.General: {
		Industry:   industry.General,
		Thresholds: DefaultThresholds,
		Minimums: []Minimum{
			{Factor: ExperienceQuality, Score: genericMinimum},
			{Factor: SkillsRelevance, Score: genericMinimum},
			{Factor: EducationQuality, Score: genericMinimum},
		},
	},

	industry.Finance: {
		Industry: industry.Finance,
		Factors: []Factor{
			{Name: "technical_skills_score", Score: skillCoverage(financeSkillTerms)},
			{Name: "compliance_score", Score: coverage(complianceTerms, narrative)},
		},
		Weights: map[string]float64{
			ExperienceQuality:        0.35,
			"technical_skills_score": 0.15,
			"compliance_score":       0.10,
		},
		Thresholds: Thresholds{High: 85, Medium: 70, Low: 55},
		Feedback:   financeRules,
		Highlights: []feedback.Rule{
			feedback.AtLeast("technical_skills_score", 70, "strong technical finance skills"),
		},
		SkillKeywords: []string{"risk", "compliance", "GAAP"},
		PositiveKeywords: []string{
			"compliance", "audit", "risk assessment", "portfolio",
			"underwriting", "reconciliation", "GAAP", "financial reporting",
			"investment", "derivatives", "valuation", "exposure", "IBOR",
			"data governance", "data quality", "data architecture",
		},
		Minimums: []Minimum{
			{Factor: "technical_skills_score", Score: 60},
			{Factor: "compliance_score", Score: 50},
		},
	},

	industry.Media: {
		Industry: industry.Media,
		Factors: []Factor{
			{Name: "creativity_score", Score: accomplishmentsWith(creativeVerbs, 20)},
			{Name: "project_management_score", Score: entriesWith(projectLeadVerbs, 15)},
		},
		Weights: map[string]float64{
			"creativity_score":         0.15,
			"project_management_score": 0.10,
		},
		Thresholds:       DefaultThresholds,
		Feedback:         mediaRules,
		SkillKeywords:    []string{"content", "social media"},
		PositiveKeywords: []string{"campaign", "press release", "social media", "content creation"},
		Minimums:         []Minimum{{Factor: "creativity_score", Score: 50}},
	},

	industry.Hospitality: {
		Industry: industry.Hospitality,
		Factors: []Factor{
			{Name: "customer_service_score", Score: coverage(customerServiceTerms, withSkills)},
			{Name: "operations_score", Score: entriesWith(operationsIndicators, 15)},
		},
		Weights: map[string]float64{
			"customer_service_score": 0.20,
			"operations_score":       0.15,
		},
		Thresholds:       Thresholds{High: 75, Medium: 60, Low: 45},
		Feedback:         hospitalityRules,
		SkillKeywords:    []string{"guest", "service"},
		PositiveKeywords: []string{"guest satisfaction", "front office", "reservation"},
		Minimums:         []Minimum{{Factor: "customer_service_score", Score: 70}},
	},

	industry.SocialServices: {
		Industry: industry.SocialServices,
		Factors: []Factor{
			{Name: "case_management_score", Score: coverage(caseManagementTerms, narrative)},
			{Name: "crisis_intervention_score", Score: coverage(crisisTerms, narrative)},
			{Name: "client_relations_score", Score: coverage(clientRelationTerms, narrative)},
		},
		Weights: map[string]float64{
			"case_management_score":     0.25,
			"crisis_intervention_score": 0.20,
			"client_relations_score":    0.15,
		},
		Thresholds:    DefaultThresholds,
		Feedback:      socialServicesRules,
		SkillKeywords: []string{"case management", "crisis"},
		PositiveKeywords: []string{
			"case management", "crisis intervention", "advocacy",
			"trauma-informed", "victim services", "community outreach",
		},
		Minimums: []Minimum{
			{Factor: "case_management_score", Score: 60},
			{Factor: "crisis_intervention_score", Score: 50},
		},
	},

	industry.CustomerService: {
		Industry: industry.CustomerService,
		Factors: []Factor{
			{Name: "customer_service_score", Score: coverage(customerServiceTerms, withSkills)},
			{Name: "problem_solving_score", Score: perHit(problemSolvingTerms, 20, narrative)},
			{Name: "technical_skills_score", Score: skillCoverage(supportSoftwareTerms)},
			{Name: "customer_relations_score", Score: perHit(customerRelationTerms, 25, narrative)},
			{Name: "multilingual_score", Score: perHit(languageTerms, 25, withSkills)},
		},
		Weights: map[string]float64{
			"customer_service_score": 0.35,
			"problem_solving_score":  0.15,
			"technical_skills_score": 0.10,
		},
		Thresholds:    Thresholds{High: 75, Medium: 60, Low: 45},
		Feedback:      customerServiceRules,
		SkillKeywords: []string{"customer service", "troubleshooting"},
		PositiveKeywords: []string{
			"customer satisfaction", "problem resolution", "multilingual support",
			"client retention", "service quality", "call handling",
			"complaint management", "customer experience", "service metrics",
		},
		Minimums: []Minimum{{Factor: "customer_service_score", Score: 65}},
	},

	industry.NaturalResources: {
		Industry: industry.NaturalResources,
		Factors: []Factor{
			{Name: "field_experience_score", Score: coverage(fieldTerms, narrative)},
			{Name: "regulatory_knowledge_score", Score: coverage(regulatoryTerms, narrative)},
			{Name: "technical_skills_score", Score: skillCoverage(naturalResourceSkillTerms)},
		},
		Weights: map[string]float64{
			"field_experience_score":     0.35,
			"technical_skills_score":     0.25,
			"regulatory_knowledge_score": 0.20,
			EducationQuality:             0.20,
			ExperienceQuality:            0.25,
		},
		Thresholds: DefaultThresholds,
		Feedback:   naturalResourcesRules,
		Highlights: []feedback.Rule{
			feedback.AtLeast("field_experience_score", 70, "extensive field experience"),
		},
		SkillKeywords: []string{"ArcGIS", "TAAMs", "conservation"},
		PositiveKeywords: []string{
			"conservation", "rangeland", "watershed", "ecological",
			"regulatory", "compliance", "inventory", "assessment",
			"mitigation", "rehabilitation", "grazing", "AUMs",
			"animal unit months", "range unit", "allotment",
			"ArcGIS", "TAAMs", "noxious weed", "soil conservation",
		},
		Minimums: []Minimum{
			{Factor: "field_experience_score", Score: 70},
			{Factor: "regulatory_knowledge_score", Score: 60},
		},
	},

	industry.RetailFashion: {
		Industry: industry.RetailFashion,
		Factors: []Factor{
			{Name: "sales_performance_score", Score: patternHits(salesPatterns, 25)},
			{Name: "team_leadership_score", Score: perHit(teamLeadershipTerms, 20, narrative)},
			{Name: "business_development_score", Score: perHit(businessDevelopmentTerms, 20, narrative)},
		},
		Thresholds: DefaultThresholds,
		Feedback:   retailFashionRules,
		PositiveKeywords: []string{
			"sales growth", "client retention", "revenue increase",
			"team development", "merchandising", "visual presentation",
			"brand standards", "key holder", "inventory management",
		},
	},

	industry.BeautyCosmetics: {
		Industry: industry.BeautyCosmetics,
		Factors: []Factor{
			{Name: "artistry_skills_score", Score: coverage(artistryTerms, withSkills)},
			{Name: "product_knowledge_score", Score: perHit(productKnowledgeTerms, 25, narrative)},
			{Name: "creativity_score", Score: accomplishmentsWith(creativeVerbs, 20)},
		},
		Thresholds: DefaultThresholds,
		Feedback:   beautyCosmeticsRules,
		PositiveKeywords: []string{
			"artistry training", "product knowledge", "client consultation",
			"makeup application", "bridal makeup", "photo shoot",
			"fashion show", "counter management", "social media promotion",
		},
	},

	industry.HospitalityFood: {
		Industry: industry.HospitalityFood,
		Factors: []Factor{
			{Name: "food_safety_score", Score: perHit(foodSafetyTerms, 25, narrative)},
			{Name: "pos_systems_score", Score: perHit(posTerms, 25, withSkills)},
			{Name: "upselling_score", Score: perHit(upsellTerms, 25, narrative)},
			{Name: "teamwork_score", Score: perHit(teamworkTerms, 20, narrative)},
		},
		Thresholds: DefaultThresholds,
		Feedback:   hospitalityFoodRules,
		PositiveKeywords: []string{
			"customer satisfaction", "food handling", "sanitation",
			"point of sale", "menu knowledge", "beverage service",
			"shift supervisor", "training staff", "health codes",
		},
	},

	industry.ArtsEducation: {
		Industry: industry.ArtsEducation,
		Factors: []Factor{
			{Name: "curriculum_development_score", Score: perHit(curriculumTerms, 25, narrative)},
			{Name: "teaching_experience_score", Score: yearsAs(teachingTitles, 10)},
			{Name: "artistic_skills_score", Score: coverage(artisticTerms, withSkills)},
			{Name: "technology_integration_score", Score: perHit(classroomTechTerms, 25, narrative)},
		},
		Thresholds: DefaultThresholds,
		Feedback:   artsEducationRules,
		PositiveKeywords: []string{
			"curriculum design", "lesson planning", "student assessment",
			"art exhibition", "teaching methods", "classroom management",
			"art techniques", "visual arts", "creative development",
		},
	},

	industry.ITArchitecture: {
		Industry: industry.ITArchitecture,
		Factors: []Factor{
			{Name: "technical_skills_score", Score: coverage(architectureSkillTerms, withSkills)},
			{Name: "project_management_score", Score: entriesWith(projectLeadVerbs, 15)},
			{Name: "team_leadership_score", Score: perHit(teamLeadershipTerms, 20, narrative)},
			{Name: "solution_design_score", Score: perHit(solutionDesignTerms, 20, narrative)},
		},
		Thresholds: DefaultThresholds,
		Feedback:   itArchitectureRules,
		PositiveKeywords: []string{
			"solution architecture", "technical leadership", "system integration",
			"data governance", "project delivery", "stakeholder management",
			"performance tuning", "best practices", "enterprise systems",
		},
	},

	industry.EducationAdministration: {
		Industry: industry.EducationAdministration,
		Factors: []Factor{
			{Name: "leadership_score", Score: perHit(schoolLeadershipTerms, 25, narrative)},
			{Name: "policy_implementation_score", Score: perHit(policyTerms, 25, narrative)},
			{Name: "budget_management_score", Score: perHit(budgetTerms, 25, narrative)},
			{Name: "staff_development_score", Score: perHit(staffDevelopmentTerms, 20, narrative)},
		},
		Thresholds: DefaultThresholds,
		Feedback:   educationAdministrationRules,
		PositiveKeywords: []string{
			"student outcomes", "academic excellence", "staff development",
			"compliance management", "strategic planning", "performance metrics",
			"educational leadership", "policy implementation", "budget oversight",
		},
	},

	industry.MilitaryAviation: {
		Industry: industry.MilitaryAviation,
		Factors: []Factor{
			{Name: "technical_skills_score", Score: coverage(aviationSkillTerms, withSkills)},
			{Name: "leadership_score", Score: perHit(commandTerms, 20, narrative)},
			{Name: "training_development_score", Score: perHit(trainingTerms, 20, narrative)},
			{Name: "safety_compliance_score", Score: perHit(flightSafetyTerms, 20, narrative)},
			{Name: "operational_experience_score", Score: yearsAs(operationalTitles, 20)},
		},
		Thresholds: DefaultThresholds,
		Feedback:   militaryAviationRules,
		PositiveKeywords: []string{
			"flight hours", "instructor pilot", "mission planning",
			"safety compliance", "crew resource management",
			"standard operating procedures", "training development",
			"aerial operations", "emergency procedures",
		},
	},

	industry.EntryLevelService: {
		Industry: industry.EntryLevelService,
		Factors: []Factor{
			{Name: "customer_service_score", Score: coverage(customerServiceTerms, withSkills)},
			{Name: "teamwork_score", Score: perHit(teamworkTerms, 20, narrative)},
			{Name: "multitasking_score", Score: perHit(multitaskTerms, 25, narrative)},
			{Name: "technical_skills_score", Score: coverage(serviceToolTerms, withSkills)},
			{Name: "safety_compliance_score", Score: perHit(serviceSafetyTerms, 20, narrative)},
		},
		Thresholds: DefaultThresholds,
		Feedback:   entryLevelServiceRules,
		PositiveKeywords: []string{
			"customer satisfaction", "point of sale", "inventory management",
			"shift management", "team collaboration", "conflict resolution",
			"safety protocols", "multitasking", "process improvement",
		},
	},

	industry.FinancialServices: {
		Industry: industry.FinancialServices,
		Factors: []Factor{
			{Name: "financial_analysis_score", Score: perHit(financialAnalysisTerms, 25, narrative)},
			{Name: "client_management_score", Score: perHit(clientManagementTerms, 20, narrative)},
			{Name: "regulatory_compliance_score", Score: perHit(lendingComplianceTerms, 20, narrative)},
			{Name: "portfolio_management_score", Score: perHit(portfolioTerms, 20, narrative)},
			{Name: "technical_skills_score", Score: coverage(bankingToolTerms, withSkills)},
		},
		Thresholds: DefaultThresholds,
		Feedback:   financialServicesRules,
		PositiveKeywords: []string{
			"loan portfolio", "risk management", "regulatory compliance",
			"client acquisition", "cross-selling", "financial modeling",
			"cash flow analysis", "credit analysis", "underwriting",
		},
	},

	industry.EntryLevelFinance: {
		Industry: industry.EntryLevelFinance,
		Factors: []Factor{
			{Name: "financial_analysis_score", Score: perHit(researchTerms, 25, narrative)},
			{Name: "academic_achievement_score", Score: academicAchievement},
			{Name: "technical_skills_score", Score: coverage(officeToolTerms, withSkills)},
			{Name: "client_service_score", Score: perHit(clientServiceTerms, 20, narrative)},
			{Name: "teamwork_score", Score: perHit(teamworkTerms, 20, narrative)},
		},
		Thresholds: DefaultThresholds,
		Feedback:   entryLevelFinanceRules,
		PositiveKeywords: []string{
			"financial analysis", "academic projects", "research",
			"data analysis", "valuation", "financial statements",
			"market research", "investment analysis", "excel modeling",
		},
	},

	industry.BPOOperations: {
		Industry: industry.BPOOperations,
		Factors: []Factor{
			{Name: "operations_management_score", Score: perHit(operationsManagementTerms, 25, narrative)},
			{Name: "team_leadership_score", Score: perHit(peopleLeadershipTerms, 20, narrative)},
			{Name: "performance_metrics_score", Score: perHit(performanceMetricTerms, 20, narrative)},
			{Name: "client_management_score", Score: perHit(clientManagementTerms, 20, narrative)},
			{Name: "process_improvement_score", Score: perHit(processImprovementTerms, 20, narrative)},
		},
		Thresholds: DefaultThresholds,
		Feedback:   bpoOperationsRules,
		PositiveKeywords: []string{
			"operations management", "performance metrics", "kpi improvement",
			"team leadership", "process improvement", "client management",
			"sales conversion", "revenue growth", "profit margin",
		},
	},
}
