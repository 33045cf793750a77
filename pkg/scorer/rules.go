package scorer

import "github.com/nikogura/cv-evaluator/pkg/feedback"

// Industry feedback rules, applied in order after the base rules.
//
//nolint:gochecknoglobals // Feedback configuration constants
var (
	financeRules = []feedback.Rule{
		feedback.Below("technical_skills_score", 60, "Highlight more technical finance skills like risk management and compliance"),
	}

	mediaRules = []feedback.Rule{
		feedback.Below("creativity_score", 50, "Could showcase more creative work examples"),
		feedback.Below("project_management_score", 50, "Consider emphasizing project leadership and delivery"),
	}

	hospitalityRules = []feedback.Rule{
		feedback.Below("customer_service_score", 70, "Could highlight more guest service achievements"),
		feedback.Below("operations_score", 50, "Consider emphasizing operations and team management experience"),
	}

	socialServicesRules = []feedback.Rule{
		feedback.Below("case_management_score", 60, "Could emphasize case management experience more"),
		feedback.Below("crisis_intervention_score", 50, "Consider highlighting crisis intervention experience"),
	}

	customerServiceRules = []feedback.Rule{
		feedback.Below("customer_service_score", 65, "Could showcase more customer service achievements"),
		feedback.Below("problem_solving_score", 50, "Highlight more problem-solving examples"),
		feedback.Below("customer_relations_score", 60, "Could highlight more customer service achievements"),
		feedback.Below("multilingual_score", 50, "Consider emphasizing multilingual capabilities"),
	}

	naturalResourcesRules = []feedback.Rule{
		feedback.Below("field_experience_score", 60, "Could emphasize more field experience and hands-on work"),
		feedback.Below("regulatory_knowledge_score", 50, "Consider highlighting specific regulatory knowledge and compliance experience"),
		feedback.Below("technical_skills_score", 50, "Showcase more technical skills like GIS and data management"),
	}

	retailFashionRules = []feedback.Rule{
		feedback.Below("sales_performance_score", 60, "Could highlight more quantifiable sales achievements"),
		feedback.Below("team_leadership_score", 50, "Consider emphasizing team development and leadership examples"),
		feedback.Below("business_development_score", 50, "Could showcase more business growth initiatives"),
	}

	beautyCosmeticsRules = []feedback.Rule{
		feedback.Below("artistry_skills_score", 60, "Could highlight more specific artistry skills and techniques"),
		feedback.Below("product_knowledge_score", 50, "Consider emphasizing product knowledge and training"),
		feedback.Below("creativity_score", 50, "Could showcase more creative work examples"),
	}

	hospitalityFoodRules = []feedback.Rule{
		feedback.Below("food_safety_score", 60, "Could highlight more food safety and sanitation experience"),
		feedback.Below("pos_systems_score", 50, "Consider emphasizing POS system proficiency"),
		feedback.Below("upselling_score", 50, "Could showcase more upselling and sales achievements"),
		feedback.Below("teamwork_score", 50, "Consider adding more teamwork and training examples"),
	}

	artsEducationRules = []feedback.Rule{
		feedback.Below("curriculum_development_score", 60, "Could highlight more curriculum development experience"),
		feedback.Below("teaching_experience_score", 50, "Consider emphasizing years of teaching experience"),
		feedback.Below("artistic_skills_score", 50, "Could showcase more diverse artistic skills"),
		feedback.Below("technology_integration_score", 50, "Consider adding more technology integration examples"),
	}

	itArchitectureRules = []feedback.Rule{
		feedback.Below("technical_skills_score", 60, "Could highlight more specific technical skills and certifications"),
		feedback.Below("project_management_score", 50, "Consider emphasizing project delivery and timeline management"),
		feedback.Below("team_leadership_score", 50, "Could showcase more team leadership and mentoring examples"),
		feedback.Below("solution_design_score", 50, "Consider adding more solution architecture and design examples"),
	}

	educationAdministrationRules = []feedback.Rule{
		feedback.Below("leadership_score", 60, "Could highlight more leadership initiatives and strategic decisions"),
		feedback.Below("policy_implementation_score", 50, "Consider emphasizing policy development and implementation"),
		feedback.Below("budget_management_score", 50, "Could showcase more budget management and fiscal oversight"),
		feedback.Below("staff_development_score", 50, "Consider adding more staff development and training examples"),
	}

	militaryAviationRules = []feedback.Rule{
		feedback.Below("technical_skills_score", 60, "Could highlight more specific aviation technical skills and certifications"),
		feedback.Below("leadership_score", 50, "Consider emphasizing leadership roles and team management"),
		feedback.Below("training_development_score", 50, "Could showcase more training development and instruction examples"),
		feedback.Below("safety_compliance_score", 50, "Consider adding more safety and compliance examples"),
	}

	entryLevelServiceRules = []feedback.Rule{
		feedback.Below("customer_service_score", 60, "Could highlight more customer service achievements and skills"),
		feedback.Below("teamwork_score", 50, "Consider emphasizing teamwork and collaboration examples"),
		feedback.Below("multitasking_score", 50, "Could showcase more multitasking abilities"),
		feedback.Below("technical_skills_score", 50, "Consider adding more technical skills and systems experience"),
	}

	financialServicesRules = []feedback.Rule{
		feedback.Below("financial_analysis_score", 60, "Could highlight more financial analysis and modeling experience"),
		feedback.Below("client_management_score", 50, "Consider emphasizing client relationship management examples"),
		feedback.Below("regulatory_compliance_score", 50, "Could showcase more regulatory compliance knowledge"),
		feedback.Below("portfolio_management_score", 50, "Consider adding more portfolio management examples"),
	}

	entryLevelFinanceRules = []feedback.Rule{
		feedback.Below("financial_analysis_score", 60, "Could highlight more financial analysis and research projects"),
		feedback.Below("academic_achievement_score", 50, "Consider emphasizing academic achievements and coursework"),
		feedback.Below("technical_skills_score", 50, "Could showcase more technical skills like Excel modeling"),
		feedback.Below("client_service_score", 50, "Consider adding more client service examples"),
	}

	bpoOperationsRules = []feedback.Rule{
		feedback.Below("operations_management_score", 60, "Could highlight more operations management experience"),
		feedback.Below("team_leadership_score", 50, "Consider emphasizing team leadership and staff development"),
		feedback.Below("performance_metrics_score", 50, "Could showcase more performance metrics and KPI improvements"),
		feedback.Below("client_management_score", 50, "Consider adding more client management examples"),
	}
)
