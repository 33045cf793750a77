package scorer

import "regexp"

//nolint:gochecknoglobals // Scoring configuration constants
var (
	positiveWords = []string{
		"achieved", "increased", "improved", "developed",
		"led", "managed", "created", "implemented",
		"awarded", "recognized", "quantifiable", "metrics",
		"saved", "optimized", "streamlined", "reduced",
		"resolved", "identified", "generated", "secured",
		"designed", "built", "delivered", "architected",
		"spearheaded", "pioneered", "transformed", "enhanced",
	}

	negativeWords = []string{"unemployed", "terminated", "fired", "gap", "criminal", "conviction"}

	softwareWords = []string{"quickbooks", "excel", "database", "crm", "microsoft office"}

	// metricPattern finds a dollar amount, a percentage or a stated reduction.
	metricPattern = regexp.MustCompile(`(?i)\$\d+[MBK]?|\d+\s*(%|percent)|reduced by \d+`)

	gpaPattern = regexp.MustCompile(`(?i)gpa\s*[:of]?\s*(\d\.\d+)`)
)

// Industry factor vocabularies.
//
//nolint:gochecknoglobals // Scoring configuration constants
var (
	financeSkillTerms = []string{
		"underwriting", "risk management", "compliance", "loan processing",
		"GAAP", "financial reporting", "accounts payable", "accounts receivable",
	}
	complianceTerms = []string{"compliance", "regulation", "audit", "policy", "standard"}

	creativeVerbs         = []string{"created", "developed", "produced"}
	projectLeadVerbs      = []string{"managed", "led", "supervised"}
	operationsIndicators  = []string{"operations", "managed", "team"}
	customerServiceTerms  = []string{"customer service", "client satisfaction", "guest relations"}
	caseManagementTerms   = []string{"case management", "service plan", "treatment plan", "assessment"}
	crisisTerms           = []string{"crisis", "emergency", "intervention", "trauma", "safety plan"}
	clientRelationTerms   = []string{"client", "patient", "relationship", "rapport", "trust"}
	problemSolvingTerms   = []string{"resolved", "solved", "fixed", "troubleshoot", "improved"}
	supportSoftwareTerms  = []string{"software", "system", "database", "microsoft", "spreadsheet"}
	customerRelationTerms = []string{
		"customer service", "client relations", "customer support",
		"help desk", "call center", "client retention",
		"customer satisfaction", "service quality",
	}
	languageTerms = []string{"english", "spanish", "french", "german", "portuguese", "mandarin", "hindi", "arabic"}

	fieldTerms = []string{
		"field work", "inventory", "assessment", "monitoring",
		"inspection", "compliance check", "range unit", "allotment",
		"AUMs", "animal unit months", "grazing", "conservation",
		"watershed", "ecological", "rehabilitation",
	}
	regulatoryTerms = []string{
		"regulation", "compliance", "policy", "code of federal",
		"CFR", "legal", "permit", "authorization", "resolution",
		"mitigation", "environmental assessment", "EA", "NEPA",
	}
	naturalResourceSkillTerms = []string{
		"ArcGIS", "TAAMs", "GPS", "Trimble", "Garmin",
		"range management", "soil conservation", "watershed",
		"ecological", "inventory", "monitoring", "compliance",
		"regulatory", "environmental", "conservation",
	}

	salesPatterns = []*regexp.Regexp{
		regexp.MustCompile(`increased (sales|revenue|business) by \d+%`),
		regexp.MustCompile(`\$\d+ (million|thousand)`),
		regexp.MustCompile(`achieved \d+% of sales goal`),
		regexp.MustCompile(`top sales`),
		regexp.MustCompile(`exceeded target`),
	}
	teamLeadershipTerms = []string{
		"team building", "coach", "train", "mentor", "develop",
		"lead by example", "performance feedback", "empower",
		"motivate", "groom for succession",
	}
	businessDevelopmentTerms = []string{
		"business growth", "expand", "develop", "new market",
		"vendor relations", "brand awareness", "community relations",
		"strategic plan", "maximize opportunities",
	}

	artistryTerms = []string{
		"makeup application", "hair styling", "airbrushing",
		"special effects", "prosthetics", "digital design",
		"face chart", "photo shoot", "fashion show",
	}
	productKnowledgeTerms = []string{
		"product knowledge", "ingredients", "brand training",
		"schooling sessions", "artistry training", "certification",
	}

	foodSafetyTerms = []string{"food safety", "sanitation", "health codes", "hygiene", "cleanliness", "food handling"}
	posTerms        = []string{"pos system", "point of sale", "cash register", "order processing", "payment processing"}
	upsellTerms     = []string{
		"upsell", "up-sell", "increase sales",
		"additional items", "promote specials", "suggestive selling",
	}
	teamworkTerms = []string{
		"teamwork", "crew", "collaborate",
		"work well with others", "team player",
		"training staff", "mentor",
	}

	curriculumTerms = []string{
		"curriculum design", "lesson planning", "educational standards",
		"rubric", "assessment", "learning objectives",
	}
	teachingTitles = []string{"instructor", "teacher"}
	artisticTerms  = []string{
		"photography", "ceramics", "painting",
		"drawing", "sculpture", "printmaking",
		"graphic design", "digital art", "mixed media",
	}
	classroomTechTerms = []string{
		"technology integration", "computer lab", "digital tools",
		"software", "multimedia", "interactive", "online resources",
	}

	architectureSkillTerms = []string{
		"tibco mdm", "data modeling", "oracle", "sql server",
		"java", "j2ee", "xml", "ems", "business events",
		"integration", "data quality", "patterns",
	}
	solutionDesignTerms = []string{
		"solution design", "architecture", "technical design",
		"system architecture", "workflows", "rule bases",
		"integration design", "data flow",
	}

	schoolLeadershipTerms = []string{
		"principal", "deputy principal", "director",
		"school leadership", "campus management",
		"strategic planning", "decision making",
	}
	policyTerms = []string{
		"policy development", "compliance", "state laws",
		"federal requirements", "education code",
		"board policy", "regulations",
	}
	budgetTerms = []string{
		"budget management", "fiscal oversight", "expenditure monitoring",
		"fund allocation", "financial planning", "resource allocation",
	}
	staffDevelopmentTerms = []string{
		"staff development", "professional growth", "teacher training",
		"performance evaluation", "mentoring", "coaching",
	}

	aviationSkillTerms = []string{
		"flight planning", "mission systems", "avionics",
		"emergency procedures", "nvg operations", "instrumentation",
		"aircraft systems", "maintenance", "checklists",
	}
	commandTerms = []string{
		"commander", "supervisor", "mentor",
		"team lead", "standardization", "evaluation",
		"performance review", "resource management",
	}
	trainingTerms = []string{
		"training program", "curriculum", "lesson plan",
		"instructor", "teaching", "coaching",
		"professional development", "mentoring",
	}
	flightSafetyTerms = []string{
		"safety", "compliance", "regulations",
		"checklists", "procedures", "standards",
		"risk management", "emergency",
	}
	operationalTitles = []string{"pilot", "aircrew", "maintainer", "operator"}

	multitaskTerms = []string{
		"multitasking", "multiple tasks", "simultaneous",
		"while also", "concurrently", "during",
		"at the same time", "in addition to",
	}
	serviceToolTerms = []string{
		"point of sale", "inventory system", "computer",
		"software", "database", "spreadsheet",
		"security system", "forklift",
	}
	serviceSafetyTerms = []string{
		"safety", "security", "compliance",
		"regulations", "procedures", "emergency",
		"incident report", "patrol",
	}

	financialAnalysisTerms = []string{
		"financial analysis", "cash flow", "valuation",
		"risk assessment", "credit analysis", "modeling",
		"forecasting", "scenario analysis",
	}
	clientManagementTerms = []string{
		"client acquisition", "relationship management",
		"portfolio growth", "cross-selling", "retention",
		"needs assessment", "consultative",
	}
	lendingComplianceTerms = []string{
		"compliance", "regulatory", "fannie mae",
		"freddie mac", "fha", "va", "audit",
		"policy", "procedures",
	}
	portfolioTerms = []string{
		"portfolio", "underwriting", "loan production",
		"asset management", "risk management", "diversification",
		"performance metrics",
	}
	bankingToolTerms = []string{
		"excel", "financial modeling", "vba",
		"database", "crm", "loan origination",
		"bloomberg", "reuters",
	}

	researchTerms = []string{
		"financial analysis", "data analysis", "research",
		"valuation", "modeling", "forecasting",
		"market research", "investment analysis",
	}
	officeToolTerms = []string{
		"excel", "powerpoint", "word", "vba",
		"financial modeling", "statistical analysis",
		"database", "prezi",
	}
	clientServiceTerms = []string{
		"client service", "customer service", "assistance",
		"support", "consultation", "recommendations",
		"needs assessment",
	}

	operationsManagementTerms = []string{
		"operations management", "team management", "site management",
		"p&l", "gross margin", "revenue growth",
		"resource allocation", "workforce planning",
	}
	peopleLeadershipTerms = []string{
		"team leadership", "staff development", "mentoring",
		"performance management", "training", "coaching",
		"employee engagement", "supervision",
	}
	performanceMetricTerms = []string{
		"kpi", "key performance", "metrics",
		"conversion rate", "close ratio", "arpu",
		"performance improvement", "target achievement",
	}
	processImprovementTerms = []string{
		"process improvement", "efficiency", "workflow",
		"optimization", "streamlining", "best practices",
		"standardization", "methodology",
	}
)
