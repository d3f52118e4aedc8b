// Package taxonomy provides the skills catalog: an embedded default
// taxonomy plus loading and validation of external taxonomy files.
package taxonomy

import "github.com/jonathan/resume-screener/internal/types"

// Default returns the embedded skills taxonomy used when no external
// source is available. Skill strings are lowercase; matching is
// case-insensitive against normalized text.
func Default() *types.Taxonomy {
	return &types.Taxonomy{Categories: map[string]types.SkillGroup{
		"programming_languages": types.FlatGroup(
			"python", "java", "javascript", "typescript", "c", "c++", "c#",
			"go", "rust", "php", "ruby", "swift", "kotlin", "scala", "r",
			"matlab", "perl", "dart", "objective-c",
		),
		"web_technologies": types.FlatGroup(
			"html", "css", "react", "angular", "vue.js", "node.js",
			"express.js", "django", "flask", "spring boot", "laravel",
			"next.js", "graphql", "rest api", "webpack",
		),
		"mobile_development": types.FlatGroup(
			"android", "ios", "react native", "flutter", "xamarin",
			"swiftui", "mobile app development",
		),
		"databases": types.FlatGroup(
			"mysql", "postgresql", "mongodb", "sqlite", "redis", "oracle",
			"sql server", "cassandra", "elasticsearch", "dynamodb", "sql",
			"nosql", "database design",
		),
		"cloud_platforms": types.FlatGroup(
			"aws", "azure", "google cloud", "heroku", "digitalocean",
			"cloud computing", "serverless", "lambda", "ec2", "s3",
		),
		"devops_tools": types.FlatGroup(
			"docker", "kubernetes", "jenkins", "terraform", "ansible",
			"ci/cd", "git", "github actions", "gitlab", "prometheus",
			"grafana", "linux", "bash", "shell scripting",
		),
		"data_science": types.FlatGroup(
			"machine learning", "deep learning", "data science", "ai",
			"ml", "nlp", "natural language processing", "computer vision",
			"pandas", "numpy", "scikit-learn", "tensorflow", "pytorch",
			"statistical analysis", "predictive modeling", "data mining",
			"neural networks",
		),
		"analytics_visualization": types.FlatGroup(
			"tableau", "power bi", "excel", "google analytics", "looker",
			"data visualization", "data analysis", "spss", "sas",
			"reporting", "dashboards", "qlik",
		),
		"data_engineering": types.FlatGroup(
			"etl", "data pipelines", "apache spark", "hadoop", "kafka",
			"airflow", "data warehousing", "snowflake", "dbt",
		),
		"cybersecurity": types.FlatGroup(
			"network security", "penetration testing", "ethical hacking",
			"vulnerability assessment", "siem", "firewall", "encryption",
			"incident response", "security audit", "iso 27001",
		),
		"networking": types.FlatGroup(
			"tcp/ip", "dns", "vpn", "routing", "switching", "cisco",
			"ccna", "network administration", "load balancing",
		),
		"it_operations": types.FlatGroup(
			"it", "it support", "it infrastructure", "help desk",
			"active directory", "system administration", "itil",
			"troubleshooting", "windows server",
		),
		"qa_testing": types.FlatGroup(
			"software testing", "selenium", "test automation", "junit",
			"manual testing", "regression testing", "cypress",
			"quality assurance", "test cases",
		),
		"market_research": types.FlatGroup(
			"market research", "consumer research", "survey design",
			"focus groups", "questionnaire design", "competitive analysis",
			"market analysis", "brand research", "segmentation",
		),
		"business_consulting": types.FlatGroup(
			"business strategy", "strategic planning", "process improvement",
			"change management", "stakeholder management",
			"business analysis", "due diligence", "operating model",
			"management consulting",
		),
		"project_management": types.FlatGroup(
			"project management", "agile", "scrum", "kanban", "jira",
			"pmp", "prince2", "waterfall", "risk management",
			"resource planning", "sprint planning",
		),
		"finance_accounting": types.FlatGroup(
			"accounting", "bookkeeping", "financial analysis",
			"financial modeling", "budgeting", "forecasting", "auditing",
			"taxation", "gaap", "ifrs", "accounts payable",
			"accounts receivable", "payroll", "quickbooks", "tally",
			"ca", "cpa", "cfa", "chartered accountant", "financial reporting",
		),
		"sales_marketing": types.FlatGroup(
			"digital marketing", "seo", "sem", "content marketing",
			"social media marketing", "email marketing", "crm",
			"salesforce", "hubspot", "lead generation", "sales strategy",
			"negotiation", "account management", "ppc", "brand management",
		),
		"human_resources": types.FlatGroup(
			"hr", "recruitment", "talent acquisition", "onboarding",
			"performance management", "employee relations",
			"compensation and benefits", "hris", "workforce planning",
			"employee engagement",
		),
		"design_creative": types.FlatGroup(
			"ui", "ux", "ui/ux", "user interface design",
			"user experience", "figma", "sketch", "adobe photoshop",
			"adobe illustrator", "wireframing", "prototyping",
			"graphic design", "typography", "design systems",
		),
		"content_writing": types.FlatGroup(
			"copywriting", "content writing", "technical writing",
			"editing", "proofreading", "blogging", "storytelling",
			"content strategy",
		),
		"education_training": types.FlatGroup(
			"curriculum development", "lesson planning",
			"instructional design", "e-learning", "classroom management",
			"training design", "adult learning", "facilitation",
			"presentation skills", "tutoring",
		),
		"healthcare": types.NestedGroup(map[string][]string{
			"clinical": {
				"patient care", "nursing", "clinical research", "phlebotomy",
				"diagnosis", "icu", "emergency care", "surgery",
				"medication administration",
			},
			"administrative": {
				"medical records", "medical billing", "medical coding",
				"hipaa", "patient scheduling", "ehr",
			},
			"pharmacy": {
				"pharmacology", "dispensing", "drug interactions",
				"pharmacy management",
			},
		}),
		"legal": types.FlatGroup(
			"legal research", "contract drafting", "litigation",
			"compliance", "corporate law", "intellectual property",
			"legal writing", "due diligence review",
		),
		"culinary_hospitality": types.NestedGroup(map[string][]string{
			"culinary": {
				"cooking", "baking", "menu planning", "food safety",
				"haccp", "pastry", "knife skills", "plating",
				"recipe development", "kitchen management",
			},
			"hospitality": {
				"front office", "housekeeping management",
				"event management", "guest relations", "reservation systems",
				"banquet operations",
			},
		}),
		"engineering": types.NestedGroup(map[string][]string{
			"civil": {
				"autocad", "structural analysis", "surveying",
				"construction management", "staad pro", "estimation",
			},
			"mechanical": {
				"solidworks", "catia", "thermodynamics", "cnc",
				"hvac", "cad/cam", "manufacturing processes",
			},
			"electrical": {
				"circuit design", "plc", "scada", "embedded systems",
				"power systems", "pcb design", "microcontrollers",
			},
		}),
		"supply_chain": types.FlatGroup(
			"supply chain management", "logistics", "procurement",
			"inventory management", "demand planning", "warehousing",
			"vendor management", "sap", "erp",
		),
		"customer_service": types.FlatGroup(
			"customer service", "customer support", "conflict resolution",
			"ticketing systems", "zendesk", "call center operations",
			"customer retention",
		),
		"soft_skills": types.FlatGroup(
			"leadership", "communication", "teamwork", "problem solving",
			"analytical thinking", "time management", "adaptability",
			"critical thinking", "collaboration", "decision making",
			"attention to detail", "creativity",
		),
	}}
}
