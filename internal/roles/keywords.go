// Package roles holds the static per-role data the scoring engine is
// driven by: identification keyword tables, weight profiles, passion
// indicator tables, and the high-demand role list. Everything here is
// read-only after process start.
package roles

import "github.com/jonathan/resume-screener/internal/types"

// RoleKeywords pairs a role with the phrases that identify it inside a
// job description. Identification confidence is matched-count divided by
// the table length for that role.
type RoleKeywords struct {
	Role     types.Role
	Keywords []string
}

// KeywordTable is iterated in order during role identification, so
// confidence ties resolve to the earlier entry. The order mirrors
// types.AllRoles.
var KeywordTable = []RoleKeywords{
	{types.RoleSoftwareEngineer, []string{"software engineer", "software developer", "software development", "programming", "coding"}},
	{types.RoleFrontendDeveloper, []string{"frontend developer", "front-end developer", "front end", "ui developer", "react developer"}},
	{types.RoleBackendDeveloper, []string{"backend developer", "back-end developer", "back end", "api development", "server-side"}},
	{types.RoleFullStackDev, []string{"full stack", "full-stack", "fullstack developer"}},
	{types.RoleMobileDeveloper, []string{"mobile developer", "android developer", "ios developer", "mobile app", "flutter developer"}},
	{types.RoleDevOpsEngineer, []string{"devops", "site reliability", "sre", "infrastructure engineer", "platform engineer"}},
	{types.RoleQAEngineer, []string{"qa engineer", "quality assurance", "test engineer", "software testing", "automation testing"}},
	{types.RoleDataAnalyst, []string{"data analyst", "data analysis", "business intelligence", "analytics", "reporting analyst"}},
	{types.RoleDataScientist, []string{"data scientist", "data science", "predictive modeling", "statistical modeling"}},
	{types.RoleDataEngineer, []string{"data engineer", "data pipeline", "data warehousing", "etl developer"}},
	{types.RoleMLEngineer, []string{"machine learning engineer", "ml engineer", "deep learning", "ai engineer"}},
	{types.RoleCybersecurity, []string{"security analyst", "cybersecurity", "information security", "penetration tester", "soc analyst"}},
	{types.RoleNetworkEngineer, []string{"network engineer", "network administrator", "network administration", "network operations"}},
	{types.RoleCloudArchitect, []string{"cloud architect", "cloud engineer", "solutions architect", "cloud infrastructure"}},
	{types.RoleITSupport, []string{"it support", "help desk", "desktop support", "technical support", "service desk"}},
	{types.RoleBusinessAnalyst, []string{"business analyst", "requirements gathering", "process analysis", "gap analysis"}},
	{types.RoleBusinessConsultant, []string{"business consultant", "strategy consultant", "management consultant", "consulting"}},
	{types.RoleMarketResearcher, []string{"market research", "consumer research", "research analyst", "market analyst"}},
	{types.RoleProductManager, []string{"product manager", "product owner", "product management", "product roadmap"}},
	{types.RoleProjectManager, []string{"project manager", "project management", "program manager", "scrum master"}},
	{types.RoleOperationsManager, []string{"operations manager", "operations management", "general manager", "business operations"}},
	{types.RoleSupplyChainAnalyst, []string{"supply chain", "logistics", "procurement", "inventory planning"}},
	{types.RoleAccountant, []string{"accountant", "accounting", "bookkeeping", "chartered accountant", "accounts executive"}},
	{types.RoleFinancialAnalyst, []string{"financial analyst", "financial analysis", "financial modeling", "equity research", "fp&a"}},
	{types.RoleAuditor, []string{"auditor", "audit", "internal audit", "statutory audit"}},
	{types.RoleBanker, []string{"banking", "relationship manager", "credit analyst", "loan officer"}},
	{types.RoleMarketingManager, []string{"marketing manager", "brand manager", "marketing strategy", "marketing campaigns"}},
	{types.RoleDigitalMarketer, []string{"digital marketing", "seo specialist", "social media marketing", "performance marketing", "ppc"}},
	{types.RoleSalesExecutive, []string{"sales executive", "sales representative", "business development", "account executive", "inside sales"}},
	{types.RoleContentWriter, []string{"content writer", "copywriter", "content creator", "technical writer", "editor"}},
	{types.RoleHRManager, []string{"hr manager", "human resources", "hr generalist", "hr business partner"}},
	{types.RoleRecruiter, []string{"recruiter", "talent acquisition", "recruitment", "sourcing specialist"}},
	{types.RoleUIUXDesigner, []string{"ui/ux designer", "ux designer", "ui designer", "product designer", "interaction designer"}},
	{types.RoleGraphicDesigner, []string{"graphic designer", "visual designer", "creative designer", "illustrator"}},
	{types.RoleTeacher, []string{"teacher", "lecturer", "professor", "tutor", "faculty"}},
	{types.RoleTrainingSpecialist, []string{"training specialist", "trainer", "learning specialist", "instructional designer"}},
	{types.RoleNurse, []string{"nurse", "nursing", "registered nurse", "staff nurse", "icu nurse"}},
	{types.RolePhysician, []string{"physician", "doctor", "medical officer", "general practitioner", "surgeon"}},
	{types.RolePharmacist, []string{"pharmacist", "pharmacy", "clinical pharmacist"}},
	{types.RoleLawyer, []string{"lawyer", "attorney", "legal counsel", "advocate", "legal associate"}},
	{types.RoleChef, []string{"chef", "cook", "culinary", "sous chef", "kitchen"}},
	{types.RoleHotelManager, []string{"hotel manager", "hospitality", "front office manager", "restaurant manager"}},
	{types.RoleCivilEngineer, []string{"civil engineer", "structural engineer", "construction", "site engineer"}},
	{types.RoleMechanicalEngineer, []string{"mechanical engineer", "mechanical design", "manufacturing engineer", "hvac engineer"}},
	{types.RoleElectricalEngineer, []string{"electrical engineer", "electronics engineer", "embedded engineer", "power systems"}},
	{types.RoleCustomerSupport, []string{"customer support", "customer service", "support specialist", "call center", "customer success"}},
}
