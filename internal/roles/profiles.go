package roles

import "github.com/jonathan/resume-screener/internal/types"

// DefaultWeights applies when no role-specific profile exists (the
// "general" scoring path).
var DefaultWeights = types.Weights{Skills: 0.4, Experience: 0.3, Education: 0.2, Keyword: 0.1}

// keywordWeight is the fixed keyword-match weight layered into every
// role-specific profile; the remaining dimensions sum to 0.9.
const keywordWeight = 0.1

func w(skills, experience, education float64) types.Weights {
	return types.Weights{Skills: skills, Experience: experience, Education: education, Keyword: keywordWeight}
}

// profileTable is the built-in role weight registry. A Registry built
// from LoadProfiles output replaces it wholesale for scoring; entries
// are never mutated after process start.
var profileTable = map[types.Role]types.RoleWeightProfile{
	types.RoleSoftwareEngineer: {
		Role:             types.RoleSoftwareEngineer,
		RequiredSkills:   []string{"programming_languages", "web_technologies", "databases"},
		PreferredSkills:  []string{"devops_tools", "cloud_platforms"},
		Weights:          w(0.50, 0.25, 0.15),
		ContextualBonus:  20,
		MinimumThreshold: 60,
	},
	types.RoleFrontendDeveloper: {
		Role:             types.RoleFrontendDeveloper,
		RequiredSkills:   []string{"web_technologies", "programming_languages"},
		PreferredSkills:  []string{"design_creative", "qa_testing"},
		Weights:          w(0.55, 0.20, 0.15),
		ContextualBonus:  15,
		MinimumThreshold: 55,
	},
	types.RoleBackendDeveloper: {
		Role:             types.RoleBackendDeveloper,
		RequiredSkills:   []string{"programming_languages", "databases", "web_technologies"},
		PreferredSkills:  []string{"cloud_platforms", "devops_tools"},
		Weights:          w(0.50, 0.25, 0.15),
		ContextualBonus:  15,
		MinimumThreshold: 55,
	},
	types.RoleFullStackDev: {
		Role:             types.RoleFullStackDev,
		RequiredSkills:   []string{"programming_languages", "web_technologies", "databases"},
		PreferredSkills:  []string{"devops_tools", "cloud_platforms", "design_creative"},
		Weights:          w(0.55, 0.20, 0.15),
		ContextualBonus:  20,
		MinimumThreshold: 60,
	},
	types.RoleMobileDeveloper: {
		Role:             types.RoleMobileDeveloper,
		RequiredSkills:   []string{"mobile_development", "programming_languages"},
		PreferredSkills:  []string{"web_technologies", "qa_testing"},
		Weights:          w(0.55, 0.20, 0.15),
		ContextualBonus:  15,
		MinimumThreshold: 55,
	},
	types.RoleDevOpsEngineer: {
		Role:             types.RoleDevOpsEngineer,
		RequiredSkills:   []string{"devops_tools", "cloud_platforms"},
		PreferredSkills:  []string{"programming_languages", "networking"},
		Weights:          w(0.50, 0.30, 0.10),
		ContextualBonus:  20,
		MinimumThreshold: 60,
	},
	types.RoleQAEngineer: {
		Role:             types.RoleQAEngineer,
		RequiredSkills:   []string{"qa_testing", "programming_languages"},
		PreferredSkills:  []string{"devops_tools", "project_management"},
		Weights:          w(0.45, 0.30, 0.15),
		ContextualBonus:  10,
		MinimumThreshold: 50,
	},
	types.RoleDataAnalyst: {
		Role:             types.RoleDataAnalyst,
		RequiredSkills:   []string{"programming_languages", "analytics_visualization", "databases"},
		PreferredSkills:  []string{"data_science", "soft_skills"},
		Weights:          w(0.50, 0.25, 0.15),
		ContextualBonus:  15,
		MinimumThreshold: 55,
	},
	types.RoleDataScientist: {
		Role:             types.RoleDataScientist,
		RequiredSkills:   []string{"data_science", "programming_languages", "analytics_visualization"},
		PreferredSkills:  []string{"databases", "cloud_platforms"},
		Weights:          w(0.50, 0.20, 0.20),
		ContextualBonus:  25,
		MinimumThreshold: 60,
	},
	types.RoleDataEngineer: {
		Role:             types.RoleDataEngineer,
		RequiredSkills:   []string{"data_engineering", "databases", "programming_languages"},
		PreferredSkills:  []string{"cloud_platforms", "devops_tools"},
		Weights:          w(0.50, 0.25, 0.15),
		ContextualBonus:  20,
		MinimumThreshold: 60,
	},
	types.RoleMLEngineer: {
		Role:             types.RoleMLEngineer,
		RequiredSkills:   []string{"data_science", "programming_languages"},
		PreferredSkills:  []string{"data_engineering", "cloud_platforms"},
		Weights:          w(0.50, 0.20, 0.20),
		ContextualBonus:  25,
		MinimumThreshold: 60,
	},
	types.RoleCybersecurity: {
		Role:             types.RoleCybersecurity,
		RequiredSkills:   []string{"cybersecurity", "networking"},
		PreferredSkills:  []string{"it_operations", "programming_languages"},
		Weights:          w(0.50, 0.25, 0.15),
		ContextualBonus:  20,
		MinimumThreshold: 60,
	},
	types.RoleNetworkEngineer: {
		Role:             types.RoleNetworkEngineer,
		RequiredSkills:   []string{"networking", "it_operations"},
		PreferredSkills:  []string{"cybersecurity", "cloud_platforms"},
		Weights:          w(0.45, 0.30, 0.15),
		ContextualBonus:  10,
		MinimumThreshold: 50,
	},
	types.RoleCloudArchitect: {
		Role:             types.RoleCloudArchitect,
		RequiredSkills:   []string{"cloud_platforms", "devops_tools"},
		PreferredSkills:  []string{"networking", "programming_languages"},
		Weights:          w(0.45, 0.35, 0.10),
		ContextualBonus:  20,
		MinimumThreshold: 60,
	},
	types.RoleITSupport: {
		Role:             types.RoleITSupport,
		RequiredSkills:   []string{"it_operations", "customer_service"},
		PreferredSkills:  []string{"networking", "soft_skills"},
		Weights:          w(0.40, 0.30, 0.20),
		ContextualBonus:  10,
		MinimumThreshold: 45,
	},
	types.RoleBusinessAnalyst: {
		Role:             types.RoleBusinessAnalyst,
		RequiredSkills:   []string{"business_consulting", "analytics_visualization"},
		PreferredSkills:  []string{"project_management", "databases", "soft_skills"},
		Weights:          w(0.45, 0.30, 0.15),
		ContextualBonus:  10,
		MinimumThreshold: 50,
	},
	types.RoleBusinessConsultant: {
		Role:             types.RoleBusinessConsultant,
		RequiredSkills:   []string{"business_consulting", "market_research"},
		PreferredSkills:  []string{"project_management", "soft_skills"},
		Weights:          w(0.40, 0.35, 0.15),
		ContextualBonus:  15,
		MinimumThreshold: 55,
	},
	types.RoleMarketResearcher: {
		Role:             types.RoleMarketResearcher,
		RequiredSkills:   []string{"market_research", "analytics_visualization"},
		PreferredSkills:  []string{"data_science", "soft_skills"},
		Weights:          w(0.50, 0.25, 0.15),
		ContextualBonus:  15,
		MinimumThreshold: 50,
	},
	types.RoleProductManager: {
		Role:             types.RoleProductManager,
		RequiredSkills:   []string{"project_management", "business_consulting"},
		PreferredSkills:  []string{"analytics_visualization", "soft_skills", "design_creative"},
		Weights:          w(0.40, 0.35, 0.15),
		ContextualBonus:  20,
		MinimumThreshold: 60,
	},
	types.RoleProjectManager: {
		Role:             types.RoleProjectManager,
		RequiredSkills:   []string{"project_management", "soft_skills"},
		PreferredSkills:  []string{"business_consulting", "analytics_visualization"},
		Weights:          w(0.40, 0.35, 0.15),
		ContextualBonus:  15,
		MinimumThreshold: 55,
	},
	types.RoleOperationsManager: {
		Role:             types.RoleOperationsManager,
		RequiredSkills:   []string{"project_management", "supply_chain"},
		PreferredSkills:  []string{"soft_skills", "business_consulting"},
		Weights:          w(0.40, 0.35, 0.15),
		ContextualBonus:  10,
		MinimumThreshold: 50,
	},
	types.RoleSupplyChainAnalyst: {
		Role:             types.RoleSupplyChainAnalyst,
		RequiredSkills:   []string{"supply_chain", "analytics_visualization"},
		PreferredSkills:  []string{"project_management", "databases"},
		Weights:          w(0.45, 0.30, 0.15),
		ContextualBonus:  10,
		MinimumThreshold: 50,
	},
	types.RoleAccountant: {
		Role:             types.RoleAccountant,
		RequiredSkills:   []string{"finance_accounting"},
		PreferredSkills:  []string{"analytics_visualization", "soft_skills"},
		Weights:          w(0.45, 0.25, 0.20),
		ContextualBonus:  15,
		MinimumThreshold: 55,
	},
	types.RoleFinancialAnalyst: {
		Role:             types.RoleFinancialAnalyst,
		RequiredSkills:   []string{"finance_accounting", "analytics_visualization"},
		PreferredSkills:  []string{"databases", "business_consulting"},
		Weights:          w(0.45, 0.25, 0.20),
		ContextualBonus:  15,
		MinimumThreshold: 55,
	},
	types.RoleAuditor: {
		Role:             types.RoleAuditor,
		RequiredSkills:   []string{"finance_accounting"},
		PreferredSkills:  []string{"legal", "analytics_visualization"},
		Weights:          w(0.45, 0.25, 0.20),
		ContextualBonus:  10,
		MinimumThreshold: 50,
	},
	types.RoleBanker: {
		Role:             types.RoleBanker,
		RequiredSkills:   []string{"finance_accounting", "customer_service"},
		PreferredSkills:  []string{"sales_marketing", "soft_skills"},
		Weights:          w(0.40, 0.30, 0.20),
		ContextualBonus:  10,
		MinimumThreshold: 50,
	},
	types.RoleMarketingManager: {
		Role:             types.RoleMarketingManager,
		RequiredSkills:   []string{"sales_marketing", "market_research"},
		PreferredSkills:  []string{"analytics_visualization", "content_writing", "soft_skills"},
		Weights:          w(0.45, 0.30, 0.15),
		ContextualBonus:  15,
		MinimumThreshold: 55,
	},
	types.RoleDigitalMarketer: {
		Role:             types.RoleDigitalMarketer,
		RequiredSkills:   []string{"sales_marketing", "analytics_visualization"},
		PreferredSkills:  []string{"content_writing", "design_creative"},
		Weights:          w(0.50, 0.25, 0.15),
		ContextualBonus:  15,
		MinimumThreshold: 50,
	},
	types.RoleSalesExecutive: {
		Role:             types.RoleSalesExecutive,
		RequiredSkills:   []string{"sales_marketing", "customer_service"},
		PreferredSkills:  []string{"soft_skills"},
		Weights:          w(0.40, 0.35, 0.15),
		ContextualBonus:  10,
		MinimumThreshold: 45,
	},
	types.RoleContentWriter: {
		Role:             types.RoleContentWriter,
		RequiredSkills:   []string{"content_writing"},
		PreferredSkills:  []string{"sales_marketing", "design_creative"},
		Weights:          w(0.50, 0.25, 0.15),
		ContextualBonus:  10,
		MinimumThreshold: 45,
	},
	types.RoleHRManager: {
		Role:             types.RoleHRManager,
		RequiredSkills:   []string{"human_resources", "soft_skills"},
		PreferredSkills:  []string{"project_management", "education_training"},
		Weights:          w(0.40, 0.35, 0.15),
		ContextualBonus:  10,
		MinimumThreshold: 50,
	},
	types.RoleRecruiter: {
		Role:             types.RoleRecruiter,
		RequiredSkills:   []string{"human_resources", "customer_service"},
		PreferredSkills:  []string{"sales_marketing", "soft_skills"},
		Weights:          w(0.40, 0.35, 0.15),
		ContextualBonus:  10,
		MinimumThreshold: 45,
	},
	types.RoleUIUXDesigner: {
		Role:             types.RoleUIUXDesigner,
		RequiredSkills:   []string{"design_creative"},
		PreferredSkills:  []string{"web_technologies", "soft_skills"},
		Weights:          w(0.55, 0.20, 0.15),
		ContextualBonus:  15,
		MinimumThreshold: 55,
	},
	types.RoleGraphicDesigner: {
		Role:             types.RoleGraphicDesigner,
		RequiredSkills:   []string{"design_creative"},
		PreferredSkills:  []string{"content_writing", "sales_marketing"},
		Weights:          w(0.55, 0.20, 0.15),
		ContextualBonus:  10,
		MinimumThreshold: 50,
	},
	types.RoleTeacher: {
		Role:             types.RoleTeacher,
		RequiredSkills:   []string{"education_training", "soft_skills"},
		PreferredSkills:  []string{"content_writing"},
		Weights:          w(0.40, 0.25, 0.25),
		ContextualBonus:  10,
		MinimumThreshold: 50,
	},
	types.RoleTrainingSpecialist: {
		Role:             types.RoleTrainingSpecialist,
		RequiredSkills:   []string{"education_training", "soft_skills"},
		PreferredSkills:  []string{"project_management", "human_resources"},
		Weights:          w(0.45, 0.30, 0.15),
		ContextualBonus:  10,
		MinimumThreshold: 50,
	},
	types.RoleNurse: {
		Role:             types.RoleNurse,
		RequiredSkills:   []string{"healthcare"},
		PreferredSkills:  []string{"customer_service", "soft_skills"},
		Weights:          w(0.45, 0.25, 0.20),
		ContextualBonus:  20,
		MinimumThreshold: 55,
	},
	types.RolePhysician: {
		Role:             types.RolePhysician,
		RequiredSkills:   []string{"healthcare"},
		PreferredSkills:  []string{"soft_skills"},
		Weights:          w(0.40, 0.25, 0.25),
		ContextualBonus:  20,
		MinimumThreshold: 60,
	},
	types.RolePharmacist: {
		Role:             types.RolePharmacist,
		RequiredSkills:   []string{"healthcare"},
		PreferredSkills:  []string{"customer_service"},
		Weights:          w(0.45, 0.25, 0.20),
		ContextualBonus:  10,
		MinimumThreshold: 50,
	},
	types.RoleLawyer: {
		Role:             types.RoleLawyer,
		RequiredSkills:   []string{"legal"},
		PreferredSkills:  []string{"business_consulting", "soft_skills"},
		Weights:          w(0.45, 0.30, 0.15),
		ContextualBonus:  15,
		MinimumThreshold: 55,
	},
	types.RoleChef: {
		Role:             types.RoleChef,
		RequiredSkills:   []string{"culinary_hospitality"},
		PreferredSkills:  []string{"supply_chain", "soft_skills"},
		Weights:          w(0.50, 0.30, 0.10),
		ContextualBonus:  15,
		MinimumThreshold: 50,
	},
	types.RoleHotelManager: {
		Role:             types.RoleHotelManager,
		RequiredSkills:   []string{"culinary_hospitality", "customer_service"},
		PreferredSkills:  []string{"project_management", "soft_skills"},
		Weights:          w(0.40, 0.35, 0.15),
		ContextualBonus:  10,
		MinimumThreshold: 50,
	},
	types.RoleCivilEngineer: {
		Role:             types.RoleCivilEngineer,
		RequiredSkills:   []string{"engineering"},
		PreferredSkills:  []string{"project_management", "analytics_visualization"},
		Weights:          w(0.45, 0.30, 0.15),
		ContextualBonus:  10,
		MinimumThreshold: 50,
	},
	types.RoleMechanicalEngineer: {
		Role:             types.RoleMechanicalEngineer,
		RequiredSkills:   []string{"engineering"},
		PreferredSkills:  []string{"project_management", "supply_chain"},
		Weights:          w(0.45, 0.30, 0.15),
		ContextualBonus:  10,
		MinimumThreshold: 50,
	},
	types.RoleElectricalEngineer: {
		Role:             types.RoleElectricalEngineer,
		RequiredSkills:   []string{"engineering"},
		PreferredSkills:  []string{"programming_languages", "project_management"},
		Weights:          w(0.45, 0.30, 0.15),
		ContextualBonus:  10,
		MinimumThreshold: 50,
	},
	types.RoleCustomerSupport: {
		Role:             types.RoleCustomerSupport,
		RequiredSkills:   []string{"customer_service", "soft_skills"},
		PreferredSkills:  []string{"it_operations", "sales_marketing"},
		Weights:          w(0.40, 0.30, 0.20),
		ContextualBonus:  10,
		MinimumThreshold: 45,
	},
}

// Profile returns the weight profile for a role. The second return value
// is false for RoleGeneral and any role without a specific profile, in
// which case callers fall back to DefaultWeights.
func Profile(role types.Role) (types.RoleWeightProfile, bool) {
	p, ok := profileTable[role]
	return p, ok
}

// Registry resolves role weight profiles for the scoring path. The zero
// value resolves against the built-in table; a registry built from
// LoadProfiles output replaces the built-ins wholesale.
type Registry struct {
	table map[types.Role]types.RoleWeightProfile
}

// NewRegistry wraps an externally loaded profile table, normally the
// output of LoadProfiles.
func NewRegistry(table map[types.Role]types.RoleWeightProfile) Registry {
	return Registry{table: table}
}

// DefaultRegistry resolves against the built-in profile table.
func DefaultRegistry() Registry {
	return Registry{}
}

// Profile returns the weight profile for a role. The second return value
// is false for RoleGeneral and any role without a profile in the
// registry's table.
func (r Registry) Profile(role types.Role) (types.RoleWeightProfile, bool) {
	if r.table != nil {
		p, ok := r.table[role]
		return p, ok
	}
	return Profile(role)
}

// Profiles returns a copy of the full registry keyed by role.
func Profiles() map[types.Role]types.RoleWeightProfile {
	out := make(map[types.Role]types.RoleWeightProfile, len(profileTable))
	for k, v := range profileTable {
		out[k] = v
	}
	return out
}
