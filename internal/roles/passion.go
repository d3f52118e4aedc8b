package roles

import "github.com/jonathan/resume-screener/internal/types"

// PassionProfile names the passion category mapped to a role and the
// indicator phrases counted in resume text. Each distinct indicator found
// is worth PassionPointsPerIndicator, capped at PassionBonusCap.
type PassionProfile struct {
	Category   string
	Indicators []string
}

// Passion bonus constants.
const (
	PassionPointsPerIndicator = 5.0
	PassionBonusCap           = 15.0
)

// PassionTable covers the subset of roles with a mapped passion category.
var PassionTable = map[types.Role]PassionProfile{
	types.RoleSoftwareEngineer: {
		Category: "builder_passion",
		Indicators: []string{
			"open source", "side project", "personal project", "hackathon",
			"github", "built from scratch",
		},
	},
	types.RoleFullStackDev: {
		Category: "builder_passion",
		Indicators: []string{
			"open source", "side project", "personal project", "hackathon",
			"github",
		},
	},
	types.RoleDataScientist: {
		Category: "research_passion",
		Indicators: []string{
			"kaggle", "research paper", "published", "competition",
			"experiment",
		},
	},
	types.RoleMLEngineer: {
		Category: "research_passion",
		Indicators: []string{
			"kaggle", "research paper", "published", "state of the art",
			"open source",
		},
	},
	types.RoleDataAnalyst: {
		Category: "analytics_passion",
		Indicators: []string{
			"data driven", "data-driven", "insights", "dashboard",
			"storytelling with data",
		},
	},
	types.RoleUIUXDesigner: {
		Category: "design_passion",
		Indicators: []string{
			"portfolio", "dribbble", "behance", "design thinking",
			"user centered", "user-centered",
		},
	},
	types.RoleChef: {
		Category: "culinary_passion",
		Indicators: []string{
			"passion for cooking", "culinary arts", "food enthusiast",
			"recipe development", "farm to table", "michelin",
		},
	},
	types.RoleTeacher: {
		Category: "teaching_passion",
		Indicators: []string{
			"passion for teaching", "mentoring", "student success",
			"love of learning", "volunteer teaching",
		},
	},
	types.RoleNurse: {
		Category: "care_passion",
		Indicators: []string{
			"patient advocacy", "compassionate care", "volunteer",
			"bedside manner",
		},
	},
	types.RoleContentWriter: {
		Category: "writing_passion",
		Indicators: []string{
			"personal blog", "published author", "storytelling",
			"creative writing",
		},
	},
	types.RoleDigitalMarketer: {
		Category: "growth_passion",
		Indicators: []string{
			"growth hacking", "a/b testing", "viral", "personal brand",
		},
	},
	types.RoleDevOpsEngineer: {
		Category: "automation_passion",
		Indicators: []string{
			"automation", "homelab", "open source", "infrastructure as code",
		},
	},
}

// HighDemandRoles lists roles that receive the flat demand bonus.
var HighDemandRoles = map[types.Role]bool{
	types.RoleSoftwareEngineer: true,
	types.RoleFullStackDev:     true,
	types.RoleDataScientist:    true,
	types.RoleDataEngineer:     true,
	types.RoleMLEngineer:       true,
	types.RoleDevOpsEngineer:   true,
	types.RoleCybersecurity:    true,
	types.RoleCloudArchitect:   true,
	types.RoleNurse:            true,
}

// DemandBonus is the flat bonus added when the identified role is in
// HighDemandRoles.
const DemandBonus = 20.0
