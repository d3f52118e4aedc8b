// Package recommend turns a final score and its sub-signals into an
// ordered list of human-readable recommendation strings.
package recommend

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

// Verdict tier thresholds over the final score.
const (
	highlyRecommendedScore = 85.0
	recommendedScore       = 70.0
	averageScore           = 50.0

	// Candidates whose contextual match indicates role fit get a softer
	// verdict in this band instead of the plain average/poor tiers.
	roleFitFloorScore   = 45.0
	roleFitCeilingScore = 65.0
)

// Generic warning thresholds.
const (
	minSkillCount       = 5
	minExperienceYears  = 1
	notableAchievements = 2
)

// roleCommentary holds bespoke per-role commentary keyed by a skill-count
// threshold within the role's home category.
var roleCommentary = map[types.Role]struct {
	category  string
	threshold int
	strong    string
	weak      string
}{
	types.RoleChef: {
		category:  "culinary_hospitality",
		threshold: 5,
		strong:    "Strong culinary skill set; highlight signature dishes and kitchen leadership in interviews",
		weak:      "Culinary skill list is thin; add specific cuisines, techniques, and kitchen stations worked",
	},
	types.RoleSoftwareEngineer: {
		category:  "programming_languages",
		threshold: 3,
		strong:    "Solid programming language coverage; emphasize depth in the languages the role uses daily",
		weak:      "Few programming languages listed; name the languages and frameworks behind each project",
	},
	types.RoleDataAnalyst: {
		category:  "analytics_visualization",
		threshold: 3,
		strong:    "Good analytics tooling coverage; lead with dashboard and reporting outcomes",
		weak:      "Analytics tooling is sparse; list the BI tools, SQL dialects, and reporting work explicitly",
	},
	types.RoleNurse: {
		category:  "healthcare",
		threshold: 4,
		strong:    "Strong clinical skill coverage; foreground unit experience and certifications",
		weak:      "Clinical skills are under-specified; list units, procedures, and certifications held",
	},
	types.RoleUIUXDesigner: {
		category:  "design_creative",
		threshold: 4,
		strong:    "Well-rounded design toolkit; link a portfolio with case studies",
		weak:      "Design toolkit looks limited; enumerate tools, methods, and a portfolio link",
	},
	types.RoleAccountant: {
		category:  "finance_accounting",
		threshold: 4,
		strong:    "Comprehensive accounting skill set; surface statutory and compliance work prominently",
		weak:      "Accounting skills are under-represented; add standards, software, and filing experience",
	},
}

// Generate produces the ordered recommendation list:
// verdict, bonus explanation, role-specific commentary, generic skill and
// experience warnings, then the achievements note.
func Generate(
	finalScore float64,
	skills *types.ExtractedSkills,
	experience types.ExperienceProfile,
	achievements []types.Achievement,
	analysis types.ContextualAnalysis,
	req *types.JobRequirements,
) []string {
	recs := []string{verdict(finalScore, analysis)}

	if bonus := bonusExplanation(analysis); bonus != "" {
		recs = append(recs, bonus)
	}

	if req != nil && !req.JobRole.IsGeneral() {
		if commentary := roleSpecific(req.JobRole, skills); commentary != "" {
			recs = append(recs, commentary)
		}
	}

	if skills.TotalCount() < minSkillCount {
		recs = append(recs, "Skill list is short; expand it with the concrete tools and technologies used in past work")
	}
	if experience.MaxYears < minExperienceYears {
		recs = append(recs, "No clear years-of-experience statement found; state tenure explicitly (e.g. \"3 years of experience\")")
	}

	if len(achievements) >= notableAchievements {
		recs = append(recs, fmt.Sprintf("Resume quantifies %d achievements; this measurably strengthens the application", len(achievements)))
	}

	return recs
}

func verdict(score float64, analysis types.ContextualAnalysis) string {
	switch {
	case score >= highlyRecommendedScore:
		return "Highly recommended: excellent overall match for this position"
	case score >= recommendedScore:
		return "Recommended: strong candidate worth shortlisting"
	case analysis.MatchLevel.Matched() && score >= roleFitFloorScore && score < roleFitCeilingScore:
		return "Role-aligned candidate with development gaps: the skill profile fits the role but overall depth is below the bar; consider for a junior opening"
	case score >= averageScore:
		return "Average match: review against other applicants before proceeding"
	default:
		return "Not recommended for this position based on the current resume"
	}
}

// bonusExplanation names the bonus sources that contributed, when any did.
func bonusExplanation(analysis types.ContextualAnalysis) string {
	if analysis.BonusPoints <= 0 {
		return ""
	}
	var sources []string
	if analysis.MatchLevel.Matched() {
		sources = append(sources, "role-specific skill alignment")
	}
	if analysis.PassionBonus > 0 {
		sources = append(sources, "passion indicators")
	}
	if analysis.DemandBonus > 0 {
		sources = append(sources, "high labor-market demand for this role")
	}
	if len(sources) == 0 {
		return ""
	}
	return fmt.Sprintf("Score includes a +%.0f contextual bonus from: %s", analysis.BonusPoints, strings.Join(sources, ", "))
}

func roleSpecific(role types.Role, skills *types.ExtractedSkills) string {
	commentary, ok := roleCommentary[role]
	if !ok {
		return ""
	}
	count := 0
	if group, present := skills.Categories[commentary.category]; present {
		count = len(group.AllSkills())
	}
	if count >= commentary.threshold {
		return commentary.strong
	}
	return commentary.weak
}
