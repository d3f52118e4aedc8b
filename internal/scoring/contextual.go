package scoring

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-screener/internal/roles"
	"github.com/jonathan/resume-screener/internal/types"
)

// Match-level thresholds over required-category coverage, and the base
// bonus each level carries.
const (
	perfectMatchPercent = 80.0
	goodMatchPercent    = 60.0
	partialMatchPercent = 30.0

	perfectMatchBonus = 80.0
	goodMatchBonus    = 60.0
	partialMatchBonus = 40.0
)

// ContextualBonus computes the role-match, passion, and demand bonuses
// for a resume against the identified role. When the required-category
// coverage reaches a matched level, the role profile's own
// ContextualBonus points are added on top of the level bonus; that is
// the field's whole purpose, so a matched candidate for a
// high-ContextualBonus role outranks one for a low-bonus role at equal
// coverage.
func ContextualBonus(
	skills *types.ExtractedSkills,
	resumeText string,
	req *types.JobRequirements,
	profiles roles.Registry,
) types.ContextualAnalysis {
	analysis := types.ContextualAnalysis{
		MatchLevel:        types.MatchNone,
		MatchedCategories: []string{},
	}
	if req == nil || req.JobRole.IsGeneral() {
		analysis.Reasoning = "no specific role identified; no contextual adjustment applied"
		return analysis
	}

	profile, hasProfile := profiles.Profile(req.JobRole)
	if hasProfile {
		matched := make([]string, 0, len(profile.RequiredSkills))
		for _, category := range profile.RequiredSkills {
			if skills.HasCategory(category) {
				matched = append(matched, category)
			}
		}
		analysis.MatchedCategories = matched
		if len(profile.RequiredSkills) > 0 {
			analysis.SkillMatchPercentage = round2(float64(len(matched)) / float64(len(profile.RequiredSkills)) * 100)
		}
	}

	level, levelBonus := matchLevel(analysis.SkillMatchPercentage)
	analysis.MatchLevel = level

	bonus := levelBonus
	if hasProfile && level.Matched() {
		bonus += float64(profile.ContextualBonus)
	}

	analysis.PassionBonus = passionBonus(req.JobRole, resumeText)
	bonus += analysis.PassionBonus

	if roles.HighDemandRoles[req.JobRole] {
		analysis.DemandBonus = roles.DemandBonus
		bonus += roles.DemandBonus
	}

	analysis.BonusPoints = round2(bonus)
	analysis.Reasoning = reasoning(analysis, req.JobRole)
	return analysis
}

func matchLevel(percent float64) (types.MatchLevel, float64) {
	switch {
	case percent >= perfectMatchPercent:
		return types.MatchPerfect, perfectMatchBonus
	case percent >= goodMatchPercent:
		return types.MatchGood, goodMatchBonus
	case percent >= partialMatchPercent:
		return types.MatchPartial, partialMatchBonus
	default:
		return types.MatchNone, 0
	}
}

// passionBonus counts the distinct passion indicators for the role's
// mapped passion category present in the resume text.
func passionBonus(role types.Role, resumeText string) float64 {
	passion, ok := roles.PassionTable[role]
	if !ok {
		return 0
	}
	lower := strings.ToLower(resumeText)
	found := 0.0
	for _, indicator := range passion.Indicators {
		if strings.Contains(lower, indicator) {
			found += roles.PassionPointsPerIndicator
		}
	}
	return min(found, roles.PassionBonusCap)
}

func reasoning(analysis types.ContextualAnalysis, role types.Role) string {
	switch analysis.MatchLevel {
	case types.MatchPerfect:
		return fmt.Sprintf("excellent alignment with %s: resume covers %s (%.0f%% of required skill categories)",
			role, strings.Join(analysis.MatchedCategories, ", "), analysis.SkillMatchPercentage)
	case types.MatchGood:
		return fmt.Sprintf("good alignment with %s: resume covers %s (%.0f%% of required skill categories)",
			role, strings.Join(analysis.MatchedCategories, ", "), analysis.SkillMatchPercentage)
	case types.MatchPartial:
		return fmt.Sprintf("partial alignment with %s: resume covers %s (%.0f%% of required skill categories)",
			role, strings.Join(analysis.MatchedCategories, ", "), analysis.SkillMatchPercentage)
	default:
		return fmt.Sprintf("resume does not cover the skill categories required for %s", role)
	}
}
