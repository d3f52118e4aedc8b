package analyzer

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

// Fallback scoring constants. The fallback path avoids every non-trivial
// code path: plain substring skill counting, one year regex, and flat
// neutral scores.
const (
	fallbackSkillPoints    = 3.0
	fallbackEducationScore = 50.0
	fallbackYearsPerPoint  = 10.0
)

var fallbackYearPattern = regexp.MustCompile(`(\d+)\s*(?:years?|yrs?)`)

// fallbackReport builds the reduced-fidelity report used when full
// analysis faults. It must not panic on any input.
func (e *Engine) fallbackReport(resumeText string) types.ScoreReport {
	lower := strings.ToLower(resumeText)

	skillCount := 0
	for _, group := range e.taxonomy.Categories {
		for _, skill := range group.AllSkills() {
			if strings.Contains(lower, skill) {
				skillCount++
			}
		}
	}

	maxYears := 0
	for _, match := range fallbackYearPattern.FindAllStringSubmatch(lower, -1) {
		if n, err := strconv.Atoi(match[1]); err == nil && n > maxYears {
			maxYears = n
		}
	}

	skillsScore := clamp100(float64(skillCount) * fallbackSkillPoints)
	experienceScore := clamp100(float64(maxYears) * fallbackYearsPerPoint)
	base := skillsScore*0.5 + experienceScore*0.3 + fallbackEducationScore*0.2

	return types.ScoreReport{
		OverallScore: round2(base),
		BaseScore:    round2(base),
		DetailedScores: types.DetailedScores{
			Skills:     skillsScore,
			Experience: experienceScore,
			Education:  fallbackEducationScore,
		},
		ContextualAnalysis: types.ContextualAnalysis{
			MatchLevel:        types.MatchNone,
			MatchedCategories: []string{},
			Reasoning:         "fallback analysis: contextual matching unavailable",
		},
		SkillsFound: types.ExtractedSkills{Categories: map[string]types.SkillGroup{}},
		ExperienceInfo: types.ExperienceProfile{
			MaxYears: maxYears,
		},
		EducationInfo:     types.EducationProfile{EducationQuality: fallbackEducationScore},
		Achievements:      []types.Achievement{},
		TotalSkillsCount:  skillCount,
		JobRoleIdentified: types.RoleGeneral,
		Recommendations: []string{
			"Automated analysis was degraded for this resume; scores reflect a basic keyword scan only",
		},
		ConfidenceLevel:  types.ConfidenceLow,
		ScoringRationale: "fallback path: keyword skill count, basic year extraction, neutral education score",
	}
}

func clamp100(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
