package recommend

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/types"
)

func skillsWith(categories map[string][]string) *types.ExtractedSkills {
	out := &types.ExtractedSkills{Categories: make(map[string]types.SkillGroup)}
	for category, list := range categories {
		out.Categories[category] = types.FlatGroup(list...)
	}
	return out
}

func TestGenerate_VerdictAlwaysFirst(t *testing.T) {
	recs := Generate(90, skillsWith(nil), types.ExperienceProfile{}, nil,
		types.ContextualAnalysis{MatchLevel: types.MatchNone}, nil)

	require.NotEmpty(t, recs)
	assert.Contains(t, recs[0], "Highly recommended")
}

func TestGenerate_VerdictTiers(t *testing.T) {
	noMatch := types.ContextualAnalysis{MatchLevel: types.MatchNone}

	cases := []struct {
		score float64
		want  string
	}{
		{95, "Highly recommended"},
		{85, "Highly recommended"},
		{75, "Recommended"},
		{55, "Average match"},
		{20, "Not recommended"},
	}
	for _, tc := range cases {
		recs := Generate(tc.score, skillsWith(nil), types.ExperienceProfile{}, nil, noMatch, nil)
		assert.Contains(t, recs[0], tc.want, "score %.0f", tc.score)
	}
}

func TestGenerate_RoleFitVerdictInMidBand(t *testing.T) {
	matched := types.ContextualAnalysis{MatchLevel: types.MatchPartial}

	recs := Generate(55, skillsWith(nil), types.ExperienceProfile{}, nil, matched, nil)

	assert.Contains(t, recs[0], "Role-aligned candidate")
}

func TestGenerate_RoleFitVerdictNotAboveBand(t *testing.T) {
	matched := types.ContextualAnalysis{MatchLevel: types.MatchPartial}

	recs := Generate(70, skillsWith(nil), types.ExperienceProfile{}, nil, matched, nil)

	assert.Contains(t, recs[0], "Recommended")
}

func TestGenerate_BonusExplanationNamesSources(t *testing.T) {
	analysis := types.ContextualAnalysis{
		MatchLevel:   types.MatchGood,
		BonusPoints:  95,
		PassionBonus: 10,
		DemandBonus:  20,
	}

	recs := Generate(80, skillsWith(nil), types.ExperienceProfile{}, nil, analysis, nil)

	explanation := recs[1]
	assert.Contains(t, explanation, "role-specific skill alignment")
	assert.Contains(t, explanation, "passion indicators")
	assert.Contains(t, explanation, "high labor-market demand")
}

func TestGenerate_ChefCommentary(t *testing.T) {
	req := &types.JobRequirements{JobRole: types.RoleChef}

	strong := Generate(80, skillsWith(map[string][]string{
		"culinary_hospitality": {"cooking", "baking", "plating", "pastry", "menu planning"},
	}), types.ExperienceProfile{MaxYears: 5}, nil,
		types.ContextualAnalysis{MatchLevel: types.MatchPerfect}, req)

	weak := Generate(40, skillsWith(map[string][]string{
		"culinary_hospitality": {"cooking"},
	}), types.ExperienceProfile{MaxYears: 5}, nil,
		types.ContextualAnalysis{MatchLevel: types.MatchNone}, req)

	assert.True(t, containsSubstring(strong, "Strong culinary skill set"))
	assert.True(t, containsSubstring(weak, "Culinary skill list is thin"))
}

func TestGenerate_GenericWarnings(t *testing.T) {
	recs := Generate(30, skillsWith(map[string][]string{"databases": {"sql"}}),
		types.ExperienceProfile{MaxYears: 0}, nil,
		types.ContextualAnalysis{MatchLevel: types.MatchNone}, nil)

	assert.True(t, containsSubstring(recs, "Skill list is short"))
	assert.True(t, containsSubstring(recs, "years-of-experience"))
}

func TestGenerate_AchievementsNote(t *testing.T) {
	achievements := []types.Achievement{
		{Statement: "increased sales by 20%"},
		{Statement: "reduced costs by 15%"},
	}

	recs := Generate(75, skillsWith(nil), types.ExperienceProfile{MaxYears: 3}, achievements,
		types.ContextualAnalysis{MatchLevel: types.MatchNone}, nil)

	assert.True(t, containsSubstring(recs, "quantifies 2 achievements"))
}

func TestGenerate_NoRoleCommentaryForGeneral(t *testing.T) {
	recs := Generate(75, skillsWith(nil), types.ExperienceProfile{MaxYears: 3}, nil,
		types.ContextualAnalysis{MatchLevel: types.MatchNone},
		&types.JobRequirements{JobRole: types.RoleGeneral})

	for _, r := range recs {
		assert.NotContains(t, r, "culinary")
	}
}

func containsSubstring(recs []string, substring string) bool {
	for _, r := range recs {
		if strings.Contains(r, substring) {
			return true
		}
	}
	return false
}
