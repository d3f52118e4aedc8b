package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-screener/internal/roles"
	"github.com/jonathan/resume-screener/internal/types"
)

func skillsWith(categories map[string][]string) *types.ExtractedSkills {
	out := &types.ExtractedSkills{Categories: make(map[string]types.SkillGroup)}
	for category, list := range categories {
		out.Categories[category] = types.FlatGroup(list...)
	}
	return out
}

func TestScoreFit_NilRequirementsAreNeutral(t *testing.T) {
	fit := ScoreFit(skillsWith(nil), types.ExperienceProfile{}, types.EducationProfile{}, nil, roles.DefaultRegistry())

	assert.Equal(t, 50.0, fit.OverallFit)
	assert.Equal(t, 50.0, fit.SkillsFit)
	assert.Equal(t, 50.0, fit.ExperienceFit)
	assert.Equal(t, 50.0, fit.EducationFit)
	assert.Equal(t, 50.0, fit.KeywordMatch)
	assert.Equal(t, roles.DefaultWeights, fit.FitWeights)
}

func TestScoreFit_RoleProfileWeightsUsed(t *testing.T) {
	req := &types.JobRequirements{
		JobRole: types.RoleDataAnalyst,
		RequiredSkills: map[string]types.SkillGroup{
			"databases": types.FlatGroup("sql"),
		},
	}

	fit := ScoreFit(
		skillsWith(map[string][]string{"databases": {"sql"}}),
		types.ExperienceProfile{},
		types.EducationProfile{},
		req,
		roles.DefaultRegistry(),
	)

	profile, ok := roles.Profile(types.RoleDataAnalyst)
	assert.True(t, ok)
	assert.Equal(t, profile.Weights, fit.FitWeights)
	assert.Equal(t, 100.0, fit.SkillsFit)
}

func TestSkillsFitScore_SubstringMatching(t *testing.T) {
	req := &types.JobRequirements{
		JobRole: types.RoleDataAnalyst,
		RequiredSkills: map[string]types.SkillGroup{
			"databases": types.FlatGroup("sql", "mongodb"),
		},
	}

	// "postgresql" covers the "sql" requirement by substring; mongodb is
	// missing, so half the required skills match.
	fit := ScoreFit(
		skillsWith(map[string][]string{"databases": {"postgresql"}}),
		types.ExperienceProfile{},
		types.EducationProfile{},
		req,
		roles.DefaultRegistry(),
	)

	assert.Equal(t, 50.0, fit.SkillsFit)
}

func TestExperienceFitScore_NeutralWithoutRequirement(t *testing.T) {
	assert.Equal(t, 75.0, experienceFitScore(10, 0))
}

func TestExperienceFitScore_OverAndUnder(t *testing.T) {
	// 5 resume years against a 3-year requirement: 75 + 2*5.
	assert.Equal(t, 85.0, experienceFitScore(5, 3))
	// 1 resume year against a 4-year requirement: 75 - 3*10.
	assert.Equal(t, 45.0, experienceFitScore(1, 4))
	// Deep shortfalls floor at zero.
	assert.Equal(t, 0.0, experienceFitScore(0, 20))
}

func TestExperienceFitScore_CapsAtHundred(t *testing.T) {
	assert.Equal(t, 100.0, experienceFitScore(30, 1))
}

func TestEducationFitScore_NotRequired(t *testing.T) {
	score := educationFitScore(nil, types.EducationRequirement{DegreeRequired: false})

	assert.Equal(t, 75.0, score)
}

func TestEducationFitScore_MissingRequiredDegree(t *testing.T) {
	score := educationFitScore(nil, types.EducationRequirement{
		DegreeRequired:  true,
		RequiredDegrees: []string{"bachelor"},
	})

	assert.Equal(t, 20.0, score)
}

func TestEducationFitScore_Hierarchy(t *testing.T) {
	req := types.EducationRequirement{DegreeRequired: true, RequiredDegrees: []string{"master"}}

	// Meets or exceeds: full marks.
	assert.Equal(t, 100.0, educationFitScore([]string{"phd"}, req))
	assert.Equal(t, 100.0, educationFitScore([]string{"master"}, req))
	// One level short: 80.
	assert.Equal(t, 80.0, educationFitScore([]string{"bachelor"}, req))
	// Further short: 50.
	assert.Equal(t, 50.0, educationFitScore([]string{"diploma"}, req))
}

func TestEducationFitScore_GenericDegreeDefaultsToBachelor(t *testing.T) {
	// Requirement only says "degree"; a bachelor satisfies it.
	req := types.EducationRequirement{DegreeRequired: true, RequiredDegrees: []string{"degree"}}

	assert.Equal(t, 100.0, educationFitScore([]string{"b.tech"}, req))
}

func TestKeywordMatchScore_Fraction(t *testing.T) {
	skills := skillsWith(map[string][]string{
		"databases":    {"sql server"},
		"devops_tools": {"docker"},
	})

	score := keywordMatchScore(skills, []string{"sql", "docker", "terraform", "ansible"})

	assert.Equal(t, 50.0, score)
}

func TestKeywordMatchScore_NeutralWithoutKeywords(t *testing.T) {
	assert.Equal(t, 50.0, keywordMatchScore(skillsWith(nil), nil))
}
