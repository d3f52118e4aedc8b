package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/matching"
	"github.com/jonathan/resume-screener/internal/roles"
	"github.com/jonathan/resume-screener/internal/taxonomy"
	"github.com/jonathan/resume-screener/internal/types"
)

func newTestParser(t *testing.T) *matching.Matcher {
	t.Helper()
	return matching.NewMatcher(taxonomy.Default())
}

func TestExtractRequirements_DataAnalystPosting(t *testing.T) {
	matcher := newTestParser(t)
	jd := "Looking for a Data Analyst with 3+ years experience in SQL and Tableau. Bachelor's degree required."

	req := ExtractRequirements(jd, matcher, roles.DefaultRegistry())

	assert.Equal(t, types.RoleDataAnalyst, req.JobRole)
	assert.Greater(t, req.RoleConfidence, 0.0)

	require.Contains(t, req.RequiredSkills, "databases")
	require.Contains(t, req.RequiredSkills, "analytics_visualization")
	assert.Contains(t, req.RequiredSkills["databases"].AllSkills(), "sql")
	assert.Contains(t, req.RequiredSkills["analytics_visualization"].AllSkills(), "tableau")

	assert.Equal(t, 3, req.ExperienceRequirements.MinYears)
	assert.Equal(t, 3, req.ExperienceRequirements.PreferredYears)

	assert.True(t, req.EducationRequirements.DegreeRequired)
	assert.Contains(t, req.EducationRequirements.RequiredDegrees, "bachelor")

	assert.NotEmpty(t, req.Keywords)
}

func TestExtractRequirements_EmptyDescription(t *testing.T) {
	matcher := newTestParser(t)

	req := ExtractRequirements("   \n\t  ", matcher, roles.DefaultRegistry())

	assert.True(t, req.JobRole.IsGeneral())
	assert.True(t, req.Empty())
}

func TestExtractRequirements_ProfileCategoriesOrderedFirst(t *testing.T) {
	matcher := newTestParser(t)
	jd := "Data analyst role. Must know Excel, SQL, Python, and Docker."

	req := ExtractRequirements(jd, matcher, roles.DefaultRegistry())

	require.Equal(t, types.RoleDataAnalyst, req.JobRole)
	// The data analyst profile lists programming_languages,
	// analytics_visualization, databases; matched profile categories come
	// before the rest, which sort alphabetically.
	require.Len(t, req.RequiredCategoryOrder, 4)
	assert.Equal(t, []string{
		"programming_languages", "analytics_visualization", "databases",
		"devops_tools",
	}, req.RequiredCategoryOrder)
}

func TestIdentifyRole_ConfidenceFraction(t *testing.T) {
	role, confidence := IdentifyRole("hiring a data analyst for data analysis and reporting analyst work")

	assert.Equal(t, types.RoleDataAnalyst, role)
	// 3 of 5 data analyst keywords present.
	assert.InDelta(t, 0.6, confidence, 0.001)
}

func TestIdentifyRole_NoKeywords(t *testing.T) {
	role, confidence := IdentifyRole("a very generic posting about working hard")

	assert.True(t, role.IsGeneral())
	assert.Equal(t, 0.0, confidence)
}

func TestIdentifyRole_HigherConfidenceWins(t *testing.T) {
	// One chef keyword versus three nurse keywords.
	role, _ := IdentifyRole("registered nurse for our nursing team; icu nurse experience preferred. kitchen duties excluded")

	assert.Equal(t, types.RoleNurse, role)
}

func TestRequirementYears_MinAndPreferred(t *testing.T) {
	minYears, preferredYears := requirementYears("minimum of 2 years required, 5+ years preferred")

	assert.Equal(t, 2, minYears)
	assert.Equal(t, 5, preferredYears)
}

func TestRequirementYears_NoMention(t *testing.T) {
	minYears, preferredYears := requirementYears("no tenure requirement at all")

	assert.Equal(t, 0, minYears)
	assert.Equal(t, 0, preferredYears)
}

func TestTopKeywords_FrequencyThenFirstSeen(t *testing.T) {
	keywords := TopKeywords("kitchen kitchen kitchen menu menu pastry service", 3)

	assert.Equal(t, []string{"kitchen", "menu", "pastry"}, keywords)
}

func TestTopKeywords_DropsStopWordsAndShortTokens(t *testing.T) {
	keywords := TopKeywords("the and for you we go on a cooking spree", 10)

	assert.NotContains(t, keywords, "the")
	assert.NotContains(t, keywords, "and")
	assert.NotContains(t, keywords, "go")
	assert.Contains(t, keywords, "cooking")
}

func TestTopKeywords_StripsPunctuation(t *testing.T) {
	keywords := TopKeywords("excellent, communication! skills... communication.", 5)

	assert.Contains(t, keywords, "communication")
	assert.Equal(t, "communication", keywords[0])
}
