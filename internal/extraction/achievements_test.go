package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/types"
)

func TestExtractAchievements_FinancialHighImpact(t *testing.T) {
	achievements := ExtractAchievements("Increased annual revenue by 60% across two regions.")

	require.Len(t, achievements, 1)
	assert.Equal(t, types.AchievementFinancial, achievements[0].Type)
	assert.Equal(t, types.ImpactHigh, achievements[0].ImpactLevel)
}

func TestExtractAchievements_DollarAmountIsHighImpact(t *testing.T) {
	achievements := ExtractAchievements("Reduced infrastructure spend by $50,000 per quarter.")

	require.Len(t, achievements, 1)
	assert.Equal(t, types.ImpactHigh, achievements[0].ImpactLevel)
}

func TestExtractAchievements_MediumAndLowPercentages(t *testing.T) {
	achievements := ExtractAchievements(
		"Improved process efficiency by 25%.\nReduced onboarding errors by 10%.")

	require.Len(t, achievements, 2)
	assert.Equal(t, types.ImpactMedium, achievements[0].ImpactLevel)
	assert.Equal(t, types.AchievementOperational, achievements[0].Type)
	assert.Equal(t, types.ImpactLow, achievements[1].ImpactLevel)
}

func TestExtractAchievements_CustomerFocused(t *testing.T) {
	achievements := ExtractAchievements("Improved customer satisfaction scores by 35%.")

	require.Len(t, achievements, 1)
	assert.Equal(t, types.AchievementCustomerFocused, achievements[0].Type)
}

func TestExtractAchievements_GeneralWithoutKeywords(t *testing.T) {
	achievements := ExtractAchievements("Delivered 4 releases ahead of schedule.")

	require.Len(t, achievements, 1)
	assert.Equal(t, types.AchievementGeneral, achievements[0].Type)
	// No percentage or dollar amount defaults to medium impact.
	assert.Equal(t, types.ImpactMedium, achievements[0].ImpactLevel)
}

func TestExtractAchievements_NoVerbNoAchievement(t *testing.T) {
	achievements := ExtractAchievements("Revenue was 60% higher than the prior year.")

	assert.Empty(t, achievements)
}

func TestExtractAchievements_VerbWithoutNumberIgnored(t *testing.T) {
	achievements := ExtractAchievements("Improved team morale considerably.")

	assert.Empty(t, achievements)
}
