package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-screener/internal/types"
)

func TestFallbackReport_KeywordScan(t *testing.T) {
	engine := newTestEngine(t)

	report := engine.fallbackReport("python developer with 4 years on docker and mysql")

	assert.GreaterOrEqual(t, report.TotalSkillsCount, 3)
	assert.Equal(t, 4, report.ExperienceInfo.MaxYears)
	assert.Equal(t, 50.0, report.DetailedScores.Education)
	assert.Equal(t, types.ConfidenceLow, report.ConfidenceLevel)
	assert.True(t, report.JobRoleIdentified.IsGeneral())
	assert.GreaterOrEqual(t, report.OverallScore, 0.0)
	assert.LessOrEqual(t, report.OverallScore, 100.0)
	assert.NotEmpty(t, report.Recommendations)
}

func TestFallbackReport_EmptyText(t *testing.T) {
	engine := newTestEngine(t)

	report := engine.fallbackReport("")

	assert.Equal(t, 0, report.TotalSkillsCount)
	assert.Equal(t, 0, report.ExperienceInfo.MaxYears)
	// Only the flat education component contributes: 50 * 0.2.
	assert.Equal(t, 10.0, report.OverallScore)
}

func TestFallbackReport_NeverPanics(t *testing.T) {
	engine := newTestEngine(t)

	inputs := []string{"", "\x00\xff", "years years years", "%%%$$$"}
	for _, input := range inputs {
		assert.NotPanics(t, func() {
			_ = engine.fallbackReport(input)
		})
	}
}
