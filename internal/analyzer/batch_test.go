package analyzer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeBatch_ResultsInInputOrder(t *testing.T) {
	engine := newTestEngine(t)
	items := []BatchItem{
		{Name: "a.txt", Text: chefResume},
		{Name: "b.txt", Text: analystResume},
		{Name: "c.txt", Text: "Short note."},
	}

	results, err := engine.AnalyzeBatch(context.Background(), items, "", "")

	require.NoError(t, err)
	require.Len(t, results, 3)
	for i, result := range results {
		assert.Equal(t, items[i].Name, result.Name)
		assert.Equal(t, i, result.Index)
	}
}

func TestAnalyzeBatch_MatchesSequentialAnalysis(t *testing.T) {
	engine := newTestEngine(t)
	jd := "Hiring a chef for a busy kitchen."
	items := []BatchItem{
		{Name: "chef.txt", Text: chefResume},
		{Name: "analyst.txt", Text: analystResume},
	}

	results, err := engine.AnalyzeBatch(context.Background(), items, jd, "")
	require.NoError(t, err)

	for i, item := range items {
		expected := engine.AnalyzeOrFallback(item.Text, jd, "")
		assert.Equal(t, expected, results[i].Report, "item %s", item.Name)
	}
}

func TestAnalyzeBatch_CancelledContext(t *testing.T) {
	engine := newTestEngine(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.AnalyzeBatch(ctx, []BatchItem{{Name: "a.txt", Text: chefResume}}, "", "")

	assert.Error(t, err)
}

func TestAnalyzeBatch_Empty(t *testing.T) {
	engine := newTestEngine(t)

	results, err := engine.AnalyzeBatch(context.Background(), nil, "", "")

	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestRank_BestFirstStableTies(t *testing.T) {
	engine := newTestEngine(t)
	jd := "Hiring a chef for a busy kitchen."
	items := []BatchItem{
		{Name: "weak.txt", Text: "Looking for my first job."},
		{Name: "strong.txt", Text: chefResume},
		{Name: "weak2.txt", Text: "Looking for my first job."},
	}

	results, err := engine.AnalyzeBatch(context.Background(), items, jd, "")
	require.NoError(t, err)

	ranked := Rank(results)

	require.Len(t, ranked, 3)
	assert.Equal(t, "strong.txt", ranked[0].Name)
	// Equal scores keep submission order.
	assert.Equal(t, "weak.txt", ranked[1].Name)
	assert.Equal(t, "weak2.txt", ranked[2].Name)
	assert.GreaterOrEqual(t, ranked[0].Report.OverallScore, ranked[1].Report.OverallScore)
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	engine := newTestEngine(t)
	items := []BatchItem{
		{Name: "a.txt", Text: "Looking for my first job."},
		{Name: "b.txt", Text: chefResume},
	}

	results, err := engine.AnalyzeBatch(context.Background(), items, "", "")
	require.NoError(t, err)

	_ = Rank(results)

	assert.Equal(t, "a.txt", results[0].Name)
	assert.Equal(t, "b.txt", results[1].Name)
}
