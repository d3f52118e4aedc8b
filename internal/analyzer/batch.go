package analyzer

import (
	"context"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-screener/internal/types"
)

// BatchItem is one resume in a batch run.
type BatchItem struct {
	Name string
	Text string
}

// BatchResult pairs a batch item with its report. Index is the item's
// position in the input, which doubles as the ranking tie-breaker.
type BatchResult struct {
	Name   string            `json:"name"`
	Index  int               `json:"index"`
	Report types.ScoreReport `json:"report"`
}

// AnalyzeBatch scores every resume against the same job description.
// Items are independent, so they run in parallel over the read-only
// taxonomy; results come back in input order. Faulting items get the
// fallback report rather than failing the batch.
func (e *Engine) AnalyzeBatch(ctx context.Context, items []BatchItem, jobDescription, jobTitle string) ([]BatchResult, error) {
	results := make([]BatchResult, len(items))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = BatchResult{
				Name:   item.Name,
				Index:  i,
				Report: e.AnalyzeOrFallback(item.Text, jobDescription, jobTitle),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Rank orders batch results by descending overall score. Ties keep input
// order, so equal candidates rank by submission order.
func Rank(results []BatchResult) []BatchResult {
	ranked := make([]BatchResult, len(results))
	copy(ranked, results)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Report.OverallScore > ranked[j].Report.OverallScore
	})
	return ranked
}
