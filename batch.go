package analyzer

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"
)

// validateItems rejects a batch before any classification work starts.
// Every rejection is an InvalidInputError.
func validateItems(items []Item, maxConcurrency int) error {
	if maxConcurrency < 1 {
		return invalidInputf("max_concurrency must be at least 1, got %d", maxConcurrency)
	}

	seen := make(map[string]struct{}, len(items))
	for i, it := range items {
		if it.ID == "" {
			return invalidInputf("item %d has an empty id", i)
		}
		if _, dup := seen[it.ID]; dup {
			return invalidInputf("duplicate item id %q", it.ID)
		}
		seen[it.ID] = struct{}{}

		if strings.TrimSpace(it.Text) == "" {
			return invalidInputf("item %q has empty text", it.ID)
		}
	}

	return nil
}

// runBatch classifies every item with at most maxConcurrency concurrent
// tasks. Results are written into an index-addressed slice, so output order
// equals input order regardless of completion order. Any single task failure
// cancels the remaining tasks and fails the whole batch; partial results are
// never returned.
func (a *Analyzer) runBatch(ctx context.Context, items []Item, includeBaseline bool, maxConcurrency int) ([]BatchResult, error) {
	if err := validateItems(items, maxConcurrency); err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return []BatchResult{}, nil
	}

	results := make([]BatchResult, len(items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrency)

	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			set, err := a.runVariants(gctx, item.Text, includeBaseline)
			if err != nil {
				return err
			}

			results[i] = BatchResult{
				ID:       item.ID,
				RAG:      set.rag,
				Baseline: set.baseline,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
