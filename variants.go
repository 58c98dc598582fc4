package analyzer

import (
	"context"
	"fmt"
	"sync"
)

// variantSet holds the records produced for one item across variants.
type variantSet struct {
	rag      []Record
	baseline []Record
}

// runVariants produces the primary record for a text and, when requested, a
// baseline record from the configured secondary classifier. The two
// classifications share no mutable state, so they run concurrently.
func (a *Analyzer) runVariants(ctx context.Context, text string, includeBaseline bool) (variantSet, error) {
	if !includeBaseline {
		rec, err := a.rag.Classify(ctx, text)
		if err != nil {
			return variantSet{}, fmt.Errorf("rag classification failed: %w", err)
		}
		return variantSet{rag: []Record{rec}, baseline: []Record{}}, nil
	}

	var (
		wg          sync.WaitGroup
		ragRec      Record
		baseRec     Record
		ragErr      error
		baselineErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		ragRec, ragErr = a.rag.Classify(ctx, text)
	}()
	go func() {
		defer wg.Done()
		baseRec, baselineErr = a.baseline.Classify(ctx, text)
	}()
	wg.Wait()

	if ragErr != nil {
		return variantSet{}, fmt.Errorf("rag classification failed: %w", ragErr)
	}
	if baselineErr != nil {
		return variantSet{}, fmt.Errorf("baseline classification failed: %w", baselineErr)
	}

	return variantSet{rag: []Record{ragRec}, baseline: []Record{baseRec}}, nil
}
