package analyzer

import "fmt"

// InvalidInputError reports a request that was rejected before any
// classification work started: empty or whitespace-only text, duplicate item
// IDs within a batch, or a non-positive concurrency limit.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return "invalid input: " + e.Reason
}

func invalidInputf(format string, args ...any) error {
	return &InvalidInputError{Reason: fmt.Sprintf(format, args...)}
}

// AggregationError reports an internal invariant violation observed while
// aggregating a completed batch: an item with no primary record, or a record
// carrying an unrecognized sentiment. It is fatal for the whole batch; counts
// are never silently corrected.
type AggregationError struct {
	ItemID string
	Reason string
}

func (e *AggregationError) Error() string {
	if e.ItemID != "" {
		return fmt.Sprintf("aggregation failed for item %q: %s", e.ItemID, e.Reason)
	}
	return "aggregation failed: " + e.Reason
}
