package analyzer

import "context"

// Classifier assigns an aspect, sentiment, confidence and reasoning to one
// text. Implementations must be safe for concurrent use; the built-in keyword
// classifier additionally guarantees determinism and performs no I/O.
type Classifier interface {
	Classify(ctx context.Context, text string) (Record, error)
}
