package analyzer

import "log/slog"

const (
	// DefaultMaxConcurrency is the concurrency ceiling applied to batch
	// requests that leave MaxConcurrency unset
	DefaultMaxConcurrency = 4
)

// Config holds configuration for the Analyzer.
type Config struct {
	// RAG produces the primary classification. If nil, uses the built-in
	// keyword classifier.
	RAG Classifier

	// Baseline produces the secondary classification when a caller requests
	// it. If nil, uses the same keyword policy as the primary. This is the
	// substitution point for plugging in a genuinely different engine, e.g.
	// adapters.NewVaderClassifier or adapters.NewLLMClassifier.
	Baseline Classifier

	// MaxConcurrency is the default concurrency ceiling for batch requests
	// that don't specify one. If 0, uses DefaultMaxConcurrency.
	MaxConcurrency int

	// Logger receives debug-level progress logging. If nil, uses slog.Default().
	Logger *slog.Logger
}

// applyDefaults fills in default values for unset config fields
func (c *Config) applyDefaults() {
	if c.RAG == nil {
		c.RAG = NewKeywordClassifier()
	}

	if c.Baseline == nil {
		c.Baseline = c.RAG
	}

	if c.MaxConcurrency <= 0 {
		c.MaxConcurrency = DefaultMaxConcurrency
	}

	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}
