// Package analyzer implements a rule-based aspect/sentiment classifier for
// product review text, with bounded-concurrency batch processing and
// batch-level sentiment aggregation. All three response shapes are thin
// projections over one internal batch model.
package analyzer

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Analyzer ties the classifier variants, the batch coordinator and the
// response projections together. Safe for concurrent use.
type Analyzer struct {
	rag            Classifier
	baseline       Classifier
	maxConcurrency int
	logger         *slog.Logger

	// Metrics tracking
	totalBatches int
	totalItems   int
	counts       SentimentCounts
	metricsLock  sync.RWMutex
}

// NewAnalyzer creates a new Analyzer with the given configuration.
func NewAnalyzer(cfg Config) *Analyzer {
	cfg.applyDefaults()

	return &Analyzer{
		rag:            cfg.RAG,
		baseline:       cfg.Baseline,
		maxConcurrency: cfg.MaxConcurrency,
		logger:         cfg.Logger,
	}
}

// batchModel is the canonical internal result every entry point projects from.
type batchModel struct {
	results   []BatchResult
	aggregate Aggregate
	elapsed   time.Duration
}

// run executes the full pipeline: validation, bounded fan-out, aggregation,
// wall-clock timing. Every public entry point goes through here.
func (a *Analyzer) run(ctx context.Context, items []Item, includeBaseline bool, maxConcurrency int) (batchModel, error) {
	start := time.Now()

	results, err := a.runBatch(ctx, items, includeBaseline, maxConcurrency)
	if err != nil {
		a.logger.Warn("batch failed", slog.Int("items", len(items)), slog.Any("error", err))
		return batchModel{}, err
	}

	agg, err := aggregateResults(results)
	if err != nil {
		return batchModel{}, err
	}

	elapsed := time.Since(start)
	a.recordBatch(agg)

	a.logger.Debug("batch complete",
		slog.Int("items", len(results)),
		slog.Int("positive", agg.RAGCounts.Positive),
		slog.Int("negative", agg.RAGCounts.Negative),
		slog.Int("neutral", agg.RAGCounts.Neutral),
		slog.Duration("elapsed", elapsed))

	return batchModel{results: results, aggregate: agg, elapsed: elapsed}, nil
}

// AnalyzeText classifies a single text and returns the flattened single-item
// response shape: the primary record's fields plus an echo of the input.
func (a *Analyzer) AnalyzeText(ctx context.Context, text string) (*SingleResponse, error) {
	items := []Item{{ID: uuid.NewString(), Text: text}}

	m, err := a.run(ctx, items, false, 1)
	if err != nil {
		return nil, err
	}

	rec := m.results[0].RAG[0]
	return &SingleResponse{
		Aspect:     rec.Aspect,
		Sentiment:  rec.Sentiment,
		Confidence: rec.Confidence,
		Reasoning:  rec.Reasoning,
		Text:       text,
	}, nil
}

// AnalyzeVariants classifies a single text under the primary variant and,
// when requested, the baseline variant, returning both record sequences side
// by side.
func (a *Analyzer) AnalyzeVariants(ctx context.Context, text string, includeBaseline bool) (*VariantResponse, error) {
	items := []Item{{ID: uuid.NewString(), Text: text}}

	m, err := a.run(ctx, items, includeBaseline, 1)
	if err != nil {
		return nil, err
	}

	return &VariantResponse{
		RAGResults:       m.results[0].RAG,
		BaselineResults:  m.results[0].Baseline,
		ProcessingTimeMS: m.elapsed.Milliseconds(),
	}, nil
}

// AnalyzeBatch classifies every item in the request with bounded concurrency
// and returns per-item results in input order together with the sentiment
// aggregate. Items with an empty ID are assigned a generated UUID before
// validation.
func (a *Analyzer) AnalyzeBatch(ctx context.Context, req BatchRequest) (*BatchResponse, error) {
	items := make([]Item, len(req.Items))
	for i, it := range req.Items {
		if it.ID == "" {
			it.ID = uuid.NewString()
		}
		items[i] = it
	}

	maxConcurrency := req.MaxConcurrency
	if maxConcurrency == 0 {
		maxConcurrency = a.maxConcurrency
	}

	m, err := a.run(ctx, items, req.IncludeBaseline, maxConcurrency)
	if err != nil {
		return nil, err
	}

	return &BatchResponse{
		Results:          m.results,
		Aggregate:        m.aggregate,
		ProcessingTimeMS: m.elapsed.Milliseconds(),
	}, nil
}

// Metrics returns a snapshot of the analyzer's activity since creation.
func (a *Analyzer) Metrics() Metrics {
	a.metricsLock.RLock()
	defer a.metricsLock.RUnlock()

	return Metrics{
		TotalBatches: a.totalBatches,
		TotalItems:   a.totalItems,
		Counts:       a.counts,
	}
}

// recordBatch records a completed batch for metrics
func (a *Analyzer) recordBatch(agg Aggregate) {
	a.metricsLock.Lock()
	defer a.metricsLock.Unlock()

	a.totalBatches++
	a.totalItems += agg.RAGCounts.Total()
	a.counts.Positive += agg.RAGCounts.Positive
	a.counts.Negative += agg.RAGCounts.Negative
	a.counts.Neutral += agg.RAGCounts.Neutral
}
