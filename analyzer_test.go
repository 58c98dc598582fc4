package analyzer_test

import (
	"context"
	"errors"
	"testing"

	analyzer "github.com/FrenchMajesty/aspect-classifier"
	"github.com/FrenchMajesty/aspect-classifier/pkg/testutil"
)

func TestAnalyzeTextFlattensPrimaryRecord(t *testing.T) {
	a := analyzer.NewAnalyzer(analyzer.Config{})

	const text = "The camera is amazing"
	resp, err := a.AnalyzeText(context.Background(), text)
	if err != nil {
		t.Fatalf("AnalyzeText failed: %v", err)
	}

	if resp.Aspect != analyzer.AspectCamera {
		t.Errorf("aspect = %q, want %q", resp.Aspect, analyzer.AspectCamera)
	}
	if resp.Sentiment != analyzer.SentimentPositive {
		t.Errorf("sentiment = %q, want %q", resp.Sentiment, analyzer.SentimentPositive)
	}
	if resp.Confidence != 0.85 {
		t.Errorf("confidence = %v, want 0.85", resp.Confidence)
	}
	if resp.Text != text {
		t.Errorf("echoed text = %q, want the original input unmutated", resp.Text)
	}
}

func TestAnalyzeTextEmptyInput(t *testing.T) {
	a := analyzer.NewAnalyzer(analyzer.Config{})

	_, err := a.AnalyzeText(context.Background(), "  \t ")
	if err == nil {
		t.Fatal("expected error for whitespace-only text")
	}

	var invalid *analyzer.InvalidInputError
	if !errors.As(err, &invalid) {
		t.Errorf("expected InvalidInputError, got %T: %v", err, err)
	}
}

func TestAnalyzeVariants(t *testing.T) {
	baseline := &testutil.MockClassifier{
		ClassifyFunc: func(ctx context.Context, text string) (analyzer.Record, error) {
			return analyzer.Record{
				Aspect:     analyzer.AspectGeneral,
				Sentiment:  analyzer.SentimentNegative,
				Confidence: 0.5,
				Reasoning:  "baseline disagrees",
			}, nil
		},
	}
	a := analyzer.NewAnalyzer(analyzer.Config{Baseline: baseline})

	resp, err := a.AnalyzeVariants(context.Background(), "battery life is great", true)
	if err != nil {
		t.Fatalf("AnalyzeVariants failed: %v", err)
	}

	if len(resp.RAGResults) != 1 {
		t.Fatalf("got %d rag results, want 1", len(resp.RAGResults))
	}
	if resp.RAGResults[0].Sentiment != analyzer.SentimentPositive {
		t.Errorf("rag sentiment = %q, want positive", resp.RAGResults[0].Sentiment)
	}
	if len(resp.BaselineResults) != 1 {
		t.Fatalf("got %d baseline results, want 1", len(resp.BaselineResults))
	}
	if resp.BaselineResults[0].Reasoning != "baseline disagrees" {
		t.Errorf("baseline reasoning = %q", resp.BaselineResults[0].Reasoning)
	}
	if baseline.Calls() != 1 {
		t.Errorf("baseline called %d times, want 1", baseline.Calls())
	}
	if resp.ProcessingTimeMS < 0 {
		t.Errorf("processing time = %d, want non-negative", resp.ProcessingTimeMS)
	}
}

func TestAnalyzeVariantsWithoutBaseline(t *testing.T) {
	baseline := &testutil.MockClassifier{}
	a := analyzer.NewAnalyzer(analyzer.Config{Baseline: baseline})

	resp, err := a.AnalyzeVariants(context.Background(), "battery life is great", false)
	if err != nil {
		t.Fatalf("AnalyzeVariants failed: %v", err)
	}

	if len(resp.BaselineResults) != 0 {
		t.Errorf("got %d baseline results, want 0", len(resp.BaselineResults))
	}
	if baseline.Calls() != 0 {
		t.Errorf("baseline called %d times, want 0", baseline.Calls())
	}
}

func TestAnalyzeBatchAssignsMissingIDs(t *testing.T) {
	a := analyzer.NewAnalyzer(analyzer.Config{})

	resp, err := a.AnalyzeBatch(context.Background(), analyzer.BatchRequest{
		Items: []analyzer.Item{
			{Text: "no id here"},
			{ID: "explicit", Text: "has an id"},
			{Text: "also no id"},
		},
	})
	if err != nil {
		t.Fatalf("AnalyzeBatch failed: %v", err)
	}

	if resp.Results[1].ID != "explicit" {
		t.Errorf("results[1].ID = %q, want the caller-supplied id", resp.Results[1].ID)
	}

	seen := map[string]bool{}
	for i, r := range resp.Results {
		if r.ID == "" {
			t.Errorf("results[%d].ID is empty, want a generated id", i)
		}
		if seen[r.ID] {
			t.Errorf("generated id %q is not unique", r.ID)
		}
		seen[r.ID] = true
	}
}

func TestMetricsAccumulate(t *testing.T) {
	a := analyzer.NewAnalyzer(analyzer.Config{})

	if _, err := a.AnalyzeText(context.Background(), "great screen"); err != nil {
		t.Fatalf("AnalyzeText failed: %v", err)
	}
	if _, err := a.AnalyzeBatch(context.Background(), analyzer.BatchRequest{
		Items: []analyzer.Item{
			{ID: "a", Text: "terrible sound"},
			{ID: "b", Text: "a plain box"},
		},
	}); err != nil {
		t.Fatalf("AnalyzeBatch failed: %v", err)
	}

	m := a.Metrics()
	if m.TotalBatches != 2 {
		t.Errorf("TotalBatches = %d, want 2", m.TotalBatches)
	}
	if m.TotalItems != 3 {
		t.Errorf("TotalItems = %d, want 3", m.TotalItems)
	}
	want := analyzer.SentimentCounts{Positive: 1, Negative: 1, Neutral: 1}
	if m.Counts != want {
		t.Errorf("Counts = %+v, want %+v", m.Counts, want)
	}
}

func TestFailedBatchDoesNotCountInMetrics(t *testing.T) {
	a := analyzer.NewAnalyzer(analyzer.Config{})

	_, err := a.AnalyzeBatch(context.Background(), analyzer.BatchRequest{
		Items: []analyzer.Item{{ID: "x", Text: "ok"}, {ID: "x", Text: "dup"}},
	})
	if err == nil {
		t.Fatal("expected duplicate-id error")
	}

	m := a.Metrics()
	if m.TotalBatches != 0 || m.TotalItems != 0 {
		t.Errorf("metrics recorded a failed batch: %+v", m)
	}
}
