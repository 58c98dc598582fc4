// Package testutil provides mock implementations for testing.
package testutil

import (
	"context"
	"sync"

	analyzer "github.com/FrenchMajesty/aspect-classifier"
)

// MockClassifier is a mock implementation of analyzer.Classifier for testing
type MockClassifier struct {
	ClassifyFunc func(ctx context.Context, text string) (analyzer.Record, error)

	mu        sync.Mutex
	CallCount int
	LastText  string
}

func (m *MockClassifier) Classify(ctx context.Context, text string) (analyzer.Record, error) {
	m.mu.Lock()
	m.CallCount++
	m.LastText = text
	m.mu.Unlock()

	if m.ClassifyFunc != nil {
		return m.ClassifyFunc(ctx, text)
	}

	// Default: a fixed neutral record
	return analyzer.Record{
		Aspect:     analyzer.AspectGeneral,
		Sentiment:  analyzer.SentimentNeutral,
		Confidence: 0.70,
		Reasoning:  "neutral/indeterminate tone",
	}, nil
}

// Calls returns the number of Classify invocations so far
func (m *MockClassifier) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.CallCount
}
