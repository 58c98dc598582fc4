// Package adapters provides alternative Classifier implementations for the
// variant seam: a VADER rule-based engine and an LLM-backed classifier.
package adapters

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/jonreiter/govader"
	"github.com/russross/blackfriday/v2"

	analyzer "github.com/FrenchMajesty/aspect-classifier"
	"github.com/FrenchMajesty/aspect-classifier/internal/lexicon"
)

// Compound-score cutoffs for mapping VADER output to a sentiment label.
const (
	vaderPositiveThreshold = 0.20
	vaderNegativeThreshold = -0.20
)

// VaderClassifier scores sentiment with the VADER lexicon-and-rule engine.
// Aspect detection still uses the marker tables, since VADER has no notion
// of product aspects. Deterministic: same text, same score.
type VaderClassifier struct {
	engine *govader.SentimentIntensityAnalyzer
}

// NewVaderClassifier creates a VADER-backed classifier usable as the
// baseline variant.
func NewVaderClassifier() *VaderClassifier {
	return &VaderClassifier{
		engine: govader.NewSentimentIntensityAnalyzer(),
	}
}

// stripMarkdown renders markdown to text and collapses whitespace, so marker
// words inside formatting still match.
func stripMarkdown(input string) string {
	output := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	return strings.Join(strings.Fields(string(output)), " ")
}

// Classify implements analyzer.Classifier.
func (v *VaderClassifier) Classify(_ context.Context, text string) (analyzer.Record, error) {
	if strings.TrimSpace(text) == "" {
		return analyzer.Record{}, &analyzer.InvalidInputError{Reason: "cannot classify empty text"}
	}

	plain := stripMarkdown(text)
	score := v.engine.PolarityScores(plain).Compound

	rec := analyzer.Record{
		Aspect:    analyzer.Aspect(lexicon.DetectAspect(lexicon.Normalize(plain))),
		Reasoning: fmt.Sprintf("VADER compound score %.3f", score),
	}

	switch {
	case score >= vaderPositiveThreshold:
		rec.Sentiment = analyzer.SentimentPositive
		rec.Confidence = clamp01(math.Abs(score))
	case score <= vaderNegativeThreshold:
		rec.Sentiment = analyzer.SentimentNegative
		rec.Confidence = clamp01(math.Abs(score))
	default:
		rec.Sentiment = analyzer.SentimentNeutral
		rec.Confidence = clamp01(1 - math.Abs(score))
	}

	return rec, nil
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
