package analyzer

import (
	"context"
	"strings"

	"github.com/FrenchMajesty/aspect-classifier/internal/lexicon"
)

// Confidence scores per sentiment branch. These are part of the observable
// contract and must not drift.
const (
	confidencePositive = 0.85
	confidenceNegative = 0.82
	confidenceMixed    = 0.65
	confidenceNeutral  = 0.70
)

// Reasoning templates, keyed by the sentiment branch taken. Reasoning is
// never composed from the aspect.
const (
	reasoningPositive = "positive language detected"
	reasoningNegative = "negative language detected"
	reasoningMixed    = "mixed signals detected"
	reasoningNeutral  = "neutral/indeterminate tone"
)

// KeywordClassifier is the deterministic rule-table policy: sentiment from
// the presence of positive/negative marker words, aspect from a fixed
// priority scan. Pure and side-effect-free; the same input always yields the
// same output.
type KeywordClassifier struct{}

// NewKeywordClassifier returns the built-in keyword classifier.
func NewKeywordClassifier() *KeywordClassifier {
	return &KeywordClassifier{}
}

// Classify implements Classifier. It fails with InvalidInputError only when
// text is empty or all-whitespace.
func (k *KeywordClassifier) Classify(_ context.Context, text string) (Record, error) {
	if strings.TrimSpace(text) == "" {
		return Record{}, invalidInputf("cannot classify empty text")
	}

	lowered := lexicon.Normalize(text)

	hasPositive := lexicon.HasPositive(lowered)
	hasNegative := lexicon.HasNegative(lowered)

	rec := Record{
		Aspect: Aspect(lexicon.DetectAspect(lowered)),
	}

	switch {
	case hasPositive && !hasNegative:
		rec.Sentiment = SentimentPositive
		rec.Confidence = confidencePositive
		rec.Reasoning = reasoningPositive
	case hasNegative && !hasPositive:
		rec.Sentiment = SentimentNegative
		rec.Confidence = confidenceNegative
		rec.Reasoning = reasoningNegative
	case hasPositive && hasNegative:
		rec.Sentiment = SentimentNeutral
		rec.Confidence = confidenceMixed
		rec.Reasoning = reasoningMixed
	default:
		rec.Sentiment = SentimentNeutral
		rec.Confidence = confidenceNeutral
		rec.Reasoning = reasoningNeutral
	}

	return rec, nil
}
