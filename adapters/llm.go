package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	analyzer "github.com/FrenchMajesty/aspect-classifier"
	"github.com/FrenchMajesty/aspect-classifier/clients/openai"
)

const defaultModel = "gpt-4.1-mini"

const classifySystemPrompt = `You are an aspect-based sentiment classifier for product reviews.

Given a review, respond with ONLY a JSON object, no prose:
{"aspect": "...", "sentiment": "...", "confidence": 0.0, "reasoning": "..."}

Rules:
- aspect must be one of: General, Camera, Battery, Display, Audio, Design
- sentiment must be one of: positive, negative, neutral
- confidence must be a number between 0 and 1
- reasoning is one short sentence`

const evidenceInstruction = `
- reasoning must quote the exact phrase from the review that drove the sentiment`

// LanguageModelClient is the subset of the chat client the classifier needs
type LanguageModelClient interface {
	ChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (*openai.ChatCompletionResponse, error)
}

// LLMClassifier classifies reviews with an OpenAI-compatible chat model.
// It is the substitution point for callers who want a real model behind the
// rag or baseline variant instead of the keyword policy.
type LLMClassifier struct {
	client          LanguageModelClient
	model           string
	temperature     *float32
	includeEvidence bool
}

// LLMOption configures an LLMClassifier
type LLMOption func(*LLMClassifier)

// WithModel overrides the default model name
func WithModel(model string) LLMOption {
	return func(c *LLMClassifier) {
		if model != "" {
			c.model = model
		}
	}
}

// WithTemperature sets an explicit sampling temperature
func WithTemperature(t float32) LLMOption {
	return func(c *LLMClassifier) { c.temperature = &t }
}

// WithEvidence asks the model to quote the review passage that drove its
// sentiment call, instead of a free-form justification
func WithEvidence() LLMOption {
	return func(c *LLMClassifier) { c.includeEvidence = true }
}

// WithClient substitutes the chat client, mainly for tests
func WithClient(client LanguageModelClient) LLMOption {
	return func(c *LLMClassifier) { c.client = client }
}

// NewLLMClassifier creates an LLM-backed classifier. With no WithClient
// option it reads OPENAI_API_KEY (and optionally OPENAI_BASE_URL) from the
// environment.
func NewLLMClassifier(opts ...LLMOption) (*LLMClassifier, error) {
	c := &LLMClassifier{model: defaultModel}

	for _, opt := range opts {
		opt(c)
	}

	if c.client == nil {
		key := os.Getenv("OPENAI_API_KEY")
		if key == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
		c.client = openai.NewClient(key, os.Getenv("OPENAI_BASE_URL"))
	}

	return c, nil
}

// llmRecord mirrors the JSON shape the system prompt demands
type llmRecord struct {
	Aspect     string  `json:"aspect"`
	Sentiment  string  `json:"sentiment"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}

// Classify implements analyzer.Classifier.
func (c *LLMClassifier) Classify(ctx context.Context, text string) (analyzer.Record, error) {
	if strings.TrimSpace(text) == "" {
		return analyzer.Record{}, &analyzer.InvalidInputError{Reason: "cannot classify empty text"}
	}

	prompt := classifySystemPrompt
	if c.includeEvidence {
		prompt += evidenceInstruction
	}

	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatMessage{
			{Role: openai.MessageRoleSystem, Content: prompt},
			{Role: openai.MessageRoleUser, Content: text},
		},
		MaxCompletionTokens: 200,
		Temperature:         c.temperature,
	}

	resp, err := c.client.ChatCompletion(ctx, req)
	if err != nil {
		return analyzer.Record{}, fmt.Errorf("failed to get LLM response: %w", err)
	}

	if len(resp.Choices) == 0 {
		return analyzer.Record{}, fmt.Errorf("no response from LLM")
	}

	return parseRecord(resp.Choices[0].Message.Content)
}

// parseRecord decodes and validates the model's JSON output. Models wrap
// JSON in code fences often enough that the fences are stripped first.
func parseRecord(content string) (analyzer.Record, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	var raw llmRecord
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return analyzer.Record{}, fmt.Errorf("failed to parse LLM classification: %w", err)
	}

	rec := analyzer.Record{
		Confidence: clamp01(raw.Confidence),
		Reasoning:  strings.TrimSpace(raw.Reasoning),
	}

	switch analyzer.Aspect(raw.Aspect) {
	case analyzer.AspectGeneral, analyzer.AspectCamera, analyzer.AspectBattery,
		analyzer.AspectDisplay, analyzer.AspectAudio, analyzer.AspectDesign:
		rec.Aspect = analyzer.Aspect(raw.Aspect)
	default:
		return analyzer.Record{}, fmt.Errorf("LLM returned unknown aspect %q", raw.Aspect)
	}

	switch analyzer.Sentiment(strings.ToLower(raw.Sentiment)) {
	case analyzer.SentimentPositive, analyzer.SentimentNegative, analyzer.SentimentNeutral:
		rec.Sentiment = analyzer.Sentiment(strings.ToLower(raw.Sentiment))
	default:
		return analyzer.Record{}, fmt.Errorf("LLM returned unknown sentiment %q", raw.Sentiment)
	}

	return rec, nil
}
