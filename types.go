package analyzer

// Sentiment is the polarity assigned to a text.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// Aspect is the product category a text is judged to be about.
type Aspect string

const (
	AspectGeneral Aspect = "General"
	AspectCamera  Aspect = "Camera"
	AspectBattery Aspect = "Battery"
	AspectDisplay Aspect = "Display"
	AspectAudio   Aspect = "Audio"
	AspectDesign  Aspect = "Design"
)

// Record is a single classification outcome. Immutable once produced;
// exactly one is produced per (item, variant) pair.
type Record struct {
	// Aspect is the product category the text was matched to
	Aspect Aspect `json:"aspect"`

	// Sentiment is the polarity determined for the text
	Sentiment Sentiment `json:"sentiment"`

	// Confidence is always in [0, 1]
	Confidence float64 `json:"confidence"`

	// Reasoning is a human-readable justification for the outcome
	Reasoning string `json:"reasoning"`
}

// Item is one unit of text submitted for classification. ID must be unique
// within a batch; an empty ID is assigned a generated UUID before validation.
type Item struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// BatchResult carries the classification records for one item. RAG always
// holds at least one record; Baseline is empty unless the baseline variant
// was requested.
type BatchResult struct {
	ID       string   `json:"id"`
	RAG      []Record `json:"rag"`
	Baseline []Record `json:"baseline"`
}

// SentimentCounts tallies sentiment outcomes across a batch.
type SentimentCounts struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
	Neutral  int `json:"neutral"`
}

// Total returns the number of items counted.
func (c SentimentCounts) Total() int {
	return c.Positive + c.Negative + c.Neutral
}

// Aggregate is the batch-level summary over the primary variant. Counts
// always sum to the number of items in the batch.
type Aggregate struct {
	RAGCounts SentimentCounts `json:"rag_counts"`
}

// Share returns the fraction of items with the given sentiment, in [0, 1].
// Returns 0 for an empty aggregate.
func (a Aggregate) Share(s Sentiment) float64 {
	total := a.RAGCounts.Total()
	if total == 0 {
		return 0
	}
	var n int
	switch s {
	case SentimentPositive:
		n = a.RAGCounts.Positive
	case SentimentNegative:
		n = a.RAGCounts.Negative
	case SentimentNeutral:
		n = a.RAGCounts.Neutral
	}
	return float64(n) / float64(total)
}

// BatchRequest is the batch entry point's request contract.
type BatchRequest struct {
	Items []Item `json:"items"`

	// IncludeBaseline requests a second classification per item
	IncludeBaseline bool `json:"include_baseline"`

	// ReturnEvidence is accepted and carried through but does not change the
	// record shape here; a retrieval-backed classifier plugged into the
	// variant seam uses it to include source passages
	ReturnEvidence bool `json:"return_evidence"`

	// MaxConcurrency bounds concurrent per-item tasks. Zero means use the
	// analyzer's configured default; negative values are rejected.
	MaxConcurrency int `json:"max_concurrency"`
}

// SingleResponse is the flattened single-item response shape: the primary
// record's fields plus an echo of the analyzed text.
type SingleResponse struct {
	Aspect     Aspect    `json:"aspect"`
	Sentiment  Sentiment `json:"sentiment"`
	Confidence float64   `json:"confidence"`
	Reasoning  string    `json:"reasoning"`
	Text       string    `json:"text"`
}

// VariantResponse is the dual-variant response shape for one text.
type VariantResponse struct {
	RAGResults       []Record `json:"rag_results"`
	BaselineResults  []Record `json:"baseline_results"`
	ProcessingTimeMS int64    `json:"processing_time_ms"`
}

// BatchResponse is the batch response shape.
type BatchResponse struct {
	Results          []BatchResult `json:"results"`
	Aggregate        Aggregate     `json:"aggregate"`
	ProcessingTimeMS int64         `json:"processing_time_ms"`
}

// Metrics provides statistics about the analyzer's activity since creation.
type Metrics struct {
	// TotalBatches is the number of completed batch operations, counting
	// single and dual-variant calls as batches of one
	TotalBatches int

	// TotalItems is the number of items classified across all batches
	TotalItems int

	// Counts tallies primary-variant sentiment outcomes across all batches
	Counts SentimentCounts
}
