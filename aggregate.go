package analyzer

import "fmt"

// aggregateResults reduces a completed batch into sentiment counts over the
// primary variant. Only the first rag record per item is counted; the
// contract tolerates longer sequences by using index 0. An item with no rag
// record, or one carrying an unrecognized sentiment, is an invariant
// violation and fails the whole batch. Skipping it silently would break the
// counts-sum-to-item-count invariant.
func aggregateResults(results []BatchResult) (Aggregate, error) {
	var agg Aggregate

	for _, r := range results {
		if len(r.RAG) == 0 {
			return Aggregate{}, &AggregationError{ItemID: r.ID, Reason: "no rag records"}
		}

		switch r.RAG[0].Sentiment {
		case SentimentPositive:
			agg.RAGCounts.Positive++
		case SentimentNegative:
			agg.RAGCounts.Negative++
		case SentimentNeutral:
			agg.RAGCounts.Neutral++
		default:
			return Aggregate{}, &AggregationError{
				ItemID: r.ID,
				Reason: fmt.Sprintf("unrecognized sentiment %q", r.RAG[0].Sentiment),
			}
		}
	}

	return agg, nil
}
