package domain

import "time"

// SuggestionSource records which curator produced a batch.
type SuggestionSource string

const (
	// SuggestionSourceAI marks batches curated by the language model.
	SuggestionSourceAI SuggestionSource = "ai"
	// SuggestionSourceDeterministic marks batches built by the rule-based curator.
	SuggestionSourceDeterministic SuggestionSource = "deterministic"
)

// Suggestion is one personalized pick with a human readable reason. Title and
// Category are a snapshot taken at generation time.
type Suggestion struct {
	Ref      ItemRef `json:"ref"`
	Title    string  `json:"title"`
	Category string  `json:"category"`
	Score    float64 `json:"score"`
	Reason   string  `json:"reason"`
	Rank     int     `json:"rank"`
}

// SuggestionBatch is the latest set of suggestions generated for a user.
type SuggestionBatch struct {
	UserID      UserID           `json:"userId"`
	Source      SuggestionSource `json:"source"`
	Items       []Suggestion     `json:"items"`
	GeneratedAt time.Time        `json:"generatedAt"`
}
