package dto

// SummarizeRequest for POST /ai/summarize
type SummarizeRequest struct {
	Title   string `json:"title" binding:"required,max=300"`
	Content string `json:"content" binding:"required"`
}

// SummarizeResponse always carries a summary; the service degrades to a local
// heuristic when the generator is unavailable.
type SummarizeResponse struct {
	Summary string `json:"summary"`
}

// GrammarCheckRequest for POST /ai/grammar
type GrammarCheckRequest struct {
	Text     string `json:"text" binding:"required,max=20000"`
	Language string `json:"language" binding:"omitempty,max=16"`
}

// CompleteRequest for POST /ai/complete
type CompleteRequest struct {
	Text string `json:"text" binding:"required,max=20000"`
	Type string `json:"type" binding:"omitempty,oneof=continue improve rephrase summarize"`
}

// CompleteResponse carries the completion plus alternative phrasings
type CompleteResponse struct {
	Completion  string   `json:"completion"`
	Suggestions []string `json:"suggestions"`
}

// TitleSuggestionsRequest for POST /ai/titles
type TitleSuggestionsRequest struct {
	Content string `json:"content" binding:"required"`
}

// TitleSuggestionsResponse carries up to five suggested titles
type TitleSuggestionsResponse struct {
	Titles []string `json:"titles"`
}

// OutlineRequest for POST /ai/outline
type OutlineRequest struct {
	Topic string `json:"topic" binding:"required,max=300"`
}

// OutlineResponse carries the suggested section headings
type OutlineResponse struct {
	Outline []string `json:"outline"`
}
