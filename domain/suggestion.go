package domain

// SuggestionType tags which vocabulary a suggestion came from.
type SuggestionType string

const (
	SuggestionTypeTool     SuggestionType = "tool"
	SuggestionTypeCategory SuggestionType = "category"
	SuggestionTypePricing  SuggestionType = "pricing"
)

// SearchSuggestion is one type-ahead entry. Text is the display label, Value
// the identifier the client navigates or re-queries with. Suggestions are
// built fresh per keystroke and carry no persistent identity.
type SearchSuggestion struct {
	Type  SuggestionType `json:"type"`
	Text  string         `json:"text"`
	Value string         `json:"value"`
}
