package suggestion_vocabulary_port

import (
	"context"

	"toolhub/domain"
)

// SuggestionVocabularyPort supplies the two externally sourced vocabularies
// the suggestion engine matches against.
type SuggestionVocabularyPort interface {
	GetCategoryCounts(ctx context.Context) ([]domain.CategoryCount, error)
	GetDistinctPricing(ctx context.Context) ([]string, error)
}
