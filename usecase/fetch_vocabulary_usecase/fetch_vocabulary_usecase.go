// Package fetch_vocabulary_usecase exposes the category and pricing
// vocabularies that back the directory's filter dropdowns.
package fetch_vocabulary_usecase

import (
	"context"

	"toolhub/domain"
	"toolhub/port/suggestion_vocabulary_port"
)

type FetchVocabularyUsecase struct {
	gateway suggestion_vocabulary_port.SuggestionVocabularyPort
}

func NewFetchVocabularyUsecase(gateway suggestion_vocabulary_port.SuggestionVocabularyPort) *FetchVocabularyUsecase {
	return &FetchVocabularyUsecase{gateway: gateway}
}

func (u *FetchVocabularyUsecase) Categories(ctx context.Context) ([]domain.CategoryCount, error) {
	return u.gateway.GetCategoryCounts(ctx)
}

func (u *FetchVocabularyUsecase) Pricing(ctx context.Context) ([]string, error) {
	return u.gateway.GetDistinctPricing(ctx)
}
