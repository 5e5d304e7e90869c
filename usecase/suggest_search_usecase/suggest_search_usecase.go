// Package suggest_search_usecase computes type-ahead suggestions for the
// directory search box: a bounded, typed list matched against the tool-name,
// category and pricing vocabularies.
package suggest_search_usecase

import (
	"context"
	"strings"
	"unicode/utf8"

	"toolhub/domain"
	"toolhub/port/suggestion_vocabulary_port"
	"toolhub/utils/logger"

	"golang.org/x/sync/errgroup"
)

const (
	// DefaultMinChars is the minimum query length before suggestions appear.
	DefaultMinChars = 2

	maxToolMatches     = 4
	maxCategoryMatches = 3
	maxPricingMatches  = 2
)

type SuggestSearchUsecase struct {
	vocabularyGateway suggestion_vocabulary_port.SuggestionVocabularyPort
	toolVocabulary    []string
	minChars          int
}

func NewSuggestSearchUsecase(gateway suggestion_vocabulary_port.SuggestionVocabularyPort, toolVocabulary []string) *SuggestSearchUsecase {
	return &SuggestSearchUsecase{
		vocabularyGateway: gateway,
		toolVocabulary:    toolVocabulary,
		minChars:          DefaultMinChars,
	}
}

// Execute computes the suggestion list for one query. Vocabulary fetch
// failures degrade to tool-name-only matching instead of failing the request;
// no match is not an error, just an empty hidden list.
func (u *SuggestSearchUsecase) Execute(ctx context.Context, searchTerm string) ([]domain.SearchSuggestion, bool) {
	if utf8.RuneCountInString(searchTerm) < u.minChars {
		return []domain.SearchSuggestion{}, false
	}

	var categories []domain.CategoryCount
	var pricing []string

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		categories, err = u.vocabularyGateway.GetCategoryCounts(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		pricing, err = u.vocabularyGateway.GetDistinctPricing(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		logger.SafeWarnContext(ctx, "vocabulary fetch failed, degrading to tool-name suggestions", "error", err)
	}

	suggestions := BuildSuggestions(searchTerm, u.toolVocabulary, categories, pricing)
	return suggestions, len(suggestions) > 0
}

// BuildSuggestions performs the pure matching step: case-insensitive
// substring match against each vocabulary, each section capped independently,
// concatenated tool-then-category-then-pricing so name matches surface first.
// Identical inputs always yield identical output.
func BuildSuggestions(searchTerm string, toolNames []string, categories []domain.CategoryCount, pricing []string) []domain.SearchSuggestion {
	term := strings.ToLower(searchTerm)
	suggestions := []domain.SearchSuggestion{}

	matched := 0
	for _, name := range toolNames {
		if matched == maxToolMatches {
			break
		}
		if strings.Contains(strings.ToLower(name), term) {
			suggestions = append(suggestions, domain.SearchSuggestion{
				Type:  domain.SuggestionTypeTool,
				Text:  name,
				Value: name,
			})
			matched++
		}
	}

	matched = 0
	for _, category := range categories {
		if matched == maxCategoryMatches {
			break
		}
		if strings.Contains(strings.ToLower(category.Name), term) {
			suggestions = append(suggestions, domain.SearchSuggestion{
				Type:  domain.SuggestionTypeCategory,
				Text:  category.Name,
				Value: category.ID,
			})
			matched++
		}
	}

	matched = 0
	for _, option := range pricing {
		if matched == maxPricingMatches {
			break
		}
		if strings.Contains(strings.ToLower(option), term) {
			suggestions = append(suggestions, domain.SearchSuggestion{
				Type:  domain.SuggestionTypePricing,
				Text:  option,
				Value: option,
			})
			matched++
		}
	}

	return suggestions
}
