package suggest_search_usecase

import (
	"context"
	"errors"
	"testing"

	"toolhub/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVocabularyGateway struct {
	categories []domain.CategoryCount
	pricing    []string
	err        error
}

func (f *fakeVocabularyGateway) GetCategoryCounts(ctx context.Context) ([]domain.CategoryCount, error) {
	return f.categories, f.err
}

func (f *fakeVocabularyGateway) GetDistinctPricing(ctx context.Context) ([]string, error) {
	return f.pricing, f.err
}

func testGateway() *fakeVocabularyGateway {
	return &fakeVocabularyGateway{
		categories: []domain.CategoryCount{
			{ID: "chat", Name: "Chat Assistant", Count: 12},
			{ID: "chatbots", Name: "Chatbots", Count: 9},
			{ID: "image-chat", Name: "Image Chat", Count: 4},
			{ID: "chat-support", Name: "Chat Support", Count: 2},
			{ID: "writing", Name: "Writing", Count: 30},
		},
		pricing: []string{"Free", "Freemium", "Paid", "Free Trial"},
	}
}

func TestSuggestSearchUsecase_BelowMinChars(t *testing.T) {
	u := NewSuggestSearchUsecase(testGateway(), DefaultToolVocabulary)

	for _, term := range []string{"", "c"} {
		suggestions, visible := u.Execute(context.Background(), term)
		assert.Empty(t, suggestions, "term %q", term)
		assert.False(t, visible, "term %q", term)
	}
}

func TestSuggestSearchUsecase_MinCharsCountsRunes(t *testing.T) {
	u := NewSuggestSearchUsecase(testGateway(), []string{"Résumé Builder"})

	// A single accented character is one rune even though it is two bytes,
	// so it stays below the threshold.
	suggestions, visible := u.Execute(context.Background(), "é")
	assert.Empty(t, suggestions)
	assert.False(t, visible)

	// Two multibyte runes reach the threshold and match.
	suggestions, visible = u.Execute(context.Background(), "és")
	require.True(t, visible)
	assert.Equal(t, "Résumé Builder", suggestions[0].Text)
}

func TestSuggestSearchUsecase_SectionCapsAndOrdering(t *testing.T) {
	tools := []string{
		"ChatGPT", "Chatsonic", "ChatPDF", "Chatbase", "ChatSpot", "HubChat",
	}
	gw := testGateway()
	u := NewSuggestSearchUsecase(gw, tools)

	suggestions, visible := u.Execute(context.Background(), "chat")

	require.True(t, visible)
	// 4 tools + 3 categories + 0 pricing; never more than 9 overall.
	require.LessOrEqual(t, len(suggestions), 9)
	require.Len(t, suggestions, 7)

	for i, s := range suggestions[:4] {
		assert.Equal(t, domain.SuggestionTypeTool, s.Type, "index %d", i)
	}
	for i, s := range suggestions[4:7] {
		assert.Equal(t, domain.SuggestionTypeCategory, s.Type, "index %d", i+4)
	}

	// Capped in vocabulary order: the fifth matching tool is dropped.
	assert.Equal(t, "ChatGPT", suggestions[0].Text)
	assert.Equal(t, "Chatbase", suggestions[3].Text)
}

func TestSuggestSearchUsecase_CaseInsensitive(t *testing.T) {
	u := NewSuggestSearchUsecase(testGateway(), DefaultToolVocabulary)

	suggestions, visible := u.Execute(context.Background(), "chat")

	require.True(t, visible)
	var texts []string
	for _, s := range suggestions {
		texts = append(texts, s.Text)
	}
	assert.Contains(t, texts, "ChatGPT")
}

func TestSuggestSearchUsecase_Idempotent(t *testing.T) {
	u := NewSuggestSearchUsecase(testGateway(), DefaultToolVocabulary)

	first, firstVisible := u.Execute(context.Background(), "free")
	second, secondVisible := u.Execute(context.Background(), "free")

	assert.Equal(t, first, second)
	assert.Equal(t, firstVisible, secondVisible)
}

func TestSuggestSearchUsecase_NoMatches(t *testing.T) {
	u := NewSuggestSearchUsecase(testGateway(), DefaultToolVocabulary)

	suggestions, visible := u.Execute(context.Background(), "zzzzzz")

	assert.Empty(t, suggestions)
	assert.False(t, visible)
}

func TestSuggestSearchUsecase_VocabularyFailureDegrades(t *testing.T) {
	gw := &fakeVocabularyGateway{err: errors.New("db down")}
	u := NewSuggestSearchUsecase(gw, DefaultToolVocabulary)

	suggestions, visible := u.Execute(context.Background(), "chat")

	// Tool-name matches still surface when the vocabularies are unavailable.
	require.True(t, visible)
	for _, s := range suggestions {
		assert.Equal(t, domain.SuggestionTypeTool, s.Type)
	}
}

func TestBuildSuggestions_PricingSection(t *testing.T) {
	suggestions := BuildSuggestions("free", nil, nil, []string{"Free", "Freemium", "Free Trial"})

	// Pricing capped at 2.
	require.Len(t, suggestions, 2)
	assert.Equal(t, domain.SuggestionTypePricing, suggestions[0].Type)
	assert.Equal(t, "Free", suggestions[0].Value)
	assert.Equal(t, "Freemium", suggestions[1].Value)
}

func TestBuildSuggestions_CategoryValueUsesID(t *testing.T) {
	categories := []domain.CategoryCount{{ID: "img-gen", Name: "Image Generation", Count: 5}}
	suggestions := BuildSuggestions("image", nil, categories, nil)

	require.Len(t, suggestions, 1)
	assert.Equal(t, "Image Generation", suggestions[0].Text)
	assert.Equal(t, "img-gen", suggestions[0].Value)
}
