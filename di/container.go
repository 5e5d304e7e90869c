package di

import (
	"toolhub/config"
	"toolhub/gateway/favorite_tool_gateway"
	"toolhub/gateway/import_tools_gateway"
	"toolhub/gateway/review_gateway"
	"toolhub/gateway/tool_catalog_gateway"
	"toolhub/gateway/vocabulary_gateway"
	"toolhub/usecase/favorite_tool_usecase"
	"toolhub/usecase/fetch_tools_usecase"
	"toolhub/usecase/fetch_vocabulary_usecase"
	"toolhub/usecase/import_tools_usecase"
	"toolhub/usecase/register_tool_usecase"
	"toolhub/usecase/review_tool_usecase"
	"toolhub/usecase/search_tools_usecase"
	"toolhub/usecase/suggest_search_usecase"
	"toolhub/utils/metrics"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ApplicationComponents struct {
	FetchToolsUsecase      *fetch_tools_usecase.FetchToolsUsecase
	FetchToolDetailUsecase *fetch_tools_usecase.FetchToolDetailUsecase
	SearchToolsUsecase     *search_tools_usecase.SearchToolsUsecase
	SuggestSearchUsecase   *suggest_search_usecase.SuggestSearchUsecase
	FetchVocabularyUsecase *fetch_vocabulary_usecase.FetchVocabularyUsecase
	ImportToolsUsecase     *import_tools_usecase.ImportToolsUsecase
	RegisterToolUsecase    *register_tool_usecase.RegisterToolUsecase
	FavoriteToolUsecase    *favorite_tool_usecase.FavoriteToolUsecase
	ReviewToolUsecase      *review_tool_usecase.ReviewToolUsecase
	VocabularyGateway      *vocabulary_gateway.VocabularyGateway
	Metrics                *metrics.Metrics
}

func NewApplicationComponents(pool *pgxpool.Pool, cfg *config.Config) *ApplicationComponents {
	// Create the concrete gateway implementations
	toolCatalogGatewayImpl := tool_catalog_gateway.NewToolCatalogGateway(pool)
	vocabularyGatewayImpl := vocabulary_gateway.NewVocabularyGateway(pool, cfg.Cache.VocabularyExpiry)
	importToolsGatewayImpl := import_tools_gateway.NewImportToolsGateway(pool)
	favoriteToolGatewayImpl := favorite_tool_gateway.NewFavoriteToolGateway(pool)
	reviewGatewayImpl := review_gateway.NewReviewGateway(pool)

	fetchToolsUsecase := fetch_tools_usecase.NewFetchToolsUsecase(toolCatalogGatewayImpl)
	fetchToolDetailUsecase := fetch_tools_usecase.NewFetchToolDetailUsecase(toolCatalogGatewayImpl)
	searchToolsUsecase := search_tools_usecase.NewSearchToolsUsecase(toolCatalogGatewayImpl)
	suggestSearchUsecase := suggest_search_usecase.NewSuggestSearchUsecase(vocabularyGatewayImpl, suggest_search_usecase.DefaultToolVocabulary)
	fetchVocabularyUsecase := fetch_vocabulary_usecase.NewFetchVocabularyUsecase(vocabularyGatewayImpl)
	importToolsUsecase := import_tools_usecase.NewImportToolsUsecase(importToolsGatewayImpl, cfg.Import.MaxRows)
	registerToolUsecase := register_tool_usecase.NewRegisterToolUsecase(toolCatalogGatewayImpl)
	favoriteToolUsecase := favorite_tool_usecase.NewFavoriteToolUsecase(favoriteToolGatewayImpl)
	reviewToolUsecase := review_tool_usecase.NewReviewToolUsecase(reviewGatewayImpl)

	return &ApplicationComponents{
		FetchToolsUsecase:      fetchToolsUsecase,
		FetchToolDetailUsecase: fetchToolDetailUsecase,
		SearchToolsUsecase:     searchToolsUsecase,
		SuggestSearchUsecase:   suggestSearchUsecase,
		FetchVocabularyUsecase: fetchVocabularyUsecase,
		ImportToolsUsecase:     importToolsUsecase,
		RegisterToolUsecase:    registerToolUsecase,
		FavoriteToolUsecase:    favoriteToolUsecase,
		ReviewToolUsecase:      reviewToolUsecase,
		VocabularyGateway:      vocabularyGatewayImpl,
		Metrics:                metrics.NewMetrics(),
	}
}
