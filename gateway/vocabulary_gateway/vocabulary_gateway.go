package vocabulary_gateway

import (
	"context"
	"time"

	"toolhub/domain"
	"toolhub/driver/tool_db"
	"toolhub/utils/logger"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	categoriesKey = "categories"
	pricingKey    = "pricing"
)

// VocabularyGateway serves the suggestion vocabularies from an expiring cache
// so per-keystroke suggestion requests don't hit the database.
type VocabularyGateway struct {
	toolDB        *tool_db.ToolDBRepository
	categoryCache *expirable.LRU[string, []domain.CategoryCount]
	pricingCache  *expirable.LRU[string, []string]
}

func NewVocabularyGateway(pool *pgxpool.Pool, ttl time.Duration) *VocabularyGateway {
	return &VocabularyGateway{
		toolDB:        tool_db.NewToolDBRepository(pool),
		categoryCache: expirable.NewLRU[string, []domain.CategoryCount](1, nil, ttl),
		pricingCache:  expirable.NewLRU[string, []string](1, nil, ttl),
	}
}

func (g *VocabularyGateway) GetCategoryCounts(ctx context.Context) ([]domain.CategoryCount, error) {
	if cached, ok := g.categoryCache.Get(categoriesKey); ok {
		return cached, nil
	}

	counts, err := g.toolDB.FetchCategoryCounts(ctx)
	if err != nil {
		logger.SafeErrorContext(ctx, "error fetching category vocabulary", "error", err)
		return nil, err
	}

	g.categoryCache.Add(categoriesKey, counts)
	return counts, nil
}

func (g *VocabularyGateway) GetDistinctPricing(ctx context.Context) ([]string, error) {
	if cached, ok := g.pricingCache.Get(pricingKey); ok {
		return cached, nil
	}

	options, err := g.toolDB.FetchDistinctPricing(ctx)
	if err != nil {
		logger.SafeErrorContext(ctx, "error fetching pricing vocabulary", "error", err)
		return nil, err
	}

	g.pricingCache.Add(pricingKey, options)
	return options, nil
}

// Refresh repopulates both caches. The periodic refresh job calls this so the
// first keystroke after a cold start still gets warm vocabularies.
func (g *VocabularyGateway) Refresh(ctx context.Context) error {
	g.categoryCache.Remove(categoriesKey)
	g.pricingCache.Remove(pricingKey)

	if _, err := g.GetCategoryCounts(ctx); err != nil {
		return err
	}
	if _, err := g.GetDistinctPricing(ctx); err != nil {
		return err
	}
	return nil
}
