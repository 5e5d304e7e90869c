// Package job hosts the background tasks of the toolhub backend.
package job

import (
	"context"
	"time"

	"toolhub/utils/logger"
)

// VocabularyRefresher repopulates a vocabulary cache.
type VocabularyRefresher interface {
	Refresh(ctx context.Context) error
}

// VocabularyRefreshRunner warms the suggestion vocabularies immediately and
// then keeps them warm on the given interval until ctx is cancelled.
func VocabularyRefreshRunner(ctx context.Context, refresher VocabularyRefresher, interval time.Duration) {
	go func() {
		if err := refresher.Refresh(ctx); err != nil {
			logger.SafeWarnContext(ctx, "initial vocabulary refresh failed", "error", err)
		}

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := refresher.Refresh(ctx); err != nil {
					logger.SafeWarnContext(ctx, "vocabulary refresh failed", "error", err)
					continue
				}
				logger.SafeInfoContext(ctx, "vocabulary cache refreshed")
			}
		}
	}()
}
