package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/quizzly/trivia-backend/internal/service"
)

// CacheRefreshWorker periodically re-prewarms the Redis category cache so
// it tracks the store even across seed runs, instead of only expiring.
type CacheRefreshWorker struct {
	categories *service.CategoryService
	interval   time.Duration
	log        zerolog.Logger
}

// NewCacheRefreshWorker creates a CacheRefreshWorker refreshing every interval.
func NewCacheRefreshWorker(categories *service.CategoryService, interval time.Duration, log zerolog.Logger) *CacheRefreshWorker {
	return &CacheRefreshWorker{
		categories: categories,
		interval:   interval,
		log:        log.With().Str("component", "cache_refresh_worker").Logger(),
	}
}

// Start runs the refresh loop until ctx is cancelled.
func (w *CacheRefreshWorker) Start(ctx context.Context) {
	w.log.Info().Dur("interval", w.interval).Msg("CacheRefreshWorker started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("CacheRefreshWorker stopped")
			return
		case <-ticker.C:
			if err := w.categories.Prewarm(ctx); err != nil {
				w.log.Warn().Err(err).Msg("Category cache refresh failed")
			}
		}
	}
}
