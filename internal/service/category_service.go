package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/quizzly/trivia-backend/internal/model"
)

// categoryCacheKey holds the JSON-encoded category list in Redis.
const categoryCacheKey = "trivia:categories"

// CategoryService handles category reads. The full category list is served
// from a Redis cache when available; categories only change through seed
// data, so a TTL plus the refresh worker keeps the cache honest.
type CategoryService struct {
	categories CategoryStore
	rdb        *redis.Client
	ttl        time.Duration
	log        zerolog.Logger
}

// NewCategoryService creates a new CategoryService. rdb may be nil, in
// which case every read goes straight to the store.
func NewCategoryService(categories CategoryStore, rdb *redis.Client, ttl time.Duration, log zerolog.Logger) *CategoryService {
	return &CategoryService{
		categories: categories,
		rdb:        rdb,
		ttl:        ttl,
		log:        log.With().Str("component", "category_service").Logger(),
	}
}

// List retrieves all categories, preferring the Redis cache.
// Cache failures degrade to a direct store read, never to an error.
func (s *CategoryService) List(ctx context.Context) ([]model.Category, error) {
	if s.rdb != nil {
		raw, err := s.rdb.Get(ctx, categoryCacheKey).Bytes()
		if err == nil {
			var cached []model.Category
			if jsonErr := json.Unmarshal(raw, &cached); jsonErr == nil {
				return cached, nil
			}
			s.log.Warn().Msg("Discarding malformed category cache entry")
		} else if err != redis.Nil {
			s.log.Warn().Err(err).Msg("Category cache read failed")
		}
	}

	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}

	s.fillCache(ctx, categories)
	return categories, nil
}

// GetByID retrieves a single category by id.
// Returns repository.ErrNotFound if no such category exists.
func (s *CategoryService) GetByID(ctx context.Context, id int) (*model.Category, error) {
	return s.categories.GetByID(ctx, id)
}

// Prewarm loads the category list into Redis. Called at startup and by the
// cache refresh worker.
func (s *CategoryService) Prewarm(ctx context.Context) error {
	if s.rdb == nil {
		return nil
	}
	categories, err := s.categories.List(ctx)
	if err != nil {
		return err
	}
	s.fillCache(ctx, categories)
	return nil
}

func (s *CategoryService) fillCache(ctx context.Context, categories []model.Category) {
	if s.rdb == nil {
		return
	}
	raw, err := json.Marshal(categories)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, categoryCacheKey, raw, s.ttl).Err(); err != nil {
		s.log.Warn().Err(err).Msg("Category cache write failed")
	}
}
