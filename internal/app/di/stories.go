// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	storyadapters "news_backend/internal/feature/stories/adapters"
	"news_backend/internal/feature/stories/usecase"
	"news_backend/internal/platform/cache"
)

// NewStoryRepository creates a StoryRepository implementation.
// If Redis is available, the GORM repository is wrapped with a listing
// cache. Otherwise the database is hit directly.
func NewStoryRepository(rdb *redis.Client, db *gorm.DB) usecase.StoryRepository {
	repo := storyadapters.NewStoryGorm(db)
	if rdb != nil {
		return cache.NewCachingStoryRepository(rdb, time.Minute, repo, "stories")
	}
	return repo
}
