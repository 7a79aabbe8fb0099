// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"news_backend/internal/feature/stories/domain/entity"
	"news_backend/internal/feature/stories/usecase"
)

// CachingStoryRepository decorates a StoryRepository with Redis caching of
// the story listing. It implements the decorator pattern, transparently
// adding caching without modifying the underlying repository.
type CachingStoryRepository struct {
	inner     usecase.StoryRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// CachingStoryRepositoryがStoryRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.StoryRepository = (*CachingStoryRepository)(nil)

// NewCachingStoryRepository decorates a StoryRepository with Redis caching.
// If ttl is 0, it defaults to 1 minute. If namespace is empty, it uses
// "stories".
func NewCachingStoryRepository(rdb *redis.Client, ttl time.Duration, inner usecase.StoryRepository, namespace string) *CachingStoryRepository {
	if ttl <= 0 {
		ttl = time.Minute
	}
	if namespace == "" {
		namespace = "stories"
	}
	return &CachingStoryRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// ListWithTotals retrieves the story listing, checking cache first then
// falling back to the database.
func (c *CachingStoryRepository) ListWithTotals(ctx context.Context, sortBy, order string) ([]entity.StoryWithTotals, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.ListWithTotals(ctx, sortBy, order)
	}

	key := c.cacheKey(sortBy, order)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.StoryWithTotals
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.ListWithTotals(ctx, sortBy, order)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// FindByID is a pass-through; single-story lookups are cheap.
func (c *CachingStoryRepository) FindByID(ctx context.Context, id uint) (*entity.Story, error) {
	return c.inner.FindByID(ctx, id)
}

// Create persists a new story and invalidates the cached listings.
func (c *CachingStoryRepository) Create(ctx context.Context, story *entity.Story) error {
	if err := c.inner.Create(ctx, story); err != nil {
		return err
	}
	c.invalidateListings(ctx)
	return nil
}

// DeleteWithVotes removes a story with its votes and invalidates the cached
// listings.
func (c *CachingStoryRepository) DeleteWithVotes(ctx context.Context, id uint) error {
	if err := c.inner.DeleteWithVotes(ctx, id); err != nil {
		return err
	}
	c.invalidateListings(ctx)
	return nil
}

// AddVote persists a vote and invalidates the cached listings, since vote
// totals appear in every listing.
func (c *CachingStoryRepository) AddVote(ctx context.Context, vote *entity.Vote) error {
	if err := c.inner.AddVote(ctx, vote); err != nil {
		return err
	}
	c.invalidateListings(ctx)
	return nil
}

// CommentsWithAuthor is a pass-through; comments are not part of the cached
// listing.
func (c *CachingStoryRepository) CommentsWithAuthor(ctx context.Context, storyID uint) ([]entity.CommentWithAuthor, error) {
	return c.inner.CommentsWithAuthor(ctx, storyID)
}

// AddComment persists a comment. Comments do not affect vote totals, so the
// cached listings stay valid.
func (c *CachingStoryRepository) AddComment(ctx context.Context, comment *entity.Comment) error {
	return c.inner.AddComment(ctx, comment)
}

// invalidateListings removes every cached listing variant for the namespace.
func (c *CachingStoryRepository) invalidateListings(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	_ = c.deleteByPattern(ctx, c.namespace+":*") // Best effort: don't fail if cache deletion fails
}

// cacheKey generates a cache key for a specific listing query.
func (c *CachingStoryRepository) cacheKey(sortBy, order string) string {
	return fmt.Sprintf("%s:%s:%s", c.namespace, safe(sortBy), safe(order))
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingStoryRepository) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
