// Package adapters provides repository implementations for the stories
// feature.
package adapters

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"news_backend/internal/feature/stories/domain/entity"
	"news_backend/internal/feature/stories/usecase"
)

// sortColumns maps validated sort names onto the actual listing columns.
// The usecase whitelists the inputs, but only values from this map are ever
// interpolated into the ORDER BY clause.
var sortColumns = map[string]string{
	"total_votes": "total_votes",
	"created_at":  "stories.created_at",
}

// storyGorm is a GORM implementation of the StoryRepository interface.
type storyGorm struct {
	db *gorm.DB
}

// Compile-time check to ensure storyGorm implements StoryRepository.
var _ usecase.StoryRepository = (*storyGorm)(nil)

// NewStoryGorm creates a new instance of storyGorm.
func NewStoryGorm(db *gorm.DB) *storyGorm {
	return &storyGorm{db: db}
}

// ListWithTotals returns all stories with their vote aggregate: up votes
// count +1, down votes -1, no votes 0.
func (r *storyGorm) ListWithTotals(ctx context.Context, sortBy, order string) ([]entity.StoryWithTotals, error) {
	column, ok := sortColumns[sortBy]
	if !ok || (order != "ASC" && order != "DESC") {
		return nil, usecase.ErrInvalidSort
	}

	var rows []entity.StoryWithTotals
	err := r.db.WithContext(ctx).
		Table("stories").
		Select("stories.*, COALESCE(SUM(CASE votes.direction WHEN 'up' THEN 1 WHEN 'down' THEN -1 ELSE 0 END), 0) AS total_votes").
		Joins("LEFT JOIN votes ON votes.story_id = stories.id").
		Group("stories.id").
		Order(fmt.Sprintf("%s %s", column, order)).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// FindByID retrieves a story by ID.
func (r *storyGorm) FindByID(ctx context.Context, id uint) (*entity.Story, error) {
	var story entity.Story
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&story).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrStoryNotFound
		}
		return nil, err
	}
	return &story, nil
}

// Create persists a new story.
func (r *storyGorm) Create(ctx context.Context, story *entity.Story) error {
	return r.db.WithContext(ctx).Create(story).Error
}

// DeleteWithVotes removes a story and its votes atomically. A crash can no
// longer strand orphaned vote rows.
func (r *storyGorm) DeleteWithVotes(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("story_id = ?", id).Delete(&entity.Vote{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&entity.Story{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return usecase.ErrStoryNotFound
		}
		return nil
	})
}

// AddVote persists a vote. Repeated votes by the same user are accepted.
func (r *storyGorm) AddVote(ctx context.Context, vote *entity.Vote) error {
	return r.db.WithContext(ctx).Create(vote).Error
}

// CommentsWithAuthor returns a story's comments joined with author emails.
func (r *storyGorm) CommentsWithAuthor(ctx context.Context, storyID uint) ([]entity.CommentWithAuthor, error) {
	var rows []entity.CommentWithAuthor
	err := r.db.WithContext(ctx).
		Table("comments").
		Select("comments.*, users.email").
		Joins("JOIN users ON users.id = comments.user_id").
		Where("comments.story_id = ?", storyID).
		Order("comments.created_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// AddComment persists a comment.
func (r *storyGorm) AddComment(ctx context.Context, comment *entity.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}
