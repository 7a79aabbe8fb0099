package usecase

import (
	"context"

	"news_backend/internal/feature/stories/domain/entity"
)

// StoryRepository abstracts the persistence layer for stories, votes and
// comments. Following Go convention: interfaces are defined by the consumer
// (usecase), not the provider (adapters).
type StoryRepository interface {
	// ListWithTotals returns all stories with their vote aggregate,
	// ordered by a validated sort column and order.
	ListWithTotals(ctx context.Context, sortBy, order string) ([]entity.StoryWithTotals, error)

	// FindByID retrieves a story by ID, or ErrStoryNotFound.
	FindByID(ctx context.Context, id uint) (*entity.Story, error)

	// Create persists a new story.
	Create(ctx context.Context, story *entity.Story) error

	// DeleteWithVotes removes a story and its votes in one transaction.
	// Comments are deliberately left in place.
	DeleteWithVotes(ctx context.Context, id uint) error

	// AddVote persists a vote.
	AddVote(ctx context.Context, vote *entity.Vote) error

	// CommentsWithAuthor returns a story's comments joined with their
	// authors' emails.
	CommentsWithAuthor(ctx context.Context, storyID uint) ([]entity.CommentWithAuthor, error)

	// AddComment persists a comment.
	AddComment(ctx context.Context, comment *entity.Comment) error
}

// TitleFetcher abstracts the outbound page fetch used during submission.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (platform/scraper).
type TitleFetcher interface {
	// FetchTitle retrieves url and returns the text of its first <title>
	// element.
	FetchTitle(ctx context.Context, url string) (string, error)

	// Validate retrieves url and reports an error unless the response is
	// a success.
	Validate(ctx context.Context, url string) error
}
