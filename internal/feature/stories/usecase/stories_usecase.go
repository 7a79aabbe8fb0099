package usecase

import (
	"context"
	"fmt"

	authdomain "news_backend/internal/feature/auth/domain"
	userentity "news_backend/internal/feature/auth/domain/entity"
	"news_backend/internal/feature/stories/domain/entity"
)

// Allowed listing sort parameters. The adapter only ever sees values from
// this set.
var (
	allowedSortBy = map[string]bool{"total_votes": true, "created_at": true}
	allowedOrder  = map[string]bool{"ASC": true, "DESC": true}
)

// storiesUsecase implements story listing, submission, deletion, voting and
// commenting.
type storiesUsecase struct {
	repo    StoryRepository
	fetcher TitleFetcher
}

// NewStoriesUsecase creates a new instance of storiesUsecase.
func NewStoriesUsecase(repo StoryRepository, fetcher TitleFetcher) *storiesUsecase {
	return &storiesUsecase{repo: repo, fetcher: fetcher}
}

// List returns all stories with vote totals. sortBy must be total_votes or
// created_at, order must be ASC or DESC.
func (u *storiesUsecase) List(ctx context.Context, sortBy, order string) ([]entity.StoryWithTotals, error) {
	if !allowedSortBy[sortBy] || !allowedOrder[order] {
		return nil, ErrInvalidSort
	}
	return u.repo.ListWithTotals(ctx, sortBy, order)
}

// Add submits a story. The URL is always fetched once: to scrape the title
// when none was given, or to validate reachability otherwise. Any fetch
// failure fails the submission; there are no retries.
func (u *storiesUsecase) Add(ctx context.Context, user *userentity.User, title, url string) error {
	if user == nil {
		return ErrUnauthenticated
	}

	if title == "" {
		scraped, err := u.fetcher.FetchTitle(ctx, url)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrURLUnreachable, err)
		}
		title = scraped
	} else if err := u.fetcher.Validate(ctx, url); err != nil {
		return fmt.Errorf("%w: %w", ErrURLUnreachable, err)
	}

	story := &entity.Story{Title: title, URL: url, UserID: user.ID}
	return u.repo.Create(ctx, story)
}

// Delete removes a story and its votes. Only the owner may delete.
func (u *storiesUsecase) Delete(ctx context.Context, user *userentity.User, storyID uint) error {
	story, err := u.repo.FindByID(ctx, storyID)
	if err != nil {
		return err
	}

	switch authdomain.AuthorizeOwnerAction(user, story.UserID, authdomain.RequireOwner) {
	case authdomain.DecisionDenyUnauthenticated:
		return ErrUnauthenticated
	case authdomain.DecisionDenyOwnership:
		return ErrNotStoryOwner
	}

	return u.repo.DeleteWithVotes(ctx, storyID)
}

// Vote records an up or down vote. The story owner may not vote on their
// own story; everyone else may, repeatedly.
func (u *storiesUsecase) Vote(ctx context.Context, user *userentity.User, storyID uint, direction string) error {
	if !entity.ValidDirection(direction) {
		return ErrInvalidDirection
	}

	story, err := u.repo.FindByID(ctx, storyID)
	if err != nil {
		return err
	}

	switch authdomain.AuthorizeOwnerAction(user, story.UserID, authdomain.ForbidOwner) {
	case authdomain.DecisionDenyUnauthenticated:
		return ErrUnauthenticated
	case authdomain.DecisionDenyOwnership:
		return ErrOwnStoryVote
	}

	vote := &entity.Vote{Direction: direction, StoryID: storyID, UserID: user.ID}
	return u.repo.AddVote(ctx, vote)
}

// Comments returns a story's comments with author emails. A story without
// comments (or an unknown id) yields an empty list.
func (u *storiesUsecase) Comments(ctx context.Context, storyID uint) ([]entity.CommentWithAuthor, error) {
	return u.repo.CommentsWithAuthor(ctx, storyID)
}

// AddComment records a comment on an existing story.
func (u *storiesUsecase) AddComment(ctx context.Context, user *userentity.User, storyID uint, text string) error {
	if user == nil {
		return ErrUnauthenticated
	}
	if _, err := u.repo.FindByID(ctx, storyID); err != nil {
		return err
	}

	comment := &entity.Comment{StoryID: storyID, UserID: user.ID, Text: text}
	return u.repo.AddComment(ctx, comment)
}
