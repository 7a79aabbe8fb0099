// Package usecase implements the business logic for the stories feature.
package usecase

import "errors"

var (
	// ErrStoryNotFound is returned when a story id matches no row.
	ErrStoryNotFound = errors.New("story not found")

	// ErrInvalidSort is returned for a sort column or order outside the
	// allowed set.
	ErrInvalidSort = errors.New("invalid sort parameters")

	// ErrInvalidDirection is returned for a vote direction other than
	// up or down.
	ErrInvalidDirection = errors.New("invalid vote direction")

	// ErrURLUnreachable is returned when the submitted URL cannot be
	// fetched successfully. The add is not retried.
	ErrURLUnreachable = errors.New("url could not be fetched")

	// ErrUnauthenticated is returned when an anonymous actor attempts a
	// mutating operation.
	ErrUnauthenticated = errors.New("not logged in")

	// ErrOwnStoryVote is returned when a user votes on their own story.
	ErrOwnStoryVote = errors.New("cannot vote on own story")

	// ErrNotStoryOwner is returned when a user deletes a story they do
	// not own.
	ErrNotStoryOwner = errors.New("cannot delete another user's story")
)
