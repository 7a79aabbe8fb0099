// Package domain defines domain-level rules and errors for the auth feature.
package domain

import "news_backend/internal/feature/auth/domain/entity"

// OwnerPolicy selects how an ownership match is interpreted for an action.
// Deletion requires the actor to own the resource; voting forbids it. Both
// call sites share the same comparison, only the polarity differs.
type OwnerPolicy int

const (
	// RequireOwner allows the action only for the resource owner (delete).
	RequireOwner OwnerPolicy = iota

	// ForbidOwner denies the action for the resource owner (vote).
	ForbidOwner
)

// Decision is the outcome of an ownership-gated authorization check.
type Decision int

const (
	// DecisionAllow permits the action.
	DecisionAllow Decision = iota

	// DecisionDenyUnauthenticated rejects an anonymous actor.
	DecisionDenyUnauthenticated

	// DecisionDenyOwnership rejects an actor whose ownership relation to
	// the resource violates the policy (self-vote, or deleting another
	// user's resource).
	DecisionDenyOwnership
)

// isOwner is the single ownership comparison both policies are built on.
func isOwner(user *entity.User, ownerID uint) bool {
	return user.ID == ownerID
}

// AuthorizeOwnerAction decides whether user may perform an ownership-gated
// action on a resource owned by ownerID.
func AuthorizeOwnerAction(user *entity.User, ownerID uint, policy OwnerPolicy) Decision {
	if user == nil {
		return DecisionDenyUnauthenticated
	}
	owner := isOwner(user, ownerID)
	switch policy {
	case RequireOwner:
		if !owner {
			return DecisionDenyOwnership
		}
	case ForbidOwner:
		if owner {
			return DecisionDenyOwnership
		}
	}
	return DecisionAllow
}
