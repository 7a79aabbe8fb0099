package entity

import "time"

// Vote directions. Anything else is rejected before it reaches the store.
const (
	DirectionUp   = "up"
	DirectionDown = "down"
)

// Vote is a single up/down vote on a story. There is no uniqueness
// constraint on (story_id, user_id): a user may vote repeatedly on the same
// story.
type Vote struct {
	ID        uint   `gorm:"primaryKey"`
	Direction string `gorm:"size:8;not null;default:up"`
	StoryID   uint   `gorm:"index;not null"`
	UserID    uint   `gorm:"index;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidDirection reports whether direction is one of the two vote values.
func ValidDirection(direction string) bool {
	return direction == DirectionUp || direction == DirectionDown
}
