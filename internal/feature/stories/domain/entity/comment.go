package entity

import "time"

// Comment is a user comment on a story. There is no update or delete path,
// and comments survive the deletion of their story.
type Comment struct {
	ID        uint   `gorm:"primaryKey"`
	StoryID   uint   `gorm:"index;not null"`
	UserID    uint   `gorm:"index;not null"`
	Text      string `gorm:"column:comment;type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CommentWithAuthor is a comment row joined with its author's email, as
// produced by the comment listing query.
type CommentWithAuthor struct {
	ID        uint      `json:"id"`
	StoryID   uint      `json:"story_id"`
	UserID    uint      `json:"user_id"`
	Text      string    `json:"comment" gorm:"column:comment"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
