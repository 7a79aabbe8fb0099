// Package entity defines the domain entities for the stories feature.
package entity

import "time"

// Story is a submitted link.
type Story struct {
	ID        uint   `gorm:"primaryKey"`
	Title     string `gorm:"size:512;not null"`
	URL       string `gorm:"size:2048;not null"`
	UserID    uint   `gorm:"index;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// StoryWithTotals is a story row extended with its vote aggregate, as
// produced by the listing query.
type StoryWithTotals struct {
	ID         uint      `json:"id"`
	Title      string    `json:"title"`
	URL        string    `json:"url"`
	UserID     uint      `json:"user_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	TotalVotes int64     `json:"total_votes"`
}
