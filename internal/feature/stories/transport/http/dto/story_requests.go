// Package dto defines data transfer objects for the stories feature's HTTP
// transport layer.
package dto

// AddStoryReq represents the request body for POST /stories. Title is
// optional: when empty, the page title is scraped from the URL.
type AddStoryReq struct {
	Title string `json:"title"`
	URL   string `json:"url" binding:"required"`
}

// VoteReq represents the request body for POST /stories/:id/votes.
type VoteReq struct {
	Direction string `json:"direction" binding:"required,oneof=up down"`
}

// AddCommentReq represents the request body for POST /stories/:id/comments.
type AddCommentReq struct {
	Comment string `json:"comment" binding:"required"`
}
