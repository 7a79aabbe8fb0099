// Package handler provides HTTP handlers for the stories feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"news_backend/internal/api"
	userentity "news_backend/internal/feature/auth/domain/entity"
	"news_backend/internal/feature/stories/domain/entity"
	"news_backend/internal/feature/stories/transport/http/dto"
	"news_backend/internal/feature/stories/usecase"
	"news_backend/internal/platform/authmw"
)

// StoriesUsecase defines the story operations the handler depends on.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type StoriesUsecase interface {
	List(ctx context.Context, sortBy, order string) ([]entity.StoryWithTotals, error)
	Add(ctx context.Context, user *userentity.User, title, url string) error
	Delete(ctx context.Context, user *userentity.User, storyID uint) error
	Vote(ctx context.Context, user *userentity.User, storyID uint, direction string) error
	Comments(ctx context.Context, storyID uint) ([]entity.CommentWithAuthor, error)
	AddComment(ctx context.Context, user *userentity.User, storyID uint, text string) error
}

// StoryHandler handles HTTP requests for stories, votes and comments.
type StoryHandler struct {
	stories StoriesUsecase
}

// NewStoryHandler creates a new instance of StoryHandler.
func NewStoryHandler(stories StoriesUsecase) *StoryHandler {
	return &StoryHandler{stories: stories}
}

// storyID parses the :id route parameter. A malformed id is reported as 400.
func storyID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid story id"})
		return 0, false
	}
	return uint(id), true
}

// List handles GET /stories. Query parameters `value` and `order` choose
// the sort. Absent parameters default to newest-first rather than being
// rejected; only a present-but-invalid value yields 400.
func (h *StoryHandler) List(c *gin.Context) {
	sortBy := c.DefaultQuery("value", "created_at")
	order := c.DefaultQuery("order", "DESC")

	stories, err := h.stories.List(c.Request.Context(), sortBy, order)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidSort) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "unable to fetch stories"})
			return
		}
		slog.Error("story listing failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "unable to fetch stories"})
		return
	}
	c.JSON(http.StatusOK, stories)
}

// Add handles POST /stories.
func (h *StoryHandler) Add(c *gin.Context) {
	var req dto.AddStoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	user := authmw.CurrentUser(c)
	err := h.stories.Add(c.Request.Context(), user, req.Title, req.URL)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUnauthenticated):
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "not logged in"})
		case errors.Is(err, usecase.ErrURLUnreachable):
			// Best-effort diagnostics for fetch failures, nothing more.
			slog.Warn("story url fetch failed", "url", req.URL, "error", err)
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "story add failed"})
		default:
			slog.Error("story add failed", "error", err)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "story add failed"})
		}
		return
	}
	c.JSON(http.StatusCreated, api.MessageResponse{Message: "story added"})
}

// Delete handles DELETE /stories/:id. Owner-only; the story's votes go
// with it.
func (h *StoryHandler) Delete(c *gin.Context) {
	id, ok := storyID(c)
	if !ok {
		return
	}

	user := authmw.CurrentUser(c)
	err := h.stories.Delete(c.Request.Context(), user, id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUnauthenticated):
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "not logged in"})
		case errors.Is(err, usecase.ErrNotStoryOwner):
			c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "can't delete other's posts"})
		case errors.Is(err, usecase.ErrStoryNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "story not found"})
		default:
			slog.Error("story delete failed", "error", err, "story_id", id)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "story delete failed"})
		}
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "story deleted"})
}

// Vote handles POST /stories/:id/votes.
func (h *StoryHandler) Vote(c *gin.Context) {
	id, ok := storyID(c)
	if !ok {
		return
	}

	var req dto.VoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	user := authmw.CurrentUser(c)
	err := h.stories.Vote(c.Request.Context(), user, id, req.Direction)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUnauthenticated):
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "not logged in"})
		case errors.Is(err, usecase.ErrOwnStoryVote):
			c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "can't vote on own post"})
		case errors.Is(err, usecase.ErrStoryNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "story not found"})
		case errors.Is(err, usecase.ErrInvalidDirection):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		default:
			slog.Error("vote failed", "error", err, "story_id", id)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "vote failed"})
		}
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "vote added"})
}

// Comments handles GET /stories/:id/comments.
func (h *StoryHandler) Comments(c *gin.Context) {
	id, ok := storyID(c)
	if !ok {
		return
	}

	comments, err := h.stories.Comments(c.Request.Context(), id)
	if err != nil {
		slog.Error("comment listing failed", "error", err, "story_id", id)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "unable to fetch comments"})
		return
	}
	if comments == nil {
		comments = []entity.CommentWithAuthor{}
	}
	c.JSON(http.StatusOK, comments)
}

// AddComment handles POST /stories/:id/comments.
func (h *StoryHandler) AddComment(c *gin.Context) {
	id, ok := storyID(c)
	if !ok {
		return
	}

	var req dto.AddCommentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	user := authmw.CurrentUser(c)
	err := h.stories.AddComment(c.Request.Context(), user, id, req.Comment)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUnauthenticated):
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "not logged in"})
		case errors.Is(err, usecase.ErrStoryNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "story not found"})
		default:
			slog.Error("comment add failed", "error", err, "story_id", id)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "comment add failed"})
		}
		return
	}
	c.JSON(http.StatusCreated, api.MessageResponse{Message: "comment added"})
}
