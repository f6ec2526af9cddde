package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/devsocial/social-api/internal/api/metrics"
	"github.com/devsocial/social-api/internal/api/middleware"
	"github.com/devsocial/social-api/internal/core/domain"
	"github.com/devsocial/social-api/internal/core/ports"
)

// PostHandler handles HTTP requests for the feed.
type PostHandler struct {
	service ports.PostService
}

func NewPostHandler(service ports.PostService) *PostHandler {
	return &PostHandler{service: service}
}

type createPostRequest struct {
	Text string `json:"text" validate:"required"`
}

type addCommentRequest struct {
	Text string `json:"text" validate:"required"`
}

type deletedResponse struct {
	Msg string `json:"msg"`
}

// Create handles POST /api/posts.
func (h *PostHandler) Create(c echo.Context) error {
	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post, err := h.service.Create(c.Request().Context(), middleware.UserID(c), req.Text)
	if err != nil {
		return err
	}

	metrics.PostsCreatedTotal.Inc()
	return c.JSON(http.StatusOK, post)
}

// List handles GET /api/posts, newest first.
func (h *PostHandler) List(c echo.Context) error {
	posts, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, posts)
}

// Get handles GET /api/posts/:id.
func (h *PostHandler) Get(c echo.Context) error {
	post, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}

// Delete handles DELETE /api/posts/:id. Only the author may delete.
func (h *PostHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), middleware.UserID(c), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deletedResponse{Msg: "Post deleted"})
}

// Like handles PUT /api/posts/like/:id and returns the updated like list.
func (h *PostHandler) Like(c echo.Context) error {
	likes, err := h.service.Like(c.Request().Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		metrics.LikeMutationsTotal.WithLabelValues("like", likeResult(err)).Inc()
		return err
	}
	metrics.LikeMutationsTotal.WithLabelValues("like", "ok").Inc()
	return c.JSON(http.StatusOK, likes)
}

// Unlike handles PUT /api/posts/unlike/:id and returns the updated like list.
func (h *PostHandler) Unlike(c echo.Context) error {
	likes, err := h.service.Unlike(c.Request().Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		metrics.LikeMutationsTotal.WithLabelValues("unlike", likeResult(err)).Inc()
		return err
	}
	metrics.LikeMutationsTotal.WithLabelValues("unlike", "ok").Inc()
	return c.JSON(http.StatusOK, likes)
}

// AddComment handles POST /api/posts/comment/:id and returns the updated
// comment list.
func (h *PostHandler) AddComment(c echo.Context) error {
	var req addCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	comments, err := h.service.AddComment(c.Request().Context(), middleware.UserID(c), c.Param("id"), req.Text)
	if err != nil {
		return err
	}

	metrics.CommentMutationsTotal.WithLabelValues("add").Inc()
	return c.JSON(http.StatusOK, comments)
}

// DeleteComment handles DELETE /api/posts/comment/:id/:comment_id. Only the
// comment's author may delete it, regardless of who owns the post.
func (h *PostHandler) DeleteComment(c echo.Context) error {
	comments, err := h.service.DeleteComment(
		c.Request().Context(),
		middleware.UserID(c),
		c.Param("id"),
		c.Param("comment_id"),
	)
	if err != nil {
		return err
	}

	metrics.CommentMutationsTotal.WithLabelValues("delete").Inc()
	return c.JSON(http.StatusOK, comments)
}

func likeResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrAlreadyLiked), errors.Is(err, domain.ErrNotLiked):
		return "conflict"
	case errors.Is(err, domain.ErrPostNotFound):
		return "not_found"
	default:
		return "error"
	}
}
