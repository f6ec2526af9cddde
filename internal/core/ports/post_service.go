package ports

import (
	"context"

	"github.com/devsocial/social-api/internal/core/domain"
)

// PostService implements the feed: post CRUD plus the like and comment
// protocols. Every operation requires an authenticated caller; destructive
// operations additionally check ownership.
type PostService interface {
	Create(ctx context.Context, callerID, text string) (*domain.Post, error)
	List(ctx context.Context) ([]*domain.Post, error)
	Get(ctx context.Context, postID string) (*domain.Post, error)
	// Delete removes a post; only its author may do so.
	Delete(ctx context.Context, callerID, postID string) error

	Like(ctx context.Context, callerID, postID string) ([]domain.Like, error)
	Unlike(ctx context.Context, callerID, postID string) ([]domain.Like, error)
	AddComment(ctx context.Context, callerID, postID, text string) ([]domain.Comment, error)
	// DeleteComment removes a comment; only the comment's author may do so.
	DeleteComment(ctx context.Context, callerID, postID, commentID string) ([]domain.Comment, error)
}
