package ports

import (
	"context"

	"github.com/devsocial/social-api/internal/core/domain"
)

// PostRepository defines persistence for posts and their embedded like and
// comment collections. Like mutations are guarded, atomic updates so that
// concurrent like/unlike calls from the same caller resolve to exactly one
// entry or none.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) (*domain.Post, error)
	// FindAll returns every post, newest first.
	FindAll(ctx context.Context) ([]*domain.Post, error)
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	Delete(ctx context.Context, id string) error
	// DeleteByUser removes every post authored by the given user.
	DeleteByUser(ctx context.Context, userID string) error

	// AddLike inserts the like at the head of the sequence unless the user
	// already has one; a duplicate fails with domain.ErrAlreadyLiked.
	AddLike(ctx context.Context, postID string, like domain.Like) ([]domain.Like, error)
	// RemoveLike removes the caller's like; absence fails with domain.ErrNotLiked.
	RemoveLike(ctx context.Context, postID, userID string) ([]domain.Like, error)
	AddComment(ctx context.Context, postID string, comment domain.Comment) ([]domain.Comment, error)
	// RemoveComment removes the comment with the given id (never resolved by
	// the commenting user's id). Absence fails with domain.ErrCommentNotFound.
	RemoveComment(ctx context.Context, postID, commentID string) ([]domain.Comment, error)
}
