package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/devsocial/social-api/internal/core/domain"
	"github.com/devsocial/social-api/internal/core/ports"
)

// PostService implements the feed operations. Like and comment mutations go
// through the repository's guarded atomic updates, so a lost update between
// two concurrent calls on the same post cannot occur.
type PostService struct {
	posts  ports.PostRepository
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewPostService(posts ports.PostRepository, users ports.UserRepository, logger zerolog.Logger) *PostService {
	return &PostService{posts: posts, users: users, logger: logger}
}

// Create builds a post with the author's name and avatar denormalized onto it.
func (s *PostService) Create(ctx context.Context, callerID, text string) (*domain.Post, error) {
	author, err := s.users.FindByID(ctx, callerID)
	if err != nil {
		return nil, err
	}

	post := &domain.Post{
		UserID:    callerID,
		Text:      text,
		Name:      author.Name,
		AvatarURL: author.AvatarURL,
		Likes:     []domain.Like{},
		Comments:  []domain.Comment{},
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.posts.Create(ctx, post)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", callerID).Msg("failed to create post")
		return nil, err
	}

	s.logger.Info().Str("post_id", created.ID).Str("user_id", callerID).Msg("post created")
	return created, nil
}

func (s *PostService) List(ctx context.Context) ([]*domain.Post, error) {
	return s.posts.FindAll(ctx)
}

func (s *PostService) Get(ctx context.Context, postID string) (*domain.Post, error) {
	return s.posts.FindByID(ctx, postID)
}

// Delete removes a post after verifying the caller authored it. The
// ownership check precedes the write; a forbidden caller leaves the post
// untouched.
func (s *PostService) Delete(ctx context.Context, callerID, postID string) error {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return err
	}
	if err := domain.AssertOwner(post.UserID, callerID); err != nil {
		return err
	}

	if err := s.posts.Delete(ctx, postID); err != nil {
		return err
	}

	s.logger.Info().Str("post_id", postID).Str("user_id", callerID).Msg("post deleted")
	return nil
}

// Like appends the caller's like at the head of the sequence. Liking a post
// the caller already likes fails with ErrAlreadyLiked and changes nothing.
// The duplicate check is keyed on the caller's identity, never on a path
// parameter.
func (s *PostService) Like(ctx context.Context, callerID, postID string) ([]domain.Like, error) {
	return s.posts.AddLike(ctx, postID, domain.Like{UserID: callerID})
}

// Unlike removes the caller's like. Unliking a post the caller never liked
// fails with ErrNotLiked and leaves the sequence unchanged.
func (s *PostService) Unlike(ctx context.Context, callerID, postID string) ([]domain.Like, error) {
	return s.posts.RemoveLike(ctx, postID, callerID)
}

// AddComment inserts a comment at the head of the sequence with a
// server-assigned id independent of the commenter's user id.
func (s *PostService) AddComment(ctx context.Context, callerID, postID, text string) ([]domain.Comment, error) {
	author, err := s.users.FindByID(ctx, callerID)
	if err != nil {
		return nil, err
	}

	comment := domain.Comment{
		ID:        uuid.NewString(),
		UserID:    callerID,
		Name:      author.Name,
		AvatarURL: author.AvatarURL,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}

	return s.posts.AddComment(ctx, postID, comment)
}

// DeleteComment removes the comment with the given id after verifying the
// caller authored that comment. Removal resolves by the comment's own id,
// so a caller with several comments on the post only ever deletes the one
// addressed.
func (s *PostService) DeleteComment(ctx context.Context, callerID, postID, commentID string) ([]domain.Comment, error) {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	comment, _, ok := domain.FindByKey(post.Comments, commentID)
	if !ok {
		return nil, domain.ErrCommentNotFound
	}
	if err := domain.AssertOwner(comment.UserID, callerID); err != nil {
		return nil, err
	}

	return s.posts.RemoveComment(ctx, postID, commentID)
}
