package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/devsocial/social-api/internal/core/domain"
)

func newPostFixture(t *testing.T) (*PostService, *stubPostRepo, *stubUserRepo) {
	t.Helper()
	users := newStubUserRepo()
	for _, name := range []string{"Alice", "Bob", "Carol"} {
		if _, err := users.Create(context.Background(), &domain.User{
			Name:      name,
			Email:     name + "@x.com",
			AvatarURL: "https://example.com/" + name,
			CreatedAt: time.Now(),
		}); err != nil {
			t.Fatalf("seed user %s: %v", name, err)
		}
	}
	posts := newStubPostRepo()
	return NewPostService(posts, users, zerolog.Nop()), posts, users
}

// Seeded ids are assigned in order: user_1=Alice, user_2=Bob, user_3=Carol.
const (
	aliceID = "user_1"
	bobID   = "user_2"
	carolID = "user_3"
)

func TestPostService_Create_DenormalizesAuthor(t *testing.T) {
	svc, _, _ := newPostFixture(t)

	post, err := svc.Create(context.Background(), aliceID, "hello world")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if post.UserID != aliceID || post.Name != "Alice" {
		t.Fatalf("author not denormalized: %+v", post)
	}
	if len(post.Likes) != 0 || len(post.Comments) != 0 {
		t.Fatalf("new post must start with empty embedded collections")
	}
}

func TestPostService_LikeUnlike_StateMachine(t *testing.T) {
	svc, _, _ := newPostFixture(t)

	post, err := svc.Create(context.Background(), aliceID, "like me")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// First like succeeds and appends one entry.
	likes, err := svc.Like(context.Background(), bobID, post.ID)
	if err != nil {
		t.Fatalf("like: %v", err)
	}
	if len(likes) != 1 || likes[0].UserID != bobID {
		t.Fatalf("unexpected likes: %+v", likes)
	}

	// Second like from the same caller conflicts, count unchanged.
	if _, err := svc.Like(context.Background(), bobID, post.ID); !errors.Is(err, domain.ErrAlreadyLiked) {
		t.Fatalf("expected ErrAlreadyLiked, got %v", err)
	}
	current, err := svc.Get(context.Background(), post.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(current.Likes) != 1 {
		t.Fatalf("like count changed on conflict: %d", len(current.Likes))
	}

	// Unlike removes the entry.
	likes, err = svc.Unlike(context.Background(), bobID, post.ID)
	if err != nil {
		t.Fatalf("unlike: %v", err)
	}
	if len(likes) != 0 {
		t.Fatalf("expected empty likes, got %+v", likes)
	}

	// Unliking again conflicts and leaves the sequence unchanged.
	if _, err := svc.Unlike(context.Background(), bobID, post.ID); !errors.Is(err, domain.ErrNotLiked) {
		t.Fatalf("expected ErrNotLiked, got %v", err)
	}
}

func TestPostService_Like_InsertFrontOrdering(t *testing.T) {
	svc, _, _ := newPostFixture(t)

	post, _ := svc.Create(context.Background(), aliceID, "popular")
	if _, err := svc.Like(context.Background(), bobID, post.ID); err != nil {
		t.Fatalf("bob like: %v", err)
	}
	likes, err := svc.Like(context.Background(), carolID, post.ID)
	if err != nil {
		t.Fatalf("carol like: %v", err)
	}
	if likes[0].UserID != carolID || likes[1].UserID != bobID {
		t.Fatalf("expected most-recent-first ordering, got %+v", likes)
	}
}

func TestPostService_Unlike_NeverLiked(t *testing.T) {
	svc, _, _ := newPostFixture(t)

	post, _ := svc.Create(context.Background(), aliceID, "unloved")
	if _, err := svc.Unlike(context.Background(), bobID, post.ID); !errors.Is(err, domain.ErrNotLiked) {
		t.Fatalf("expected ErrNotLiked, got %v", err)
	}
}

func TestPostService_Delete_OwnerOnly(t *testing.T) {
	svc, _, _ := newPostFixture(t)

	post, _ := svc.Create(context.Background(), aliceID, "mine")

	// Carol is not the author; the post must survive her attempt.
	if err := svc.Delete(context.Background(), carolID, post.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := svc.Get(context.Background(), post.ID); err != nil {
		t.Fatalf("post removed by a non-owner: %v", err)
	}

	if err := svc.Delete(context.Background(), aliceID, post.ID); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
	if _, err := svc.Get(context.Background(), post.ID); !errors.Is(err, domain.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestPostService_Comments_AddAndOrdering(t *testing.T) {
	svc, _, _ := newPostFixture(t)

	post, _ := svc.Create(context.Background(), aliceID, "discuss")
	if _, err := svc.AddComment(context.Background(), bobID, post.ID, "first"); err != nil {
		t.Fatalf("comment: %v", err)
	}
	comments, err := svc.AddComment(context.Background(), carolID, post.ID, "second")
	if err != nil {
		t.Fatalf("comment: %v", err)
	}

	if comments[0].Text != "second" || comments[1].Text != "first" {
		t.Fatalf("expected most-recent-first ordering, got %+v", comments)
	}
	if comments[0].ID == "" || comments[0].ID == comments[1].ID {
		t.Fatalf("comments must carry distinct server-assigned ids")
	}
	if comments[0].ID == carolID {
		t.Fatalf("comment id must be independent of the commenter's user id")
	}
}

func TestPostService_DeleteComment_AuthorOnly(t *testing.T) {
	svc, _, _ := newPostFixture(t)

	post, _ := svc.Create(context.Background(), aliceID, "discuss")
	comments, err := svc.AddComment(context.Background(), bobID, post.ID, "bob's take")
	if err != nil {
		t.Fatalf("comment: %v", err)
	}
	commentID := comments[0].ID

	// The post owner is not the comment author and may not delete it.
	if _, err := svc.DeleteComment(context.Background(), aliceID, post.ID, commentID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	current, _ := svc.Get(context.Background(), post.ID)
	if len(current.Comments) != 1 {
		t.Fatalf("comment removed by a non-author")
	}

	remaining, err := svc.DeleteComment(context.Background(), bobID, post.ID, commentID)
	if err != nil {
		t.Fatalf("author delete: %v", err)
	}
	if len(remaining) != 0 {
		t.Fatalf("expected no comments, got %+v", remaining)
	}
}

func TestPostService_DeleteComment_RemovesAddressedCommentOnly(t *testing.T) {
	svc, _, _ := newPostFixture(t)

	// Bob authors two comments; deleting the older one must not touch the
	// newer one.
	post, _ := svc.Create(context.Background(), aliceID, "discuss")
	first, err := svc.AddComment(context.Background(), bobID, post.ID, "older")
	if err != nil {
		t.Fatalf("comment: %v", err)
	}
	olderID := first[0].ID
	if _, err := svc.AddComment(context.Background(), bobID, post.ID, "newer"); err != nil {
		t.Fatalf("comment: %v", err)
	}

	remaining, err := svc.DeleteComment(context.Background(), bobID, post.ID, olderID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(remaining) != 1 || remaining[0].Text != "newer" {
		t.Fatalf("wrong comment removed: %+v", remaining)
	}
}

func TestPostService_DeleteComment_Missing(t *testing.T) {
	svc, _, _ := newPostFixture(t)

	post, _ := svc.Create(context.Background(), aliceID, "discuss")
	if _, err := svc.DeleteComment(context.Background(), bobID, post.ID, "no-such-comment"); !errors.Is(err, domain.ErrCommentNotFound) {
		t.Fatalf("expected ErrCommentNotFound, got %v", err)
	}
}
