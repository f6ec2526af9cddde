package service

import (
	"context"
	"fmt"

	"github.com/devsocial/social-api/internal/core/domain"
	"github.com/devsocial/social-api/internal/core/ports"
)

type stubUserRepo struct {
	seq   int
	users map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	copy := cloneUser(user)
	r.seq++
	copy.ID = fmt.Sprintf("user_%d", r.seq)
	r.users[copy.ID] = cloneUser(copy)
	return copy, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

// stubPostRepo mirrors the Mongo repository's guarded-update semantics in
// memory, using the same embedded-collection protocol.
type stubPostRepo struct {
	seq   int
	posts map[string]*domain.Post
}

func newStubPostRepo() *stubPostRepo {
	return &stubPostRepo{posts: make(map[string]*domain.Post)}
}

func clonePost(p *domain.Post) *domain.Post {
	clone := *p
	clone.Likes = append([]domain.Like(nil), p.Likes...)
	clone.Comments = append([]domain.Comment(nil), p.Comments...)
	return &clone
}

func (r *stubPostRepo) Create(_ context.Context, post *domain.Post) (*domain.Post, error) {
	r.seq++
	post.ID = fmt.Sprintf("post_%d", r.seq)
	r.posts[post.ID] = clonePost(post)
	return clonePost(post), nil
}

func (r *stubPostRepo) FindAll(_ context.Context) ([]*domain.Post, error) {
	out := make([]*domain.Post, 0, len(r.posts))
	for _, p := range r.posts {
		out = append(out, clonePost(p))
	}
	return out, nil
}

func (r *stubPostRepo) FindByID(_ context.Context, id string) (*domain.Post, error) {
	p, ok := r.posts[id]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	return clonePost(p), nil
}

func (r *stubPostRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.posts[id]; !ok {
		return domain.ErrPostNotFound
	}
	delete(r.posts, id)
	return nil
}

func (r *stubPostRepo) DeleteByUser(_ context.Context, userID string) error {
	for id, p := range r.posts {
		if p.UserID == userID {
			delete(r.posts, id)
		}
	}
	return nil
}

func (r *stubPostRepo) AddLike(_ context.Context, postID string, like domain.Like) ([]domain.Like, error) {
	p, ok := r.posts[postID]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	if domain.ContainsKey(p.Likes, like.UserID) {
		return nil, domain.ErrAlreadyLiked
	}
	p.Likes = domain.InsertFront(p.Likes, like)
	return append([]domain.Like(nil), p.Likes...), nil
}

func (r *stubPostRepo) RemoveLike(_ context.Context, postID, userID string) ([]domain.Like, error) {
	p, ok := r.posts[postID]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	likes, removed := domain.RemoveByKey(p.Likes, userID)
	if !removed {
		return nil, domain.ErrNotLiked
	}
	p.Likes = likes
	return append([]domain.Like(nil), p.Likes...), nil
}

func (r *stubPostRepo) AddComment(_ context.Context, postID string, comment domain.Comment) ([]domain.Comment, error) {
	p, ok := r.posts[postID]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	p.Comments = domain.InsertFront(p.Comments, comment)
	return append([]domain.Comment(nil), p.Comments...), nil
}

func (r *stubPostRepo) RemoveComment(_ context.Context, postID, commentID string) ([]domain.Comment, error) {
	p, ok := r.posts[postID]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	comments, removed := domain.RemoveByKey(p.Comments, commentID)
	if !removed {
		return nil, domain.ErrCommentNotFound
	}
	p.Comments = comments
	return append([]domain.Comment(nil), p.Comments...), nil
}

type stubProfileRepo struct {
	seq      int
	profiles map[string]*domain.Profile // keyed by owning user id
}

func newStubProfileRepo() *stubProfileRepo {
	return &stubProfileRepo{profiles: make(map[string]*domain.Profile)}
}

func cloneProfile(p *domain.Profile) *domain.Profile {
	clone := *p
	clone.Skills = append([]string(nil), p.Skills...)
	clone.Experience = append([]domain.Experience(nil), p.Experience...)
	clone.Education = append([]domain.Education(nil), p.Education...)
	return &clone
}

func (r *stubProfileRepo) Upsert(_ context.Context, profile *domain.Profile) (*domain.Profile, error) {
	existing, ok := r.profiles[profile.UserID]
	if !ok {
		r.seq++
		stored := cloneProfile(profile)
		stored.ID = fmt.Sprintf("profile_%d", r.seq)
		stored.Experience = []domain.Experience{}
		stored.Education = []domain.Education{}
		r.profiles[profile.UserID] = stored
		return cloneProfile(stored), nil
	}
	// Scalar replace; embedded collections survive.
	existing.Company = profile.Company
	existing.Website = profile.Website
	existing.Location = profile.Location
	existing.Bio = profile.Bio
	existing.Status = profile.Status
	existing.GithubUser = profile.GithubUser
	existing.Skills = append([]string(nil), profile.Skills...)
	existing.Social = profile.Social
	return cloneProfile(existing), nil
}

func (r *stubProfileRepo) FindByUserID(_ context.Context, userID string) (*domain.Profile, error) {
	p, ok := r.profiles[userID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return cloneProfile(p), nil
}

func (r *stubProfileRepo) FindAll(_ context.Context) ([]*domain.Profile, error) {
	out := make([]*domain.Profile, 0, len(r.profiles))
	for _, p := range r.profiles {
		out = append(out, cloneProfile(p))
	}
	return out, nil
}

func (r *stubProfileRepo) DeleteByUserID(_ context.Context, userID string) error {
	if _, ok := r.profiles[userID]; !ok {
		return domain.ErrProfileNotFound
	}
	delete(r.profiles, userID)
	return nil
}

func (r *stubProfileRepo) AddExperience(_ context.Context, userID string, exp domain.Experience) (*domain.Profile, error) {
	p, ok := r.profiles[userID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	p.Experience = domain.InsertFront(p.Experience, exp)
	return cloneProfile(p), nil
}

func (r *stubProfileRepo) RemoveExperience(_ context.Context, userID, entryID string) (*domain.Profile, error) {
	p, ok := r.profiles[userID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	entries, removed := domain.RemoveByKey(p.Experience, entryID)
	if !removed {
		return nil, domain.ErrEntryNotFound
	}
	p.Experience = entries
	return cloneProfile(p), nil
}

func (r *stubProfileRepo) AddEducation(_ context.Context, userID string, edu domain.Education) (*domain.Profile, error) {
	p, ok := r.profiles[userID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	p.Education = domain.InsertFront(p.Education, edu)
	return cloneProfile(p), nil
}

func (r *stubProfileRepo) RemoveEducation(_ context.Context, userID, entryID string) (*domain.Profile, error) {
	p, ok := r.profiles[userID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	entries, removed := domain.RemoveByKey(p.Education, entryID)
	if !removed {
		return nil, domain.ErrEntryNotFound
	}
	p.Education = entries
	return cloneProfile(p), nil
}

type stubGithubGateway struct {
	repos map[string][]ports.GithubRepo
}

func (g *stubGithubGateway) Repos(_ context.Context, username string) ([]ports.GithubRepo, error) {
	repos, ok := g.repos[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return repos, nil
}
