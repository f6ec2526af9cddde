package ports

import (
	"context"
	"time"

	"github.com/devsocial/social-api/internal/core/domain"
)

// UpsertProfileInput carries all data for creating or updating a profile.
// Skills arrives as the raw comma-separated string the client submits.
type UpsertProfileInput struct {
	Company    string
	Website    string
	Location   string
	Bio        string
	Status     string
	GithubUser string
	Skills     string
	Youtube    string
	Twitter    string
	Facebook   string
	LinkedIn   string
	Instagram  string
}

// ExperienceInput is the DTO for adding an employment entry.
type ExperienceInput struct {
	Title       string
	Company     string
	Location    string
	From        time.Time
	To          *time.Time
	Current     bool
	Description string
}

// EducationInput is the DTO for adding a schooling entry.
type EducationInput struct {
	School       string
	Degree       string
	FieldOfStudy string
	From         time.Time
	To           *time.Time
	Current      bool
	Description  string
}

// ProfileService implements profile reads, owner-scoped mutations, and the
// account-deletion cascade.
type ProfileService interface {
	Me(ctx context.Context, callerID string) (*domain.Profile, error)
	Upsert(ctx context.Context, callerID string, in UpsertProfileInput) (*domain.Profile, error)
	All(ctx context.Context) ([]*domain.Profile, error)
	ByUserID(ctx context.Context, userID string) (*domain.Profile, error)
	// DeleteAccount removes the caller's posts, profile, and user record.
	DeleteAccount(ctx context.Context, callerID string) error

	AddExperience(ctx context.Context, callerID string, in ExperienceInput) (*domain.Profile, error)
	RemoveExperience(ctx context.Context, callerID, entryID string) (*domain.Profile, error)
	AddEducation(ctx context.Context, callerID string, in EducationInput) (*domain.Profile, error)
	RemoveEducation(ctx context.Context, callerID, entryID string) (*domain.Profile, error)

	GithubRepos(ctx context.Context, username string) ([]GithubRepo, error)
}
