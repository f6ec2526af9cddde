package ports

import (
	"context"

	"github.com/devsocial/social-api/internal/core/domain"
)

// ProfileRepository defines persistence for profiles and their embedded
// experience and education collections. The embedded mutations are atomic
// conditional updates keyed on the owning user; a load-mutate-store cycle
// is never exposed.
type ProfileRepository interface {
	// Upsert creates the profile on first write and replaces the scalar
	// fields on subsequent writes, leaving embedded collections intact.
	Upsert(ctx context.Context, profile *domain.Profile) (*domain.Profile, error)
	FindByUserID(ctx context.Context, userID string) (*domain.Profile, error)
	FindAll(ctx context.Context) ([]*domain.Profile, error)
	DeleteByUserID(ctx context.Context, userID string) error

	// AddExperience inserts the entry at the head of the sequence.
	AddExperience(ctx context.Context, userID string, exp domain.Experience) (*domain.Profile, error)
	// RemoveExperience removes the entry with the given id. Absence of the
	// id fails with domain.ErrEntryNotFound.
	RemoveExperience(ctx context.Context, userID, entryID string) (*domain.Profile, error)
	AddEducation(ctx context.Context, userID string, edu domain.Education) (*domain.Profile, error)
	RemoveEducation(ctx context.Context, userID, entryID string) (*domain.Profile, error)
}
