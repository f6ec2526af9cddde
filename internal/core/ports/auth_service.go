package ports

import (
	"context"

	"github.com/devsocial/social-api/internal/core/domain"
)

// AuthService implements registration, login, and current-user lookup.
// Register and Login return a signed token only; no user object is exposed
// on the authentication surface.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	CurrentUser(ctx context.Context, userID string) (*domain.User, error)
}
