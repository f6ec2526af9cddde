package service

import (
	"context"
	"crypto/md5"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/devsocial/social-api/internal/core/domain"
	"github.com/devsocial/social-api/internal/core/ports"
	"github.com/devsocial/social-api/internal/core/token"
)

// AuthService implements registration, login, and current-user lookup.
type AuthService struct {
	users       ports.UserRepository
	credentials ports.CredentialVerifier
	tokens      *token.Codec
	logger      zerolog.Logger
}

func NewAuthService(users ports.UserRepository, credentials ports.CredentialVerifier, tokens *token.Codec, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, credentials: credentials, tokens: tokens, logger: logger}
}

// Register creates an account and returns a signed token. A duplicate email
// fails with ErrUserExists and leaves no partial state.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (string, error) {
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return "", domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return "", err
	}

	hash, err := s.credentials.Hash(password)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		AvatarURL:    gravatarURL(email),
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("failed to create user")
		return "", err
	}

	s.logger.Info().Str("user_id", created.ID).Msg("user registered")
	return s.tokens.Issue(created.ID)
}

// Login authenticates by email and password and returns a signed token.
// Unknown email and wrong password both fail with ErrInvalidCredentials;
// the caller cannot tell which.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if !s.credentials.Verify(password, user.PasswordHash) {
		return "", domain.ErrInvalidCredentials
	}

	return s.tokens.Issue(user.ID)
}

// CurrentUser loads the authenticated caller's account record.
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}

// gravatarURL derives the avatar URL from the account email: size 200,
// rating pg, identicon fallback.
func gravatarURL(email string) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%x?s=200&r=pg&d=mm", sum)
}
