package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/devsocial/social-api/internal/core/domain"
	"github.com/devsocial/social-api/internal/core/ports"
)

// ProfileService implements profile reads, owner-scoped mutations, the
// account-deletion cascade, and the GitHub repository lookup.
type ProfileService struct {
	profiles ports.ProfileRepository
	users    ports.UserRepository
	posts    ports.PostRepository
	github   ports.GithubGateway
	logger   zerolog.Logger
}

func NewProfileService(
	profiles ports.ProfileRepository,
	users ports.UserRepository,
	posts ports.PostRepository,
	github ports.GithubGateway,
	logger zerolog.Logger,
) *ProfileService {
	return &ProfileService{profiles: profiles, users: users, posts: posts, github: github, logger: logger}
}

// Me returns the caller's own profile with owner name and avatar attached.
func (s *ProfileService) Me(ctx context.Context, callerID string) (*domain.Profile, error) {
	profile, err := s.profiles.FindByUserID(ctx, callerID)
	if err != nil {
		return nil, err
	}
	return s.withOwner(ctx, profile), nil
}

// Upsert creates or updates the profile bound to the caller's identity.
// Posting again replaces the scalar fields rather than erroring; embedded
// experience and education entries survive the update.
func (s *ProfileService) Upsert(ctx context.Context, callerID string, in ports.UpsertProfileInput) (*domain.Profile, error) {
	profile := &domain.Profile{
		UserID:     callerID,
		Company:    in.Company,
		Website:    in.Website,
		Location:   in.Location,
		Bio:        in.Bio,
		Status:     in.Status,
		GithubUser: in.GithubUser,
		Skills:     splitSkills(in.Skills),
		Social: domain.SocialLinks{
			Youtube:   in.Youtube,
			Twitter:   in.Twitter,
			Facebook:  in.Facebook,
			LinkedIn:  in.LinkedIn,
			Instagram: in.Instagram,
		},
		CreatedAt: time.Now().UTC(),
	}

	saved, err := s.profiles.Upsert(ctx, profile)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", callerID).Msg("failed to upsert profile")
		return nil, err
	}

	s.logger.Info().Str("user_id", callerID).Msg("profile upserted")
	return saved, nil
}

func (s *ProfileService) All(ctx context.Context) ([]*domain.Profile, error) {
	profiles, err := s.profiles.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range profiles {
		s.withOwner(ctx, p)
	}
	return profiles, nil
}

func (s *ProfileService) ByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	profile, err := s.profiles.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.withOwner(ctx, profile), nil
}

// DeleteAccount cascades: the caller's posts go first, then the profile,
// then the user record. A user without a profile can still delete the
// account, so a missing profile is not an error here.
func (s *ProfileService) DeleteAccount(ctx context.Context, callerID string) error {
	if err := s.posts.DeleteByUser(ctx, callerID); err != nil {
		return err
	}
	if err := s.profiles.DeleteByUserID(ctx, callerID); err != nil && !errors.Is(err, domain.ErrProfileNotFound) {
		return err
	}
	if err := s.users.Delete(ctx, callerID); err != nil {
		return err
	}

	s.logger.Info().Str("user_id", callerID).Msg("account deleted")
	return nil
}

// AddExperience inserts the entry at the head of the caller's experience
// sequence with a server-assigned id.
func (s *ProfileService) AddExperience(ctx context.Context, callerID string, in ports.ExperienceInput) (*domain.Profile, error) {
	exp := domain.Experience{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Company:     in.Company,
		Location:    in.Location,
		From:        in.From,
		To:          in.To,
		Current:     in.Current,
		Description: in.Description,
	}
	return s.profiles.AddExperience(ctx, callerID, exp)
}

func (s *ProfileService) RemoveExperience(ctx context.Context, callerID, entryID string) (*domain.Profile, error) {
	return s.profiles.RemoveExperience(ctx, callerID, entryID)
}

func (s *ProfileService) AddEducation(ctx context.Context, callerID string, in ports.EducationInput) (*domain.Profile, error) {
	edu := domain.Education{
		ID:           uuid.NewString(),
		School:       in.School,
		Degree:       in.Degree,
		FieldOfStudy: in.FieldOfStudy,
		From:         in.From,
		To:           in.To,
		Current:      in.Current,
		Description:  in.Description,
	}
	return s.profiles.AddEducation(ctx, callerID, edu)
}

func (s *ProfileService) RemoveEducation(ctx context.Context, callerID, entryID string) (*domain.Profile, error) {
	return s.profiles.RemoveEducation(ctx, callerID, entryID)
}

// GithubRepos lists the user's most recent public repositories through the
// gateway.
func (s *ProfileService) GithubRepos(ctx context.Context, username string) ([]ports.GithubRepo, error) {
	return s.github.Repos(ctx, username)
}

// withOwner attaches the owning user's name and avatar. A missing owner is
// tolerated: the profile is still returned without the denormalized fields.
func (s *ProfileService) withOwner(ctx context.Context, profile *domain.Profile) *domain.Profile {
	owner, err := s.users.FindByID(ctx, profile.UserID)
	if err != nil {
		s.logger.Warn().Err(err).Str("user_id", profile.UserID).Msg("profile owner lookup failed")
		return profile
	}
	profile.OwnerName = owner.Name
	profile.OwnerAvatar = owner.AvatarURL
	return profile
}

// splitSkills turns the comma-separated client payload into a trimmed list.
func splitSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}
