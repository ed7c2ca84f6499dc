package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/lutfi-tyo14/blog-gunungagung/internal/core/domain"
	"github.com/lutfi-tyo14/blog-gunungagung/internal/core/ports"
)

// ProfileService reads and updates the caller's own profile.
type ProfileService struct {
	profiles ports.ProfileRepository
	log      zerolog.Logger
}

func NewProfileService(profiles ports.ProfileRepository, log zerolog.Logger) *ProfileService {
	return &ProfileService{profiles: profiles, log: log}
}

func (s *ProfileService) Get(ctx context.Context, actor domain.Actor) (*domain.Profile, error) {
	if actor.IsAnonymous() {
		return nil, domain.ErrUnauthenticated
	}
	return s.profiles.FindByID(ctx, actor.ID)
}

func (s *ProfileService) Update(ctx context.Context, actor domain.Actor, in ports.UpdateProfileInput) (*domain.Profile, error) {
	if err := domain.AuthorizeErr(actor, domain.EditOwnProfile()); err != nil {
		return nil, err
	}

	patch := ports.ProfilePatch{Username: in.Username, AvatarURL: in.AvatarURL}
	if err := s.profiles.UpdateProfile(ctx, actor.ID, patch); err != nil {
		s.log.Error().Err(err).Str("user_id", actor.ID).Msg("failed to update profile")
		return nil, err
	}

	return s.profiles.FindByID(ctx, actor.ID)
}
