package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/lutfi-tyo14/blog-gunungagung/internal/core/domain"
	"github.com/lutfi-tyo14/blog-gunungagung/internal/core/ports"
)

// ResetIssuer is the slice of AuthService the admin surface needs to trigger
// a reset for another account.
type ResetIssuer interface {
	RequestPasswordReset(ctx context.Context, email string) error
}

// AdminService implements the moderation and user-management operations.
type AdminService struct {
	profiles ports.ProfileRepository
	resets   ResetIssuer
	log      zerolog.Logger
}

func NewAdminService(profiles ports.ProfileRepository, resets ResetIssuer, log zerolog.Logger) *AdminService {
	return &AdminService{profiles: profiles, resets: resets, log: log}
}

func (s *AdminService) ListProfiles(ctx context.Context, actor domain.Actor) ([]*domain.Profile, error) {
	if err := domain.AuthorizeErr(actor, domain.ViewAllProfiles()); err != nil {
		return nil, err
	}
	return s.profiles.List(ctx)
}

func (s *AdminService) ChangeRole(ctx context.Context, actor domain.Actor, targetID, newRole string) (*domain.Profile, error) {
	target, err := s.profiles.FindByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	if err := domain.AuthorizeErr(actor, domain.ChangeRole(target, newRole)); err != nil {
		return nil, err
	}

	if err := s.profiles.UpdateRole(ctx, targetID, domain.Role(newRole)); err != nil {
		s.log.Error().Err(err).Str("target_id", targetID).Msg("failed to update role")
		return nil, err
	}

	s.log.Info().
		Str("actor_id", actor.ID).
		Str("target_id", targetID).
		Str("new_role", newRole).
		Msg("role changed")

	return s.profiles.FindByID(ctx, targetID)
}

func (s *AdminService) TriggerPasswordReset(ctx context.Context, actor domain.Actor, email string) error {
	if err := domain.AuthorizeErr(actor, domain.TriggerPasswordReset(email)); err != nil {
		return err
	}

	// Unlike the anonymous flow, the admin path reports a missing account.
	if _, err := s.profiles.FindByEmail(ctx, email); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	if err := s.resets.RequestPasswordReset(ctx, email); err != nil {
		return err
	}

	s.log.Info().Str("actor_id", actor.ID).Msg("admin-triggered password reset issued")
	return nil
}
