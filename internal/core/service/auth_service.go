package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/lutfi-tyo14/blog-gunungagung/internal/core/domain"
	"github.com/lutfi-tyo14/blog-gunungagung/internal/core/ports"
)

// AuthService implements registration, login and the self-service reset flow.
type AuthService struct {
	profiles  ports.ProfileRepository
	tokens    ports.ResetTokenStore
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(profiles ports.ProfileRepository, tokens ports.ResetTokenStore, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{profiles: profiles, tokens: tokens, jwtSecret: jwtSecret, tokenTTL: tokenTTL, log: log}
}

// Register creates the account's profile. New accounts always start as
// RoleUser; the role changes only through the super-admin path.
func (s *AuthService) Register(ctx context.Context, email, password string) (*domain.Profile, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	profile := &domain.Profile{
		Email:        email,
		Role:         domain.RoleUser,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.profiles.Create(ctx, profile)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Msg("account registered")
	return created, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.Profile, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	profile, err := s.profiles.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(profile)
	if err != nil {
		return "", nil, err
	}

	return token, profile, nil
}

// RequestPasswordReset issues a reset token for the account behind email.
// Unknown emails are swallowed so the endpoint cannot be used to probe which
// accounts exist; delivery of the token is out of band.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	if _, err := s.profiles.FindByEmail(ctx, email); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.log.Debug().Msg("reset requested for unknown email")
			return nil
		}
		return err
	}
	return s.issueResetToken(ctx, email)
}

// ResetPassword consumes the token and sets the new password for the account
// it was issued to.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if newPassword == "" {
		return domain.ErrInvalidCredentials
	}

	email, err := s.tokens.Consume(ctx, token)
	if err != nil {
		return err
	}

	profile, err := s.profiles.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := s.profiles.UpdatePassword(ctx, profile.ID, string(hash)); err != nil {
		return err
	}

	s.log.Info().Str("user_id", profile.ID).Msg("password reset completed")
	return nil
}

// issueResetToken generates and stores a token. Shared by the self-service
// flow and the super-admin trigger.
func (s *AuthService) issueResetToken(ctx context.Context, email string) error {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return err
	}
	token := hex.EncodeToString(b)

	if err := s.tokens.Save(ctx, token, email); err != nil {
		return err
	}

	// In production the token goes out by email; the delivery channel is an
	// external concern, so the link only shows up in the logs here.
	s.log.Info().Str("reset_token", token).Msg("password reset token issued")
	return nil
}

func (s *AuthService) generateToken(profile *domain.Profile) (string, error) {
	claims := jwt.MapClaims{
		"sub":   profile.ID,
		"email": profile.Email,
		"role":  string(domain.ParseRole(string(profile.Role))),
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
