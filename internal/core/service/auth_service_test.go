package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/lutfi-tyo14/blog-gunungagung/internal/core/domain"
)

const testSecret = "test-secret"

func newAuth(profiles *stubProfileRepo, tokens *stubTokenStore) *AuthService {
	return NewAuthService(profiles, tokens, testSecret, time.Hour, zerolog.Nop())
}

func TestAuth_Register_DefaultsToUserRole(t *testing.T) {
	profiles := newStubProfileRepo()
	svc := newAuth(profiles, newStubTokenStore())

	p, err := svc.Register(context.Background(), "wira@example.com", "rahasia123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Role != domain.RoleUser {
		t.Errorf("new account role = %q, want %q", p.Role, domain.RoleUser)
	}
	if p.ID == "" {
		t.Error("expected an assigned id")
	}
	if p.PasswordHash == "rahasia123" {
		t.Error("password must be stored hashed")
	}
}

func TestAuth_Register_EmptyFields(t *testing.T) {
	svc := newAuth(newStubProfileRepo(), newStubTokenStore())

	if _, err := svc.Register(context.Background(), "", "pw"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("empty email: got %v", err)
	}
	if _, err := svc.Register(context.Background(), "a@b.com", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("empty password: got %v", err)
	}
}

func TestAuth_Register_DuplicateEmail(t *testing.T) {
	profiles := newStubProfileRepo()
	svc := newAuth(profiles, newStubTokenStore())

	if _, err := svc.Register(context.Background(), "wira@example.com", "pw1"); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.Register(context.Background(), "wira@example.com", "pw2"); !errors.Is(err, domain.ErrUserExists) {
		t.Errorf("duplicate register: got %v, want ErrUserExists", err)
	}
}

func TestAuth_Login_ReturnsVerifiableToken(t *testing.T) {
	profiles := newStubProfileRepo()
	svc := newAuth(profiles, newStubTokenStore())

	created, err := svc.Register(context.Background(), "wira@example.com", "rahasia123")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "wira@example.com", "rahasia123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.ID != created.ID {
		t.Errorf("login user id = %q, want %q", user.ID, created.ID)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token must verify with the signing secret: %v", err)
	}
	if claims["sub"] != created.ID {
		t.Errorf("sub claim = %v, want %q", claims["sub"], created.ID)
	}
	if claims["role"] != "user" {
		t.Errorf("role claim = %v, want user", claims["role"])
	}
	if claims["email"] != "wira@example.com" {
		t.Errorf("email claim = %v", claims["email"])
	}
}

func TestAuth_Login_WrongPassword(t *testing.T) {
	svc := newAuth(newStubProfileRepo(), newStubTokenStore())
	if _, err := svc.Register(context.Background(), "wira@example.com", "rahasia123"); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, _, err := svc.Login(context.Background(), "wira@example.com", "salah")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("wrong password: got %v", err)
	}
}

func TestAuth_Login_UnknownEmailMapsToInvalidCredentials(t *testing.T) {
	svc := newAuth(newStubProfileRepo(), newStubTokenStore())

	_, _, err := svc.Login(context.Background(), "ghost@example.com", "pw")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("unknown email must not be distinguishable: got %v", err)
	}
}

func TestAuth_RequestPasswordReset_UnknownEmailSilent(t *testing.T) {
	tokens := newStubTokenStore()
	svc := newAuth(newStubProfileRepo(), tokens)

	if err := svc.RequestPasswordReset(context.Background(), "ghost@example.com"); err != nil {
		t.Fatalf("unknown email must not surface an error: %v", err)
	}
	if len(tokens.tokens) != 0 {
		t.Error("no token must be issued for an unknown email")
	}
}

func TestAuth_ResetPassword_RoundTrip(t *testing.T) {
	profiles := newStubProfileRepo()
	tokens := newStubTokenStore()
	svc := newAuth(profiles, tokens)

	created, err := svc.Register(context.Background(), "wira@example.com", "lama123")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := svc.RequestPasswordReset(context.Background(), "wira@example.com"); err != nil {
		t.Fatalf("request reset: %v", err)
	}
	if len(tokens.tokens) != 1 {
		t.Fatalf("expected 1 issued token, got %d", len(tokens.tokens))
	}
	var token string
	for tok := range tokens.tokens {
		token = tok
	}

	if err := svc.ResetPassword(context.Background(), token, "baru456"); err != nil {
		t.Fatalf("reset: %v", err)
	}

	stored := profiles.byID[created.ID]
	if bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("baru456")) != nil {
		t.Error("new password must verify after reset")
	}

	// The token is single-use.
	if err := svc.ResetPassword(context.Background(), token, "lagi789"); !errors.Is(err, domain.ErrInvalidResetToken) {
		t.Errorf("token replay: got %v, want ErrInvalidResetToken", err)
	}
}

func TestAuth_ResetPassword_BadToken(t *testing.T) {
	svc := newAuth(newStubProfileRepo(), newStubTokenStore())

	err := svc.ResetPassword(context.Background(), "deadbeef", "baru456")
	if !errors.Is(err, domain.ErrInvalidResetToken) {
		t.Errorf("bad token: got %v", err)
	}
}
