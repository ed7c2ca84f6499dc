package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/lutfi-tyo14/blog-gunungagung/internal/core/domain"
)

type stubAdminService struct {
	listFn    func(ctx context.Context, actor domain.Actor) ([]*domain.Profile, error)
	changeFn  func(ctx context.Context, actor domain.Actor, targetID, newRole string) (*domain.Profile, error)
	triggerFn func(ctx context.Context, actor domain.Actor, email string) error
}

func (s *stubAdminService) ListProfiles(ctx context.Context, actor domain.Actor) ([]*domain.Profile, error) {
	return s.listFn(ctx, actor)
}

func (s *stubAdminService) ChangeRole(ctx context.Context, actor domain.Actor, targetID, newRole string) (*domain.Profile, error) {
	return s.changeFn(ctx, actor, targetID, newRole)
}

func (s *stubAdminService) TriggerPasswordReset(ctx context.Context, actor domain.Actor, email string) error {
	return s.triggerFn(ctx, actor, email)
}

func TestAdminHandler_ListProfiles(t *testing.T) {
	stub := &stubAdminService{
		listFn: func(ctx context.Context, actor domain.Actor) ([]*domain.Profile, error) {
			if actor.Role != domain.RoleAdmin {
				t.Fatalf("unexpected actor %+v", actor)
			}
			return []*domain.Profile{
				{ID: "u1", Email: "ayu@example.com", Role: domain.RoleUser},
				{ID: "u2", Email: "budi@example.com", Role: domain.RoleAdmin},
			}, nil
		},
	}
	h := NewAdminHandler(stub)

	c, rec := newContext(t, http.MethodGet, "/v1/admin/profiles", "")
	withSession(c, "u2", "budi@example.com", domain.RoleAdmin)

	if err := h.ListProfiles(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 profiles, got %d", len(resp))
	}
	// The privileged view includes emails.
	if resp[0]["email"] != "ayu@example.com" {
		t.Fatalf("expected email in listing, got %v", resp[0])
	}
}

func TestAdminHandler_ChangeRole(t *testing.T) {
	stub := &stubAdminService{
		changeFn: func(ctx context.Context, actor domain.Actor, targetID, newRole string) (*domain.Profile, error) {
			if targetID != "u1" || newRole != "admin" {
				t.Fatalf("unexpected args: %q %q", targetID, newRole)
			}
			return &domain.Profile{ID: targetID, Role: domain.RoleAdmin}, nil
		},
	}
	h := NewAdminHandler(stub)

	c, rec := newContext(t, http.MethodPut, "/v1/admin/profiles/u1/role",
		`{"role":"admin"}`)
	c.SetParamNames("id")
	c.SetParamValues("u1")
	withSession(c, "root1", "root@example.com", domain.RoleSuperAdmin)

	if err := h.ChangeRole(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAdminHandler_ChangeRole_DenialPropagates(t *testing.T) {
	stub := &stubAdminService{
		changeFn: func(ctx context.Context, actor domain.Actor, targetID, newRole string) (*domain.Profile, error) {
			return nil, &domain.DeniedError{Action: domain.ActionChangeRole, Reason: domain.ReasonInvalidRole}
		},
	}
	h := NewAdminHandler(stub)

	c, _ := newContext(t, http.MethodPut, "/v1/admin/profiles/u1/role",
		`{"role":"owner"}`)
	c.SetParamNames("id")
	c.SetParamValues("u1")
	withSession(c, "root1", "root@example.com", domain.RoleSuperAdmin)

	err := h.ChangeRole(c)
	var denied *domain.DeniedError
	if !errors.As(err, &denied) || denied.Reason != domain.ReasonInvalidRole {
		t.Fatalf("expected invalid-role denial, got %v", err)
	}
}

func TestAdminHandler_TriggerPasswordReset(t *testing.T) {
	stub := &stubAdminService{
		triggerFn: func(ctx context.Context, actor domain.Actor, email string) error {
			if email != "ayu@example.com" {
				t.Fatalf("unexpected email %q", email)
			}
			return nil
		},
	}
	h := NewAdminHandler(stub)

	c, rec := newContext(t, http.MethodPost, "/v1/admin/password-reset",
		`{"email":"ayu@example.com"}`)
	withSession(c, "root1", "root@example.com", domain.RoleSuperAdmin)

	if err := h.TriggerPasswordReset(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", rec.Code)
	}
}

func TestAdminHandler_TriggerPasswordReset_MissingAccountPropagates(t *testing.T) {
	stub := &stubAdminService{
		triggerFn: func(ctx context.Context, actor domain.Actor, email string) error {
			return domain.ErrUserNotFound
		},
	}
	h := NewAdminHandler(stub)

	c, _ := newContext(t, http.MethodPost, "/v1/admin/password-reset",
		`{"email":"ghost@example.com"}`)
	withSession(c, "root1", "root@example.com", domain.RoleSuperAdmin)

	if err := h.TriggerPasswordReset(c); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
