package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lutfi-tyo14/blog-gunungagung/internal/api/metrics"
	"github.com/lutfi-tyo14/blog-gunungagung/internal/core/ports"
)

// AdminHandler covers the moderation surface: the all-profiles view, role
// changes, and admin-triggered password resets.
type AdminHandler struct {
	service ports.AdminService
}

func NewAdminHandler(service ports.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

type changeRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

type triggerResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ListProfiles returns every account, emails included.
//
// @Summary      List all profiles
// @Tags         admin
// @Produce      json
// @Success      200  {array}   domain.Profile
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Security     BearerAuth
// @Router       /v1/admin/profiles [get]
func (h *AdminHandler) ListProfiles(c echo.Context) error {
	profiles, err := h.service.ListProfiles(c.Request().Context(), actorFromContext(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profiles)
}

// ChangeRole sets a target account's role. Only a super admin may call this,
// and never against their own account.
//
// @Summary      Change an account's role
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "Target profile id"
// @Param        body  body      changeRoleRequest  true  "New role"
// @Success      200   {object}  domain.Profile
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Security     BearerAuth
// @Router       /v1/admin/profiles/{id}/role [put]
func (h *AdminHandler) ChangeRole(c echo.Context) error {
	var req changeRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	profile, err := h.service.ChangeRole(c.Request().Context(), actorFromContext(c), c.Param("id"), req.Role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// TriggerPasswordReset issues a reset token for another account. Unlike the
// self-service flow this reports a missing account, since the caller already
// sees every email through the profiles view.
//
// @Summary      Trigger a password reset for an account
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      triggerResetRequest  true  "Target email"
// @Success      202   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Security     BearerAuth
// @Router       /v1/admin/password-reset [post]
func (h *AdminHandler) TriggerPasswordReset(c echo.Context) error {
	var req triggerResetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.service.TriggerPasswordReset(c.Request().Context(), actorFromContext(c), req.Email); err != nil {
		return err
	}
	metrics.ResetRequestsTotal.WithLabelValues("admin").Inc()

	return c.JSON(http.StatusAccepted, map[string]string{"message": "reset token issued"})
}
