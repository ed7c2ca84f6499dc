package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lutfi-tyo14/blog-gunungagung/internal/core/ports"
)

// ProfileHandler serves the caller's own profile.
type ProfileHandler struct {
	service ports.ProfileService
}

func NewProfileHandler(service ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

type updateProfileRequest struct {
	Username  *string `json:"username" validate:"omitempty,min=3,max=40"`
	AvatarURL *string `json:"avatar_url" validate:"omitempty,url"`
}

// Get returns the caller's profile.
//
// @Summary      Get own profile
// @Tags         profile
// @Produce      json
// @Success      200  {object}  domain.Profile
// @Failure      401  {object}  map[string]string
// @Security     BearerAuth
// @Router       /v1/me [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	profile, err := h.service.Get(c.Request().Context(), actorFromContext(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// Update applies a partial update to the caller's profile. Absent fields
// keep their stored values.
//
// @Summary      Update own profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        body  body      updateProfileRequest  true  "Fields to change"
// @Success      200   {object}  domain.Profile
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Security     BearerAuth
// @Router       /v1/me [put]
func (h *ProfileHandler) Update(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	profile, err := h.service.Update(c.Request().Context(), actorFromContext(c), ports.UpdateProfileInput{
		Username:  req.Username,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}
