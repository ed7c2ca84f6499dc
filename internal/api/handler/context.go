package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/lutfi-tyo14/blog-gunungagung/internal/api/middleware"
	"github.com/lutfi-tyo14/blog-gunungagung/internal/core/domain"
)

// actorFromContext rebuilds the session actor stored by the auth middleware.
// Routes that are reachable without a session get domain.Anonymous and let
// the policy layer produce the denial.
func actorFromContext(c echo.Context) domain.Actor {
	id, _ := c.Get(middleware.CtxUserID).(string)
	if id == "" {
		return domain.Anonymous
	}
	email, _ := c.Get(middleware.CtxEmail).(string)
	role, _ := c.Get(middleware.CtxRole).(string)
	return domain.Actor{
		ID:    id,
		Email: email,
		Role:  domain.ParseRole(role),
	}
}
