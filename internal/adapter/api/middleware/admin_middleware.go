package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"laporkota/internal/domain/repository"
)

type AdminMiddleware struct {
	userRepo repository.UserRepository
}

func NewAdminMiddleware(userRepo repository.UserRepository) *AdminMiddleware {
	return &AdminMiddleware{
		userRepo: userRepo,
	}
}

func (m *AdminMiddleware) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		uid, ok := c.Get("uid").(string)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
		}

		user, err := m.userRepo.GetByID(c.Request().Context(), uid)
		if err != nil {
			// A missing or unreadable profile never grants admin access.
			return echo.NewHTTPError(http.StatusForbidden, "Admin privileges required")
		}

		if !user.IsAdmin() {
			return echo.NewHTTPError(http.StatusForbidden, "Admin privileges required")
		}

		c.Set("isAdmin", true)

		return next(c)
	}
}
