package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"rentnest/internal/domain/entity"
	"rentnest/internal/domain/repository"
)

type OwnerMiddleware struct {
	userRepo repository.UserRepository
}

func NewOwnerMiddleware(userRepo repository.UserRepository) *OwnerMiddleware {
	return &OwnerMiddleware{
		userRepo: userRepo,
	}
}

// RequireOwner gates owner-only routes on the caller's role tag. Entitlement
// failures answer 401, matching the rest of the API.
func (m *OwnerMiddleware) RequireOwner(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		uid, ok := c.Get("uid").(string)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
		}

		user, err := m.userRepo.GetByID(c.Request().Context(), uid)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to verify owner privileges")
		}

		if user.UserType != entity.UserTypeOwner {
			return echo.NewHTTPError(http.StatusUnauthorized, "Not authorized as an owner")
		}

		return next(c)
	}
}
