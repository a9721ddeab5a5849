package middleware

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/Rasel9360/building-management-system-server-site/internal/domain"
	"github.com/Rasel9360/building-management-system-server-site/internal/metrics"
)

// RoleChecker is satisfied by *service.RoleService.
type RoleChecker interface {
	HasRole(ctx context.Context, email string, roles ...domain.Role) (bool, error)
}

// RequireRole lets the request through only if the authenticated user
// currently holds one of roles. It must run after AuthMiddleware.
func RequireRole(roleChecker RoleChecker, recorder metrics.Recorder, roles ...domain.Role) fiber.Handler {
	if recorder == nil {
		recorder = metrics.Nop{}
	}

	return func(c *fiber.Ctx) error {
		email, ok := EmailFromLocals(c)
		if !ok {
			recorder.RecordAuthRejection("missing_identity")
			return unauthorized(c)
		}

		hasRole, err := roleChecker.HasRole(c.UserContext(), email, roles...)
		if err != nil {
			slog.Error("role lookup failed", "email", email, "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":   true,
				"message": "Failed to check role",
			})
		}

		if !hasRole {
			recorder.RecordAuthRejection("forbidden")
			return forbidden(c)
		}

		return c.Next()
	}
}

// RequireAdmin is RequireRole for the Admin role.
func RequireAdmin(roleChecker RoleChecker, recorder metrics.Recorder) fiber.Handler {
	return RequireRole(roleChecker, recorder, domain.RoleAdmin)
}
