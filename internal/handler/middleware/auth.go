package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Rasel9360/building-management-system-server-site/internal/domain"
	"github.com/Rasel9360/building-management-system-server-site/internal/metrics"
)

const (
	LocalEmail  = "email"
	LocalClaims = "claims"
)

// TokenVerifier is satisfied by *jwt.TokenService.
type TokenVerifier interface {
	Verify(token string) (*domain.Claims, error)
}

// AuthMiddleware requires a valid "Authorization: Bearer <token>" header and
// stores the verified claims in fiber.Locals for downstream handlers.
func AuthMiddleware(tokens TokenVerifier, recorder metrics.Recorder) fiber.Handler {
	if recorder == nil {
		recorder = metrics.Nop{}
	}

	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			recorder.RecordAuthRejection("missing_header")
			return unauthorized(c)
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			recorder.RecordAuthRejection("malformed_header")
			return unauthorized(c)
		}

		claims, err := tokens.Verify(parts[1])
		if err != nil {
			recorder.RecordAuthRejection("invalid_token")
			return unauthorized(c)
		}

		c.Locals(LocalEmail, claims.Email)
		c.Locals(LocalClaims, claims)

		return c.Next()
	}
}

// EmailFromLocals returns the email stored by AuthMiddleware.
func EmailFromLocals(c *fiber.Ctx) (string, bool) {
	email, ok := c.Locals(LocalEmail).(string)
	return email, ok && email != ""
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error":   true,
		"message": domain.ErrUnauthorized.Error(),
	})
}

func forbidden(c *fiber.Ctx) error {
	return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
		"error":   true,
		"message": domain.ErrForbidden.Error(),
	})
}
