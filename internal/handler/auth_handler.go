package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Rasel9360/building-management-system-server-site/internal/domain"
	"github.com/Rasel9360/building-management-system-server-site/pkg/jwt"
	"github.com/Rasel9360/building-management-system-server-site/pkg/validator"
)

type AuthHandler struct {
	tokenService *jwt.TokenService
	validator    *validator.Validator
}

func NewAuthHandler(tokenService *jwt.TokenService, validator *validator.Validator) *AuthHandler {
	return &AuthHandler{
		tokenService: tokenService,
		validator:    validator,
	}
}

// IssueToken signs a session token for the identity in the body. The email
// field is required; every other field is carried as profile data.
// POST /jwt
func (h *AuthHandler) IssueToken(c *fiber.Ctx) error {
	var body map[string]any
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	email, _ := body["email"].(string)
	if err := h.validator.Var("email", email, "required,email"); err != nil {
		return badRequest(c, err.Error())
	}
	delete(body, "email")

	identity := domain.Identity{Email: email}
	if len(body) > 0 {
		identity.Profile = body
	}

	token, err := h.tokenService.Issue(identity)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(domain.TokenResponse{Token: token})
}
