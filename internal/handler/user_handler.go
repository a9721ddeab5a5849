package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Rasel9360/building-management-system-server-site/internal/domain"
	"github.com/Rasel9360/building-management-system-server-site/internal/service"
	"github.com/Rasel9360/building-management-system-server-site/pkg/validator"
)

type UserHandler struct {
	userService *service.UserService
	validator   *validator.Validator
}

func NewUserHandler(userService *service.UserService, validator *validator.Validator) *UserHandler {
	return &UserHandler{
		userService: userService,
		validator:   validator,
	}
}

// Create stores a user on first sign-in
// POST /users
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req service.CreateUserRequest
	if ok, err := parseBody(c, h.validator, &req); !ok {
		return err
	}

	result, err := h.userService.Create(c.UserContext(), req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(result)
}

// Get returns one user by email
// GET /user/:email
func (h *UserHandler) Get(c *fiber.Ctx) error {
	email, err := emailParam(c, h.validator)
	if err != nil {
		return badRequest(c, err.Error())
	}

	user, err := h.userService.GetByEmail(c.UserContext(), email)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(user)
}

// Upsert sets profile fields on the user, creating it if needed
// PATCH /user/:email
func (h *UserHandler) Upsert(c *fiber.Ctx) error {
	email, err := emailParam(c, h.validator)
	if err != nil {
		return badRequest(c, err.Error())
	}

	var req domain.UserUpdate
	if ok, err := parseBody(c, h.validator, &req); !ok {
		return err
	}

	result, err := h.userService.Upsert(c.UserContext(), email, req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(result)
}

// List returns all users, newest first (admin only)
// GET /users
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.userService.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(users)
}
