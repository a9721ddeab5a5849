package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Rasel9360/building-management-system-server-site/internal/domain"
	"github.com/Rasel9360/building-management-system-server-site/internal/service"
	"github.com/Rasel9360/building-management-system-server-site/pkg/validator"
)

type AgreementHandler struct {
	agreementService *service.AgreementService
	validator        *validator.Validator
}

func NewAgreementHandler(agreementService *service.AgreementService, validator *validator.Validator) *AgreementHandler {
	return &AgreementHandler{
		agreementService: agreementService,
		validator:        validator,
	}
}

// ListByClient returns a client's agreements
// GET /agreement/:email
func (h *AgreementHandler) ListByClient(c *fiber.Ctx) error {
	email, err := emailParam(c, h.validator)
	if err != nil {
		return badRequest(c, err.Error())
	}

	agreements, err := h.agreementService.ListByClient(c.UserContext(), email)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(agreements)
}

// List returns every agreement
// GET /agreement
func (h *AgreementHandler) List(c *fiber.Ctx) error {
	agreements, err := h.agreementService.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(agreements)
}

// Create books an apartment unless the client already holds an agreement
// for it
// POST /agreement
func (h *AgreementHandler) Create(c *fiber.Ctx) error {
	var req domain.Agreement
	if ok, err := parseBody(c, h.validator, &req); !ok {
		return err
	}
	req.ID = bson.ObjectID{}

	result, err := h.agreementService.Create(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(result)
}

// Update sets fields on an agreement, creating it if needed (admin only)
// PATCH /agreement/:id
func (h *AgreementHandler) Update(c *fiber.Ctx) error {
	id, err := objectIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	var req domain.AgreementUpdate
	if ok, err := parseBody(c, h.validator, &req); !ok {
		return err
	}

	result, err := h.agreementService.Update(c.UserContext(), id, req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(result)
}

// Delete removes an agreement (admin only)
// DELETE /agreement/:id
func (h *AgreementHandler) Delete(c *fiber.Ctx) error {
	id, err := objectIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	result, err := h.agreementService.Delete(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(result)
}
