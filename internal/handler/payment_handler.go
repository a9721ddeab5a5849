package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Rasel9360/building-management-system-server-site/internal/domain"
	"github.com/Rasel9360/building-management-system-server-site/internal/service"
	"github.com/Rasel9360/building-management-system-server-site/pkg/validator"
)

type PaymentHandler struct {
	paymentService *service.PaymentService
	validator      *validator.Validator
}

func NewPaymentHandler(paymentService *service.PaymentService, validator *validator.Validator) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		validator:      validator,
	}
}

// CreateIntent starts a card payment for price dollars
// POST /create-payment-intent
func (h *PaymentHandler) CreateIntent(c *fiber.Ctx) error {
	var req domain.PaymentIntentRequest
	if ok, err := parseBody(c, h.validator, &req); !ok {
		return err
	}

	secret, err := h.paymentService.CreateIntent(c.UserContext(), req.Price)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(domain.PaymentIntentResponse{ClientSecret: secret})
}

// ListByEmail returns a client's payments, newest first
// GET /payment/:email?month=MM
func (h *PaymentHandler) ListByEmail(c *fiber.Ctx) error {
	email, err := emailParam(c, h.validator)
	if err != nil {
		return badRequest(c, err.Error())
	}

	payments, err := h.paymentService.ListByEmail(c.UserContext(), email, c.Query("month"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(payments)
}

// Create records a completed payment
// POST /payment
func (h *PaymentHandler) Create(c *fiber.Ctx) error {
	var req domain.Payment
	if ok, err := parseBody(c, h.validator, &req); !ok {
		return err
	}
	req.ID = bson.ObjectID{}

	result, err := h.paymentService.Create(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(result)
}
