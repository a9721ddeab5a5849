package handler

import (
	"errors"
	"log/slog"
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Rasel9360/building-management-system-server-site/internal/domain"
	"github.com/Rasel9360/building-management-system-server-site/internal/service"
	"github.com/Rasel9360/building-management-system-server-site/pkg/validator"
)

// ErrorHandler is the Fiber app error handler. It renders errors returned
// from handlers in the same shape as respondError.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(fiber.Map{
			"error":   true,
			"message": fe.Message,
		})
	}
	return respondError(c, err)
}

// respondError maps domain and service errors to a status code and a short
// message. Unclassified errors are logged and reported as 500.
func respondError(c *fiber.Ctx, err error) error {
	status, message := classify(err)
	if status >= fiber.StatusInternalServerError {
		slog.Error("request failed",
			"method", c.Method(),
			"path", c.Path(),
			"error", err,
		)
	}
	return c.Status(status).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}

func classify(err error) (int, string) {
	var (
		paymentErr *domain.PaymentError
		storeErr   *domain.StoreError
	)

	switch {
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrInvalidToken):
		return fiber.StatusUnauthorized, domain.ErrUnauthorized.Error()
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, domain.ErrForbidden.Error()
	case errors.Is(err, domain.ErrDuplicateBooking):
		return fiber.StatusBadRequest, domain.ErrDuplicateBooking.Error()
	case errors.Is(err, domain.ErrBookingInProgress):
		return fiber.StatusConflict, domain.ErrBookingInProgress.Error()
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, "Not found"
	case errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrEmptyUpdate),
		errors.Is(err, service.ErrInvalidMonth),
		errors.Is(err, service.ErrInvalidPrice):
		return fiber.StatusBadRequest, err.Error()
	case errors.As(err, &paymentErr):
		return fiber.StatusBadGateway, "Payment processor error"
	case errors.As(err, &storeErr):
		return fiber.StatusInternalServerError, "Internal server error"
	default:
		return fiber.StatusInternalServerError, "Internal server error"
	}
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}

// parseBody decodes and validates the JSON body into req. It writes the 400
// response itself and reports false when the body is unusable.
func parseBody(c *fiber.Ctx, v *validator.Validator, req interface{}) (bool, error) {
	if err := c.BodyParser(req); err != nil {
		return false, badRequest(c, "Invalid request body")
	}
	if err := v.Validate(req); err != nil {
		return false, badRequest(c, err.Error())
	}
	return true, nil
}

func objectIDParam(c *fiber.Ctx, name string) (bson.ObjectID, error) {
	id, err := bson.ObjectIDFromHex(c.Params(name))
	if err != nil {
		return bson.ObjectID{}, domain.ErrInvalidID
	}
	return id, nil
}

// emailParam returns the unescaped email path parameter, validated.
func emailParam(c *fiber.Ctx, v *validator.Validator) (string, error) {
	email, err := url.PathUnescape(c.Params("email"))
	if err != nil {
		return "", errors.New("email must be a valid email address")
	}
	if err := v.Var("email", email, "required,email"); err != nil {
		return "", err
	}
	return email, nil
}

// int64Query parses an optional integer query parameter. Missing means 0.
func int64Query(c *fiber.Ctx, name string) (int64, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.New(name + " must be a number")
	}
	return n, nil
}
