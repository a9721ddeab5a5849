package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Rasel9360/building-management-system-server-site/internal/domain"
	"github.com/Rasel9360/building-management-system-server-site/internal/service"
	"github.com/Rasel9360/building-management-system-server-site/pkg/validator"
)

type CouponHandler struct {
	couponService *service.CouponService
	validator     *validator.Validator
}

func NewCouponHandler(couponService *service.CouponService, validator *validator.Validator) *CouponHandler {
	return &CouponHandler{
		couponService: couponService,
		validator:     validator,
	}
}

// List returns all coupons, newest first
// GET /coupons
func (h *CouponHandler) List(c *fiber.Ctx) error {
	coupons, err := h.couponService.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(coupons)
}

// Create adds a coupon (admin only)
// POST /coupon
func (h *CouponHandler) Create(c *fiber.Ctx) error {
	var req domain.Coupon
	if ok, err := parseBody(c, h.validator, &req); !ok {
		return err
	}
	req.ID = bson.ObjectID{}

	result, err := h.couponService.Create(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}

// Delete removes a coupon (admin only)
// DELETE /coupon/:id
func (h *CouponHandler) Delete(c *fiber.Ctx) error {
	id, err := objectIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	result, err := h.couponService.Delete(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}
