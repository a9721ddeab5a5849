package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Rasel9360/building-management-system-server-site/internal/domain"
	"github.com/Rasel9360/building-management-system-server-site/internal/service"
)

type ApartmentHandler struct {
	apartmentService *service.ApartmentService
}

func NewApartmentHandler(apartmentService *service.ApartmentService) *ApartmentHandler {
	return &ApartmentHandler{apartmentService: apartmentService}
}

// List pages through apartments. A missing size or a page below 1 gives an
// empty list.
// GET /apartment?size=&page=
func (h *ApartmentHandler) List(c *fiber.Ctx) error {
	size, err := int64Query(c, "size")
	if err != nil {
		return badRequest(c, err.Error())
	}
	page, err := int64Query(c, "page")
	if err != nil {
		return badRequest(c, err.Error())
	}

	apartments, err := h.apartmentService.List(c.UserContext(), size, page)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(apartments)
}

// Count returns the number of apartments
// GET /apartment-count
func (h *ApartmentHandler) Count(c *fiber.Ctx) error {
	count, err := h.apartmentService.Count(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(domain.CountResponse{Count: count})
}
