package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Rasel9360/building-management-system-server-site/internal/domain"
	"github.com/Rasel9360/building-management-system-server-site/internal/service"
	"github.com/Rasel9360/building-management-system-server-site/pkg/validator"
)

type AnnouncementHandler struct {
	announcementService *service.AnnouncementService
	validator           *validator.Validator
}

func NewAnnouncementHandler(announcementService *service.AnnouncementService, validator *validator.Validator) *AnnouncementHandler {
	return &AnnouncementHandler{
		announcementService: announcementService,
		validator:           validator,
	}
}

// POST /announcement
func (h *AnnouncementHandler) Create(c *fiber.Ctx) error {
	var req domain.Announcement
	if ok, err := parseBody(c, h.validator, &req); !ok {
		return err
	}
	req.ID = bson.ObjectID{}

	result, err := h.announcementService.Create(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}

// GET /announcement
func (h *AnnouncementHandler) List(c *fiber.Ctx) error {
	announcements, err := h.announcementService.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(announcements)
}
