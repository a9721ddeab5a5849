package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// PingFunc reports whether a backing store is reachable.
type PingFunc func(ctx context.Context) error

type HealthHandler struct {
	pingStore PingFunc
}

func NewHealthHandler(pingStore PingFunc) *HealthHandler {
	return &HealthHandler{pingStore: pingStore}
}

// Root answers with a fixed banner
// GET /
func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.SendString("Assignment twelve server is running")
}

// Health returns basic health status
// GET /health
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "ok",
		"service": "building-api",
	})
}

// Ready reports whether the document store answers
// GET /ready
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	database := "ok"
	if h.pingStore != nil {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()

		if err := h.pingStore(ctx); err != nil {
			database = "unavailable"
		}
	}

	if database != "ok" {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "not ready",
			"checks": fiber.Map{"database": database},
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "ready",
		"checks": fiber.Map{"database": database},
	})
}
