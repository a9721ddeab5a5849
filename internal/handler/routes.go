package handler

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
)

// Handlers groups the route handlers wired by SetupRoutes.
type Handlers struct {
	Auth         *AuthHandler
	User         *UserHandler
	Agreement    *AgreementHandler
	Apartment    *ApartmentHandler
	Coupon       *CouponHandler
	Announcement *AnnouncementHandler
	Payment      *PaymentHandler
	Health       *HealthHandler
	Metrics      http.Handler
}

// Guards are the per-route middleware. RateLimit may be nil.
type Guards struct {
	Auth         fiber.Handler
	RequireAdmin fiber.Handler
	RateLimit    fiber.Handler
}

func SetupRoutes(app *fiber.App, h Handlers, g Guards) {
	limited := g.RateLimit
	if limited == nil {
		limited = func(c *fiber.Ctx) error { return c.Next() }
	}

	// Health checks (public)
	app.Get("/", h.Health.Root)
	app.Get("/health", h.Health.Health)
	app.Get("/ready", h.Health.Ready)
	if h.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(h.Metrics))
	}

	// Token issuance and payment intents (rate limited)
	app.Post("/jwt", limited, h.Auth.IssueToken)
	app.Post("/create-payment-intent", limited, h.Payment.CreateIntent)

	// Payments
	app.Get("/payment/:email", h.Payment.ListByEmail)
	app.Post("/payment", h.Payment.Create)

	// Coupons
	app.Get("/coupons", h.Coupon.List)
	app.Post("/coupon", g.Auth, g.RequireAdmin, h.Coupon.Create)
	app.Delete("/coupon/:id", g.Auth, g.RequireAdmin, h.Coupon.Delete)

	// Apartments
	app.Get("/apartment", h.Apartment.List)
	app.Get("/apartment-count", h.Apartment.Count)

	// Agreements
	app.Get("/agreement/:email", h.Agreement.ListByClient)
	app.Get("/agreement", h.Agreement.List)
	app.Post("/agreement", h.Agreement.Create)
	app.Patch("/agreement/:id", g.Auth, g.RequireAdmin, h.Agreement.Update)
	app.Delete("/agreement/:id", g.Auth, g.RequireAdmin, h.Agreement.Delete)

	// Users
	app.Post("/users", h.User.Create)
	app.Get("/user/:email", h.User.Get)
	app.Patch("/user/:email", h.User.Upsert)
	app.Get("/users", g.Auth, g.RequireAdmin, h.User.List)

	// Announcements
	app.Post("/announcement", h.Announcement.Create)
	app.Get("/announcement", h.Announcement.List)
}
