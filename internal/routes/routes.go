package routes

import (
	"time"

	"github.com/ChristianDVillar/inventory-backend/internal/config"
	"github.com/ChristianDVillar/inventory-backend/internal/handlers"
	"github.com/ChristianDVillar/inventory-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	stockHandler *handlers.StockHandler,
	formHandler *handlers.FormHandler,
	uuidHandler *handlers.UserUUIDHandler,
	userHandler *handlers.UserHandler,
) {
	// Health (public)
	app.Get("/health", healthHandler.Check)

	// Auth — public, with a stricter rate limit: 10 req/min per IP
	authLimiter := limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	})
	app.Post("/register", authLimiter, authHandler.Register)
	app.Post("/login", authLimiter, authHandler.Login)

	// Everything below requires a valid bearer token.
	protected := app.Group("", middleware.JWTProtected(cfg))

	protected.Get("/stock/available", stockHandler.ListAvailable)
	protected.Get("/stock", stockHandler.Query)
	protected.Post("/stock", stockHandler.Create)
	protected.Put("/stock/:id", stockHandler.Update)

	protected.Post("/form", formHandler.Create)
	protected.Get("/allforms", formHandler.List)

	protected.Get("/user_uuid", uuidHandler.List)
	protected.Get("/user_uuid/:id", uuidHandler.Get)
	protected.Post("/user_uuid", uuidHandler.Create)

	protected.Put("/users/me", userHandler.UpdateProfile)
	protected.Get("/users", middleware.AdminRequired(db, cfg), userHandler.List)
}
