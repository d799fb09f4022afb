package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/lunalog/lunalog-backend/internal/config"
	"github.com/lunalog/lunalog-backend/internal/handlers"
	"github.com/lunalog/lunalog-backend/internal/middleware"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	entryHandler *handlers.EntryHandler,
	insightsHandler *handlers.InsightsHandler,
	healthHandler *handlers.HealthHandler,
	webhookHandler *handlers.WebhookHandler,
	adminHandler *handlers.AdminHandler,
	configHandler *handlers.RemoteConfigHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	// Health
	api.Get("/health", healthHandler.Check)

	// Remote Config (public)
	api.Get("/config", configHandler.GetConfig)

	// Auth — public, with a stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)
	auth.Post("/guest", authHandler.Guest)

	// Protected auth routes (JWT required) - apply middleware per route
	// so the public auth routes above stay public
	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)
	api.Delete("/auth/account", middleware.JWTProtected(cfg), authHandler.DeleteAccount)

	// Mood entries (protected; guest or registered owner)
	entries := api.Group("/entries", middleware.JWTProtected(cfg))
	entries.Post("/", entryHandler.Create)
	entries.Get("/", entryHandler.List)
	entries.Get("/export", entryHandler.Export)
	entries.Get("/:id", entryHandler.Get)
	entries.Put("/:id", entryHandler.Update)
	entries.Delete("/:id", entryHandler.Delete)

	// Insights (protected)
	insights := api.Group("/insights", middleware.JWTProtected(cfg))
	insights.Get("/trends", insightsHandler.Trends)
	insights.Get("/streak", insightsHandler.Streak)
	insights.Get("/lunar", insightsHandler.Lunar)
	insights.Get("/activities", insightsHandler.Activities)
	insights.Get("/emotions", insightsHandler.Emotions)
	insights.Get("/sentiment", insightsHandler.Sentiment)

	// Admin panel (protected + admin required)
	admin := api.Group("/admin", middleware.JWTProtected(cfg), middleware.AdminRequired(db, cfg))
	admin.Get("/revenue", adminHandler.Revenue)
	admin.Put("/config/:key", configHandler.SetConfigKey)
	admin.Delete("/config/:key", configHandler.DeleteConfigKey)

	// Webhooks — shared-secret auth, no JWT
	webhooks := api.Group("/webhooks")
	webhooks.Post("/billing", webhookHandler.HandleBilling)
}
