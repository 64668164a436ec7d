package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lyonikaaisyah/Revisi-Aplikasi-Survey/internal/api/http/handlers"
	"github.com/lyonikaaisyah/Revisi-Aplikasi-Survey/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	Surveys        *handlers.SurveysHandler
	Reports        *handlers.ReportsHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes. Survey submission, search and the
// sample form stay open so guests can respond; everything that mutates or
// aggregates existing records is gated behind the administrator role.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/login", cfg.Users.Login)
	authGroup.Post("/register", cfg.Users.Register)

	surveys := app.Group("/surveys", cfg.AuthMiddleware.Optional)
	surveys.Post("/", cfg.Surveys.Create)
	surveys.Get("/", cfg.Surveys.List)
	surveys.Get("/sample", cfg.Surveys.Sample)

	admin := app.Group("", cfg.AuthMiddleware.Require, auth.RequireAdmin())
	admin.Put("/surveys/:id", cfg.Surveys.Update)
	admin.Delete("/surveys/:id", cfg.Surveys.Delete)
	admin.Post("/surveys/undo", cfg.Surveys.Undo)
	admin.Get("/stats", cfg.Reports.Stats)
	admin.Get("/reports/export", cfg.Reports.Export)
	admin.Get("/users", cfg.Users.List)
}
