package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/cvstudio/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(
	app *fiber.App,
	auth *handlers.AuthHandler,
	health *handlers.HealthHandler,
	meta *handlers.MetaHandler,
	profiles *handlers.ProfilesHandler,
	documents *handlers.DocumentsHandler,
	authMW fiber.Handler,
) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	a := v1.Group("/auth")
	a.Post("/register", auth.Register)
	a.Post("/login", auth.Login)

	// Public catalogs
	v1.Get("/fields", meta.Fields)
	v1.Get("/templates", meta.Templates)

	// Profile records (protected)
	p := v1.Group("/profiles", authMW)
	p.Post("/", profiles.Create)
	p.Get("/", profiles.List)
	p.Get("/:id", profiles.Get)
	p.Put("/:id", profiles.Update)
	p.Delete("/:id", profiles.Delete)
	p.Post("/:id/reset", profiles.Reset)
	p.Post("/:id/improve", profiles.Improve)
	p.Get("/:id/flags", profiles.Flags)

	p.Post("/:id/documents", documents.Upload)
	p.Get("/:id/documents", documents.List)
	p.Get("/:id/documents/:docId/file", documents.Download)
	p.Delete("/:id/documents/:docId", documents.Delete)
}
