package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Madhavladani/adeptjs64/interfaces/api/handlers"
)

func SetupHealthRoutes(app *fiber.App, h *handlers.Handlers) {
	app.Get("/health", h.HealthHandler.Check)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Component Marketplace API",
			"version": "1.0.0",
			"docs":    "/api",
			"health":  "/health",
		})
	})
}
