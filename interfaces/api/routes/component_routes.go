package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Madhavladani/adeptjs64/interfaces/api/handlers"
)

func SetupComponentRoutes(api fiber.Router, h *handlers.Handlers) {
	components := api.Group("/components")

	// Public routes (static paths ก่อน /:id)
	components.Get("/", h.ComponentHandler.List)
	components.Get("/search", h.ComponentHandler.Search)
	components.Get("/category", h.ComponentHandler.ByCategory)
	components.Get("/subcategory", h.ComponentHandler.BySubcategory)
	components.Get("/:id/code", h.ComponentHandler.GetCode)

	// Admin routes
	components.Post("/", adminOnly(h, h.ComponentHandler.Create)...)
	components.Delete("/", adminOnly(h, h.ComponentHandler.DeleteMany)...) // bulk {ids: []}
}
