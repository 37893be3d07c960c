package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Madhavladani/adeptjs64/interfaces/api/handlers"
)

func SetupSubcategoryRoutes(api fiber.Router, h *handlers.Handlers) {
	subcategories := api.Group("/subcategories")

	subcategories.Get("/", h.SubcategoryHandler.List) // ?categoryId= optional

	subcategories.Post("/", adminOnly(h, h.SubcategoryHandler.Create)...)
	subcategories.Delete("/:id", adminOnly(h, h.SubcategoryHandler.Delete)...)
}
