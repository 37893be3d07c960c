package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Madhavladani/adeptjs64/interfaces/api/handlers"
	"github.com/Madhavladani/adeptjs64/interfaces/api/middleware"
)

func SetupMenuRoutes(api fiber.Router, h *handlers.Handlers) {
	api.Get("/menu", h.MenuHandler.Get)

	admin := api.Group("/admin/menu", middleware.Protected(h.JWTSecret), middleware.AdminOnly())
	admin.Get("/", h.MenuHandler.Get)
	admin.Put("/", h.MenuHandler.Reorder)
	admin.Post("/reconcile", h.MenuHandler.Reconcile)
	admin.Delete("/:id", h.MenuHandler.RemoveItem)
}
