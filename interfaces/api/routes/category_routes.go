package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Madhavladani/adeptjs64/interfaces/api/handlers"
)

func SetupCategoryRoutes(api fiber.Router, h *handlers.Handlers) {
	categories := api.Group("/categories")

	// Public routes
	categories.Get("/", h.CategoryHandler.List) // เรียงตามเวลาสร้าง
	categories.Get("/:id", h.CategoryHandler.GetByID)

	// Admin routes
	categories.Post("/", adminOnly(h, h.CategoryHandler.Create)...)      // JSON หรือ multipart + svg
	categories.Delete("/:id", adminOnly(h, h.CategoryHandler.Delete)...) // ลบ subcategories และ menu entries ด้วย
}
