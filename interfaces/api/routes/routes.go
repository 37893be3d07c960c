package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Madhavladani/adeptjs64/interfaces/api/handlers"
	"github.com/Madhavladani/adeptjs64/interfaces/api/middleware"
)

func SetupRoutes(app *fiber.App, h *handlers.Handlers) {
	SetupHealthRoutes(app, h)

	api := app.Group("/api")

	SetupMenuRoutes(api, h)
	SetupComponentRoutes(api, h)
	SetupCategoryRoutes(api, h)
	SetupSubcategoryRoutes(api, h)
	SetupProfileRoutes(api, h)
}

// adminOnly ผูก auth เข้ากับ route เดียว ไม่ใช้ Group("") เพราะจะครอบทุก path ใต้ prefix
func adminOnly(h *handlers.Handlers, handler fiber.Handler) []fiber.Handler {
	return []fiber.Handler{
		middleware.Protected(h.JWTSecret),
		middleware.AdminOnly(),
		handler,
	}
}
