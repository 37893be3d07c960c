package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Madhavladani/adeptjs64/interfaces/api/handlers"
	"github.com/Madhavladani/adeptjs64/interfaces/api/middleware"
)

func SetupProfileRoutes(api fiber.Router, h *handlers.Handlers) {
	profile := api.Group("/profile", middleware.Protected(h.JWTSecret))
	profile.Get("/", h.ProfileHandler.Get)
	profile.Put("/", h.ProfileHandler.Update)
}
