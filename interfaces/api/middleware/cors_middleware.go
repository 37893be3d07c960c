package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CorsMiddleware ถ้าไม่กำหนด origin จะเปิด "*" แบบไม่ส่ง credentials
func CorsMiddleware(allowedOrigins []string) fiber.Handler {
	cfg := cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization,X-Request-ID",
		ExposeHeaders:    "Content-Length,Content-Type,X-Request-ID",
		AllowCredentials: false,
	}
	if len(allowedOrigins) > 0 {
		cfg.AllowOrigins = strings.Join(allowedOrigins, ",")
		cfg.AllowCredentials = cfg.AllowOrigins != "*"
	}
	return cors.New(cfg)
}
