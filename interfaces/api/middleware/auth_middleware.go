package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Madhavladani/adeptjs64/pkg/logger"
	"github.com/Madhavladani/adeptjs64/pkg/utils"
)

// Protected ตรวจ bearer token แล้วเก็บ *utils.UserContext ไว้ใน c.Locals("user")
func Protected(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return utils.UnauthorizedResponse(c, "Missing authorization header")
		}

		token := utils.ExtractTokenFromHeader(authHeader)
		if token == "" {
			return utils.UnauthorizedResponse(c, "Invalid authorization header format")
		}

		userCtx, err := utils.ValidateTokenStringToUUID(token, jwtSecret)
		if err != nil {
			logger.WarnContext(c.UserContext(), "Token validation failed", "error", err)
			switch {
			case errors.Is(err, utils.ErrExpiredToken):
				return utils.UnauthorizedResponse(c, "Token has expired")
			case errors.Is(err, utils.ErrMissingToken):
				return utils.UnauthorizedResponse(c, "Missing token")
			default:
				return utils.UnauthorizedResponse(c, "Invalid token")
			}
		}

		c.Locals("user", userCtx)
		c.SetUserContext(logger.ContextWithUserID(c.UserContext(), userCtx.ID.String()))
		return c.Next()
	}
}

// RequireRole ต้องใช้หลัง Protected
func RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := utils.GetUserFromContext(c)
		if err != nil {
			return utils.UnauthorizedResponse(c, "User not authenticated")
		}
		if user.Role != role {
			logger.WarnContext(c.UserContext(), "Insufficient permissions", "role", user.Role, "required", role)
			return utils.ForbiddenResponse(c, "Insufficient permissions")
		}
		return c.Next()
	}
}

// AdminOnly สำหรับ back-office ของ catalog
func AdminOnly() fiber.Handler {
	return RequireRole(utils.RoleAdmin)
}
