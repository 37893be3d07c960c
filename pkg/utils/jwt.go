package utils

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
	ErrMissingToken = errors.New("missing token")
	ErrNoUser       = errors.New("user not found in context")
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// JWTClaims claims ของ token ที่ออกโดย identity provider ภายนอก
type JWTClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

type UserContext struct {
	ID    uuid.UUID
	Email string
	Role  string
}

// ValidateTokenStringToUUID ตรวจ HMAC token แล้วคืน UserContext
func ValidateTokenStringToUUID(tokenString, jwtSecret string) (*UserContext, error) {
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")
	if tokenString == "" {
		return nil, ErrMissingToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(jwtSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	// Supabase-style tokens carry the user id in "sub"
	rawID := claims.UserID
	if rawID == "" {
		rawID = claims.Subject
	}
	userID, err := uuid.Parse(rawID)
	if err != nil {
		return nil, ErrInvalidToken
	}

	role := claims.Role
	if role == "" {
		role = RoleUser
	}

	return &UserContext{ID: userID, Email: claims.Email, Role: role}, nil
}

func ExtractTokenFromHeader(authHeader string) string {
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

func GetUserFromContext(c *fiber.Ctx) (*UserContext, error) {
	userCtx, ok := c.Locals("user").(*UserContext)
	if !ok || userCtx == nil {
		return nil, ErrNoUser
	}
	return userCtx, nil
}
