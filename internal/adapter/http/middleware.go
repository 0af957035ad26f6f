package http

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the access-token payload. Token issuance lives in the auth
// service; this layer only verifies.
type Claims struct {
	UserID    uuid.UUID `json:"user_id"`
	TokenType string    `json:"token_type"`
	jwt.RegisteredClaims
}

const requesterKey = "requester_id"

func parseToken(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	if claims.TokenType != "" && claims.TokenType != "access" {
		return nil, fmt.Errorf("invalid token type %q", claims.TokenType)
	}
	if claims.UserID == uuid.Nil {
		return nil, fmt.Errorf("invalid user id")
	}
	return claims, nil
}

func bearerToken(c *fiber.Ctx) string {
	h := strings.TrimSpace(c.Get("Authorization"))
	token, ok := strings.CutPrefix(h, "Bearer ")
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}

// AuthRequired rejects requests without a valid access token.
func AuthRequired(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authorization required"})
		}
		claims, err := parseToken(token, secret)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
		}
		c.Locals(requesterKey, claims.UserID)
		return c.Next()
	}
}

// AuthOptional attaches the requester when a valid token is present and
// stays anonymous otherwise; public CV reads depend on this.
func AuthOptional(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token := bearerToken(c); token != "" {
			if claims, err := parseToken(token, secret); err == nil {
				c.Locals(requesterKey, claims.UserID)
			}
		}
		return c.Next()
	}
}

// requesterID returns the authenticated user, or uuid.Nil for anonymous.
func requesterID(c *fiber.Ctx) uuid.UUID {
	if v, ok := c.Locals(requesterKey).(uuid.UUID); ok {
		return v
	}
	return uuid.Nil
}
