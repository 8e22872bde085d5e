package auth

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"storeadmin_backend/internals/configs"
	authModel "storeadmin_backend/internals/features/users/auth/model"
)

// AuthMiddleware guards admin routes: bearer token, blacklist check, JWT
// signature + expiry, admin_id claim into locals.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		var existing authModel.TokenBlacklist
		if err := db.Where("token = ?", tokenString).First(&existing).Error; err == nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token is revoked")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[ERROR] blacklist lookup: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
		}

		if configs.JWTSecret == "" {
			log.Println("[ERROR] JWT_SECRET is empty")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		if _, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
			}
			return []byte(configs.JWTSecret), nil
		}); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or expired token")
		}

		adminID, _ := claims["admin_id"].(string)
		if adminID == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Missing admin ID")
		}

		c.Locals("admin_id", adminID)
		c.Locals("token_string", tokenString)
		if exp, ok := claims["exp"].(float64); ok {
			c.Locals("token_expires_at", time.Unix(int64(exp), 0))
		}
		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	header := strings.TrimSpace(c.Get("Authorization"))
	if header == "" {
		if cookie := c.Cookies("access_token"); cookie != "" {
			return cookie, nil
		}
		return "", errors.New("Unauthorized - No token provided")
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", errors.New("Unauthorized - Malformed Authorization header")
	}
	return strings.TrimSpace(parts[1]), nil
}
