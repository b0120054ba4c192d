package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ZakaryaOukil/Dawalink-sub000/internal/application/dto"
	"github.com/ZakaryaOukil/Dawalink-sub000/pkg/jwt"
)

// Clés Locals posées par le middleware d'authentification.
const (
	LocalUserID   = "user_id"
	LocalKind     = "kind"
	LocalVerified = "verified"
)

// AuthMiddleware valide le Bearer Token JWT et pose user_id, kind et
// verified dans c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "en-tête Authorization requis"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "format attendu: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vide"})
		}
		userID, kind, verified, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token invalide ou expiré"})
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalKind, kind)
		c.Locals(LocalVerified, verified)
		return c.Next()
	}
}

// RequireKind restreint une route aux profils listés. À poser après
// AuthMiddleware. Le drapeau de vérification n'entre jamais en jeu ici.
func RequireKind(kinds ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		kind := GetKind(c)
		for _, k := range kinds {
			if kind == k {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "accès réservé"})
	}
}

// GetUserID renvoie le user_id du contexte (après AuthMiddleware).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetKind renvoie le type de profil du contexte (après AuthMiddleware).
func GetKind(c *fiber.Ctx) string {
	v := c.Locals(LocalKind)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// IsVerified renvoie le drapeau de vérification porté par le jeton.
// Purement indicatif: aucune route ne s'en sert comme barrière.
func IsVerified(c *fiber.Ctx) bool {
	v := c.Locals(LocalVerified)
	if v == nil {
		return false
	}
	b, _ := v.(bool)
	return b
}
