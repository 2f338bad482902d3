// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"iflow_backend/internals/configs"
	authModel "iflow_backend/internals/features/users/auth/model"
)

// Required: bearer token wajib ada & valid. Menyimpan user_id + user_name ke Locals.
func Required(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		// Cek blacklist (token hasil logout)
		var existing authModel.TokenBlacklistModel
		if err := db.Where("token = ? AND deleted_at IS NULL", tokenString).First(&existing).Error; err == nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Token has been revoked")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Println("[ERROR] DB error saat cek blacklist:", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
		}

		claims, err := parseClaims(tokenString)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		storeClaimsToLocals(c, claims)
		return c.Next()
	}
}

// AdminOnly: dipasang SETELAH Required. Menolak request kalau user yang
// login bukan role admin.
func AdminOnly(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, _ := c.Locals("user_id").(string)
		if userID == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - No token provided")
		}

		var roles []string
		if err := db.Table("users").
			Where("id = ? AND is_active = ?", userID, true).
			Pluck("role", &roles).Error; err != nil {
			log.Println("[ERROR] DB error saat cek role:", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
		}
		if len(roles) == 0 || roles[0] != "admin" {
			return fiber.NewError(fiber.StatusForbidden, "Admin access required")
		}
		return c.Next()
	}
}

// Optional: seperti Required tapi tanpa menolak request. Dipakai endpoint
// publik yang hasilnya lebih kaya untuk user login (is_member, my_rsvp, dst).
func Optional() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return c.Next()
		}
		claims, err := parseClaims(tokenString)
		if err != nil {
			return c.Next()
		}
		storeClaimsToLocals(c, claims)
		return c.Next()
	}
}

func parseClaims(tokenString string) (jwt.MapClaims, error) {
	secretKey := configs.JWTSecret
	if secretKey == "" {
		log.Println("[ERROR] JWT_SECRET kosong")
		return nil, errors.New("missing JWT secret")
	}

	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secretKey), nil
	}); err != nil {
		return nil, errors.New("Unauthorized - Token parse error")
	}

	if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
		return nil, errors.New("Unauthorized - Token expired")
	}
	return claims, nil
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	h := c.Get(fiber.HeaderAuthorization)
	if h == "" {
		return "", errors.New("Unauthorized - No token provided")
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", errors.New("Unauthorized - Malformed Authorization header")
	}
	return strings.TrimSpace(parts[1]), nil
}

// validateTokenExpiry memberi sedikit leeway untuk clock skew.
func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	expRaw, ok := claims["exp"]
	if !ok {
		return errors.New("missing exp claim")
	}
	expFloat, ok := expRaw.(float64)
	if !ok {
		return errors.New("invalid exp claim")
	}
	if time.Now().Add(-leeway).After(time.Unix(int64(expFloat), 0)) {
		return errors.New("token expired")
	}
	return nil
}

func storeClaimsToLocals(c *fiber.Ctx, claims jwt.MapClaims) {
	if v, ok := claims["user_id"].(string); ok && v != "" {
		c.Locals("user_id", v)
	}
	if v, ok := claims["username"].(string); ok && v != "" {
		c.Locals("username", v)
	}
}
