package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/kardelen/uretim-api/internal/application/dto"
	"github.com/kardelen/uretim-api/pkg/jwt"
)

// Fiber Locals anahtarları.
const (
	LocalUserID = "user_id"
	LocalRole   = "role"
)

// AuthMiddleware Bearer JWT'yi doğrular ve UserID ile Role'ü c.Locals'a yazar.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization başlığı gerekli"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "biçim: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token boş"})
		}
		userID, role, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token geçersiz veya süresi dolmuş"})
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalRole, role)
		return c.Next()
	}
}

// RequireRole isteği yalnızca verilen rollerden birine sahip kullanıcılara
// açar. AuthMiddleware'den sonra takılmalıdır. Rol claim'i yoksa 401, rol
// listede yoksa 403 döner.
func RequireRole(roles ...string) fiber.Handler {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "token rol bilgisi içermiyor"})
		}
		if !allowed[role] {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "bu işlem için yetkiniz yok"})
		}
		return c.Next()
	}
}

// GetUserID auth middleware'inden sonra bağlamdaki UserID'yi döner.
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRole auth middleware'inden sonra bağlamdaki rolü döner.
func GetRole(c *fiber.Ctx) string {
	v := c.Locals(LocalRole)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
