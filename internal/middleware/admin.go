package middleware

import (
	"strings"

	"github.com/ChristianDVillar/inventory-backend/internal/config"
	"github.com/ChristianDVillar/inventory-backend/internal/dto"
	"github.com/ChristianDVillar/inventory-backend/internal/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AdminRequired checks the config-based admin email list first, then the
// user's Role column. Runs after JWTProtected.
func AdminRequired(db *gorm.DB, cfg *config.Config) fiber.Handler {
	adminEmails := parseCSV(cfg.AdminEmails)

	return func(c *fiber.Ctx) error {
		email, err := GetUserEmail(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.MessageResponse{
				Msg: "Unauthorized",
			})
		}

		if contains(adminEmails, email) {
			return c.Next()
		}

		var user models.User
		if err := db.Where("email = ?", email).First(&user).Error; err == nil {
			if user.Role == models.RoleAdmin {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(dto.MessageResponse{
			Msg: "Admin access required",
		})
	}
}

func parseCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func contains(list []string, val string) bool {
	for _, item := range list {
		if item == val {
			return true
		}
	}
	return false
}
