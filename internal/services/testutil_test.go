package services

import (
	"testing"
	"time"

	"github.com/ChristianDVillar/inventory-backend/internal/config"
	"github.com/ChristianDVillar/inventory-backend/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory SQLite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// case_sensitive_like makes LIKE behave the way Postgres does, so the
	// substring filter semantics match production.
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared&_case_sensitive_like=1"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Stock{},
		&models.Form{},
		&models.DetailForm{},
		&models.UserUUID{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret: "test-secret",
		JWTExpiry: time.Hour,
	}
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func seedUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := models.User{
		FirstName: "Test",
		LastName:  "User",
		Email:     email,
		Password:  "irrelevant",
		IsActive:  true,
		Role:      models.RoleUser,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return &user
}

func seedStock(t *testing.T, db *gorm.DB, description string, quantity int, stockType models.StockType) *models.Stock {
	t.Helper()
	stock := models.Stock{
		Description: description,
		Quantity:    quantity,
		Type:        stockType,
		Image:       "https://example.com/img.png",
	}
	if err := db.Create(&stock).Error; err != nil {
		t.Fatalf("failed to seed stock: %v", err)
	}
	return &stock
}
