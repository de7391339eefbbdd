package services

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"storefront_back_end/internal/models"
	"storefront_back_end/internal/utils"
)

// newTestDB ouvre une base sqlite en mémoire, isolée par test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email, role string) models.User {
	t.Helper()

	hash, err := utils.HashPassword("password123")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	user := models.User{
		ID:       uuid.NewString(),
		Email:    email,
		Password: hash,
		Name:     "Test User",
		Role:     role,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

func seedProduct(t *testing.T, db *gorm.DB, name string, priceCents int64, stock int) models.Product {
	t.Helper()

	product := models.Product{
		ID:         uuid.NewString(),
		Name:       name,
		PriceCents: priceCents,
		Stock:      stock,
		Sizes:      []string{"S", "M", "L"},
		Tags:       []string{"summer"},
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("failed to seed product: %v", err)
	}
	return product
}

// assertAppError vérifie statut et message d'une AppError.
func assertAppError(t *testing.T, err error, status int, message string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected error %d %q, got nil", status, message)
	}
	appErr, ok := err.(*AppError)
	if !ok {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}
	if appErr.Status != status {
		t.Errorf("expected status %d, got %d", status, appErr.Status)
	}
	if appErr.Message != message {
		t.Errorf("expected message %q, got %q", message, appErr.Message)
	}
}
