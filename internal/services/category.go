package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"storefront_back_end/internal/models"
)

func GetAllCategories(db *gorm.DB) ([]models.Category, error) {
	var categories []models.Category
	err := db.Order("name ASC").Find(&categories).Error
	return categories, err
}

func GetCategoryByID(db *gorm.DB, id string) (*models.Category, error) {
	var category models.Category
	err := db.First(&category, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound("Category not found")
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// CreateCategory vérifie l'unicité du nom avant insertion et convertit
// le doublon en 409 plutôt qu'en erreur générique.
func CreateCategory(db *gorm.DB, name string) (*models.Category, error) {
	var existing models.Category
	err := db.Where("name = ?", name).First(&existing).Error
	if err == nil {
		return nil, ErrConflict("Category with this name already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	category := models.Category{ID: uuid.NewString(), Name: name}
	if err := db.Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func UpdateCategory(db *gorm.DB, id, name string) (*models.Category, error) {
	category, err := GetCategoryByID(db, id)
	if err != nil {
		return nil, err
	}

	// Même garde d'unicité qu'à la création
	var existing models.Category
	err = db.Where("name = ? AND id <> ?", name, id).First(&existing).Error
	if err == nil {
		return nil, ErrConflict("Category with this name already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := db.Model(category).Update("name", name).Error; err != nil {
		return nil, err
	}
	category.Name = name
	return category, nil
}

func DeleteCategory(db *gorm.DB, id string) error {
	res := db.Delete(&models.Category{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound("Category not found")
	}
	return nil
}
