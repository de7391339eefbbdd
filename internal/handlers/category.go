package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"storefront_back_end/internal/cache"
	"storefront_back_end/internal/models"
	"storefront_back_end/internal/services"
	"storefront_back_end/internal/utils"
)

const categoriesCacheKey = "categories:all"

// GET /api/categories
func GetAllCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Cache Redis
		var cached []models.Category
		if cache.GetJSON(categoriesCacheKey, &cached) {
			utils.OK(c, http.StatusOK, cached)
			return
		}

		categories, err := services.GetAllCategories(db)
		if err != nil {
			handleServiceError(c, err)
			return
		}

		cache.SetJSON(categoriesCacheKey, categories, cache.CategoryCacheTTL)
		utils.OK(c, http.StatusOK, categories)
	}
}

// GET /api/categories/:id
func GetCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		category, err := services.GetCategoryByID(db, c.Param("id"))
		if err != nil {
			handleServiceError(c, err)
			return
		}
		utils.OK(c, http.StatusOK, category)
	}
}

// POST /api/categories (admin)
func CreateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Name string `json:"name" binding:"required"`
		}
		if !bindJSON(c, &input) {
			return
		}

		category, err := services.CreateCategory(db, input.Name)
		if err != nil {
			handleServiceError(c, err)
			return
		}

		cache.Invalidate(categoriesCacheKey)
		utils.OK(c, http.StatusCreated, category)
	}
}

// PUT /api/categories/:id (admin)
func UpdateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Name string `json:"name" binding:"required"`
		}
		if !bindJSON(c, &input) {
			return
		}

		category, err := services.UpdateCategory(db, c.Param("id"), input.Name)
		if err != nil {
			handleServiceError(c, err)
			return
		}

		cache.Invalidate(categoriesCacheKey)
		cache.InvalidatePattern("products:*") // les produits embarquent la catégorie
		utils.OK(c, http.StatusOK, category)
	}
}

// DELETE /api/categories/:id (admin)
func DeleteCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := services.DeleteCategory(db, c.Param("id")); err != nil {
			handleServiceError(c, err)
			return
		}

		cache.Invalidate(categoriesCacheKey)
		cache.InvalidatePattern("products:*")
		utils.OK(c, http.StatusOK, gin.H{"message": "Category deleted"})
	}
}
