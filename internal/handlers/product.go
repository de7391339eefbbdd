package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"storefront_back_end/internal/cache"
	"storefront_back_end/internal/services"
	"storefront_back_end/internal/utils"
)

// GET /api/products — filtres combinables + pagination.
func GetAllProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

		filter := services.ProductFilter{
			Query:    c.Query("q"),
			Category: c.Query("category"),
			Size:     c.Query("size"),
			Tag:      c.Query("tag"),
			Price:    c.Query("price"),
			Sort:     c.DefaultQuery("sort", "new"),
			Page:     page,
			Limit:    limit,
		}

		// La clé de cache encode l'intégralité de la query string
		cacheKey := "products:" + c.Request.URL.RawQuery
		var cached services.ProductPage
		if cache.GetJSON(cacheKey, &cached) {
			utils.OK(c, http.StatusOK, cached)
			return
		}

		result, err := services.GetAllProducts(db, filter)
		if err != nil {
			handleServiceError(c, err)
			return
		}

		cache.SetJSON(cacheKey, result, cache.ProductCacheTTL)
		utils.OK(c, http.StatusOK, result)
	}
}

// GET /api/products/:id
func GetProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := services.GetProductByID(db, c.Param("id"))
		if err != nil {
			handleServiceError(c, err)
			return
		}
		utils.OK(c, http.StatusOK, product)
	}
}

// POST /api/products (admin)
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Name        string   `json:"name" binding:"required"`
			PriceCents  int64    `json:"price_cents" binding:"required,gt=0"`
			Stock       int      `json:"stock" binding:"gte=0"`
			Description string   `json:"description"`
			ImageURL    string   `json:"image_url"`
			Images      []string `json:"images"`
			Colors      []string `json:"colors"`
			Sizes       []string `json:"sizes"`
			Tags        []string `json:"tags"`
			CategoryID  *string  `json:"category_id"`
		}
		if !bindJSON(c, &input) {
			return
		}

		product, err := services.CreateProduct(db, services.ProductInput{
			Name:        input.Name,
			PriceCents:  input.PriceCents,
			Stock:       input.Stock,
			Description: input.Description,
			ImageURL:    input.ImageURL,
			Images:      input.Images,
			Colors:      input.Colors,
			Sizes:       input.Sizes,
			Tags:        input.Tags,
			CategoryID:  input.CategoryID,
		})
		if err != nil {
			handleServiceError(c, err)
			return
		}

		cache.InvalidatePattern("products:*")
		utils.OK(c, http.StatusCreated, product)
	}
}

// PUT /api/products/:id (admin) — mise à jour partielle : seuls les
// champs présents sont appliqués, avec les mêmes contraintes par champ.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Name        *string   `json:"name"`
			PriceCents  *int64    `json:"price_cents" binding:"omitempty,gt=0"`
			Stock       *int      `json:"stock" binding:"omitempty,gte=0"`
			Description *string   `json:"description"`
			ImageURL    *string   `json:"image_url"`
			Images      *[]string `json:"images"`
			Colors      *[]string `json:"colors"`
			Sizes       *[]string `json:"sizes"`
			Tags        *[]string `json:"tags"`
			CategoryID  *string   `json:"category_id"`
		}
		if !bindJSON(c, &input) {
			return
		}

		product, err := services.UpdateProduct(db, c.Param("id"), services.ProductUpdateInput{
			Name:        input.Name,
			PriceCents:  input.PriceCents,
			Stock:       input.Stock,
			Description: input.Description,
			ImageURL:    input.ImageURL,
			Images:      input.Images,
			Colors:      input.Colors,
			Sizes:       input.Sizes,
			Tags:        input.Tags,
			CategoryID:  input.CategoryID,
		})
		if err != nil {
			handleServiceError(c, err)
			return
		}

		cache.InvalidatePattern("products:*")
		utils.OK(c, http.StatusOK, product)
	}
}

// DELETE /api/products/:id (admin)
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := services.DeleteProduct(db, c.Param("id")); err != nil {
			handleServiceError(c, err)
			return
		}

		cache.InvalidatePattern("products:*")
		utils.OK(c, http.StatusOK, gin.H{"message": "Product deleted"})
	}
}
