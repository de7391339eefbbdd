package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"storefront_back_end/internal/models"
)

// Tranches de prix en centimes : low < 50€, mid 50–200€, high > 200€.
const (
	priceLowMaxCents  = 5000
	priceHighMinCents = 20000
)

type ProductFilter struct {
	Query    string // recherche plein-texte sur nom et description
	Category string
	Size     string
	Tag      string
	Price    string // "low" | "mid" | "high"
	Sort     string // "new" | "price-asc" | "price-desc"
	Page     int
	Limit    int
}

type ProductPage struct {
	Products   []models.Product `json:"products"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"total_pages"`
}

type ProductInput struct {
	Name        string
	PriceCents  int64
	Stock       int
	Description string
	ImageURL    string
	Images      []string
	Colors      []string
	Sizes       []string
	Tags        []string
	CategoryID  *string
}

// Variante partielle pour les mises à jour : seuls les champs non-nil
// sont appliqués.
type ProductUpdateInput struct {
	Name        *string
	PriceCents  *int64
	Stock       *int
	Description *string
	ImageURL    *string
	Images      *[]string
	Colors      *[]string
	Sizes       *[]string
	Tags        *[]string
	CategoryID  *string
}

// GetAllProducts compose les filtres en une seule requête ORM
// (recherche, catégorie, appartenance taille/tag, tranche de prix,
// tri, pagination) et retourne la page avec ses métadonnées.
func GetAllProducts(db *gorm.DB, filter ProductFilter) (*ProductPage, error) {
	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	q := db.Model(&models.Product{})

	if filter.Query != "" {
		like := "%" + strings.ToLower(filter.Query) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}
	if filter.Category != "" {
		q = q.Where("category_id = ?", filter.Category)
	}
	// Les colonnes []string sont sérialisées en JSON : l'appartenance se
	// teste sur la forme `"valeur"` dans le document.
	if filter.Size != "" {
		q = q.Where("sizes LIKE ?", `%"`+filter.Size+`"%`)
	}
	if filter.Tag != "" {
		q = q.Where("tags LIKE ?", `%"`+filter.Tag+`"%`)
	}

	switch filter.Price {
	case "low":
		q = q.Where("price_cents < ?", priceLowMaxCents)
	case "mid":
		q = q.Where("price_cents >= ? AND price_cents <= ?", priceLowMaxCents, priceHighMinCents)
	case "high":
		q = q.Where("price_cents > ?", priceHighMinCents)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, err
	}

	switch filter.Sort {
	case "price-asc":
		q = q.Order("price_cents ASC")
	case "price-desc":
		q = q.Order("price_cents DESC")
	default: // "new"
		q = q.Order("created_at DESC")
	}

	var products []models.Product
	err := q.Preload("Category").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []models.Product{}
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &ProductPage{
		Products:   products,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

func GetProductByID(db *gorm.DB, id string) (*models.Product, error) {
	var product models.Product
	err := db.Preload("Category").First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound("Product not found")
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func CreateProduct(db *gorm.DB, input ProductInput) (*models.Product, error) {
	if input.CategoryID != nil && *input.CategoryID != "" {
		if _, err := GetCategoryByID(db, *input.CategoryID); err != nil {
			var appErr *AppError
			if errors.As(err, &appErr) {
				return nil, ErrBadRequest("Category not found")
			}
			return nil, err
		}
	}

	product := models.Product{
		ID:          uuid.NewString(),
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
	}
	if err := db.Create(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func UpdateProduct(db *gorm.DB, id string, input ProductUpdateInput) (*models.Product, error) {
	product, err := GetProductByID(db, id)
	if err != nil {
		return nil, err
	}

	if input.CategoryID != nil && *input.CategoryID != "" {
		if _, err := GetCategoryByID(db, *input.CategoryID); err != nil {
			var appErr *AppError
			if errors.As(err, &appErr) {
				return nil, ErrBadRequest("Category not found")
			}
			return nil, err
		}
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.PriceCents != nil {
		product.PriceCents = *input.PriceCents
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.ImageURL != nil {
		product.ImageURL = *input.ImageURL
	}
	if input.Images != nil {
		product.Images = *input.Images
	}
	if input.Colors != nil {
		product.Colors = *input.Colors
	}
	if input.Sizes != nil {
		product.Sizes = *input.Sizes
	}
	if input.Tags != nil {
		product.Tags = *input.Tags
	}
	if input.CategoryID != nil {
		if *input.CategoryID == "" {
			product.CategoryID = nil
		} else {
			product.CategoryID = input.CategoryID
		}
	}

	// Pas de ré-écriture d'association au Save
	product.Category = nil

	if err := db.Save(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

func DeleteProduct(db *gorm.DB, id string) error {
	res := db.Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound("Product not found")
	}
	return nil
}
