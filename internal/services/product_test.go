package services

import (
	"net/http"
	"testing"

	"gorm.io/gorm"

	"storefront_back_end/internal/models"
)

func createProduct(t *testing.T, db *gorm.DB, input ProductInput) *models.Product {
	t.Helper()
	product, err := CreateProduct(db, input)
	if err != nil {
		t.Fatalf("create product %s: %v", input.Name, err)
	}
	return product
}

func TestGetAllProducts(t *testing.T) {
	seedCatalog := func(t *testing.T, db *gorm.DB) *models.Category {
		t.Helper()
		shoes, err := CreateCategory(db, "Shoes")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		createProduct(t, db, ProductInput{
			Name: "Canvas Sneakers", PriceCents: 3999, Stock: 10,
			Description: "Light summer sneakers",
			Sizes:       []string{"40", "41", "42"},
			Tags:        []string{"summer", "casual"},
			CategoryID:  &shoes.ID,
		})
		createProduct(t, db, ProductInput{
			Name: "Leather Boots", PriceCents: 12999, Stock: 5,
			Description: "Sturdy winter boots",
			Sizes:       []string{"42", "43"},
			Tags:        []string{"winter"},
			CategoryID:  &shoes.ID,
		})
		createProduct(t, db, ProductInput{
			Name: "Wool Coat", PriceCents: 24999, Stock: 3,
			Description: "Warm coat",
			Sizes:       []string{"M", "L"},
			Tags:        []string{"winter"},
		})
		return shoes
	}

	t.Run("text search matches name and description, case-insensitive", func(t *testing.T) {
		db := newTestDB(t)
		seedCatalog(t, db)

		page, err := GetAllProducts(db, ProductFilter{Query: "SUMMER"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page.Total != 1 || page.Products[0].Name != "Canvas Sneakers" {
			t.Errorf("expected only the sneakers, got %d products", page.Total)
		}
	})

	t.Run("category filter", func(t *testing.T) {
		db := newTestDB(t)
		shoes := seedCatalog(t, db)

		page, err := GetAllProducts(db, ProductFilter{Category: shoes.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page.Total != 2 {
			t.Errorf("expected 2 shoes, got %d", page.Total)
		}
	})

	t.Run("size membership does not match substrings", func(t *testing.T) {
		db := newTestDB(t)
		seedCatalog(t, db)

		// "4" n'est pas une taille, même si "40" et "42" la contiennent
		page, err := GetAllProducts(db, ProductFilter{Size: "4"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page.Total != 0 {
			t.Errorf("expected no match for size 4, got %d", page.Total)
		}

		page, err = GetAllProducts(db, ProductFilter{Size: "42"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page.Total != 2 {
			t.Errorf("expected 2 products in size 42, got %d", page.Total)
		}
	})

	t.Run("price brackets", func(t *testing.T) {
		db := newTestDB(t)
		seedCatalog(t, db)

		for _, tc := range []struct {
			bracket string
			want    string
		}{
			{"low", "Canvas Sneakers"},
			{"mid", "Leather Boots"},
			{"high", "Wool Coat"},
		} {
			page, err := GetAllProducts(db, ProductFilter{Price: tc.bracket})
			if err != nil {
				t.Fatalf("bracket %s: unexpected error: %v", tc.bracket, err)
			}
			if page.Total != 1 || page.Products[0].Name != tc.want {
				t.Errorf("bracket %s: expected only %s, got %d products", tc.bracket, tc.want, page.Total)
			}
		}
	})

	t.Run("price sort", func(t *testing.T) {
		db := newTestDB(t)
		seedCatalog(t, db)

		page, err := GetAllProducts(db, ProductFilter{Sort: "price-asc"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page.Products[0].Name != "Canvas Sneakers" || page.Products[2].Name != "Wool Coat" {
			t.Errorf("unexpected ascending order: %s .. %s", page.Products[0].Name, page.Products[2].Name)
		}

		page, err = GetAllProducts(db, ProductFilter{Sort: "price-desc"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page.Products[0].Name != "Wool Coat" {
			t.Errorf("expected the coat first, got %s", page.Products[0].Name)
		}
	})

	t.Run("pagination metadata", func(t *testing.T) {
		db := newTestDB(t)
		seedCatalog(t, db)

		page, err := GetAllProducts(db, ProductFilter{Page: 2, Limit: 2, Sort: "price-asc"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page.Total != 3 || page.TotalPages != 2 || page.Page != 2 || page.Limit != 2 {
			t.Errorf("unexpected metadata: %+v", page)
		}
		if len(page.Products) != 1 || page.Products[0].Name != "Wool Coat" {
			t.Errorf("expected the last product on page 2, got %d products", len(page.Products))
		}
	})

	t.Run("out of range page comes back empty but keeps the total", func(t *testing.T) {
		db := newTestDB(t)
		seedCatalog(t, db)

		page, err := GetAllProducts(db, ProductFilter{Page: 99})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(page.Products) != 0 {
			t.Errorf("expected empty page, got %d products", len(page.Products))
		}
		if page.Total != 3 {
			t.Errorf("expected total 3, got %d", page.Total)
		}
	})
}

func TestCreateProduct(t *testing.T) {
	t.Run("unknown category is a bad request", func(t *testing.T) {
		db := newTestDB(t)

		missing := "missing"
		_, err := CreateProduct(db, ProductInput{Name: "X", PriceCents: 100, CategoryID: &missing})
		assertAppError(t, err, http.StatusBadRequest, "Category not found")
	})
}

func TestUpdateProduct(t *testing.T) {
	t.Run("only provided fields change", func(t *testing.T) {
		db := newTestDB(t)
		product := seedProduct(t, db, "T-Shirt", 1999, 10)

		newPrice := int64(2499)
		updated, err := UpdateProduct(db, product.ID, ProductUpdateInput{PriceCents: &newPrice})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.PriceCents != 2499 {
			t.Errorf("expected price 2499, got %d", updated.PriceCents)
		}
		if updated.Name != "T-Shirt" || updated.Stock != 10 {
			t.Errorf("untouched fields changed: %+v", updated)
		}
	})

	t.Run("empty category id detaches the product", func(t *testing.T) {
		db := newTestDB(t)
		shoes, err := CreateCategory(db, "Shoes")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		product := createProduct(t, db, ProductInput{
			Name: "Sneakers", PriceCents: 3999, Stock: 5, CategoryID: &shoes.ID,
		})

		empty := ""
		updated, err := UpdateProduct(db, product.ID, ProductUpdateInput{CategoryID: &empty})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.CategoryID != nil {
			t.Errorf("expected detached category, got %v", *updated.CategoryID)
		}
	})

	t.Run("missing product returns 404", func(t *testing.T) {
		db := newTestDB(t)
		name := "X"
		_, err := UpdateProduct(db, "missing", ProductUpdateInput{Name: &name})
		assertAppError(t, err, http.StatusNotFound, "Product not found")
	})
}

func TestDeleteProduct(t *testing.T) {
	t.Run("delete then 404 on re-delete", func(t *testing.T) {
		db := newTestDB(t)
		product := seedProduct(t, db, "T-Shirt", 1999, 10)

		if err := DeleteProduct(db, product.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		err := DeleteProduct(db, product.ID)
		assertAppError(t, err, http.StatusNotFound, "Product not found")
	})
}
