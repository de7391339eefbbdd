package services

import (
	"net/http"
	"testing"
)

func TestCategories(t *testing.T) {
	t.Run("list is sorted by name", func(t *testing.T) {
		db := newTestDB(t)
		for _, name := range []string{"Shoes", "Accessories", "Jackets"} {
			if _, err := CreateCategory(db, name); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}

		categories, err := GetAllCategories(db)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []string{"Accessories", "Jackets", "Shoes"}
		if len(categories) != len(want) {
			t.Fatalf("expected %d categories, got %d", len(want), len(categories))
		}
		for i, name := range want {
			if categories[i].Name != name {
				t.Errorf("position %d: expected %s, got %s", i, name, categories[i].Name)
			}
		}
	})

	t.Run("duplicate name is a conflict", func(t *testing.T) {
		db := newTestDB(t)
		if _, err := CreateCategory(db, "Shoes"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, err := CreateCategory(db, "Shoes")
		assertAppError(t, err, http.StatusConflict, "Category with this name already exists")
	})

	t.Run("update rejects a name taken by another category", func(t *testing.T) {
		db := newTestDB(t)
		if _, err := CreateCategory(db, "Shoes"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		jackets, err := CreateCategory(db, "Jackets")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, err = UpdateCategory(db, jackets.ID, "Shoes")
		assertAppError(t, err, http.StatusConflict, "Category with this name already exists")

		// Renommer vers son propre nom reste permis
		if _, err := UpdateCategory(db, jackets.ID, "Jackets"); err != nil {
			t.Errorf("renaming to own name should pass: %v", err)
		}
	})

	t.Run("delete of a missing category returns 404", func(t *testing.T) {
		db := newTestDB(t)
		err := DeleteCategory(db, "missing")
		assertAppError(t, err, http.StatusNotFound, "Category not found")
	})

	t.Run("get by id returns 404 when absent", func(t *testing.T) {
		db := newTestDB(t)
		_, err := GetCategoryByID(db, "missing")
		assertAppError(t, err, http.StatusNotFound, "Category not found")
	})
}
