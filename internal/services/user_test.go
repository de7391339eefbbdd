package services

import (
	"net/http"
	"testing"

	"storefront_back_end/internal/models"
	"storefront_back_end/internal/utils"
)

func TestRegister(t *testing.T) {
	t.Run("creates a customer with hashed password", func(t *testing.T) {
		db := newTestDB(t)

		user, err := Register(db, RegisterInput{
			Email:    "alice@example.com",
			Password: "secret123",
			Name:     "Alice",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if user.Role != models.RoleCustomer {
			t.Errorf("expected role %q, got %q", models.RoleCustomer, user.Role)
		}
		if user.Password == "secret123" {
			t.Error("password stored in clear")
		}
		if !utils.CheckPassword(user.Password, "secret123") {
			t.Error("stored hash does not verify the password")
		}
	})

	t.Run("duplicate email returns 409", func(t *testing.T) {
		db := newTestDB(t)

		input := RegisterInput{Email: "bob@example.com", Password: "secret123", Name: "Bob"}
		if _, err := Register(db, input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, err := Register(db, input)
		assertAppError(t, err, http.StatusConflict, "An account with this email already exists")
	})
}

func TestLogin(t *testing.T) {
	t.Run("valid credentials", func(t *testing.T) {
		db := newTestDB(t)
		seedUser(t, db, "alice@example.com", models.RoleCustomer)

		user, err := Login(db, "alice@example.com", "password123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.Email != "alice@example.com" {
			t.Errorf("unexpected user: %s", user.Email)
		}
	})

	t.Run("wrong password returns 401", func(t *testing.T) {
		db := newTestDB(t)
		seedUser(t, db, "alice@example.com", models.RoleCustomer)

		_, err := Login(db, "alice@example.com", "nope")
		assertAppError(t, err, http.StatusUnauthorized, "Invalid email or password")
	})

	t.Run("unknown email returns the same 401", func(t *testing.T) {
		db := newTestDB(t)

		_, err := Login(db, "ghost@example.com", "password123")
		assertAppError(t, err, http.StatusUnauthorized, "Invalid email or password")
	})
}

func TestGetProfile(t *testing.T) {
	t.Run("unknown user returns 404", func(t *testing.T) {
		db := newTestDB(t)

		_, err := GetProfile(db, "missing")
		assertAppError(t, err, http.StatusNotFound, "User not found")
	})
}
