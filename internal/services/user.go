package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"storefront_back_end/internal/models"
	"storefront_back_end/internal/utils"
)

type RegisterInput struct {
	Email    string
	Password string
	Name     string
}

// Register crée un compte customer. L'email doit être libre.
func Register(db *gorm.DB, input RegisterInput) (*models.User, error) {
	// email déjà pris ?
	var existing models.User
	err := db.Where("email = ?", input.Email).First(&existing).Error
	if err == nil {
		return nil, ErrConflict("An account with this email already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		ID:       uuid.NewString(),
		Email:    input.Email,
		Password: hashed,
		Name:     input.Name,
		Role:     models.RoleCustomer,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

// Login vérifie les identifiants. Email inconnu et mauvais mot de passe
// renvoient la même erreur 401.
func Login(db *gorm.DB, email, password string) (*models.User, error) {
	var user models.User
	err := db.Where("email = ?", email).First(&user).Error
	if err != nil || !utils.CheckPassword(user.Password, password) {
		return nil, ErrUnauthorized("Invalid email or password")
	}
	return &user, nil
}

// GetProfile retourne le profil de l'utilisateur connecté.
func GetProfile(db *gorm.DB, userID string) (*models.User, error) {
	var user models.User
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound("User not found")
		}
		return nil, err
	}
	return &user, nil
}
