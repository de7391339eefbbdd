package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"storefront_back_end/internal/models"
)

type AddItemInput struct {
	ProductID string
	Quantity  int
	Size      string
	Color     string
}

// GetCartByUser retourne le panier de l'utilisateur avec lignes,
// produits et catégories. Le panier est créé paresseusement au premier
// accès : l'opération ne renvoie jamais "not found" pour un utilisateur
// valide.
func GetCartByUser(db *gorm.DB, userID string) (*models.Cart, error) {
	var cart models.Cart
	err := db.Preload("Items.Product.Category").Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ensureCart(db, userID)
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// ensureCart crée le panier s'il n'existe pas encore.
func ensureCart(db *gorm.DB, userID string) (*models.Cart, error) {
	var cart models.Cart
	err := db.Where(models.Cart{UserID: userID}).
		Attrs(models.Cart{ID: uuid.NewString()}).
		FirstOrCreate(&cart).Error
	if err != nil {
		return nil, err
	}
	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}
	return &cart, nil
}

// AddItem ajoute une ligne au panier. Grâce à l'index unique
// (cart_id, product_id, size, color) et à l'upsert ON CONFLICT,
// deux ajouts identiques — même simultanés — fusionnent en une seule
// ligne avec les quantités additionnées.
func AddItem(db *gorm.DB, userID string, input AddItemInput) (*models.Cart, error) {
	// Le produit doit exister
	var product models.Product
	if err := db.First(&product, "id = ?", input.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound("Product not found")
		}
		return nil, err
	}

	cart, err := ensureCart(db, userID)
	if err != nil {
		return nil, err
	}

	item := models.CartItem{
		ID:        uuid.NewString(),
		CartID:    cart.ID,
		ProductID: input.ProductID,
		Quantity:  input.Quantity,
		Size:      input.Size,
		Color:     input.Color,
	}

	// Upsert atomique : incrémente la quantité si la ligne existe déjà
	err = db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "cart_id"}, {Name: "product_id"}, {Name: "size"}, {Name: "color"},
		},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity": gorm.Expr("quantity + ?", input.Quantity),
		}),
	}).Create(&item).Error
	if err != nil {
		return nil, err
	}

	return GetCartByUser(db, userID)
}

// UpdateItemQuantity écrase la quantité d'une ligne. La ligne doit
// appartenir au panier de l'appelant.
func UpdateItemQuantity(db *gorm.DB, userID, itemID string, quantity int) (*models.Cart, error) {
	cart, err := ensureCart(db, userID)
	if err != nil {
		return nil, err
	}

	res := db.Model(&models.CartItem{}).
		Where("id = ? AND cart_id = ?", itemID, cart.ID).
		Update("quantity", quantity)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound("Cart item not found")
	}

	return GetCartByUser(db, userID)
}

// RemoveItem supprime une ligne du panier de l'appelant.
func RemoveItem(db *gorm.DB, userID, itemID string) (*models.Cart, error) {
	cart, err := ensureCart(db, userID)
	if err != nil {
		return nil, err
	}

	res := db.Where("id = ? AND cart_id = ?", itemID, cart.ID).Delete(&models.CartItem{})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound("Cart item not found")
	}

	return GetCartByUser(db, userID)
}

// ClearCart vide le panier. Idempotent si le panier n'existe pas.
func ClearCart(db *gorm.DB, userID string) error {
	var cart models.Cart
	err := db.Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	return db.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error
}

// GetItemCount retourne la somme des quantités du panier, 0 si vide ou absent.
func GetItemCount(db *gorm.DB, userID string) (int64, error) {
	var cart models.Cart
	err := db.Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	var result struct{ Total int64 }
	err = db.Model(&models.CartItem{}).
		Select("COALESCE(SUM(quantity), 0) AS total").
		Where("cart_id = ?", cart.ID).
		Scan(&result).Error
	if err != nil {
		return 0, err
	}
	return result.Total, nil
}
