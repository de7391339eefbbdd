package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"storefront_back_end/internal/models"
)

// CreateFromCart matérialise une commande immuable à partir du panier,
// dans une seule transaction : vérification et déduction du stock,
// snapshot des prix unitaires, puis vidage du panier. Le prix figé sur
// chaque OrderItem ne bougera plus, même si le produit change de prix.
func CreateFromCart(db *gorm.DB, userID string) (*models.Order, error) {
	var created models.Order

	err := db.Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		err := tx.Preload("Items").Where("user_id = ?", userID).First(&cart).Error
		if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && len(cart.Items) == 0) {
			return ErrBadRequest("Cart is empty")
		}
		if err != nil {
			return err
		}

		order := models.Order{
			ID:     uuid.NewString(),
			UserID: userID,
			Status: models.OrderStatusPending,
		}

		for _, line := range cart.Items {
			var product models.Product
			if err := tx.First(&product, "id = ?", line.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrNotFound("Product not found")
				}
				return err
			}

			if product.Stock < line.Quantity {
				return ErrBadRequest("Insufficient stock for product: " + product.Name)
			}

			// Déduction du stock
			if err := tx.Model(&product).Update("stock", product.Stock-line.Quantity).Error; err != nil {
				return err
			}

			order.Items = append(order.Items, models.OrderItem{
				ID:         uuid.NewString(),
				ProductID:  line.ProductID,
				Quantity:   line.Quantity,
				PriceCents: product.PriceCents, // prix figé à la création
			})
			order.TotalCents += product.PriceCents * int64(line.Quantity)
		}

		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		// Vider le panier
		if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}

		created = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	return GetOrderByID(db, created.ID)
}

// GetAllOrders — vue admin, acheteur inclus, plus récentes d'abord.
func GetAllOrders(db *gorm.DB) ([]models.Order, error) {
	var orders []models.Order
	err := db.Preload("Items.Product").Preload("User").
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

// GetOrdersByUser — commandes d'un utilisateur, plus récentes d'abord.
func GetOrdersByUser(db *gorm.DB, userID string) ([]models.Order, error) {
	var orders []models.Order
	err := db.Preload("Items.Product").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func GetOrderByID(db *gorm.DB, id string) (*models.Order, error) {
	var order models.Order
	err := db.Preload("Items.Product").Preload("User").First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound("Order not found")
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateOrderStatus applique la machine à états du cycle de vie :
// PENDING → PAID → SHIPPED → DELIVERED, annulation possible depuis
// PENDING et PAID uniquement.
func UpdateOrderStatus(db *gorm.DB, id string, status models.OrderStatus) (*models.Order, error) {
	if !status.Valid() {
		return nil, ErrBadRequest("Invalid order status")
	}

	order, err := GetOrderByID(db, id)
	if err != nil {
		return nil, err
	}

	if !order.Status.CanTransitionTo(status) {
		return nil, ErrBadRequest(fmt.Sprintf(
			"Status transition from %s to %s is not allowed", order.Status, status))
	}

	if err := db.Model(order).Update("status", status).Error; err != nil {
		return nil, err
	}
	order.Status = status
	return order, nil
}

// DeleteOrder supprime d'abord les lignes enfants puis la commande
// (cascade explicite).
func DeleteOrder(db *gorm.DB, id string) error {
	var order models.Order
	err := db.First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound("Order not found")
	}
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&order).Error
	})
}

type OrderStats struct {
	Total    int64            `json:"total"`
	ByStatus map[string]int64 `json:"by_status"`
}

// GetOrderStats agrège le nombre de commandes par statut.
func GetOrderStats(db *gorm.DB) (*OrderStats, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	err := db.Model(&models.Order{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	stats := &OrderStats{ByStatus: make(map[string]int64)}
	for _, row := range rows {
		stats.ByStatus[row.Status] = row.Count
		stats.Total += row.Count
	}
	return stats, nil
}
