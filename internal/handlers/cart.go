package handlers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"storefront_back_end/internal/services"
	"storefront_back_end/internal/utils"
)

// GET /api/cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := services.GetCartByUser(db, c.GetString("user_id"))
		if err != nil {
			handleServiceError(c, err)
			return
		}
		utils.OK(c, http.StatusOK, cart)
	}
}

// POST /api/cart
func AddCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			ProductID string `json:"product_id" binding:"required"`
			Quantity  int    `json:"quantity" binding:"required,min=1"`
			Size      string `json:"size"`
			Color     string `json:"color"`
		}
		if !bindJSON(c, &input) {
			return
		}

		cart, err := services.AddItem(db, c.GetString("user_id"), services.AddItemInput{
			ProductID: input.ProductID,
			Quantity:  input.Quantity,
			Size:      input.Size,
			Color:     input.Color,
		})
		if err != nil {
			handleServiceError(c, err)
			return
		}
		utils.OK(c, http.StatusOK, cart)
	}
}

// PATCH /api/cart/item/:itemId
func UpdateCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Quantity int `json:"quantity" binding:"required,min=1"`
		}
		if !bindJSON(c, &input) {
			return
		}

		cart, err := services.UpdateItemQuantity(db, c.GetString("user_id"), c.Param("itemId"), input.Quantity)
		if err != nil {
			handleServiceError(c, err)
			return
		}
		utils.OK(c, http.StatusOK, cart)
	}
}

// DELETE /api/cart/item/:itemId
func RemoveCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := services.RemoveItem(db, c.GetString("user_id"), c.Param("itemId"))
		if err != nil {
			handleServiceError(c, err)
			return
		}
		utils.OK(c, http.StatusOK, cart)
	}
}

// DELETE /api/cart
func ClearCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := services.ClearCart(db, c.GetString("user_id")); err != nil {
			handleServiceError(c, err)
			return
		}
		utils.OK(c, http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

// GET /api/cart/count
func GetCartItemCount(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		count, err := services.GetItemCount(db, c.GetString("user_id"))
		if err != nil {
			handleServiceError(c, err)
			return
		}
		utils.OK(c, http.StatusOK, gin.H{"count": count})
	}
}

// POST /api/cart/checkout — matérialise la commande puis vide le panier.
func Checkout(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := services.CreateFromCart(db, c.GetString("user_id"))
		if err != nil {
			handleServiceError(c, err)
			return
		}

		// Notification temps réel pour le back-office
		BroadcastOrderEvent("order.created", *order)

		// E-mail de confirmation en best-effort, hors du chemin de réponse
		if email := c.GetString("email"); email != "" && os.Getenv("SMTP_HOST") != "" {
			go func() {
				if err := utils.SendOrderConfirmation(email, *order); err != nil {
					// le client n'attend pas sur l'e-mail
					logMailError(err)
				}
			}()
		}

		utils.OK(c, http.StatusCreated, order)
	}
}
