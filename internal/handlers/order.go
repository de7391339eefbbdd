package handlers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"storefront_back_end/internal/models"
	"storefront_back_end/internal/services"
	"storefront_back_end/internal/utils"
)

// GET /api/orders — liste scopée par rôle : tout pour un admin,
// uniquement les siennes pour un customer.
func ListOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("role") == models.RoleAdmin {
			orders, err := services.GetAllOrders(db)
			if err != nil {
				handleServiceError(c, err)
				return
			}
			utils.OK(c, http.StatusOK, orders)
			return
		}

		orders, err := services.GetOrdersByUser(db, c.GetString("user_id"))
		if err != nil {
			handleServiceError(c, err)
			return
		}
		utils.OK(c, http.StatusOK, orders)
	}
}

// POST /api/orders — équivalent du checkout.
func CreateOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := services.CreateFromCart(db, c.GetString("user_id"))
		if err != nil {
			handleServiceError(c, err)
			return
		}

		BroadcastOrderEvent("order.created", *order)

		if email := c.GetString("email"); email != "" && os.Getenv("SMTP_HOST") != "" {
			go func() {
				if err := utils.SendOrderConfirmation(email, *order); err != nil {
					logMailError(err)
				}
			}()
		}

		utils.OK(c, http.StatusCreated, order)
	}
}

// GET /api/orders/:id — propriétaire ou admin uniquement.
// Le contrôle d'accès vit ici, à la frontière route, pas dans le service.
func GetOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := services.GetOrderByID(db, c.Param("id"))
		if err != nil {
			handleServiceError(c, err)
			return
		}

		if order.UserID != c.GetString("user_id") && c.GetString("role") != models.RoleAdmin {
			utils.Fail(c, http.StatusForbidden, "Forbidden")
			return
		}

		utils.OK(c, http.StatusOK, order)
	}
}

// PUT /api/orders/:id — mise à jour du statut (admin).
func UpdateOrderStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Status string `json:"status" binding:"required,oneof=PENDING PAID SHIPPED DELIVERED CANCELED"`
		}
		if !bindJSON(c, &input) {
			return
		}

		order, err := services.UpdateOrderStatus(db, c.Param("id"), models.OrderStatus(input.Status))
		if err != nil {
			handleServiceError(c, err)
			return
		}

		BroadcastOrderEvent("order.status_changed", *order)
		utils.OK(c, http.StatusOK, order)
	}
}

// DELETE /api/orders/:id — admin.
func DeleteOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := services.DeleteOrder(db, c.Param("id")); err != nil {
			handleServiceError(c, err)
			return
		}
		utils.OK(c, http.StatusOK, gin.H{"message": "Order deleted"})
	}
}

// GET /api/orders/stats — agrégats par statut (admin).
func GetOrderStats(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := services.GetOrderStats(db)
		if err != nil {
			handleServiceError(c, err)
			return
		}
		utils.OK(c, http.StatusOK, stats)
	}
}
