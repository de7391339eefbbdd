package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"storefront_back_end/internal/handlers"
	"storefront_back_end/internal/middleware"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	api := r.Group("/api")

	// Auth
	auth := api.Group("/auth")
	auth.POST("/register", middleware.RegisterRateLimit(), handlers.Register(db))
	auth.POST("/login", middleware.LoginRateLimit(), handlers.Login(db))
	auth.POST("/logout", middleware.AuthRequired(), handlers.Logout())

	api.GET("/me", middleware.AuthRequired(), handlers.Me(db))

	// Panier
	cart := api.Group("/cart", middleware.AuthRequired())
	cart.GET("", handlers.GetCart(db))
	cart.POST("", handlers.AddCartItem(db))
	cart.DELETE("", handlers.ClearCart(db))
	cart.GET("/count", handlers.GetCartItemCount(db))
	cart.PATCH("/item/:itemId", handlers.UpdateCartItem(db))
	cart.DELETE("/item/:itemId", handlers.RemoveCartItem(db))
	cart.POST("/checkout", handlers.Checkout(db))

	// Commandes
	orders := api.Group("/orders", middleware.AuthRequired())
	orders.GET("", handlers.ListOrders(db))
	orders.POST("", handlers.CreateOrder(db))
	orders.GET("/stats", middleware.RequireAdmin, handlers.GetOrderStats(db))
	orders.GET("/ws", middleware.RequireAdmin, handlers.OrderEventsWS)
	orders.GET("/:id", handlers.GetOrder(db)) // propriétaire ou admin, vérifié dans le handler
	orders.PUT("/:id", middleware.RequireAdmin, handlers.UpdateOrderStatus(db))
	orders.DELETE("/:id", middleware.RequireAdmin, handlers.DeleteOrder(db))

	// Catégories — lecture publique, mutation admin
	api.GET("/categories", handlers.GetAllCategories(db))
	api.GET("/categories/:id", handlers.GetCategory(db))
	api.POST("/categories", middleware.AuthRequired(), middleware.RequireAdmin, handlers.CreateCategory(db))
	api.PUT("/categories/:id", middleware.AuthRequired(), middleware.RequireAdmin, handlers.UpdateCategory(db))
	api.DELETE("/categories/:id", middleware.AuthRequired(), middleware.RequireAdmin, handlers.DeleteCategory(db))

	// Produits — lecture publique, mutation admin
	api.GET("/products", handlers.GetAllProducts(db))
	api.GET("/products/:id", handlers.GetProduct(db))
	api.POST("/products", middleware.AuthRequired(), middleware.RequireAdmin, handlers.CreateProduct(db))
	api.PUT("/products/:id", middleware.AuthRequired(), middleware.RequireAdmin, handlers.UpdateProduct(db))
	api.DELETE("/products/:id", middleware.AuthRequired(), middleware.RequireAdmin, handlers.DeleteProduct(db))

	// Upload d'images (admin)
	api.POST("/upload", middleware.AuthRequired(), middleware.RequireAdmin, handlers.UploadImage)
	api.DELETE("/upload", middleware.AuthRequired(), middleware.RequireAdmin, handlers.DeleteImage)
}
