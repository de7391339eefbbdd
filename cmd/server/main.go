package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"storefront_back_end/internal/config"
	"storefront_back_end/internal/database"
	"storefront_back_end/internal/routes"
	"storefront_back_end/internal/services"
)

func main() {
	config.Load()

	database.ConnectDatabases()

	// MinIO pour les images produit (optionnel)
	services.ConnectMinio()

	r := gin.Default()

	// CORS — le front envoie le cookie d'auth
	r.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, database.DB)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("🚀 Serveur storefront lancé sur le port", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Arrêt du serveur: %v", err)
	}
}

func corsOrigins() []string {
	if origin := os.Getenv("FRONTEND_ORIGIN"); origin != "" {
		return []string{origin}
	}
	return []string{"http://localhost:3000"}
}
