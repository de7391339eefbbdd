package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront_back_end/internal/services"
	"storefront_back_end/internal/utils"
)

// handleServiceError mappe une erreur de service vers l'enveloppe.
// Une AppError porte son statut ; tout le reste est une 500 loggée
// côté serveur sans exposer l'interne au client.
func handleServiceError(c *gin.Context, err error) {
	var appErr *services.AppError
	if errors.As(err, &appErr) {
		utils.FailWithDetails(c, appErr.Status, appErr.Message, appErr.Details)
		return
	}

	log.Printf("❌ Erreur inattendue [%s %s]: %v", c.Request.Method, c.Request.URL.Path, err)
	utils.Fail(c, http.StatusInternalServerError, "Internal server error")
}

func logMailError(err error) {
	log.Println("⚠️ Échec envoi e-mail de confirmation:", err)
}

// bindJSON centralise le binding + la réponse 400 détaillée par champ.
func bindJSON(c *gin.Context, input interface{}) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		utils.FailWithDetails(c, http.StatusBadRequest, "Invalid input", utils.ValidationDetails(err))
		return false
	}
	return true
}
