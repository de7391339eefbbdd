package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront_back_end/internal/services"
	"storefront_back_end/internal/utils"
)

// POST /api/upload (admin) — envoie une image produit vers MinIO.
func UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.Fail(c, http.StatusBadRequest, "No file received")
		return
	}

	url, objectName, err := services.UploadImage(fileHeader)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.OK(c, http.StatusCreated, gin.H{"url": url, "object": objectName})
}

// DELETE /api/upload (admin) — supprime une image par nom d'objet.
func DeleteImage(c *gin.Context) {
	var input struct {
		Object string `json:"object" binding:"required"`
	}
	if !bindJSON(c, &input) {
		return
	}

	if err := services.RemoveImage(input.Object); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.OK(c, http.StatusOK, gin.H{"message": "Image deleted"})
}
