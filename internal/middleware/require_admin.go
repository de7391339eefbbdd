package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront_back_end/internal/models"
	"storefront_back_end/internal/utils"
)

// RequireAdmin vérifie que l'utilisateur a le rôle "admin"
func RequireAdmin(c *gin.Context) {
	role, exists := c.Get("role")
	if !exists || role != models.RoleAdmin {
		utils.Fail(c, http.StatusForbidden, "Forbidden")
		c.Abort()
		return
	}
	c.Next()
}
