package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"storefront_back_end/internal/services"
	"storefront_back_end/internal/utils"
)

// Durée de vie du cookie alignée sur celle du token.
const cookieMaxAge = int(utils.TokenTTL / time.Second)

func setAuthCookie(c *gin.Context, token string) {
	// httpOnly ; Secure est laissé au reverse proxy en prod
	c.SetCookie("token", token, cookieMaxAge, "/", "", false, true)
}

// POST /api/auth/register
func Register(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Email    string `json:"email" binding:"required,email"`
			Password string `json:"password" binding:"required,min=6"`
			Name     string `json:"name" binding:"required"`
		}
		if !bindJSON(c, &input) {
			return
		}

		user, err := services.Register(db, services.RegisterInput{
			Email:    input.Email,
			Password: input.Password,
			Name:     input.Name,
		})
		if err != nil {
			handleServiceError(c, err)
			return
		}

		token, err := utils.GenerateJWT(*user)
		if err != nil {
			handleServiceError(c, err)
			return
		}

		setAuthCookie(c, token)
		utils.OK(c, http.StatusCreated, gin.H{"user": user, "token": token})
	}
}

// POST /api/auth/login
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Email    string `json:"email" binding:"required,email"`
			Password string `json:"password" binding:"required"`
		}
		if !bindJSON(c, &input) {
			return
		}

		user, err := services.Login(db, input.Email, input.Password)
		if err != nil {
			handleServiceError(c, err)
			return
		}

		token, err := utils.GenerateJWT(*user)
		if err != nil {
			handleServiceError(c, err)
			return
		}

		setAuthCookie(c, token)
		utils.OK(c, http.StatusOK, gin.H{"user": user, "token": token})
	}
}

// POST /api/auth/logout
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Expire le cookie immédiatement
		c.SetCookie("token", "", -1, "/", "", false, true)
		utils.OK(c, http.StatusOK, gin.H{"message": "Logged out"})
	}
}

// GET /api/me
func Me(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := services.GetProfile(db, c.GetString("user_id"))
		if err != nil {
			handleServiceError(c, err)
			return
		}
		utils.OK(c, http.StatusOK, user)
	}
}
