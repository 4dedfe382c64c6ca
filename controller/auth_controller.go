package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"qrmenu/model"
	"qrmenu/repository"
	"qrmenu/utils"
)

type AuthController struct {
	Source repository.Source
}

func NewAuthController(source repository.Source) *AuthController {
	return &AuthController{Source: source}
}

// Login authenticates a restaurant owner by email and password and
// returns a JWT pair.
func (ac *AuthController) Login(c *gin.Context) {
	db := ac.Source.Gorm()
	if !requireDB(c, db) {
		return
	}
	type Request struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Email and password are required"})
		return
	}

	var restaurant model.Restaurant
	if err := db.Where("email = ?", req.Email).First(&restaurant).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid credentials"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(restaurant.Password), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid credentials"})
		return
	}

	access, refresh, err := utils.GenerateTokens(restaurant.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to generate tokens"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"restaurant_id": restaurant.ID,
		"access_token":  access,
		"refresh_token": refresh,
	})
}

func (ac *AuthController) Refresh(c *gin.Context) {
	type Request struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}

	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "refresh_token is required"})
		return
	}

	access, refresh, err := utils.RefreshTokens(req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"access_token":  access,
		"refresh_token": refresh,
	})
}
