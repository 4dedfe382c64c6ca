package utils

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// OwnerMiddleware guards the restaurant-owner write routes. It validates
// the Bearer token and stashes the owner's restaurant id on the context.
func OwnerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		restaurantID, err := ExtractRestaurantID(authHeader)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		c.Set("restaurant_id", restaurantID)
		c.Next()
	}
}

func ExtractRestaurantID(authHeader string) (uint, error) {
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return 0, errors.New("invalid token format")
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	claims, err := ValidateToken(tokenString)
	if err != nil {
		return 0, err
	}

	idFloat, ok := claims["restaurant_id"].(float64)
	if !ok {
		return 0, errors.New("restaurant_id not found in token")
	}
	return uint(idFloat), nil
}
