package utils

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func secret() []byte {
	s := os.Getenv("SESSION_SECRET")
	if s == "" {
		s = "defaultsecret"
	}
	return []byte(s)
}

// GenerateTokens issues an access/refresh pair for a restaurant owner.
func GenerateTokens(restaurantID uint) (string, string, error) {
	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"restaurant_id": restaurantID,
		"exp":           time.Now().Add(15 * time.Minute).Unix(),
	})
	access, err := accessToken.SignedString(secret())
	if err != nil {
		return "", "", err
	}

	refreshToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"restaurant_id": restaurantID,
		"refresh":       true,
		"exp":           time.Now().Add(12 * time.Hour).Unix(),
	})
	refresh, err := refreshToken.SignedString(secret())
	if err != nil {
		return "", "", err
	}

	return access, refresh, nil
}

func ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret(), nil
	})
	if err != nil {
		return nil, fmt.Errorf("error parsing token: %v", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// RefreshTokens validates a refresh token and issues a fresh pair.
func RefreshTokens(oldRefreshToken string) (string, string, error) {
	claims, err := ValidateToken(oldRefreshToken)
	if err != nil {
		return "", "", err
	}
	if isRefresh, _ := claims["refresh"].(bool); !isRefresh {
		return "", "", errors.New("not a refresh token")
	}
	idFloat, ok := claims["restaurant_id"].(float64)
	if !ok {
		return "", "", errors.New("restaurant_id not found in token")
	}
	return GenerateTokens(uint(idFloat))
}
