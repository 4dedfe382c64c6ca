package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// requireDB fails the request when the connection provider never reached
// the database. The process keeps serving; only this request errors.
func requireDB(c *gin.Context, db *gorm.DB) bool {
	if db == nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":  "server_error",
			"detail": "database not connected",
		})
		return false
	}
	return true
}
