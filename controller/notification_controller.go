package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"qrmenu/model"
	"qrmenu/repository"
)

type NotificationController struct {
	Source repository.Source
}

func NewNotificationController(source repository.Source) *NotificationController {
	return &NotificationController{Source: source}
}

// List serves GET /notifications/:restaurant_id, newest first.
func (nc *NotificationController) List(c *gin.Context) {
	db := nc.Source.Gorm()
	if !requireDB(c, db) {
		return
	}
	var notifications []model.Notification
	err := db.WithContext(c.Request.Context()).
		Where("restaurant_id = ?", c.Param("restaurant_id")).
		Order("sent_at DESC").
		Find(&notifications).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server_error", "detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, notifications)
}
