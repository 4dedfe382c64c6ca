package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"qrmenu/database"
)

type HealthController struct {
	Provider *database.Provider
}

func NewHealthController(p *database.Provider) *HealthController {
	return &HealthController{Provider: p}
}

// Healthz always answers 200; a broken database shows up as db "down",
// never as a 5xx.
func (hc *HealthController) Healthz(c *gin.Context) {
	db := "down"
	if hc.Provider.Healthy() {
		db = "up"
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "db": db})
}
