package controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"

	"qrmenu/model"
)

type QRCodeController struct {
	BaseURL string
}

func NewQRCodeController(baseURL string) *QRCodeController {
	return &QRCodeController{BaseURL: baseURL}
}

// Generate serves GET /qrcode/:slug/:lang — a PNG encoding the public
// menu URL for that restaurant and language.
func (qc *QRCodeController) Generate(c *gin.Context) {
	slug := c.Param("slug")
	lang := model.NormalizeLanguage(c.Param("lang"))

	url := fmt.Sprintf("%s/%s?lang=%s", qc.BaseURL, slug, lang)
	png, err := qrcode.Encode(url, qrcode.Medium, 256)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server_error", "detail": "failed to generate QR code"})
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
