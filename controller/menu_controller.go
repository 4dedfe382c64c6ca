package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"qrmenu/service"
)

type MenuController struct {
	Service *service.MenuService
}

func NewMenuController(s *service.MenuService) *MenuController {
	return &MenuController{Service: s}
}

// GetRestaurant serves GET /restaurant/:slug — the flat document:
// restaurant, categories, subcategories and the full item list; grouping
// is left to the client.
func (mc *MenuController) GetRestaurant(c *gin.Context) {
	doc, ok := mc.load(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"restaurant":    doc.Restaurant,
		"categories":    doc.Categories,
		"subcategories": doc.Subcategories,
		"items":         doc.Items,
		"lang":          doc.Lang,
	})
}

// GetMenu serves GET /menu/:slug — the grouped document with the
// per-category and per-subcategory item buckets precomputed.
func (mc *MenuController) GetMenu(c *gin.Context) {
	doc, ok := mc.load(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"restaurant":                doc.Restaurant,
		"categories":                doc.Categories,
		"subcategories_by_category": doc.SubcategoriesByCategory,
		"items_by_category":         doc.ItemsByCategory,
		"items_by_subcategory":      doc.ItemsBySubcategory,
		"lang":                      doc.Lang,
	})
}

func (mc *MenuController) load(c *gin.Context) (*service.MenuDocument, bool) {
	slug := c.Param("slug")
	lang := c.Query("lang")

	doc, err := mc.Service.Menu(c.Request.Context(), slug, lang)
	if err != nil {
		if errors.Is(err, service.ErrRestaurantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "restaurant_not_found", "slug": slug})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "server_error", "detail": err.Error()})
		}
		return nil, false
	}
	return doc, true
}
