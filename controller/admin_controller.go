package controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"

	"qrmenu/model"
	"qrmenu/repository"
)

// AdminController holds the owner-authenticated write paths. The customer
// read core never goes through here.
type AdminController struct {
	Source repository.Source
}

func NewAdminController(source repository.Source) *AdminController {
	return &AdminController{Source: source}
}

func ownerID(c *gin.Context) (uint, bool) {
	restaurantID, exists := c.Get("restaurant_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "Restaurant ID not found in context",
		})
		return 0, false
	}
	return restaurantID.(uint), true
}

func (a *AdminController) AddCategory(c *gin.Context) {
	db := a.Source.Gorm()
	if !requireDB(c, db) {
		return
	}
	restaurantID, ok := ownerID(c)
	if !ok {
		return
	}

	type Request struct {
		Name         string `json:"name"`
		DisplayOrder int    `json:"display_order"`
	}
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Category name is required",
		})
		return
	}

	category := model.Category{
		RestaurantID: restaurantID,
		Name:         req.Name,
		DisplayOrder: req.DisplayOrder,
	}
	if err := db.Create(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   fmt.Sprintf("Failed to create category: %v", err),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    category,
	})
}

func (a *AdminController) AddItem(c *gin.Context) {
	db := a.Source.Gorm()
	if !requireDB(c, db) {
		return
	}
	restaurantID, ok := ownerID(c)
	if !ok {
		return
	}

	type Request struct {
		CategoryID    uint    `json:"category_id"`
		SubcategoryID *uint   `json:"subcategory_id"`
		Name          string  `json:"name"`
		Description   string  `json:"description"`
		Price         float64 `json:"price"`
		Currency      string  `json:"currency"`
		Allergens     string  `json:"allergens"`
		ImageURL      string  `json:"image_url"`
		DisplayOrder  int     `json:"display_order"`
	}
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" || req.CategoryID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Item name and category_id are required",
		})
		return
	}

	// The category must belong to the authenticated restaurant.
	var category model.Category
	if err := db.Where("id = ? AND restaurant_id = ?", req.CategoryID, restaurantID).First(&category).Error; err != nil {
		c.JSON(http.StatusForbidden, gin.H{
			"success": false,
			"error":   "Category does not belong to this restaurant",
		})
		return
	}

	// A subcategory reference must stay inside the same restaurant and
	// category; otherwise one owner could hang items off another's tree.
	if req.SubcategoryID != nil {
		var subcategory model.Subcategory
		err := db.Where("id = ? AND restaurant_id = ? AND category_id = ?",
			*req.SubcategoryID, restaurantID, req.CategoryID).First(&subcategory).Error
		if err != nil {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   "Subcategory does not belong to this category",
			})
			return
		}
	}

	currency := req.Currency
	if currency == "" {
		currency = model.DefaultCurrency
	}

	item := model.MenuItem{
		RestaurantID:  restaurantID,
		CategoryID:    req.CategoryID,
		SubcategoryID: req.SubcategoryID,
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		Currency:      currency,
		Allergens:     req.Allergens,
		ImageURL:      req.ImageURL,
		DisplayOrder:  req.DisplayOrder,
	}
	if err := db.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   fmt.Sprintf("Failed to create item: %v", err),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    item,
	})
}

// TranslateItem upserts the translation overlay for one (item, language)
// pair, matching the unique key on the table.
func (a *AdminController) TranslateItem(c *gin.Context) {
	db := a.Source.Gorm()
	if !requireDB(c, db) {
		return
	}
	restaurantID, ok := ownerID(c)
	if !ok {
		return
	}

	type Request struct {
		MenuItemID   uint   `json:"menu_item_id"`
		LanguageCode string `json:"language_code"`
		Name         string `json:"name"`
		Description  string `json:"description"`
	}
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil || req.MenuItemID == 0 || req.LanguageCode == "" || req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "menu_item_id, language_code and name are required",
		})
		return
	}
	if model.NormalizeLanguage(req.LanguageCode) != req.LanguageCode {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Unsupported language code",
		})
		return
	}

	var item model.MenuItem
	if err := db.Where("id = ? AND restaurant_id = ?", req.MenuItemID, restaurantID).First(&item).Error; err != nil {
		c.JSON(http.StatusForbidden, gin.H{
			"success": false,
			"error":   "Item does not belong to this restaurant",
		})
		return
	}

	translation := model.ItemTranslation{
		MenuItemID:   req.MenuItemID,
		LanguageCode: req.LanguageCode,
		Name:         req.Name,
		Description:  req.Description,
	}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "menu_item_id"}, {Name: "language_code"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "description"}),
	}).Create(&translation).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   fmt.Sprintf("Failed to save translation: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Translation saved",
	})
}
