package model

import "time"

const DefaultCurrency = "EUR"

type MenuItem struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	RestaurantID  uint      `gorm:"index:idx_item_restaurant;not null" json:"restaurant_id"`
	CategoryID    uint      `gorm:"index:idx_item_restaurant;not null" json:"category_id"`
	SubcategoryID *uint     `gorm:"index:idx_item_restaurant" json:"subcategory_id"`
	Name          string    `gorm:"not null" json:"name"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	Currency      string    `gorm:"size:8;default:EUR" json:"currency"`
	Allergens     string    `json:"allergens"`
	ImageURL      string    `gorm:"size:512" json:"image_url"`
	DisplayOrder  int       `gorm:"default:0" json:"display_order"`
	CreatedAt     time.Time `json:"created_at"`
}

func (MenuItem) TableName() string {
	return "menu_items"
}

// ItemTranslation overlays name and description together for one language.
type ItemTranslation struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	MenuItemID   uint   `gorm:"uniqueIndex:uniq_item_lang;not null" json:"menu_item_id"`
	LanguageCode string `gorm:"uniqueIndex:uniq_item_lang;size:2;not null" json:"language_code"`
	Name         string `gorm:"not null" json:"name"`
	Description  string `json:"description"`
}

func (ItemTranslation) TableName() string {
	return "menu_item_translations"
}
