package model

import "time"

// Localized row shapes returned by the read queries: the translation
// overlay has already been resolved into name/description.

type LocalizedCategory struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	DisplayOrder int    `json:"display_order"`
}

type LocalizedSubcategory struct {
	ID           uint   `json:"id"`
	CategoryID   uint   `json:"category_id"`
	Name         string `json:"name"`
	DisplayOrder int    `json:"display_order"`
}

type LocalizedItem struct {
	ID            uint      `json:"id"`
	CategoryID    uint      `json:"category_id"`
	SubcategoryID *uint     `json:"subcategory_id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	Currency      string    `json:"currency"`
	IsNew         bool      `json:"is_new"`
	Allergens     string    `json:"allergens"`
	ImageURL      string    `json:"image_url"`
	DisplayOrder  int       `json:"display_order"`
	CreatedAt     time.Time `json:"created_at"`
}
