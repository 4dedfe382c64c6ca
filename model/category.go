package model

type Category struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	RestaurantID uint   `gorm:"index:idx_cat_restaurant;not null" json:"restaurant_id"`
	Name         string `gorm:"not null" json:"name"`
	DisplayOrder int    `gorm:"index:idx_cat_restaurant;default:0" json:"display_order"`
}

func (Category) TableName() string {
	return "menu_categories"
}

// CategoryTranslation overlays an alternate name for one language.
// At most one row per (category, language).
type CategoryTranslation struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	CategoryID   uint   `gorm:"uniqueIndex:uniq_cat_lang;not null" json:"category_id"`
	LanguageCode string `gorm:"uniqueIndex:uniq_cat_lang;size:2;not null" json:"language_code"`
	Name         string `gorm:"not null" json:"name"`
}

func (CategoryTranslation) TableName() string {
	return "menu_category_translations"
}
