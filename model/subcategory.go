package model

// Subcategory is an optional second grouping level under a category.
type Subcategory struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	RestaurantID uint   `gorm:"index:idx_subcat_restaurant;not null" json:"restaurant_id"`
	CategoryID   uint   `gorm:"index:idx_subcat_restaurant;not null" json:"category_id"`
	Name         string `gorm:"not null" json:"name"`
	DisplayOrder int    `gorm:"default:0" json:"display_order"`
}

func (Subcategory) TableName() string {
	return "menu_subcategories"
}

type SubcategoryTranslation struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	SubcategoryID uint   `gorm:"uniqueIndex:uniq_subcat_lang;not null" json:"subcategory_id"`
	LanguageCode  string `gorm:"uniqueIndex:uniq_subcat_lang;size:2;not null" json:"language_code"`
	Name          string `gorm:"not null" json:"name"`
}

func (SubcategoryTranslation) TableName() string {
	return "menu_subcategory_translations"
}
