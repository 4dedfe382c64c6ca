package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"qrmenu/model"
)

// ErrNotConnected is returned while the provider has no handle; the
// request fails, the process does not.
var ErrNotConnected = errors.New("database not connected")

// Source yields the current database handle. The connection provider
// implements it, so a handle established after boot is visible to every
// later request.
type Source interface {
	Gorm() *gorm.DB
}

// Static wraps a fixed handle in a Source; tests use it in place of the
// connection provider.
func Static(db *gorm.DB) Source {
	return staticSource{db: db}
}

type staticSource struct{ db *gorm.DB }

func (s staticSource) Gorm() *gorm.DB { return s.db }

// MenuRepository runs the customer-facing read queries. Each list query
// LEFT JOINs the per-language overlay table and brings back both the base
// and the translated columns; model.Translate resolves the display value.
type MenuRepository struct {
	Source Source
}

func NewMenuRepository(source Source) *MenuRepository {
	return &MenuRepository{Source: source}
}

func (r *MenuRepository) FindRestaurantBySlug(ctx context.Context, slug string) (*model.Restaurant, error) {
	db := r.Source.Gorm()
	if db == nil {
		return nil, ErrNotConnected
	}
	var restaurant model.Restaurant
	err := db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&restaurant).Error
	if err != nil {
		return nil, err
	}
	return &restaurant, nil
}

type categoryRow struct {
	ID             uint
	Name           string
	TranslatedName *string
	DisplayOrder   int
}

func (r *MenuRepository) ListCategories(ctx context.Context, restaurantID uint, lang string) ([]model.LocalizedCategory, error) {
	db := r.Source.Gorm()
	if db == nil {
		return nil, ErrNotConnected
	}
	var rows []categoryRow
	err := db.WithContext(ctx).
		Table("menu_categories").
		Select("menu_categories.id, menu_categories.name, t.name AS translated_name, menu_categories.display_order").
		Joins("LEFT JOIN menu_category_translations t ON t.category_id = menu_categories.id AND t.language_code = ?", lang).
		Where("menu_categories.restaurant_id = ?", restaurantID).
		Order("menu_categories.display_order ASC, menu_categories.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	categories := make([]model.LocalizedCategory, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, model.LocalizedCategory{
			ID:           row.ID,
			Name:         model.Translate(row.Name, deref(row.TranslatedName)),
			DisplayOrder: row.DisplayOrder,
		})
	}
	return categories, nil
}

type subcategoryRow struct {
	ID             uint
	CategoryID     uint
	Name           string
	TranslatedName *string
	DisplayOrder   int
}

func (r *MenuRepository) ListSubcategories(ctx context.Context, restaurantID uint, lang string) ([]model.LocalizedSubcategory, error) {
	db := r.Source.Gorm()
	if db == nil {
		return nil, ErrNotConnected
	}
	var rows []subcategoryRow
	err := db.WithContext(ctx).
		Table("menu_subcategories").
		Select("menu_subcategories.id, menu_subcategories.category_id, menu_subcategories.name, t.name AS translated_name, menu_subcategories.display_order").
		Joins("LEFT JOIN menu_subcategory_translations t ON t.subcategory_id = menu_subcategories.id AND t.language_code = ?", lang).
		Where("menu_subcategories.restaurant_id = ?", restaurantID).
		Order("menu_subcategories.display_order ASC, menu_subcategories.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	subcategories := make([]model.LocalizedSubcategory, 0, len(rows))
	for _, row := range rows {
		subcategories = append(subcategories, model.LocalizedSubcategory{
			ID:           row.ID,
			CategoryID:   row.CategoryID,
			Name:         model.Translate(row.Name, deref(row.TranslatedName)),
			DisplayOrder: row.DisplayOrder,
		})
	}
	return subcategories, nil
}

type itemRow struct {
	ID                    uint
	CategoryID            uint
	SubcategoryID         *uint
	Name                  string
	Description           string
	TranslatedName        *string
	TranslatedDescription *string
	Price                 float64
	Currency              string
	Allergens             string
	ImageURL              string
	DisplayOrder          int
	CreatedAt             time.Time
}

func (r *MenuRepository) ListItems(ctx context.Context, restaurantID uint, lang string) ([]model.LocalizedItem, error) {
	db := r.Source.Gorm()
	if db == nil {
		return nil, ErrNotConnected
	}
	var rows []itemRow
	err := db.WithContext(ctx).
		Table("menu_items").
		Select(`menu_items.id, menu_items.category_id, menu_items.subcategory_id,
			menu_items.name, menu_items.description,
			t.name AS translated_name, t.description AS translated_description,
			menu_items.price, menu_items.currency, menu_items.allergens,
			menu_items.image_url, menu_items.display_order, menu_items.created_at`).
		Joins("LEFT JOIN menu_item_translations t ON t.menu_item_id = menu_items.id AND t.language_code = ?", lang).
		Where("menu_items.restaurant_id = ?", restaurantID).
		Order("menu_items.display_order ASC, menu_items.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	items := make([]model.LocalizedItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, model.LocalizedItem{
			ID:            row.ID,
			CategoryID:    row.CategoryID,
			SubcategoryID: row.SubcategoryID,
			Name:          model.Translate(row.Name, deref(row.TranslatedName)),
			Description:   model.Translate(row.Description, deref(row.TranslatedDescription)),
			Price:         row.Price,
			Currency:      row.Currency,
			Allergens:     row.Allergens,
			ImageURL:      row.ImageURL,
			DisplayOrder:  row.DisplayOrder,
			CreatedAt:     row.CreatedAt,
		})
	}
	return items, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
