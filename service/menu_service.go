package service

import (
	"context"
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	"qrmenu/model"
	"qrmenu/repository"
)

// ErrRestaurantNotFound keeps a slug miss distinct from server errors so
// the handler can answer 404 instead of 500.
var ErrRestaurantNotFound = errors.New("restaurant not found")

// newItemWindow is how far back created_at may lie for an item to carry
// the "new" badge.
const newItemWindow = 14 * 24 * time.Hour

// MenuDocument is the aggregated response for one (slug, language) pair.
// Both endpoint shapes are sliced out of it.
type MenuDocument struct {
	Restaurant    *model.Restaurant            `json:"restaurant"`
	Categories    []model.LocalizedCategory    `json:"categories"`
	Subcategories []model.LocalizedSubcategory `json:"subcategories"`
	Items         []model.LocalizedItem        `json:"items"`

	SubcategoriesByCategory map[uint][]model.LocalizedSubcategory `json:"subcategories_by_category"`
	ItemsByCategory         map[uint][]model.LocalizedItem        `json:"items_by_category"`
	ItemsBySubcategory      map[uint][]model.LocalizedItem        `json:"items_by_subcategory"`

	Lang string `json:"lang"`
}

type MenuService struct {
	Repo *repository.MenuRepository
	// Now is swappable so the is_new window is testable with a fixed clock.
	Now func() time.Time
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{Repo: repo, Now: time.Now}
}

// Menu loads the restaurant by slug and assembles the full nested menu
// document for the given language. The subcategory query is the one
// optional leg: if it fails the document degrades to empty subcategory
// groupings instead of failing the request.
func (s *MenuService) Menu(ctx context.Context, slug, lang string) (*MenuDocument, error) {
	lang = model.NormalizeLanguage(lang)

	restaurant, err := s.Repo.FindRestaurantBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}

	categories, err := s.Repo.ListCategories(ctx, restaurant.ID, lang)
	if err != nil {
		return nil, err
	}

	subcategories, err := s.Repo.ListSubcategories(ctx, restaurant.ID, lang)
	if err != nil {
		log.Printf("subcategory query failed for %s, serving without subcategories: %v", slug, err)
		subcategories = nil
	}

	items, err := s.Repo.ListItems(ctx, restaurant.ID, lang)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	for i := range items {
		if items[i].Currency == "" {
			items[i].Currency = model.DefaultCurrency
		}
		items[i].IsNew = now.Sub(items[i].CreatedAt) <= newItemWindow
	}

	doc := &MenuDocument{
		Restaurant:              restaurant,
		Categories:              categories,
		Subcategories:           subcategories,
		Items:                   items,
		SubcategoriesByCategory: map[uint][]model.LocalizedSubcategory{},
		ItemsByCategory:         map[uint][]model.LocalizedItem{},
		ItemsBySubcategory:      map[uint][]model.LocalizedItem{},
		Lang:                    lang,
	}
	for _, sc := range subcategories {
		doc.SubcategoriesByCategory[sc.CategoryID] = append(doc.SubcategoriesByCategory[sc.CategoryID], sc)
	}
	for _, it := range items {
		doc.ItemsByCategory[it.CategoryID] = append(doc.ItemsByCategory[it.CategoryID], it)
		if it.SubcategoryID != nil {
			doc.ItemsBySubcategory[*it.SubcategoryID] = append(doc.ItemsBySubcategory[*it.SubcategoryID], it)
		}
	}
	return doc, nil
}
