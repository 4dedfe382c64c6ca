package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"qrmenu/model"
	"qrmenu/repository"
	"qrmenu/service"
)

var fixedNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql handle: %v", err)
	}
	// :memory: is per connection; keep the pool at one.
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&model.Restaurant{},
		&model.Category{},
		&model.CategoryTranslation{},
		&model.Subcategory{},
		&model.SubcategoryTranslation{},
		&model.MenuItem{},
		&model.ItemTranslation{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

type fixture struct {
	restaurant model.Restaurant
	drinks     model.Category
	vegan      model.Category
	starter    model.Subcategory
	soup       model.MenuItem
	cola       model.MenuItem
}

func seed(t *testing.T, db *gorm.DB) fixture {
	t.Helper()
	var f fixture

	f.restaurant = model.Restaurant{Slug: "cafe-eva", Name: "Cafe Eva", AboutText: "Cozy corner cafe"}
	if err := db.Create(&f.restaurant).Error; err != nil {
		t.Fatalf("seed restaurant: %v", err)
	}

	// Drinks sorts before Vegan by display_order.
	f.vegan = model.Category{RestaurantID: f.restaurant.ID, Name: "Vegan", DisplayOrder: 1}
	f.drinks = model.Category{RestaurantID: f.restaurant.ID, Name: "Drinks", DisplayOrder: 0}
	for _, c := range []*model.Category{&f.vegan, &f.drinks} {
		if err := db.Create(c).Error; err != nil {
			t.Fatalf("seed category: %v", err)
		}
	}
	if err := db.Create(&model.CategoryTranslation{
		CategoryID: f.vegan.ID, LanguageCode: "tr", Name: "Vegan Lezzetler",
	}).Error; err != nil {
		t.Fatalf("seed category translation: %v", err)
	}

	f.starter = model.Subcategory{RestaurantID: f.restaurant.ID, CategoryID: f.vegan.ID, Name: "Starter"}
	if err := db.Create(&f.starter).Error; err != nil {
		t.Fatalf("seed subcategory: %v", err)
	}
	if err := db.Create(&model.SubcategoryTranslation{
		SubcategoryID: f.starter.ID, LanguageCode: "tr", Name: "Başlangıç",
	}).Error; err != nil {
		t.Fatalf("seed subcategory translation: %v", err)
	}

	f.soup = model.MenuItem{
		RestaurantID:  f.restaurant.ID,
		CategoryID:    f.vegan.ID,
		SubcategoryID: &f.starter.ID,
		Name:          "Lentil Soup",
		Description:   "Red lentils, mint",
		Price:         6.5,
		Allergens:     "celery",
		CreatedAt:     fixedNow.Add(-24 * time.Hour),
	}
	f.cola = model.MenuItem{
		RestaurantID: f.restaurant.ID,
		CategoryID:   f.drinks.ID,
		Name:         "Cola",
		Price:        3,
		CreatedAt:    fixedNow.Add(-30 * 24 * time.Hour),
	}
	for _, it := range []*model.MenuItem{&f.soup, &f.cola} {
		if err := db.Create(it).Error; err != nil {
			t.Fatalf("seed item: %v", err)
		}
	}
	if err := db.Create(&model.ItemTranslation{
		MenuItemID: f.soup.ID, LanguageCode: "tr",
		Name: "Mercimek Çorbası", Description: "Kırmızı mercimek, nane",
	}).Error; err != nil {
		t.Fatalf("seed item translation: %v", err)
	}

	return f
}

func newService(db *gorm.DB) *service.MenuService {
	svc := service.NewMenuService(repository.NewMenuRepository(repository.Static(db)))
	svc.Now = func() time.Time { return fixedNow }
	return svc
}

func TestMenuTranslationOverlay(t *testing.T) {
	db := setupTestDB(t)
	f := seed(t, db)
	svc := newService(db)
	ctx := context.Background()

	doc, err := svc.Menu(ctx, "cafe-eva", "tr")
	if err != nil {
		t.Fatalf("Menu: %v", err)
	}

	names := map[uint]string{}
	for _, c := range doc.Categories {
		names[c.ID] = c.Name
	}
	if names[f.vegan.ID] != "Vegan Lezzetler" {
		t.Errorf("vegan category in tr = %q, want translated name", names[f.vegan.ID])
	}
	if names[f.drinks.ID] != "Drinks" {
		t.Errorf("drinks category in tr = %q, want base name fallback", names[f.drinks.ID])
	}

	if got := doc.SubcategoriesByCategory[f.vegan.ID][0].Name; got != "Başlangıç" {
		t.Errorf("starter subcategory in tr = %q, want translated name", got)
	}

	for _, it := range doc.Items {
		switch it.ID {
		case f.soup.ID:
			if it.Name != "Mercimek Çorbası" || it.Description != "Kırmızı mercimek, nane" {
				t.Errorf("soup in tr = %q / %q, want translated name and description", it.Name, it.Description)
			}
		case f.cola.ID:
			if it.Name != "Cola" {
				t.Errorf("cola in tr = %q, want base name fallback", it.Name)
			}
		}
	}
}

func TestMenuNoTranslationForLanguage(t *testing.T) {
	db := setupTestDB(t)
	f := seed(t, db)
	svc := newService(db)

	doc, err := svc.Menu(context.Background(), "cafe-eva", "es")
	if err != nil {
		t.Fatalf("Menu: %v", err)
	}
	for _, c := range doc.Categories {
		if c.ID == f.vegan.ID && c.Name != "Vegan" {
			t.Errorf("vegan category in es = %q, want base name", c.Name)
		}
	}
}

func TestMenuUnsupportedLanguageFallsBack(t *testing.T) {
	db := setupTestDB(t)
	seed(t, db)
	svc := newService(db)

	doc, err := svc.Menu(context.Background(), "cafe-eva", "de")
	if err != nil {
		t.Fatalf("Menu with unsupported lang: %v", err)
	}
	if doc.Lang != "en" {
		t.Errorf("lang = %q, want default en", doc.Lang)
	}
}

func TestMenuUnknownSlug(t *testing.T) {
	db := setupTestDB(t)
	seed(t, db)
	svc := newService(db)

	doc, err := svc.Menu(context.Background(), "unknown-slug", "en")
	if !errors.Is(err, service.ErrRestaurantNotFound) {
		t.Fatalf("err = %v, want ErrRestaurantNotFound", err)
	}
	if doc != nil {
		t.Errorf("doc = %+v, want nil (no partial data)", doc)
	}
}

func TestMenuSlugRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	seed(t, db)
	svc := newService(db)

	doc, err := svc.Menu(context.Background(), "cafe-eva", "en")
	if err != nil {
		t.Fatalf("Menu: %v", err)
	}
	if doc.Restaurant.Slug != "cafe-eva" {
		t.Errorf("restaurant slug = %q, want cafe-eva", doc.Restaurant.Slug)
	}
}

func TestMenuCategoryOrdering(t *testing.T) {
	db := setupTestDB(t)
	f := seed(t, db)
	svc := newService(db)

	doc, err := svc.Menu(context.Background(), "cafe-eva", "en")
	if err != nil {
		t.Fatalf("Menu: %v", err)
	}
	if len(doc.Categories) != 2 {
		t.Fatalf("got %d categories, want 2", len(doc.Categories))
	}
	if doc.Categories[0].ID != f.drinks.ID || doc.Categories[1].ID != f.vegan.ID {
		t.Errorf("category order = [%d %d], want [drinks=%d vegan=%d] by (display_order, id)",
			doc.Categories[0].ID, doc.Categories[1].ID, f.drinks.ID, f.vegan.ID)
	}
}

func TestMenuIdempotent(t *testing.T) {
	db := setupTestDB(t)
	seed(t, db)
	svc := newService(db)
	ctx := context.Background()

	first, err := svc.Menu(ctx, "cafe-eva", "tr")
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	second, err := svc.Menu(ctx, "cafe-eva", "tr")
	if err != nil {
		t.Fatalf("second call: %v", err)
	}

	a, _ := json.Marshal(first)
	b, _ := json.Marshal(second)
	if string(a) != string(b) {
		t.Errorf("repeated calls differ:\n%s\n%s", a, b)
	}
}

func TestMenuGroupings(t *testing.T) {
	db := setupTestDB(t)
	f := seed(t, db)
	svc := newService(db)

	doc, err := svc.Menu(context.Background(), "cafe-eva", "en")
	if err != nil {
		t.Fatalf("Menu: %v", err)
	}

	// Cola has no subcategory: category bucket only.
	colaInCat := false
	for _, it := range doc.ItemsByCategory[f.drinks.ID] {
		if it.ID == f.cola.ID {
			colaInCat = true
		}
	}
	if !colaInCat {
		t.Error("cola missing from its category bucket")
	}
	for subID, bucket := range doc.ItemsBySubcategory {
		for _, it := range bucket {
			if it.ID == f.cola.ID {
				t.Errorf("cola appears in subcategory bucket %d, want none", subID)
			}
		}
	}

	soupBucket := doc.ItemsBySubcategory[f.starter.ID]
	if len(soupBucket) != 1 || soupBucket[0].ID != f.soup.ID {
		t.Errorf("starter bucket = %+v, want only the soup", soupBucket)
	}
}

func TestMenuIsNewWindow(t *testing.T) {
	db := setupTestDB(t)
	f := seed(t, db)

	// The window is inclusive at exactly 14 days and closed one second past.
	onEdge := model.MenuItem{
		RestaurantID: f.restaurant.ID,
		CategoryID:   f.drinks.ID,
		Name:         "Fresh Mint Tea",
		Price:        4,
		CreatedAt:    fixedNow.Add(-14 * 24 * time.Hour),
	}
	pastEdge := model.MenuItem{
		RestaurantID: f.restaurant.ID,
		CategoryID:   f.drinks.ID,
		Name:         "Ayran",
		Price:        2,
		CreatedAt:    fixedNow.Add(-14*24*time.Hour - time.Second),
	}
	for _, it := range []*model.MenuItem{&onEdge, &pastEdge} {
		if err := db.Create(it).Error; err != nil {
			t.Fatalf("seed item: %v", err)
		}
	}
	svc := newService(db)

	doc, err := svc.Menu(context.Background(), "cafe-eva", "en")
	if err != nil {
		t.Fatalf("Menu: %v", err)
	}
	for _, it := range doc.Items {
		switch it.ID {
		case f.soup.ID:
			if !it.IsNew {
				t.Error("soup created 1 day ago should be new")
			}
		case f.cola.ID:
			if it.IsNew {
				t.Error("cola created 30 days ago should not be new")
			}
		case onEdge.ID:
			if !it.IsNew {
				t.Error("item created exactly 14 days ago should still be new")
			}
		case pastEdge.ID:
			if it.IsNew {
				t.Error("item created 14 days and a second ago should not be new")
			}
		}
	}
}

func TestMenuDegradesWithoutSubcategoryTable(t *testing.T) {
	db := setupTestDB(t)
	f := seed(t, db)
	if err := db.Migrator().DropTable(&model.Subcategory{}); err != nil {
		t.Fatalf("drop table: %v", err)
	}
	svc := newService(db)

	doc, err := svc.Menu(context.Background(), "cafe-eva", "en")
	if err != nil {
		t.Fatalf("Menu should degrade, got %v", err)
	}
	if len(doc.Subcategories) != 0 || len(doc.SubcategoriesByCategory) != 0 {
		t.Errorf("subcategories = %v, want empty after degraded query", doc.Subcategories)
	}
	if len(doc.Categories) != 2 {
		t.Errorf("got %d categories, want the other legs unaffected", len(doc.Categories))
	}
	if len(doc.ItemsByCategory[f.vegan.ID]) != 1 {
		t.Error("items should still be grouped by category")
	}
}

func TestMenuDefaultCurrency(t *testing.T) {
	db := setupTestDB(t)
	f := seed(t, db)
	// Force an empty currency past the column default.
	if err := db.Model(&model.MenuItem{}).Where("id = ?", f.cola.ID).Update("currency", "").Error; err != nil {
		t.Fatalf("clear currency: %v", err)
	}
	svc := newService(db)

	doc, err := svc.Menu(context.Background(), "cafe-eva", "en")
	if err != nil {
		t.Fatalf("Menu: %v", err)
	}
	for _, it := range doc.Items {
		if it.ID == f.cola.ID && it.Currency != model.DefaultCurrency {
			t.Errorf("currency = %q, want default %q", it.Currency, model.DefaultCurrency)
		}
	}
}
