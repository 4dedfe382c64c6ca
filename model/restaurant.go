package model

// Restaurant is the tenant root. Customer-facing routes address it by slug;
// every child row carries its id in a restaurant_id column.
type Restaurant struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Slug         string `gorm:"uniqueIndex;size:120;not null" json:"slug"`
	Name         string `gorm:"not null" json:"name"`
	Email        string `gorm:"index" json:"-"`
	Password     string `json:"-"`
	LogoURL      string `json:"logo_url"`
	AboutText    string `json:"about_text"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	InstagramURL string `json:"instagram_url"`
	FacebookURL  string `json:"facebook_url"`
	WebsiteURL   string `json:"website_url"`
	OpeningHours string `json:"opening_hours"`
}

func (Restaurant) TableName() string {
	return "restaurants"
}
