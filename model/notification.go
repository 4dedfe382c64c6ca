package model

import "time"

type Notification struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	RestaurantID uint      `gorm:"index;not null" json:"restaurant_id"`
	Title        string    `gorm:"not null" json:"title"`
	Body         string    `json:"body"`
	SentAt       time.Time `json:"sent_at"`
}

func (Notification) TableName() string {
	return "notifications"
}
