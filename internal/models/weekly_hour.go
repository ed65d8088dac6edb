package models

import "time"

// WeeklyHour is the recurring operating schedule for one weekday.
// At most one row exists per (business, day_of_week); the weekly-hours
// update endpoint replaces the whole week in one shot.
type WeeklyHour struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	BusinessID uint `gorm:"index:idx_business_weekday,unique" json:"business_id"`

	DayOfWeek int `gorm:"index:idx_business_weekday,unique" json:"day_of_week"` // 0 = Sunday ... 6 = Saturday

	OpenTime  string `gorm:"size:5" json:"open_time"`  // "HH:MM", 24h
	CloseTime string `gorm:"size:5" json:"close_time"` // "HH:MM", 24h
	IsActive  bool   `json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
