package models

import "time"

// Availability is one weekday of a contractor's recurring schedule.
// Times are wall-clock "15:04" strings anchored onto a concrete date
// at slot-generation time. A missing row means the day is closed.
type Availability struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex:idx_availability_user_weekday" json:"user_id"`

	Weekday int `gorm:"uniqueIndex:idx_availability_user_weekday" json:"weekday"`

	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
