package models

import "time"

type Team struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;not null" json:"name"`
	Slug string `gorm:"size:100;uniqueIndex;not null" json:"slug"`

	Timezone          string `gorm:"size:64" json:"timezone"`
	MinAdvanceMinutes int    `gorm:"default:0" json:"min_advance_minutes"`
	SlotDurationMin   int    `gorm:"default:60" json:"slot_duration_min"`

	// Opaque key the embeddable widget sends on public requests.
	WidgetKey string `gorm:"size:36;uniqueIndex;not null" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
