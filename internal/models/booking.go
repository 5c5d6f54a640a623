package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	TeamID uint `json:"team_id"`
	Team   Team `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"team"`

	ContractorID uint `gorm:"index" json:"contractor_id"`
	Contractor   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"contractor"`

	CustomerFirstName string `gorm:"size:100;not null" json:"customer_first_name"`
	CustomerLastName  string `gorm:"size:100;not null" json:"customer_last_name"`
	CustomerEmail     string `gorm:"size:100" json:"customer_email"`

	Address     string `gorm:"size:255" json:"address"`
	City        string `gorm:"size:100" json:"city"`
	State       string `gorm:"size:50" json:"state"`
	Description string `gorm:"size:255" json:"description"`

	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	Status string `gorm:"size:20;default:'scheduled'" json:"status"`

	CancelledAt *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
