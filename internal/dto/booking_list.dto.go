package dto

import "time"

type BookingListDTO struct {
	ID           uint      `json:"id"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	Status       string    `json:"status"`
	CustomerName string    `json:"customer_name"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	Description  string    `json:"description"`
}
