package models

import (
	"time"

	"github.com/google/uuid"
)

type Service struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SalonID uuid.UUID `gorm:"type:uuid;index" json:"salon_id"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Description string  `gorm:"size:255" json:"description"`
	DurationMin int     `json:"duration_min"`
	Price       float64 `json:"price"`
	Rating      float64 `json:"rating"`
	Active      bool    `gorm:"default:true" json:"active"`

	Category string `gorm:"size:50" json:"category"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
