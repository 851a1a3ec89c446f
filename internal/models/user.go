package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID      uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	SalonID *uuid.UUID `gorm:"type:uuid" json:"salon_id"`
	Salon   *Salon     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"salon,omitempty"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`
	Role         string `gorm:"size:20;default:'client'" json:"role"`

	EmailConfirmed bool `gorm:"default:false" json:"email_confirmed"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
