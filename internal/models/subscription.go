package models

import (
	"time"

	"github.com/google/uuid"
)

type Subscription struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;index" json:"user_id"`

	Plan   string `gorm:"size:20;not null" json:"plan"`
	Status string `gorm:"size:20;default:'active'" json:"status"`

	TrialEndsAt      *time.Time `json:"trial_ends_at"`
	CurrentPeriodEnd *time.Time `json:"current_period_end"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
