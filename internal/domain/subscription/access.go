package subscription

import (
	"math"
	"time"

	"github.com/Allain-afk/GlamQueue-sub001/internal/httperr"
	"github.com/Allain-afk/GlamQueue-sub001/internal/models"
)

// ===============================
// Plans and statuses
// ===============================

type Plan string

const (
	PlanTrial      Plan = "trial"
	PlanPaid       Plan = "paid"
	PlanEnterprise Plan = "enterprise"
)

func ParsePlan(s string) (Plan, error) {
	switch Plan(s) {
	case PlanTrial, PlanPaid, PlanEnterprise:
		return Plan(s), nil
	}
	return "", httperr.ErrBusiness("invalid_plan")
}

type Status string

const (
	StatusActive    Status = "active"
	StatusExpired   Status = "expired"
	StatusCancelled Status = "cancelled"
	StatusSuspended Status = "suspended"
)

// ===============================
// Access decision
// ===============================

// Access is the derived view of a subscription record. It is computed on
// every check and never stored.
type Access struct {
	Found         bool       `json:"found"`
	Plan          Plan       `json:"plan,omitempty"`
	Status        Status     `json:"status,omitempty"`
	TrialEndsAt   *time.Time `json:"trial_ends_at,omitempty"`
	HasAccess     bool       `json:"has_access"`
	DaysRemaining int        `json:"days_remaining"`
}

// Evaluate derives the access decision from a subscription record.
// A nil record means the user never selected a plan.
func Evaluate(sub *models.Subscription, now time.Time) Access {
	if sub == nil {
		return Access{Found: false}
	}

	access := Access{
		Found:       true,
		Plan:        Plan(sub.Plan),
		Status:      Status(sub.Status),
		TrialEndsAt: sub.TrialEndsAt,
	}

	if access.Status != StatusActive {
		return access
	}

	switch access.Plan {
	case PlanTrial:
		if sub.TrialEndsAt != nil && sub.TrialEndsAt.After(now) {
			access.HasAccess = true
			access.DaysRemaining = daysUntil(*sub.TrialEndsAt, now)
		}
	case PlanPaid, PlanEnterprise:
		if sub.CurrentPeriodEnd == nil {
			access.HasAccess = true
		} else if sub.CurrentPeriodEnd.After(now) {
			access.HasAccess = true
			access.DaysRemaining = daysUntil(*sub.CurrentPeriodEnd, now)
		}
	}

	return access
}

// daysUntil counts whole days left, rounding partial days up.
func daysUntil(end, now time.Time) int {
	remaining := end.Sub(now)
	if remaining <= 0 {
		return 0
	}
	return int(math.Ceil(remaining.Hours() / 24))
}
