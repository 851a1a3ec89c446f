package subscription

import (
	"context"

	"github.com/google/uuid"

	"github.com/Allain-afk/GlamQueue-sub001/internal/audit"
	domain "github.com/Allain-afk/GlamQueue-sub001/internal/domain/subscription"
	"github.com/Allain-afk/GlamQueue-sub001/internal/httperr"
	"github.com/Allain-afk/GlamQueue-sub001/internal/models"
	"github.com/Allain-afk/GlamQueue-sub001/internal/session"
	"github.com/Allain-afk/GlamQueue-sub001/internal/timezone"
)

// Grant lengths. Paid and enterprise periods are mock grants renewed by
// the external billing flow; only the trial is a one-shot.
const (
	TrialDays  = 14
	PeriodDays = 30
)

// Dispatcher is the slice of the audit pipeline this package needs.
// *audit.Dispatcher satisfies it.
type Dispatcher interface {
	Dispatch(ev audit.Event)
}

// SelectPlan creates or refreshes the admin's subscription record. The
// trial is barred once any record exists, whatever its state.
type SelectPlan struct {
	store domain.Store
	audit Dispatcher
}

func NewSelectPlan(store domain.Store, audit Dispatcher) *SelectPlan {
	return &SelectPlan{
		store: store,
		audit: audit,
	}
}

func (uc *SelectPlan) Execute(
	ctx context.Context,
	sess *session.Session,
	planName string,
) (*models.Subscription, error) {

	if !sess.Role.IsAdmin() {
		return nil, httperr.ErrBusiness("not_permitted")
	}

	plan, err := domain.ParsePlan(planName)
	if err != nil {
		return nil, err
	}

	existing, err := uc.store.LatestForUser(ctx, sess.UserID)
	if err != nil {
		return nil, err
	}

	if plan == domain.PlanTrial && existing != nil {
		return nil, httperr.ErrBusiness("trial_already_used")
	}

	sub := existing
	if sub == nil {
		sub = &models.Subscription{
			ID:     uuid.New(),
			UserID: sess.UserID,
		}
	}

	now := timezone.Now()
	sub.Plan = string(plan)
	sub.Status = string(domain.StatusActive)

	switch plan {
	case domain.PlanTrial:
		ends := now.AddDate(0, 0, TrialDays)
		sub.TrialEndsAt = &ends
		sub.CurrentPeriodEnd = nil
	default:
		ends := now.AddDate(0, 0, PeriodDays)
		sub.CurrentPeriodEnd = &ends
	}

	if err := uc.store.Save(ctx, sub); err != nil {
		return nil, err
	}

	if sess.SalonID != nil {
		uc.audit.Dispatch(audit.Event{
			SalonID:  *sess.SalonID,
			UserID:   &sess.UserID,
			Action:   "subscription_selected",
			Entity:   "subscription",
			EntityID: &sub.ID,
			Metadata: map[string]string{"plan": string(plan)},
		})
	}

	return sub, nil
}
