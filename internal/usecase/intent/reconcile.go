package intent

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Allain-afk/GlamQueue-sub001/internal/domain/intent"
	"github.com/Allain-afk/GlamQueue-sub001/internal/models"
	"github.com/Allain-afk/GlamQueue-sub001/internal/usecase/appointment"
)

// NameResolver turns the intent's human-readable names into records.
// appointment.Repository satisfies it.
type NameResolver interface {
	FindSalonByName(ctx context.Context, name string) (*models.Salon, error)
	FindServiceByName(ctx context.Context, salonID uuid.UUID, name string) (*models.Service, error)
}

// Creator is the regular appointment creation path. The replay goes
// through it so every booking rule applies to landing-page intents too.
type Creator interface {
	Execute(ctx context.Context, in appointment.CreateInput) (*models.Appointment, error)
}

// Reconcile replays a stored booking intent right after authentication.
// It runs at most once per intent: whatever happens, the stored record is
// removed after the attempt, and failures are logged, never surfaced.
type Reconcile struct {
	store    intent.Store
	resolver NameResolver
	creator  Creator
}

func NewReconcile(store intent.Store, resolver NameResolver, creator Creator) *Reconcile {
	return &Reconcile{
		store:    store,
		resolver: resolver,
		creator:  creator,
	}
}

// Execute returns the created appointment, or nil when there was nothing
// to replay or the replay was dropped.
func (uc *Reconcile) Execute(
	ctx context.Context,
	visitorKey string,
	clientID uuid.UUID,
) *models.Appointment {

	if visitorKey == "" {
		return nil
	}

	pending, err := uc.store.Get(ctx, visitorKey)
	if err != nil {
		log.Warn().Err(err).Msg("booking intent read failed")
		return nil
	}
	if pending == nil {
		return nil
	}

	// One attempt per intent. The record is spent from here on,
	// success or failure.
	defer uc.discard(ctx, visitorKey)

	if pending.Expired(time.Now().UTC()) {
		log.Info().
			Str("visitor_key", visitorKey).
			Time("created_at", pending.CreatedAt).
			Msg("booking intent expired, discarding")
		return nil
	}

	salon, err := uc.resolver.FindSalonByName(ctx, pending.SalonName)
	if err != nil {
		log.Warn().Err(err).
			Str("salon_name", pending.SalonName).
			Msg("booking intent salon resolution failed")
		return nil
	}

	service, err := uc.resolver.FindServiceByName(ctx, salon.ID, pending.ServiceName)
	if err != nil {
		log.Warn().Err(err).
			Str("service_name", pending.ServiceName).
			Msg("booking intent service resolution failed")
		return nil
	}

	label := "Booking from landing page"
	if pending.AdvanceBooking {
		label = "Advance " + label
	}
	note := fmt.Sprintf("%s (%s, %s)", label, pending.ClientName, pending.ClientPhone)

	ap, err := uc.creator.Execute(ctx, appointment.CreateInput{
		SalonID:   salon.ID.String(),
		ServiceID: service.ID.String(),
		ClientID:  clientID,
		Date:      pending.Date,
		Time:      pending.Time,
		Notes:     note,
	})
	if err != nil {
		log.Warn().Err(err).
			Str("visitor_key", visitorKey).
			Msg("booking intent replay failed")
		return nil
	}

	log.Info().
		Str("appointment_id", ap.ID.String()).
		Str("visitor_key", visitorKey).
		Msg("booking intent replayed")

	return ap
}

func (uc *Reconcile) discard(ctx context.Context, visitorKey string) {
	if err := uc.store.Remove(ctx, visitorKey); err != nil {
		log.Warn().Err(err).
			Str("visitor_key", visitorKey).
			Msg("booking intent cleanup failed")
	}
}
