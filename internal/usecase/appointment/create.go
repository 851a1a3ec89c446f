package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Allain-afk/GlamQueue-sub001/internal/audit"
	domain "github.com/Allain-afk/GlamQueue-sub001/internal/domain/appointment"
	"github.com/Allain-afk/GlamQueue-sub001/internal/httperr"
	"github.com/Allain-afk/GlamQueue-sub001/internal/models"
	"github.com/Allain-afk/GlamQueue-sub001/internal/timezone"
)

// Dispatcher is the slice of the audit pipeline the usecases need.
// *audit.Dispatcher satisfies it.
type Dispatcher interface {
	Dispatch(ev audit.Event)
}

// ======================================================
// INPUT
// ======================================================

type CreateInput struct {
	SalonID   string
	ServiceID string

	ClientID uuid.UUID

	Date  string // "2006-01-02"
	Time  string // "3:04 PM" or "15:04"
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

// Create is the single appointment creation path. Every booking, whether
// it comes from the client app or from a replayed landing-page intent,
// goes through here.
type Create struct {
	repo  domain.Repository
	audit Dispatcher
}

func NewCreate(repo domain.Repository, audit Dispatcher) *Create {
	return &Create{
		repo:  repo,
		audit: audit,
	}
}

func (uc *Create) Execute(
	ctx context.Context,
	in CreateInput,
) (*models.Appointment, error) {

	// 1) Identifiers must be well formed before anything is read.
	salonID, err := uuid.Parse(in.SalonID)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_identifier")
	}
	serviceID, err := uuid.Parse(in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_identifier")
	}

	// 2) Salon and service, scoped together.
	salon, err := uc.repo.GetSalonByID(ctx, salonID)
	if err != nil {
		return nil, httperr.ErrBusiness("salon_not_found")
	}

	service, err := uc.repo.GetService(ctx, salon.ID, serviceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	// 3) Start time in the salon's wall clock, on the booking grid,
	// strictly in the future.
	start, err := parseStart(salon, in.Date, in.Time)
	if err != nil {
		return nil, err
	}

	if err := domain.InWindow(start.Hour(), start.Minute()); err != nil {
		return nil, err
	}

	now := timezone.NowIn(salon.Timezone)
	if !start.After(now) {
		return nil, httperr.ErrBusiness("past_slot")
	}

	// 4) Best-effort collision pre-check. The partial unique index on
	// (salon_id, service_id, start_time) has the last word on races.
	taken, err := uc.repo.CountActiveAtSlot(ctx, salon.ID, service.ID, start)
	if err != nil {
		return nil, err
	}
	if taken > 0 {
		return nil, httperr.ErrBusiness("slot_taken")
	}

	// 5) Every new appointment starts pending. The end time is derived
	// from the service duration and is informational only.
	ap := &models.Appointment{
		ID:        uuid.New(),
		SalonID:   salon.ID,
		ServiceID: service.ID,
		ClientID:  in.ClientID,
		StartTime: start,
		EndTime:   start.Add(time.Duration(service.DurationMin) * time.Minute),
		Status:    string(domain.InitialStatus()),
		Notes:     in.Notes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  salon.ID,
		UserID:   &in.ClientID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

// parseStart combines a calendar date and a wall-clock time in the
// salon's timezone.
func parseStart(salon *models.Salon, dateStr, timeStr string) (time.Time, error) {
	loc := timezone.Location(salon.Timezone)

	day, err := time.ParseInLocation("2006-01-02", dateStr, loc)
	if err != nil {
		return time.Time{}, httperr.ErrBusiness("invalid_date_or_time")
	}

	hour, minute, err := domain.ParseClock(timeStr)
	if err != nil {
		return time.Time{}, err
	}

	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, loc), nil
}
