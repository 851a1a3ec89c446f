package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	domain "github.com/Allain-afk/GlamQueue-sub001/internal/domain/appointment"
	"github.com/Allain-afk/GlamQueue-sub001/internal/httperr"
	"github.com/Allain-afk/GlamQueue-sub001/internal/timezone"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type AvailabilityInput struct {
	SalonID   uuid.UUID
	ServiceID string
	Date      string // "2006-01-02"
}

type DaySchedule struct {
	Date  string        `json:"date"`
	Slots []domain.Slot `json:"slots"`
}

// ======================================================
// USE CASE
// ======================================================

// GetAvailability renders the slot grid for one service on one day.
// Cancelled appointments never block a slot; everything else does,
// matched on the exact start minute.
type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in AvailabilityInput,
) (*DaySchedule, error) {

	serviceID, err := uuid.Parse(in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_identifier")
	}

	salon, err := uc.repo.GetSalonByID(ctx, in.SalonID)
	if err != nil {
		return nil, httperr.ErrBusiness("salon_not_found")
	}

	service, err := uc.repo.GetService(ctx, salon.ID, serviceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	loc := timezone.Location(salon.Timezone)

	day, err := time.ParseInLocation("2006-01-02", in.Date, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc)
	dayEnd := dayStart.AddDate(0, 0, 1)

	booked, err := uc.repo.ListBookedStartTimes(ctx, salon.ID, service.ID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	// Start times come back in the database's zone; the grid compares
	// wall-clock minutes, so shift them into the salon's first.
	starts := make([]time.Time, 0, len(booked))
	for _, b := range booked {
		starts = append(starts, b.In(loc))
	}

	now := timezone.NowIn(salon.Timezone)
	slots := domain.BuildDaySchedule(day, now, starts)

	return &DaySchedule{Date: in.Date, Slots: slots}, nil
}
