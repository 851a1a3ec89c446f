package intent

import (
	"context"
	"time"

	"github.com/google/uuid"

	domainappt "github.com/Allain-afk/GlamQueue-sub001/internal/domain/appointment"
	"github.com/Allain-afk/GlamQueue-sub001/internal/domain/intent"
	"github.com/Allain-afk/GlamQueue-sub001/internal/httperr"
)

// ======================================================
// INPUT
// ======================================================

type CaptureInput struct {
	VisitorKey string

	ServiceName string
	SalonName   string

	Date string // "2006-01-02"
	Time string // "3:04 PM" or "15:04"

	ClientName     string
	ClientPhone    string
	AdvanceBooking bool
}

// ======================================================
// USE CASE
// ======================================================

// Capture stores the slot selection an unauthenticated visitor made on
// the landing page. Names stay human-readable; resolution to ids happens
// only when the intent is replayed after authentication.
type Capture struct {
	store intent.Store
}

func NewCapture(store intent.Store) *Capture {
	return &Capture{store: store}
}

func (uc *Capture) Execute(ctx context.Context, in CaptureInput) (string, error) {

	if in.ServiceName == "" || in.SalonName == "" ||
		in.Date == "" || in.Time == "" ||
		in.ClientName == "" || in.ClientPhone == "" {
		return "", httperr.ErrBusiness("missing_params")
	}

	// Cheap shape checks now save a doomed replay later.
	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return "", httperr.ErrBusiness("invalid_date_or_time")
	}
	if _, _, err := domainappt.ParseClock(in.Time); err != nil {
		return "", err
	}

	visitorKey := in.VisitorKey
	if visitorKey == "" {
		visitorKey = uuid.NewString()
	}

	pending := &intent.PendingBooking{
		ServiceName:    in.ServiceName,
		SalonName:      in.SalonName,
		Date:           in.Date,
		Time:           in.Time,
		ClientName:     in.ClientName,
		ClientPhone:    in.ClientPhone,
		AdvanceBooking: in.AdvanceBooking,
		CreatedAt:      time.Now().UTC(),
	}

	if err := uc.store.Set(ctx, visitorKey, pending); err != nil {
		return "", err
	}

	return visitorKey, nil
}
