package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/Allain-afk/GlamQueue-sub001/internal/audit"
	domain "github.com/Allain-afk/GlamQueue-sub001/internal/domain/appointment"
	"github.com/Allain-afk/GlamQueue-sub001/internal/httperr"
	"github.com/Allain-afk/GlamQueue-sub001/internal/models"
	"github.com/Allain-afk/GlamQueue-sub001/internal/session"
	"github.com/Allain-afk/GlamQueue-sub001/internal/timezone"
)

// CancelOwn is the client-side cancellation. The write is a single
// conditional UPDATE scoped to the owning client and to the cancellable
// statuses, so two concurrent cancels can never both succeed.
type CancelOwn struct {
	repo  domain.Repository
	audit Dispatcher
}

func NewCancelOwn(repo domain.Repository, audit Dispatcher) *CancelOwn {
	return &CancelOwn{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CancelOwn) Execute(
	ctx context.Context,
	sess *session.Session,
	appointmentID uuid.UUID,
) (*models.Appointment, error) {

	rows, err := uc.repo.CancelOwn(ctx, appointmentID, sess.UserID, timezone.Now())
	if err != nil {
		return nil, err
	}

	// Zero rows means the appointment is missing, belongs to someone
	// else, or already reached a terminal status. One extra read tells
	// the caller which.
	if rows == 0 {
		ap, err := uc.repo.GetAppointment(ctx, appointmentID)
		if err != nil {
			return nil, httperr.ErrBusiness("appointment_not_found")
		}
		if ap.ClientID != sess.UserID {
			return nil, httperr.ErrBusiness("not_permitted")
		}
		return nil, httperr.ErrBusiness("invalid_state")
	}

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  ap.SalonID,
		UserID:   &sess.UserID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
