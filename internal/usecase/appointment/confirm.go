package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/Allain-afk/GlamQueue-sub001/internal/audit"
	domain "github.com/Allain-afk/GlamQueue-sub001/internal/domain/appointment"
	"github.com/Allain-afk/GlamQueue-sub001/internal/httperr"
	"github.com/Allain-afk/GlamQueue-sub001/internal/models"
	"github.com/Allain-afk/GlamQueue-sub001/internal/session"
)

// Confirm moves a pending appointment to confirmed. When nobody owns the
// appointment yet, the confirming staff member becomes the owner.
type Confirm struct {
	repo  domain.Repository
	audit Dispatcher
}

func NewConfirm(repo domain.Repository, audit Dispatcher) *Confirm {
	return &Confirm{
		repo:  repo,
		audit: audit,
	}
}

func (uc *Confirm) Execute(
	ctx context.Context,
	sess *session.Session,
	appointmentID uuid.UUID,
) (*models.Appointment, error) {

	if !sess.Role.CanManageAppointments() || sess.SalonID == nil {
		return nil, httperr.ErrBusiness("not_permitted")
	}

	ap, err := uc.repo.GetAppointmentForSalon(ctx, appointmentID, *sess.SalonID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.Confirm(ap, sess.UserID); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  ap.SalonID,
		UserID:   &sess.UserID,
		Action:   "appointment_confirmed",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
