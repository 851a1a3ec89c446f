package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/Allain-afk/GlamQueue-sub001/internal/audit"
	domain "github.com/Allain-afk/GlamQueue-sub001/internal/domain/appointment"
	"github.com/Allain-afk/GlamQueue-sub001/internal/httperr"
	"github.com/Allain-afk/GlamQueue-sub001/internal/session"
)

// Delete removes a terminal appointment from the books. Admins can purge
// any appointment in their salon; clients can purge their own history.
type Delete struct {
	repo  domain.Repository
	audit Dispatcher
}

func NewDelete(repo domain.Repository, audit Dispatcher) *Delete {
	return &Delete{
		repo:  repo,
		audit: audit,
	}
}

func (uc *Delete) Execute(
	ctx context.Context,
	sess *session.Session,
	appointmentID uuid.UUID,
) error {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return httperr.ErrBusiness("appointment_not_found")
	}

	asAdmin := sess.Role.CanDeleteAppointments() &&
		sess.SalonID != nil && *sess.SalonID == ap.SalonID
	asOwner := ap.ClientID == sess.UserID

	if !asAdmin && !asOwner {
		return httperr.ErrBusiness("not_permitted")
	}

	if err := domain.CanDelete(domain.Status(ap.Status)); err != nil {
		return err
	}

	if err := uc.repo.DeleteAppointment(ctx, ap.ID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  ap.SalonID,
		UserID:   &sess.UserID,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return nil
}
