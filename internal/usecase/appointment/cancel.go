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

// Cancel is the staff-side cancellation. Clients cancel their own
// appointments through CancelOwn instead.
type Cancel struct {
	repo  domain.Repository
	audit Dispatcher
}

func NewCancel(repo domain.Repository, audit Dispatcher) *Cancel {
	return &Cancel{
		repo:  repo,
		audit: audit,
	}
}

func (uc *Cancel) Execute(
	ctx context.Context,
	sess *session.Session,
	appointmentID uuid.UUID,
) (*models.Appointment, error) {

	if !sess.Role.CanManageAppointments() || sess.SalonID == nil {
		return nil, httperr.ErrBusiness("not_permitted")
	}

	salon, err := uc.repo.GetSalonByID(ctx, *sess.SalonID)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointmentForSalon(ctx, appointmentID, salon.ID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.Cancel(ap, timezone.NowIn(salon.Timezone)); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
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
