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

// Complete marks a confirmed appointment as completed and stamps the
// completion time in the salon's timezone.
type Complete struct {
	repo  domain.Repository
	audit Dispatcher
}

func NewComplete(repo domain.Repository, audit Dispatcher) *Complete {
	return &Complete{
		repo:  repo,
		audit: audit,
	}
}

func (uc *Complete) Execute(
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

	if err := domain.Complete(ap, timezone.NowIn(salon.Timezone)); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  ap.SalonID,
		UserID:   &sess.UserID,
		Action:   "appointment_completed",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
