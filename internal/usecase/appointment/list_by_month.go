package appointment

import (
	"context"
	"time"

	domain "github.com/Allain-afk/GlamQueue-sub001/internal/domain/appointment"
	"github.com/Allain-afk/GlamQueue-sub001/internal/dto"
	"github.com/Allain-afk/GlamQueue-sub001/internal/httperr"
	"github.com/Allain-afk/GlamQueue-sub001/internal/session"
	"github.com/Allain-afk/GlamQueue-sub001/internal/timezone"
)

// ListByMonth returns every appointment of the session's salon over one
// calendar month. The dashboard uses it to paint the month grid.
type ListByMonth struct {
	repo domain.Repository
}

func NewListByMonth(repo domain.Repository) *ListByMonth {
	return &ListByMonth{repo: repo}
}

func (uc *ListByMonth) Execute(
	ctx context.Context,
	sess *session.Session,
	year int,
	month int,
) ([]dto.AppointmentListItem, error) {

	if !sess.Role.CanManageAppointments() || sess.SalonID == nil {
		return nil, httperr.ErrBusiness("not_permitted")
	}

	if year < 2000 || year > 2100 || month < 1 || month > 12 {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	salon, err := uc.repo.GetSalonByID(ctx, *sess.SalonID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(salon.Timezone)

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0)

	appointments, err := uc.repo.ListForPeriod(ctx, salon.ID, start, end)
	if err != nil {
		return nil, err
	}

	return toListItems(appointments), nil
}
