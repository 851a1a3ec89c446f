package appointment

import (
	"context"
	"time"

	domain "github.com/Allain-afk/GlamQueue-sub001/internal/domain/appointment"
	"github.com/Allain-afk/GlamQueue-sub001/internal/dto"
	"github.com/Allain-afk/GlamQueue-sub001/internal/httperr"
	"github.com/Allain-afk/GlamQueue-sub001/internal/models"
	"github.com/Allain-afk/GlamQueue-sub001/internal/session"
	"github.com/Allain-afk/GlamQueue-sub001/internal/timezone"
)

// ListByDate returns every appointment of the session's salon on one
// calendar day, bounded by the salon's wall clock.
type ListByDate struct {
	repo domain.Repository
}

func NewListByDate(repo domain.Repository) *ListByDate {
	return &ListByDate{repo: repo}
}

func (uc *ListByDate) Execute(
	ctx context.Context,
	sess *session.Session,
	date string,
) ([]dto.AppointmentListItem, error) {

	if !sess.Role.CanManageAppointments() || sess.SalonID == nil {
		return nil, httperr.ErrBusiness("not_permitted")
	}

	salon, err := uc.repo.GetSalonByID(ctx, *sess.SalonID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(salon.Timezone)

	day, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc)
	end := start.AddDate(0, 0, 1)

	appointments, err := uc.repo.ListForPeriod(ctx, salon.ID, start, end)
	if err != nil {
		return nil, err
	}

	return toListItems(appointments), nil
}

func toListItems(appointments []models.Appointment) []dto.AppointmentListItem {
	out := make([]dto.AppointmentListItem, 0, len(appointments))
	for _, ap := range appointments {
		item := dto.AppointmentListItem{
			ID:          ap.ID,
			StartTime:   ap.StartTime,
			EndTime:     ap.EndTime,
			Status:      ap.Status,
			ClientName:  ap.Client.Name,
			ServiceName: ap.Service.Name,
			Notes:       ap.Notes,
		}
		if ap.Staff != nil {
			item.StaffName = ap.Staff.Name
		}
		out = append(out, item)
	}
	return out
}
