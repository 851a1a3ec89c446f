package appointment

import (
	"context"

	domain "github.com/Allain-afk/GlamQueue-sub001/internal/domain/appointment"
	"github.com/Allain-afk/GlamQueue-sub001/internal/dto"
	"github.com/Allain-afk/GlamQueue-sub001/internal/session"
)

// ListOwn returns the session user's bookings, newest first.
type ListOwn struct {
	repo domain.Repository
}

func NewListOwn(repo domain.Repository) *ListOwn {
	return &ListOwn{repo: repo}
}

func (uc *ListOwn) Execute(
	ctx context.Context,
	sess *session.Session,
) ([]dto.ClientAppointmentItem, error) {

	appointments, err := uc.repo.ListForClient(ctx, sess.UserID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ClientAppointmentItem, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.ClientAppointmentItem{
			ID:          ap.ID,
			SalonName:   ap.Salon.Name,
			ServiceName: ap.Service.Name,
			StartTime:   ap.StartTime,
			EndTime:     ap.EndTime,
			Status:      ap.Status,
			Notes:       ap.Notes,
		})
	}

	return out, nil
}
