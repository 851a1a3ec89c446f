package appointment

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Allain-afk/GlamQueue-sub001/internal/audit"
	domain "github.com/Allain-afk/GlamQueue-sub001/internal/domain/appointment"
	"github.com/Allain-afk/GlamQueue-sub001/internal/domain/role"
	"github.com/Allain-afk/GlamQueue-sub001/internal/httperr"
	"github.com/Allain-afk/GlamQueue-sub001/internal/models"
	"github.com/Allain-afk/GlamQueue-sub001/internal/session"
)

var errNotFound = errors.New("record not found")

// ----- audit -----

type fakeAudit struct {
	events []audit.Event
}

func (f *fakeAudit) Dispatch(ev audit.Event) {
	f.events = append(f.events, ev)
}

func (f *fakeAudit) actions() []string {
	out := make([]string, 0, len(f.events))
	for _, ev := range f.events {
		out = append(out, ev.Action)
	}
	return out
}

// ----- repository -----

// fakeRepo keeps everything in maps and slices and mimics the SQL
// behaviour the usecases rely on: scoped lookups, the conditional
// client-side cancel, and the active-at-slot count.
type fakeRepo struct {
	salons       []*models.Salon
	services     []*models.Service
	appointments map[uuid.UUID]*models.Appointment

	countErr  error
	createErr error

	created []uuid.UUID
	updated int
	deleted []uuid.UUID
}

var _ domain.Repository = (*fakeRepo)(nil)

func newFakeRepo() *fakeRepo {
	return &fakeRepo{appointments: make(map[uuid.UUID]*models.Appointment)}
}

func (f *fakeRepo) addSalon(name, slug, tz string) *models.Salon {
	s := &models.Salon{ID: uuid.New(), Name: name, Slug: slug, Timezone: tz}
	f.salons = append(f.salons, s)
	return s
}

func (f *fakeRepo) addService(salonID uuid.UUID, name string, durationMin int) *models.Service {
	svc := &models.Service{
		ID:          uuid.New(),
		SalonID:     salonID,
		Name:        name,
		DurationMin: durationMin,
		Active:      true,
	}
	f.services = append(f.services, svc)
	return svc
}

func (f *fakeRepo) addAppointment(ap *models.Appointment) *models.Appointment {
	if ap.ID == uuid.Nil {
		ap.ID = uuid.New()
	}
	f.appointments[ap.ID] = ap
	return ap
}

func (f *fakeRepo) GetSalonByID(_ context.Context, id uuid.UUID) (*models.Salon, error) {
	for _, s := range f.salons {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, errNotFound
}

func (f *fakeRepo) GetSalonBySlug(_ context.Context, slug string) (*models.Salon, error) {
	for _, s := range f.salons {
		if s.Slug == slug {
			return s, nil
		}
	}
	return nil, errNotFound
}

func (f *fakeRepo) FindSalonByName(_ context.Context, name string) (*models.Salon, error) {
	var matches []*models.Salon
	for _, s := range f.salons {
		if strings.EqualFold(s.Name, name) {
			matches = append(matches, s)
		}
	}
	switch len(matches) {
	case 0:
		return nil, httperr.ErrBusiness("salon_not_found")
	case 1:
		return matches[0], nil
	}
	return nil, httperr.ErrBusiness("ambiguous_name")
}

func (f *fakeRepo) GetService(_ context.Context, salonID, serviceID uuid.UUID) (*models.Service, error) {
	for _, svc := range f.services {
		if svc.ID == serviceID && svc.SalonID == salonID {
			return svc, nil
		}
	}
	return nil, errNotFound
}

func (f *fakeRepo) FindServiceByName(_ context.Context, salonID uuid.UUID, name string) (*models.Service, error) {
	var matches []*models.Service
	for _, svc := range f.services {
		if svc.SalonID == salonID && strings.EqualFold(svc.Name, name) {
			matches = append(matches, svc)
		}
	}
	switch len(matches) {
	case 0:
		return nil, httperr.ErrBusiness("service_not_found")
	case 1:
		return matches[0], nil
	}
	return nil, httperr.ErrBusiness("ambiguous_name")
}

func (f *fakeRepo) ListActiveServices(_ context.Context, salonID uuid.UUID, category, query string) ([]models.Service, error) {
	out := make([]models.Service, 0)
	for _, svc := range f.services {
		if svc.SalonID != salonID || !svc.Active {
			continue
		}
		if category != "" && svc.Category != category {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(svc.Name), strings.ToLower(query)) {
			continue
		}
		out = append(out, *svc)
	}
	return out, nil
}

func (f *fakeRepo) ListBookedStartTimes(_ context.Context, salonID, serviceID uuid.UUID, dayStart, dayEnd time.Time) ([]time.Time, error) {
	var out []time.Time
	for _, ap := range f.appointments {
		if ap.SalonID != salonID || ap.ServiceID != serviceID {
			continue
		}
		if ap.Status == string(domain.StatusCancelled) {
			continue
		}
		if ap.StartTime.Before(dayStart) || !ap.StartTime.Before(dayEnd) {
			continue
		}
		out = append(out, ap.StartTime)
	}
	return out, nil
}

func (f *fakeRepo) CountActiveAtSlot(_ context.Context, salonID, serviceID uuid.UUID, start time.Time) (int64, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	var n int64
	for _, ap := range f.appointments {
		if ap.SalonID != salonID || ap.ServiceID != serviceID || !ap.StartTime.Equal(start) {
			continue
		}
		if ap.Status == string(domain.StatusPending) || ap.Status == string(domain.StatusConfirmed) {
			n++
		}
	}
	return n, nil
}

func (f *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.appointments[ap.ID] = ap
	f.created = append(f.created, ap.ID)
	return nil
}

func (f *fakeRepo) GetAppointment(_ context.Context, id uuid.UUID) (*models.Appointment, error) {
	ap, ok := f.appointments[id]
	if !ok {
		return nil, errNotFound
	}
	return ap, nil
}

func (f *fakeRepo) GetAppointmentForSalon(_ context.Context, id, salonID uuid.UUID) (*models.Appointment, error) {
	ap, ok := f.appointments[id]
	if !ok || ap.SalonID != salonID {
		return nil, errNotFound
	}
	return ap, nil
}

func (f *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	f.appointments[ap.ID] = ap
	f.updated++
	return nil
}

func (f *fakeRepo) CancelOwn(_ context.Context, id, clientID uuid.UUID, now time.Time) (int64, error) {
	ap, ok := f.appointments[id]
	if !ok || ap.ClientID != clientID {
		return 0, nil
	}
	if ap.Status != string(domain.StatusPending) && ap.Status != string(domain.StatusConfirmed) {
		return 0, nil
	}
	ap.Status = string(domain.StatusCancelled)
	ap.CancelledAt = &now
	return 1, nil
}

func (f *fakeRepo) DeleteAppointment(_ context.Context, id uuid.UUID) error {
	delete(f.appointments, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeRepo) ListForPeriod(_ context.Context, salonID uuid.UUID, start, end time.Time) ([]models.Appointment, error) {
	out := make([]models.Appointment, 0)
	for _, ap := range f.appointments {
		if ap.SalonID != salonID {
			continue
		}
		if ap.StartTime.Before(start) || !ap.StartTime.Before(end) {
			continue
		}
		out = append(out, *ap)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

func (f *fakeRepo) ListForClient(_ context.Context, clientID uuid.UUID) ([]models.Appointment, error) {
	out := make([]models.Appointment, 0)
	for _, ap := range f.appointments {
		if ap.ClientID == clientID {
			out = append(out, *ap)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.After(out[j].StartTime) })
	return out, nil
}

// ----- fixtures -----

// seedSalon wires a salon pinned to UTC so test clock math never depends
// on the machine's zone database beyond the built-in UTC.
func seedSalon(t *testing.T) (*fakeRepo, *models.Salon, *models.Service) {
	t.Helper()
	repo := newFakeRepo()
	salon := repo.addSalon("Glam Studio", "glam-studio", "UTC")
	service := repo.addService(salon.ID, "Haircut", 45)
	return repo, salon, service
}

func staffSession(salonID uuid.UUID) *session.Session {
	return &session.Session{UserID: uuid.New(), SalonID: &salonID, Role: role.Staff}
}

func adminSession(salonID uuid.UUID) *session.Session {
	return &session.Session{UserID: uuid.New(), SalonID: &salonID, Role: role.Admin}
}

func clientSession() *session.Session {
	return &session.Session{UserID: uuid.New(), Role: role.Client}
}
