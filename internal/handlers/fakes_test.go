package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Allain-afk/GlamQueue-sub001/internal/audit"
	domain "github.com/Allain-afk/GlamQueue-sub001/internal/domain/appointment"
	"github.com/Allain-afk/GlamQueue-sub001/internal/domain/intent"
	"github.com/Allain-afk/GlamQueue-sub001/internal/domain/login"
	"github.com/Allain-afk/GlamQueue-sub001/internal/domain/role"
	subdomain "github.com/Allain-afk/GlamQueue-sub001/internal/domain/subscription"
	"github.com/Allain-afk/GlamQueue-sub001/internal/httperr"
	"github.com/Allain-afk/GlamQueue-sub001/internal/models"
)

var errNotFound = errors.New("record not found")

// ----- user store -----

type fakeUserStore struct {
	users  map[uuid.UUID]*models.User
	salons []*models.Salon

	confirmed []uuid.UUID
}

var _ UserStore = (*fakeUserStore)(nil)

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[uuid.UUID]*models.User)}
}

func (f *fakeUserStore) CreateSalonWithOwner(_ context.Context, salon *models.Salon, owner *models.User) error {
	for _, s := range f.salons {
		if s.Slug == salon.Slug {
			return httperr.ErrBusiness("slug_already_exists")
		}
	}
	if err := f.checkEmailFree(owner.Email); err != nil {
		return err
	}
	owner.SalonID = &salon.ID
	f.salons = append(f.salons, salon)
	f.users[owner.ID] = owner
	return nil
}

func (f *fakeUserStore) CreateUser(_ context.Context, user *models.User) error {
	if err := f.checkEmailFree(user.Email); err != nil {
		return err
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserStore) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) GetUserByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, errNotFound
	}
	return u, nil
}

func (f *fakeUserStore) ConfirmEmail(_ context.Context, id uuid.UUID) error {
	u, ok := f.users[id]
	if !ok {
		return errNotFound
	}
	u.EmailConfirmed = true
	f.confirmed = append(f.confirmed, id)
	return nil
}

func (f *fakeUserStore) checkEmailFree(email string) error {
	for _, u := range f.users {
		if strings.EqualFold(u.Email, email) {
			return httperr.ErrBusiness("email_already_exists")
		}
	}
	return nil
}

// seedUser registers a ready-made account. MinCost keeps the hashing out
// of the test runtime.
func (f *fakeUserStore) seedUser(t *testing.T, email, password string, r role.Role, confirmed bool) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	u := &models.User{
		ID:             uuid.New(),
		Name:           "Test User",
		Email:          email,
		PasswordHash:   string(hash),
		Role:           r.String(),
		EmailConfirmed: confirmed,
	}
	f.users[u.ID] = u
	return u
}

// ----- ticket store -----

type fakeTicketStore struct {
	tickets  map[string]login.Ticket
	confirms map[string]login.ConfirmToken
}

var _ login.TicketStore = (*fakeTicketStore)(nil)

func newFakeTicketStore() *fakeTicketStore {
	return &fakeTicketStore{
		tickets:  make(map[string]login.Ticket),
		confirms: make(map[string]login.ConfirmToken),
	}
}

func (f *fakeTicketStore) SaveTicket(_ context.Context, t login.Ticket) error {
	f.tickets[t.ID] = t
	return nil
}

func (f *fakeTicketStore) ConsumeTicket(_ context.Context, id string) (*login.Ticket, error) {
	t, ok := f.tickets[id]
	if !ok {
		return nil, nil
	}
	delete(f.tickets, id)
	return &t, nil
}

func (f *fakeTicketStore) SaveConfirmToken(_ context.Context, t login.ConfirmToken) error {
	f.confirms[t.Token] = t
	return nil
}

func (f *fakeTicketStore) ConsumeConfirmToken(_ context.Context, token string) (*login.ConfirmToken, error) {
	t, ok := f.confirms[token]
	if !ok {
		return nil, nil
	}
	delete(f.confirms, token)
	return &t, nil
}

func (f *fakeTicketStore) onlyTicket(t *testing.T) login.Ticket {
	t.Helper()
	require.Len(t, f.tickets, 1)
	for _, ticket := range f.tickets {
		return ticket
	}
	return login.Ticket{}
}

func (f *fakeTicketStore) onlyConfirm(t *testing.T) login.ConfirmToken {
	t.Helper()
	require.Len(t, f.confirms, 1)
	for _, confirm := range f.confirms {
		return confirm
	}
	return login.ConfirmToken{}
}

// ----- intent store -----

type fakeIntentStore struct {
	items map[string]*intent.PendingBooking
}

var _ intent.Store = (*fakeIntentStore)(nil)

func newFakeIntentStore() *fakeIntentStore {
	return &fakeIntentStore{items: make(map[string]*intent.PendingBooking)}
}

func (f *fakeIntentStore) Get(_ context.Context, visitorKey string) (*intent.PendingBooking, error) {
	return f.items[visitorKey], nil
}

func (f *fakeIntentStore) Set(_ context.Context, visitorKey string, p *intent.PendingBooking) error {
	f.items[visitorKey] = p
	return nil
}

func (f *fakeIntentStore) Remove(_ context.Context, visitorKey string) error {
	delete(f.items, visitorKey)
	return nil
}

// ----- appointment repository -----

// fakeRepo covers the slices of the repository the public and auth
// surfaces touch; the state-change methods are never reached from here
// and stay inert.
type fakeRepo struct {
	salons       []*models.Salon
	services     []*models.Service
	appointments map[uuid.UUID]*models.Appointment

	created []*models.Appointment
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
	for _, s := range f.salons {
		if strings.EqualFold(s.Name, name) {
			return s, nil
		}
	}
	return nil, httperr.ErrBusiness("salon_not_found")
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
	for _, svc := range f.services {
		if svc.SalonID == salonID && strings.EqualFold(svc.Name, name) {
			return svc, nil
		}
	}
	return nil, httperr.ErrBusiness("service_not_found")
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
	f.appointments[ap.ID] = ap
	f.created = append(f.created, ap)
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
	return nil
}

func (f *fakeRepo) CancelOwn(_ context.Context, _, _ uuid.UUID, _ time.Time) (int64, error) {
	return 0, nil
}

func (f *fakeRepo) DeleteAppointment(_ context.Context, id uuid.UUID) error {
	delete(f.appointments, id)
	return nil
}

func (f *fakeRepo) ListForPeriod(_ context.Context, _ uuid.UUID, _, _ time.Time) ([]models.Appointment, error) {
	return nil, nil
}

func (f *fakeRepo) ListForClient(_ context.Context, _ uuid.UUID) ([]models.Appointment, error) {
	return nil, nil
}

// ----- audit and access gate -----

type fakeAudit struct {
	events []audit.Event
}

func (f *fakeAudit) Dispatch(ev audit.Event) {
	f.events = append(f.events, ev)
}

type fakeGate struct {
	access subdomain.Access
	err    error
}

func (f *fakeGate) Execute(_ context.Context, _ uuid.UUID) (subdomain.Access, error) {
	if f.err != nil {
		return subdomain.Access{}, f.err
	}
	return f.access, nil
}

// ----- http helpers -----

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func doGET(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())
	return out
}
