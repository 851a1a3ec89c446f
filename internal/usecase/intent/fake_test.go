package intent

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/Allain-afk/GlamQueue-sub001/internal/domain/intent"
	"github.com/Allain-afk/GlamQueue-sub001/internal/httperr"
	"github.com/Allain-afk/GlamQueue-sub001/internal/models"
	"github.com/Allain-afk/GlamQueue-sub001/internal/usecase/appointment"
)

// ----- store -----

type fakeIntentStore struct {
	items map[string]*intent.PendingBooking

	getErr    error
	setErr    error
	removeErr error

	removed []string
}

func newFakeIntentStore() *fakeIntentStore {
	return &fakeIntentStore{items: make(map[string]*intent.PendingBooking)}
}

func (f *fakeIntentStore) Get(_ context.Context, visitorKey string) (*intent.PendingBooking, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.items[visitorKey], nil
}

func (f *fakeIntentStore) Set(_ context.Context, visitorKey string, p *intent.PendingBooking) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.items[visitorKey] = p
	return nil
}

func (f *fakeIntentStore) Remove(_ context.Context, visitorKey string) error {
	f.removed = append(f.removed, visitorKey)
	if f.removeErr != nil {
		return f.removeErr
	}
	delete(f.items, visitorKey)
	return nil
}

// ----- resolver -----

type fakeResolver struct {
	salons   []*models.Salon
	services []*models.Service
}

func (f *fakeResolver) FindSalonByName(_ context.Context, name string) (*models.Salon, error) {
	for _, s := range f.salons {
		if strings.EqualFold(s.Name, name) {
			return s, nil
		}
	}
	return nil, httperr.ErrBusiness("salon_not_found")
}

func (f *fakeResolver) FindServiceByName(_ context.Context, salonID uuid.UUID, name string) (*models.Service, error) {
	for _, svc := range f.services {
		if svc.SalonID == salonID && strings.EqualFold(svc.Name, name) {
			return svc, nil
		}
	}
	return nil, httperr.ErrBusiness("service_not_found")
}

// ----- creator -----

type fakeCreator struct {
	inputs []appointment.CreateInput
	ap     *models.Appointment
	err    error
}

func (f *fakeCreator) Execute(_ context.Context, in appointment.CreateInput) (*models.Appointment, error) {
	f.inputs = append(f.inputs, in)
	if f.err != nil {
		return nil, f.err
	}
	if f.ap != nil {
		return f.ap, nil
	}
	return &models.Appointment{ID: uuid.New(), ClientID: in.ClientID, Notes: in.Notes}, nil
}
