package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Allain-afk/GlamQueue-sub001/internal/models"
)

type Repository interface {
	// -------- Salon --------
	GetSalonByID(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Salon, error)

	GetSalonBySlug(
		ctx context.Context,
		slug string,
	) (*models.Salon, error)

	// FindSalonByName matches the salon name case-insensitively and
	// requires exactly one match.
	FindSalonByName(
		ctx context.Context,
		name string,
	) (*models.Salon, error)

	// -------- Service --------
	GetService(
		ctx context.Context,
		salonID uuid.UUID,
		serviceID uuid.UUID,
	) (*models.Service, error)

	// FindServiceByName matches within one salon, case-insensitively,
	// and requires exactly one match.
	FindServiceByName(
		ctx context.Context,
		salonID uuid.UUID,
		name string,
	) (*models.Service, error)

	// ListActiveServices is the public catalog read. Category and query
	// filters are optional.
	ListActiveServices(
		ctx context.Context,
		salonID uuid.UUID,
		category string,
		query string,
	) ([]models.Service, error)

	// -------- Availability --------
	ListBookedStartTimes(
		ctx context.Context,
		salonID uuid.UUID,
		serviceID uuid.UUID,
		dayStart time.Time,
		dayEnd time.Time,
	) ([]time.Time, error)

	// -------- Appointment (create / conflict) --------
	CountActiveAtSlot(
		ctx context.Context,
		salonID uuid.UUID,
		serviceID uuid.UUID,
		start time.Time,
	) (int64, error)

	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (state change) --------
	GetAppointment(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Appointment, error)

	GetAppointmentForSalon(
		ctx context.Context,
		id uuid.UUID,
		salonID uuid.UUID,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// CancelOwn writes the cancellation in one conditional statement
	// scoped to the owning client and the non-terminal statuses. It
	// returns the number of rows hit.
	CancelOwn(
		ctx context.Context,
		id uuid.UUID,
		clientID uuid.UUID,
		now time.Time,
	) (int64, error)

	DeleteAppointment(
		ctx context.Context,
		id uuid.UUID,
	) error

	// -------- Listing --------
	ListForPeriod(
		ctx context.Context,
		salonID uuid.UUID,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	ListForClient(
		ctx context.Context,
		clientID uuid.UUID,
	) ([]models.Appointment, error)
}
