package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domain "github.com/Allain-afk/GlamQueue-sub001/internal/domain/appointment"
	"github.com/Allain-afk/GlamQueue-sub001/internal/httperr"
	"github.com/Allain-afk/GlamQueue-sub001/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Salon
// --------------------------------------------------

func (r *AppointmentGormRepository) GetSalonByID(
	ctx context.Context,
	id uuid.UUID,
) (*models.Salon, error) {

	var salon models.Salon
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&salon).Error; err != nil {
		return nil, err
	}
	return &salon, nil
}

func (r *AppointmentGormRepository) GetSalonBySlug(
	ctx context.Context,
	slug string,
) (*models.Salon, error) {

	var salon models.Salon
	if err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&salon).Error; err != nil {
		return nil, err
	}
	return &salon, nil
}

func (r *AppointmentGormRepository) FindSalonByName(
	ctx context.Context,
	name string,
) (*models.Salon, error) {

	var salons []models.Salon
	if err := r.db.WithContext(ctx).
		Where("LOWER(name) = ?", strings.ToLower(strings.TrimSpace(name))).
		Limit(2).
		Find(&salons).Error; err != nil {
		return nil, err
	}

	if len(salons) == 0 {
		return nil, httperr.ErrBusiness("salon_not_found")
	}
	if len(salons) > 1 {
		return nil, httperr.ErrBusiness("ambiguous_name")
	}
	return &salons[0], nil
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	salonID uuid.UUID,
	serviceID uuid.UUID,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ?", serviceID, salonID).
		First(&service).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *AppointmentGormRepository) FindServiceByName(
	ctx context.Context,
	salonID uuid.UUID,
	name string,
) (*models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where(
			"salon_id = ? AND LOWER(name) = ?",
			salonID,
			strings.ToLower(strings.TrimSpace(name)),
		).
		Limit(2).
		Find(&services).Error; err != nil {
		return nil, err
	}

	if len(services) == 0 {
		return nil, httperr.ErrBusiness("service_not_found")
	}
	if len(services) > 1 {
		return nil, httperr.ErrBusiness("ambiguous_name")
	}
	return &services[0], nil
}

func (r *AppointmentGormRepository) ListActiveServices(
	ctx context.Context,
	salonID uuid.UUID,
	category string,
	query string,
) ([]models.Service, error) {

	q := r.db.WithContext(ctx).
		Where("salon_id = ? AND active = true", salonID)

	if category != "" {
		q = q.Where("LOWER(category) = ?", strings.ToLower(category))
	}

	if query != "" {
		like := "%" + strings.ToLower(query) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var services []models.Service
	if err := q.Order("name ASC").Find(&services).Error; err != nil {
		return nil, err
	}

	return services, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *AppointmentGormRepository) ListBookedStartTimes(
	ctx context.Context,
	salonID uuid.UUID,
	serviceID uuid.UUID,
	dayStart time.Time,
	dayEnd time.Time,
) ([]time.Time, error) {

	var starts []time.Time
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"salon_id = ? AND service_id = ? AND status <> 'cancelled' AND start_time >= ? AND start_time < ?",
			salonID, serviceID, dayStart, dayEnd,
		).
		Order("start_time ASC").
		Pluck("start_time", &starts).Error; err != nil {
		return nil, err
	}

	return starts, nil
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

func (r *AppointmentGormRepository) CountActiveAtSlot(
	ctx context.Context,
	salonID uuid.UUID,
	serviceID uuid.UUID,
	start time.Time,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"salon_id = ? AND service_id = ? AND status IN ('pending', 'confirmed') AND start_time = ?",
			salonID, serviceID, start,
		).
		Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	if err := r.db.WithContext(ctx).Create(ap).Error; err != nil {
		// The partial unique index on (salon_id, service_id, start_time)
		// turns a create race into a constraint violation.
		if isUniqueViolation(err) {
			return httperr.ErrBusiness("slot_taken")
		}
		return err
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id uuid.UUID,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) GetAppointmentForSalon(
	ctx context.Context,
	id uuid.UUID,
	salonID uuid.UUID,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ?", id, salonID).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *AppointmentGormRepository) CancelOwn(
	ctx context.Context,
	id uuid.UUID,
	clientID uuid.UUID,
	now time.Time,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"id = ? AND client_id = ? AND status IN ('pending', 'confirmed')",
			id, clientID,
		).
		Updates(map[string]any{
			"status":       "cancelled",
			"cancelled_at": now,
		})

	return res.RowsAffected, res.Error
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	id uuid.UUID,
) error {
	return r.db.WithContext(ctx).
		Delete(&models.Appointment{}, "id = ?", id).Error
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *AppointmentGormRepository) ListForPeriod(
	ctx context.Context,
	salonID uuid.UUID,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var aps []models.Appointment

	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		Preload("Staff").
		Where(
			"salon_id = ? AND start_time >= ? AND start_time < ?",
			salonID,
			start,
			end,
		).
		Order("start_time ASC").
		Find(&aps).Error

	if err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *AppointmentGormRepository) ListForClient(
	ctx context.Context,
	clientID uuid.UUID,
) ([]models.Appointment, error) {

	var aps []models.Appointment

	err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Salon").
		Where("client_id = ?", clientID).
		Order("start_time DESC").
		Find(&aps).Error

	if err != nil {
		return nil, err
	}

	return aps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
