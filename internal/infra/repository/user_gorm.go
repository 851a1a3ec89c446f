package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/Allain-afk/GlamQueue-sub001/internal/httperr"
	"github.com/Allain-afk/GlamQueue-sub001/internal/models"
)

type UserGormStore struct {
	db *gorm.DB
}

func NewUserGormStore(db *gorm.DB) *UserGormStore {
	return &UserGormStore{db: db}
}

// CreateSalonWithOwner registers a salon and its admin account in one
// transaction; a half-registered salon is worse than none.
func (s *UserGormStore) CreateSalonWithOwner(
	ctx context.Context,
	salon *models.Salon,
	owner *models.User,
) error {

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(salon).Error; err != nil {
			return err
		}
		owner.SalonID = &salon.ID
		return tx.Create(owner).Error
	})

	if err != nil {
		return mapUserUniqueViolation(err)
	}
	return nil
}

func (s *UserGormStore) CreateUser(ctx context.Context, user *models.User) error {
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return mapUserUniqueViolation(err)
	}
	return nil
}

// GetUserByEmail returns (nil, nil) when no account matches, so login can
// treat a missing account and a bad password the same way.
func (s *UserGormStore) GetUserByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {

	var user models.User
	err := s.db.WithContext(ctx).
		Where("LOWER(email) = LOWER(?)", email).
		First(&user).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserGormStore) GetUserByID(
	ctx context.Context,
	id uuid.UUID,
) (*models.User, error) {

	var user models.User
	if err := s.db.WithContext(ctx).
		Where("id = ?", id).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserGormStore) ConfirmEmail(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Update("email_confirmed", true).Error
}

// mapUserUniqueViolation distinguishes the two unique indexes the
// registration path can trip over.
func mapUserUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return err
	}

	if strings.Contains(pgErr.ConstraintName, "slug") {
		return httperr.ErrBusiness("slug_already_exists")
	}
	return httperr.ErrBusiness("email_already_exists")
}
