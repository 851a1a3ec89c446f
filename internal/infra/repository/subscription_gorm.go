package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/Allain-afk/GlamQueue-sub001/internal/domain/subscription"
	"github.com/Allain-afk/GlamQueue-sub001/internal/models"
)

type SubscriptionGormStore struct {
	db *gorm.DB
}

func NewSubscriptionGormStore(db *gorm.DB) *SubscriptionGormStore {
	return &SubscriptionGormStore{db: db}
}

func (s *SubscriptionGormStore) LatestForUser(
	ctx context.Context,
	userID uuid.UUID,
) (*models.Subscription, error) {

	var sub models.Subscription
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&sub).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &sub, nil
}

func (s *SubscriptionGormStore) Save(
	ctx context.Context,
	sub *models.Subscription,
) error {
	return s.db.WithContext(ctx).Save(sub).Error
}

// Compile-time check
var _ domain.Store = (*SubscriptionGormStore)(nil)
