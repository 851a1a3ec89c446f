package subscription

import (
	"context"

	"github.com/google/uuid"

	"github.com/Allain-afk/GlamQueue-sub001/internal/models"
)

type Store interface {
	// LatestForUser returns (nil, nil) when the user has no record.
	LatestForUser(
		ctx context.Context,
		userID uuid.UUID,
	) (*models.Subscription, error)

	Save(
		ctx context.Context,
		sub *models.Subscription,
	) error
}
