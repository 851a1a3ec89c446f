package subscription

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/Allain-afk/GlamQueue-sub001/internal/domain/subscription"
	"github.com/Allain-afk/GlamQueue-sub001/internal/timezone"
)

// CheckAccess recomputes the access decision from the latest subscription
// record on every call. Nothing is cached; callers that cannot get an
// answer fail closed.
type CheckAccess struct {
	store domain.Store
}

func NewCheckAccess(store domain.Store) *CheckAccess {
	return &CheckAccess{store: store}
}

func (uc *CheckAccess) Execute(
	ctx context.Context,
	userID uuid.UUID,
) (domain.Access, error) {

	sub, err := uc.store.LatestForUser(ctx, userID)
	if err != nil {
		return domain.Access{}, err
	}

	return domain.Evaluate(sub, timezone.Now()), nil
}
