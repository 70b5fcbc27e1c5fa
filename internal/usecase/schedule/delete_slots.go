package schedule

import (
	"context"

	"github.com/bodyharmony/salon-scheduler/internal/audit"
	domain "github.com/bodyharmony/salon-scheduler/internal/domain/schedule"
)

type DeleteSlots struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache SlotCache
}

func NewDeleteSlots(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache SlotCache,
) *DeleteSlots {
	return &DeleteSlots{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

// Execute removes an employee's slots, optionally restricted to one date.
// Slot rows are otherwise never deleted; this is the explicit employee action.
func (uc *DeleteSlots) Execute(
	ctx context.Context,
	employeeID uint,
	date string,
) error {

	if err := uc.repo.DeleteSlots(ctx, employeeID, date); err != nil {
		return err
	}

	if uc.cache != nil {
		uc.cache.Invalidate(ctx, employeeID)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &employeeID,
		Action:   "slots_deleted",
		Entity:   "slot",
		Metadata: map[string]any{"date": date},
	})

	return nil
}
