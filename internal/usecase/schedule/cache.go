package schedule

import (
	"context"

	domain "github.com/bodyharmony/salon-scheduler/internal/domain/schedule"
)

// SlotCache caches free-slot listings per employee. Implementations must
// degrade silently; a cache outage never fails a request.
type SlotCache interface {
	GetFreeSlots(ctx context.Context, employeeID uint) (*domain.FreeSlots, bool)
	SetFreeSlots(ctx context.Context, employeeID uint, fs *domain.FreeSlots)
	Invalidate(ctx context.Context, employeeID uint)
}
