package schedule

import (
	"context"
	"time"

	domain "github.com/bodyharmony/salon-scheduler/internal/domain/schedule"
	"github.com/bodyharmony/salon-scheduler/internal/timezone"
)

type CompleteSweep struct {
	repo domain.Repository

	now func() time.Time
}

func NewCompleteSweep(repo domain.Repository) *CompleteSweep {
	return &CompleteSweep{
		repo: repo,
		now:  timezone.Now,
	}
}

// Execute persists completion for active appointments whose interval has
// fully passed. Safe to rerun: completed and cancelled rows never match.
func (uc *CompleteSweep) Execute(ctx context.Context) (int64, error) {
	return uc.repo.CompletePastAppointments(ctx, uc.now())
}
