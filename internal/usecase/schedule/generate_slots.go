package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/bodyharmony/salon-scheduler/internal/audit"
	domain "github.com/bodyharmony/salon-scheduler/internal/domain/schedule"
	"github.com/bodyharmony/salon-scheduler/internal/httperr"
	"github.com/bodyharmony/salon-scheduler/internal/models"
	"github.com/bodyharmony/salon-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type GenerateSlotsInput struct {
	EmployeeID uint

	// Zero and negative values fall back to the salon defaults (7 days,
	// 10:00-18:00). Hour 0 therefore means "default", not midnight; the
	// earliest explicit opening is 01:00.
	DaysAhead int
	StartHour int
	EndHour   int
}

// ======================================================
// USE CASE
// ======================================================

type GenerateSlots struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache SlotCache

	now func() time.Time
}

func NewGenerateSlots(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache SlotCache,
) *GenerateSlots {
	return &GenerateSlots{
		repo:  repo,
		audit: audit,
		cache: cache,
		now:   timezone.Now,
	}
}

// Execute creates the half-hour grid for the coming days. Reruns are
// idempotent: rows that already exist are silently skipped.
func (uc *GenerateSlots) Execute(
	ctx context.Context,
	in GenerateSlotsInput,
) (int, error) {

	if in.DaysAhead <= 0 {
		in.DaysAhead = domain.DefaultDaysAhead
	}
	if in.StartHour <= 0 {
		in.StartHour = domain.DefaultStartHour
	}
	if in.EndHour <= 0 {
		in.EndHour = domain.DefaultEndHour
	}
	if in.EndHour <= in.StartHour {
		return 0, httperr.ErrBusiness("invalid_slot_window")
	}

	today := uc.now()

	var slots []models.Slot
	for i := 0; i < in.DaysAhead; i++ {
		day := today.AddDate(0, 0, i)
		dateStr := day.Format(domain.DateLayout)

		cur := time.Date(day.Year(), day.Month(), day.Day(), in.StartHour, 0, 0, 0, day.Location())
		end := time.Date(day.Year(), day.Month(), day.Day(), in.EndHour, 0, 0, 0, day.Location())

		for ; cur.Before(end); cur = cur.Add(domain.SlotMinutes * time.Minute) {
			slots = append(slots, models.Slot{
				EmployeeID: in.EmployeeID,
				Date:       dateStr,
				Time:       cur.Format(domain.TimeLayout),
			})
		}
	}

	if err := uc.repo.CreateSlots(ctx, slots); err != nil {
		return 0, err
	}

	if uc.cache != nil {
		uc.cache.Invalidate(ctx, in.EmployeeID)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.EmployeeID,
		Action:   "slots_generated",
		Entity:   "slot",
		Metadata: fmt.Sprintf("%d days, %02d:00-%02d:00", in.DaysAhead, in.StartHour, in.EndHour),
	})

	return len(slots), nil
}
