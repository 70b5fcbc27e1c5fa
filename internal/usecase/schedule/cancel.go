package schedule

import (
	"context"
	"time"

	"github.com/bodyharmony/salon-scheduler/internal/audit"
	domain "github.com/bodyharmony/salon-scheduler/internal/domain/schedule"
	"github.com/bodyharmony/salon-scheduler/internal/models"
	"github.com/bodyharmony/salon-scheduler/internal/timezone"
)

type Cancel struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache SlotCache

	now func() time.Time
}

func NewCancel(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache SlotCache,
) *Cancel {
	return &Cancel{
		repo:  repo,
		audit: audit,
		cache: cache,
		now:   timezone.Now,
	}
}

// Execute frees the slots the appointment booked and marks it cancelled. The
// interval comes from the stored snapshot totals, not live service data, so
// later service edits cannot shift which slots are released. Safe to repeat.
func (uc *Cancel) Execute(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	// The repository reports a missing row as appointment_not_found; any
	// other error is a store failure and passes through untranslated.
	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	slotDate := domain.SlotDate(ap.StartTime)
	slotTimes := domain.Ticks(ap.StartTime, ap.TotalDuration)

	if err := uc.repo.SetSlotsBooked(ctx, ap.EmployeeID, slotDate, slotTimes, false); err != nil {
		return nil, err
	}

	domain.Cancel(ap, uc.now())

	if err := uc.repo.UpdateAppointmentStatus(ctx, ap); err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.Invalidate(ctx, ap.EmployeeID)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   ap.ClientID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
