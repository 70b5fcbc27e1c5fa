package schedule

import (
	"context"
	"time"

	"github.com/bodyharmony/salon-scheduler/internal/audit"
	domain "github.com/bodyharmony/salon-scheduler/internal/domain/schedule"
	"github.com/bodyharmony/salon-scheduler/internal/httperr"
	"github.com/bodyharmony/salon-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type RescheduleInput struct {
	AppointmentID uint

	// nil keeps the current snapshot list.
	ServiceIDs []uint
	// nil keeps the current start time.
	Start *time.Time
}

// ======================================================
// USE CASE
// ======================================================

type Reschedule struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache SlotCache
}

func NewReschedule(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache SlotCache,
) *Reschedule {
	return &Reschedule{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

// Execute moves an active appointment and/or replaces its service snapshots.
// The conflict guard runs again against the new interval (excluding the
// appointment itself) and slot state is re-reconciled: old ticks freed, new
// ticks booked, all in one atomic step.
func (uc *Reschedule) Execute(
	ctx context.Context,
	in RescheduleInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, in.AppointmentID)
	if err != nil {
		return nil, err
	}

	if err := domain.CanReschedule(domain.Status(ap.Status)); err != nil {
		return nil, err
	}

	oldDate := domain.SlotDate(ap.StartTime)
	oldTimes := domain.Ticks(ap.StartTime, ap.TotalDuration)

	replaceServices := false
	if in.ServiceIDs != nil {
		if len(in.ServiceIDs) == 0 {
			return nil, httperr.ErrBusiness("invalid_service_selection")
		}
		services, err := uc.repo.ResolveServices(ctx, in.ServiceIDs)
		if err != nil {
			return nil, err
		}
		if len(services) != len(in.ServiceIDs) {
			return nil, httperr.ErrBusiness("invalid_service_selection")
		}

		snapshots, totalDuration, totalPrice := domain.Snapshot(services)
		ap.Services = snapshots
		ap.TotalDuration = totalDuration
		ap.TotalPrice = totalPrice
		replaceServices = true
	}

	if in.Start != nil {
		ap.StartTime = *in.Start
	}
	ap.EndTime = ap.StartTime.Add(time.Duration(ap.TotalDuration) * time.Minute)

	newDate := domain.SlotDate(ap.StartTime)
	newTimes := domain.Ticks(ap.StartTime, ap.TotalDuration)

	if err := uc.repo.RescheduleAppointment(
		ctx,
		ap,
		replaceServices,
		oldDate,
		oldTimes,
		newDate,
		newTimes,
	); err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.Invalidate(ctx, ap.EmployeeID)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   ap.ClientID,
		Action:   "appointment_rescheduled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
