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

type BookInput struct {
	// Either a registered client...
	ClientID *uint
	// ...or an external walk-in booked on a client's behalf.
	ExternalName  string
	ExternalPhone string

	EmployeeID uint
	ServiceIDs []uint
	Start      time.Time
}

// ======================================================
// USE CASE
// ======================================================

type Book struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache SlotCache
}

func NewBook(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache SlotCache,
) *Book {
	return &Book{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *Book) Execute(
	ctx context.Context,
	in BookInput,
) (*models.Appointment, error) {

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
	end := in.Start.Add(time.Duration(totalDuration) * time.Minute)

	ap := &models.Appointment{
		ClientID:      in.ClientID,
		ExternalName:  in.ExternalName,
		ExternalPhone: in.ExternalPhone,
		EmployeeID:    in.EmployeeID,
		Services:      snapshots,
		TotalDuration: totalDuration,
		TotalPrice:    totalPrice,
		StartTime:     in.Start,
		EndTime:       end,
		Status:        string(domain.InitialStatus()),
	}

	slotDate := domain.SlotDate(in.Start)
	slotTimes := domain.Ticks(in.Start, totalDuration)

	// Conflict guard, appointment row and slot flags commit together.
	if err := uc.repo.CreateAppointmentBooked(ctx, ap, slotDate, slotTimes); err != nil {
		if httperr.IsBusiness(err, "slot_conflict") {
			uc.audit.Dispatch(audit.Event{
				UserID: in.ClientID,
				Action: "appointment_conflict",
				Entity: "appointment",
				Metadata: map[string]any{
					"employee_id": in.EmployeeID,
					"start":       in.Start,
					"end":         end,
				},
			})
		}
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.Invalidate(ctx, in.EmployeeID)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.ClientID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
