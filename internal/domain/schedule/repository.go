package schedule

import (
	"context"
	"time"

	"github.com/bodyharmony/salon-scheduler/internal/models"
)

type AppointmentFilter struct {
	ClientID   *uint
	EmployeeID *uint
}

type Repository interface {
	// -------- Service catalog --------
	ResolveServices(
		ctx context.Context,
		ids []uint,
	) ([]models.Service, error)

	// -------- Slot store --------
	CreateSlots(
		ctx context.Context,
		slots []models.Slot,
	) error

	SetSlotsBooked(
		ctx context.Context,
		employeeID uint,
		date string,
		times []string,
		booked bool,
	) error

	ListFreeSlots(
		ctx context.Context,
		employeeID uint,
	) ([]models.Slot, error)

	DeleteSlots(
		ctx context.Context,
		employeeID uint,
		date string,
	) error

	// -------- Appointment ledger --------

	// CreateAppointmentBooked runs the conflict guard, persists the
	// appointment, and marks its slots booked as one atomic step.
	CreateAppointmentBooked(
		ctx context.Context,
		ap *models.Appointment,
		slotDate string,
		slotTimes []string,
	) error

	// RescheduleAppointment re-runs the conflict guard (excluding the
	// appointment itself), persists the new interval/snapshots, frees the
	// old slots and books the new ones as one atomic step.
	RescheduleAppointment(
		ctx context.Context,
		ap *models.Appointment,
		replaceServices bool,
		oldDate string,
		oldTimes []string,
		newDate string,
		newTimes []string,
	) error

	// GetAppointment returns the appointment_not_found business error for a
	// missing row; any other error is a store failure.
	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	// CompletePastAppointments flips active appointments whose interval has
	// fully passed to completed, returning how many rows changed.
	CompletePastAppointments(
		ctx context.Context,
		now time.Time,
	) (int64, error)

	UpdateAppointmentStatus(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListAppointments(
		ctx context.Context,
		filter AppointmentFilter,
	) ([]models.Appointment, error)
}
