package schedule

import (
	"time"

	"github.com/bodyharmony/salon-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Cancel marks the appointment cancelled. Repeating it on an already
// cancelled appointment re-sets the same state and is harmless.
func Cancel(ap *models.Appointment, now time.Time) {
	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}

// EffectiveStatus derives the status an appointment should report at a given
// moment without mutating storage: an active appointment whose interval has
// fully passed reads as completed.
func EffectiveStatus(ap *models.Appointment, now time.Time) Status {
	if Status(ap.Status) == StatusActive && !ap.EndTime.After(now) {
		return StatusCompleted
	}
	return Status(ap.Status)
}

// Snapshot freezes the selected services' duration and price into the
// appointment and recomputes the totals.
func Snapshot(services []models.Service) (entries []models.AppointmentService, totalDuration int, totalPrice float64) {
	entries = make([]models.AppointmentService, 0, len(services))
	for _, s := range services {
		entries = append(entries, models.AppointmentService{
			ServiceID:   s.ID,
			DurationMin: s.DurationMin,
			Price:       s.Price,
		})
		totalDuration += s.DurationMin
		totalPrice += s.Price
	}
	return entries, totalDuration, totalPrice
}
