package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/bodyharmony/salon-scheduler/internal/domain/schedule"
	"github.com/bodyharmony/salon-scheduler/internal/httperr"
	"github.com/bodyharmony/salon-scheduler/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

// --------------------------------------------------
// Service catalog
// --------------------------------------------------

func (r *ScheduleGormRepository) ResolveServices(
	ctx context.Context,
	ids []uint,
) ([]models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// --------------------------------------------------
// Slot store
// --------------------------------------------------

func (r *ScheduleGormRepository) CreateSlots(
	ctx context.Context,
	slots []models.Slot,
) error {

	if len(slots) == 0 {
		return nil
	}

	// Existing (employee, date, time) rows are silently skipped.
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&slots).Error
}

func (r *ScheduleGormRepository) SetSlotsBooked(
	ctx context.Context,
	employeeID uint,
	date string,
	times []string,
	booked bool,
) error {

	if len(times) == 0 {
		return nil
	}

	// Advisory update-by-filter: rows that were never generated are skipped.
	return r.db.WithContext(ctx).
		Model(&models.Slot{}).
		Where("employee_id = ? AND date = ? AND time IN ?", employeeID, date, times).
		Update("is_booked", booked).Error
}

func (r *ScheduleGormRepository) ListFreeSlots(
	ctx context.Context,
	employeeID uint,
) ([]models.Slot, error) {

	var slots []models.Slot
	if err := r.db.WithContext(ctx).
		Where("employee_id = ? AND is_booked = ?", employeeID, false).
		Order("date ASC, time ASC").
		Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *ScheduleGormRepository) DeleteSlots(
	ctx context.Context,
	employeeID uint,
	date string,
) error {

	q := r.db.WithContext(ctx).Where("employee_id = ?", employeeID)
	if date != "" {
		q = q.Where("date = ?", date)
	}
	return q.Delete(&models.Slot{}).Error
}

// --------------------------------------------------
// Appointment ledger
// --------------------------------------------------

func (r *ScheduleGormRepository) CreateAppointmentBooked(
	ctx context.Context,
	ap *models.Appointment,
	slotDate string,
	slotTimes []string,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var conflicts []models.Appointment
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"employee_id = ? AND status <> ? AND start_time < ? AND end_time > ?",
				ap.EmployeeID, string(domain.StatusCancelled), ap.EndTime, ap.StartTime,
			).
			Find(&conflicts).Error; err != nil {
			return err
		}

		if len(conflicts) > 0 {
			return httperr.ErrBusiness("slot_conflict")
		}

		if err := tx.Create(ap).Error; err != nil {
			return err
		}

		return setSlotsBookedTx(tx, ap.EmployeeID, slotDate, slotTimes, true)
	})

	// The exclusion constraint catches writers racing past the lock check.
	if httperr.IsExclusionConflict(err) {
		return httperr.ErrBusiness("slot_conflict")
	}
	return err
}

func (r *ScheduleGormRepository) RescheduleAppointment(
	ctx context.Context,
	ap *models.Appointment,
	replaceServices bool,
	oldDate string,
	oldTimes []string,
	newDate string,
	newTimes []string,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var conflicts []models.Appointment
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"id <> ? AND employee_id = ? AND status <> ? AND start_time < ? AND end_time > ?",
				ap.ID, ap.EmployeeID, string(domain.StatusCancelled), ap.EndTime, ap.StartTime,
			).
			Find(&conflicts).Error; err != nil {
			return err
		}

		if len(conflicts) > 0 {
			return httperr.ErrBusiness("slot_conflict")
		}

		if replaceServices {
			if err := tx.
				Where("appointment_id = ?", ap.ID).
				Delete(&models.AppointmentService{}).Error; err != nil {
				return err
			}
			for i := range ap.Services {
				ap.Services[i].ID = 0
				ap.Services[i].AppointmentID = ap.ID
			}
			if err := tx.Create(&ap.Services).Error; err != nil {
				return err
			}
		}

		if err := tx.Model(&models.Appointment{}).
			Where("id = ?", ap.ID).
			Updates(map[string]any{
				"start_time":     ap.StartTime,
				"end_time":       ap.EndTime,
				"total_duration": ap.TotalDuration,
				"total_price":    ap.TotalPrice,
			}).Error; err != nil {
			return err
		}

		if err := setSlotsBookedTx(tx, ap.EmployeeID, oldDate, oldTimes, false); err != nil {
			return err
		}
		return setSlotsBookedTx(tx, ap.EmployeeID, newDate, newTimes, true)
	})

	if httperr.IsExclusionConflict(err) {
		return httperr.ErrBusiness("slot_conflict")
	}
	return err
}

func setSlotsBookedTx(tx *gorm.DB, employeeID uint, date string, times []string, booked bool) error {
	if len(times) == 0 {
		return nil
	}
	return tx.Model(&models.Slot{}).
		Where("employee_id = ? AND date = ? AND time IN ?", employeeID, date, times).
		Update("is_booked", booked).Error
}

func (r *ScheduleGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Employee").
		Preload("Services.Service").
		First(&ap, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("appointment_not_found")
		}
		return nil, err
	}
	return &ap, nil
}

func (r *ScheduleGormRepository) CompletePastAppointments(
	ctx context.Context,
	now time.Time,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("status = ? AND end_time <= ?", string(domain.StatusActive), now).
		Updates(map[string]any{
			"status":       string(domain.StatusCompleted),
			"completed_at": now,
		})

	return res.RowsAffected, res.Error
}

func (r *ScheduleGormRepository) UpdateAppointmentStatus(
	ctx context.Context,
	ap *models.Appointment,
) error {

	return r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", ap.ID).
		Updates(map[string]any{
			"status":       ap.Status,
			"cancelled_at": ap.CancelledAt,
			"completed_at": ap.CompletedAt,
		}).Error
}

func (r *ScheduleGormRepository) ListAppointments(
	ctx context.Context,
	filter domain.AppointmentFilter,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Employee").
		Preload("Services.Service")

	if filter.ClientID != nil {
		q = q.Where("client_id = ?", *filter.ClientID)
	}
	if filter.EmployeeID != nil {
		q = q.Where("employee_id = ?", *filter.EmployeeID)
	}

	var apps []models.Appointment
	if err := q.
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*ScheduleGormRepository)(nil)
