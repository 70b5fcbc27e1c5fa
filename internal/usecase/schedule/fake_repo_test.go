package schedule

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	domain "github.com/bodyharmony/salon-scheduler/internal/domain/schedule"
	"github.com/bodyharmony/salon-scheduler/internal/httperr"
	"github.com/bodyharmony/salon-scheduler/internal/models"
)

// fakeRepo is an in-memory domain.Repository with the same conflict
// semantics as the gorm implementation.
type fakeRepo struct {
	mu sync.Mutex

	services     map[uint]models.Service
	slots        map[slotKey]*models.Slot
	appointments map[uint]*models.Appointment
	nextID       uint
}

type slotKey struct {
	employeeID uint
	date       string
	time       string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		services:     map[uint]models.Service{},
		slots:        map[slotKey]*models.Slot{},
		appointments: map[uint]*models.Appointment{},
	}
}

func (r *fakeRepo) addService(s models.Service) {
	r.services[s.ID] = s
}

func (r *fakeRepo) addFreeSlots(employeeID uint, date string, times ...string) {
	for _, tm := range times {
		k := slotKey{employeeID, date, tm}
		r.slots[k] = &models.Slot{EmployeeID: employeeID, Date: date, Time: tm}
	}
}

func (r *fakeRepo) slotBooked(employeeID uint, date, tm string) bool {
	s, ok := r.slots[slotKey{employeeID, date, tm}]
	return ok && s.IsBooked
}

// -------- Service catalog --------

func (r *fakeRepo) ResolveServices(_ context.Context, ids []uint) ([]models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Service
	for _, id := range ids {
		if s, ok := r.services[id]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

// -------- Slot store --------

func (r *fakeRepo) CreateSlots(_ context.Context, slots []models.Slot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range slots {
		s := slots[i]
		k := slotKey{s.EmployeeID, s.Date, s.Time}
		if _, ok := r.slots[k]; ok {
			continue
		}
		r.slots[k] = &s
	}
	return nil
}

func (r *fakeRepo) SetSlotsBooked(_ context.Context, employeeID uint, date string, times []string, booked bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.setSlotsBooked(employeeID, date, times, booked)
	return nil
}

func (r *fakeRepo) setSlotsBooked(employeeID uint, date string, times []string, booked bool) {
	for _, tm := range times {
		if s, ok := r.slots[slotKey{employeeID, date, tm}]; ok {
			s.IsBooked = booked
		}
	}
}

func (r *fakeRepo) ListFreeSlots(_ context.Context, employeeID uint) ([]models.Slot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Slot
	for _, s := range r.slots {
		if s.EmployeeID == employeeID && !s.IsBooked {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeRepo) DeleteSlots(_ context.Context, employeeID uint, date string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for k := range r.slots {
		if k.employeeID == employeeID && (date == "" || k.date == date) {
			delete(r.slots, k)
		}
	}
	return nil
}

// -------- Appointment ledger --------

func (r *fakeRepo) conflictExists(ap *models.Appointment, excludeID uint) bool {
	for _, other := range r.appointments {
		if other.ID == excludeID {
			continue
		}
		if other.EmployeeID != ap.EmployeeID {
			continue
		}
		if other.Status == string(domain.StatusCancelled) {
			continue
		}
		if domain.Overlaps(ap.StartTime, ap.EndTime, other.StartTime, other.EndTime) {
			return true
		}
	}
	return false
}

func (r *fakeRepo) CreateAppointmentBooked(_ context.Context, ap *models.Appointment, slotDate string, slotTimes []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.conflictExists(ap, 0) {
		return httperr.ErrBusiness("slot_conflict")
	}

	r.nextID++
	ap.ID = r.nextID

	stored := *ap
	r.appointments[ap.ID] = &stored

	r.setSlotsBooked(ap.EmployeeID, slotDate, slotTimes, true)
	return nil
}

func (r *fakeRepo) RescheduleAppointment(
	_ context.Context,
	ap *models.Appointment,
	replaceServices bool,
	oldDate string,
	oldTimes []string,
	newDate string,
	newTimes []string,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.appointments[ap.ID]
	if !ok {
		return fmt.Errorf("appointment %d not found", ap.ID)
	}

	if r.conflictExists(ap, ap.ID) {
		return httperr.ErrBusiness("slot_conflict")
	}

	stored.StartTime = ap.StartTime
	stored.EndTime = ap.EndTime
	stored.TotalDuration = ap.TotalDuration
	stored.TotalPrice = ap.TotalPrice
	if replaceServices {
		stored.Services = ap.Services
	}

	r.setSlotsBooked(ap.EmployeeID, oldDate, oldTimes, false)
	r.setSlotsBooked(ap.EmployeeID, newDate, newTimes, true)
	return nil
}

func (r *fakeRepo) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.appointments[id]
	if !ok {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	cp := *stored
	return &cp, nil
}

func (r *fakeRepo) CompletePastAppointments(_ context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for _, ap := range r.appointments {
		if ap.Status == string(domain.StatusActive) && !ap.EndTime.After(now) {
			ap.Status = string(domain.StatusCompleted)
			completedAt := now
			ap.CompletedAt = &completedAt
			n++
		}
	}
	return n, nil
}

func (r *fakeRepo) UpdateAppointmentStatus(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.appointments[ap.ID]
	if !ok {
		return fmt.Errorf("appointment %d not found", ap.ID)
	}

	stored.Status = ap.Status
	stored.CancelledAt = ap.CancelledAt
	stored.CompletedAt = ap.CompletedAt
	return nil
}

func (r *fakeRepo) ListAppointments(_ context.Context, filter domain.AppointmentFilter) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Appointment
	for _, ap := range r.appointments {
		if filter.ClientID != nil && (ap.ClientID == nil || *ap.ClientID != *filter.ClientID) {
			continue
		}
		if filter.EmployeeID != nil && ap.EmployeeID != *filter.EmployeeID {
			continue
		}
		out = append(out, *ap)
	}
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

// outageRepo simulates a store that is down: reads fail with a non-business
// error.
type outageRepo struct {
	*fakeRepo
}

func (r *outageRepo) GetAppointment(context.Context, uint) (*models.Appointment, error) {
	return nil, errors.New("dial tcp 127.0.0.1:5433: connection refused")
}

// fakeCache records slot-cache traffic.
type fakeCache struct {
	stored      map[uint]*domain.FreeSlots
	invalidated []uint
}

func newFakeCache() *fakeCache {
	return &fakeCache{stored: map[uint]*domain.FreeSlots{}}
}

func (c *fakeCache) GetFreeSlots(_ context.Context, employeeID uint) (*domain.FreeSlots, bool) {
	fs, ok := c.stored[employeeID]
	return fs, ok
}

func (c *fakeCache) SetFreeSlots(_ context.Context, employeeID uint, fs *domain.FreeSlots) {
	c.stored[employeeID] = fs
}

func (c *fakeCache) Invalidate(_ context.Context, employeeID uint) {
	delete(c.stored, employeeID)
	c.invalidated = append(c.invalidated, employeeID)
}

var _ SlotCache = (*fakeCache)(nil)
