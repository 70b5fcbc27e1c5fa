package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/bodyharmony/salon-scheduler/internal/httperr"
)

func TestGenerateSlots_Defaults(t *testing.T) {
	repo := newFakeRepo()
	uc := NewGenerateSlots(repo, nil, nil)
	uc.now = func() time.Time {
		return time.Date(2030, 1, 10, 9, 0, 0, 0, time.UTC)
	}

	created, err := uc.Execute(context.Background(), GenerateSlotsInput{EmployeeID: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 7 days x 16 half-hour units (10:00 through 17:30).
	if created != 112 {
		t.Fatalf("expected 112 slots, got %d", created)
	}

	if _, ok := repo.slots[slotKey{5, "2030-01-10", "10:00"}]; !ok {
		t.Fatalf("first slot of day one missing")
	}
	if _, ok := repo.slots[slotKey{5, "2030-01-10", "17:30"}]; !ok {
		t.Fatalf("last slot of day one missing")
	}
	if _, ok := repo.slots[slotKey{5, "2030-01-10", "18:00"}]; ok {
		t.Fatalf("closing time must not be a slot")
	}
	if _, ok := repo.slots[slotKey{5, "2030-01-16", "10:00"}]; !ok {
		t.Fatalf("day seven missing")
	}
	if _, ok := repo.slots[slotKey{5, "2030-01-17", "10:00"}]; ok {
		t.Fatalf("day eight should not exist")
	}
}

func TestGenerateSlots_InvalidWindow(t *testing.T) {
	uc := NewGenerateSlots(newFakeRepo(), nil, nil)

	_, err := uc.Execute(context.Background(), GenerateSlotsInput{
		EmployeeID: 5,
		StartHour:  14,
		EndHour:    12,
	})
	if !httperr.IsBusiness(err, "invalid_slot_window") {
		t.Fatalf("expected invalid_slot_window, got %v", err)
	}
}

func TestGenerateSlots_RerunKeepsBookedState(t *testing.T) {
	repo := newFakeRepo()
	uc := NewGenerateSlots(repo, nil, nil)
	uc.now = func() time.Time {
		return time.Date(2030, 1, 10, 9, 0, 0, 0, time.UTC)
	}

	in := GenerateSlotsInput{EmployeeID: 5, DaysAhead: 1}
	if _, err := uc.Execute(context.Background(), in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	repo.setSlotsBooked(5, "2030-01-10", []string{"14:00"}, true)

	if _, err := uc.Execute(context.Background(), in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !repo.slotBooked(5, "2030-01-10", "14:00") {
		t.Fatalf("rerun reset a booked slot")
	}
}
