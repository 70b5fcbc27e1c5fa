package schedule

import (
	"testing"
	"time"

	"github.com/bodyharmony/salon-scheduler/internal/models"
)

func TestSlotsNeeded(t *testing.T) {
	cases := []struct {
		durationMin int
		want        int
	}{
		{0, 0},
		{-15, 0},
		{30, 1},
		{45, 2},
		{60, 2},
		{90, 3},
	}

	for _, tc := range cases {
		if got := SlotsNeeded(tc.durationMin); got != tc.want {
			t.Fatalf("SlotsNeeded(%d) = %d, want %d", tc.durationMin, got, tc.want)
		}
	}
}

func TestTicks(t *testing.T) {
	start := time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC)

	ticks := Ticks(start, 90)
	want := []string{"14:00", "14:30", "15:00"}

	if len(ticks) != len(want) {
		t.Fatalf("expected %d ticks, got %v", len(want), ticks)
	}
	for i := range want {
		if ticks[i] != want[i] {
			t.Fatalf("tick %d: expected %s, got %s", i, want[i], ticks[i])
		}
	}
}

func TestTicks_PartialSlotStillCovered(t *testing.T) {
	start := time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC)

	// 45 minutes ends at 14:45, inside the 14:30 unit.
	ticks := Ticks(start, 45)
	if len(ticks) != 2 || ticks[0] != "14:00" || ticks[1] != "14:30" {
		t.Fatalf("expected [14:00 14:30], got %v", ticks)
	}
}

func TestNextTick(t *testing.T) {
	got, err := NextTick("14:00", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "15:00" {
		t.Fatalf("expected 15:00, got %s", got)
	}

	if _, err := NextTick("not-a-time", 1); err == nil {
		t.Fatalf("expected error for malformed time")
	}
}

func TestOverlaps(t *testing.T) {
	at := func(h, m int) time.Time {
		return time.Date(2025, 6, 1, h, m, 0, 0, time.UTC)
	}

	cases := []struct {
		name         string
		aStart, aEnd time.Time
		bStart, bEnd time.Time
		want         bool
	}{
		{"identical", at(14, 0), at(15, 0), at(14, 0), at(15, 0), true},
		{"partial", at(14, 0), at(15, 0), at(14, 30), at(15, 30), true},
		{"contained", at(14, 0), at(16, 0), at(14, 30), at(15, 0), true},
		{"touching end", at(14, 0), at(15, 0), at(15, 0), at(16, 0), false},
		{"touching start", at(15, 0), at(16, 0), at(14, 0), at(15, 0), false},
		{"disjoint", at(10, 0), at(11, 0), at(14, 0), at(15, 0), false},
	}

	for _, tc := range cases {
		if got := Overlaps(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd); got != tc.want {
			t.Fatalf("%s: Overlaps = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestEffectiveStatus(t *testing.T) {
	now := time.Date(2025, 6, 1, 16, 0, 0, 0, time.UTC)

	past := &models.Appointment{
		Status:  string(StatusActive),
		EndTime: now.Add(-time.Hour),
	}
	if got := EffectiveStatus(past, now); got != StatusCompleted {
		t.Fatalf("past active appointment: expected completed, got %s", got)
	}

	upcoming := &models.Appointment{
		Status:  string(StatusActive),
		EndTime: now.Add(time.Hour),
	}
	if got := EffectiveStatus(upcoming, now); got != StatusActive {
		t.Fatalf("upcoming appointment: expected active, got %s", got)
	}

	// Cancelled never reads as completed, no matter how old.
	cancelled := &models.Appointment{
		Status:  string(StatusCancelled),
		EndTime: now.Add(-time.Hour),
	}
	if got := EffectiveStatus(cancelled, now); got != StatusCancelled {
		t.Fatalf("cancelled appointment: expected cancelled, got %s", got)
	}
}

func TestCancelIsIdempotent(t *testing.T) {
	now := time.Date(2025, 6, 1, 16, 0, 0, 0, time.UTC)

	ap := &models.Appointment{Status: string(StatusActive)}

	Cancel(ap, now)
	if ap.Status != string(StatusCancelled) || ap.CancelledAt == nil {
		t.Fatalf("expected cancelled with timestamp, got %+v", ap)
	}

	later := now.Add(time.Hour)
	Cancel(ap, later)
	if ap.Status != string(StatusCancelled) {
		t.Fatalf("repeat cancel changed status to %s", ap.Status)
	}
}

func TestComplete_TerminalStatesRejected(t *testing.T) {
	now := time.Date(2025, 6, 1, 16, 0, 0, 0, time.UTC)

	for _, status := range []Status{StatusCancelled, StatusCompleted} {
		ap := &models.Appointment{Status: string(status)}
		if err := Complete(ap, now); err == nil {
			t.Fatalf("expected invalid_state for %s appointment", status)
		}
	}

	ap := &models.Appointment{Status: string(StatusActive)}
	if err := Complete(ap, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ap.Status != string(StatusCompleted) || ap.CompletedAt == nil {
		t.Fatalf("expected completed with timestamp, got %+v", ap)
	}
}

func TestSnapshot(t *testing.T) {
	services := []models.Service{
		{ID: 1, Name: "Massage", DurationMin: 60, Price: 1500},
		{ID: 2, Name: "Wrap", DurationMin: 30, Price: 800},
	}

	entries, totalDuration, totalPrice := Snapshot(services)

	if totalDuration != 90 {
		t.Fatalf("expected total duration 90, got %d", totalDuration)
	}
	if totalPrice != 2300 {
		t.Fatalf("expected total price 2300, got %v", totalPrice)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 snapshot entries, got %d", len(entries))
	}
	if entries[0].ServiceID != 1 || entries[0].DurationMin != 60 || entries[0].Price != 1500 {
		t.Fatalf("unexpected first snapshot: %+v", entries[0])
	}
}
