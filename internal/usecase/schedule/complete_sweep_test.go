package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/bodyharmony/salon-scheduler/internal/models"
)

func TestCompleteSweep_FlipsPastActiveExactlyOnce(t *testing.T) {
	repo := newFakeRepo()
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)

	cancelledAt := now.Add(-2 * time.Hour)
	repo.appointments[1] = &models.Appointment{
		ID:      1,
		Status:  "active",
		EndTime: now.Add(-time.Hour),
	}
	repo.appointments[2] = &models.Appointment{
		ID:      2,
		Status:  "active",
		EndTime: now.Add(time.Hour),
	}
	repo.appointments[3] = &models.Appointment{
		ID:          3,
		Status:      "cancelled",
		EndTime:     now.Add(-time.Hour),
		CancelledAt: &cancelledAt,
	}

	uc := NewCompleteSweep(repo)
	uc.now = func() time.Time { return now }

	n, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 completion, got %d", n)
	}

	past := repo.appointments[1]
	if past.Status != "completed" || past.CompletedAt == nil {
		t.Fatalf("past active appointment not completed: %+v", past)
	}
	firstCompletedAt := *past.CompletedAt

	if repo.appointments[2].Status != "active" {
		t.Fatalf("upcoming appointment flipped: %+v", repo.appointments[2])
	}
	if repo.appointments[3].Status != "cancelled" || repo.appointments[3].CompletedAt != nil {
		t.Fatalf("cancelled appointment touched by sweep: %+v", repo.appointments[3])
	}

	// Reruns find nothing: completed rows never match again.
	later := now.Add(10 * time.Minute)
	uc.now = func() time.Time { return later }

	n, err = uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 0 {
		t.Fatalf("rerun completed %d appointment(s)", n)
	}
	if !repo.appointments[1].CompletedAt.Equal(firstCompletedAt) {
		t.Fatalf("rerun moved the completion timestamp")
	}
}
