package schedule

import (
	"context"
	"sort"

	domain "github.com/bodyharmony/salon-scheduler/internal/domain/schedule"
	"github.com/bodyharmony/salon-scheduler/internal/models"
)

type ListFreeSlots struct {
	repo  domain.Repository
	cache SlotCache
}

func NewListFreeSlots(repo domain.Repository, cache SlotCache) *ListFreeSlots {
	return &ListFreeSlots{repo: repo, cache: cache}
}

// Execute returns all unbooked slots for an employee grouped by date. An
// unknown employee yields an empty result, not an error.
func (uc *ListFreeSlots) Execute(
	ctx context.Context,
	employeeID uint,
) (*domain.FreeSlots, error) {

	if uc.cache != nil {
		if fs, ok := uc.cache.GetFreeSlots(ctx, employeeID); ok {
			return fs, nil
		}
	}

	slots, err := uc.repo.ListFreeSlots(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	fs := groupSlots(slots)

	if uc.cache != nil {
		uc.cache.SetFreeSlots(ctx, employeeID, fs)
	}

	return fs, nil
}

func groupSlots(slots []models.Slot) *domain.FreeSlots {
	fs := &domain.FreeSlots{
		AvailableDates: []string{},
		Slots:          map[string][]string{},
	}

	for _, s := range slots {
		if _, ok := fs.Slots[s.Date]; !ok {
			fs.AvailableDates = append(fs.AvailableDates, s.Date)
		}
		fs.Slots[s.Date] = append(fs.Slots[s.Date], s.Time)
	}

	sort.Strings(fs.AvailableDates)
	for _, times := range fs.Slots {
		sort.Strings(times)
	}

	return fs
}
