package schedule

import (
	"context"
	"sort"
	"time"

	domain "github.com/bodyharmony/salon-scheduler/internal/domain/schedule"
	"github.com/bodyharmony/salon-scheduler/internal/httperr"
	"github.com/bodyharmony/salon-scheduler/internal/timezone"
)

type Availability struct {
	repo domain.Repository

	now func() time.Time
}

func NewAvailability(repo domain.Repository) *Availability {
	return &Availability{
		repo: repo,
		now:  timezone.Now,
	}
}

// Execute derives the valid start times for the combined duration of the
// selected services. A time is a valid start only when every grid unit of the
// span is free on that date.
func (uc *Availability) Execute(
	ctx context.Context,
	employeeID uint,
	serviceIDs []uint,
) (*domain.FreeSlots, error) {

	if len(serviceIDs) == 0 {
		return nil, httperr.ErrBusiness("invalid_service_selection")
	}

	services, err := uc.repo.ResolveServices(ctx, serviceIDs)
	if err != nil {
		return nil, err
	}
	if len(services) != len(serviceIDs) {
		return nil, httperr.ErrBusiness("invalid_service_selection")
	}

	totalDuration := 0
	for _, s := range services {
		totalDuration += s.DurationMin
	}
	needed := domain.SlotsNeeded(totalDuration)

	slots, err := uc.repo.ListFreeSlots(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	free := groupSlots(slots)

	now := uc.now()
	today := now.Format(domain.DateLayout)
	nowHM := now.Format(domain.TimeLayout)

	out := &domain.FreeSlots{
		AvailableDates: []string{},
		Slots:          map[string][]string{},
	}

	for _, date := range free.AvailableDates {
		if date < today {
			continue
		}

		times := free.Slots[date]
		freeSet := make(map[string]bool, len(times))
		for _, t := range times {
			freeSet[t] = true
		}

		var starts []string
		for _, t := range times {
			// no booking into the past
			if date == today && t <= nowHM {
				continue
			}

			ok := true
			for i := 1; i < needed; i++ {
				next, err := domain.NextTick(t, i)
				if err != nil || !freeSet[next] {
					ok = false
					break
				}
			}

			if ok {
				starts = append(starts, t)
			}
		}

		if len(starts) > 0 {
			sort.Strings(starts)
			out.AvailableDates = append(out.AvailableDates, date)
			out.Slots[date] = starts
		}
	}

	return out, nil
}
