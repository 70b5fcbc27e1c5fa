package schedule

import "time"

// The calendar is a fixed grid of 30-minute units aligned to :00/:30.
const (
	SlotMinutes = 30

	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Default generation window, matching salon business hours.
const (
	DefaultStartHour = 10
	DefaultEndHour   = 18
	DefaultDaysAhead = 7
)

// SlotsNeeded returns how many grid units a duration consumes.
// A partial trailing slot still takes a whole unit.
func SlotsNeeded(durationMin int) int {
	if durationMin <= 0 {
		return 0
	}
	return (durationMin + SlotMinutes - 1) / SlotMinutes
}

// SlotDate formats the grid date key for a start time.
func SlotDate(start time.Time) string {
	return start.Format(DateLayout)
}

// Ticks lists the HH:mm grid times covered by [start, start+duration).
func Ticks(start time.Time, durationMin int) []string {
	end := start.Add(time.Duration(durationMin) * time.Minute)

	var ticks []string
	for cur := start; cur.Before(end); cur = cur.Add(SlotMinutes * time.Minute) {
		ticks = append(ticks, cur.Format(TimeLayout))
	}
	return ticks
}

// NextTick advances an HH:mm grid time by n slot units.
func NextTick(hm string, n int) (string, error) {
	t, err := time.Parse(TimeLayout, hm)
	if err != nil {
		return "", err
	}
	return t.Add(time.Duration(n*SlotMinutes) * time.Minute).Format(TimeLayout), nil
}

// Overlaps is the conflict-guard predicate: two half-open intervals
// [aStart, aEnd) and [bStart, bEnd) intersect.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// FreeSlots groups an employee's unbooked grid times by date.
type FreeSlots struct {
	AvailableDates []string            `json:"availableDates"`
	Slots          map[string][]string `json:"slots"`
}
