package scheduling

import "time"

// TimeSlot is a derived candidate interval, never persisted.
// [Start, End) half-open.
type TimeSlot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type SlotsInput struct {
	TeamID       uint
	ContractorID uint
	Date         time.Time
}

// DayWindow anchors wall-clock "15:04" opening hours onto a concrete
// date, in the date's location.
func DayWindow(date time.Time, startHM, endHM string) (time.Time, time.Time, bool) {
	start, err1 := time.Parse("15:04", startHM)
	end, err2 := time.Parse("15:04", endHM)
	if err1 != nil || err2 != nil {
		return time.Time{}, time.Time{}, false
	}

	loc := date.Location()
	anchor := func(t time.Time) time.Time {
		return time.Date(
			date.Year(), date.Month(), date.Day(),
			t.Hour(), t.Minute(), 0, 0,
			loc,
		)
	}

	windowStart := anchor(start)
	windowEnd := anchor(end)
	if !windowStart.Before(windowEnd) {
		return time.Time{}, time.Time{}, false
	}

	return windowStart, windowEnd, true
}

// GenerateSlots carves fixed-size candidate slots out of
// [windowStart, windowEnd). A trailing slot that would extend past
// windowEnd is dropped. Pure function, ascending order.
func GenerateSlots(windowStart, windowEnd time.Time, d time.Duration) []TimeSlot {
	if d <= 0 || !windowStart.Before(windowEnd) {
		return nil
	}

	var slots []TimeSlot
	for cur := windowStart; cur.Add(d).Before(windowEnd) || cur.Add(d).Equal(windowEnd); cur = cur.Add(d) {
		slots = append(slots, TimeSlot{
			Start: cur,
			End:   cur.Add(d),
		})
	}

	return slots
}
