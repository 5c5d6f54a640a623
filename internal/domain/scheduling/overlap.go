package scheduling

import (
	"time"

	"github.com/slotworks/team-scheduler/internal/models"
)

// Overlaps reports whether [aStart, aEnd) and [bStart, bEnd)
// intersect. Abutting intervals do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// FilterAvailable drops every slot that overlaps a booking. The
// caller scopes bookings to the right contractor and day; no implicit
// scoping happens here. Input order is preserved.
func FilterAvailable(slots []TimeSlot, bookings []models.Booking) []TimeSlot {
	if len(bookings) == 0 {
		return slots
	}

	out := make([]TimeSlot, 0, len(slots))
	for _, s := range slots {
		conflict := false
		for _, b := range bookings {
			if Overlaps(s.Start, s.End, b.StartTime, b.EndTime) {
				conflict = true
				break
			}
		}
		if !conflict {
			out = append(out, s)
		}
	}

	return out
}
