package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slotworks/team-scheduler/internal/models"
)

func booking(start, end time.Time) models.Booking {
	return models.Booking{StartTime: start, EndTime: end, Status: "scheduled"}
}

func TestOverlaps(t *testing.T) {
	at := func(h int) time.Time { return time.Date(2026, 9, 7, h, 0, 0, 0, time.UTC) }

	tests := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     time.Time
		want                           bool
	}{
		{"identical", at(9), at(10), at(9), at(10), true},
		{"contained", at(9), at(12), at(10), at(11), true},
		{"partial left", at(9), at(11), at(10), at(12), true},
		{"abutting is not a conflict", at(9), at(10), at(10), at(11), false},
		{"abutting reversed", at(10), at(11), at(9), at(10), false},
		{"disjoint", at(9), at(10), at(14), at(15), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			assert.Equal(t, tt.want, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd), "predicate must be symmetric")
		})
	}
}

func TestFilterAvailable_RemovesOnlyConflictingSlot(t *testing.T) {
	at := func(h int) time.Time { return time.Date(2026, 9, 7, h, 0, 0, 0, time.UTC) }

	slots := GenerateSlots(at(9), at(17), time.Hour)
	require.Len(t, slots, 8)

	free := FilterAvailable(slots, []models.Booking{booking(at(13), at(14))})

	require.Len(t, free, 7)
	for _, s := range free {
		assert.NotEqual(t, at(13), s.Start)
	}
}

func TestFilterAvailable_AbuttingBookingKeepsSlot(t *testing.T) {
	at := func(h int) time.Time { return time.Date(2026, 9, 7, h, 0, 0, 0, time.UTC) }

	slots := []TimeSlot{{Start: at(9), End: at(10)}}
	free := FilterAvailable(slots, []models.Booking{booking(at(10), at(11))})

	assert.Equal(t, slots, free)
}

func TestFilterAvailable_Idempotent(t *testing.T) {
	at := func(h int) time.Time { return time.Date(2026, 9, 7, h, 0, 0, 0, time.UTC) }

	slots := GenerateSlots(at(9), at(17), time.Hour)
	bookings := []models.Booking{booking(at(10), at(11)), booking(at(15), at(16))}

	once := FilterAvailable(slots, bookings)
	twice := FilterAvailable(once, bookings)

	assert.Equal(t, once, twice)
}

func TestFilterAvailable_PreservesOrder(t *testing.T) {
	at := func(h int) time.Time { return time.Date(2026, 9, 7, h, 0, 0, 0, time.UTC) }

	slots := GenerateSlots(at(9), at(17), time.Hour)
	free := FilterAvailable(slots, []models.Booking{booking(at(11), at(12))})

	for i := 1; i < len(free); i++ {
		assert.True(t, free[i-1].Start.Before(free[i].Start))
	}
}
