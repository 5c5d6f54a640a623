package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(t *testing.T, hour, min int) time.Time {
	t.Helper()
	return time.Date(2026, time.September, 7, hour, min, 0, 0, time.UTC) // a Monday
}

func TestGenerateSlots_FullDayHourly(t *testing.T) {
	slots := GenerateSlots(day(t, 9, 0), day(t, 17, 0), time.Hour)

	require.Len(t, slots, 8)
	assert.Equal(t, day(t, 9, 0), slots[0].Start)
	assert.Equal(t, day(t, 10, 0), slots[0].End)
	assert.Equal(t, day(t, 16, 0), slots[7].Start)
	assert.Equal(t, day(t, 17, 0), slots[7].End)
}

func TestGenerateSlots_DropsTrailingPartialSlot(t *testing.T) {
	// 09:00-12:30 with 60min slots: 09, 10, 11 fit; 12:00-13:00 spills.
	slots := GenerateSlots(day(t, 9, 0), day(t, 12, 30), time.Hour)

	require.Len(t, slots, 3)
	for _, s := range slots {
		assert.False(t, s.End.After(day(t, 12, 30)), "slot end %v exceeds window end", s.End)
	}
}

func TestGenerateSlots_Ascending(t *testing.T) {
	slots := GenerateSlots(day(t, 9, 0), day(t, 17, 0), 30*time.Minute)

	require.Len(t, slots, 16)
	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].Start.Before(slots[i].Start))
		assert.Equal(t, slots[i-1].End, slots[i].Start)
	}
}

func TestGenerateSlots_DegenerateInputs(t *testing.T) {
	assert.Empty(t, GenerateSlots(day(t, 9, 0), day(t, 9, 0), time.Hour))
	assert.Empty(t, GenerateSlots(day(t, 17, 0), day(t, 9, 0), time.Hour))
	assert.Empty(t, GenerateSlots(day(t, 9, 0), day(t, 17, 0), 0))
	assert.Empty(t, GenerateSlots(day(t, 9, 0), day(t, 9, 30), time.Hour))
}

func TestDayWindow(t *testing.T) {
	date := time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)

	start, end, ok := DayWindow(date, "09:00", "17:00")
	require.True(t, ok)
	assert.Equal(t, day(t, 9, 0), start)
	assert.Equal(t, day(t, 17, 0), end)

	_, _, ok = DayWindow(date, "17:00", "09:00")
	assert.False(t, ok)

	_, _, ok = DayWindow(date, "9am", "17:00")
	assert.False(t, ok)

	_, _, ok = DayWindow(date, "09:00", "09:00")
	assert.False(t, ok)
}
