package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextDays(t *testing.T) {
	now := time.Date(2024, 6, 10, 14, 30, 0, 0, time.UTC)

	days := NextDays(now)

	require.Len(t, days, 7)
	assert.Equal(t, "2024-06-10", days[0].Date)
	assert.Equal(t, "Mon", days[0].Weekday)
	assert.Equal(t, "10 Jun", days[0].Label)
	assert.Equal(t, "2024-06-16", days[6].Date)

	seen := make(map[string]bool)
	for i, d := range days {
		assert.False(t, seen[d.Date], "duplicate date %s", d.Date)
		seen[d.Date] = true

		if i > 0 {
			assert.Greater(t, d.Date, days[i-1].Date)
		}
	}
}

func TestNextDaysCrossesMonthBoundary(t *testing.T) {
	now := time.Date(2024, 1, 29, 8, 0, 0, 0, time.UTC)

	days := NextDays(now)

	require.Len(t, days, 7)
	assert.Equal(t, "2024-01-29", days[0].Date)
	assert.Equal(t, "2024-02-04", days[6].Date)
}

func TestDaySlots(t *testing.T) {
	slots := DaySlots()

	require.Len(t, slots, 17)
	assert.Equal(t, "09:00:00", slots[0].Value)
	assert.Equal(t, "9:00 AM", slots[0].Label)
	assert.Equal(t, "17:00:00", slots[16].Value)
	assert.Equal(t, "5:00 PM", slots[16].Label)

	for i := 1; i < len(slots); i++ {
		prev, err := time.Parse("15:04:05", slots[i-1].Value)
		require.NoError(t, err)
		cur, err := time.Parse("15:04:05", slots[i].Value)
		require.NoError(t, err)

		assert.Equal(t, 30*time.Minute, cur.Sub(prev))
	}
}

func TestIsBookableDate(t *testing.T) {
	now := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	assert.True(t, IsBookableDate(now, "2024-06-10"))
	assert.True(t, IsBookableDate(now, "2024-06-16"))
	assert.False(t, IsBookableDate(now, "2024-06-09"))
	assert.False(t, IsBookableDate(now, "2024-06-17"))
	assert.False(t, IsBookableDate(now, "not-a-date"))
}

func TestIsBookableTime(t *testing.T) {
	assert.True(t, IsBookableTime("09:00:00"))
	assert.True(t, IsBookableTime("10:30:00"))
	assert.True(t, IsBookableTime("17:00:00"))
	assert.False(t, IsBookableTime("17:30:00"))
	assert.False(t, IsBookableTime("08:30:00"))
	assert.False(t, IsBookableTime("10:15:00"))
	assert.False(t, IsBookableTime(""))
}
