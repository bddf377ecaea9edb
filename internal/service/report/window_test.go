package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendarDays(t *testing.T) {
	t.Parallel()
	ref := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

	window := CalendarDays(ref, 7)

	require.Len(t, window, 7)
	assert.Equal(t, time.Date(2024, time.March, 9, 0, 0, 0, 0, time.UTC), window[0])
	assert.Equal(t, ref, window[6])
	for i := 1; i < len(window); i++ {
		assert.Equal(t, window[i-1].AddDate(0, 0, 1), window[i], "calendar window must be contiguous")
	}
}

func TestBusinessDays_EndingOnFriday(t *testing.T) {
	t.Parallel()
	friday := time.Date(2024, time.March, 29, 0, 0, 0, 0, time.UTC)
	require.Equal(t, time.Friday, friday.Weekday())

	window := BusinessDays(friday, 30)

	require.Len(t, window, 30)
	assert.Equal(t, friday, window[29])
	for _, day := range window {
		wd := day.Weekday()
		assert.NotEqual(t, time.Saturday, wd, "window contains a Saturday: %v", day)
		assert.NotEqual(t, time.Sunday, wd, "window contains a Sunday: %v", day)
	}
	// 30 business days span exactly 6 calendar weeks ending on a Friday.
	assert.Equal(t, time.Date(2024, time.February, 19, 0, 0, 0, 0, time.UTC), window[0])
}

func TestBusinessDays_WeekendRefExcluded(t *testing.T) {
	t.Parallel()
	sunday := time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC)
	require.Equal(t, time.Sunday, sunday.Weekday())

	window := BusinessDays(sunday, 5)

	require.Len(t, window, 5)
	// The most recent business day before the Sunday is the Friday.
	assert.Equal(t, time.Date(2024, time.March, 29, 0, 0, 0, 0, time.UTC), window[4])
	assert.Equal(t, time.Date(2024, time.March, 25, 0, 0, 0, 0, time.UTC), window[0])
}

func TestPreviousBusinessDays_Contiguous(t *testing.T) {
	t.Parallel()
	friday := time.Date(2024, time.March, 29, 0, 0, 0, 0, time.UTC)
	current := BusinessDays(friday, 30)

	previous := PreviousBusinessDays(current)

	require.Len(t, previous, 30)
	// The previous window ends exactly one business day before the
	// current window starts, with no overlap.
	gap := BusinessDays(current[0].AddDate(0, 0, -1), 1)
	assert.Equal(t, gap[0], previous[29])
	assert.True(t, previous[29].Before(current[0]))
	for _, day := range previous {
		assert.False(t, InWindow(day, current), "windows overlap on %v", day)
	}
}

func TestPreviousCalendarDays(t *testing.T) {
	t.Parallel()
	current := CalendarDays(time.Date(2024, time.March, 30, 0, 0, 0, 0, time.UTC), 30)

	previous := PreviousCalendarDays(current)

	require.Len(t, previous, 30)
	assert.Equal(t, current[0].AddDate(0, 0, -1), previous[29])
}

func TestInWindow(t *testing.T) {
	t.Parallel()
	window := CalendarDays(time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC), 3)

	assert.True(t, InWindow(time.Date(2024, time.March, 9, 0, 0, 0, 0, time.UTC), window))
	assert.False(t, InWindow(time.Date(2024, time.March, 7, 0, 0, 0, 0, time.UTC), window))
	assert.False(t, InWindow(time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC), window))
}
