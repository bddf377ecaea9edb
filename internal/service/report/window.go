package report

import "time"

// Window selection for the rolling "last 7/30" statistics. All windows
// are inclusive of both ends and returned in ascending date order.

// CalendarDays returns the n consecutive calendar days ending at (and
// including) ref.
func CalendarDays(ref time.Time, n int) []time.Time {
	ref = dayOf(ref)
	days := make([]time.Time, 0, n)
	for i := n - 1; i >= 0; i-- {
		days = append(days, ref.AddDate(0, 0, -i))
	}
	return days
}

// BusinessDays returns the n most recent business days (Mon-Fri, no
// holiday calendar) ending at ref; ref itself is included when it falls
// on a weekday.
func BusinessDays(ref time.Time, n int) []time.Time {
	day := dayOf(ref)
	days := make([]time.Time, n)
	for i := n - 1; i >= 0; i-- {
		for !isBusinessDay(day) {
			day = day.AddDate(0, 0, -1)
		}
		days[i] = day
		day = day.AddDate(0, 0, -1)
	}
	return days
}

// PreviousCalendarDays returns the equal-size window immediately
// preceding the given calendar window.
func PreviousCalendarDays(window []time.Time) []time.Time {
	if len(window) == 0 {
		return nil
	}
	return CalendarDays(window[0].AddDate(0, 0, -1), len(window))
}

// PreviousBusinessDays returns the equal-size business-day window ending
// at the business day strictly before the given window starts. Computed
// in business days, not by calendar shift, so consecutive windows never
// overlap and weekends introduce no bias.
func PreviousBusinessDays(window []time.Time) []time.Time {
	if len(window) == 0 {
		return nil
	}
	end := window[0].AddDate(0, 0, -1)
	for !isBusinessDay(end) {
		end = end.AddDate(0, 0, -1)
	}
	return BusinessDays(end, len(window))
}

// InWindow reports whether the date falls on one of the window's days.
func InWindow(d time.Time, window []time.Time) bool {
	d = dayOf(d)
	for _, day := range window {
		if day.Equal(d) {
			return true
		}
	}
	return false
}

func isBusinessDay(d time.Time) bool {
	wd := d.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

func dayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
