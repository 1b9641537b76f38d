// Package calendar holds the pure date math behind the year and month
// views: month grids, day normalization, and inclusive range checks.
// Everything here is timezone-safe by working on UTC midnights.
package calendar

import "time"

var MonthNames = [12]string{
	"January", "February", "March", "April",
	"May", "June", "July", "August",
	"September", "October", "November", "December",
}

var DayNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// DaysInMonth returns the number of days in the given month, correct
// for leap years (day 0 of the next month is the last day of this one).
func DaysInMonth(month time.Month, year int) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekday returns the weekday of the 1st of the month, 0 = Sunday.
func FirstWeekday(month time.Month, year int) int {
	return int(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// MonthGrid lays out a month for a 7-column grid: leading zeros for the
// empty cells before the 1st, then the day numbers 1..N. Callers may pad
// the tail to complete the final week.
func MonthGrid(month time.Month, year int) []int {
	first := FirstWeekday(month, year)
	days := DaysInMonth(month, year)

	grid := make([]int, 0, first+days)
	for i := 0; i < first; i++ {
		grid = append(grid, 0)
	}
	for day := 1; day <= days; day++ {
		grid = append(grid, day)
	}
	return grid
}

// Midnight strips the time-of-day, keeping the calendar date in UTC.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Noon returns the same calendar date at 12:00 UTC. Probing ranges at
// noon avoids off-by-one errors when inputs carry stray timezones.
func Noon(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, time.UTC)
}

// EndOfDay returns the last instant of the calendar date.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC)
}

// SameDay reports whether a and b fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// IsToday reports whether t falls on the current calendar date.
func IsToday(t time.Time) bool {
	return SameDay(t, time.Now())
}

// RangeContains reports whether date lies within [start, end] inclusive,
// comparing midnights only. A zero bound means no range is selected.
func RangeContains(date, start, end time.Time) bool {
	if start.IsZero() || end.IsZero() {
		return false
	}
	d := Midnight(date)
	return !d.Before(Midnight(start)) && !d.After(Midnight(end))
}

// Selection marks a date's role in an in-progress range selection.
type Selection int

const (
	SelectionNone Selection = iota
	SelectionStart
	SelectionEnd
)

func (s Selection) String() string {
	switch s {
	case SelectionStart:
		return "start"
	case SelectionEnd:
		return "end"
	default:
		return "none"
	}
}

// ClassifySelection reports whether date is the start or end of the
// selection. Zero bounds are ignored.
func ClassifySelection(date, start, end time.Time) Selection {
	d := Midnight(date)
	if !start.IsZero() && d.Equal(Midnight(start)) {
		return SelectionStart
	}
	if !end.IsZero() && d.Equal(Midnight(end)) {
		return SelectionEnd
	}
	return SelectionNone
}

// DateKey formats a date as YYYY-MM-DD for grouping tasks by day.
func DateKey(t time.Time) string {
	return t.Format(time.DateOnly)
}
