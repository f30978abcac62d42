package dateutil

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// StartOfDay returns the start of the day (00:00:00) for the given date
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// EndOfDay returns the end of the day (23:59:59.999) for the given date
func EndOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 23, 59, 59, 999999999, date.Location())
}

// StartOfWeek returns the start of the week containing date for the given
// week-start convention (e.g. time.Sunday or time.Monday)
func StartOfWeek(date time.Time, weekStart time.Weekday) time.Time {
	daysBack := (int(date.Weekday()) - int(weekStart) + 7) % 7
	return StartOfDay(date.AddDate(0, 0, -daysBack))
}

// EndOfWeek returns the end of the week containing date for the given
// week-start convention
func EndOfWeek(date time.Time, weekStart time.Weekday) time.Time {
	return EndOfDay(StartOfWeek(date, weekStart).AddDate(0, 0, 6))
}

// StartOfMonth returns the first instant of the month containing date
func StartOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

// EndOfMonth returns the last instant of the month containing date
func EndOfMonth(date time.Time) time.Time {
	lastDay := StartOfMonth(date).AddDate(0, 1, -1)
	return EndOfDay(lastDay)
}

// AddDays returns the date shifted by the given number of calendar days
func AddDays(date time.Time, days int) time.Time {
	return date.AddDate(0, 0, days)
}

// DayDiff returns the number of whole days from `from` to `to`.
// Rounding absorbs the one-hour drift of DST transition days, so two
// day-start instants N calendar days apart always yield N.
func DayDiff(from, to time.Time) int {
	return int(math.Round(to.Sub(from).Hours() / 24))
}

// MinuteDiff returns the number of whole minutes from `from` to `to`,
// truncated toward zero
func MinuteDiff(from, to time.Time) int {
	return int(to.Sub(from).Minutes())
}

// IsWeekend returns true if the date is Saturday or Sunday
func IsWeekend(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// IsSameDay returns true if two dates are on the same day
func IsSameDay(date1, date2 time.Time) bool {
	return date1.Year() == date2.Year() &&
		date1.Month() == date2.Month() &&
		date1.Day() == date2.Day()
}

// ParseDate parses a date string in various formats
func ParseDate(dateStr string) (time.Time, error) {
	formats := []string{
		"2006-01-02",
		"02.01.2006",
		"2006-01-02T15:04:05",
		"2006-01-02T15:04:05Z",
		"2006-01-02T15:04:05-0700",
	}

	for _, format := range formats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date %q", dateStr)
}

// ParseWeekday parses a weekday name such as "sunday" or "Monday"
func ParseWeekday(name string) (time.Weekday, error) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(name, d.String()) {
			return d, nil
		}
	}
	return time.Sunday, fmt.Errorf("unrecognized weekday %q", name)
}

// Today returns today's date (start of day)
func Today() time.Time {
	return StartOfDay(time.Now())
}
