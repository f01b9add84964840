package dateutil

import "time"

// Layout is the DD.MM.YYYY form used for birthdays and congratulation dates
const Layout = "02.01.2006"

// StartOfDay returns the start of the day (00:00:00) for the given date
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// CivilDate returns midnight UTC of the calendar date shown by t in its own location.
// Arithmetic on civil dates is free of DST gaps.
func CivilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of calendar days from one date to another.
// Negative when to is before from.
func DaysBetween(from, to time.Time) int {
	return int(CivilDate(to).Sub(CivilDate(from)).Hours() / 24)
}

// IsWeekend returns true if the date is Saturday or Sunday
func IsWeekend(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// NextWeekday returns the next date strictly after the given one that falls on weekday.
// The result is always 1 to 7 days ahead.
func NextWeekday(date time.Time, weekday time.Weekday) time.Time {
	daysAhead := int(weekday) - int(date.Weekday())
	if daysAhead <= 0 {
		daysAhead += 7
	}
	return date.AddDate(0, 0, daysAhead)
}

// AdjustForWeekend moves Saturday and Sunday to the following Monday.
// Weekdays are returned unchanged.
func AdjustForWeekend(date time.Time) time.Time {
	if IsWeekend(date) {
		return NextWeekday(date, time.Monday)
	}
	return date
}

// Format formats date as DD.MM.YYYY
func Format(date time.Time) string {
	return date.Format(Layout)
}

// Today returns today's date (start of day)
func Today() time.Time {
	return StartOfDay(time.Now())
}
