package health

import (
	"fmt"
	"time"
)

// Date is a calendar date in local time, without a time-of-day component.
// Bucketing, filtering, and sorting all operate on this type so the rules
// stay correct regardless of how the source serializes dates.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf extracts the calendar date from a time value.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return Date{Year: year, Month: month, Day: day}
}

// Today returns the current local calendar date.
func Today() Date {
	return DateOf(time.Now())
}

// dateLayouts lists accepted input formats, most specific first.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDate parses a date string in any of the accepted layouts.
func ParseDate(value string) (Date, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return DateOf(t), true
		}
	}
	return Date{}, false
}

// Time returns the date as local midnight.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.Local)
}

// AddDays returns the date shifted by the given number of calendar days.
func (d Date) AddDays(days int) Date {
	return DateOf(d.Time().AddDate(0, 0, days))
}

// Key returns the zero-padded ISO form ("2024-03-05"). Lexicographic order
// on keys matches chronological order.
func (d Date) Key() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Compare orders two dates chronologically.
func (d Date) Compare(other Date) int {
	switch {
	case d.Year != other.Year:
		return d.Year - other.Year
	case d.Month != other.Month:
		return int(d.Month) - int(other.Month)
	default:
		return d.Day - other.Day
	}
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	return d.Compare(other) < 0
}

// IsZero reports whether the date is unset.
func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// WeekStart returns the Monday of the week containing the date.
func (d Date) WeekStart() Date {
	offset := 1 - int(d.Time().Weekday())
	if d.Time().Weekday() == time.Sunday {
		offset = -6
	}
	return d.AddDays(offset)
}

// WeekKey returns the grouping key for week granularity: the ISO date of
// the containing week's Monday.
func (d Date) WeekKey() string {
	return d.WeekStart().Key()
}

// MonthKey returns the grouping key for month granularity ("2024-03").
func (d Date) MonthKey() string {
	return fmt.Sprintf("%04d-%02d", d.Year, int(d.Month))
}

// DayLabel renders the date as a short axis label ("Mar 5").
func (d Date) DayLabel() string {
	return d.Time().Format("Jan 2")
}

// WeekLabel renders the containing week as "Week of Mar 3".
func (d Date) WeekLabel() string {
	return "Week of " + d.WeekStart().DayLabel()
}

// MonthLabel renders the containing month as "Mar 24".
func (d Date) MonthLabel() string {
	return d.Time().Format("Jan 06")
}
