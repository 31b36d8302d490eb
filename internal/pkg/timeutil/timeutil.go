// Package timeutil normalizes the heterogeneous date and time strings
// the reservations backend emits into comparable value types.
//
// Dates arrive either as ISO "2006-01-02" or as the localized
// "02/01/2006" (day first). Times arrive as "15:04" or "15:04:05".
// Parsing never fails hard: callers get an ok flag and are expected to
// exclude unparseable records from date-based reasoning instead of
// crashing the view.
package timeutil

import (
	"fmt"
	"time"
)

const (
	isoDateLayout   = "2006-01-02"
	slashDateLayout = "02/01/2006"

	DisplayDateLayout = "02/01/2006"
	DisplayTimeLayout = "15:04"
)

// Date is a timezone-neutral calendar date. It carries no instant: the
// same input string always yields the same (year, month, day) tuple no
// matter the observer's offset. Instants are only produced explicitly
// via At.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDate accepts "YYYY-MM-DD" or "DD/MM/YYYY". The slash form is
// always day first (pt-BR locale of the backend).
func ParseDate(s string) (Date, bool) {
	for _, layout := range []string{isoDateLayout, slashDateLayout} {
		// Parse in UTC and read the components back out, so the
		// observer's zone can never shift the calendar day.
		t, err := time.ParseInLocation(layout, s, time.UTC)
		if err != nil {
			continue
		}
		y, m, d := t.Date()
		return Date{Year: y, Month: m, Day: d}, true
	}
	return Date{}, false
}

// DateOf extracts the calendar date of an instant, in that instant's
// own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Compare returns -1 if d is before other, 0 if equal, +1 if after.
func (d Date) Compare(other Date) int {
	switch {
	case d.Year != other.Year:
		return sign(d.Year - other.Year)
	case d.Month != other.Month:
		return sign(int(d.Month) - int(other.Month))
	default:
		return sign(d.Day - other.Day)
	}
}

func (d Date) Equal(other Date) bool  { return d.Compare(other) == 0 }
func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }
func (d Date) After(other Date) bool  { return d.Compare(other) > 0 }

func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// At combines the date with a clock time into an instant in loc.
// Reservation times are wall-clock times of the institution, so the
// caller picks the location it is comparing against (normally the
// location of "now").
func (d Date) At(c ClockTime, loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, c.Hour, c.Minute, c.Second, 0, loc)
}

// ISO renders the canonical wire form.
func (d Date) ISO() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Display renders the localized slash form.
func (d Date) Display() string {
	return fmt.Sprintf("%02d/%02d/%04d", d.Day, int(d.Month), d.Year)
}

func (d Date) String() string { return d.ISO() }

// ClockTime is a time of day with second precision, detached from any
// date or zone.
type ClockTime struct {
	Hour   int
	Minute int
	Second int
}

// ParseClock accepts "HH:MM" or "HH:MM:SS".
func ParseClock(s string) (ClockTime, bool) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		return ClockTime{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}, true
	}
	return ClockTime{}, false
}

// ClockOf extracts the time of day of an instant, in that instant's
// own location.
func ClockOf(t time.Time) ClockTime {
	return ClockTime{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}
}

func (c ClockTime) seconds() int {
	return c.Hour*3600 + c.Minute*60 + c.Second
}

// Compare returns -1 if c is before other, 0 if equal, +1 if after.
func (c ClockTime) Compare(other ClockTime) int {
	return sign(c.seconds() - other.seconds())
}

func (c ClockTime) Equal(other ClockTime) bool  { return c.Compare(other) == 0 }
func (c ClockTime) Before(other ClockTime) bool { return c.Compare(other) < 0 }
func (c ClockTime) After(other ClockTime) bool  { return c.Compare(other) > 0 }

// AddMinutes returns the clock time m minutes later, wrapping at
// midnight.
func (c ClockTime) AddMinutes(m int) ClockTime {
	total := c.seconds() + m*60
	total %= 24 * 3600
	if total < 0 {
		total += 24 * 3600
	}
	return ClockTime{Hour: total / 3600, Minute: total % 3600 / 60, Second: total % 60}
}

// String renders "HH:MM", or "HH:MM:SS" when seconds are present.
func (c ClockTime) String() string {
	if c.Second != 0 {
		return fmt.Sprintf("%02d:%02d:%02d", c.Hour, c.Minute, c.Second)
	}
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
