// Package calendar converts Gregorian civil dates into the Bengali solar
// calendar and the tabular Islamic (Hijri) calendar.
//
// All functions are pure: they read only the fixed tables in this package
// and are safe for concurrent use. Nothing here reads the wall clock; callers
// pass "today" explicitly.
package calendar

import (
	"fmt"
	"time"

	"cloudeng.io/datetime"
)

// CivilDate is a proleptic Gregorian date. Month uses Go's 1-based
// time.Month; the Bengali and Hijri month indices produced by the
// converters are 0-based.
type CivilDate struct {
	Year  int
	Month time.Month
	Day   int
}

// InvalidDateError reports a CivilDate that is not a calendar date.
type InvalidDateError struct {
	Date   CivilDate
	Reason string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date %04d-%02d-%02d: %s", e.Date.Year, int(e.Date.Month), e.Date.Day, e.Reason)
}

// NewCivilDate returns the validated date y-m-d.
func NewCivilDate(year int, month time.Month, day int) (CivilDate, error) {
	d := CivilDate{Year: year, Month: month, Day: day}
	if err := d.Validate(); err != nil {
		return CivilDate{}, err
	}
	return d, nil
}

// CivilDateOf returns the date part of t in t's location.
func CivilDateOf(t time.Time) CivilDate {
	y, m, d := t.Date()
	return CivilDate{Year: y, Month: m, Day: d}
}

// Validate returns an *InvalidDateError if the month is outside
// January..December or the day is outside the month.
func (d CivilDate) Validate() error {
	if d.Month < time.January || d.Month > time.December {
		return &InvalidDateError{Date: d, Reason: "month out of range"}
	}
	if d.Day < 1 {
		return &InvalidDateError{Date: d, Reason: "day must be positive"}
	}
	if n := DaysInMonth(d.Year, d.Month); d.Day > n {
		return &InvalidDateError{Date: d, Reason: fmt.Sprintf("%v has %d days", d.Month, n)}
	}
	return nil
}

func (d CivilDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Time returns midnight UTC on d.
func (d CivilDate) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Before reports whether d is strictly earlier than o.
func (d CivilDate) Before(o CivilDate) bool {
	return JulianDayNumber(d) < JulianDayNumber(o)
}

// Weekday of d, with Sunday as 0.
func (d CivilDate) Weekday() time.Weekday {
	return time.Weekday(floorMod(JulianDayNumber(d)+1, 7))
}

// AddDays returns the date n days after d (n may be negative).
func (d CivilDate) AddDays(n int) CivilDate {
	return FromJulianDayNumber(JulianDayNumber(d) + n)
}

// AddMonths moves d by n months, clamping the day to the target month.
func (d CivilDate) AddMonths(n int) CivilDate {
	idx := d.Year*12 + int(d.Month) - 1 + n
	year := floorDiv(idx, 12)
	month := time.Month(floorMod(idx, 12) + 1)
	day := min(d.Day, DaysInMonth(year, month))
	return CivilDate{Year: year, Month: month, Day: day}
}

// FirstOfMonth returns the first day of d's month.
func (d CivilDate) FirstOfMonth() CivilDate {
	return CivilDate{Year: d.Year, Month: d.Month, Day: 1}
}

// IsLeapYear applies the Gregorian rule: divisible by 4 and not by 100,
// or divisible by 400.
func IsLeapYear(year int) bool {
	return datetime.IsLeap(year)
}

// DaysInMonth returns the length of a Gregorian month.
func DaysInMonth(year int, month time.Month) int {
	return int(datetime.DaysInMonth(year, datetime.Month(month)))
}

// DayOfYear returns the 1-based day count since January 1 of d's year.
func DayOfYear(d CivilDate) int {
	return int(datetime.NewDate(datetime.Month(d.Month), d.Day).DayOfYear(d.Year))
}

// WeekNumber returns ceil((elapsed + weekday(Jan 1) + 1) / 7) where elapsed
// is the number of days since January 1 (0 on January 1). Weeks start on
// Sunday.
func WeekNumber(d CivilDate) int {
	jan1 := CivilDate{Year: d.Year, Month: time.January, Day: 1}
	elapsed := DayOfYear(d) - 1
	n := elapsed + int(jan1.Weekday()) + 1
	return (n + 6) / 7
}

// IsSameDay compares the year, month and day of a and b, ignoring the time
// of day. Each value is read in its own location.
func IsSameDay(a, b time.Time) bool {
	return CivilDateOf(a) == CivilDateOf(b)
}

// JulianDayNumber converts a proleptic Gregorian date to its JDN.
func JulianDayNumber(d CivilDate) int {
	m := int(d.Month)
	a := (14 - m) / 12
	y := d.Year + 4800 - a
	mm := m + 12*a - 3
	return d.Day + (153*mm+2)/5 + 365*y +
		floorDiv(y, 4) - floorDiv(y, 100) + floorDiv(y, 400) - 32045
}

// FromJulianDayNumber is the inverse of JulianDayNumber.
func FromJulianDayNumber(jdn int) CivilDate {
	a := jdn + 32044
	b := floorDiv(4*a+3, 146097)
	c := a - floorDiv(146097*b, 4)
	d := floorDiv(4*c+3, 1461)
	e := c - floorDiv(1461*d, 4)
	m := floorDiv(5*e+2, 153)
	return CivilDate{
		Year:  100*b + d - 4800 + m/10,
		Month: time.Month(m + 3 - 12*(m/10)),
		Day:   e - floorDiv(153*m+2, 5) + 1,
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}
