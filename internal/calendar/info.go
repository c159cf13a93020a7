package calendar

// DayInfo gathers what the info bar shows for a single day.
type DayInfo struct {
	Date          CivilDate
	Bengali       BengaliDate
	Hijri         HijriDate
	Season        string
	BengaliSeason string
	DayOfYear     int
	WeekNumber    int
}

// Info computes the info bar for today.
func Info(today CivilDate) (DayInfo, error) {
	bd, err := ToBengali(today)
	if err != nil {
		return DayInfo{}, err
	}
	hd, err := ToHijri(today)
	if err != nil {
		return DayInfo{}, err
	}
	return DayInfo{
		Date:          today,
		Bengali:       bd,
		Hijri:         hd,
		Season:        GregorianSeason(today.Month),
		BengaliSeason: bd.Season,
		DayOfYear:     DayOfYear(today),
		WeekNumber:    WeekNumber(today),
	}, nil
}
