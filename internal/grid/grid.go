// Package grid lays out a Gregorian month as a 6×7 grid and converts every
// cell into the Bengali and Hijri calendars.
package grid

import (
	"fmt"
	"slices"
	"time"

	"trical/internal/calendar"
	"trical/internal/model"
)

// ParseWeekStart maps a config value to the first column's weekday.
func ParseWeekStart(s string) (time.Weekday, error) {
	switch s {
	case "", "sunday":
		return time.Sunday, nil
	case "monday":
		return time.Monday, nil
	case "saturday":
		return time.Saturday, nil
	}
	return time.Sunday, fmt.Errorf("unsupported week start %q", s)
}

// Build returns the grid for cursor's month. today is marked when it falls
// inside the grid; both dates are supplied by the caller.
func Build(cursor, today calendar.CivilDate, weekStart time.Weekday) (model.Month, error) {
	if err := cursor.Validate(); err != nil {
		return model.Month{}, fmt.Errorf("grid cursor: %w", err)
	}
	if err := today.Validate(); err != nil {
		return model.Month{}, fmt.Errorf("grid today: %w", err)
	}

	m := model.Month{
		Cursor:   cursor,
		Today:    today,
		Weekdays: make([]time.Weekday, 7),
	}
	for i := range m.Weekdays {
		m.Weekdays[i] = (weekStart + time.Weekday(i)) % 7
	}

	first := cursor.FirstOfMonth()
	lead := (int(first.Weekday()) - int(weekStart) + 7) % 7
	start := first.AddDays(-lead)

	for i := range model.GridCells {
		d := start.AddDays(i)
		bd, err := calendar.ToBengali(d)
		if err != nil {
			return model.Month{}, err
		}
		hd, err := calendar.ToHijri(d)
		if err != nil {
			return model.Month{}, err
		}
		m.Cells[i] = model.Cell{
			Date:    d,
			InMonth: d.Year == cursor.Year && d.Month == cursor.Month,
			Today:   d == today,
			Bengali: bd,
			Hijri:   hd,
		}
		if !slices.Contains(m.BengaliMonths, bd.MonthName) {
			m.BengaliMonths = append(m.BengaliMonths, bd.MonthName)
		}
		if !slices.Contains(m.HijriMonths, hd.MonthNameBengali) {
			m.HijriMonths = append(m.HijriMonths, hd.MonthNameBengali)
		}
	}

	var err error
	if m.Bengali, err = calendar.ToBengali(cursor); err != nil {
		return model.Month{}, err
	}
	if m.Hijri, err = calendar.ToHijri(cursor); err != nil {
		return model.Month{}, err
	}
	return m, nil
}
