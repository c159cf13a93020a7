package model

import (
	"fmt"
	"strings"
	"time"

	"trical/internal/calendar"
)

// View selects which calendar(s) a month page shows.
type View string

const (
	ViewUnified View = "unified" // Gregorian grid with Bengali and Hijri overlays
	ViewEnglish View = "english"
	ViewBengali View = "bengali"
	ViewArabic  View = "arabic"
	ViewAll     View = "all" // bengali, english and arabic side by side
)

// Views lists every view in display order.
var Views = []View{ViewUnified, ViewEnglish, ViewBengali, ViewArabic, ViewAll}

// ParseView maps a flag or config value to a View.
func ParseView(s string) (View, error) {
	v := View(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Views {
		if v == known {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown view %q", s)
}

// Expand returns the single-calendar views that make up v.
func (v View) Expand() []View {
	if v == ViewAll {
		return []View{ViewBengali, ViewEnglish, ViewArabic}
	}
	return []View{v}
}

// Cell is one day of a 6×7 month grid.
type Cell struct {
	Date    calendar.CivilDate
	InMonth bool // false for leading/trailing days of adjacent months
	Today   bool

	Bengali calendar.BengaliDate
	Hijri   calendar.HijriDate
}

// BengaliMonthStart marks the first day of a Bengali month.
func (c Cell) BengaliMonthStart() bool {
	return c.Bengali.Day == 1
}

// HijriMonthStart marks the first day of a Hijri month.
func (c Cell) HijriMonthStart() bool {
	return c.Hijri.Day == 1
}

// GridCells is the number of cells in a month grid.
const GridCells = 42

// Month is a fully converted month grid around a cursor date.
type Month struct {
	Cursor calendar.CivilDate
	Today  calendar.CivilDate

	Weekdays []time.Weekday // column order
	Cells    [GridCells]Cell

	// Month names seen in the grid, in order of first appearance.
	BengaliMonths []string
	HijriMonths   []string

	// Conversions of the cursor date.
	Bengali calendar.BengaliDate
	Hijri   calendar.HijriDate
}

// Weeks splits the grid into rows of seven.
func (m *Month) Weeks() [][]Cell {
	rows := make([][]Cell, 0, GridCells/7)
	for i := 0; i < GridCells; i += 7 {
		rows = append(rows, m.Cells[i:i+7])
	}
	return rows
}

// BengaliRange formats the Bengali months in view as "first - last".
func (m *Month) BengaliRange() string {
	return nameRange(m.BengaliMonths)
}

// HijriRange formats the Hijri months in view as "first - last".
func (m *Month) HijriRange() string {
	return nameRange(m.HijriMonths)
}

func nameRange(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	}
	return names[0] + " - " + names[len(names)-1]
}
