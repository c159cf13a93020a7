// Package render formats month grids and the info bar as terminal text or
// as a standalone HTML page.
package render

import (
	"fmt"
	"strconv"

	"trical/internal/calendar"
	"trical/internal/model"
)

// Page is everything a renderer needs for one output.
type Page struct {
	Month model.Month
	View  model.View
	Info  calendar.DayInfo
}

// card is one calendar panel, already reduced to display strings.
type card struct {
	View     model.View
	Title    string
	DayLabel string // large day number of the cursor date
	Bengali  bool   // Bengali script headers and numerals
	Headers  []string
	Rows     [][]cellView
	Footer   []string
}

type cellView struct {
	Main    string
	Bengali string // unified view only
	Hijri   string // unified view only

	Other        bool
	Today        bool
	BengaliStart bool
	HijriStart   bool
}

func buildCards(m *model.Month, v model.View) []card {
	views := v.Expand()
	cards := make([]card, 0, len(views))
	for _, cv := range views {
		cards = append(cards, buildCard(m, cv))
	}
	return cards
}

func buildCard(m *model.Month, v model.View) card {
	c := card{View: v}

	switch v {
	case model.ViewBengali:
		c.Bengali = true
		c.Title = m.Bengali.MonthName + " " + calendar.BengaliDigits(m.Bengali.Year)
		c.DayLabel = calendar.BengaliDigits(m.Bengali.Day)
	case model.ViewArabic:
		c.Bengali = true
		c.Title = fmt.Sprintf("%s %s হিজরি", m.Hijri.MonthNameBengali, calendar.BengaliDigits(m.Hijri.Year))
		c.DayLabel = calendar.BengaliDigits(m.Hijri.Day)
	default:
		c.Title = fmt.Sprintf("%s %d", m.Cursor.Month, m.Cursor.Year)
		c.DayLabel = strconv.Itoa(m.Cursor.Day)
	}

	for _, wd := range m.Weekdays {
		if c.Bengali {
			c.Headers = append(c.Headers, calendar.WeekdayNameBengali(wd))
		} else {
			c.Headers = append(c.Headers, calendar.WeekdayName(wd))
		}
	}

	for _, week := range m.Weeks() {
		row := make([]cellView, 0, len(week))
		for _, cell := range week {
			row = append(row, buildCell(cell, v))
		}
		c.Rows = append(c.Rows, row)
	}

	if v == model.ViewUnified {
		c.Footer = []string{
			fmt.Sprintf("বাংলা: %s (%s)", m.BengaliRange(), calendar.BengaliDigits(m.Bengali.Year)),
			fmt.Sprintf("আরবি: %s (%s হিজরি)", m.HijriRange(), calendar.BengaliDigits(m.Hijri.Year)),
		}
	}
	return c
}

func buildCell(cell model.Cell, v model.View) cellView {
	cv := cellView{
		Other: !cell.InMonth,
		Today: cell.Today && cell.InMonth,
	}
	switch v {
	case model.ViewBengali:
		cv.Main = calendar.BengaliDigits(cell.Bengali.Day)
	case model.ViewArabic:
		cv.Main = calendar.BengaliDigits(cell.Hijri.Day)
	case model.ViewUnified:
		cv.Main = strconv.Itoa(cell.Date.Day)
		cv.Bengali = calendar.BengaliDigits(cell.Bengali.Day)
		cv.Hijri = strconv.Itoa(cell.Hijri.Day)
		// Month-start markers are only drawn for days of the shown month.
		cv.BengaliStart = cell.InMonth && cell.BengaliMonthStart()
		cv.HijriStart = cell.InMonth && cell.HijriMonthStart()
	default:
		cv.Main = strconv.Itoa(cell.Date.Day)
	}
	return cv
}
