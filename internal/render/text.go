package render

import (
	"fmt"
	"io"
	"strings"

	"trical/internal/calendar"
	"trical/internal/model"
)

const cellWidth = 6

// Text writes the page's calendar panels followed by the info bar, which
// is omitted when p.Info is empty.
func Text(w io.Writer, p Page) error {
	var b strings.Builder
	for i, c := range buildCards(&p.Month, p.View) {
		if i > 0 {
			b.WriteString("\n")
		}
		writeTextCard(&b, c)
	}
	if p.Info.DayOfYear > 0 {
		b.WriteString("\n")
		writeInfo(&b, p.Info)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// InfoText writes only the info bar.
func InfoText(w io.Writer, info calendar.DayInfo) error {
	var b strings.Builder
	writeInfo(&b, info)
	_, err := io.WriteString(w, b.String())
	return err
}

func writeTextCard(b *strings.Builder, c card) {
	fmt.Fprintf(b, "%s  (%s)\n", c.Title, c.DayLabel)
	for _, h := range c.Headers {
		fmt.Fprintf(b, "%*s", cellWidth, h)
	}
	b.WriteString("\n")

	for _, row := range c.Rows {
		writeTextLine(b, row, func(cv cellView) string { return decorate(cv.Main, cv) })
		if c.View != model.ViewUnified {
			continue
		}
		writeTextLine(b, row, func(cv cellView) string { return marked(cv.Bengali, cv.BengaliStart) })
		writeTextLine(b, row, func(cv cellView) string { return marked(cv.Hijri, cv.HijriStart) })
	}
	for _, f := range c.Footer {
		b.WriteString(f)
		b.WriteString("\n")
	}
}

func writeTextLine(b *strings.Builder, row []cellView, text func(cellView) string) {
	for _, cv := range row {
		fmt.Fprintf(b, "%*s", cellWidth, text(cv))
	}
	b.WriteString("\n")
}

// decorate brackets today and dots days of adjacent months.
func decorate(s string, cv cellView) string {
	switch {
	case cv.Today:
		return "[" + s + "]"
	case cv.Other:
		return "·" + s
	}
	return s
}

func marked(s string, start bool) string {
	if start {
		return s + "*"
	}
	return s
}

func writeInfo(b *strings.Builder, info calendar.DayInfo) {
	d := info.Date
	bd, hd := info.Bengali, info.Hijri
	infoLine(b, "Today", fmt.Sprintf("%s, %d %s %d", d.Weekday(), d.Day, d.Month, d.Year))
	infoLine(b, "Bengali", fmt.Sprintf("%s %s %s (%d %s %d)",
		calendar.BengaliDigits(bd.Day), bd.MonthName, calendar.BengaliDigits(bd.Year),
		bd.Day, bd.Month, bd.Year))
	infoLine(b, "Hijri", fmt.Sprintf("%s %s %s হিজরি (%d %s %d, %s)",
		calendar.BengaliDigits(hd.Day), hd.MonthNameBengali, calendar.BengaliDigits(hd.Year),
		hd.Day, hd.Month, hd.Year, hd.MonthName))
	infoLine(b, "Season", info.Season)
	infoLine(b, "Bengali season", fmt.Sprintf("%s (%s)", info.BengaliSeason, bd.SeasonLatin()))
	infoLine(b, "Day of year", fmt.Sprint(info.DayOfYear))
	infoLine(b, "Week", fmt.Sprint(info.WeekNumber))
}

func infoLine(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "%-16s%s\n", label+":", value)
}
