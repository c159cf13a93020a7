package ics

import (
	"errors"
	"fmt"
	"io"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	"github.com/teambition/rrule-go"

	"trical/internal/calendar"
	appLog "trical/internal/log"
)

// maxExportDays caps a single export at roughly ten years.
const maxExportDays = 3700

// uidNamespace seeds the version 5 event UIDs; the same kind and day always
// yield the same UID.
var uidNamespace = uuid.MustParse("6c1f3f0e-8d0c-4b5e-9a3e-1a2b7c9d4e51")

// Kind distinguishes the events an export can contain.
type Kind string

const (
	KindBengaliMonth Kind = "bengali-month"
	KindHijriMonth   Kind = "hijri-month"
	KindDay          Kind = "day"
)

// ExportOptions controls an iCalendar export.
type ExportOptions struct {
	ProductID string
	Name      string

	// Start and End bound the export, both inclusive.
	Start calendar.CivilDate
	End   calendar.CivilDate

	// Daily adds one event per day with the full tri-date.
	Daily bool

	// Stamp is written as DTSTAMP on every event. Zero means time.Now.
	Stamp time.Time
}

// ExportResult summarizes what was written.
type ExportResult struct {
	Days   int
	Events map[Kind]int
}

// Total returns the number of VEVENTs written.
func (r ExportResult) Total() int {
	n := 0
	for _, c := range r.Events {
		n += c
	}
	return n
}

// Export writes a VCALENDAR of all-day events for every Bengali and Hijri
// month start in [opts.Start, opts.End], and optionally one event per day.
func Export(w io.Writer, opts ExportOptions) (ExportResult, error) {
	res := ExportResult{Events: map[Kind]int{}}

	if err := opts.Start.Validate(); err != nil {
		return res, fmt.Errorf("ics export: start: %w", err)
	}
	if err := opts.End.Validate(); err != nil {
		return res, fmt.Errorf("ics export: end: %w", err)
	}
	if opts.End.Before(opts.Start) {
		return res, errors.New("ics export: end is before start")
	}
	if opts.ProductID == "" {
		return res, errors.New("ics export: product id is required")
	}
	if opts.Stamp.IsZero() {
		opts.Stamp = time.Now()
	}

	days, err := exportDays(opts.Start, opts.End)
	if err != nil {
		return res, err
	}
	res.Days = len(days)

	cal := ical.NewCalendar()
	cal.SetProductId(opts.ProductID)
	cal.SetMethod(ical.MethodPublish)
	if opts.Name != "" {
		cal.SetXWRCalName(opts.Name)
	}

	for _, t := range days {
		d := calendar.CivilDateOf(t)
		bd, err := calendar.ToBengali(d)
		if err != nil {
			return res, fmt.Errorf("ics export: %s: %w", d, err)
		}
		hd, err := calendar.ToHijri(d)
		if err != nil {
			return res, fmt.Errorf("ics export: %s: %w", d, err)
		}

		if bd.Day == 1 {
			addEvent(cal, KindBengaliMonth, d, opts.Stamp,
				bengaliLabel(bd),
				fmt.Sprintf("Bengali month %s %d begins (%s)", bd.Month, bd.Year, bd.SeasonLatin()))
			res.Events[KindBengaliMonth]++
		}
		if hd.Day == 1 {
			addEvent(cal, KindHijriMonth, d, opts.Stamp,
				hijriLabel(hd),
				fmt.Sprintf("Hijri month %s %d AH begins (%s). Tabular calendar; observed dates may differ by a day.",
					hd.Month, hd.Year, hd.MonthName))
			res.Events[KindHijriMonth]++
		}
		if opts.Daily {
			addEvent(cal, KindDay, d, opts.Stamp,
				bengaliLabel(bd)+" / "+hijriLabel(hd),
				fmt.Sprintf("%s. %d %s %d. %d %s %d AH.",
					d.Weekday(), bd.Day, bd.Month, bd.Year, hd.Day, hd.Month, hd.Year))
			res.Events[KindDay]++
		}
	}

	if err := cal.SerializeTo(w); err != nil {
		return res, fmt.Errorf("ics export: serialize: %w", err)
	}

	appLog.Info("ics export completed",
		"start", opts.Start.String(),
		"end", opts.End.String(),
		"days", res.Days,
		"events", res.Total(),
	)
	return res, nil
}

// exportDays enumerates every day in the inclusive range with a DAILY rule.
func exportDays(start, end calendar.CivilDate) ([]time.Time, error) {
	if n := calendar.JulianDayNumber(end) - calendar.JulianDayNumber(start) + 1; n > maxExportDays {
		return nil, fmt.Errorf("ics export: range of %d days exceeds %d", n, maxExportDays)
	}
	r, err := rrule.NewRRule(rrule.ROption{
		Freq:    rrule.DAILY,
		Dtstart: start.Time(),
		Until:   end.Time(),
	})
	if err != nil {
		return nil, fmt.Errorf("ics export: rrule: %w", err)
	}
	return r.All(), nil
}

func addEvent(cal *ical.Calendar, kind Kind, d calendar.CivilDate, stamp time.Time, summary, description string) {
	ev := cal.AddEvent(EventUID(kind, d))
	ev.SetDtStampTime(stamp)
	ev.SetAllDayStartAt(d.Time())
	ev.SetAllDayEndAt(d.AddDays(1).Time())
	ev.SetSummary(summary)
	ev.SetDescription(description)
	ev.SetProperty(ical.ComponentPropertyCategories, categoryFor(kind))
	ev.SetProperty(ical.ComponentPropertyTransp, "TRANSPARENT")
}

// EventUID is stable for a given kind and day.
func EventUID(kind Kind, d calendar.CivilDate) string {
	return uuid.NewSHA1(uidNamespace, []byte(string(kind)+"/"+d.String())).String() + "@trical"
}

func categoryFor(kind Kind) string {
	switch kind {
	case KindBengaliMonth:
		return "BENGALI"
	case KindHijriMonth:
		return "HIJRI"
	}
	return "TRIDATE"
}

func bengaliLabel(bd calendar.BengaliDate) string {
	return calendar.BengaliDigits(bd.Day) + " " + bd.MonthName + " " + calendar.BengaliDigits(bd.Year)
}

func hijriLabel(hd calendar.HijriDate) string {
	return calendar.BengaliDigits(hd.Day) + " " + hd.MonthNameBengali + " " + calendar.BengaliDigits(hd.Year) + " হিজরি"
}
