package ics

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trical/internal/calendar"
)

var stamp = time.Date(2026, time.October, 19, 8, 0, 0, 0, time.UTC)

func spring2025(daily bool) ExportOptions {
	return ExportOptions{
		ProductID: "-//trical//test//EN",
		Name:      "test",
		Start:     calendar.CivilDate{Year: 2025, Month: time.February, Day: 1},
		End:       calendar.CivilDate{Year: 2025, Month: time.April, Day: 30},
		Daily:     daily,
		Stamp:     stamp,
	}
}

func TestExportMonthStarts(t *testing.T) {
	var buf bytes.Buffer
	res, err := Export(&buf, spring2025(false))
	require.NoError(t, err)

	assert.Equal(t, 89, res.Days)
	assert.Equal(t, 3, res.Events[KindBengaliMonth])
	assert.Equal(t, 3, res.Events[KindHijriMonth])
	assert.Zero(t, res.Events[KindDay])

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "BEGIN:VCALENDAR"))
	assert.Contains(t, out, "PRODID:-//trical//test//EN")
	assert.Contains(t, out, "METHOD:PUBLISH")
	assert.Equal(t, 6, strings.Count(out, "BEGIN:VEVENT"))

	// Falgun, Chaitra and Boishakh.
	for _, day := range []string{"20250215", "20250317", "20250415"} {
		assert.Contains(t, out, "DTSTART;VALUE=DATE:"+day)
	}
	// Ramadan, Shawwal and Dhu al-Qadah.
	for _, day := range []string{"20250301", "20250331", "20250429"} {
		assert.Contains(t, out, "DTSTART;VALUE=DATE:"+day)
	}
	assert.Contains(t, out, "DTEND;VALUE=DATE:20250302")
	assert.Contains(t, out, "SUMMARY:১ রমজান ১৪৪৬ হিজরি")
	assert.Contains(t, out, "DTSTAMP:20261019T080000Z")
}

func TestExportDaily(t *testing.T) {
	var buf bytes.Buffer
	res, err := Export(&buf, spring2025(true))
	require.NoError(t, err)
	assert.Equal(t, 89, res.Events[KindDay])
	assert.Equal(t, 89+6, res.Total())
	assert.Equal(t, 95, strings.Count(buf.String(), "BEGIN:VEVENT"))
}

func TestExportSingleDay(t *testing.T) {
	d := calendar.CivilDate{Year: 2025, Month: time.March, Day: 1}
	var buf bytes.Buffer
	res, err := Export(&buf, ExportOptions{ProductID: "x", Start: d, End: d, Stamp: stamp})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Days)
	assert.Equal(t, 1, res.Events[KindHijriMonth])
}

func TestExportUIDsAreStable(t *testing.T) {
	d := calendar.CivilDate{Year: 2025, Month: time.March, Day: 1}
	assert.Equal(t, EventUID(KindHijriMonth, d), EventUID(KindHijriMonth, d))
	assert.NotEqual(t, EventUID(KindHijriMonth, d), EventUID(KindDay, d))
	assert.True(t, strings.HasSuffix(EventUID(KindDay, d), "@trical"))

	var a, b bytes.Buffer
	_, err := Export(&a, spring2025(false))
	require.NoError(t, err)
	_, err = Export(&b, spring2025(false))
	require.NoError(t, err)
	assert.Equal(t, a.String(), b.String())
	assert.Contains(t, a.String(), "UID:"+EventUID(KindHijriMonth, d))
}

func TestExportErrors(t *testing.T) {
	opts := spring2025(false)
	opts.Start, opts.End = opts.End, opts.Start
	_, err := Export(&bytes.Buffer{}, opts)
	assert.ErrorContains(t, err, "end is before start")

	opts = spring2025(false)
	opts.End = calendar.CivilDate{Year: 2040, Month: time.January, Day: 1}
	_, err = Export(&bytes.Buffer{}, opts)
	assert.ErrorContains(t, err, "exceeds")

	opts = spring2025(false)
	opts.Start.Month = 13
	_, err = Export(&bytes.Buffer{}, opts)
	var invalid *calendar.InvalidDateError
	assert.ErrorAs(t, err, &invalid)

	opts = spring2025(false)
	opts.ProductID = ""
	_, err = Export(&bytes.Buffer{}, opts)
	assert.Error(t, err)
}
