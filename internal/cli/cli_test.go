package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trical/internal/capture"
)

func fixedNow() time.Time {
	return time.Date(2026, time.October, 19, 9, 30, 0, 0, time.UTC)
}

func run(t *testing.T, env Env, args ...string) (string, error) {
	t.Helper()
	if env.Now == nil {
		env.Now = fixedNow
	}
	cmd := NewRootCommand(env)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cfg := filepath.Join(t.TempDir(), "missing.yaml")
	cmd.SetArgs(append([]string{"--config", cfg, "--log-level", "error"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestShowDefaults(t *testing.T) {
	out, err := run(t, Env{}, "show")
	require.NoError(t, err)
	assert.Contains(t, out, "October 2026  (19)")
	assert.Contains(t, out, "বাংলা: আশ্বিন - কার্তিক (১৪৩৩)")
	assert.Contains(t, out, "Week:           43")
}

func TestShowFlags(t *testing.T) {
	for _, tc := range []struct {
		name string
		args []string
		want []string
		not  []string
	}{
		{
			name: "offset",
			args: []string{"show", "--view", "english", "--offset", "1"},
			want: []string{"November 2026"},
			not:  []string{"[19]"},
		},
		{
			name: "year and month",
			args: []string{"show", "--view", "ENGLISH", "--year", "2025", "--month", "3", "--no-info"},
			want: []string{"March 2025"},
			not:  []string{"Day of year:"},
		},
		{
			name: "monday first",
			args: []string{"show", "--view", "english", "--week-start", "monday"},
			want: []string{"   Mon   Tue"},
		},
		{
			name: "bengali",
			args: []string{"show", "--view", "bengali"},
			want: []string{"কার্তিক ১৪৩৩"},
		},
		{
			name: "html",
			args: []string{"show", "--format", "html", "--view", "all"},
			want: []string{`data-ready="true"`, `id="arabicCard"`},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			out, err := run(t, Env{}, tc.args...)
			require.NoError(t, err)
			for _, w := range tc.want {
				assert.Contains(t, out, w)
			}
			for _, n := range tc.not {
				assert.NotContains(t, out, n)
			}
		})
	}
}

func TestShowErrors(t *testing.T) {
	for _, args := range [][]string{
		{"show", "--month", "13"},
		{"show", "--view", "lunar"},
		{"show", "--week-start", "friday"},
		{"show", "--format", "pdf"},
	} {
		_, err := run(t, Env{}, args...)
		assert.Error(t, err, strings.Join(args, " "))
	}
}

func TestToday(t *testing.T) {
	out, err := run(t, Env{}, "today")
	require.NoError(t, err)
	assert.Contains(t, out, "Today:          Monday, 19 October 2026")
	assert.Contains(t, out, "Bengali:        ৩ কার্তিক ১৪৩৩")
	assert.Contains(t, out, "Day of year:    292")
}

func TestExportICS(t *testing.T) {
	out, err := run(t, Env{}, "export-ics", "--year", "2025", "--month", "2", "--months", "3")
	require.NoError(t, err)
	assert.Equal(t, 6, strings.Count(out, "BEGIN:VEVENT"))
	assert.Contains(t, out, "DTSTAMP:20261019T093000Z")

	path := filepath.Join(t.TempDir(), "feeds", "tri.ics")
	_, err = run(t, Env{}, "export-ics", "--year", "2025", "--month", "2", "--months", "1", "--daily", "-o", path)
	require.NoError(t, err)
	body, err := os.ReadFile(path)
	require.NoError(t, err)
	// 28 daily events plus Falgun 1.
	assert.Equal(t, 29, strings.Count(string(body), "BEGIN:VEVENT"))
}

func TestCaptureUsesConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	outDir := filepath.Join(dir, "out")
	require.NoError(t, os.WriteFile(cfgPath, []byte("output_dir: "+outDir+"\ncapture:\n  width: 640\n"), 0o600))

	var got capture.Options
	env := Env{
		Now: fixedNow,
		Capture: func(_ context.Context, opts capture.Options) error {
			got = opts
			return os.WriteFile(opts.OutputPath, []byte("png"), 0o644)
		},
	}
	cmd := NewRootCommand(env)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--config", cfgPath, "--log-level", "error", "capture", "--view", "english"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, 640, got.Width)
	assert.Equal(t, 30*time.Second, got.Timeout)
	assert.Equal(t, filepath.Join(outDir, "calendar.html"), got.HTMLPath)
	assert.Contains(t, out.String(), filepath.Join(outDir, "preview.png"))
	assert.FileExists(t, filepath.Join(outDir, "preview.png"))
}

func TestBadLogLevel(t *testing.T) {
	cmd := NewRootCommand(Env{Now: fixedNow})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", "", "--log-level", "loud", "today"})
	assert.Error(t, cmd.Execute())
}
