package refresh

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trical/internal/capture"
	"trical/internal/model"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }

func newJob(t *testing.T, clock *fakeClock) *Job {
	t.Helper()
	return &Job{
		OutputDir: filepath.Join(t.TempDir(), "out"),
		View:      model.ViewUnified,
		WeekStart: time.Sunday,
		Now:       clock.Now,
	}
}

func TestRunRendersOncePerDay(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, time.October, 19, 9, 0, 0, 0, time.UTC)}
	job := newJob(t, clock)
	ctx := context.Background()

	res, err := job.Run(ctx, false)
	require.NoError(t, err)
	assert.True(t, res.Rendered)
	assert.Equal(t, "2026-10-19", res.Date.String())

	body, err := os.ReadFile(res.HTMLPath)
	require.NoError(t, err)
	assert.Contains(t, string(body), `data-ready="true"`)
	assert.Contains(t, string(body), "October 2026")

	clock.t = clock.t.Add(3 * time.Hour)
	res, err = job.Run(ctx, false)
	require.NoError(t, err)
	assert.False(t, res.Rendered)

	res, err = job.Run(ctx, true)
	require.NoError(t, err)
	assert.True(t, res.Rendered)

	clock.t = time.Date(2026, time.November, 1, 0, 0, 30, 0, time.UTC)
	res, err = job.Run(ctx, false)
	require.NoError(t, err)
	assert.True(t, res.Rendered)
	body, err = os.ReadFile(res.HTMLPath)
	require.NoError(t, err)
	assert.Contains(t, string(body), "November 2026")

	// No temporary files are left behind.
	entries, err := os.ReadDir(job.OutputDir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasPrefix(e.Name(), ".calendar-"), e.Name())
	}
}

func TestRunCapture(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, time.October, 19, 9, 0, 0, 0, time.UTC)}
	job := newJob(t, clock)
	job.CaptureOptions = capture.Options{Width: 600, Height: 800}

	var got capture.Options
	job.Capture = func(_ context.Context, opts capture.Options) error {
		got = opts
		return os.WriteFile(opts.OutputPath, []byte("png"), 0o644)
	}

	res, err := job.Run(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(job.OutputDir, PreviewName), res.PNGPath)
	assert.Equal(t, res.HTMLPath, got.HTMLPath)
	assert.Equal(t, 600, got.Width)
	assert.FileExists(t, res.PNGPath)
}

func TestRunCaptureFailureRetriesNextTick(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, time.October, 19, 9, 0, 0, 0, time.UTC)}
	job := newJob(t, clock)
	fail := true
	job.Capture = func(context.Context, capture.Options) error {
		if fail {
			return errors.New("no browser")
		}
		return nil
	}

	_, err := job.Run(context.Background(), false)
	assert.ErrorContains(t, err, "no browser")

	fail = false
	res, err := job.Run(context.Background(), false)
	require.NoError(t, err)
	assert.True(t, res.Rendered)
}

func TestWatch(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, time.October, 19, 9, 0, 0, 0, time.UTC)}
	job := newJob(t, clock)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	require.NoError(t, Watch(ctx, job, "*/5 * * * *"))
	assert.FileExists(t, filepath.Join(job.OutputDir, HTMLName))
}

func TestWatchBadSchedule(t *testing.T) {
	clock := &fakeClock{t: time.Now()}
	job := newJob(t, clock)
	err := Watch(context.Background(), job, "every minute")
	assert.ErrorContains(t, err, `schedule "every minute"`)
	assert.NoFileExists(t, filepath.Join(job.OutputDir, HTMLName))
}
