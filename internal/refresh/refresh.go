// Package refresh keeps a rendered calendar page on disk current.
//
// A Job renders the month around "today" into OutputDir/calendar.html and,
// when a capturer is configured, a PNG preview next to it. Watch runs the
// job once and then on every tick of a standard cron schedule until the
// context is canceled. Work is only redone when the date has changed.
package refresh

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"trical/internal/calendar"
	"trical/internal/capture"
	"trical/internal/grid"
	appLog "trical/internal/log"
	"trical/internal/model"
	"trical/internal/render"
)

const (
	HTMLName    = "calendar.html"
	PreviewName = "preview.png"
)

// CaptureFunc produces a PNG from a rendered page.
type CaptureFunc func(ctx context.Context, opts capture.Options) error

// Job renders one page per distinct day.
type Job struct {
	OutputDir string
	View      model.View
	WeekStart time.Weekday

	// Now defaults to time.Now.
	Now func() time.Time

	// Capture is optional; nil skips the PNG.
	Capture        CaptureFunc
	CaptureOptions capture.Options

	mu   sync.Mutex
	last calendar.CivilDate
}

// Result describes one Run.
type Result struct {
	Date     calendar.CivilDate
	Rendered bool
	HTMLPath string
	PNGPath  string
}

func (j *Job) now() time.Time {
	if j.Now != nil {
		return j.Now()
	}
	return time.Now()
}

// Run renders the page if the date has changed since the last successful
// run, or unconditionally when force is set.
func (j *Job) Run(ctx context.Context, force bool) (Result, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	today := calendar.CivilDateOf(j.now())
	res := Result{Date: today, HTMLPath: filepath.Join(j.OutputDir, HTMLName)}
	if !force && today == j.last {
		appLog.Debug("refresh skipped, date unchanged", "date", today.String())
		return res, nil
	}

	if err := os.MkdirAll(j.OutputDir, 0o755); err != nil {
		return res, fmt.Errorf("refresh: %w", err)
	}
	if err := j.writeHTML(today, res.HTMLPath); err != nil {
		return res, err
	}

	if j.Capture != nil {
		opts := j.CaptureOptions
		opts.HTMLPath = res.HTMLPath
		opts.OutputPath = filepath.Join(j.OutputDir, PreviewName)
		if err := j.Capture(ctx, opts); err != nil {
			return res, fmt.Errorf("refresh: %w", err)
		}
		res.PNGPath = opts.OutputPath
	}

	j.last = today
	res.Rendered = true
	appLog.Info("refresh rendered", "date", today.String(), "html", res.HTMLPath, "png", res.PNGPath)
	return res, nil
}

// writeHTML renders to a temporary file and renames it into place so that
// a concurrent reader never sees a partial page.
func (j *Job) writeHTML(today calendar.CivilDate, path string) error {
	month, err := grid.Build(today, today, j.WeekStart)
	if err != nil {
		return fmt.Errorf("refresh: %w", err)
	}
	info, err := calendar.Info(today)
	if err != nil {
		return fmt.Errorf("refresh: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".calendar-*.html")
	if err != nil {
		return fmt.Errorf("refresh: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := render.HTML(tmp, render.Page{Month: month, View: j.View, Info: info}); err != nil {
		tmp.Close()
		return fmt.Errorf("refresh: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("refresh: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("refresh: %w", err)
	}
	return nil
}

// Watch runs the job immediately and then on every tick of schedule
// (standard 5-field cron) until ctx is done. Errors from scheduled runs
// are logged, not returned.
func Watch(ctx context.Context, job *Job, schedule string) error {
	sched, err := cron.ParseStandard(schedule)
	if err != nil {
		return fmt.Errorf("refresh: schedule %q: %w", schedule, err)
	}
	if _, err := job.Run(ctx, true); err != nil {
		return err
	}

	c := cron.New()
	c.Schedule(sched, cron.FuncJob(func() {
		if _, err := job.Run(ctx, false); err != nil {
			appLog.Error("scheduled refresh failed", err)
		}
	}))
	c.Start()
	appLog.Info("refresh scheduler started", "schedule", schedule, "next", sched.Next(job.now()).Format(time.RFC3339))

	<-ctx.Done()
	<-c.Stop().Done()
	appLog.Info("refresh scheduler stopped")
	return nil
}
