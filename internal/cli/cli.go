// Package cli wires the trical subcommands.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"trical/internal/calendar"
	"trical/internal/capture"
	"trical/internal/config"
	"trical/internal/grid"
	"trical/internal/ics"
	appLog "trical/internal/log"
	"trical/internal/model"
	"trical/internal/refresh"
	"trical/internal/render"
)

const (
	envConfig   = "TRICAL_CONFIG"
	envLogLevel = "TRICAL_LOG_LEVEL"
)

// Env carries the process-level dependencies commands use, so tests can
// pin the clock and stub the browser.
type Env struct {
	Now     func() time.Time
	Capture refresh.CaptureFunc
}

func (e Env) today() calendar.CivilDate {
	now := time.Now
	if e.Now != nil {
		now = e.Now
	}
	return calendar.CivilDateOf(now())
}

type app struct {
	env        Env
	configPath string
	logLevel   string
	cfg        *config.Config
}

// NewRootCommand builds the trical command tree. Flag defaults for the
// config path and log level come from TRICAL_CONFIG and TRICAL_LOG_LEVEL.
func NewRootCommand(env Env) *cobra.Command {
	if env.Capture == nil {
		env.Capture = capture.CapturePNG
	}
	a := &app{env: env}

	root := &cobra.Command{
		Use:           "trical",
		Short:         "Gregorian, Bengali and Hijri calendars side by side",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", os.Getenv(envConfig), "Path to YAML config file (defaults apply if missing)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", os.Getenv(envLogLevel), "Log level: debug, info or error (overrides config)")

	root.AddCommand(
		a.newShowCommand(),
		a.newTodayCommand(),
		a.newExportCommand(),
		a.newCaptureCommand(),
		a.newWatchCommand(),
	)
	return root
}

func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := cfg.LogLevel
	if a.logLevel != "" {
		level = a.logLevel
	}
	lv, err := appLog.ParseLevel(level)
	if err != nil {
		return err
	}
	appLog.SetLevel(lv)
	appLog.Debug("effective config",
		"config_path", a.configPath,
		"week_start", cfg.WeekStart,
		"view", cfg.View,
		"format", cfg.Format,
		"refresh", cfg.RefreshCron,
		"output_dir", cfg.OutputDir,
	)
	return nil
}

// viewOptions resolves flags that fall back to config values.
type viewOptions struct {
	view      string
	weekStart string
}

func (o *viewOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.view, "view", "", "View: unified, english, bengali, arabic or all")
	cmd.Flags().StringVar(&o.weekStart, "week-start", "", "First column: sunday, monday or saturday")
}

func (o viewOptions) resolve(cfg *config.Config) (model.View, time.Weekday, error) {
	view, ws := cfg.View, cfg.WeekStart
	if o.view != "" {
		view = o.view
	}
	if o.weekStart != "" {
		ws = o.weekStart
	}
	v, err := model.ParseView(view)
	if err != nil {
		return "", 0, err
	}
	wd, err := grid.ParseWeekStart(strings.ToLower(strings.TrimSpace(ws)))
	if err != nil {
		return "", 0, err
	}
	return v, wd, nil
}

// monthFlags selects a month by number rather than by parsing a date.
type monthFlags struct {
	year  int
	month int
}

func (f *monthFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.year, "year", 0, "Gregorian year (default: current)")
	cmd.Flags().IntVar(&f.month, "month", 0, "Gregorian month 1-12 (default: current)")
}

func (f monthFlags) resolve(today calendar.CivilDate) (calendar.CivilDate, error) {
	if f.year == 0 && f.month == 0 {
		return today, nil
	}
	d := today.FirstOfMonth()
	if f.year != 0 {
		d.Year = f.year
	}
	if f.month != 0 {
		d.Month = time.Month(f.month)
	}
	if err := d.Validate(); err != nil {
		return calendar.CivilDate{}, err
	}
	return d, nil
}

func (a *app) newShowCommand() *cobra.Command {
	var (
		vo     viewOptions
		mf     monthFlags
		format string
		offset int
		noInfo bool
	)
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print a month in one or more calendars",
		RunE: func(cmd *cobra.Command, args []string) error {
			view, ws, err := vo.resolve(a.cfg)
			if err != nil {
				return err
			}
			if format == "" {
				format = a.cfg.Format
			}
			today := a.env.today()
			cursor, err := mf.resolve(today)
			if err != nil {
				return err
			}
			cursor = cursor.AddMonths(offset)

			month, err := grid.Build(cursor, today, ws)
			if err != nil {
				return err
			}
			page := render.Page{Month: month, View: view}
			if !noInfo {
				if page.Info, err = calendar.Info(today); err != nil {
					return err
				}
			}

			switch strings.ToLower(format) {
			case "text":
				return render.Text(cmd.OutOrStdout(), page)
			case "html":
				return render.HTML(cmd.OutOrStdout(), page)
			}
			return fmt.Errorf("unsupported format %q", format)
		},
	}
	vo.register(cmd)
	mf.register(cmd)
	cmd.Flags().StringVar(&format, "format", "", "Output format: text or html")
	cmd.Flags().IntVar(&offset, "offset", 0, "Months to move from the selected month (negative for earlier)")
	cmd.Flags().BoolVar(&noInfo, "no-info", false, "Omit the info bar")
	return cmd
}

func (a *app) newTodayCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Print today's date in all three calendars",
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := calendar.Info(a.env.today())
			if err != nil {
				return err
			}
			return render.InfoText(cmd.OutOrStdout(), info)
		},
	}
}

func (a *app) newExportCommand() *cobra.Command {
	var (
		mf     monthFlags
		months int
		daily  bool
		out    string
	)
	cmd := &cobra.Command{
		Use:   "export-ics",
		Short: "Write an iCalendar feed of Bengali and Hijri month starts",
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := mf.resolve(a.env.today())
			if err != nil {
				return err
			}
			start = start.FirstOfMonth()
			if months <= 0 {
				months = a.cfg.ICS.Months
			}
			if !cmd.Flags().Changed("daily") {
				daily = a.cfg.ICS.Daily
			}
			opts := ics.ExportOptions{
				ProductID: a.cfg.ICS.ProductID,
				Name:      a.cfg.ICS.Name,
				Start:     start,
				End:       start.AddMonths(months).AddDays(-1),
				Daily:     daily,
			}
			if a.env.Now != nil {
				opts.Stamp = a.env.Now()
			}

			w, closeFn, err := openOutput(cmd.OutOrStdout(), out)
			if err != nil {
				return err
			}
			_, err = ics.Export(w, opts)
			if cerr := closeFn(); err == nil {
				err = cerr
			}
			return err
		},
	}
	mf.register(cmd)
	cmd.Flags().IntVar(&months, "months", 0, "Number of months to export (default from config)")
	cmd.Flags().BoolVar(&daily, "daily", false, "Add one event per day with the full tri-date")
	cmd.Flags().StringVarP(&out, "out", "o", "-", "Output file, or - for stdout")
	return cmd
}

func openOutput(stdout io.Writer, path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return stdout, func() error { return nil }, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

func (a *app) newJob(vo viewOptions, withCapture bool) (*refresh.Job, error) {
	view, ws, err := vo.resolve(a.cfg)
	if err != nil {
		return nil, err
	}
	job := &refresh.Job{
		OutputDir: a.cfg.OutputDir,
		View:      view,
		WeekStart: ws,
		Now:       a.env.Now,
	}
	if withCapture {
		job.Capture = a.env.Capture
		job.CaptureOptions = capture.Options{
			Width:   a.cfg.Capture.Width,
			Height:  a.cfg.Capture.Height,
			Timeout: time.Duration(a.cfg.Capture.TimeoutSec) * time.Second,
		}
	}
	return job, nil
}

func (a *app) newCaptureCommand() *cobra.Command {
	var vo viewOptions
	cmd := &cobra.Command{
		Use:   "capture",
		Short: "Render today's month to HTML and screenshot it with headless Chromium",
		RunE: func(cmd *cobra.Command, args []string) error {
			job, err := a.newJob(vo, true)
			if err != nil {
				return err
			}
			res, err := job.Run(cmd.Context(), true)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.HTMLPath)
			fmt.Fprintln(cmd.OutOrStdout(), res.PNGPath)
			return nil
		},
	}
	vo.register(cmd)
	return cmd
}

func (a *app) newWatchCommand() *cobra.Command {
	var (
		vo          viewOptions
		withCapture bool
	)
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Keep the rendered page current on the configured cron schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			job, err := a.newJob(vo, withCapture)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return refresh.Watch(ctx, job, a.cfg.RefreshCron)
		},
	}
	vo.register(cmd)
	cmd.Flags().BoolVar(&withCapture, "capture", false, "Also refresh the PNG preview")
	return cmd
}
