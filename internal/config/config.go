package config

import (
	"fmt"
	"io/fs"
	"os"
	"strings"

	"cloudeng.io/errors"
	"github.com/go-playground/validator/v10"
	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"
)

// CaptureConfig controls the headless-browser PNG capture.
type CaptureConfig struct {
	// Width and Height are the viewport in pixels.
	Width  int `yaml:"width" json:"width" validate:"min=100,max=8192"`
	Height int `yaml:"height" json:"height" validate:"min=100,max=8192"`

	TimeoutSec int `yaml:"timeout_sec" json:"timeout_sec" validate:"min=1,max=600"`
}

// ICSConfig controls the iCalendar export.
type ICSConfig struct {
	ProductID string `yaml:"product_id" json:"product_id" validate:"required"`
	Name      string `yaml:"name" json:"name"`

	// Months is the default export length starting at the cursor month.
	Months int `yaml:"months" json:"months" validate:"min=1,max=120"`

	// Daily adds one event per day carrying the full tri-date, in addition
	// to the month-start events.
	Daily bool `yaml:"daily" json:"daily"`
}

// Config is the top-level application configuration.
type Config struct {
	// WeekStart is the first column of month grids: sunday (default),
	// monday or saturday.
	WeekStart string `yaml:"week_start" json:"week_start" validate:"oneof=sunday monday saturday"`

	// View is the default view for show and watch.
	View string `yaml:"view" json:"view" validate:"oneof=unified english bengali arabic all"`

	// Format is the default output format for show.
	Format string `yaml:"format" json:"format" validate:"oneof=text html"`

	// RefreshCron is a standard 5-field cron schedule used by watch.
	RefreshCron string `yaml:"refresh" json:"refresh" validate:"required"`

	// OutputDir receives calendar.html and preview.png from watch and capture.
	OutputDir string `yaml:"output_dir" json:"output_dir" validate:"required"`

	LogLevel string `yaml:"log_level" json:"log_level" validate:"oneof=debug info error"`

	Capture CaptureConfig `yaml:"capture" json:"capture"`
	ICS     ICSConfig     `yaml:"ics" json:"ics"`
}

// DefaultConfig returns an in-memory default configuration.
func DefaultConfig() *Config {
	return &Config{
		WeekStart:   "sunday",
		View:        "unified",
		Format:      "text",
		RefreshCron: "* * * * *",
		OutputDir:   "./out",
		LogLevel:    "info",
		Capture: CaptureConfig{
			Width:      984,
			Height:     1304,
			TimeoutSec: 30,
		},
		ICS: ICSConfig{
			ProductID: "-//trical//Tri-Calendar//BN",
			Name:      "বাংলা ও হিজরি তারিখ",
			Months:    12,
		},
	}
}

// Normalize fills in missing/zero values with defaults so that partial
// files still behave. Values that are set but invalid are left for Validate.
func (c *Config) Normalize() {
	def := DefaultConfig()
	c.WeekStart = strings.ToLower(strings.TrimSpace(c.WeekStart))
	c.View = strings.ToLower(strings.TrimSpace(c.View))
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))

	if c.WeekStart == "" {
		c.WeekStart = def.WeekStart
	}
	if c.View == "" {
		c.View = def.View
	}
	if c.Format == "" {
		c.Format = def.Format
	}
	if c.RefreshCron == "" {
		c.RefreshCron = def.RefreshCron
	}
	if c.OutputDir == "" {
		c.OutputDir = def.OutputDir
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	if c.Capture.Width == 0 {
		c.Capture.Width = def.Capture.Width
	}
	if c.Capture.Height == 0 {
		c.Capture.Height = def.Capture.Height
	}
	if c.Capture.TimeoutSec == 0 {
		c.Capture.TimeoutSec = def.Capture.TimeoutSec
	}
	if c.ICS.ProductID == "" {
		c.ICS.ProductID = def.ICS.ProductID
	}
	if c.ICS.Name == "" {
		c.ICS.Name = def.ICS.Name
	}
	if c.ICS.Months == 0 {
		c.ICS.Months = def.ICS.Months
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate reports every invalid field, not just the first.
func (c *Config) Validate() error {
	errs := &errors.M{}
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		for _, fe := range verrs {
			errs.Append(fmt.Errorf("config: %s: %v does not satisfy %q", fe.Namespace(), fe.Value(), fe.ActualTag()))
		}
	}
	if _, err := cron.ParseStandard(c.RefreshCron); err != nil {
		errs.Append(fmt.Errorf("config: refresh %q: %w", c.RefreshCron, err))
	}
	return errs.Err()
}

// Load loads configuration from the given YAML path.
//
// An empty path or a missing file yields the defaults; nothing is written
// to disk. An existing file is decoded, normalized and validated.
func Load(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, err
	}
	return Parse(data)
}

// Parse decodes YAML configuration bytes.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
