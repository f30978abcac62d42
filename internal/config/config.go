package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/username/calview/pkg/dateutil"
	"github.com/username/calview/pkg/layout"
)

// Config represents application configuration
type Config struct {
	View   ViewConfig   `mapstructure:"view"`
	Day    DayConfig    `mapstructure:"day"`
	Events EventsConfig `mapstructure:"events"`
	Log    LogConfig    `mapstructure:"log"`
}

// ViewConfig represents shared view settings
type ViewConfig struct {
	WeekStart string `mapstructure:"week_start"` // "sunday", "monday", ...
}

// DayConfig represents day view geometry defaults
type DayConfig struct {
	HourSegments  int     `mapstructure:"hour_segments"`
	Start         string  `mapstructure:"start"` // HH:MM
	End           string  `mapstructure:"end"`   // HH:MM
	EventWidth    float64 `mapstructure:"event_width"`
	SegmentHeight float64 `mapstructure:"segment_height"`
}

// EventsConfig represents the event source
type EventsConfig struct {
	File  string      `mapstructure:"file"`
	Color ColorConfig `mapstructure:"color"`
}

// ColorConfig represents the display color pair attached to loaded events
type ColorConfig struct {
	Primary   string `mapstructure:"primary"`
	Secondary string `mapstructure:"secondary"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// Load loads configuration from file
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.calview")
		v.AddConfigPath("/etc/calview")
	}

	setDefaults(v)

	// Read environment variables
	v.AutomaticEnv()

	// Read config file; a missing file falls back to defaults
	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("view.week_start", "sunday")
	v.SetDefault("day.hour_segments", 2)
	v.SetDefault("day.start", "00:00")
	v.SetDefault("day.end", "23:59")
	v.SetDefault("day.event_width", 150)
	v.SetDefault("day.segment_height", 30)
	v.SetDefault("events.color.primary", "#1e90ff")
	v.SetDefault("events.color.secondary", "#d1e8ff")
	v.SetDefault("log.level", "info")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := dateutil.ParseWeekday(c.View.WeekStart); err != nil {
		return fmt.Errorf("view.week_start: %w", err)
	}

	if c.Day.HourSegments <= 0 {
		return fmt.Errorf("day.hour_segments must be positive")
	}
	if c.Day.EventWidth <= 0 {
		return fmt.Errorf("day.event_width must be positive")
	}
	if c.Day.SegmentHeight <= 0 {
		return fmt.Errorf("day.segment_height must be positive")
	}

	if _, err := parseTimeOfDay(c.Day.Start); err != nil {
		return fmt.Errorf("day.start: %w", err)
	}
	if _, err := parseTimeOfDay(c.Day.End); err != nil {
		return fmt.Errorf("day.end: %w", err)
	}

	return nil
}

// GetWeekStart returns the configured week-start weekday
func (c *ViewConfig) GetWeekStart() time.Weekday {
	day, err := dateutil.ParseWeekday(c.WeekStart)
	if err != nil {
		return time.Sunday
	}
	return day
}

// GetDayStart returns the configured start of the visible day window
func (c *DayConfig) GetDayStart() layout.TimeOfDay {
	tod, err := parseTimeOfDay(c.Start)
	if err != nil {
		return layout.TimeOfDay{Hour: 0, Minute: 0}
	}
	return tod
}

// GetDayEnd returns the configured end of the visible day window
func (c *DayConfig) GetDayEnd() layout.TimeOfDay {
	tod, err := parseTimeOfDay(c.End)
	if err != nil {
		return layout.TimeOfDay{Hour: 23, Minute: 59}
	}
	return tod
}

// DayViewConfig assembles the layout engine's day view parameters
func (c *DayConfig) DayViewConfig() layout.DayViewConfig {
	return layout.DayViewConfig{
		HourSegments:  c.HourSegments,
		DayStart:      c.GetDayStart(),
		DayEnd:        c.GetDayEnd(),
		EventWidth:    c.EventWidth,
		SegmentHeight: c.SegmentHeight,
	}
}

// GetColor returns the display color pair for loaded events
func (c *EventsConfig) GetColor() layout.EventColor {
	return layout.EventColor{
		Primary:   c.Color.Primary,
		Secondary: c.Color.Secondary,
	}
}

func parseTimeOfDay(value string) (layout.TimeOfDay, error) {
	var h, m int
	if _, err := fmt.Sscanf(value, "%d:%d", &h, &m); err != nil {
		return layout.TimeOfDay{}, fmt.Errorf("expected HH:MM, got %q", value)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return layout.TimeOfDay{}, fmt.Errorf("time %q out of range", value)
	}
	return layout.TimeOfDay{Hour: h, Minute: m}, nil
}
