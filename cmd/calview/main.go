package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/username/calview/internal/config"
	"github.com/username/calview/internal/source"
	"github.com/username/calview/pkg/dateutil"
	"github.com/username/calview/pkg/layout"
)

var (
	configPath string
	eventsPath string
	dateStr    string
	logger     *zap.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "calview",
		Short: "Calendar layout inspector",
		Long:  "Compute week, month and day view layouts from calendar events and print the geometric metadata as JSON",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load config to get log file path
			cfg, err := config.Load(configPath)
			if err == nil && cfg.Log.File != "" {
				logger, err = initFileLogger(cfg.Log.File, cfg.Log.Level)
				if err != nil {
					initLogger() // Fallback to console
				}
			} else {
				initLogger() // Default console logger
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path")
	rootCmd.PersistentFlags().StringVarP(&eventsPath, "events", "e", "", "Events file (.ics), overrides config")
	rootCmd.PersistentFlags().StringVarP(&dateStr, "date", "d", "", "Reference date (YYYY-MM-DD), defaults to today")

	rootCmd.AddCommand(weekCmd())
	rootCmd.AddCommand(headerCmd())
	rootCmd.AddCommand(monthCmd())
	rootCmd.AddCommand(dayCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// viewDate resolves the --date flag, defaulting to today
func viewDate() (time.Time, error) {
	if dateStr == "" {
		return dateutil.Today(), nil
	}
	date, err := dateutil.ParseDate(dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date: %w", err)
	}
	// Parsed dates are UTC; pin them to the local calendar so week and
	// day boundaries follow the machine's timezone.
	return time.Date(date.Year(), date.Month(), date.Day(),
		date.Hour(), date.Minute(), 0, 0, time.Local), nil
}

// loadEvents reads the event list named by --events or the config file
func loadEvents(cfg *config.Config) ([]layout.Event, error) {
	path := eventsPath
	if path == "" {
		path = cfg.Events.File
	}
	if path == "" {
		return nil, fmt.Errorf("no events file: set --events or events.file in config")
	}

	loader := source.NewLoader(cfg.Events.GetColor(), logger)
	return loader.LoadFile(path)
}

// printJSON writes a computed layout to stdout
func printJSON(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode layout: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

func initLogger() {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.OutputPaths = []string{"stderr"}

	var err error
	logger, err = cfg.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
}

func initFileLogger(logFile string, level string) (*zap.Logger, error) {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    100,  // MB
		MaxBackups: 3,    // Keep max 3 old log files
		MaxAge:     28,   // days
		Compress:   true, // Compress old logs with gzip
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		zapLevel,
	)

	return zap.New(core), nil
}
