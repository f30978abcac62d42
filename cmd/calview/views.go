package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/username/calview/internal/config"
	"github.com/username/calview/pkg/layout"
)

func weekCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "week",
		Short: "Lay out the week containing the reference date",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			date, err := viewDate()
			if err != nil {
				return err
			}

			events, err := loadEvents(cfg)
			if err != nil {
				return err
			}

			builder := layout.NewBuilder(cfg.View.GetWeekStart())
			rows := builder.WeekView(events, date)

			logger.Info("Computed week view",
				zap.Time("view_date", date),
				zap.Int("events", len(events)),
				zap.Int("rows", len(rows)))

			return printJSON(rows)
		},
	}
}

func headerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "header",
		Short: "Print the seven day descriptors of the reference week",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			date, err := viewDate()
			if err != nil {
				return err
			}

			builder := layout.NewBuilder(cfg.View.GetWeekStart())
			return printJSON(builder.WeekViewHeader(date))
		},
	}
}

func monthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "month",
		Short: "Lay out the month grid containing the reference date",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			date, err := viewDate()
			if err != nil {
				return err
			}

			events, err := loadEvents(cfg)
			if err != nil {
				return err
			}

			builder := layout.NewBuilder(cfg.View.GetWeekStart())
			view := builder.MonthView(events, date)

			logger.Info("Computed month view",
				zap.Time("view_date", date),
				zap.Int("events", len(events)),
				zap.Int("days", len(view.Days)))

			return printJSON(view)
		},
	}
}

func dayCmd() *cobra.Command {
	var (
		hourSegments  int
		dayStart      string
		dayEnd        string
		eventWidth    float64
		segmentHeight float64
	)

	cmd := &cobra.Command{
		Use:   "day",
		Short: "Lay out the vertical timeline of the reference date",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			// Flag overrides on top of config defaults
			if cmd.Flags().Changed("hour-segments") {
				cfg.Day.HourSegments = hourSegments
			}
			if cmd.Flags().Changed("day-start") {
				cfg.Day.Start = dayStart
			}
			if cmd.Flags().Changed("day-end") {
				cfg.Day.End = dayEnd
			}
			if cmd.Flags().Changed("event-width") {
				cfg.Day.EventWidth = eventWidth
			}
			if cmd.Flags().Changed("segment-height") {
				cfg.Day.SegmentHeight = segmentHeight
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid day view settings: %w", err)
			}

			date, err := viewDate()
			if err != nil {
				return err
			}

			events, err := loadEvents(cfg)
			if err != nil {
				return err
			}

			builder := layout.NewBuilder(cfg.View.GetWeekStart())
			view := builder.DayView(events, date, cfg.Day.DayViewConfig())

			logger.Info("Computed day view",
				zap.Time("view_date", date),
				zap.Int("events", len(view.Events)),
				zap.Float64("max_width", view.MaxWidth))

			return printJSON(view)
		},
	}

	cmd.Flags().IntVar(&hourSegments, "hour-segments", 2, "Vertical subdivisions per hour")
	cmd.Flags().StringVar(&dayStart, "day-start", "00:00", "Start of the visible day window (HH:MM)")
	cmd.Flags().StringVar(&dayEnd, "day-end", "23:59", "End of the visible day window (HH:MM)")
	cmd.Flags().Float64Var(&eventWidth, "event-width", 150, "Width of one event column")
	cmd.Flags().Float64Var(&segmentHeight, "segment-height", 30, "Height of one hour segment")

	return cmd
}
