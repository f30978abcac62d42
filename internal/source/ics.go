// Package source loads materialized calendar events from iCalendar files
// for the layout engine. Recurring events are not expanded; only the base
// instance of a VEVENT carrying an RRULE is loaded.
package source

import (
	"fmt"
	"io"
	"os"

	ical "github.com/arran4/golang-ical"
	"go.uber.org/zap"

	"github.com/username/calview/pkg/layout"
)

// Loader reads ICS payloads into layout events, attaching a fixed display
// color pair.
type Loader struct {
	color  layout.EventColor
	logger *zap.Logger
}

// NewLoader creates an ICS loader
func NewLoader(color layout.EventColor, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		color:  color,
		logger: logger,
	}
}

// LoadFile reads and parses an ICS file
func (l *Loader) LoadFile(path string) ([]layout.Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open events file: %w", err)
	}
	defer f.Close()

	events, err := l.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	l.logger.Info("Loaded events",
		zap.String("file", path),
		zap.Int("count", len(events)))

	return events, nil
}

// Parse parses an ICS payload into layout events. Malformed VEVENTs are
// skipped with a warning so one bad entry does not lose the calendar.
func (l *Loader) Parse(r io.Reader) ([]layout.Event, error) {
	cal, err := ical.ParseCalendar(r)
	if err != nil {
		return nil, err
	}

	events := make([]layout.Event, 0)
	for _, ve := range cal.Events() {
		event, err := l.parseVEvent(ve)
		if err != nil {
			l.logger.Warn("Skipping event",
				zap.String("uid", uidOf(ve)),
				zap.Error(err))
			continue
		}
		events = append(events, event)
	}

	return events, nil
}

func (l *Loader) parseVEvent(ve *ical.VEvent) (layout.Event, error) {
	start, err := ve.GetStartAt()
	if err != nil {
		// DATE-valued DTSTART (all-day events)
		start, err = ve.GetAllDayStartAt()
		if err != nil {
			return layout.Event{}, fmt.Errorf("missing or invalid DTSTART: %w", err)
		}
	}

	event := layout.Event{
		Start: start,
		Color: l.color,
	}

	if end, err := ve.GetEndAt(); err == nil {
		event.End = &end
	} else if end, err := ve.GetAllDayEndAt(); err == nil {
		event.End = &end
	}

	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		event.Title = p.Value
	}

	if rrule := ve.GetProperty(ical.ComponentPropertyRrule); rrule != nil {
		l.logger.Debug("Recurrence rule not expanded, using base instance only",
			zap.String("uid", uidOf(ve)),
			zap.String("rrule", rrule.Value))
	}

	return event, nil
}

func uidOf(ve *ical.VEvent) string {
	if p := ve.GetProperty(ical.ComponentPropertyUniqueId); p != nil {
		return p.Value
	}
	return ""
}
