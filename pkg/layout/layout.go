// Package layout transforms a flat list of timed events into week, month
// and day view layouts. The output is purely geometric metadata (row
// membership, day offsets, pixel-like top/left/height/width); drawing it
// is the caller's concern.
package layout

import "time"

// DaysInWeek is the number of day columns in a week view.
const DaysInWeek = 7

// EventColor is an opaque primary/secondary display color pair. The
// engine carries it through untouched.
type EventColor struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
}

// EventAction is a named callback attached to an event. The engine never
// invokes it.
type EventAction struct {
	Label string
	Click func(Event)
}

// Event is a single materialized calendar event. Start is required; a nil
// End marks a point-in-time event. Events are treated as immutable input.
type Event struct {
	Start   time.Time     `json:"start"`
	End     *time.Time    `json:"end,omitempty"`
	Title   string        `json:"title"`
	Color   EventColor    `json:"color"`
	Actions []EventAction `json:"-"`
}

// EffectiveEnd returns the event's end, or its start for point events.
func (e Event) EffectiveEnd() time.Time {
	if e.End != nil {
		return *e.End
	}
	return e.Start
}

// WeekDay describes one calendar day. IsPast/IsToday/IsFuture are
// mutually exclusive and computed against the clock injected into the
// Builder.
type WeekDay struct {
	Date      time.Time `json:"date"`
	IsPast    bool      `json:"isPast"`
	IsToday   bool      `json:"isToday"`
	IsFuture  bool      `json:"isFuture"`
	IsWeekend bool      `json:"isWeekend"`
}

// WeekViewEvent is an event placed on the week grid. Offset is the
// 0-based day column (relative to the preceding events in its row once
// packed), Span the number of day columns. ExtendsLeft/ExtendsRight mark
// truncation at the visible week's edges.
type WeekViewEvent struct {
	Event        Event `json:"event"`
	Offset       int   `json:"offset"`
	Span         int   `json:"span"`
	ExtendsLeft  bool  `json:"extendsLeft"`
	ExtendsRight bool  `json:"extendsRight"`
}

// WeekViewEventRow is one horizontal band of non-colliding week events.
type WeekViewEventRow struct {
	Row []WeekViewEvent `json:"row"`
}

// MonthViewDay is a day cell of the month grid. Days outside the target
// month pad the grid to whole weeks and never carry events.
type MonthViewDay struct {
	WeekDay
	InMonth bool    `json:"inMonth"`
	Events  []Event `json:"events"`
}

// MonthView is the full month grid. Days always holds a multiple of
// seven entries; RowOffsets holds the index of each row's first day.
type MonthView struct {
	RowOffsets []int          `json:"rowOffsets"`
	Days       []MonthViewDay `json:"days"`
}

// DayViewEvent is an event positioned on the vertical day timeline. Top,
// Height, Left and Width share the unit of the caller's SegmentHeight and
// EventWidth configuration.
type DayViewEvent struct {
	Event         Event   `json:"event"`
	Top           float64 `json:"top"`
	Height        float64 `json:"height"`
	Left          float64 `json:"left"`
	Width         float64 `json:"width"`
	ExtendsTop    bool    `json:"extendsTop"`
	ExtendsBottom bool    `json:"extendsBottom"`
}

// DayView is the computed day layout. MaxWidth is the horizontal extent
// needed to contain all stacked columns, 0 when there are no events.
type DayView struct {
	Events   []DayViewEvent `json:"events"`
	MaxWidth float64        `json:"maxWidth"`
}

// TimeOfDay is an hour/minute pair bounding the visible day window.
type TimeOfDay struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// DayViewConfig holds the day view geometry parameters. HourSegments is
// the number of vertical subdivisions per hour; SegmentHeight the height
// of one subdivision; EventWidth the width of one event column.
type DayViewConfig struct {
	HourSegments  int
	DayStart      TimeOfDay
	DayEnd        TimeOfDay
	EventWidth    float64
	SegmentHeight float64
}

// Builder computes view layouts. WeekStart is the week-boundary
// convention; Now supplies the instant used to classify days as
// past/today/future. Builders are stateless and safe for concurrent use.
type Builder struct {
	WeekStart time.Weekday
	Now       func() time.Time
	PackRows  RowPacker
}

// NewBuilder returns a Builder using the given week-start convention,
// the wall clock and greedy row packing.
func NewBuilder(weekStart time.Weekday) *Builder {
	return &Builder{
		WeekStart: weekStart,
		Now:       time.Now,
		PackRows:  GreedyRowPacker,
	}
}

func (b *Builder) now() time.Time {
	if b.Now == nil {
		return time.Now()
	}
	return b.Now()
}

func (b *Builder) packRows(events []WeekViewEvent) []WeekViewEventRow {
	if b.PackRows == nil {
		return GreedyRowPacker(events)
	}
	return b.PackRows(events)
}
