package layout

import (
	"sort"
	"time"

	"github.com/username/calview/pkg/dateutil"
)

// RowPacker assigns week events, pre-sorted by start time, to rows. The
// offsets of returned events are rebased to be relative to the preceding
// event in their row.
type RowPacker func(events []WeekViewEvent) []WeekViewEventRow

// DayOffset returns the 0-based day column of the event within the week
// beginning at weekStart. Events starting before the week begin at
// column 0.
func DayOffset(event Event, weekStart time.Time) int {
	startOfDay := dateutil.StartOfDay(event.Start)
	if !startOfDay.After(weekStart) {
		return 0
	}
	return dateutil.DayDiff(weekStart, startOfDay)
}

// daySpan returns the number of day columns the event occupies, given its
// offset. Point events span one column. The span is an inclusive day
// count (end-of-day plus one minute), capped at a full week and shrunk so
// the event never exceeds the week's right edge.
func daySpan(event Event, offset int, weekStart time.Time) int {
	span := 1
	if event.End != nil {
		begin := event.Start
		if begin.Before(weekStart) {
			begin = weekStart
		}
		endMark := dateutil.EndOfDay(*event.End).Add(time.Minute)
		span = dateutil.DayDiff(dateutil.StartOfDay(begin), endMark)
		if span > DaysInWeek {
			span = DaysInWeek
		}
	}
	if total := offset + span; total > DaysInWeek {
		span -= total - DaysInWeek
	}
	return span
}

// weekDay builds the day descriptor for a day-start date, classifying it
// against the given current instant.
func weekDay(date, now time.Time) WeekDay {
	today := dateutil.StartOfDay(now)
	return WeekDay{
		Date:      date,
		IsPast:    date.Before(today),
		IsToday:   date.Equal(today),
		IsFuture:  date.After(today),
		IsWeekend: dateutil.IsWeekend(date),
	}
}

// WeekViewHeader returns the seven day descriptors of viewDate's week.
func (b *Builder) WeekViewHeader(viewDate time.Time) []WeekDay {
	start := dateutil.StartOfWeek(viewDate, b.WeekStart)
	now := b.now()

	days := make([]WeekDay, 0, DaysInWeek)
	for i := 0; i < DaysInWeek; i++ {
		days = append(days, weekDay(dateutil.AddDays(start, i), now))
	}
	return days
}

// WeekView lays out the events of viewDate's week into horizontal rows.
// Events are sorted by start time, ties broken by later effective end,
// then packed by the Builder's RowPacker.
func (b *Builder) WeekView(events []Event, viewDate time.Time) []WeekViewEventRow {
	weekStart := dateutil.StartOfWeek(viewDate, b.WeekStart)
	weekEnd := dateutil.EndOfWeek(viewDate, b.WeekStart)

	inWeek := EventsInPeriod(events, weekStart, weekEnd)
	mapped := make([]WeekViewEvent, 0, len(inWeek))
	for _, event := range inWeek {
		offset := DayOffset(event, weekStart)
		mapped = append(mapped, WeekViewEvent{
			Event:        event,
			Offset:       offset,
			Span:         daySpan(event, offset, weekStart),
			ExtendsLeft:  event.Start.Before(weekStart),
			ExtendsRight: event.EffectiveEnd().After(weekEnd),
		})
	}

	sort.SliceStable(mapped, func(i, j int) bool {
		if mapped[i].Event.Start.Equal(mapped[j].Event.Start) {
			return mapped[i].Event.EffectiveEnd().After(mapped[j].Event.EffectiveEnd())
		}
		return mapped[i].Event.Start.Before(mapped[j].Event.Start)
	})

	return b.packRows(mapped)
}

// GreedyRowPacker packs sorted week events into rows with a single
// left-to-right pass: each unplaced event opens a row, then claims every
// later event that still fits to its right. Offsets of claimed events are
// rebased relative to the row content before them. The packing favors few
// rows over balanced rows; earlier-starting (and, on ties, longer) events
// claim rows first.
func GreedyRowPacker(events []WeekViewEvent) []WeekViewEventRow {
	rows := make([]WeekViewEventRow, 0, len(events))
	placed := make([]bool, len(events))

	for i, seed := range events {
		if placed[i] {
			continue
		}
		placed[i] = true
		row := []WeekViewEvent{seed}
		rowSpan := seed.Offset + seed.Span

		for j := i + 1; j < len(events); j++ {
			if placed[j] {
				continue
			}
			next := events[j]
			if next.Offset >= rowSpan && rowSpan+next.Span <= DaysInWeek {
				next.Offset -= rowSpan
				rowSpan += next.Offset + next.Span
				placed[j] = true
				row = append(row, next)
			}
		}

		rows = append(rows, WeekViewEventRow{Row: row})
	}

	return rows
}
