package layout

import (
	"sort"
	"time"

	"github.com/username/calview/pkg/dateutil"
)

// DayView lays out the events of viewDate on a vertical timeline bounded
// by the configured day window. Concurrent events are stacked
// side-by-side: each event's column is the count of previously placed
// events it overlaps vertically, times the event width. The counting is
// a greedy placement in start order, not an interval coloring; consumers
// rely on the resulting column assignment order.
func (b *Builder) DayView(events []Event, viewDate time.Time, cfg DayViewConfig) DayView {
	day := dateutil.StartOfDay(viewDate)
	viewStart := time.Date(day.Year(), day.Month(), day.Day(),
		cfg.DayStart.Hour, cfg.DayStart.Minute, 0, 0, day.Location())
	viewEnd := time.Date(day.Year(), day.Month(), day.Day(),
		cfg.DayEnd.Hour, cfg.DayEnd.Minute, 0, 0, day.Location())

	pixelsPerMinute := float64(cfg.HourSegments) * cfg.SegmentHeight / 60

	inView := EventsInPeriod(events, viewStart, viewEnd)
	sort.SliceStable(inView, func(i, j int) bool {
		return inView[i].Start.Before(inView[j].Start)
	})

	positioned := make([]DayViewEvent, 0, len(inView))
	maxWidth := 0.0

	for _, event := range inView {
		eventEnd := event.EffectiveEnd()
		extendsTop := event.Start.Before(viewStart)
		extendsBottom := eventEnd.After(viewEnd)

		top := 0.0
		if event.Start.After(viewStart) {
			top = float64(dateutil.MinuteDiff(viewStart, event.Start)) * pixelsPerMinute
		}

		shownStart := event.Start
		if extendsTop {
			shownStart = viewStart
		}
		shownEnd := eventEnd
		if extendsBottom {
			shownEnd = viewEnd
		}

		var height float64
		if event.End == nil {
			// Point events get one fixed-size slot.
			height = cfg.SegmentHeight
		} else {
			height = float64(dateutil.MinuteDiff(shownStart, shownEnd)) * pixelsPerMinute
		}

		bottom := top + height

		overlapping := 0
		for _, previous := range positioned {
			previousTop := previous.Top
			previousBottom := previous.Top + previous.Height
			switch {
			case top < previousTop && previousTop < bottom:
				overlapping++
			case top < previousBottom && previousBottom < bottom:
				overlapping++
			case previousTop <= top && bottom <= previousBottom:
				overlapping++
			}
		}

		placed := DayViewEvent{
			Event:         event,
			Top:           top,
			Height:        height,
			Left:          float64(overlapping) * cfg.EventWidth,
			Width:         cfg.EventWidth,
			ExtendsTop:    extendsTop,
			ExtendsBottom: extendsBottom,
		}
		positioned = append(positioned, placed)

		if extent := placed.Left + placed.Width; extent > maxWidth {
			maxWidth = extent
		}
	}

	return DayView{
		Events:   positioned,
		MaxWidth: maxWidth,
	}
}
