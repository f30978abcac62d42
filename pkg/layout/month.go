package layout

import (
	"time"

	"github.com/username/calview/pkg/dateutil"
)

// MonthView builds the 7-column day grid of viewDate's month, including
// the out-of-month days needed to complete whole weeks. Only in-month
// days carry events; the padding days exist purely for grid completion.
func (b *Builder) MonthView(events []Event, viewDate time.Time) MonthView {
	monthStart := dateutil.StartOfMonth(viewDate)
	monthEnd := dateutil.EndOfMonth(viewDate)
	gridStart := dateutil.StartOfWeek(monthStart, b.WeekStart)
	gridEnd := dateutil.EndOfWeek(monthEnd, b.WeekStart)

	// Narrowing to the month first keeps the per-day filter short; the
	// net predicate is the same as filtering the full list per day.
	eventsInMonth := EventsInPeriod(events, monthStart, monthEnd)

	now := b.now()
	days := make([]MonthViewDay, 0, 6*DaysInWeek)
	for date := gridStart; !date.After(gridEnd); date = dateutil.AddDays(date, 1) {
		day := MonthViewDay{
			WeekDay: weekDay(date, now),
			InMonth: dateutil.StartOfMonth(date).Equal(monthStart),
		}
		if day.InMonth {
			day.Events = EventsInPeriod(eventsInMonth, dateutil.StartOfDay(date), dateutil.EndOfDay(date))
		} else {
			day.Events = []Event{}
		}
		days = append(days, day)
	}

	rowOffsets := make([]int, 0, len(days)/DaysInWeek)
	for i := 0; i < len(days)/DaysInWeek; i++ {
		rowOffsets = append(rowOffsets, i*DaysInWeek)
	}

	return MonthView{
		RowOffsets: rowOffsets,
		Days:       days,
	}
}
