package layout

import "time"

// EventInPeriod reports whether an event intersects the period
// [periodStart, periodEnd]. An event with no end is treated as ending at
// its start. The event matches if its start or effective end falls
// strictly inside the period, if it fully spans the period, or if its
// start or effective end lands exactly on either boundary.
func EventInPeriod(event Event, periodStart, periodEnd time.Time) bool {
	eventStart := event.Start
	eventEnd := event.EffectiveEnd()

	if eventStart.After(periodStart) && eventStart.Before(periodEnd) {
		return true
	}

	if eventEnd.After(periodStart) && eventEnd.Before(periodEnd) {
		return true
	}

	if eventStart.Before(periodStart) && eventEnd.After(periodEnd) {
		return true
	}

	if eventStart.Equal(periodStart) || eventStart.Equal(periodEnd) {
		return true
	}

	if eventEnd.Equal(periodStart) || eventEnd.Equal(periodEnd) {
		return true
	}

	return false
}

// EventsInPeriod filters events to those intersecting the period,
// preserving input order.
func EventsInPeriod(events []Event, periodStart, periodEnd time.Time) []Event {
	filtered := make([]Event, 0, len(events))
	for _, event := range events {
		if EventInPeriod(event, periodStart, periodEnd) {
			filtered = append(filtered, event)
		}
	}
	return filtered
}
