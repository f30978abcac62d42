package layout

import (
	"testing"
	"time"
)

func TestEventInPeriod(t *testing.T) {
	periodStart := at(2025, 1, 12, 0, 0)
	periodEnd := at(2025, 1, 18, 23, 59)

	tests := []struct {
		name  string
		start time.Time
		end   *time.Time
		want  bool
	}{
		{
			"Start strictly inside",
			at(2025, 1, 13, 10, 0),
			until(at(2025, 1, 25, 10, 0)),
			true,
		},
		{
			"End strictly inside",
			at(2025, 1, 5, 10, 0),
			until(at(2025, 1, 14, 10, 0)),
			true,
		},
		{
			"Fully spanning the period",
			at(2025, 1, 5, 10, 0),
			until(at(2025, 1, 25, 10, 0)),
			true,
		},
		{
			"Fully contained",
			at(2025, 1, 14, 9, 0),
			until(at(2025, 1, 14, 10, 0)),
			true,
		},
		{
			"Start exactly on period start",
			at(2025, 1, 12, 0, 0),
			until(at(2025, 1, 25, 10, 0)),
			true,
		},
		{
			"End exactly on period end",
			at(2025, 1, 5, 10, 0),
			until(at(2025, 1, 18, 23, 59)),
			true,
		},
		{
			"End exactly on period start",
			at(2025, 1, 5, 10, 0),
			until(at(2025, 1, 12, 0, 0)),
			true,
		},
		{
			"Entirely before",
			at(2025, 1, 5, 10, 0),
			until(at(2025, 1, 6, 10, 0)),
			false,
		},
		{
			"Entirely after",
			at(2025, 1, 20, 10, 0),
			until(at(2025, 1, 21, 10, 0)),
			false,
		},
		{
			"Point event inside",
			at(2025, 1, 14, 10, 0),
			nil,
			true,
		},
		{
			"Point event on period end",
			at(2025, 1, 18, 23, 59),
			nil,
			true,
		},
		{
			"Point event outside",
			at(2025, 1, 20, 10, 0),
			nil,
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := Event{Start: tt.start, End: tt.end}
			result := EventInPeriod(event, periodStart, periodEnd)

			if result != tt.want {
				t.Errorf("EventInPeriod(start=%v end=%v) = %v, want %v",
					tt.start, tt.end, result, tt.want)
			}
		})
	}
}

func TestEventsInPeriodPreservesOrder(t *testing.T) {
	periodStart := at(2025, 1, 12, 0, 0)
	periodEnd := at(2025, 1, 18, 23, 59)

	events := []Event{
		{Start: at(2025, 1, 16, 10, 0), Title: "third"},
		{Start: at(2025, 1, 20, 10, 0), Title: "dropped"},
		{Start: at(2025, 1, 13, 10, 0), Title: "second"},
		{Start: at(2025, 1, 5, 10, 0), End: until(at(2025, 1, 25, 0, 0)), Title: "spanning"},
	}

	filtered := EventsInPeriod(events, periodStart, periodEnd)

	want := []string{"third", "second", "spanning"}
	if len(filtered) != len(want) {
		t.Fatalf("EventsInPeriod returned %d events, want %d", len(filtered), len(want))
	}
	for i, title := range want {
		if filtered[i].Title != title {
			t.Errorf("filtered[%d].Title = %q, want %q", i, filtered[i].Title, title)
		}
	}
}

func TestEventsInPeriodEmptyInput(t *testing.T) {
	filtered := EventsInPeriod(nil, at(2025, 1, 12, 0, 0), at(2025, 1, 18, 23, 59))

	if filtered == nil || len(filtered) != 0 {
		t.Errorf("EventsInPeriod(nil) = %v, want empty non-nil slice", filtered)
	}
}
