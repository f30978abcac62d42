package layout

import (
	"testing"
)

func TestMonthViewGridShape(t *testing.T) {
	// April 2026 is a 30-day month starting on a Wednesday. With Sunday
	// weeks the grid runs Sunday 2026-03-29 through Saturday 2026-05-02.
	now := at(2026, 4, 15, 12, 0)
	view := testBuilder(now).MonthView(nil, at(2026, 4, 15, 0, 0))

	if len(view.Days)%DaysInWeek != 0 {
		t.Errorf("grid length %d is not a multiple of 7", len(view.Days))
	}
	if len(view.Days) != 35 {
		t.Errorf("grid length = %d, want 35", len(view.Days))
	}

	if !view.Days[0].Date.Equal(at(2026, 3, 29, 0, 0)) {
		t.Errorf("grid starts at %v, want Sunday 2026-03-29", view.Days[0].Date)
	}
	last := view.Days[len(view.Days)-1]
	if !last.Date.Equal(at(2026, 5, 2, 0, 0)) {
		t.Errorf("grid ends at %v, want Saturday 2026-05-02", last.Date)
	}

	wantOffsets := []int{0, 7, 14, 21, 28}
	if len(view.RowOffsets) != len(wantOffsets) {
		t.Fatalf("RowOffsets = %v, want %v", view.RowOffsets, wantOffsets)
	}
	for i, want := range wantOffsets {
		if view.RowOffsets[i] != want {
			t.Errorf("RowOffsets[%d] = %d, want %d", i, view.RowOffsets[i], want)
		}
	}
}

func TestMonthViewInMonthFlags(t *testing.T) {
	now := at(2026, 4, 15, 12, 0)
	view := testBuilder(now).MonthView(nil, at(2026, 4, 15, 0, 0))

	inMonth := 0
	for _, day := range view.Days {
		if day.InMonth {
			inMonth++
			if day.Date.Month() != 4 {
				t.Errorf("day %v flagged InMonth outside April", day.Date)
			}
		}
	}
	if inMonth != 30 {
		t.Errorf("InMonth days = %d, want 30", inMonth)
	}

	// Leading March days and trailing May days pad the grid.
	if view.Days[0].InMonth {
		t.Errorf("leading padding day %v flagged InMonth", view.Days[0].Date)
	}
	if view.Days[len(view.Days)-1].InMonth {
		t.Errorf("trailing padding day flagged InMonth")
	}
}

func TestMonthViewAttachesEventsToDays(t *testing.T) {
	now := at(2026, 4, 15, 12, 0)
	events := []Event{
		{Start: at(2026, 4, 10, 10, 0), End: until(at(2026, 4, 10, 11, 0)), Title: "review"},
		{Start: at(2026, 4, 10, 14, 0), End: until(at(2026, 4, 12, 9, 0)), Title: "trip"},
		{Start: at(2026, 5, 1, 10, 0), End: until(at(2026, 5, 1, 11, 0)), Title: "next-month"},
	}

	view := testBuilder(now).MonthView(events, at(2026, 4, 15, 0, 0))

	byDay := make(map[int][]string)
	for _, day := range view.Days {
		if !day.InMonth {
			if len(day.Events) != 0 {
				t.Errorf("out-of-month day %v carries %d events", day.Date, len(day.Events))
			}
			continue
		}
		if day.Events == nil {
			t.Errorf("in-month day %v has nil events, want empty slice", day.Date)
		}
		for _, ev := range day.Events {
			byDay[day.Date.Day()] = append(byDay[day.Date.Day()], ev.Title)
		}
	}

	if got := byDay[10]; len(got) != 2 {
		t.Errorf("April 10 events = %v, want [review trip]", got)
	}
	if got := byDay[11]; len(got) != 1 || got[0] != "trip" {
		t.Errorf("April 11 events = %v, want [trip]", got)
	}
	if got := byDay[12]; len(got) != 1 || got[0] != "trip" {
		t.Errorf("April 12 events = %v, want [trip]", got)
	}
	// "next-month" overlaps no April day; May 1 is a padding day here.
	for day, titles := range byDay {
		for _, title := range titles {
			if title == "next-month" {
				t.Errorf("May event attached to April day %d", day)
			}
		}
	}
}

func TestMonthViewDayClassification(t *testing.T) {
	now := at(2026, 4, 15, 12, 0)
	view := testBuilder(now).MonthView(nil, at(2026, 4, 15, 0, 0))

	for _, day := range view.Days {
		flags := 0
		for _, f := range []bool{day.IsPast, day.IsToday, day.IsFuture} {
			if f {
				flags++
			}
		}
		if flags != 1 {
			t.Errorf("day %v: past/today/future flags not mutually exclusive: %+v", day.Date, day.WeekDay)
		}
		if day.IsToday && day.Date.Day() != 15 {
			t.Errorf("day %v flagged today, clock is April 15", day.Date)
		}
	}
}

func TestMonthViewSixRowMonth(t *testing.T) {
	// August 2026 starts on a Saturday and has 31 days: with Sunday
	// weeks it needs six rows.
	now := at(2026, 8, 10, 12, 0)
	view := testBuilder(now).MonthView(nil, at(2026, 8, 10, 0, 0))

	if len(view.Days) != 42 {
		t.Errorf("grid length = %d, want 42", len(view.Days))
	}
	if len(view.RowOffsets) != 6 {
		t.Errorf("RowOffsets = %v, want six rows", view.RowOffsets)
	}
}
