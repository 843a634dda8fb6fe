package services

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"

	"github.com/vsinha/siteorders/pkg/domain/entities"
)

func date(year int, month int, day int) civil.Date {
	return civil.Date{Year: year, Month: time.Month(month), Day: day}
}

func segment(id entities.SegmentID, start, end civil.Date) entities.Segment {
	return entities.Segment{ID: id, ProjectID: "p1", StartDate: start, EndDate: end, Scope: entities.ScopeMixed}
}

func TestOverlaps(t *testing.T) {
	seg := segment("s1", date(2025, 11, 17), date(2025, 11, 21))
	single := segment("s2", date(2025, 11, 25), date(2025, 11, 25))

	tests := []struct {
		name     string
		day      civil.Date
		segment  entities.Segment
		expected bool
	}{
		{"before_start", date(2025, 11, 16), seg, false},
		{"on_start", date(2025, 11, 17), seg, true},
		{"inside", date(2025, 11, 19), seg, true},
		{"on_end", date(2025, 11, 21), seg, true},
		{"after_end", date(2025, 11, 22), seg, false},
		{"single_day_match", date(2025, 11, 25), single, true},
		{"single_day_before", date(2025, 11, 24), single, false},
		{"single_day_after", date(2025, 11, 26), single, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.day, tt.segment); got != tt.expected {
				t.Errorf("Overlaps(%s, %s..%s) = %v, want %v",
					tt.day, tt.segment.StartDate, tt.segment.EndDate, got, tt.expected)
			}
		})
	}
}

func TestOverlaps_MatchesDateComparison(t *testing.T) {
	seg := segment("s1", date(2025, 12, 30), date(2026, 1, 2))

	for day := date(2025, 12, 25); !day.After(date(2026, 1, 8)); day = day.AddDays(1) {
		expected := !day.Before(seg.StartDate) && !day.After(seg.EndDate)
		if got := Overlaps(day, seg); got != expected {
			t.Errorf("Overlaps(%s) = %v, want %v", day, got, expected)
		}
	}
}

func TestDragRange_OrderIndependent(t *testing.T) {
	days := []civil.Date{
		date(2025, 11, 18),
		date(2025, 11, 20),
		date(2025, 11, 20),
		date(2026, 2, 1),
	}

	for _, a := range days {
		for _, b := range days {
			forward := DragRange(a, b)
			backward := DragRange(b, a)
			if forward != backward {
				t.Errorf("DragRange(%s, %s) = %v, reversed = %v", a, b, forward, backward)
			}
			if forward.Start.After(forward.End) {
				t.Errorf("DragRange(%s, %s) not normalised: %v", a, b, forward)
			}
		}
	}

	r := DragRange(date(2025, 11, 20), date(2025, 11, 18))
	if r.Start != date(2025, 11, 18) || r.End != date(2025, 11, 20) {
		t.Errorf("Expected 2025-11-18..2025-11-20, got %s..%s", r.Start, r.End)
	}
}

func TestSegmentsForDay_PreservesStorageOrder(t *testing.T) {
	segments := []entities.Segment{
		segment("late", date(2025, 11, 19), date(2025, 11, 19)),
		segment("other", date(2025, 12, 1), date(2025, 12, 3)),
		segment("early", date(2025, 11, 17), date(2025, 11, 21)),
	}

	matching := SegmentsForDay(date(2025, 11, 19), segments)
	if len(matching) != 2 {
		t.Fatalf("Expected 2 segments, got %d", len(matching))
	}
	if matching[0].ID != "late" || matching[1].ID != "early" {
		t.Errorf("Expected [late early], got [%s %s]", matching[0].ID, matching[1].ID)
	}

	if none := SegmentsForDay(date(2025, 11, 30), segments); len(none) != 0 {
		t.Errorf("Expected no segments, got %d", len(none))
	}
}

func TestRangesOverlap(t *testing.T) {
	a := DateRange{Start: date(2025, 11, 17), End: date(2025, 11, 21)}

	tests := []struct {
		name     string
		other    DateRange
		expected bool
	}{
		{"disjoint_before", DateRange{Start: date(2025, 11, 10), End: date(2025, 11, 16)}, false},
		{"touching_start", DateRange{Start: date(2025, 11, 10), End: date(2025, 11, 17)}, true},
		{"contained", DateRange{Start: date(2025, 11, 18), End: date(2025, 11, 19)}, true},
		{"touching_end", DateRange{Start: date(2025, 11, 21), End: date(2025, 11, 28)}, true},
		{"disjoint_after", DateRange{Start: date(2025, 11, 22), End: date(2025, 11, 28)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RangesOverlap(a, tt.other); got != tt.expected {
				t.Errorf("RangesOverlap = %v, want %v", got, tt.expected)
			}
			if got := RangesOverlap(tt.other, a); got != tt.expected {
				t.Errorf("RangesOverlap reversed = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		day      civil.Date
		expected civil.Date
	}{
		{date(2025, 11, 17), date(2025, 11, 17)}, // Monday
		{date(2025, 11, 19), date(2025, 11, 17)},
		{date(2025, 11, 23), date(2025, 11, 17)}, // Sunday
		{date(2026, 1, 1), date(2025, 12, 29)},
	}

	for _, tt := range tests {
		if got := WeekStart(tt.day); got != tt.expected {
			t.Errorf("WeekStart(%s) = %s, want %s", tt.day, got, tt.expected)
		}
	}
}

func TestMonthGrid(t *testing.T) {
	weeks := MonthGrid(date(2025, 11, 20))

	// November 2025 starts on a Saturday and ends on a Sunday
	if len(weeks) != 5 {
		t.Fatalf("Expected 5 weeks, got %d", len(weeks))
	}
	if weeks[0][0] != date(2025, 10, 27) {
		t.Errorf("Expected grid to start 2025-10-27, got %s", weeks[0][0])
	}
	last := weeks[len(weeks)-1]
	if last[6] != date(2025, 11, 30) {
		t.Errorf("Expected grid to end 2025-11-30, got %s", last[6])
	}
	for i, week := range weeks {
		if len(week) != 7 {
			t.Errorf("Week %d has %d days", i, len(week))
		}
		if Weekday(week[0]) != time.Monday {
			t.Errorf("Week %d does not start on Monday: %s", i, week[0])
		}
	}

	december := MonthGrid(date(2025, 12, 1))
	if december[len(december)-1][6] != date(2026, 1, 4) {
		t.Errorf("Expected December grid to end 2026-01-04, got %s", december[len(december)-1][6])
	}
}

func TestSegmentPosition(t *testing.T) {
	days := TimelineDays(date(2025, 11, 17), 14)

	tests := []struct {
		name      string
		segment   entities.Segment
		wantStart int
		wantEnd   int
		wantOK    bool
	}{
		{"inside", segment("s1", date(2025, 11, 18), date(2025, 11, 20)), 1, 3, true},
		{"clipped_left", segment("s2", date(2025, 11, 10), date(2025, 11, 18)), 0, 1, true},
		{"clipped_right", segment("s3", date(2025, 11, 28), date(2025, 12, 10)), 11, 13, true},
		{"spanning", segment("s4", date(2025, 11, 1), date(2025, 12, 31)), 0, 13, true},
		{"outside", segment("s5", date(2025, 12, 5), date(2025, 12, 6)), 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, ok := SegmentPosition(tt.segment, days)
			if ok != tt.wantOK || start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("SegmentPosition = (%d, %d, %v), want (%d, %d, %v)",
					start, end, ok, tt.wantStart, tt.wantEnd, tt.wantOK)
			}
		})
	}
}

func TestDragSelection(t *testing.T) {
	var drag DragSelection

	drag.Extend(date(2025, 11, 20))
	if drag.Dragging() {
		t.Fatal("Extend without Begin must not start a drag")
	}

	drag.Begin(date(2025, 11, 20))
	drag.Extend(date(2025, 11, 18))

	if !drag.Highlighted(date(2025, 11, 19)) {
		t.Error("Expected 2025-11-19 to be highlighted")
	}
	if drag.Highlighted(date(2025, 11, 21)) {
		t.Error("Expected 2025-11-21 not to be highlighted")
	}

	r, ok := drag.Finish()
	if !ok {
		t.Fatal("Expected a range from Finish")
	}
	if r.Start != date(2025, 11, 18) || r.End != date(2025, 11, 20) {
		t.Errorf("Expected 2025-11-18..2025-11-20, got %s..%s", r.Start, r.End)
	}
	if drag.Dragging() {
		t.Error("Expected drag to be reset after Finish")
	}
	if _, ok := drag.Finish(); ok {
		t.Error("Expected no range from a second Finish")
	}
}
