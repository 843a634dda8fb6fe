package services

import (
	"time"

	"cloud.google.com/go/civil"

	"github.com/vsinha/siteorders/pkg/domain/entities"
)

// DateRange is an inclusive range of calendar dates
type DateRange struct {
	Start civil.Date `json:"start"`
	End   civil.Date `json:"end"`
}

// Contains reports whether day falls within the range, inclusive at both ends
func (r DateRange) Contains(day civil.Date) bool {
	return CompareDates(day, r.Start) >= 0 && CompareDates(day, r.End) <= 0
}

// CompareDates compares two calendar dates.
// Returns: -1 if a < b, 0 if equal, 1 if a > b
func CompareDates(a, b civil.Date) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}

// DragRange returns the ordered (min, max) pair of two days.
// It is symmetric in its arguments so a drag in either direction yields the same range.
func DragRange(anchor, current civil.Date) DateRange {
	if current.Before(anchor) {
		return DateRange{Start: current, End: anchor}
	}
	return DateRange{Start: anchor, End: current}
}

// SegmentRange returns the inclusive date range covered by a segment
func SegmentRange(segment entities.Segment) DateRange {
	return DateRange{Start: segment.StartDate, End: segment.EndDate}
}

// Overlaps checks if day falls within the segment's inclusive date range
func Overlaps(day civil.Date, segment entities.Segment) bool {
	return SegmentRange(segment).Contains(day)
}

// RangesOverlap checks if two inclusive date ranges share at least one day
func RangesOverlap(range1, range2 DateRange) bool {
	return CompareDates(range1.Start, range2.End) <= 0 &&
		CompareDates(range2.Start, range1.End) <= 0
}

// SegmentsForDay filters segments to those touching day, preserving storage order
func SegmentsForDay(day civil.Date, segments []entities.Segment) []entities.Segment {
	var matching []entities.Segment

	for _, segment := range segments {
		if Overlaps(day, segment) {
			matching = append(matching, segment)
		}
	}

	return matching
}

// Weekday returns the day of the week for a calendar date
func Weekday(day civil.Date) time.Weekday {
	return day.In(time.UTC).Weekday()
}

// WeekStart returns the Monday on or before day
func WeekStart(day civil.Date) civil.Date {
	offset := (int(Weekday(day)) + 6) % 7
	return day.AddDays(-offset)
}

// TimelineDays returns n consecutive days starting at start
func TimelineDays(start civil.Date, n int) []civil.Date {
	days := make([]civil.Date, 0, n)
	for i := 0; i < n; i++ {
		days = append(days, start.AddDays(i))
	}
	return days
}

// MonthGrid returns the weeks (Monday first) needed to display the month containing day.
// Leading and trailing days from neighbouring months fill the first and last week.
func MonthGrid(day civil.Date) [][]civil.Date {
	first := civil.Date{Year: day.Year, Month: day.Month, Day: 1}
	last := civil.DateOf(first.In(time.UTC).AddDate(0, 1, -1))

	gridStart := WeekStart(first)
	gridEnd := WeekStart(last).AddDays(6)

	var weeks [][]civil.Date
	for weekStart := gridStart; !weekStart.After(gridEnd); weekStart = weekStart.AddDays(7) {
		weeks = append(weeks, TimelineDays(weekStart, 7))
	}
	return weeks
}

// SegmentPosition returns the first and last index of days covered by the segment.
// ok is false when the segment touches none of the days.
func SegmentPosition(segment entities.Segment, days []civil.Date) (startIndex, endIndex int, ok bool) {
	startIndex, endIndex = -1, -1

	for i, day := range days {
		if Overlaps(day, segment) {
			if startIndex == -1 {
				startIndex = i
			}
			endIndex = i
		}
	}

	if startIndex == -1 {
		return 0, 0, false
	}
	return startIndex, endIndex, true
}
