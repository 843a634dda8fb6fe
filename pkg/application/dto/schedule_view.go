package dto

import (
	"cloud.google.com/go/civil"

	"github.com/vsinha/siteorders/pkg/domain/entities"
)

// TimelineBar places one segment inside a timeline window.
// StartIndex and EndIndex are inclusive offsets into TimelineView.Days.
type TimelineBar struct {
	Segment    entities.Segment `json:"segment"`
	StartIndex int              `json:"startIndex"`
	EndIndex   int              `json:"endIndex"`
}

// TimelineRow is one project line of the timeline
type TimelineRow struct {
	Project entities.Project `json:"project"`
	Bars    []TimelineBar    `json:"bars"`
}

// TimelineView is the multi-project overview for a window of days
type TimelineView struct {
	Days []civil.Date  `json:"days"`
	Rows []TimelineRow `json:"rows"`
}

// CalendarDay is one cell of a month grid
type CalendarDay struct {
	Date       civil.Date           `json:"date"`
	InMonth    bool                 `json:"inMonth"`
	SegmentIDs []entities.SegmentID `json:"segmentIds"`
}

// MonthView is a Monday-first month grid with the segments touching each day
type MonthView struct {
	Year  int             `json:"year"`
	Month string          `json:"month"`
	Weeks [][]CalendarDay `json:"weeks"`
}

// SegmentListing is a segment with its project and order summary, used by the materials list
type SegmentListing struct {
	Segment entities.Segment `json:"segment"`
	Project entities.Project `json:"project"`
	Summary OrderSummary     `json:"summary"`
}
