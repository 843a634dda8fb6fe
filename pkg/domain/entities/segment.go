package entities

import (
	"fmt"

	"cloud.google.com/go/civil"
)

// SegmentID identifies a segment
type SegmentID string

// Segment is a contiguous, date-bounded slice of work on a project.
// StartDate and EndDate are inclusive calendar dates.
type Segment struct {
	ID          SegmentID   `json:"id"`
	ProjectID   ProjectID   `json:"projectId"`
	StartDate   civil.Date  `json:"startDate"`
	EndDate     civil.Date  `json:"endDate"`
	Scope       WorkScope   `json:"scope"`
	OrderStatus OrderStatus `json:"orderStatus"`
}

// NewSegment creates a validated Segment
func NewSegment(
	id SegmentID,
	projectID ProjectID,
	startDate, endDate civil.Date,
	scope WorkScope,
	orderStatus OrderStatus,
) (*Segment, error) {
	if id == "" {
		return nil, fmt.Errorf("segment id cannot be empty")
	}
	if projectID == "" {
		return nil, fmt.Errorf("project id cannot be empty")
	}
	if !startDate.IsValid() || !endDate.IsValid() {
		return nil, fmt.Errorf("segment dates must be valid calendar dates, got %s and %s", startDate, endDate)
	}
	if startDate.After(endDate) {
		return nil, fmt.Errorf("start date %s cannot be after end date %s", startDate, endDate)
	}

	return &Segment{
		ID:          id,
		ProjectID:   projectID,
		StartDate:   startDate,
		EndDate:     endDate,
		Scope:       scope,
		OrderStatus: orderStatus,
	}, nil
}

// Days returns the number of calendar days the segment spans
func (s Segment) Days() int {
	return s.EndDate.DaysSince(s.StartDate) + 1
}
