package api

import (
	"cloud.google.com/go/civil"

	"github.com/vsinha/siteorders/pkg/domain/entities"
)

// SegmentRequest creates or updates a segment. ProjectID is ignored on update.
type SegmentRequest struct {
	ProjectID string `json:"projectId"`
	StartDate string `json:"startDate" binding:"required,isodate"`
	EndDate   string `json:"endDate" binding:"required,isodate"`
	Scope     string `json:"scope" binding:"required,oneof=paint firestopping mixed"`
}

func (r SegmentRequest) parse() (start, end civil.Date, scope entities.WorkScope, err error) {
	if start, err = civil.ParseDate(r.StartDate); err != nil {
		return
	}
	if end, err = civil.ParseDate(r.EndDate); err != nil {
		return
	}
	scope, err = entities.ParseWorkScope(r.Scope)
	return
}

// SelectSegmentRequest starts an order session
type SelectSegmentRequest struct {
	SegmentID string `json:"segmentId" binding:"required"`
}

// SetQuantityRequest sets one material's quantity; zero removes it
type SetQuantityRequest struct {
	MaterialID string `json:"materialId" binding:"required"`
	Quantity   *int64 `json:"quantity" binding:"required,min=0"`
}

// DateQuery selects a day and optionally a project
type DateQuery struct {
	Date      string `form:"date" binding:"omitempty,isodate"`
	ProjectID string `form:"projectId"`
}

// TimelineQuery selects the timeline window
type TimelineQuery struct {
	WeekStart string `form:"weekStart" binding:"omitempty,isodate"`
	Days      int    `form:"days" binding:"omitempty,min=1,max=92"`
}

// ActivityEntry is one recorded workspace event
type ActivityEntry struct {
	Type      string      `json:"type"`
	Stream    string      `json:"stream"`
	Version   int         `json:"version"`
	Timestamp string      `json:"timestamp"`
	Data      interface{} `json:"data"`
}
