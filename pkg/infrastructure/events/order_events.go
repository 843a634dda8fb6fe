package events

import (
	"github.com/vsinha/siteorders/pkg/domain/entities"
)

const (
	SegmentCreatedEvent = "segment.created"
	SegmentUpdatedEvent = "segment.updated"
	SegmentDeletedEvent = "segment.deleted"

	OrderPlacedEvent       = "order.placed"
	MaterialDeliveredEvent = "material.delivered"
)

// AllEventTypes lists every event a workspace emits
var AllEventTypes = []string{
	SegmentCreatedEvent,
	SegmentUpdatedEvent,
	SegmentDeletedEvent,
	OrderPlacedEvent,
	MaterialDeliveredEvent,
}

type SegmentCreated struct {
	Segment entities.Segment `json:"segment"`
}

type SegmentUpdated struct {
	OldSegment entities.Segment `json:"oldSegment"`
	NewSegment entities.Segment `json:"newSegment"`
}

type SegmentDeleted struct {
	Segment      entities.Segment `json:"segment"`
	RetainedRows int              `json:"retainedRows"`
}

type OrderPlaced struct {
	SegmentID  entities.SegmentID         `json:"segmentId"`
	Rows       []entities.SegmentMaterial `json:"rows"`
	TotalItems entities.Quantity          `json:"totalItems"`
}

type MaterialDelivered struct {
	Row entities.SegmentMaterial `json:"row"`
}

// SegmentStream returns the stream id used for events about one segment
func SegmentStream(id entities.SegmentID) string {
	return "segment-" + string(id)
}
