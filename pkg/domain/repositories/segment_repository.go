package repositories

import "github.com/vsinha/siteorders/pkg/domain/entities"

// SegmentRepository provides access to scheduled work segments.
// Mutators swap in a new backing collection; snapshots returned by
// GetAllSegments are never modified afterwards.
type SegmentRepository interface {
	GetSegment(id entities.SegmentID) (*entities.Segment, error)
	GetAllSegments() []entities.Segment
	GetProjectSegments(projectID entities.ProjectID) []entities.Segment
	LoadSegments(segments []*entities.Segment) error
	AddSegment(segment entities.Segment) error
	UpdateSegment(segment entities.Segment) error
	RemoveSegment(id entities.SegmentID) error
}
