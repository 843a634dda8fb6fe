package memory

import (
	"fmt"

	"github.com/vsinha/siteorders/pkg/domain/entities"
	"github.com/vsinha/siteorders/pkg/domain/repositories"
)

// SegmentRepository provides in-memory segment storage.
// The backing slice is replaced on every mutation and never written in place.
type SegmentRepository struct {
	segments    []entities.Segment
	segmentsMap map[entities.SegmentID]int
}

// NewSegmentRepository creates a new in-memory segment repository
func NewSegmentRepository(expectedSegments int) *SegmentRepository {
	return &SegmentRepository{
		segments:    make([]entities.Segment, 0, expectedSegments),
		segmentsMap: make(map[entities.SegmentID]int, expectedSegments),
	}
}

// Verify interface compliance
var _ repositories.SegmentRepository = (*SegmentRepository)(nil)

// LoadSegments loads segments into the repository
func (r *SegmentRepository) LoadSegments(segments []*entities.Segment) error {
	for _, segment := range segments {
		if err := r.AddSegment(*segment); err != nil {
			return err
		}
	}
	return nil
}

// AddSegment appends a segment
func (r *SegmentRepository) AddSegment(segment entities.Segment) error {
	if _, exists := r.segmentsMap[segment.ID]; exists {
		return fmt.Errorf("duplicate segment id: %s", segment.ID)
	}

	next := make([]entities.Segment, len(r.segments), len(r.segments)+1)
	copy(next, r.segments)
	next = append(next, segment)

	r.segmentsMap[segment.ID] = len(next) - 1
	r.segments = next
	return nil
}

// UpdateSegment replaces the stored segment with the same id
func (r *SegmentRepository) UpdateSegment(segment entities.Segment) error {
	index, exists := r.segmentsMap[segment.ID]
	if !exists {
		return fmt.Errorf("segment %s: %w", segment.ID, repositories.ErrNotFound)
	}

	next := make([]entities.Segment, len(r.segments))
	copy(next, r.segments)
	next[index] = segment

	r.segments = next
	return nil
}

// RemoveSegment deletes a segment by id
func (r *SegmentRepository) RemoveSegment(id entities.SegmentID) error {
	if _, exists := r.segmentsMap[id]; !exists {
		return fmt.Errorf("segment %s: %w", id, repositories.ErrNotFound)
	}

	next := make([]entities.Segment, 0, len(r.segments)-1)
	for _, segment := range r.segments {
		if segment.ID != id {
			next = append(next, segment)
		}
	}

	r.segments = next
	r.reindex()
	return nil
}

// GetSegment returns a segment by id
func (r *SegmentRepository) GetSegment(id entities.SegmentID) (*entities.Segment, error) {
	index, exists := r.segmentsMap[id]
	if !exists {
		return nil, fmt.Errorf("segment %s: %w", id, repositories.ErrNotFound)
	}
	segment := r.segments[index]
	return &segment, nil
}

// GetAllSegments returns the current snapshot in insertion order
func (r *SegmentRepository) GetAllSegments() []entities.Segment {
	return r.segments
}

// GetProjectSegments returns the segments of one project in insertion order
func (r *SegmentRepository) GetProjectSegments(projectID entities.ProjectID) []entities.Segment {
	var segments []entities.Segment
	for _, segment := range r.segments {
		if segment.ProjectID == projectID {
			segments = append(segments, segment)
		}
	}
	return segments
}

func (r *SegmentRepository) reindex() {
	r.segmentsMap = make(map[entities.SegmentID]int, len(r.segments))
	for i, segment := range r.segments {
		r.segmentsMap[segment.ID] = i
	}
}
