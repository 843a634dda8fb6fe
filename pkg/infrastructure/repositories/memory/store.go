package memory

import (
	"fmt"

	"github.com/vsinha/siteorders/pkg/domain/entities"
)

// Store owns the four entity collections of one workspace.
// Every mutator validates the foreign keys it is given and replaces the
// affected collection, so readers holding an earlier snapshot are unaffected.
type Store struct {
	Projects         *ProjectRepository
	Segments         *SegmentRepository
	Materials        *MaterialRepository
	SegmentMaterials *SegmentMaterialRepository
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		Projects:         NewProjectRepository(0),
		Segments:         NewSegmentRepository(0),
		Materials:        NewMaterialRepository(0),
		SegmentMaterials: NewSegmentMaterialRepository(0),
	}
}

// DataSet is a plain copy of every collection, used for seeding and cloning
type DataSet struct {
	Projects         []*entities.Project
	Segments         []*entities.Segment
	Materials        []*entities.Material
	SegmentMaterials []*entities.SegmentMaterial
}

// NewStoreFromDataSet builds a store and loads every collection of data
func NewStoreFromDataSet(data DataSet) (*Store, error) {
	store := &Store{
		Projects:         NewProjectRepository(len(data.Projects)),
		Segments:         NewSegmentRepository(len(data.Segments)),
		Materials:        NewMaterialRepository(len(data.Materials)),
		SegmentMaterials: NewSegmentMaterialRepository(len(data.SegmentMaterials)),
	}

	if err := store.Projects.LoadProjects(data.Projects); err != nil {
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}
	if err := store.Materials.LoadMaterials(data.Materials); err != nil {
		return nil, fmt.Errorf("failed to load materials: %w", err)
	}
	if err := store.Segments.LoadSegments(data.Segments); err != nil {
		return nil, fmt.Errorf("failed to load segments: %w", err)
	}
	if err := store.SegmentMaterials.LoadSegmentMaterials(data.SegmentMaterials); err != nil {
		return nil, fmt.Errorf("failed to load segment materials: %w", err)
	}

	return store, nil
}

// Snapshot copies the current state of every collection into a DataSet
func (s *Store) Snapshot() DataSet {
	var data DataSet
	for _, project := range s.Projects.GetAllProjects() {
		project := project
		data.Projects = append(data.Projects, &project)
	}
	for _, segment := range s.Segments.GetAllSegments() {
		segment := segment
		data.Segments = append(data.Segments, &segment)
	}
	for _, material := range s.Materials.GetAllMaterials() {
		material := material
		data.Materials = append(data.Materials, &material)
	}
	for _, row := range s.SegmentMaterials.GetAllSegmentMaterials() {
		row := row
		data.SegmentMaterials = append(data.SegmentMaterials, &row)
	}
	return data
}

// Clone returns an independent store with the same contents
func (s *Store) Clone() (*Store, error) {
	return NewStoreFromDataSet(s.Snapshot())
}

// AddSegment stores a new segment; its project must exist
func (s *Store) AddSegment(segment entities.Segment) error {
	if _, err := s.Projects.GetProject(segment.ProjectID); err != nil {
		return err
	}
	return s.Segments.AddSegment(segment)
}

// UpdateSegment replaces an existing segment; its project must exist
func (s *Store) UpdateSegment(segment entities.Segment) error {
	if _, err := s.Projects.GetProject(segment.ProjectID); err != nil {
		return err
	}
	return s.Segments.UpdateSegment(segment)
}

// RemoveSegment deletes a segment. Its segment material rows are kept.
func (s *Store) RemoveSegment(id entities.SegmentID) error {
	return s.Segments.RemoveSegment(id)
}

// UpsertSegmentMaterial stores or replaces a row; its segment and material must exist
func (s *Store) UpsertSegmentMaterial(row entities.SegmentMaterial) error {
	if err := s.checkRowReferences(row); err != nil {
		return err
	}
	return s.SegmentMaterials.UpsertSegmentMaterials(row)
}

// ApplyOrder upserts all rows of an order in one swap and only then sets the
// segment's rollup status, so a reader never sees the status ahead of its rows.
func (s *Store) ApplyOrder(segmentID entities.SegmentID, rows []entities.SegmentMaterial, status entities.OrderStatus) error {
	segment, err := s.Segments.GetSegment(segmentID)
	if err != nil {
		return err
	}
	for _, row := range rows {
		if row.SegmentID != segmentID {
			return fmt.Errorf("segment material %s belongs to segment %s, not %s", row.ID, row.SegmentID, segmentID)
		}
		if err := s.checkRowReferences(row); err != nil {
			return err
		}
	}

	if err := s.SegmentMaterials.UpsertSegmentMaterials(rows...); err != nil {
		return err
	}

	segment.OrderStatus = status
	return s.Segments.UpdateSegment(*segment)
}

func (s *Store) checkRowReferences(row entities.SegmentMaterial) error {
	if _, err := s.Segments.GetSegment(row.SegmentID); err != nil {
		return err
	}
	if _, err := s.Materials.GetMaterial(row.MaterialID); err != nil {
		return err
	}
	return nil
}
