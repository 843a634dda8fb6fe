package memory

import (
	"fmt"

	"github.com/vsinha/siteorders/pkg/domain/entities"
	"github.com/vsinha/siteorders/pkg/domain/repositories"
)

// SegmentMaterialRepository provides in-memory storage for segment material rows.
// The backing slice is replaced on every mutation and never written in place.
type SegmentMaterialRepository struct {
	rows    []entities.SegmentMaterial
	rowsMap map[entities.SegmentMaterialID]int
}

// NewSegmentMaterialRepository creates a new in-memory segment material repository
func NewSegmentMaterialRepository(expectedRows int) *SegmentMaterialRepository {
	return &SegmentMaterialRepository{
		rows:    make([]entities.SegmentMaterial, 0, expectedRows),
		rowsMap: make(map[entities.SegmentMaterialID]int, expectedRows),
	}
}

// Verify interface compliance
var _ repositories.SegmentMaterialRepository = (*SegmentMaterialRepository)(nil)

// LoadSegmentMaterials loads rows into the repository, rejecting duplicate ids
func (r *SegmentMaterialRepository) LoadSegmentMaterials(rows []*entities.SegmentMaterial) error {
	for _, row := range rows {
		if _, exists := r.rowsMap[row.ID]; exists {
			return fmt.Errorf("duplicate segment material id: %s", row.ID)
		}
		if err := r.UpsertSegmentMaterials(*row); err != nil {
			return err
		}
	}
	return nil
}

// UpsertSegmentMaterials replaces rows whose id is already stored and appends the rest.
// At most one not_ordered row may exist per (segment, material) pair; a batch
// that would break this is rejected and nothing is stored.
func (r *SegmentMaterialRepository) UpsertSegmentMaterials(rows ...entities.SegmentMaterial) error {
	for _, row := range rows {
		if row.Quantity <= 0 {
			return fmt.Errorf("segment material %s: quantity must be positive, got %d", row.ID, row.Quantity)
		}
	}

	next := make([]entities.SegmentMaterial, len(r.rows), len(r.rows)+len(rows))
	copy(next, r.rows)
	nextMap := make(map[entities.SegmentMaterialID]int, len(r.rowsMap)+len(rows))
	for id, index := range r.rowsMap {
		nextMap[id] = index
	}

	for _, row := range rows {
		if index, exists := nextMap[row.ID]; exists {
			next[index] = row
			continue
		}
		nextMap[row.ID] = len(next)
		next = append(next, row)
	}

	if err := checkPendingPairs(next); err != nil {
		return err
	}

	r.rows = next
	r.rowsMap = nextMap
	return nil
}

// GetSegmentMaterial returns a row by id
func (r *SegmentMaterialRepository) GetSegmentMaterial(id entities.SegmentMaterialID) (*entities.SegmentMaterial, error) {
	index, exists := r.rowsMap[id]
	if !exists {
		return nil, fmt.Errorf("segment material %s: %w", id, repositories.ErrNotFound)
	}
	row := r.rows[index]
	return &row, nil
}

// GetAllSegmentMaterials returns the current snapshot in insertion order
func (r *SegmentMaterialRepository) GetAllSegmentMaterials() []entities.SegmentMaterial {
	return r.rows
}

// GetSegmentMaterials returns the rows of one segment in insertion order
func (r *SegmentMaterialRepository) GetSegmentMaterials(segmentID entities.SegmentID) []entities.SegmentMaterial {
	var rows []entities.SegmentMaterial
	for _, row := range r.rows {
		if row.SegmentID == segmentID {
			rows = append(rows, row)
		}
	}
	return rows
}

type segmentMaterialPair struct {
	segmentID  entities.SegmentID
	materialID entities.MaterialID
}

func checkPendingPairs(rows []entities.SegmentMaterial) error {
	pending := make(map[segmentMaterialPair]entities.SegmentMaterialID)
	for _, row := range rows {
		if row.Status != entities.NotOrdered {
			continue
		}
		pair := segmentMaterialPair{segmentID: row.SegmentID, materialID: row.MaterialID}
		if other, exists := pending[pair]; exists {
			return fmt.Errorf("segment material %s: material %s already pending for segment %s in %s",
				row.ID, row.MaterialID, row.SegmentID, other)
		}
		pending[pair] = row.ID
	}
	return nil
}
