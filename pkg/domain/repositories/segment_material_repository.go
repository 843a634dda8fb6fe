package repositories

import "github.com/vsinha/siteorders/pkg/domain/entities"

// SegmentMaterialRepository provides access to the segment/material join rows
type SegmentMaterialRepository interface {
	GetSegmentMaterial(id entities.SegmentMaterialID) (*entities.SegmentMaterial, error)
	GetAllSegmentMaterials() []entities.SegmentMaterial
	GetSegmentMaterials(segmentID entities.SegmentID) []entities.SegmentMaterial
	LoadSegmentMaterials(rows []*entities.SegmentMaterial) error
	// UpsertSegmentMaterials replaces rows with a matching id and appends
	// the rest, in a single collection swap.
	UpsertSegmentMaterials(rows ...entities.SegmentMaterial) error
}
