package memory

import (
	"fmt"

	"github.com/vsinha/siteorders/pkg/domain/entities"
	"github.com/vsinha/siteorders/pkg/domain/repositories"
)

// MaterialRepository provides in-memory storage for the material catalog
type MaterialRepository struct {
	materials    []entities.Material
	materialsMap map[entities.MaterialID]int
}

// NewMaterialRepository creates a new in-memory material repository
func NewMaterialRepository(expectedMaterials int) *MaterialRepository {
	return &MaterialRepository{
		materials:    make([]entities.Material, 0, expectedMaterials),
		materialsMap: make(map[entities.MaterialID]int, expectedMaterials),
	}
}

// Verify interface compliance
var _ repositories.MaterialRepository = (*MaterialRepository)(nil)

// LoadMaterials loads catalog materials, rejecting duplicate ids
func (r *MaterialRepository) LoadMaterials(materials []*entities.Material) error {
	var duplicates []entities.MaterialID
	for _, material := range materials {
		if _, exists := r.materialsMap[material.ID]; exists {
			duplicates = append(duplicates, material.ID)
			continue
		}
		r.materialsMap[material.ID] = len(r.materials)
		r.materials = append(r.materials, *material)
	}
	if len(duplicates) > 0 {
		return fmt.Errorf("duplicate material ids found: %v", duplicates)
	}
	return nil
}

// GetMaterial returns a catalog material by id
func (r *MaterialRepository) GetMaterial(id entities.MaterialID) (*entities.Material, error) {
	index, exists := r.materialsMap[id]
	if !exists {
		return nil, fmt.Errorf("material %s: %w", id, repositories.ErrNotFound)
	}
	material := r.materials[index]
	return &material, nil
}

// GetAllMaterials returns the catalog in load order
func (r *MaterialRepository) GetAllMaterials() []entities.Material {
	return r.materials
}
