package repositories

import "github.com/vsinha/siteorders/pkg/domain/entities"

// MaterialRepository provides access to the static material catalog
type MaterialRepository interface {
	GetMaterial(id entities.MaterialID) (*entities.Material, error)
	GetAllMaterials() []entities.Material
	LoadMaterials(materials []*entities.Material) error
}
