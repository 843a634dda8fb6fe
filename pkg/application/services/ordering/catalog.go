package ordering

import (
	"strings"

	"github.com/vsinha/siteorders/pkg/application/dto"
	"github.com/vsinha/siteorders/pkg/domain/entities"
)

// CatalogByCategory groups materials by category in the order each category
// first appears in the catalog, keeping catalog order within a group. A
// non-empty query keeps only materials whose name or brand contains it,
// ignoring case. Empty groups are omitted.
func CatalogByCategory(materials []entities.Material, query string) []dto.CategoryGroup {
	query = strings.ToLower(strings.TrimSpace(query))

	var groups []dto.CategoryGroup
	index := make(map[entities.MaterialCategory]int)
	for _, material := range materials {
		if !matchesQuery(material, query) {
			continue
		}
		i, exists := index[material.Category]
		if !exists {
			i = len(groups)
			index[material.Category] = i
			groups = append(groups, dto.CategoryGroup{Category: material.Category, Label: material.Category.Label()})
		}
		groups[i].Materials = append(groups[i].Materials, material)
	}
	return groups
}

func matchesQuery(material entities.Material, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(material.Name), query) ||
		strings.Contains(strings.ToLower(material.Brand), query)
}
