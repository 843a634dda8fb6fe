package ordering

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vsinha/siteorders/pkg/domain/entities"
	"github.com/vsinha/siteorders/pkg/infrastructure/fixtures"
)

func catalog() []entities.Material {
	var materials []entities.Material
	for _, m := range fixtures.BuildDemoDataSet().Materials {
		materials = append(materials, *m)
	}
	return materials
}

func TestCatalogByCategory(t *testing.T) {
	groups := CatalogByCategory(catalog(), "")

	require.Len(t, groups, 2)
	require.Equal(t, entities.CategoryPaint, groups[0].Category)
	require.Len(t, groups[0].Materials, 5)
	require.Len(t, groups[1].Materials, 7)
}

func TestCatalogByCategory_Query(t *testing.T) {
	groups := CatalogByCategory(catalog(), "  NULLI ")

	require.Len(t, groups, 2)
	require.Equal(t, []entities.MaterialID{"m1", "m2"}, materialIDs(groups[0].Materials))
	require.Equal(t, []entities.MaterialID{"m6", "m7", "m9"}, materialIDs(groups[1].Materials))

	groups = CatalogByCategory(catalog(), "hilti")
	require.Len(t, groups, 1)
	require.Equal(t, entities.CategoryFirestopping, groups[0].Category)

	require.Empty(t, CatalogByCategory(catalog(), "no such product"))
}

func TestCatalogByCategory_FirstSeenCategoryOrder(t *testing.T) {
	materials := []entities.Material{
		{ID: "m12", Name: "Firestop Compound", Brand: "Hilti", Category: entities.CategoryFirestopping},
		{ID: "m1", Name: "SC802", Brand: "Nullifire", Category: entities.CategoryPaint},
		{ID: "m6", Name: "FS702 Intumastic", Brand: "Nullifire", Category: entities.CategoryFirestopping},
	}

	groups := CatalogByCategory(materials, "")

	require.Len(t, groups, 2)
	require.Equal(t, entities.CategoryFirestopping, groups[0].Category)
	require.Equal(t, "Fire Stopping", groups[0].Label)
	require.Equal(t, []entities.MaterialID{"m12", "m6"}, materialIDs(groups[0].Materials))
	require.Equal(t, entities.CategoryPaint, groups[1].Category)

	groups = CatalogByCategory(materials, "nullifire")
	require.Equal(t, entities.CategoryPaint, groups[0].Category)
}

func materialIDs(materials []entities.Material) []entities.MaterialID {
	var ids []entities.MaterialID
	for _, m := range materials {
		ids = append(ids, m.ID)
	}
	return ids
}
