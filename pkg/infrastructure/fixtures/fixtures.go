// Package fixtures provides the demonstration scenario every new workspace
// starts from when no data directory is configured.
package fixtures

import (
	"time"

	"cloud.google.com/go/civil"

	"github.com/vsinha/siteorders/pkg/domain/entities"
	"github.com/vsinha/siteorders/pkg/infrastructure/repositories/memory"
)

// BuildDemoDataSet builds the four-project demo scenario
func BuildDemoDataSet() memory.DataSet {
	projects := []*entities.Project{
		{ID: "p1", ClientName: "Knowles Construction", SiteName: "Sheldon Avenue", ProjectCode: "AFSA001"},
		{ID: "p2", ClientName: "Lima Construction", SiteName: "Cabul Road", ProjectCode: "AFCR001"},
		{ID: "p3", ClientName: "Knowles Construction", SiteName: "Hampstead Lane", ProjectCode: "AFHL001"},
		{ID: "p4", ClientName: "Box Clever LDN", SiteName: "Kensington High St", ProjectCode: "AFKH001"},
	}

	segments := []*entities.Segment{
		segment("s1", "p1", "2025-11-17", "2025-11-21", entities.ScopePaint, entities.NotOrdered),
		segment("s2", "p2", "2025-11-25", "2025-11-28", entities.ScopePaint, entities.NotOrdered),
		segment("s3", "p2", "2025-12-01", "2025-12-03", entities.ScopeMixed, entities.NotOrdered),
		segment("s4", "p3", "2025-12-08", "2025-12-12", entities.ScopeFirestopping, entities.Ordered),
		segment("s5", "p4", "2025-12-15", "2025-12-19", entities.ScopeMixed, entities.NotOrdered),
	}

	paint, firestopping := entities.CategoryPaint, entities.CategoryFirestopping
	materials := []*entities.Material{
		{ID: "m1", Name: "SC802 Water-Based Intumescent Basecoat", Brand: "Nullifire", Category: paint, Unit: "drums", UnitSize: "25kg"},
		{ID: "m2", Name: "TS815 Solvent-Based Acrylic Topseal", Brand: "Nullifire", Category: paint, Unit: "cans", UnitSize: "5L"},
		{ID: "m3", Name: "Firetex FX6002 Intumescent", Brand: "Sherwin-Williams", Category: paint, Unit: "drums", UnitSize: "20kg"},
		{ID: "m4", Name: "Primer HB", Brand: "Tremco CPG", Category: paint, Unit: "cans", UnitSize: "5L"},
		{ID: "m5", Name: "Interchar 1260 Basecoat", Brand: "International", Category: paint, Unit: "drums", UnitSize: "20kg"},
		{ID: "m6", Name: "FS702 Intumastic", Brand: "Nullifire", Category: firestopping, Unit: "tubes", UnitSize: "310ml"},
		{ID: "m7", Name: "FS709 Intumastic HP Graphite Sealant", Brand: "Nullifire", Category: firestopping, Unit: "tubes", UnitSize: "310ml"},
		{ID: "m8", Name: "CarboMastic 18FC (Parts A & B)", Brand: "CarboMastic", Category: firestopping, Unit: "kits"},
		{ID: "m9", Name: "FC101 Repair Kit", Brand: "Nullifire", Category: firestopping, Unit: "kits"},
		{ID: "m10", Name: "FIREFLY FR Intumescent Acrylic Sealant", Brand: "Firefly", Category: firestopping, Unit: "tubes", UnitSize: "310ml"},
		{ID: "m11", Name: "Rockwool Fire Barrier", Brand: "Rockwool", Category: firestopping, Unit: "packs"},
		{ID: "m12", Name: "Firestop Compound", Brand: "Hilti", Category: firestopping, Unit: "buckets", UnitSize: "5kg"},
	}

	orderedAt := time.Date(2025, time.November, 20, 0, 0, 0, 0, time.UTC)
	segmentMaterials := []*entities.SegmentMaterial{
		{ID: "sm1", SegmentID: "s1", MaterialID: "m1", Quantity: 2, Status: entities.NotOrdered},
		{ID: "sm2", SegmentID: "s1", MaterialID: "m2", Quantity: 3, Status: entities.NotOrdered},
		{ID: "sm3", SegmentID: "s4", MaterialID: "m6", Quantity: 24, Status: entities.Ordered, OrderedAt: &orderedAt},
		{ID: "sm4", SegmentID: "s4", MaterialID: "m11", Quantity: 5, Status: entities.Ordered, OrderedAt: &orderedAt},
	}

	return memory.DataSet{
		Projects:         projects,
		Segments:         segments,
		Materials:        materials,
		SegmentMaterials: segmentMaterials,
	}
}

// BuildDemoStore loads the demo scenario into a fresh store
func BuildDemoStore() *memory.Store {
	store, err := memory.NewStoreFromDataSet(BuildDemoDataSet())
	if err != nil {
		panic(err)
	}
	return store
}

func segment(id entities.SegmentID, projectID entities.ProjectID, start, end string, scope entities.WorkScope, status entities.OrderStatus) *entities.Segment {
	s, err := entities.NewSegment(id, projectID, mustDate(start), mustDate(end), scope, status)
	if err != nil {
		panic(err)
	}
	return s
}

func mustDate(s string) civil.Date {
	d, err := civil.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}
