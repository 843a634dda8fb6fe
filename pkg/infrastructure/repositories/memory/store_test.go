package memory

import (
	"errors"
	"strings"
	"testing"

	"github.com/vsinha/siteorders/pkg/domain/entities"
	"github.com/vsinha/siteorders/pkg/domain/repositories"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	seg := testSegment("s1", 17)
	store, err := NewStoreFromDataSet(DataSet{
		Projects:  []*entities.Project{{ID: "p1", ClientName: "Knowles Construction", SiteName: "Sheldon Avenue", ProjectCode: "AFSA001"}},
		Segments:  []*entities.Segment{&seg},
		Materials: []*entities.Material{{ID: "m1", Name: "SC802", Brand: "Nullifire"}, {ID: "m2", Name: "TS815", Brand: "Nullifire"}},
		SegmentMaterials: []*entities.SegmentMaterial{
			{ID: "sm1", SegmentID: "s1", MaterialID: "m1", Quantity: 2, Status: entities.NotOrdered},
		},
	})
	if err != nil {
		t.Fatalf("Failed to build store: %v", err)
	}
	return store
}

func TestStore_ForeignKeys(t *testing.T) {
	store := testStore(t)

	orphan := testSegment("s2", 20)
	orphan.ProjectID = "p404"
	if err := store.AddSegment(orphan); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for unknown project, got %v", err)
	}

	row := entities.SegmentMaterial{ID: "sm9", SegmentID: "s404", MaterialID: "m1", Quantity: 1}
	if err := store.UpsertSegmentMaterial(row); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for unknown segment, got %v", err)
	}

	row.SegmentID = "s1"
	row.MaterialID = "m404"
	if err := store.UpsertSegmentMaterial(row); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for unknown material, got %v", err)
	}
}

func TestStore_RemoveSegmentKeepsRows(t *testing.T) {
	store := testStore(t)

	if err := store.RemoveSegment("s1"); err != nil {
		t.Fatalf("Failed to remove segment: %v", err)
	}
	if len(store.Segments.GetAllSegments()) != 0 {
		t.Errorf("Expected no segments")
	}
	if len(store.SegmentMaterials.GetSegmentMaterials("s1")) != 1 {
		t.Errorf("Expected segment material row to be kept")
	}
}

func TestStore_ApplyOrder(t *testing.T) {
	store := testStore(t)

	rows := []entities.SegmentMaterial{
		{ID: "sm1", SegmentID: "s1", MaterialID: "m1", Quantity: 4, Status: entities.Ordered},
		{ID: "sm2", SegmentID: "s1", MaterialID: "m2", Quantity: 1, Status: entities.Ordered},
	}
	if err := store.ApplyOrder("s1", rows, entities.Ordered); err != nil {
		t.Fatalf("Failed to apply order: %v", err)
	}

	segment, _ := store.Segments.GetSegment("s1")
	if segment.OrderStatus != entities.Ordered {
		t.Errorf("Expected segment status ordered, got %v", segment.OrderStatus)
	}
	if got := len(store.SegmentMaterials.GetAllSegmentMaterials()); got != 2 {
		t.Errorf("Expected 2 rows, got %d", got)
	}

	foreign := []entities.SegmentMaterial{{ID: "sm3", SegmentID: "s9", MaterialID: "m1", Quantity: 1}}
	if err := store.ApplyOrder("s1", foreign, entities.Ordered); err == nil {
		t.Error("Expected error for row belonging to another segment")
	}
}

func TestStore_CloneIsIndependent(t *testing.T) {
	store := testStore(t)

	clone, err := store.Clone()
	if err != nil {
		t.Fatalf("Failed to clone store: %v", err)
	}
	if err := clone.RemoveSegment("s1"); err != nil {
		t.Fatalf("Failed to remove segment from clone: %v", err)
	}

	if len(store.Segments.GetAllSegments()) != 1 {
		t.Errorf("Expected original store to keep its segment")
	}
}

func TestStore_RejectsDuplicatePendingRows(t *testing.T) {
	seg := testSegment("s1", 17)
	_, err := NewStoreFromDataSet(DataSet{
		Projects:  []*entities.Project{{ID: "p1", ClientName: "Knowles Construction", SiteName: "Sheldon Avenue", ProjectCode: "AFSA001"}},
		Segments:  []*entities.Segment{&seg},
		Materials: []*entities.Material{{ID: "m1", Name: "SC802", Brand: "Nullifire"}},
		SegmentMaterials: []*entities.SegmentMaterial{
			{ID: "sm1", SegmentID: "s1", MaterialID: "m1", Quantity: 2, Status: entities.NotOrdered},
			{ID: "sm2", SegmentID: "s1", MaterialID: "m1", Quantity: 3, Status: entities.NotOrdered},
		},
	})
	if err == nil || !strings.Contains(err.Error(), "failed to load segment materials") {
		t.Fatalf("Expected duplicate pending rows to fail loading, got %v", err)
	}

	store := testStore(t)
	row := entities.SegmentMaterial{ID: "sm9", SegmentID: "s1", MaterialID: "m1", Quantity: 1, Status: entities.NotOrdered}
	if err := store.UpsertSegmentMaterial(row); err == nil {
		t.Error("Expected second pending row for s1/m1 to be rejected")
	}
	if got := len(store.SegmentMaterials.GetSegmentMaterials("s1")); got != 1 {
		t.Errorf("Expected 1 row for s1, got %d", got)
	}
}
