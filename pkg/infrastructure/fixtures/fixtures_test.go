package fixtures

import (
	"testing"

	"github.com/vsinha/siteorders/pkg/domain/entities"
	"github.com/vsinha/siteorders/pkg/domain/services"
)

func TestBuildDemoStore_Integrity(t *testing.T) {
	store := BuildDemoStore()

	result := services.NewIntegrityValidator().Validate(
		store.Projects.GetAllProjects(),
		store.Segments.GetAllSegments(),
		store.Materials.GetAllMaterials(),
		store.SegmentMaterials.GetAllSegmentMaterials(),
	)
	if !result.Valid() {
		t.Errorf("Expected demo data to be valid, got errors: %v", result.Errors)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("Expected no warnings, got %v", result.Warnings)
	}
}

func TestBuildDemoStore(t *testing.T) {
	store := BuildDemoStore()

	if got := len(store.Segments.GetAllSegments()); got != 5 {
		t.Errorf("Expected 5 segments, got %d", got)
	}
	s4, err := store.Segments.GetSegment("s4")
	if err != nil {
		t.Fatalf("Expected segment s4: %v", err)
	}
	if s4.OrderStatus != entities.Ordered {
		t.Errorf("Expected s4 to be ordered, got %v", s4.OrderStatus)
	}
	if got := len(store.SegmentMaterials.GetSegmentMaterials("s1")); got != 2 {
		t.Errorf("Expected 2 rows for s1, got %d", got)
	}
}
