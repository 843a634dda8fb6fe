package services

import (
	"fmt"

	"github.com/vsinha/siteorders/pkg/domain/entities"
)

// IntegrityValidator checks cross-entity references in a data set
type IntegrityValidator struct{}

// NewIntegrityValidator creates a new integrity validator
func NewIntegrityValidator() *IntegrityValidator {
	return &IntegrityValidator{}
}

// IntegrityResult contains the results of reference validation.
// Orphans are reported as warnings: deleting a segment keeps its order history.
type IntegrityResult struct {
	DuplicateIDs             []string                     `json:"duplicateIds"`
	DanglingSegments         []entities.SegmentID         `json:"danglingSegments"`
	OrphanedSegmentMaterials []entities.SegmentMaterialID `json:"orphanedSegmentMaterials"`
	UnknownMaterials         []entities.SegmentMaterialID `json:"unknownMaterials"`
	DuplicatePending         []entities.SegmentMaterialID `json:"duplicatePending"`
	Errors                   []string                     `json:"errors"`
	Warnings                 []string                     `json:"warnings"`
}

// Valid reports whether no hard errors were found
func (r *IntegrityResult) Valid() bool {
	return len(r.Errors) == 0
}

// Validate performs reference validation across all four collections
func (v *IntegrityValidator) Validate(
	projects []entities.Project,
	segments []entities.Segment,
	materials []entities.Material,
	segmentMaterials []entities.SegmentMaterial,
) *IntegrityResult {
	result := &IntegrityResult{
		DuplicateIDs:             make([]string, 0),
		DanglingSegments:         make([]entities.SegmentID, 0),
		OrphanedSegmentMaterials: make([]entities.SegmentMaterialID, 0),
		UnknownMaterials:         make([]entities.SegmentMaterialID, 0),
		DuplicatePending:         make([]entities.SegmentMaterialID, 0),
		Errors:                   make([]string, 0),
		Warnings:                 make([]string, 0),
	}

	projectSet := make(map[entities.ProjectID]bool, len(projects))
	for _, project := range projects {
		if projectSet[project.ID] {
			result.DuplicateIDs = append(result.DuplicateIDs, string(project.ID))
		}
		projectSet[project.ID] = true
	}

	segmentSet := make(map[entities.SegmentID]bool, len(segments))
	for _, segment := range segments {
		if segmentSet[segment.ID] {
			result.DuplicateIDs = append(result.DuplicateIDs, string(segment.ID))
		}
		segmentSet[segment.ID] = true
		if !projectSet[segment.ProjectID] {
			result.DanglingSegments = append(result.DanglingSegments, segment.ID)
		}
	}

	materialSet := make(map[entities.MaterialID]bool, len(materials))
	for _, material := range materials {
		if materialSet[material.ID] {
			result.DuplicateIDs = append(result.DuplicateIDs, string(material.ID))
		}
		materialSet[material.ID] = true
	}

	seenRows := make(map[entities.SegmentMaterialID]bool, len(segmentMaterials))
	pending := make(map[string]entities.SegmentMaterialID)
	for _, row := range segmentMaterials {
		if seenRows[row.ID] {
			result.DuplicateIDs = append(result.DuplicateIDs, string(row.ID))
		}
		seenRows[row.ID] = true

		if !segmentSet[row.SegmentID] {
			result.OrphanedSegmentMaterials = append(result.OrphanedSegmentMaterials, row.ID)
		}
		if !materialSet[row.MaterialID] {
			result.UnknownMaterials = append(result.UnknownMaterials, row.ID)
		}

		if row.Status != entities.NotOrdered {
			continue
		}
		key := fmt.Sprintf("%s|%s", row.SegmentID, row.MaterialID)
		if first, exists := pending[key]; exists {
			result.DuplicatePending = append(result.DuplicatePending, first, row.ID)
		} else {
			pending[key] = row.ID
		}
	}

	if len(result.DuplicateIDs) > 0 {
		result.Errors = append(result.Errors, fmt.Sprintf("Duplicate ids found: %v", result.DuplicateIDs))
	}
	if len(result.DanglingSegments) > 0 {
		result.Errors = append(result.Errors, fmt.Sprintf("Segments reference unknown projects: %v", result.DanglingSegments))
	}
	if len(result.UnknownMaterials) > 0 {
		result.Errors = append(result.Errors, fmt.Sprintf("Segment materials reference unknown materials: %v", result.UnknownMaterials))
	}
	if len(result.DuplicatePending) > 0 {
		result.Errors = append(result.Errors, fmt.Sprintf("Duplicate not_ordered segment materials: %v", result.DuplicatePending))
	}
	if len(result.OrphanedSegmentMaterials) > 0 {
		result.Warnings = append(result.Warnings, fmt.Sprintf("Segment materials without a segment: %v", result.OrphanedSegmentMaterials))
	}

	return result
}
