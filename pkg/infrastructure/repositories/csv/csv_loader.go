package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/civil"

	"github.com/vsinha/siteorders/pkg/domain/entities"
	"github.com/vsinha/siteorders/pkg/infrastructure/repositories/memory"
)

// Scenario file names inside a data directory
const (
	ProjectsFile         = "projects.csv"
	SegmentsFile         = "segments.csv"
	MaterialsFile        = "materials.csv"
	SegmentMaterialsFile = "segment_materials.csv"
)

// Loader handles loading dashboard data from CSV files
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadDir loads all four collections from a scenario directory.
// segment_materials.csv is optional.
func (l *Loader) LoadDir(dir string) (memory.DataSet, error) {
	var data memory.DataSet
	var err error

	if data.Projects, err = l.LoadProjects(filepath.Join(dir, ProjectsFile)); err != nil {
		return memory.DataSet{}, err
	}
	if data.Materials, err = l.LoadMaterials(filepath.Join(dir, MaterialsFile)); err != nil {
		return memory.DataSet{}, err
	}
	if data.Segments, err = l.LoadSegments(filepath.Join(dir, SegmentsFile)); err != nil {
		return memory.DataSet{}, err
	}

	rowsFile := filepath.Join(dir, SegmentMaterialsFile)
	if _, statErr := os.Stat(rowsFile); statErr == nil {
		if data.SegmentMaterials, err = l.LoadSegmentMaterials(rowsFile); err != nil {
			return memory.DataSet{}, err
		}
	}

	return data, nil
}

// LoadProjects loads projects from a CSV file
func (l *Loader) LoadProjects(filename string) ([]*entities.Project, error) {
	expectedHeader := []string{"id", "client_name", "site_name", "project_code"}
	records, err := readRecords(filename, "projects", expectedHeader)
	if err != nil {
		return nil, err
	}

	var projects []*entities.Project
	for i, record := range records {
		project, err := entities.NewProject(entities.ProjectID(record[0]), record[1], record[2], record[3])
		if err != nil {
			return nil, fmt.Errorf("projects CSV row %d: %w", i+2, err)
		}
		projects = append(projects, project)
	}

	return projects, nil
}

// LoadSegments loads segments from a CSV file
func (l *Loader) LoadSegments(filename string) ([]*entities.Segment, error) {
	expectedHeader := []string{"id", "project_id", "start_date", "end_date", "scope", "order_status"}
	records, err := readRecords(filename, "segments", expectedHeader)
	if err != nil {
		return nil, err
	}

	var segments []*entities.Segment
	for i, record := range records {
		segment, err := parseSegment(record)
		if err != nil {
			return nil, fmt.Errorf("segments CSV row %d: %w", i+2, err)
		}
		segments = append(segments, segment)
	}

	return segments, nil
}

// LoadMaterials loads the material catalog from a CSV file
func (l *Loader) LoadMaterials(filename string) ([]*entities.Material, error) {
	expectedHeader := []string{"id", "name", "brand", "category", "unit", "unit_size"}
	records, err := readRecords(filename, "materials", expectedHeader)
	if err != nil {
		return nil, err
	}

	var materials []*entities.Material
	for i, record := range records {
		if record[0] == "" {
			return nil, fmt.Errorf("materials CSV row %d: material id cannot be empty", i+2)
		}
		category, err := entities.ParseMaterialCategory(record[3])
		if err != nil {
			return nil, fmt.Errorf("materials CSV row %d: %w", i+2, err)
		}
		materials = append(materials, &entities.Material{
			ID:       entities.MaterialID(record[0]),
			Name:     record[1],
			Brand:    record[2],
			Category: category,
			Unit:     record[4],
			UnitSize: record[5],
		})
	}

	return materials, nil
}

// LoadSegmentMaterials loads segment material rows from a CSV file
func (l *Loader) LoadSegmentMaterials(filename string) ([]*entities.SegmentMaterial, error) {
	expectedHeader := []string{"id", "segment_id", "material_id", "quantity", "status", "ordered_at", "delivered_at"}
	records, err := readRecords(filename, "segment materials", expectedHeader)
	if err != nil {
		return nil, err
	}

	var rows []*entities.SegmentMaterial
	for i, record := range records {
		row, err := parseSegmentMaterial(record)
		if err != nil {
			return nil, fmt.Errorf("segment materials CSV row %d: %w", i+2, err)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// readRecords opens a CSV file, validates its header and returns the data rows
func readRecords(filename, name string, expectedHeader []string) ([][]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s file %s: %w", name, filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = len(expectedHeader)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s CSV: %w", name, err)
	}

	if len(records) < 1 {
		return nil, fmt.Errorf("%s CSV must have a header row", name)
	}

	header := records[0]
	if !validateHeader(header, expectedHeader) {
		return nil, fmt.Errorf("%s CSV header mismatch. Expected: %v, Got: %v", name, expectedHeader, header)
	}

	return records[1:], nil
}

// Helper functions for parsing CSV records

func validateHeader(actual, expected []string) bool {
	if len(actual) != len(expected) {
		return false
	}

	for i, col := range expected {
		if strings.ToLower(strings.TrimSpace(actual[i])) != col {
			return false
		}
	}

	return true
}

func parseSegment(record []string) (*entities.Segment, error) {
	startDate, err := civil.ParseDate(record[2])
	if err != nil {
		return nil, fmt.Errorf("invalid start_date: %s", record[2])
	}

	endDate, err := civil.ParseDate(record[3])
	if err != nil {
		return nil, fmt.Errorf("invalid end_date: %s", record[3])
	}

	scope, err := entities.ParseWorkScope(record[4])
	if err != nil {
		return nil, err
	}

	status, err := entities.ParseOrderStatus(record[5])
	if err != nil {
		return nil, err
	}

	return entities.NewSegment(
		entities.SegmentID(record[0]),
		entities.ProjectID(record[1]),
		startDate,
		endDate,
		scope,
		status,
	)
}

func parseSegmentMaterial(record []string) (*entities.SegmentMaterial, error) {
	quantity, err := strconv.ParseInt(record[3], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid quantity: %s", record[3])
	}

	status, err := entities.ParseOrderStatus(record[4])
	if err != nil {
		return nil, err
	}

	row, err := entities.NewSegmentMaterial(
		entities.SegmentMaterialID(record[0]),
		entities.SegmentID(record[1]),
		entities.MaterialID(record[2]),
		entities.Quantity(quantity),
		status,
	)
	if err != nil {
		return nil, err
	}

	if row.OrderedAt, err = parseTimestamp(record[5]); err != nil {
		return nil, fmt.Errorf("invalid ordered_at: %s", record[5])
	}
	if row.DeliveredAt, err = parseTimestamp(record[6]); err != nil {
		return nil, fmt.Errorf("invalid delivered_at: %s", record[6])
	}

	return row, nil
}

// parseTimestamp accepts RFC 3339 timestamps or bare dates; empty means unset
func parseTimestamp(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
