package entities

import (
	"fmt"
	"time"
)

// MaterialID identifies a catalog material
type MaterialID string

// SegmentMaterialID identifies a segment material row
type SegmentMaterialID string

// Quantity represents an integer quantity of discrete units (drums, tubes, kits)
type Quantity int64

// Material is a static catalog entry
type Material struct {
	ID       MaterialID       `json:"id"`
	Name     string           `json:"name"`
	Brand    string           `json:"brand"`
	Category MaterialCategory `json:"category"`
	Unit     string           `json:"unit"`
	UnitSize string           `json:"unitSize,omitempty"`
}

// SegmentMaterial records a material quantity assigned to a segment
// together with its own fulfillment lifecycle.
type SegmentMaterial struct {
	ID          SegmentMaterialID `json:"id"`
	SegmentID   SegmentID         `json:"segmentId"`
	MaterialID  MaterialID        `json:"materialId"`
	Quantity    Quantity          `json:"quantity"`
	Status      OrderStatus       `json:"status"`
	OrderedAt   *time.Time        `json:"orderedAt,omitempty"`
	DeliveredAt *time.Time        `json:"deliveredAt,omitempty"`
}

// NewSegmentMaterial creates a validated SegmentMaterial
func NewSegmentMaterial(
	id SegmentMaterialID,
	segmentID SegmentID,
	materialID MaterialID,
	quantity Quantity,
	status OrderStatus,
) (*SegmentMaterial, error) {
	if id == "" {
		return nil, fmt.Errorf("segment material id cannot be empty")
	}
	if segmentID == "" {
		return nil, fmt.Errorf("segment id cannot be empty")
	}
	if materialID == "" {
		return nil, fmt.Errorf("material id cannot be empty")
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive, got %d", quantity)
	}

	return &SegmentMaterial{
		ID:         id,
		SegmentID:  segmentID,
		MaterialID: materialID,
		Quantity:   quantity,
		Status:     status,
	}, nil
}

// OrderItem is an unsaved material and quantity pairing being composed
// for the currently selected segment.
type OrderItem struct {
	Material Material `json:"material"`
	Quantity Quantity `json:"quantity"`
}

// NewOrderItem creates a validated OrderItem
func NewOrderItem(material Material, quantity Quantity) (*OrderItem, error) {
	if material.ID == "" {
		return nil, fmt.Errorf("material id cannot be empty")
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive, got %d", quantity)
	}
	return &OrderItem{Material: material, Quantity: quantity}, nil
}
