package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vsinha/siteorders/pkg/domain/entities"
)

// OrderSummary counts the segment material rows in each fulfillment bucket
type OrderSummary struct {
	NotOrdered int `json:"notOrdered"`
	Ordered    int `json:"ordered"`
	Delivered  int `json:"delivered"`
}

// Add folds another summary into s
func (s *OrderSummary) Add(other OrderSummary) {
	s.NotOrdered += other.NotOrdered
	s.Ordered += other.Ordered
	s.Delivered += other.Delivered
}

// Total returns the number of rows counted
func (s OrderSummary) Total() int {
	return s.NotOrdered + s.Ordered + s.Delivered
}

// MeasureTotal is the physical amount ordered for one unit of measure,
// e.g. 50 kg or 15 L
type MeasureTotal struct {
	Unit   string          `json:"unit"`
	Amount decimal.Decimal `json:"amount"`
}

// OrderDraft is the active order session as presented to a user
type OrderDraft struct {
	SegmentID  entities.SegmentID   `json:"segmentId"`
	Items      []entities.OrderItem `json:"items"`
	TotalItems entities.Quantity    `json:"totalItems"`
	Totals     []MeasureTotal       `json:"totals"`
	Document   string               `json:"document"`
}

// PlacedOrder is the result of committing an order session
type PlacedOrder struct {
	SegmentID  entities.SegmentID         `json:"segmentId"`
	Rows       []entities.SegmentMaterial `json:"rows"`
	TotalItems entities.Quantity          `json:"totalItems"`
	Document   string                     `json:"document"`
	PlacedAt   time.Time                  `json:"placedAt"`
}

// CategoryGroup is one section of the material catalog
type CategoryGroup struct {
	Category  entities.MaterialCategory `json:"category"`
	Label     string                    `json:"label"`
	Materials []entities.Material       `json:"materials"`
}
