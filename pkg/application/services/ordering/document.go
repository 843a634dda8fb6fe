package ordering

import (
	"fmt"
	"strings"

	"cloud.google.com/go/civil"

	"github.com/vsinha/siteorders/pkg/domain/entities"
)

// RenderOrderText produces the order request document that is pasted into
// supplier emails. Items are grouped by brand in the order each brand first
// appears. The layout is consumed downstream and must not change.
func RenderOrderText(project entities.Project, segment entities.Segment, items []entities.OrderItem) string {
	lines := []string{
		"MATERIAL ORDER REQUEST",
		"",
		"Project: " + project.DisplayName(),
		"Project Code: " + project.ProjectCode,
		fmt.Sprintf("Work Dates: %s - %s", formatDocumentDate(segment.StartDate), formatDocumentDate(segment.EndDate)),
		"",
		"MATERIALS REQUIRED:",
		"",
	}

	for _, group := range GroupByBrand(items) {
		lines = append(lines, group.Brand+":")
		for _, item := range group.Items {
			size := ""
			if item.Material.UnitSize != "" {
				size = " (" + item.Material.UnitSize + ")"
			}
			lines = append(lines, fmt.Sprintf("  • %dx %s%s", item.Quantity, item.Material.Name, size))
		}
		lines = append(lines, "")
	}

	lines = append(lines,
		fmt.Sprintf("Total Items: %d", TotalItems(items)),
		"",
		"Please confirm delivery date and availability.",
		"Thank you.",
	)

	return strings.Join(lines, "\n")
}

// BrandGroup is the items of one brand in document order
type BrandGroup struct {
	Brand string
	Items []entities.OrderItem
}

// GroupByBrand groups items by material brand, keeping first-seen brand order
func GroupByBrand(items []entities.OrderItem) []BrandGroup {
	var groups []BrandGroup
	index := make(map[string]int)
	for _, item := range items {
		i, exists := index[item.Material.Brand]
		if !exists {
			i = len(groups)
			index[item.Material.Brand] = i
			groups = append(groups, BrandGroup{Brand: item.Material.Brand})
		}
		groups[i].Items = append(groups[i].Items, item)
	}
	return groups
}

func formatDocumentDate(d civil.Date) string {
	return fmt.Sprintf("%02d/%02d/%04d", d.Day, int(d.Month), d.Year)
}
