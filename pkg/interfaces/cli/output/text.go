package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/vsinha/siteorders/pkg/application/dto"
	"github.com/vsinha/siteorders/pkg/domain/services"
)

// WriteSegments prints the segment list with order summaries
func WriteSegments(w io.Writer, listings []dto.SegmentListing) error {
	fmt.Fprintf(w, "📋 Segments: %d\n\n", len(listings))
	if len(listings) == 0 {
		return nil
	}

	fmt.Fprintf(w, "%-38s %-40s %-10s %-10s %-13s %-12s %-7s %-9s\n",
		"ID", "Project", "Start", "End", "Scope", "Status", "To Do", "Ordered")
	fmt.Fprintf(w, "%-38s %-40s %-10s %-10s %-13s %-12s %-7s %-9s\n",
		strings.Repeat("-", 38), strings.Repeat("-", 40), strings.Repeat("-", 10), strings.Repeat("-", 10),
		strings.Repeat("-", 13), strings.Repeat("-", 12), strings.Repeat("-", 7), strings.Repeat("-", 9))

	for _, listing := range listings {
		fmt.Fprintf(w, "%-38s %-40s %-10s %-10s %-13s %-12s %-7d %-9d\n",
			listing.Segment.ID,
			listing.Project.DisplayName(),
			listing.Segment.StartDate,
			listing.Segment.EndDate,
			listing.Segment.Scope.Label(),
			listing.Segment.OrderStatus,
			listing.Summary.NotOrdered,
			listing.Summary.Ordered+listing.Summary.Delivered)
	}
	return nil
}

// WriteOrderDraft prints the order document followed by the measure totals
func WriteOrderDraft(w io.Writer, draft *dto.OrderDraft) error {
	fmt.Fprintln(w, draft.Document)
	if len(draft.Totals) == 0 {
		return nil
	}

	fmt.Fprintf(w, "\n📦 Quantities by measure:\n")
	for _, total := range draft.Totals {
		fmt.Fprintf(w, "  %s %s\n", total.Amount.String(), total.Unit)
	}
	return nil
}

// WritePlacedOrder prints the rows written by an order
func WritePlacedOrder(w io.Writer, placed *dto.PlacedOrder) error {
	fmt.Fprintf(w, "✅ Order placed for segment %s (%d items)\n", placed.SegmentID, placed.TotalItems)
	for _, row := range placed.Rows {
		fmt.Fprintf(w, "  %-38s %-6s x%-5d %s\n", row.ID, row.MaterialID, row.Quantity, row.Status)
	}
	return nil
}

// WriteMonth prints a month grid. Days with segments are marked with the
// number of segments touching them; days outside the month are dimmed with dots.
func WriteMonth(w io.Writer, view dto.MonthView) error {
	fmt.Fprintf(w, "📅 %s %d\n\n", view.Month, view.Year)
	fmt.Fprintln(w, " Mon   Tue   Wed   Thu   Fri   Sat   Sun")

	for _, week := range view.Weeks {
		var line strings.Builder
		for _, day := range week {
			switch {
			case !day.InMonth:
				line.WriteString("  ·   ")
			case len(day.SegmentIDs) > 0:
				line.WriteString(fmt.Sprintf(" %2d*%d ", day.Date.Day, len(day.SegmentIDs)))
			default:
				line.WriteString(fmt.Sprintf(" %2d   ", day.Date.Day))
			}
		}
		fmt.Fprintln(w, strings.TrimRight(line.String(), " "))
	}
	return nil
}

// WriteIntegrity prints a reference check report
func WriteIntegrity(w io.Writer, result *services.IntegrityResult) error {
	if result.Valid() && len(result.Warnings) == 0 {
		fmt.Fprintln(w, "✅ No reference problems found")
		return nil
	}

	for _, e := range result.Errors {
		fmt.Fprintf(w, "❌ %s\n", e)
	}
	for _, warning := range result.Warnings {
		fmt.Fprintf(w, "⚠️  %s\n", warning)
	}
	return nil
}
