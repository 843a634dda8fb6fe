package main

import (
	"fmt"
	"os"

	"cloud.google.com/go/civil"
	"github.com/rs/zerolog"

	"github.com/vsinha/siteorders/pkg/application/services/session"
	"github.com/vsinha/siteorders/pkg/domain/entities"
	"github.com/vsinha/siteorders/pkg/infrastructure/fixtures"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	workspace := session.NewWorkspace("example", fixtures.BuildDemoStore(), logger)

	// Schedule a firestopping week on Cabul Road
	segment, err := workspace.Schedule.CreateSegment(
		"p2",
		civil.Date{Year: 2025, Month: 12, Day: 12},
		civil.Date{Year: 2025, Month: 12, Day: 8},
		entities.ScopeFirestopping,
	)
	if err != nil {
		exit(err)
	}
	fmt.Printf("Created segment %s: %s to %s (%d days)\n\n", segment.ID, segment.StartDate, segment.EndDate, segment.Days())

	// Compose the order for it
	if err := workspace.Orders.SelectSegment(segment.ID); err != nil {
		exit(err)
	}
	items := []entities.OrderItem{
		{Material: entities.Material{ID: "m6"}, Quantity: 24},
		{Material: entities.Material{ID: "m11"}, Quantity: 5},
		{Material: entities.Material{ID: "m12"}, Quantity: 2},
	}
	for _, item := range items {
		if err := workspace.Orders.SetQuantity(item.Material.ID, item.Quantity); err != nil {
			exit(err)
		}
	}

	draft, err := workspace.Orders.Draft()
	if err != nil {
		exit(err)
	}
	fmt.Println(draft.Document)
	fmt.Println()
	for _, total := range draft.Totals {
		fmt.Printf("  %s %s\n", total.Amount, total.Unit)
	}

	placed, err := workspace.Orders.PlaceOrder()
	if err != nil {
		exit(err)
	}
	fmt.Printf("\nPlaced %d rows for segment %s\n", len(placed.Rows), placed.SegmentID)

	summary := workspace.Status.SegmentOrderSummary(segment.ID)
	fmt.Printf("Summary: %d not ordered, %d ordered, %d delivered\n", summary.NotOrdered, summary.Ordered, summary.Delivered)
}

func exit(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
