package status

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vsinha/siteorders/pkg/application/dto"
	"github.com/vsinha/siteorders/pkg/domain/entities"
	"github.com/vsinha/siteorders/pkg/infrastructure/fixtures"
)

func TestAggregator_SegmentOrderSummary(t *testing.T) {
	store := fixtures.BuildDemoStore()
	require.NoError(t, store.UpsertSegmentMaterial(entities.SegmentMaterial{
		ID: "sm5", SegmentID: "s1", MaterialID: "m4", Quantity: 1, Status: entities.Ordered,
	}))
	aggregator := NewAggregator(store)

	require.Equal(t, dto.OrderSummary{NotOrdered: 2, Ordered: 1, Delivered: 0}, aggregator.SegmentOrderSummary("s1"))
	require.Equal(t, dto.OrderSummary{Ordered: 2}, aggregator.SegmentOrderSummary("s4"))
	require.Equal(t, dto.OrderSummary{}, aggregator.SegmentOrderSummary("s5"))
	require.Equal(t, dto.OrderSummary{}, aggregator.SegmentOrderSummary("missing"))
}

func TestAggregator_ReadsCurrentState(t *testing.T) {
	store := fixtures.BuildDemoStore()
	aggregator := NewAggregator(store)
	require.Equal(t, 2, aggregator.SegmentOrderSummary("s1").NotOrdered)

	require.NoError(t, store.UpsertSegmentMaterial(entities.SegmentMaterial{
		ID: "sm1", SegmentID: "s1", MaterialID: "m1", Quantity: 2, Status: entities.Delivered,
	}))

	require.Equal(t, dto.OrderSummary{NotOrdered: 1, Delivered: 1}, aggregator.SegmentOrderSummary("s1"))
}

func TestAggregator_ProjectOrderSummary(t *testing.T) {
	store := fixtures.BuildDemoStore()
	require.NoError(t, store.UpsertSegmentMaterial(entities.SegmentMaterial{
		ID: "sm5", SegmentID: "s2", MaterialID: "m3", Quantity: 2, Status: entities.NotOrdered,
	}))
	require.NoError(t, store.UpsertSegmentMaterial(entities.SegmentMaterial{
		ID: "sm6", SegmentID: "s3", MaterialID: "m6", Quantity: 2, Status: entities.Ordered,
	}))
	aggregator := NewAggregator(store)

	summary := aggregator.ProjectOrderSummary("p2")
	require.Equal(t, dto.OrderSummary{NotOrdered: 1, Ordered: 1}, summary)
	require.Equal(t, 2, summary.Total())
}

func TestAggregator_SegmentListings(t *testing.T) {
	store := fixtures.BuildDemoStore()
	aggregator := NewAggregator(store)

	listings := aggregator.SegmentListings(store.Segments.GetAllSegments())
	require.Len(t, listings, 5)
	require.Equal(t, "Knowles Construction - Hampstead Lane", listings[3].Project.DisplayName())
	require.Equal(t, 2, listings[3].Summary.Ordered)
}
