package status

import (
	"github.com/vsinha/siteorders/pkg/application/dto"
	"github.com/vsinha/siteorders/pkg/domain/entities"
	"github.com/vsinha/siteorders/pkg/infrastructure/repositories/memory"
)

// Aggregator counts segment material rows by fulfillment status.
// Every call reads the store's current collections; nothing is cached.
type Aggregator struct {
	store *memory.Store
}

// NewAggregator creates an aggregator reading from store
func NewAggregator(store *memory.Store) *Aggregator {
	return &Aggregator{store: store}
}

// SegmentOrderSummary counts the rows of one segment in each status bucket
func (a *Aggregator) SegmentOrderSummary(segmentID entities.SegmentID) dto.OrderSummary {
	return Summarize(a.store.SegmentMaterials.GetSegmentMaterials(segmentID))
}

// ProjectOrderSummary sums the summaries of a project's segments
func (a *Aggregator) ProjectOrderSummary(projectID entities.ProjectID) dto.OrderSummary {
	var summary dto.OrderSummary
	for _, segment := range a.store.Segments.GetProjectSegments(projectID) {
		summary.Add(a.SegmentOrderSummary(segment.ID))
	}
	return summary
}

// SegmentListings returns every segment sorted as given, with its project and summary
func (a *Aggregator) SegmentListings(segments []entities.Segment) []dto.SegmentListing {
	listings := make([]dto.SegmentListing, 0, len(segments))
	for _, segment := range segments {
		listing := dto.SegmentListing{Segment: segment, Summary: a.SegmentOrderSummary(segment.ID)}
		if project, err := a.store.Projects.GetProject(segment.ProjectID); err == nil {
			listing.Project = *project
		}
		listings = append(listings, listing)
	}
	return listings
}

// Summarize counts rows in each status bucket
func Summarize(rows []entities.SegmentMaterial) dto.OrderSummary {
	var summary dto.OrderSummary
	for _, row := range rows {
		switch row.Status {
		case entities.NotOrdered:
			summary.NotOrdered++
		case entities.Ordered:
			summary.Ordered++
		case entities.Delivered:
			summary.Delivered++
		}
	}
	return summary
}
