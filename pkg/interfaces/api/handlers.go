package api

import (
	"net/http"
	"time"

	"cloud.google.com/go/civil"
	"github.com/gin-gonic/gin"

	"github.com/vsinha/siteorders/pkg/application/dto"
	"github.com/vsinha/siteorders/pkg/application/services/ordering"
	"github.com/vsinha/siteorders/pkg/application/services/session"
	"github.com/vsinha/siteorders/pkg/domain/entities"
)

// listProjects returns every project in storage order
func (s *Server) listProjects(c *gin.Context) {
	var projects []entities.Project
	_ = workspaceFrom(c).Do(func(w *session.Workspace) error {
		projects = w.Store.Projects.GetAllProjects()
		return nil
	})
	c.JSON(http.StatusOK, projects)
}

// projectSummary returns a project with the order summary of its segments
func (s *Server) projectSummary(c *gin.Context) {
	id := entities.ProjectID(c.Param("id"))
	var response gin.H
	err := workspaceFrom(c).Do(func(w *session.Workspace) error {
		project, err := w.Store.Projects.GetProject(id)
		if err != nil {
			return err
		}
		response = gin.H{"project": project, "summary": w.Status.ProjectOrderSummary(id)}
		return nil
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// listMaterials returns the catalog grouped by category, filtered by ?q=
func (s *Server) listMaterials(c *gin.Context) {
	groups := []dto.CategoryGroup{}
	_ = workspaceFrom(c).Do(func(w *session.Workspace) error {
		groups = append(groups, ordering.CatalogByCategory(w.Store.Materials.GetAllMaterials(), c.Query("q"))...)
		return nil
	})
	c.JSON(http.StatusOK, groups)
}

// listSegments returns segments sorted by start date with their order summaries
func (s *Server) listSegments(c *gin.Context) {
	projectID := entities.ProjectID(c.Query("projectId"))
	var listings []dto.SegmentListing
	_ = workspaceFrom(c).Do(func(w *session.Workspace) error {
		var segments []entities.Segment
		for _, segment := range w.Schedule.SegmentsByStartDate() {
			if projectID == "" || segment.ProjectID == projectID {
				segments = append(segments, segment)
			}
		}
		listings = w.Status.SegmentListings(segments)
		return nil
	})
	c.JSON(http.StatusOK, listings)
}

// createSegment adds a segment; reversed dates are accepted and swapped
func (s *Server) createSegment(c *gin.Context) {
	var req SegmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	start, end, scope, err := req.parse()
	if err != nil {
		respondError(c, err)
		return
	}

	var segment *entities.Segment
	err = workspaceFrom(c).Do(func(w *session.Workspace) error {
		var err error
		segment, err = w.Schedule.CreateSegment(entities.ProjectID(req.ProjectID), start, end, scope)
		return err
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, segment)
}

// updateSegment replaces a segment's dates and scope
func (s *Server) updateSegment(c *gin.Context) {
	var req SegmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	start, end, scope, err := req.parse()
	if err != nil {
		respondError(c, err)
		return
	}

	var segment *entities.Segment
	err = workspaceFrom(c).Do(func(w *session.Workspace) error {
		var err error
		segment, err = w.Schedule.UpdateSegment(entities.SegmentID(c.Param("id")), start, end, scope)
		return err
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, segment)
}

// deleteSegment removes a segment, keeping its segment material rows
func (s *Server) deleteSegment(c *gin.Context) {
	err := workspaceFrom(c).Do(func(w *session.Workspace) error {
		return w.Schedule.DeleteSegment(entities.SegmentID(c.Param("id")))
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// segmentSummary counts a segment's rows per status
func (s *Server) segmentSummary(c *gin.Context) {
	id := entities.SegmentID(c.Param("id"))
	var summary dto.OrderSummary
	err := workspaceFrom(c).Do(func(w *session.Workspace) error {
		if _, err := w.Store.Segments.GetSegment(id); err != nil {
			return err
		}
		summary = w.Status.SegmentOrderSummary(id)
		return nil
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// segmentsForDay returns the segments touching a day in storage order
func (s *Server) segmentsForDay(c *gin.Context) {
	day, err := civil.ParseDate(c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be yyyy-MM-dd"})
		return
	}

	segments := []entities.Segment{}
	_ = workspaceFrom(c).Do(func(w *session.Workspace) error {
		segments = append(segments, w.Schedule.SegmentsForDay(day, entities.ProjectID(c.Query("projectId")))...)
		return nil
	})
	c.JSON(http.StatusOK, segments)
}

// monthView returns the month grid for ?date= (default today)
func (s *Server) monthView(c *gin.Context) {
	var query DateQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var view dto.MonthView
	_ = workspaceFrom(c).Do(func(w *session.Workspace) error {
		view = w.Schedule.MonthView(s.dateOrToday(query.Date), entities.ProjectID(query.ProjectID))
		return nil
	})
	c.JSON(http.StatusOK, view)
}

// timeline returns the project overview starting at the Monday of ?weekStart= (default this week)
func (s *Server) timeline(c *gin.Context) {
	var query TimelineQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var view dto.TimelineView
	_ = workspaceFrom(c).Do(func(w *session.Workspace) error {
		view = w.Schedule.Timeline(s.dateOrToday(query.WeekStart), query.Days)
		return nil
	})
	c.JSON(http.StatusOK, view)
}

// getOrder returns the active order session
func (s *Server) getOrder(c *gin.Context) {
	s.respondDraft(c, func(w *session.Workspace) error { return nil })
}

// selectSegment starts an order session for a segment
func (s *Server) selectSegment(c *gin.Context) {
	var req SelectSegmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.respondDraft(c, func(w *session.Workspace) error {
		return w.Orders.SelectSegment(entities.SegmentID(req.SegmentID))
	})
}

// setQuantity sets or removes one material in the active order
func (s *Server) setQuantity(c *gin.Context) {
	var req SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.respondDraft(c, func(w *session.Workspace) error {
		return w.Orders.SetQuantity(entities.MaterialID(req.MaterialID), entities.Quantity(*req.Quantity))
	})
}

// clearOrder empties the active order
func (s *Server) clearOrder(c *gin.Context) {
	s.respondDraft(c, func(w *session.Workspace) error {
		return w.Orders.Clear()
	})
}

// placeOrder commits the active order
func (s *Server) placeOrder(c *gin.Context) {
	var placed *dto.PlacedOrder
	err := workspaceFrom(c).Do(func(w *session.Workspace) error {
		var err error
		placed, err = w.Orders.PlaceOrder()
		return err
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, placed)
}

// markDelivered records the delivery of a segment material row
func (s *Server) markDelivered(c *gin.Context) {
	var row *entities.SegmentMaterial
	err := workspaceFrom(c).Do(func(w *session.Workspace) error {
		var err error
		row, err = w.Orders.MarkDelivered(entities.SegmentMaterialID(c.Param("id")))
		return err
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

// activity lists the workspace's recorded changes, oldest first
func (s *Server) activity(c *gin.Context) {
	entries := []ActivityEntry{}
	err := workspaceFrom(c).Do(func(w *session.Workspace) error {
		recorded, err := w.Events.ReadAllEvents(0)
		if err != nil {
			return err
		}
		for _, event := range recorded {
			entries = append(entries, ActivityEntry{
				Type:      event.Type(),
				Stream:    event.StreamID(),
				Version:   event.Version(),
				Timestamp: event.Timestamp().Format(time.RFC3339),
				Data:      event.Data(),
			})
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// integrity reports reference problems in the workspace
func (s *Server) integrity(c *gin.Context) {
	var response interface{}
	_ = workspaceFrom(c).Do(func(w *session.Workspace) error {
		response = w.Validate()
		return nil
	})
	c.JSON(http.StatusOK, response)
}

// respondDraft runs fn and replies with the resulting order draft
func (s *Server) respondDraft(c *gin.Context, fn func(w *session.Workspace) error) {
	var draft *dto.OrderDraft
	err := workspaceFrom(c).Do(func(w *session.Workspace) error {
		if err := fn(w); err != nil {
			return err
		}
		var err error
		draft, err = w.Orders.Draft()
		return err
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

func (s *Server) dateOrToday(value string) civil.Date {
	if day, err := civil.ParseDate(value); err == nil {
		return day
	}
	return civil.DateOf(s.now())
}
