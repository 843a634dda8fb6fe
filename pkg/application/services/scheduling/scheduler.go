package scheduling

import (
	"fmt"
	"sort"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/vsinha/siteorders/pkg/application/dto"
	"github.com/vsinha/siteorders/pkg/domain/entities"
	"github.com/vsinha/siteorders/pkg/domain/services"
	"github.com/vsinha/siteorders/pkg/infrastructure/events"
	"github.com/vsinha/siteorders/pkg/infrastructure/repositories/memory"
)

// DefaultTimelineDays is the width of the two-week overview
const DefaultTimelineDays = 14

// Option configures a Scheduler
type Option func(*Scheduler)

// WithClock overrides the time source used for event timestamps
func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) { s.now = now }
}

// WithIDGenerator overrides how new segment ids are generated
func WithIDGenerator(newID func() string) Option {
	return func(s *Scheduler) { s.newID = newID }
}

// WithLogger sets the scheduler's logger
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Scheduler) { s.logger = logger }
}

// Scheduler turns date range selections into segment changes and answers
// calendar queries over the current segments
type Scheduler struct {
	store  *memory.Store
	events events.EventStore
	now    func() time.Time
	newID  func() string
	logger zerolog.Logger
}

// NewScheduler creates a scheduler over store
func NewScheduler(store *memory.Store, eventStore events.EventStore, opts ...Option) *Scheduler {
	s := &Scheduler{
		store:  store,
		events: eventStore,
		now:    time.Now,
		newID:  func() string { return uuid.New().String() },
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateSegment adds a not_ordered segment. Reversed dates are swapped.
func (s *Scheduler) CreateSegment(projectID entities.ProjectID, start, end civil.Date, scope entities.WorkScope) (*entities.Segment, error) {
	r := services.DragRange(start, end)
	segment, err := entities.NewSegment(entities.SegmentID(s.newID()), projectID, r.Start, r.End, scope, entities.NotOrdered)
	if err != nil {
		return nil, err
	}

	if err := s.store.AddSegment(*segment); err != nil {
		return nil, fmt.Errorf("failed to create segment: %w", err)
	}

	s.append(segment.ID, events.SegmentCreatedEvent, events.SegmentCreated{Segment: *segment})
	s.logger.Info().
		Str("segment", string(segment.ID)).
		Str("project", string(projectID)).
		Str("start", segment.StartDate.String()).
		Str("end", segment.EndDate.String()).
		Msg("Segment created")
	return segment, nil
}

// UpdateSegment replaces the date range and scope of a segment, keeping its
// project and order status. Reversed dates are swapped.
func (s *Scheduler) UpdateSegment(id entities.SegmentID, start, end civil.Date, scope entities.WorkScope) (*entities.Segment, error) {
	old, err := s.store.Segments.GetSegment(id)
	if err != nil {
		return nil, err
	}

	r := services.DragRange(start, end)
	segment, err := entities.NewSegment(id, old.ProjectID, r.Start, r.End, scope, old.OrderStatus)
	if err != nil {
		return nil, err
	}

	if err := s.store.UpdateSegment(*segment); err != nil {
		return nil, fmt.Errorf("failed to update segment: %w", err)
	}

	s.append(id, events.SegmentUpdatedEvent, events.SegmentUpdated{OldSegment: *old, NewSegment: *segment})
	s.logger.Info().Str("segment", string(id)).Msg("Segment updated")
	return segment, nil
}

// DeleteSegment removes a segment. Its segment material rows are retained.
func (s *Scheduler) DeleteSegment(id entities.SegmentID) error {
	segment, err := s.store.Segments.GetSegment(id)
	if err != nil {
		return err
	}

	if err := s.store.RemoveSegment(id); err != nil {
		return fmt.Errorf("failed to delete segment: %w", err)
	}

	retained := len(s.store.SegmentMaterials.GetSegmentMaterials(id))
	s.append(id, events.SegmentDeletedEvent, events.SegmentDeleted{Segment: *segment, RetainedRows: retained})

	logEvent := s.logger.Info()
	if retained > 0 {
		logEvent = s.logger.Warn()
	}
	logEvent.Str("segment", string(id)).Int("retained_rows", retained).Msg("Segment deleted")
	return nil
}

// FinishDrag ends a calendar drag and creates a mixed scope segment over the
// selected range. It returns nil when no drag was in progress.
func (s *Scheduler) FinishDrag(projectID entities.ProjectID, drag *services.DragSelection) (*entities.Segment, error) {
	r, ok := drag.Finish()
	if !ok {
		return nil, nil
	}
	return s.CreateSegment(projectID, r.Start, r.End, entities.ScopeMixed)
}

// ProjectSegments returns one project's segments in storage order
func (s *Scheduler) ProjectSegments(projectID entities.ProjectID) []entities.Segment {
	return s.store.Segments.GetProjectSegments(projectID)
}

// SegmentsByStartDate returns all segments sorted by start date. Segments
// starting on the same day keep their storage order.
func (s *Scheduler) SegmentsByStartDate() []entities.Segment {
	segments := append([]entities.Segment(nil), s.store.Segments.GetAllSegments()...)
	sort.SliceStable(segments, func(i, j int) bool {
		return segments[i].StartDate.Before(segments[j].StartDate)
	})
	return segments
}

// SegmentsForDay returns the segments touching day in storage order. An empty
// projectID matches every project.
func (s *Scheduler) SegmentsForDay(day civil.Date, projectID entities.ProjectID) []entities.Segment {
	return services.SegmentsForDay(day, s.segments(projectID))
}

// MonthView lays out the Monday-first grid for the month containing day
func (s *Scheduler) MonthView(day civil.Date, projectID entities.ProjectID) dto.MonthView {
	segments := s.segments(projectID)
	view := dto.MonthView{Year: day.Year, Month: day.Month.String()}

	for _, week := range services.MonthGrid(day) {
		cells := make([]dto.CalendarDay, 0, len(week))
		for _, d := range week {
			cell := dto.CalendarDay{Date: d, InMonth: d.Month == day.Month && d.Year == day.Year}
			for _, segment := range services.SegmentsForDay(d, segments) {
				cell.SegmentIDs = append(cell.SegmentIDs, segment.ID)
			}
			cells = append(cells, cell)
		}
		view.Weeks = append(view.Weeks, cells)
	}

	return view
}

// Timeline builds the project-by-day overview starting on the Monday of
// weekStart's week. Every project gets a row, with or without visible bars.
func (s *Scheduler) Timeline(weekStart civil.Date, days int) dto.TimelineView {
	if days <= 0 {
		days = DefaultTimelineDays
	}
	view := dto.TimelineView{Days: services.TimelineDays(services.WeekStart(weekStart), days)}

	for _, project := range s.store.Projects.GetAllProjects() {
		row := dto.TimelineRow{Project: project}
		for _, segment := range s.store.Segments.GetProjectSegments(project.ID) {
			start, end, ok := services.SegmentPosition(segment, view.Days)
			if !ok {
				continue
			}
			row.Bars = append(row.Bars, dto.TimelineBar{Segment: segment, StartIndex: start, EndIndex: end})
		}
		view.Rows = append(view.Rows, row)
	}

	return view
}

func (s *Scheduler) segments(projectID entities.ProjectID) []entities.Segment {
	if projectID == "" {
		return s.store.Segments.GetAllSegments()
	}
	return s.store.Segments.GetProjectSegments(projectID)
}

func (s *Scheduler) append(id entities.SegmentID, eventType string, data interface{}) {
	if s.events == nil {
		return
	}
	stream := events.SegmentStream(id)
	if err := s.events.AppendEvent(stream, events.NewEvent(eventType, stream, data, s.now())); err != nil {
		s.logger.Warn().Err(err).Str("event", eventType).Msg("Failed to record event")
	}
}
