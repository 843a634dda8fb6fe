package ordering

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/vsinha/siteorders/pkg/application/dto"
	"github.com/vsinha/siteorders/pkg/domain/entities"
	"github.com/vsinha/siteorders/pkg/infrastructure/events"
	"github.com/vsinha/siteorders/pkg/infrastructure/repositories/memory"
)

// ErrNoActiveSession is returned by operations that need a selected segment
var ErrNoActiveSession = errors.New("no segment selected for ordering")

// Session is the order being composed for one segment.
// It is discarded whenever another segment is selected.
type Session struct {
	SegmentID entities.SegmentID
	Items     []entities.OrderItem
}

// TotalItems sums the item quantities
func (s Session) TotalItems() entities.Quantity {
	return TotalItems(s.Items)
}

// Option configures a Builder
type Option func(*Builder)

// WithClock overrides the time source used for order and delivery timestamps
func WithClock(now func() time.Time) Option {
	return func(b *Builder) { b.now = now }
}

// WithIDGenerator overrides how new segment material ids are generated
func WithIDGenerator(newID func() string) Option {
	return func(b *Builder) { b.newID = newID }
}

// WithLogger sets the builder's logger
func WithLogger(logger zerolog.Logger) Option {
	return func(b *Builder) { b.logger = logger }
}

// Builder composes and places material orders against a store
type Builder struct {
	store  *memory.Store
	events events.EventStore
	now    func() time.Time
	newID  func() string
	logger zerolog.Logger

	active *Session
}

// NewBuilder creates an order builder with no active session
func NewBuilder(store *memory.Store, eventStore events.EventStore, opts ...Option) *Builder {
	b := &Builder{
		store:  store,
		events: eventStore,
		now:    time.Now,
		newID:  func() string { return uuid.New().String() },
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Active returns a copy of the current session
func (b *Builder) Active() (Session, bool) {
	if b.active == nil {
		return Session{}, false
	}
	return Session{
		SegmentID: b.active.SegmentID,
		Items:     append([]entities.OrderItem(nil), b.active.Items...),
	}, true
}

// SelectSegment starts a new session for segmentID, seeded with the segment's
// not_ordered rows. Rows whose material is missing from the catalog are skipped.
func (b *Builder) SelectSegment(segmentID entities.SegmentID) error {
	if _, err := b.store.Segments.GetSegment(segmentID); err != nil {
		return err
	}

	session := &Session{SegmentID: segmentID}
	for _, row := range b.store.SegmentMaterials.GetSegmentMaterials(segmentID) {
		if row.Status != entities.NotOrdered {
			continue
		}
		material, err := b.store.Materials.GetMaterial(row.MaterialID)
		if err != nil {
			b.logger.Warn().
				Str("segment_material", string(row.ID)).
				Str("material", string(row.MaterialID)).
				Msg("Skipping row with unknown material")
			continue
		}
		session.Items = append(session.Items, entities.OrderItem{Material: *material, Quantity: row.Quantity})
	}

	b.active = session
	b.logger.Debug().Str("segment", string(segmentID)).Int("items", len(session.Items)).Msg("Segment selected")
	return nil
}

// SetQuantity sets the quantity of a material in the active session.
// Zero removes the material, a positive quantity replaces an existing entry
// in place or appends a new one.
func (b *Builder) SetQuantity(materialID entities.MaterialID, quantity entities.Quantity) error {
	if b.active == nil {
		return ErrNoActiveSession
	}
	if quantity < 0 {
		return fmt.Errorf("quantity cannot be negative, got %d", quantity)
	}

	index := -1
	for i, item := range b.active.Items {
		if item.Material.ID == materialID {
			index = i
			break
		}
	}

	if quantity == 0 {
		if index >= 0 {
			b.active.Items = append(b.active.Items[:index:index], b.active.Items[index+1:]...)
		}
		return nil
	}

	if index >= 0 {
		items := append([]entities.OrderItem(nil), b.active.Items...)
		items[index].Quantity = quantity
		b.active.Items = items
		return nil
	}

	material, err := b.store.Materials.GetMaterial(materialID)
	if err != nil {
		return err
	}
	b.active.Items = append(b.active.Items, entities.OrderItem{Material: *material, Quantity: quantity})
	return nil
}

// Clear empties the active session; the session stays bound to its segment
func (b *Builder) Clear() error {
	if b.active == nil {
		return ErrNoActiveSession
	}
	b.active.Items = nil
	return nil
}

// Document renders the order text for the active session
func (b *Builder) Document() (string, error) {
	if b.active == nil {
		return "", ErrNoActiveSession
	}
	project, segment, err := b.lookup(b.active.SegmentID)
	if err != nil {
		return "", err
	}
	return RenderOrderText(*project, *segment, b.active.Items), nil
}

// Draft returns the active session with its document and measure totals
func (b *Builder) Draft() (*dto.OrderDraft, error) {
	document, err := b.Document()
	if err != nil {
		return nil, err
	}
	session, _ := b.Active()
	return &dto.OrderDraft{
		SegmentID:  session.SegmentID,
		Items:      session.Items,
		TotalItems: session.TotalItems(),
		Totals:     MeasureTotals(session.Items),
		Document:   document,
	}, nil
}

// PlaceOrder commits the active session. Each item overwrites the segment's
// row for that material, preferring a not_ordered row, then an ordered one,
// then a delivered one, and inserts a new ordered row only when none exists.
// The segment becomes ordered after its rows are stored, and the session is emptied.
func (b *Builder) PlaceOrder() (*dto.PlacedOrder, error) {
	if b.active == nil {
		return nil, ErrNoActiveSession
	}
	segmentID := b.active.SegmentID
	project, segment, err := b.lookup(segmentID)
	if err != nil {
		return nil, err
	}

	placedAt := b.now()
	document := RenderOrderText(*project, *segment, b.active.Items)
	existing := b.store.SegmentMaterials.GetSegmentMaterials(segmentID)

	rows := make([]entities.SegmentMaterial, 0, len(b.active.Items))
	for _, item := range b.active.Items {
		orderedAt := placedAt
		row, found := matchRow(existing, item.Material.ID)
		if !found {
			row = entities.SegmentMaterial{
				ID:         entities.SegmentMaterialID(b.newID()),
				SegmentID:  segmentID,
				MaterialID: item.Material.ID,
			}
		}
		row.Quantity = item.Quantity
		row.Status = entities.Ordered
		row.OrderedAt = &orderedAt
		row.DeliveredAt = nil
		rows = append(rows, row)
	}

	if err := b.store.ApplyOrder(segmentID, rows, entities.Ordered); err != nil {
		return nil, fmt.Errorf("failed to place order for segment %s: %w", segmentID, err)
	}

	total := TotalItems(b.active.Items)
	b.active.Items = nil

	b.append(segmentID, events.OrderPlacedEvent, events.OrderPlaced{
		SegmentID:  segmentID,
		Rows:       rows,
		TotalItems: total,
	}, placedAt)

	b.logger.Info().
		Str("segment", string(segmentID)).
		Int("rows", len(rows)).
		Int64("total_items", int64(total)).
		Msg("Order placed")

	return &dto.PlacedOrder{
		SegmentID:  segmentID,
		Rows:       rows,
		TotalItems: total,
		Document:   document,
		PlacedAt:   placedAt,
	}, nil
}

// MarkDelivered records the delivery of one segment material row. When every
// row of the segment has been delivered the segment becomes delivered too.
func (b *Builder) MarkDelivered(id entities.SegmentMaterialID) (*entities.SegmentMaterial, error) {
	row, err := b.store.SegmentMaterials.GetSegmentMaterial(id)
	if err != nil {
		return nil, err
	}
	segment, err := b.store.Segments.GetSegment(row.SegmentID)
	if err != nil {
		return nil, fmt.Errorf("segment material %s: %w", id, err)
	}
	if row.Status == entities.NotOrdered {
		return nil, fmt.Errorf("segment material %s has not been ordered", id)
	}

	deliveredAt := b.now()
	row.Status = entities.Delivered
	row.DeliveredAt = &deliveredAt

	status := segment.OrderStatus
	allDelivered := true
	for _, other := range b.store.SegmentMaterials.GetSegmentMaterials(row.SegmentID) {
		if other.ID != row.ID && other.Status != entities.Delivered {
			allDelivered = false
			break
		}
	}
	if allDelivered {
		status = entities.Delivered
	}

	if err := b.store.ApplyOrder(row.SegmentID, []entities.SegmentMaterial{*row}, status); err != nil {
		return nil, fmt.Errorf("failed to mark %s delivered: %w", id, err)
	}

	b.append(row.SegmentID, events.MaterialDeliveredEvent, events.MaterialDelivered{Row: *row}, deliveredAt)
	b.logger.Info().Str("segment_material", string(id)).Bool("segment_delivered", allDelivered).Msg("Material delivered")
	return row, nil
}

func (b *Builder) lookup(segmentID entities.SegmentID) (*entities.Project, *entities.Segment, error) {
	segment, err := b.store.Segments.GetSegment(segmentID)
	if err != nil {
		return nil, nil, err
	}
	project, err := b.store.Projects.GetProject(segment.ProjectID)
	if err != nil {
		return nil, nil, fmt.Errorf("segment %s: %w", segmentID, err)
	}
	return project, segment, nil
}

func (b *Builder) append(segmentID entities.SegmentID, eventType string, data interface{}, at time.Time) {
	if b.events == nil {
		return
	}
	stream := events.SegmentStream(segmentID)
	if err := b.events.AppendEvent(stream, events.NewEvent(eventType, stream, data, at)); err != nil {
		b.logger.Warn().Err(err).Str("event", eventType).Msg("Failed to record event")
	}
}

// matchRow finds the row an order item should overwrite: not_ordered first,
// then ordered, then delivered, the first of each in storage order.
func matchRow(rows []entities.SegmentMaterial, materialID entities.MaterialID) (entities.SegmentMaterial, bool) {
	best := -1
	for i := range rows {
		if rows[i].MaterialID != materialID {
			continue
		}
		if best < 0 || statusRank(rows[i].Status) < statusRank(rows[best].Status) {
			best = i
		}
	}
	if best < 0 {
		return entities.SegmentMaterial{}, false
	}
	return rows[best], true
}

func statusRank(status entities.OrderStatus) int {
	switch status {
	case entities.NotOrdered:
		return 0
	case entities.Ordered:
		return 1
	default:
		return 2
	}
}

// TotalItems sums the quantities of items
func TotalItems(items []entities.OrderItem) entities.Quantity {
	var total entities.Quantity
	for _, item := range items {
		total += item.Quantity
	}
	return total
}
