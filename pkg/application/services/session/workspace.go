package session

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/vsinha/siteorders/pkg/application/services/ordering"
	"github.com/vsinha/siteorders/pkg/application/services/scheduling"
	"github.com/vsinha/siteorders/pkg/application/services/status"
	"github.com/vsinha/siteorders/pkg/domain/services"
	"github.com/vsinha/siteorders/pkg/infrastructure/events"
	"github.com/vsinha/siteorders/pkg/infrastructure/repositories/memory"
)

// Workspace is the state of one session: its own store and the services
// operating on it. Calls made through Do are applied one at a time.
type Workspace struct {
	ID        string
	Store     *memory.Store
	Events    *events.InMemoryEventStore
	Orders    *ordering.Builder
	Schedule  *scheduling.Scheduler
	Status    *status.Aggregator
	Integrity *services.IntegrityValidator

	mu       sync.Mutex
	lastUsed time.Time
}

// NewWorkspace wires the services of a workspace around store
func NewWorkspace(id string, store *memory.Store, logger zerolog.Logger) *Workspace {
	logger = logger.With().Str("session", id).Logger()
	eventStore := events.NewInMemoryEventStore(logger)
	_ = eventStore.Subscribe(events.AllEventTypes, events.NewActivityLogger(logger))

	return &Workspace{
		ID:        id,
		Store:     store,
		Events:    eventStore,
		Orders:    ordering.NewBuilder(store, eventStore, ordering.WithLogger(logger)),
		Schedule:  scheduling.NewScheduler(store, eventStore, scheduling.WithLogger(logger)),
		Status:    status.NewAggregator(store),
		Integrity: services.NewIntegrityValidator(),
	}
}

// Do runs fn with exclusive access to the workspace
func (w *Workspace) Do(fn func(*Workspace) error) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return fn(w)
}

// Validate checks the workspace's references
func (w *Workspace) Validate() *services.IntegrityResult {
	return w.Integrity.Validate(
		w.Store.Projects.GetAllProjects(),
		w.Store.Segments.GetAllSegments(),
		w.Store.Materials.GetAllMaterials(),
		w.Store.SegmentMaterials.GetAllSegmentMaterials(),
	)
}
