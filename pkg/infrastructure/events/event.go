package events

import (
	"time"
)

// Event is one recorded change to a workspace. Version is the position of
// the event within its stream, starting at 1.
type Event interface {
	Type() string
	StreamID() string
	Data() interface{}
	Timestamp() time.Time
	Version() int
}

type EventHandler interface {
	Handle(event Event) error
	CanHandle(eventType string) bool
}

// EventStore appends events per stream and fans them out to subscribers
type EventStore interface {
	AppendEvent(streamID string, event Event) error
	ReadEvents(streamID string, fromVersion int) ([]Event, error)
	ReadAllEvents(fromPosition int) ([]Event, error)
	Subscribe(eventTypes []string, handler EventHandler) error
}

// Record is the stored form of an Event
type Record struct {
	EventType string      `json:"type"`
	Stream    string      `json:"stream"`
	Payload   interface{} `json:"data"`
	At        time.Time   `json:"at"`
	Position  int         `json:"version"`
}

func (r Record) Type() string         { return r.EventType }
func (r Record) StreamID() string     { return r.Stream }
func (r Record) Data() interface{}    { return r.Payload }
func (r Record) Timestamp() time.Time { return r.At }
func (r Record) Version() int         { return r.Position }

// NewEvent builds an unversioned event; the store assigns the version on append
func NewEvent(eventType, streamID string, data interface{}, at time.Time) Event {
	return Record{
		EventType: eventType,
		Stream:    streamID,
		Payload:   data,
		At:        at,
	}
}

// HandlerFunc adapts a function into an EventHandler that accepts every type it is subscribed to
type HandlerFunc func(event Event) error

func (f HandlerFunc) Handle(event Event) error {
	return f(event)
}

func (f HandlerFunc) CanHandle(string) bool {
	return true
}
