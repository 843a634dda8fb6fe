package events

import (
	"github.com/rs/zerolog"
)

// ActivityLogger writes every event it receives to a logger at debug level
type ActivityLogger struct {
	logger zerolog.Logger
}

// NewActivityLogger creates an activity logger
func NewActivityLogger(logger zerolog.Logger) *ActivityLogger {
	return &ActivityLogger{logger: logger}
}

// Verify interface compliance
var _ EventHandler = (*ActivityLogger)(nil)

func (l *ActivityLogger) Handle(event Event) error {
	l.logger.Debug().
		Str("event", event.Type()).
		Str("stream", event.StreamID()).
		Int("version", event.Version()).
		Time("at", event.Timestamp()).
		Msg("Activity recorded")
	return nil
}

func (l *ActivityLogger) CanHandle(eventType string) bool {
	for _, known := range AllEventTypes {
		if known == eventType {
			return true
		}
	}
	return false
}
