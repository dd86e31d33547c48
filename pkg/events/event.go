// Package events defines the contract for ingestion lifecycle events and the
// concrete events the coordinator emits while driving an upload operation.
package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g. "INGEST_PROGRESS").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

const (
	TypeIngestProgress  = "INGEST_PROGRESS"
	TypeIngestCompleted = "INGEST_COMPLETED"
	TypeIngestFailed    = "INGEST_FAILED"
)

// NewIngestProgress reports fractional progress (0..1) for one in-flight
// ingestion, identified by session and display name.
func NewIngestProgress(sessionID, store, displayName string, progress float64) Event {
	return BaseEvent{
		Type: TypeIngestProgress,
		Data: map[string]interface{}{
			"session_id":   sessionID,
			"store":        store,
			"display_name": displayName,
			"progress":     progress,
		},
		OccurredAt: time.Now(),
	}
}

// NewIngestCompleted marks an ingestion whose operation finished without a
// remote error. The document itself may still be pending on the service side.
func NewIngestCompleted(sessionID, store, displayName, documentName string) Event {
	return BaseEvent{
		Type: TypeIngestCompleted,
		Data: map[string]interface{}{
			"session_id":    sessionID,
			"store":         store,
			"display_name":  displayName,
			"document_name": documentName,
		},
		OccurredAt: time.Now(),
	}
}

// NewIngestFailed marks a terminally failed or timed-out ingestion.
func NewIngestFailed(sessionID, store, displayName, reason string) Event {
	return BaseEvent{
		Type: TypeIngestFailed,
		Data: map[string]interface{}{
			"session_id":   sessionID,
			"store":        store,
			"display_name": displayName,
			"reason":       reason,
		},
		OccurredAt: time.Now(),
	}
}
