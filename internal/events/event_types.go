package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventItemCreated EventType = "item_created"
	EventItemDeleted EventType = "item_deleted"
	EventUserCreated EventType = "user_created"
	EventUserDeleted EventType = "user_deleted"
)

// Event represents a domain event emitted by handlers.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	ActorID   int32       `json:"actor_id"`
	SubjectID int32       `json:"subject_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload,omitempty"`
}

// New stamps an event with an id and the current time.
func New(eventType EventType, actorID, subjectID int32, payload interface{}) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		ActorID:   actorID,
		SubjectID: subjectID,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
}
