package events

import "time"

// Event types published by the catalog.
const (
	NoteViewed  = "NOTE_VIEWED"
	NoteLiked   = "NOTE_LIKED"
	NoteUnliked = "NOTE_UNLIKED"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "NOTE_VIEWED").
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

// NewNoteEvent builds an event about a user acting on a note.
func NewNoteEvent(eventType string, noteId, userId int64) BaseEvent {
	return BaseEvent{
		Type: eventType,
		Data: map[string]interface{}{
			"note_id": noteId,
			"user_id": userId,
		},
		OccurredAt: time.Now().UTC(),
	}
}
