package nats

import (
	"testing"

	"musichub-be/pkg/events"

	"github.com/stretchr/testify/assert"
)

func TestSubject(t *testing.T) {
	assert.Equal(t, "catalog.note_viewed", Subject(events.NoteViewed))
	assert.Equal(t, "catalog.note_unliked", Subject(events.NoteUnliked))
}
