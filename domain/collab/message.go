package collab

import (
	"time"

	"github.com/google/uuid"
)

// Message is an immutable entry of the collaboration log.
// Sequence is its 0-based position, assigned on append and never reused.
type Message struct {
	ID        uuid.UUID
	Sequence  int
	Author    string
	Text      string
	CreatedAt time.Time
}

// Transcript is the full log of one occupancy period, handed over when the
// engine that owned it stops.
type Transcript struct {
	SessionID uuid.UUID
	StartedAt time.Time
	EndedAt   time.Time
	Messages  []Message
}
