package collab

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

const unseenCursor = -1

// Directory is the append-only message log of one collaboration session,
// with an independent delivery cursor per user.
// A cursor holds the sequence of the last message delivered to its user.
//
// Directory is safe for concurrent use. Every operation, including the
// cursor reads, runs under the same mutex since unseen users get their
// cursor lazily.
type Directory struct {
	mu       sync.Mutex
	messages []Message
	cursors  map[string]int
	now      func() time.Time
}

func NewDirectory() *Directory {
	return &Directory{
		cursors: make(map[string]int),
		now:     time.Now,
	}
}

// AddMessage appends a message and always succeeds.
func (d *Directory) AddMessage(author, text string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.messages = append(d.messages, Message{
		ID:        uuid.New(),
		Sequence:  len(d.messages),
		Author:    author,
		Text:      text,
		CreatedAt: d.now().UTC(),
	})
	return true
}

// GetMessage returns false when sequence is out of range.
func (d *Directory) GetMessage(sequence int) (Message, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if sequence < 0 || sequence >= len(d.messages) {
		return Message{}, false
	}
	return d.messages[sequence], true
}

// IsUpToDate reports whether every message has been delivered to user.
// An empty log is up to date for everyone.
func (d *Directory) IsUpToDate(user string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.cursor(user) == len(d.messages)-1
}

// GetMessages returns the messages from sequence onwards without moving any cursor.
func (d *Directory) GetMessages(from int) []Message {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.since(from)
}

// GetRemainingMessages returns what user has not seen yet and marks it delivered.
func (d *Directory) GetRemainingMessages(user string) []Message {
	d.mu.Lock()
	defer d.mu.Unlock()

	remaining := d.since(d.cursor(user) + 1)
	d.cursors[user] = len(d.messages) - 1
	return remaining
}

func (d *Directory) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.messages)
}

// cursor must be called with mu held.
func (d *Directory) cursor(user string) int {
	c, ok := d.cursors[user]
	if !ok {
		c = unseenCursor
		d.cursors[user] = c
	}
	return c
}

// since must be called with mu held.
func (d *Directory) since(from int) []Message {
	if from < 0 {
		from = 0
	}
	if from >= len(d.messages) {
		return []Message{}
	}
	out := make([]Message, len(d.messages)-from)
	copy(out, d.messages[from:])
	return out
}
