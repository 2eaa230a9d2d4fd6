//go:generate go run go.uber.org/mock/mockgen -source=transcript.go -destination=../mocks/mock_transcript_repository.go -package=mocks
package repositories

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

const transcriptPrefix = "transcript:"

type ITranscriptRepository interface {
	StoreTranscript(transcript DiskTranscript) error
	ListTranscripts(limit *int) ([]DiskTranscript, error)
}

type TranscriptRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewTranscriptRepository(db *badger.DB, log *slog.Logger) TranscriptRepository {
	return TranscriptRepository{db: db, log: log}
}

// DiskTranscript is the archived log of one finished collaboration.
type DiskTranscript struct {
	SessionID uuid.UUID
	StartedAt time.Time
	EndedAt   time.Time
	Messages  []DiskMessage
}

type DiskMessage struct {
	ID       uuid.UUID
	Sequence int
	Author   string
	Text     string
	At       time.Time
}

type transcriptRecord struct {
	SessionID string          `cbor:"1,keyasint"`
	StartedAt int64           `cbor:"2,keyasint"`
	EndedAt   int64           `cbor:"3,keyasint"`
	Messages  []messageRecord `cbor:"4,keyasint"`
}

type messageRecord struct {
	ID       string `cbor:"1,keyasint"`
	Sequence int    `cbor:"2,keyasint"`
	Author   string `cbor:"3,keyasint"`
	Text     string `cbor:"4,keyasint"`
	At       int64  `cbor:"5,keyasint"`
}

// StoreTranscript persists a transcript in BadgerDB.
// The key is formatted as "transcript:{started_at_padded}:{session_id}" so a
// prefix scan returns transcripts in chronological order, the 19-digit zero
// padding keeping the lexicographical order equal to the numerical one.
func (r TranscriptRepository) StoreTranscript(transcript DiskTranscript) error {
	key := fmt.Sprintf("%s%019d:%s", transcriptPrefix, transcript.StartedAt.UnixNano(), transcript.SessionID)
	bytes, err := marshal(fromDiskTranscript(transcript))
	if err != nil {
		return fmt.Errorf("transcript encoding failed: %w", err)
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
}

// ListTranscripts returns the archived transcripts, newest first.
// A nil limit returns all of them.
func (r TranscriptRepository) ListTranscripts(limit *int) ([]DiskTranscript, error) {
	var records [][]byte
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte(transcriptPrefix)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		options.Prefix = prefix
		it := txn.NewIterator(options)
		defer it.Close()

		// Reverse iteration starts after the last possible key of the prefix
		for it.Seek(append(prefix, 0xFF)); it.ValidForPrefix(prefix); it.Next() {
			if limit != nil && len(records) == *limit {
				r.log.Debug(fmt.Sprintf("Maximum of %d transcripts reached", *limit))
				break
			}
			value, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			records = append(records, value)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	transcripts := make([]DiskTranscript, 0, len(records))
	for _, b := range records {
		var record transcriptRecord
		if err = unmarshal(b, &record); err != nil {
			return nil, fmt.Errorf("transcript decoding failed: %w", err)
		}
		transcript, err := toDiskTranscript(record)
		if err != nil {
			return nil, err
		}
		transcripts = append(transcripts, transcript)
	}
	return transcripts, nil
}

func fromDiskTranscript(transcript DiskTranscript) transcriptRecord {
	return transcriptRecord{
		SessionID: transcript.SessionID.String(),
		StartedAt: transcript.StartedAt.UnixNano(),
		EndedAt:   transcript.EndedAt.UnixNano(),
		Messages: lo.Map(transcript.Messages, func(m DiskMessage, _ int) messageRecord {
			return messageRecord{
				ID:       m.ID.String(),
				Sequence: m.Sequence,
				Author:   m.Author,
				Text:     m.Text,
				At:       m.At.UnixNano(),
			}
		}),
	}
}

func toDiskTranscript(record transcriptRecord) (DiskTranscript, error) {
	sessionID, err := uuid.Parse(record.SessionID)
	if err != nil {
		return DiskTranscript{}, err
	}
	messages := make([]DiskMessage, 0, len(record.Messages))
	for _, m := range record.Messages {
		id, err := uuid.Parse(m.ID)
		if err != nil {
			return DiskTranscript{}, err
		}
		messages = append(messages, DiskMessage{
			ID:       id,
			Sequence: m.Sequence,
			Author:   m.Author,
			Text:     m.Text,
			At:       time.Unix(0, m.At).UTC(),
		})
	}
	return DiskTranscript{
		SessionID: sessionID,
		StartedAt: time.Unix(0, record.StartedAt).UTC(),
		EndedAt:   time.Unix(0, record.EndedAt).UTC(),
		Messages:  messages,
	}, nil
}
