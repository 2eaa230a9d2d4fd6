package sink

import (
	"context"
	"log/slog"
	"rig-lab/domain/collab"
	"rig-lab/repositories"

	"github.com/samber/lo"
)

// TranscriptSink archives the message log of finished collaborations.
type TranscriptSink struct {
	repository repositories.ITranscriptRepository
	log        *slog.Logger
}

func NewTranscriptSink(repository repositories.ITranscriptRepository, log *slog.Logger) TranscriptSink {
	return TranscriptSink{repository: repository, log: log}
}

func (s TranscriptSink) Archive(_ context.Context, transcript collab.Transcript) error {
	if err := s.repository.StoreTranscript(toDiskTranscript(transcript)); err != nil {
		return err
	}
	s.log.Info("Transcript archived",
		"collaboration", transcript.SessionID.String(),
		"messages", len(transcript.Messages))
	return nil
}

func toDiskTranscript(transcript collab.Transcript) repositories.DiskTranscript {
	return repositories.DiskTranscript{
		SessionID: transcript.SessionID,
		StartedAt: transcript.StartedAt,
		EndedAt:   transcript.EndedAt,
		Messages: lo.Map(transcript.Messages, func(m collab.Message, _ int) repositories.DiskMessage {
			return repositories.DiskMessage{
				ID:       m.ID,
				Sequence: m.Sequence,
				Author:   m.Author,
				Text:     m.Text,
				At:       m.CreatedAt,
			}
		}),
	}
}
