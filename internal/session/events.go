package session

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/careerquest/internal/logger"
	qb "github.com/abhisek/careerquest/internal/questionbank"
	"github.com/abhisek/careerquest/internal/store"
)

// recordTimeout bounds a single event write.
const recordTimeout = 2 * time.Second

// EventRecorder persists session lifecycle events to an event repo. Write
// failures are logged and never surface to the quiz.
type EventRecorder struct {
	repo store.EventRepo
	log  *zap.Logger
}

// NewEventRecorder returns a Recorder backed by repo. log may be nil.
func NewEventRecorder(repo store.EventRepo, log *zap.Logger) *EventRecorder {
	return &EventRecorder{repo: repo, log: logger.Named(log, "session")}
}

// RecordSession implements Recorder.
func (r *EventRecorder) RecordSession(action Action, s *Session) {
	data := EventData(action, s)

	ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
	defer cancel()
	if err := r.repo.AppendSessionEvent(ctx, data); err != nil {
		r.log.Warn("failed to record session event",
			zap.String(logger.FieldSessionID, s.ID),
			zap.String("action", string(action)),
			zap.Error(err))
	}
}

// EventData converts a session into its stored event form. Scores are only
// present once the session has completed.
func EventData(action Action, s *Session) store.SessionEventData {
	data := store.SessionEventData{
		SessionID:   s.ID,
		Action:      string(action),
		Profile:     s.Profile.Key(),
		BankVersion: qb.Version,
		Questions:   s.InstanceCount(),
		Answered:    s.AnsweredCount(),
	}
	if !s.CompletedAt.IsZero() {
		data.DurationMs = s.CompletedAt.Sub(s.StartedAt).Milliseconds()
		data.Scores = make(map[string]float64, len(s.Scores))
		for c, v := range s.Scores {
			data.Scores[string(c)] = v
		}
	}
	return data
}
