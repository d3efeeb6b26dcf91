package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

const sessionEventsTable = "session_events"

// eventRepo implements EventRepo with ent's SQL builder and the global
// sequence counter.
type eventRepo struct {
	db  dbtx
	b   *entsql.DialectBuilder
	seq *sequenceCounter
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	scores := data.Scores
	if scores == nil {
		scores = map[string]float64{}
	}
	scoresJSON, err := json.Marshal(scores)
	if err != nil {
		return fmt.Errorf("marshal scores: %w", err)
	}

	query, args := r.b.Insert(sessionEventsTable).
		Columns("sequence", "ts", "session_id", "action", "profile", "bank_version",
			"questions", "answered", "duration_ms", "scores").
		Values(seqNum, time.Now().UnixMilli(), data.SessionID, data.Action, data.Profile,
			data.BankVersion, data.Questions, data.Answered, data.DurationMs, string(scoresJSON)).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuerySessionEvents(ctx context.Context, opts QueryOpts) ([]SessionEvent, error) {
	sel := r.b.Select("sequence", "ts", "session_id", "action", "profile", "bank_version",
		"questions", "answered", "duration_ms", "scores").
		From(r.b.Table(sessionEventsTable))
	applyOpts(sel, opts)
	if opts.SessionID != "" {
		sel.Where(entsql.EQ("session_id", opts.SessionID))
	}

	query, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query session events: %w", err)
	}
	defer rows.Close()

	var out []SessionEvent
	for rows.Next() {
		var (
			e      SessionEvent
			ts     int64
			scores string
		)
		if err := rows.Scan(&e.Sequence, &ts, &e.SessionID, &e.Action, &e.Profile, &e.BankVersion,
			&e.Questions, &e.Answered, &e.DurationMs, &scores); err != nil {
			return nil, fmt.Errorf("scan session event: %w", err)
		}
		e.Timestamp = time.UnixMilli(ts)
		if err := json.Unmarshal([]byte(scores), &e.Scores); err != nil {
			return nil, fmt.Errorf("decode scores for session %s: %w", e.SessionID, err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// applyOpts adds the shared filters, ordering and limit.
func applyOpts(sel *entsql.Selector, opts QueryOpts) {
	if opts.After > 0 {
		sel.Where(entsql.GT("sequence", opts.After))
	}
	if opts.Before > 0 {
		sel.Where(entsql.LT("sequence", opts.Before))
	}
	if !opts.From.IsZero() {
		sel.Where(entsql.GTE("ts", opts.From.UnixMilli()))
	}
	if !opts.To.IsZero() {
		sel.Where(entsql.LTE("ts", opts.To.UnixMilli()))
	}
	if opts.Newest {
		sel.OrderBy(entsql.Desc("sequence"))
	} else {
		sel.OrderBy(entsql.Asc("sequence"))
	}
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}
}
