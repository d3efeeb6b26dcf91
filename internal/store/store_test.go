package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}
	for _, tt := range tests {
		var got string
		require.NoError(t, s.DB().QueryRow("PRAGMA "+tt.pragma).Scan(&got), tt.pragma)
		assert.Equal(t, tt.want, got, tt.pragma)
	}
}

func TestMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	for _, table := range []string{"session_events", "llm_request_events", "global_sequence"} {
		var name string
		err := s.DB().QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		require.NoError(t, err, table)
		assert.Equal(t, table, name)
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "again.db")
	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.EventRepo().AppendSessionEvent(context.Background(), SessionEventData{SessionID: "a", Action: "started"}))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	events, err := s.EventRepo().QuerySessionEvents(context.Background(), QueryOpts{})
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for want := int64(1); want <= 5; want++ {
		got, err := s.seq.Next(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestSessionEventsRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID:   "s1",
		Action:      "started",
		Profile:     "11th/12th|PCM||",
		BankVersion: "v1.0.0",
		Questions:   12,
	}))
	require.NoError(t, repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID:   "s1",
		Action:      "completed",
		Profile:     "11th/12th|PCM||",
		BankVersion: "v1.0.0",
		Questions:   12,
		Answered:    10,
		DurationMs:  90_000,
		Scores:      map[string]float64{"math": 75, "physics": 50},
	}))
	require.NoError(t, repo.AppendSessionEvent(ctx, SessionEventData{SessionID: "s2", Action: "started"}))

	all, err := repo.QuerySessionEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Less(t, all[0].Sequence, all[1].Sequence)
	assert.Equal(t, map[string]float64{}, all[0].Scores)
	assert.Equal(t, 75.0, all[1].Scores["math"])
	assert.Equal(t, int64(90_000), all[1].DurationMs)
	assert.WithinDuration(t, time.Now(), all[1].Timestamp, time.Minute)

	s1, err := repo.QuerySessionEvents(ctx, QueryOpts{SessionID: "s1"})
	require.NoError(t, err)
	assert.Len(t, s1, 2)

	newest, err := repo.QuerySessionEvents(ctx, QueryOpts{Newest: true, Limit: 1})
	require.NoError(t, err)
	require.Len(t, newest, 1)
	assert.Equal(t, "s2", newest[0].SessionID)

	after, err := repo.QuerySessionEvents(ctx, QueryOpts{After: all[0].Sequence})
	require.NoError(t, err)
	assert.Len(t, after, 2)
}

func TestLLMRequestsAndUsage(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "advisor", InputTokens: 10, OutputTokens: 20, LatencyMs: 100, Success: true, RequestBody: "[user]\nhi"},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "advisor", InputTokens: 5, OutputTokens: 0, LatencyMs: 300, ErrorMessage: "boom"},
		{Provider: "openai", Model: "text-embedding-3-small", Purpose: "embed", LatencyMs: 50, Success: true},
	}
	for _, e := range events {
		require.NoError(t, repo.AppendLLMRequest(ctx, e))
	}

	stored, err := repo.QueryLLMRequests(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, stored, 3)
	assert.True(t, stored[0].Success)
	assert.False(t, stored[1].Success)
	assert.Equal(t, "boom", stored[1].ErrorMessage)
	assert.Equal(t, "[user]\nhi", stored[0].RequestBody)

	usage, err := repo.LLMUsage(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, usage, 2)
	assert.Equal(t, LLMUsage{
		Provider:     "openai",
		Model:        "gpt-4o-mini",
		Purpose:      "advisor",
		Requests:     2,
		Failures:     1,
		InputTokens:  15,
		OutputTokens: 20,
		AvgLatencyMs: 200,
	}, usage[0])
	assert.Equal(t, "embed", usage[1].Purpose)
}

func TestInMemoryDSN(t *testing.T) {
	s, err := Open(":memory:")
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.EventRepo().AppendLLMRequest(context.Background(), LLMRequestEventData{Provider: "mock", Model: "mock", Purpose: "probe", Success: true}))
	got, err := s.EventRepo().QueryLLMRequests(context.Background(), QueryOpts{})
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestParseDriver(t *testing.T) {
	tests := []struct {
		in      string
		want    Driver
		wantErr bool
	}{
		{"", DriverSQLite, false},
		{"SQLite", DriverSQLite, false},
		{"pgx", DriverPostgres, false},
		{"postgresql", DriverPostgres, false},
		{"mysql", "", true},
	}
	for _, tt := range tests {
		got, err := ParseDriver(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestDefaultDBPath(t *testing.T) {
	dir := t.TempDir()

	t.Setenv("CAREERQUEST_DB", filepath.Join(dir, "x", "custom.db"))
	p, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "x", "custom.db"), p)
	assert.DirExists(t, filepath.Join(dir, "x"))

	t.Setenv("CAREERQUEST_DB", "")
	t.Setenv("XDG_DATA_HOME", dir)
	p, err = DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "careerquest", "careerquest.db"), p)
}
