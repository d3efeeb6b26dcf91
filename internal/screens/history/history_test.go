package history

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/careerquest/internal/locale"
	"github.com/abhisek/careerquest/internal/screen"
	"github.com/abhisek/careerquest/internal/screens/screentest"
	"github.com/abhisek/careerquest/internal/store"
)

func newRepo(t *testing.T) store.EventRepo {
	t.Helper()
	db, err := store.Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db.EventRepo()
}

func load(t *testing.T, s *HistoryScreen) {
	t.Helper()
	cmd := s.Init()
	require.NotNil(t, cmd)
	s.Update(cmd())
	require.Empty(t, s.errMsg)
}

func TestHistory_ListsCompletedOnly(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID: "a", Action: "started", Profile: "9th/10th|PCM|None|",
	}))
	require.NoError(t, repo.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID: "a", Action: "completed", Profile: "9th/10th|PCM|None|",
		Questions: 4, Answered: 3, DurationMs: 125000,
		Scores: map[string]float64{"math": 100, "verbal": 50},
	}))
	require.NoError(t, repo.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID: "b", Action: "invalidated", Profile: "11th/12th|PCB|NEET|",
	}))

	s := New(&screen.Services{Events: repo, Locale: locale.English})
	load(t, s)

	require.Len(t, s.events, 1)
	view := s.View(120, 30)
	assert.Contains(t, view, "9th/10th / PCM")
	assert.Contains(t, view, "2:05")
	assert.Contains(t, view, "3/4 answered")
	assert.NotContains(t, view, "math")

	s.Update(screentest.Enter)
	view = s.View(120, 30)
	assert.Contains(t, view, "math")
	assert.Contains(t, view, "100.0")
}

func TestHistory_Empty(t *testing.T) {
	s := New(&screen.Services{Events: newRepo(t), Locale: locale.English})
	load(t, s)
	assert.Contains(t, s.View(100, 20), "No quizzes yet")
}

func TestHistory_Navigation(t *testing.T) {
	repo := newRepo(t)
	for _, id := range []string{"a", "b"} {
		require.NoError(t, repo.AppendSessionEvent(context.Background(), store.SessionEventData{
			SessionID: id, Action: "completed", Profile: "9th/10th|PCM|None|",
		}))
	}
	s := New(&screen.Services{Events: repo, Locale: locale.English})
	load(t, s)

	screentest.Feed(s, screentest.Down, screentest.Down, screentest.Down)
	assert.Equal(t, 1, s.selected)
	screentest.Feed(s, screentest.Up)
	assert.Equal(t, 0, s.selected)

	_, cmd := s.Update(screentest.Esc)
	require.NotNil(t, cmd)
}

func TestProfileLabel(t *testing.T) {
	assert.Equal(t, "Post-Graduation / Commerce / CAT / B.Com", profileLabel("Post-Graduation|Commerce|CAT|B.Com"))
	assert.Equal(t, "9th/10th / PCM", profileLabel("9th/10th|PCM|None|"))
}
