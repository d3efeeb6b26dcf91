package summary

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/careerquest/internal/catalog"
	"github.com/abhisek/careerquest/internal/locale"
	qb "github.com/abhisek/careerquest/internal/questionbank"
	"github.com/abhisek/careerquest/internal/router"
	"github.com/abhisek/careerquest/internal/scoring"
	"github.com/abhisek/careerquest/internal/screen"
	"github.com/abhisek/careerquest/internal/session"
)

func testScreen() *SummaryScreen {
	profile := catalog.Profile{Stage: catalog.StageSecondary, Stream: catalog.StreamPCM, Exam: catalog.ExamNone}
	sum := &session.Summary{
		SessionID: "s1",
		Duration:  3*time.Minute + 5*time.Second,
		Results: []session.CategoryResult{
			{Category: qb.CategoryMath, Questions: 2, Answered: 2, Score: 100},
			{Category: qb.CategoryPhysics, Questions: 2, Answered: 2, Score: 50},
		},
	}
	scores := scoring.Vector{qb.CategoryMath: 100, qb.CategoryPhysics: 50}
	return New(&screen.Services{Locale: locale.English}, profile, sum, scores)
}

func TestSummaryScreen_Display(t *testing.T) {
	view := testScreen().View(100, 24)
	assert.Contains(t, view, "Test Completed! Your Scores:")
	assert.Contains(t, view, "Duration: 3:05")
	assert.Contains(t, view, "Math")
	assert.Contains(t, view, "50%")
}

func TestSummaryScreen_EnterMovesToInterests(t *testing.T) {
	s := testScreen()
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg, ok := cmd().(router.ReplaceScreenMsg)
	require.True(t, ok)
	assert.Equal(t, "Tell Us Your Interests", msg.Screen.Title())
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	assert.Len(t, testScreen().KeyHints(), 2)
}
