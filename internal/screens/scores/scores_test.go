package scores

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/careerquest/internal/catalog"
	"github.com/abhisek/careerquest/internal/locale"
	"github.com/abhisek/careerquest/internal/router"
	"github.com/abhisek/careerquest/internal/screen"
	"github.com/abhisek/careerquest/internal/screens/screentest"
)

var (
	left  = tea.KeyPressMsg{Code: tea.KeyLeft}
	right = tea.KeyPressMsg{Code: tea.KeyRight}
)

func newScreen() *ScoresScreen {
	p := catalog.Profile{Stage: catalog.StageHigherSecondary, Stream: catalog.StreamPCB, Exam: catalog.ExamNone}
	return New(&screen.Services{Locale: locale.English}, p)
}

func TestScores_OneSliderPerValidCategory(t *testing.T) {
	s := newScreen()
	want := catalog.ValidCategories(s.profile)
	require.NotEmpty(t, want)

	got := s.Scores()
	assert.Len(t, got, len(want))
	for _, c := range want {
		assert.Equal(t, float64(DefaultScore), got[c])
	}
}

func TestScores_ArrowsMoveAndClamp(t *testing.T) {
	s := newScreen()
	first, second := s.categories[0], s.categories[1]

	screentest.Feed(s, right, right)
	screentest.Feed(s, screentest.Down)
	for range 20 {
		s.Update(left)
	}

	got := s.Scores()
	assert.Equal(t, float64(DefaultScore+2*Step), got[first])
	assert.Equal(t, 0.0, got[second])

	for range 30 {
		s.Update(right)
	}
	assert.Equal(t, 100.0, s.Scores()[second])
}

func TestScores_EnterMovesToInterests(t *testing.T) {
	s := newScreen()
	_, cmd := s.Update(screentest.Enter)
	require.NotNil(t, cmd)

	msg, ok := cmd().(router.ReplaceScreenMsg)
	require.True(t, ok)
	assert.Equal(t, "Tell Us Your Interests", msg.Screen.Title())
}

func TestScores_View(t *testing.T) {
	view := newScreen().View(100, 30)
	assert.Contains(t, view, "Score from 0 to 100")
	assert.Contains(t, view, "50%")
}
