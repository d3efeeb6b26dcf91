package home

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/careerquest/internal/locale"
	"github.com/abhisek/careerquest/internal/router"
	"github.com/abhisek/careerquest/internal/screen"
	"github.com/abhisek/careerquest/internal/screens/chat"
	"github.com/abhisek/careerquest/internal/screens/placeholder"
	"github.com/abhisek/careerquest/internal/screens/screentest"
	"github.com/abhisek/careerquest/internal/screens/setup"
)

// choose moves the cursor to item n and returns the screen it pushes.
func choose(t *testing.T, h *HomeScreen, n int) screen.Screen {
	t.Helper()
	h.menu.Selected = 0
	for range n {
		h.Update(screentest.Down)
	}
	_, cmd := h.Update(screentest.Enter)
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	return msg.Screen
}

func TestHome_MenuLabelsFollowLocale(t *testing.T) {
	svc, _ := screentest.Services(t)
	h := New(svc)
	assert.Equal(t, "Take a Quiz", h.menu.Items[0].Label)
	assert.Equal(t, "Language: हिंदी", h.menu.Items[4].Label)

	h.menu.Selected = 4
	_, cmd := h.Update(screentest.Enter)
	require.NotNil(t, cmd)
	h.Update(cmd())

	assert.Equal(t, locale.Hindi, svc.Locale)
	assert.Equal(t, locale.T(locale.Hindi, locale.KeyTest), h.menu.Items[0].Label)
	assert.Equal(t, "भाषा: English", h.menu.Items[4].Label)
	assert.Equal(t, 4, h.menu.Selected, "cursor stays on the toggle")
}

func TestHome_QuizAndScoresStartWithSetup(t *testing.T) {
	svc, _ := screentest.Services(t)
	h := New(svc)
	assert.IsType(t, &setup.SetupScreen{}, choose(t, h, 0))
	assert.IsType(t, &setup.SetupScreen{}, choose(t, h, 1))
}

func TestHome_AdvisorNeedsProvider(t *testing.T) {
	svc, _ := screentest.Services(t)
	assert.IsType(t, &chat.ChatScreen{}, choose(t, New(svc), 2))

	svc.Advisor = nil
	assert.IsType(t, &placeholder.PlaceholderScreen{}, choose(t, New(svc), 2))
}

func TestHome_HistoryNeedsEvents(t *testing.T) {
	svc, _ := screentest.Services(t)
	assert.IsType(t, &placeholder.PlaceholderScreen{}, choose(t, New(svc), 3))
}

func TestHome_Exit(t *testing.T) {
	svc, _ := screentest.Services(t)
	h := New(svc)
	h.menu.Selected = 5
	_, cmd := h.Update(screentest.Enter)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
