package home

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/careerquest/internal/catalog"
	"github.com/abhisek/careerquest/internal/locale"
	"github.com/abhisek/careerquest/internal/router"
	"github.com/abhisek/careerquest/internal/screen"
	"github.com/abhisek/careerquest/internal/screens/chat"
	"github.com/abhisek/careerquest/internal/screens/history"
	"github.com/abhisek/careerquest/internal/screens/placeholder"
	"github.com/abhisek/careerquest/internal/screens/quiz"
	"github.com/abhisek/careerquest/internal/screens/scores"
	"github.com/abhisek/careerquest/internal/screens/setup"
	"github.com/abhisek/careerquest/internal/screens/welcome"
	"github.com/abhisek/careerquest/internal/ui/components"
	"github.com/abhisek/careerquest/internal/ui/theme"
)

type toggleLocaleMsg struct{}

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	svc  *screen.Services
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(svc *screen.Services) *HomeScreen {
	h := &HomeScreen{svc: svc}
	h.menu = components.NewMenu(h.items())
	return h
}

func push(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
}

func (h *HomeScreen) items() []components.MenuItem {
	svc := h.svc
	other := locale.Hindi
	if svc.Locale == locale.Hindi {
		other = locale.English
	}

	return []components.MenuItem{
		{Label: svc.T(locale.KeyTest), Action: func() tea.Cmd {
			return push(setup.New(svc, func(p catalog.Profile) screen.Screen {
				return quiz.New(svc, p)
			}))
		}},
		{Label: svc.T(locale.KeyEnterScores), Action: func() tea.Cmd {
			return push(setup.New(svc, func(p catalog.Profile) screen.Screen {
				return scores.New(svc, p)
			}))
		}},
		{Label: svc.T(locale.KeyAdvisor), Action: func() tea.Cmd {
			if svc.Advisor == nil {
				return push(placeholder.New(svc.T(locale.KeyAdvisor), svc.T(locale.KeyAdvisorOff)))
			}
			return push(chat.New(svc))
		}},
		{Label: svc.T(locale.KeyHistory), Action: func() tea.Cmd {
			if svc.Events == nil {
				return push(placeholder.New(svc.T(locale.KeyHistory), svc.T(locale.KeyNoHistory)))
			}
			return push(history.New(svc))
		}},
		{Label: svc.T(locale.KeyLanguage) + ": " + other.DisplayName(), Action: func() tea.Cmd {
			return func() tea.Msg { return toggleLocaleMsg{} }
		}},
		{Label: svc.T(locale.KeyExit), Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(toggleLocaleMsg); ok {
		h.svc.ToggleLocale()
		selected := h.menu.Selected
		h.menu = components.NewMenu(h.items())
		h.menu.Selected = selected
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := min(max(width-6, 20), 60)

	content := lipgloss.JoinVertical(lipgloss.Center,
		welcome.RenderBanner(width, height-14),
		"",
		theme.Subtitle.Width(cw).Render(h.svc.T(locale.KeyTitle)),
		"",
		theme.Card.Width(cw).Render(h.menu.View()),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
