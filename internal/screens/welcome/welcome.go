package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/careerquest/internal/locale"
	"github.com/abhisek/careerquest/internal/router"
	"github.com/abhisek/careerquest/internal/screen"
	"github.com/abhisek/careerquest/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 500 * time.Millisecond
	phase2End    = 1500 * time.Millisecond
	totalDur     = 3000 * time.Millisecond
)

const compassArt = `  ╭───────────╮
  │     N     │
  │   ╲ │ ╱   │
  │ W ──◆── E │
  │   ╱ │ ╲   │
  │     S     │
  ╰───────────╯`

const compassHeight = 7

// sparkle frames cycle around the compass
var sparkleFrames = []string{"★", "✦"}

type tickMsg time.Time

// WelcomeScreen shows a splash animation before transitioning to the home screen.
type WelcomeScreen struct {
	svc          *screen.Services
	homeFactory  screen.Factory
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by homeFactory.
func New(svc *screen.Services, homeFactory screen.Factory) *WelcomeScreen {
	return &WelcomeScreen{
		svc:         svc,
		homeFactory: homeFactory,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		if w.transitioned {
			return w, nil
		}
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	next := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	showBanner := w.elapsed >= phase2End
	// banner, tagline and hint take bannerHeight+4 lines
	showCompass := !showBanner || height >= bannerHeight+compassHeight+5

	if showCompass {
		rendered := lipgloss.NewStyle().Foreground(theme.Primary).Render(compassArt)

		if w.elapsed >= phase1End {
			sparkle := sparkleFrames[w.tickCount%len(sparkleFrames)]
			s1 := lipgloss.NewStyle().Foreground(theme.Accent).Render(sparkle)
			s2 := lipgloss.NewStyle().Foreground(theme.Secondary).Render(sparkle)

			lines := strings.Split(rendered, "\n")
			for i, j := range []int{0, 3, 6} {
				if j >= len(lines) {
					break
				}
				left, right := s1, s2
				if i%2 == 1 {
					left, right = s2, s1
				}
				lines[j] = left + "  " + lines[j] + "  " + right
			}
			rendered = strings.Join(lines, "\n")
		}
		sections = append(sections, rendered)
	}

	if showBanner {
		sections = append(sections, RenderBanner(width, height-4), "")

		tagline := lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render(w.text(locale.KeyTagline))
		sections = append(sections, tagline, "")

		hint := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render(w.text(locale.KeyPressAnyKey))
		sections = append(sections, hint)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n"))
}

func (w *WelcomeScreen) text(key string) string {
	if w.svc == nil {
		return locale.T(locale.Default, key)
	}
	return w.svc.T(key)
}
