package history

import (
	"fmt"
	"image/color"
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/careerquest/internal/locale"
	"github.com/abhisek/careerquest/internal/router"
	"github.com/abhisek/careerquest/internal/screen"
	"github.com/abhisek/careerquest/internal/session"
	"github.com/abhisek/careerquest/internal/store"
	"github.com/abhisek/careerquest/internal/ui/layout"
	"github.com/abhisek/careerquest/internal/ui/theme"
)

// Limit caps how many completed quizzes are listed.
const Limit = 50

type historyLoadedMsg struct {
	Events []store.SessionEvent
	Err    error
}

// HistoryScreen displays past completed quizzes and their scores.
type HistoryScreen struct {
	svc      *screen.Services
	events   []store.SessionEvent
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen. svc.Events must be set.
func New(svc *screen.Services) *HistoryScreen {
	return &HistoryScreen{
		svc:      svc,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	svc := s.svc
	return func() tea.Msg {
		ctx, cancel := svc.Context()
		defer cancel()

		events, err := svc.Events.QuerySessionEvents(ctx, store.QueryOpts{Newest: true})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		completed := slices.DeleteFunc(events, func(e store.SessionEvent) bool {
			return e.Action != string(session.ActionCompleted)
		})
		if len(completed) > Limit {
			completed = completed[:Limit]
		}
		return historyLoadedMsg{Events: completed}
	}
}

func (s *HistoryScreen) Title() string {
	return s.svc.T(locale.KeyHistory)
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Scores"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.events = msg.Events
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.events)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  " + s.svc.T(locale.KeyLoading))
	}
	if len(s.events) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  " + s.svc.T(locale.KeyNoHistory))
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, ev := range s.events {
		dateStr := ev.Timestamp.Format("Jan 02, 2006 15:04")
		secs := ev.DurationMs / 1000
		durationStr := fmt.Sprintf("%d:%02d", secs/60, secs%60)

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %s  %s  %d/%d answered",
			prefix, dateStr, durationStr, profileLabel(ev.Profile), ev.Answered, ev.Questions)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			cats := make([]string, 0, len(ev.Scores))
			for c := range ev.Scores {
				cats = append(cats, c)
			}
			slices.Sort(cats)
			for _, c := range cats {
				scoreLine := fmt.Sprintf("    %-12s %5.1f", c, ev.Scores[c])
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					lipgloss.NewStyle().Foreground(scoreColor(ev.Scores[c])).Render(scoreLine)))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}

// profileLabel turns a stored profile key into a readable label.
func profileLabel(key string) string {
	var parts []string
	for _, p := range strings.Split(key, "|") {
		if p != "" && p != "None" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " / ")
}

func scoreColor(score float64) color.Color {
	switch {
	case score >= 80:
		return theme.Success
	case score >= 50:
		return theme.Secondary
	case score > 0:
		return theme.Accent
	default:
		return theme.TextDim
	}
}
