package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/careerquest/internal/catalog"
	"github.com/abhisek/careerquest/internal/locale"
	"github.com/abhisek/careerquest/internal/router"
	"github.com/abhisek/careerquest/internal/scoring"
	"github.com/abhisek/careerquest/internal/screen"
	"github.com/abhisek/careerquest/internal/screens/interests"
	"github.com/abhisek/careerquest/internal/session"
	"github.com/abhisek/careerquest/internal/ui/components"
	"github.com/abhisek/careerquest/internal/ui/layout"
	"github.com/abhisek/careerquest/internal/ui/theme"
)

// SummaryScreen displays the per-category scores of a finished quiz.
type SummaryScreen struct {
	svc     *screen.Services
	profile catalog.Profile
	summary *session.Summary
	scores  scoring.Vector
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(svc *screen.Services, profile catalog.Profile, summary *session.Summary, scores scoring.Vector) *SummaryScreen {
	return &SummaryScreen{svc: svc, profile: profile, summary: summary, scores: scores}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return s.svc.T(locale.KeyAptitudeTest)
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: s.svc.T(locale.KeyContinue)},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		next := interests.New(s.svc, s.profile, s.scores)
		return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(s.svc.T(locale.KeyQuizCompleted)))
	b.WriteString("\n\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s   Duration: %d:%02d", s.profile.String(), mins, secs)))
	b.WriteString("\n\n")

	b.WriteString(layout.RenderDivider("", width))
	b.WriteString("\n\n")

	labelWidth := 0
	for _, r := range sum.Results {
		labelWidth = max(labelWidth, lipgloss.Width(r.Category.DisplayName()))
	}
	barWidth := min(width-8, 60)

	for _, r := range sum.Results {
		bar := components.NewProgressBar(r.Category.DisplayName(), r.Score/100, true, barWidth)
		bar.LabelWidth = labelWidth
		line := bar.View()
		if r.Questions == 0 {
			line = lipgloss.NewStyle().Foreground(theme.TextDim).Render(
				fmt.Sprintf("%-*s  n/a", labelWidth, r.Category.DisplayName()))
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}

	return b.String()
}
