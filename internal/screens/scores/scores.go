// Package scores lets the learner rate each category directly instead of
// taking the quiz.
package scores

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/careerquest/internal/catalog"
	"github.com/abhisek/careerquest/internal/locale"
	qb "github.com/abhisek/careerquest/internal/questionbank"
	"github.com/abhisek/careerquest/internal/router"
	"github.com/abhisek/careerquest/internal/scoring"
	"github.com/abhisek/careerquest/internal/screen"
	"github.com/abhisek/careerquest/internal/screens/interests"
	"github.com/abhisek/careerquest/internal/ui/components"
	"github.com/abhisek/careerquest/internal/ui/layout"
	"github.com/abhisek/careerquest/internal/ui/theme"
)

const (
	// DefaultScore is the starting slider position.
	DefaultScore = 50
	// Step is how far one arrow press moves a slider.
	Step = 5
)

// ScoresScreen shows one slider per category of the profile.
type ScoresScreen struct {
	svc        *screen.Services
	profile    catalog.Profile
	categories []qb.Category
	values     []int
	cursor     int
}

var _ screen.Screen = (*ScoresScreen)(nil)
var _ screen.KeyHintProvider = (*ScoresScreen)(nil)

// New creates a ScoresScreen for the categories valid for profile.
func New(svc *screen.Services, profile catalog.Profile) *ScoresScreen {
	cats := catalog.ValidCategories(profile)
	values := make([]int, len(cats))
	for i := range values {
		values[i] = DefaultScore
	}
	return &ScoresScreen{svc: svc, profile: profile, categories: cats, values: values}
}

func (s *ScoresScreen) Init() tea.Cmd {
	return nil
}

func (s *ScoresScreen) Title() string {
	return s.svc.T(locale.KeyEnterScores)
}

func (s *ScoresScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Category"},
		{Key: "←→", Description: fmt.Sprintf("±%d", Step)},
		{Key: "Enter", Description: s.svc.T(locale.KeyContinue)},
		{Key: "Esc", Description: "Back"},
	}
}

// Scores returns the slider values as a score vector.
func (s *ScoresScreen) Scores() scoring.Vector {
	v := make(scoring.Vector, len(s.categories))
	for i, c := range s.categories {
		v[c] = float64(s.values[i])
	}
	return v
}

func (s *ScoresScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(s.categories) == 0 {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.categories)-1 {
			s.cursor++
		}
	case "left", "h":
		s.values[s.cursor] = max(s.values[s.cursor]-Step, 0)
	case "right", "l":
		s.values[s.cursor] = min(s.values[s.cursor]+Step, 100)
	case "home":
		s.values[s.cursor] = 0
	case "end":
		s.values[s.cursor] = 100
	case "enter":
		next := interests.New(s.svc, s.profile, s.Scores())
		return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
	}
	return s, nil
}

func (s *ScoresScreen) View(width, height int) string {
	cw := min(width-4, 70)

	labelWidth := 0
	for _, c := range s.categories {
		labelWidth = max(labelWidth, lipgloss.Width(c.DisplayName()))
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(s.profile.String()))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(s.svc.T(locale.KeyScoreRange)))
	b.WriteString("\n\n")

	for i, c := range s.categories {
		prefix := "  "
		if i == s.cursor {
			prefix = theme.Selected.Render("▸ ")
		}
		bar := components.NewProgressBar(c.DisplayName(), float64(s.values[i])/100, true, cw-8)
		bar.LabelWidth = labelWidth
		b.WriteString(prefix + bar.View() + "\n")
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		theme.Card.Width(cw).Render(b.String()))
}
