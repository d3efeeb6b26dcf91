// Package interests collects free-text interests and composes the
// recommendation.
package interests

import (
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/careerquest/internal/catalog"
	"github.com/abhisek/careerquest/internal/locale"
	"github.com/abhisek/careerquest/internal/recommend"
	"github.com/abhisek/careerquest/internal/router"
	"github.com/abhisek/careerquest/internal/scoring"
	"github.com/abhisek/careerquest/internal/screen"
	"github.com/abhisek/careerquest/internal/screens/result"
	"github.com/abhisek/careerquest/internal/ui/components"
	"github.com/abhisek/careerquest/internal/ui/layout"
	"github.com/abhisek/careerquest/internal/ui/theme"
)

// MaxLength caps the interests text.
const MaxLength = 300

type composedMsg struct {
	Recommendation *recommend.Recommendation
	Err            error
}

// InterestsScreen asks for interests and hands the scores and text to the
// recommendation composer.
type InterestsScreen struct {
	svc     *screen.Services
	profile catalog.Profile
	scores  scoring.Vector
	input   components.TextInput
	busy    bool
	errMsg  string
}

var _ screen.Screen = (*InterestsScreen)(nil)
var _ screen.KeyHintProvider = (*InterestsScreen)(nil)

// New creates an InterestsScreen for a profile and its category scores.
func New(svc *screen.Services, profile catalog.Profile, scores scoring.Vector) *InterestsScreen {
	return &InterestsScreen{
		svc:     svc,
		profile: profile,
		scores:  scores,
		input:   components.NewTextInput(locale.T(svc.Locale, locale.KeyInterestsHint), MaxLength),
	}
}

func (s *InterestsScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *InterestsScreen) Title() string {
	return s.svc.T(locale.KeyInterests)
}

func (s *InterestsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: s.svc.T(locale.KeyRecommendation)},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *InterestsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case composedMsg:
		s.busy = false
		var invalid *recommend.NoValidInterestsError
		switch {
		case errors.As(msg.Err, &invalid):
			s.errMsg = invalid.Message
			return s, nil
		case msg.Err != nil:
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		next := result.New(s.svc, s.profile, msg.Recommendation)
		return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }

	case tea.KeyMsg:
		if s.busy {
			return s, nil
		}
		if msg.String() == "enter" {
			return s, s.submit()
		}
		s.errMsg = ""
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *InterestsScreen) submit() tea.Cmd {
	text := strings.TrimSpace(s.input.Value())
	if text == "" {
		s.errMsg = s.svc.T(locale.KeyCompleteFields)
		return nil
	}
	s.busy = true
	s.errMsg = ""

	svc := s.svc
	req := recommend.Request{Profile: s.profile, Scores: s.scores, Interests: text, Locale: svc.Locale}
	return func() tea.Msg {
		ctx, cancel := svc.Context()
		defer cancel()
		rec, err := svc.Composer.Compose(ctx, req)
		return composedMsg{Recommendation: rec, Err: err}
	}
}

func (s *InterestsScreen) View(width, height int) string {
	cw := min(width-4, 70)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(s.svc.T(locale.KeyInterests)))
	b.WriteString("\n\n")
	b.WriteString(s.input.View())
	b.WriteString("\n\n")

	switch {
	case s.busy:
		b.WriteString(theme.Hint.Render(s.svc.T(locale.KeyAdvisorThinking)))
	case s.errMsg != "":
		b.WriteString(theme.Failure.Render(s.errMsg))
	default:
		b.WriteString(theme.Hint.Render(s.scores.String()))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		theme.Card.Width(cw).Render(b.String()))
}
