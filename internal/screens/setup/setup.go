// Package setup walks the learner through choosing an academic profile.
package setup

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/careerquest/internal/catalog"
	"github.com/abhisek/careerquest/internal/locale"
	"github.com/abhisek/careerquest/internal/router"
	"github.com/abhisek/careerquest/internal/screen"
	"github.com/abhisek/careerquest/internal/ui/components"
	"github.com/abhisek/careerquest/internal/ui/layout"
	"github.com/abhisek/careerquest/internal/ui/theme"
)

type step int

const (
	stepStage step = iota
	stepStream
	stepExam
	stepDegree
)

// Next builds the screen shown once the profile is complete.
type Next func(catalog.Profile) screen.Screen

// SetupScreen asks for stage, stream, exam and degree, skipping the
// questions a stage does not use.
type SetupScreen struct {
	svc     *screen.Services
	next    Next
	step    step
	picker  components.OptionPicker
	profile catalog.Profile
	done    bool
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// New creates a SetupScreen that replaces itself with next(profile).
func New(svc *screen.Services, next Next) *SetupScreen {
	s := &SetupScreen{svc: svc, next: next}
	s.enter(stepStage)
	return s
}

func (s *SetupScreen) Init() tea.Cmd {
	return nil
}

func (s *SetupScreen) Title() string {
	return s.prompt()
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SetupScreen) prompt() string {
	switch s.step {
	case stepStream:
		return s.svc.T(locale.KeyStream)
	case stepExam:
		return s.svc.T(locale.KeyExamType)
	case stepDegree:
		return s.svc.T(locale.KeyDegreeType)
	default:
		return s.svc.T(locale.KeyStage)
	}
}

func (s *SetupScreen) options() []string {
	var out []string
	switch s.step {
	case stepStage:
		for _, st := range catalog.Stages() {
			out = append(out, string(st))
		}
	case stepStream:
		for _, st := range catalog.Streams() {
			out = append(out, string(st))
		}
	case stepExam:
		for _, e := range catalog.AllowedExams(s.profile.Stage) {
			out = append(out, string(e))
		}
	case stepDegree:
		for _, d := range catalog.Degrees() {
			out = append(out, string(d))
		}
	}
	return out
}

func (s *SetupScreen) enter(st step) {
	s.step = st
	s.picker = components.NewOptionPicker(s.prompt(), s.options(), false)
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.done {
		return s, nil
	}

	var cmd tea.Cmd
	s.picker, cmd = s.picker.Update(msg)
	if !s.picker.Submitted {
		return s, cmd
	}

	choice := s.picker.Selected()[0]
	switch s.step {
	case stepStage:
		s.profile.Stage = catalog.Stage(choice)
	case stepStream:
		s.profile.Stream = catalog.ParseStream(choice)
	case stepExam:
		s.profile.Exam = catalog.ParseExam(choice)
	case stepDegree:
		s.profile.Degree = catalog.ParseDegree(choice)
	}

	if st, ok := s.following(); ok {
		s.enter(st)
		return s, nil
	}

	s.done = true
	next := s.next(s.profile.Normalize())
	return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

// following returns the next question the current profile needs.
func (s *SetupScreen) following() (step, bool) {
	stage := s.profile.Stage
	for st := s.step + 1; st <= stepDegree; st++ {
		switch st {
		case stepStream:
			if stage.HasStream() {
				return st, true
			}
		case stepExam:
			if len(catalog.AllowedExams(stage)) > 0 {
				return st, true
			}
		case stepDegree:
			if stage == catalog.StagePostGraduation {
				return st, true
			}
		}
	}
	return 0, false
}

// Profile returns the choices made so far.
func (s *SetupScreen) Profile() catalog.Profile {
	return s.profile
}

func (s *SetupScreen) chosen() string {
	var parts []string
	for _, v := range []string{string(s.profile.Stage), string(s.profile.Stream), string(s.profile.Exam), string(s.profile.Degree)} {
		if v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " / ")
}

func (s *SetupScreen) View(width, height int) string {
	var b strings.Builder
	if chosen := s.chosen(); chosen != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(chosen))
		b.WriteString("\n\n")
	}
	b.WriteString(s.picker.View())

	card := theme.Card.Width(min(width-4, 60)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
