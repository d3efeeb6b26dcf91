package quiz

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/careerquest/internal/catalog"
	"github.com/abhisek/careerquest/internal/locale"
	qb "github.com/abhisek/careerquest/internal/questionbank"
	"github.com/abhisek/careerquest/internal/router"
	"github.com/abhisek/careerquest/internal/screen"
	"github.com/abhisek/careerquest/internal/screens/summary"
	sess "github.com/abhisek/careerquest/internal/session"
	"github.com/abhisek/careerquest/internal/ui/components"
	"github.com/abhisek/careerquest/internal/ui/layout"
)

// QuizScreen runs an aptitude quiz one question at a time, category by
// category.
type QuizScreen struct {
	svc     *screen.Services
	profile catalog.Profile

	session *sess.Session
	resumed bool
	cursor  int // index into the current category's instances
	picker  components.OptionPicker
	done    bool
	errMsg  string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen for profile.
func New(svc *screen.Services, profile catalog.Profile) *QuizScreen {
	return &QuizScreen{svc: svc, profile: profile}
}

// Init opens the learner's session, resuming an unfinished one for the same
// profile.
func (q *QuizScreen) Init() tea.Cmd {
	svc, profile := q.svc, q.profile
	return func() tea.Msg {
		s, created, err := svc.Sessions.Open(svc.Owner, profile)
		if err == nil && s.Completed() {
			svc.Sessions.Invalidate(svc.Owner)
			s, created, err = svc.Sessions.Open(svc.Owner, profile)
		}
		return sessionOpenedMsg{Session: s, Resumed: !created, Err: err}
	}
}

func (q *QuizScreen) Title() string {
	return q.svc.T(locale.KeyAptitudeTest)
}

// Status reports answered questions out of the session total.
func (q *QuizScreen) Status() string {
	if q.session == nil {
		return ""
	}
	return fmt.Sprintf("%d/%d", q.session.AnsweredCount(), q.session.InstanceCount())
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Answer"},
	}
	if q.picker.Multiple {
		hints = append(hints, layout.KeyHint{Key: "Space", Description: "Toggle"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Quit quiz"})
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionOpenedMsg:
		if msg.Err != nil {
			q.errMsg = msg.Err.Error()
			return q, nil
		}
		q.session = msg.Session
		q.resumed = msg.Resumed
		return q, q.settle()

	case tea.KeyMsg:
		if q.session == nil || q.done {
			return q, nil
		}
		var cmd tea.Cmd
		q.picker, cmd = q.picker.Update(msg)
		if !q.picker.Submitted {
			return q, cmd
		}
		return q, q.submit()
	}
	return q, nil
}

// submit records the picker's answer and moves to the next question.
func (q *QuizScreen) submit() tea.Cmd {
	_, instances, ok := q.session.Current()
	if !ok || q.cursor >= len(instances) {
		return q.settle()
	}
	id := instances[q.cursor].ID
	answers := q.picker.Selected()
	if _, err := q.svc.Sessions.Update(q.session.ID, func(s *sess.Session) error {
		return s.Record(id, answers)
	}); err != nil {
		q.errMsg = err.Error()
		return nil
	}
	q.cursor++
	return q.settle()
}

// settle positions the cursor on the first unanswered question, advancing
// past finished categories. When the quiz completes it hands over to the
// summary.
func (q *QuizScreen) settle() tea.Cmd {
	for {
		c, instances, ok := q.session.Current()
		if !ok {
			return q.finish()
		}
		answered := q.session.Answers[c]
		for q.cursor < len(instances) {
			if _, ok := answered[instances[q.cursor].ID]; !ok {
				break
			}
			q.cursor++
		}
		if q.cursor < len(instances) {
			q.showQuestion(instances[q.cursor])
			return nil
		}

		if _, err := q.svc.Sessions.Update(q.session.ID, func(s *sess.Session) error {
			_, err := s.Advance()
			return err
		}); err != nil {
			q.errMsg = err.Error()
			return nil
		}
		q.cursor = 0
	}
}

func (q *QuizScreen) showQuestion(in sess.Instance) {
	prompt := in.Base.TextFor(q.svc.Locale)
	q.picker = components.NewOptionPicker(prompt, in.Base.Options, in.Base.Kind == qb.Multiple)
}

func (q *QuizScreen) finish() tea.Cmd {
	if q.done {
		return nil
	}
	q.done = true
	next := summary.New(q.svc, q.session.Profile, sess.BuildSummary(q.session), q.session.Scores)
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

// Session returns the session being answered, nil until it is opened.
func (q *QuizScreen) Session() *sess.Session {
	return q.session
}
