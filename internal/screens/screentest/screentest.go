// Package screentest builds the services and key messages screen tests
// share.
package screentest

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/careerquest/internal/advisor"
	"github.com/abhisek/careerquest/internal/aptitude"
	"github.com/abhisek/careerquest/internal/interest"
	"github.com/abhisek/careerquest/internal/llm"
	"github.com/abhisek/careerquest/internal/locale"
	"github.com/abhisek/careerquest/internal/oracle"
	"github.com/abhisek/careerquest/internal/recommend"
	"github.com/abhisek/careerquest/internal/screen"
	"github.com/abhisek/careerquest/internal/session"
	"github.com/abhisek/careerquest/internal/skillgap"
)

// Services returns offline services backed by the bundled model, the hash
// embedder and a mock LLM. Quizzes serve two questions per category.
func Services(t *testing.T) (*screen.Services, *llm.MockProvider) {
	t.Helper()

	model, err := oracle.DefaultModel()
	require.NoError(t, err)
	gaps, err := skillgap.FromModel(model)
	require.NoError(t, err)

	mock := llm.NewMockProvider()
	return &screen.Services{
		Sessions: session.NewStore(nil, session.WithSampler(session.NewSeededSampler(11)), session.WithQuestionCount(2)),
		Composer: recommend.NewComposer(aptitude.New(model, nil), interest.NewMatcher(oracle.HashEmbedder{}, nil), gaps, nil),
		Advisor:  advisor.New(mock, advisor.DefaultConfig(), nil),
		Owner:    "tester",
		Locale:   locale.English,
	}, mock
}

// Key returns a printable key press.
func Key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

// Keys returns one key press per rune of text.
func Keys(text string) []tea.Msg {
	var out []tea.Msg
	for _, r := range text {
		out = append(out, Key(r))
	}
	return out
}

var (
	Enter = tea.KeyPressMsg{Code: tea.KeyEnter}
	Down  = tea.KeyPressMsg{Code: tea.KeyDown}
	Up    = tea.KeyPressMsg{Code: tea.KeyUp}
	Space = tea.KeyPressMsg{Code: ' ', Text: " "}
	Esc   = tea.KeyPressMsg{Code: tea.KeyEscape}
)

// Feed sends msgs to s in order and returns the final screen and the last
// non-nil command.
func Feed(s screen.Screen, msgs ...tea.Msg) (screen.Screen, tea.Cmd) {
	var last tea.Cmd
	for _, m := range msgs {
		var cmd tea.Cmd
		s, cmd = s.Update(m)
		if cmd != nil {
			last = cmd
		}
	}
	return s, last
}
