// Package chat is the career advisor conversation screen.
package chat

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/careerquest/internal/advisor"
	"github.com/abhisek/careerquest/internal/locale"
	"github.com/abhisek/careerquest/internal/screen"
	"github.com/abhisek/careerquest/internal/ui/components"
	"github.com/abhisek/careerquest/internal/ui/layout"
	"github.com/abhisek/careerquest/internal/ui/theme"
)

type answeredMsg struct {
	Answer string
	Err    error
}

type exchange struct {
	question string
	answer   string
	failed   bool
	pending  bool
}

// ChatScreen sends questions to the advisor and shows the transcript.
type ChatScreen struct {
	svc     *screen.Services
	conv    *advisor.Conversation
	input   components.TextInput
	history []exchange
	busy    bool
}

var _ screen.Screen = (*ChatScreen)(nil)
var _ screen.KeyHintProvider = (*ChatScreen)(nil)

// New creates a ChatScreen with a fresh conversation. svc.Advisor must be
// set.
func New(svc *screen.Services) *ChatScreen {
	return &ChatScreen{
		svc:   svc,
		conv:  svc.Advisor.Conversation(),
		input: components.NewTextInput(svc.T(locale.KeyAskHint), advisor.MaxQuestionLength),
	}
}

func (c *ChatScreen) Init() tea.Cmd {
	return c.input.Init()
}

func (c *ChatScreen) Title() string {
	return c.svc.T(locale.KeyAdvisor)
}

func (c *ChatScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Ask"},
		{Key: "Ctrl+L", Description: "New chat"},
		{Key: "Esc", Description: "Back"},
	}
}

func (c *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case answeredMsg:
		c.busy = false
		if n := len(c.history); n > 0 {
			c.history[n-1].answer = msg.Answer
			c.history[n-1].failed = msg.Err != nil
			c.history[n-1].pending = false
		}
		return c, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			return c, c.ask()
		case "ctrl+l":
			if !c.busy {
				c.conv.Reset()
				c.history = nil
			}
			return c, nil
		}
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

func (c *ChatScreen) ask() tea.Cmd {
	question := strings.TrimSpace(c.input.Value())
	if c.busy || question == "" {
		return nil
	}
	c.busy = true
	c.input.Reset()
	c.history = append(c.history, exchange{question: question, pending: true})

	svc, conv := c.svc, c.conv
	l := svc.Locale
	return func() tea.Msg {
		ctx, cancel := svc.Context()
		defer cancel()
		answer, err := conv.Ask(ctx, question, l)
		return answeredMsg{Answer: answer, Err: err}
	}
}

func (c *ChatScreen) View(width, height int) string {
	cw := min(width-4, 90)
	c.input.SetWidth(cw - 4)

	you := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	body := lipgloss.NewStyle().Foreground(theme.Text).Width(cw)

	var lines []string
	for _, ex := range c.history {
		lines = append(lines, you.Render("› "+ex.question))
		switch {
		case ex.pending:
			lines = append(lines, theme.Hint.Render(c.svc.T(locale.KeyAdvisorThinking)))
		case ex.failed:
			lines = append(lines, theme.Failure.Width(cw).Render(ex.answer))
		default:
			lines = append(lines, body.Render(ex.answer))
		}
		lines = append(lines, "")
	}

	// keep the newest exchanges visible above the input
	transcript := strings.Split(strings.Join(lines, "\n"), "\n")
	if room := height - 4; room > 0 && len(transcript) > room {
		transcript = transcript[len(transcript)-room:]
	}

	input := theme.Card.Padding(0, 1).Width(cw).Render(c.input.View())
	content := lipgloss.JoinVertical(lipgloss.Left, strings.Join(transcript, "\n"), input)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Bottom, content)
}
