package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/careerquest/internal/ui/theme"
)

// OptionPicker lets the user choose one option, or several when Multiple is
// set. Space toggles an option in multiple mode; Enter submits.
type OptionPicker struct {
	Prompt    string
	Options   []string
	Multiple  bool
	Cursor    int
	Submitted bool
	checked   []bool
}

// NewOptionPicker creates a picker over options.
func NewOptionPicker(prompt string, options []string, multiple bool) OptionPicker {
	return OptionPicker{
		Prompt:   prompt,
		Options:  options,
		Multiple: multiple,
		checked:  make([]bool, len(options)),
	}
}

// Init returns nil.
func (p OptionPicker) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation, toggling and submission.
func (p OptionPicker) Update(msg tea.Msg) (OptionPicker, tea.Cmd) {
	if p.Submitted || len(p.Options) == 0 {
		return p, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if p.Cursor > 0 {
			p.Cursor--
		}
	case "down", "j":
		if p.Cursor < len(p.Options)-1 {
			p.Cursor++
		}
	case "space", " ":
		if p.Multiple {
			p.checked[p.Cursor] = !p.checked[p.Cursor]
		}
	case "enter":
		if !p.Multiple || !p.anyChecked() {
			clear(p.checked)
			p.checked[p.Cursor] = true
		}
		p.Submitted = true
	}

	return p, nil
}

func (p OptionPicker) anyChecked() bool {
	for _, c := range p.checked {
		if c {
			return true
		}
	}
	return false
}

// Selected returns the chosen options in display order. It is empty until
// the picker is submitted.
func (p OptionPicker) Selected() []string {
	if !p.Submitted {
		return nil
	}
	var out []string
	for i, c := range p.checked {
		if c {
			out = append(out, p.Options[i])
		}
	}
	return out
}

// View renders the prompt and options.
func (p OptionPicker) View() string {
	var b strings.Builder
	if p.Prompt != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(p.Prompt))
		b.WriteString("\n\n")
	}

	for i, opt := range p.Options {
		prefix := "  "
		if i == p.Cursor && !p.Submitted {
			prefix = "▸ "
		}
		mark := ""
		if p.Multiple {
			mark = "[ ] "
			if p.checked[i] {
				mark = "[x] "
			}
		}
		line := fmt.Sprintf("%s%s%c)  %s", prefix, mark, 'A'+rune(i%26), opt)

		switch {
		case p.Submitted && p.checked[i]:
			b.WriteString(theme.Checked.Render(line))
		case p.Submitted:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(line))
		case i == p.Cursor:
			b.WriteString(theme.Selected.Render(line))
		case p.checked[i]:
			b.WriteString(theme.Checked.Render(line))
		default:
			b.WriteString(theme.Unselected.Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}
