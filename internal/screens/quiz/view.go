package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/careerquest/internal/locale"
	"github.com/abhisek/careerquest/internal/ui/components"
	"github.com/abhisek/careerquest/internal/ui/theme"
)

func (q *QuizScreen) View(width, height int) string {
	if q.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", q.errMsg))
	}
	if q.session == nil || q.done {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  " + q.svc.T(locale.KeyLoading))
	}

	c, instances, _ := q.session.Current()
	done, total := q.session.Progress()
	cw := min(width-4, 70)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(q.session.Profile.String()))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(
		fmt.Sprintf("%s %d/%d: %s", q.svc.T(locale.KeyCategoryProgress), done+1, total, c.DisplayName())))
	b.WriteString("\n")
	b.WriteString(components.NewProgressBar("", float64(done)/float64(max(total, 1)), true, cw).View())
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("%s %d/%d", q.svc.T(locale.KeyQuestion), q.cursor+1, len(instances))))
	b.WriteString("   ")
	mode := locale.KeySelectOne
	if q.picker.Multiple {
		mode = locale.KeySelectMany
	}
	b.WriteString(theme.Hint.Render(q.svc.T(mode)))
	b.WriteString("\n\n")
	b.WriteString(q.picker.View())

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		theme.Card.Width(cw).Render(b.String()))
}
