// Package result shows a composed career recommendation.
package result

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/careerquest/internal/catalog"
	"github.com/abhisek/careerquest/internal/locale"
	"github.com/abhisek/careerquest/internal/recommend"
	"github.com/abhisek/careerquest/internal/router"
	"github.com/abhisek/careerquest/internal/screen"
	"github.com/abhisek/careerquest/internal/ui/components"
	"github.com/abhisek/careerquest/internal/ui/layout"
	"github.com/abhisek/careerquest/internal/ui/theme"
)

// ResultScreen renders the recommendation narrative and job-market demand.
type ResultScreen struct {
	svc     *screen.Services
	profile catalog.Profile
	rec     *recommend.Recommendation
	offset  int
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

// New creates a ResultScreen.
func New(svc *screen.Services, profile catalog.Profile, rec *recommend.Recommendation) *ResultScreen {
	return &ResultScreen{svc: svc, profile: profile, rec: rec}
}

func (r *ResultScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultScreen) Title() string {
	return r.svc.T(locale.KeyRecommendation)
}

func (r *ResultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Enter", Description: "Home"},
		{Key: "Esc", Description: "Back"},
	}
}

func (r *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}
	switch kmsg.String() {
	case "enter":
		return r, func() tea.Msg { return router.PopToRootMsg{} }
	case "up", "k":
		if r.offset > 0 {
			r.offset--
		}
	case "down", "j":
		r.offset++
	}
	return r, nil
}

func (r *ResultScreen) lines(width int) []string {
	if r.rec == nil {
		return nil
	}

	lines := []string{
		theme.Title.Width(width).Render(r.svc.T(locale.KeySuccess)),
		lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(r.profile.String())),
		"",
		lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Highlight.Render("★ "+r.rec.Predicted)),
		"",
	}

	cw := min(width-8, 64)
	for _, l := range r.rec.Narrative(r.svc.Locale) {
		lines = append(lines, lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Width(cw).Foreground(theme.Text).Render(l)))
	}

	if len(r.rec.JobMarket) > 0 {
		lines = append(lines, "", layout.RenderDivider(r.svc.T(locale.KeyJobMarket), width), "")
		labelWidth := 0
		for _, d := range r.rec.JobMarket {
			labelWidth = max(labelWidth, lipgloss.Width(d.Career))
		}
		for _, d := range r.rec.JobMarket {
			bar := components.NewProgressBar(d.Career, d.Demand/100, true, cw)
			bar.LabelWidth = labelWidth
			lines = append(lines, lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
		}
	}
	return strings.Split(strings.Join(lines, "\n"), "\n")
}

func (r *ResultScreen) View(width, height int) string {
	lines := r.lines(width)
	if len(lines) == 0 {
		return ""
	}
	r.offset = max(min(r.offset, len(lines)-height), 0)
	end := min(r.offset+height, len(lines))
	return strings.Join(lines[r.offset:end], "\n")
}
