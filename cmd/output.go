package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/careerquest/internal/locale"
	"github.com/abhisek/careerquest/internal/recommend"
	"github.com/abhisek/careerquest/internal/scoring"
	"github.com/abhisek/careerquest/internal/session"
)

const rule = "─"

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printSummary(w io.Writer, sum *session.Summary, scores scoring.Vector, l locale.Locale) {
	fmt.Fprintln(w, locale.T(l, locale.KeyQuizCompleted))
	fmt.Fprintln(w, strings.Repeat(rule, 44))
	for _, r := range sum.Results {
		fmt.Fprintf(w, "%-24s  %3d/%-3d  %6.1f\n", r.Category.DisplayName(), r.Answered, r.Questions, scores[r.Category])
	}
	fmt.Fprintln(w, strings.Repeat(rule, 44))
}

func printRecommendation(w io.Writer, rec *recommend.Recommendation, l locale.Locale) {
	for _, line := range rec.Narrative(l) {
		fmt.Fprintln(w, line)
	}
	if len(rec.JobMarket) == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, locale.T(l, locale.KeyJobMarket)+":")
	for _, d := range rec.JobMarket {
		fmt.Fprintf(w, "  %-24s %s %3.0f\n", d.Career, demandBar(d.Demand, 20), d.Demand)
	}
}

// demandBar draws a demand out of 100 as a bar of width cells.
func demandBar(demand float64, width int) string {
	filled := int(demand/100*float64(width) + 0.5)
	filled = max(0, min(width, filled))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
