package questionbank

import (
	"fmt"
	"slices"
	"strings"

	"github.com/abhisek/careerquest/internal/locale"
)

// Validate runs structural checks on the seed bank.
func Validate() error {
	return validateBank(bank)
}

// validateBank returns a combined error describing every problem found, or nil.
func validateBank(b map[Category]map[Difficulty][]Question) error {
	var errs []string
	seen := make(map[string]bool)

	for _, c := range Categories() {
		byDifficulty, ok := b[c]
		if !ok {
			errs = append(errs, fmt.Sprintf("category %q has no questions", c))
			continue
		}
		for _, d := range Difficulties() {
			if len(byDifficulty[d]) == 0 {
				errs = append(errs, fmt.Sprintf("category %q has no %s questions", c, d))
			}
		}
	}

	for c, byDifficulty := range b {
		for d, qs := range byDifficulty {
			for _, q := range qs {
				if seen[q.BaseID] {
					errs = append(errs, fmt.Sprintf("duplicate base ID: %q", q.BaseID))
				}
				seen[q.BaseID] = true
				errs = append(errs, validateQuestion(c, d, q)...)
			}
		}
	}

	if len(errs) == 0 {
		return nil
	}
	slices.Sort(errs)
	return fmt.Errorf("question bank validation failed:\n  %s", strings.Join(errs, "\n  "))
}

func validateQuestion(c Category, d Difficulty, q Question) []string {
	var errs []string
	where := fmt.Sprintf("%s/%s/%s", c, d, q.BaseID)

	if q.BaseID == "" {
		errs = append(errs, fmt.Sprintf("%s: empty base ID", where))
	}
	if q.Text[locale.Default] == "" {
		errs = append(errs, fmt.Sprintf("%s: missing default text", where))
	}
	if len(q.Options) < 2 {
		errs = append(errs, fmt.Sprintf("%s: needs at least 2 options", where))
	}
	for _, ans := range q.Correct {
		if !slices.Contains(q.Options, ans) {
			errs = append(errs, fmt.Sprintf("%s: correct answer %q is not an option", where, ans))
		}
	}
	switch q.Kind {
	case Single:
		if len(q.Correct) != 1 {
			errs = append(errs, fmt.Sprintf("%s: single-answer question has %d correct answers", where, len(q.Correct)))
		}
	case Multiple:
		if len(q.Correct) == 0 {
			errs = append(errs, fmt.Sprintf("%s: multi-select question has no correct answers", where))
		}
	}
	return errs
}
