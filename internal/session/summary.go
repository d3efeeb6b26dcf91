package session

import (
	"time"

	qb "github.com/abhisek/careerquest/internal/questionbank"
)

// CategoryResult is one row of a completed quiz.
type CategoryResult struct {
	Category  qb.Category
	Questions int
	Answered  int
	Score     float64
}

// Summary holds the data displayed after a quiz.
type Summary struct {
	SessionID string
	Duration  time.Duration
	Results   []CategoryResult
}

// BuildSummary creates a Summary in category order. Scores are zero until
// the session completes.
func BuildSummary(s *Session) *Summary {
	sum := &Summary{SessionID: s.ID}
	if !s.CompletedAt.IsZero() {
		sum.Duration = s.CompletedAt.Sub(s.StartedAt)
	}
	for _, c := range s.Order {
		sum.Results = append(sum.Results, CategoryResult{
			Category:  c,
			Questions: len(s.Questions[c]),
			Answered:  len(s.Answers[c]),
			Score:     s.Scores[c],
		})
	}
	return sum
}
