package api

import (
	"github.com/abhisek/careerquest/internal/catalog"
	"github.com/abhisek/careerquest/internal/locale"
	qb "github.com/abhisek/careerquest/internal/questionbank"
	"github.com/abhisek/careerquest/internal/recommend"
	"github.com/abhisek/careerquest/internal/scoring"
	"github.com/abhisek/careerquest/internal/session"
)

type questionView struct {
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	Options []string `json:"options"`
	Kind    string   `json:"kind"`
	// Answer is the submitted option set, if any.
	Answer []string `json:"answer,omitempty"`
}

type progressView struct {
	Done  int `json:"done"`
	Total int `json:"total"`
}

type sessionView struct {
	ID           string          `json:"id"`
	Phase        string          `json:"phase"`
	Profile      catalog.Profile `json:"profile"`
	Difficulty   string          `json:"difficulty"`
	BankVersion  string          `json:"bank_version"`
	Progress     progressView    `json:"progress"`
	Category     qb.Category     `json:"category,omitempty"`
	CategoryName string          `json:"category_name,omitempty"`
	Questions    []questionView  `json:"questions,omitempty"`
	Scores       scoring.Vector  `json:"scores,omitempty"`
}

// newSessionView renders the current category of s in l. Questions carry
// no correct answers.
func newSessionView(s *session.Session, l locale.Locale) sessionView {
	done, total := s.Progress()
	v := sessionView{
		ID:          s.ID,
		Phase:       s.Phase().String(),
		Profile:     s.Profile,
		Difficulty:  s.Difficulty.String(),
		BankVersion: qb.Version,
		Progress:    progressView{Done: done, Total: total},
		Scores:      s.Scores,
	}
	c, instances, ok := s.Current()
	if !ok {
		return v
	}
	v.Category = c
	v.CategoryName = c.DisplayName()
	v.Questions = make([]questionView, 0, len(instances))
	for _, in := range instances {
		v.Questions = append(v.Questions, questionView{
			ID:      in.ID,
			Text:    in.Base.TextFor(l),
			Options: in.Base.Options,
			Kind:    in.Base.Kind.String(),
			Answer:  s.Answers[c][in.ID],
		})
	}
	return v
}

type recommendationView struct {
	*recommend.Recommendation
	Narrative []string `json:"narrative"`
}
