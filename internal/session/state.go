package session

import (
	"time"

	"github.com/abhisek/careerquest/internal/catalog"
	qb "github.com/abhisek/careerquest/internal/questionbank"
	"github.com/abhisek/careerquest/internal/scoring"
)

// Phase is the lifecycle state of a quiz session.
type Phase int

const (
	PhaseActive    Phase = iota // Walking categories, accepting answers
	PhaseCompleted              // Every category visited, scores computed
)

func (p Phase) String() string {
	if p == PhaseCompleted {
		return "completed"
	}
	return "active"
}

// Instance is a bank question bound to an identifier unique within its
// session. Answers are recorded under the instance ID, never the base ID.
type Instance struct {
	ID   string
	Base qb.Question
}

// InstanceID implements scoring.Item.
func (i Instance) InstanceID() string { return i.ID }

// Question implements scoring.Item.
func (i Instance) Question() qb.Question { return i.Base }

// Session is the state of one learner's adaptive quiz.
type Session struct {
	// ID is the unique session token.
	ID string

	// Profile is the configuration the session was built for.
	Profile catalog.Profile

	// Difficulty is resolved from the profile's stage.
	Difficulty qb.Difficulty

	// Order is the sequence of categories the quiz walks.
	Order []qb.Category

	// Index points into Order at the category being answered.
	Index int

	// Questions holds the materialized instances per category. A category
	// outside the profile's valid set has an empty list.
	Questions map[qb.Category][]Instance

	// Answers holds the submitted option sets per category, keyed by instance
	// ID. Only IDs present in Questions for that category are ever stored.
	Answers map[qb.Category]map[string][]string

	// Scores is filled in one batch when the session completes.
	Scores scoring.Vector

	// StartedAt and CompletedAt bound the session.
	StartedAt   time.Time
	CompletedAt time.Time

	now func() time.Time
}

// Phase returns the current lifecycle state.
func (s *Session) Phase() Phase {
	if s.Index >= len(s.Order) {
		return PhaseCompleted
	}
	return PhaseActive
}

// Completed reports whether every category has been visited.
func (s *Session) Completed() bool {
	return s.Phase() == PhaseCompleted
}

// Current returns the category being answered and its instances. ok is
// false once the session is completed.
func (s *Session) Current() (qb.Category, []Instance, bool) {
	if s.Completed() {
		return "", nil, false
	}
	c := s.Order[s.Index]
	return c, s.Questions[c], true
}

// Progress returns the number of categories finished and the total.
func (s *Session) Progress() (done, total int) {
	return min(s.Index, len(s.Order)), len(s.Order)
}

// Instance finds an instance of the current category by ID.
func (s *Session) Instance(id string) (Instance, bool) {
	_, instances, ok := s.Current()
	if !ok {
		return Instance{}, false
	}
	for _, in := range instances {
		if in.ID == id {
			return in, true
		}
	}
	return Instance{}, false
}

// InstanceCount returns the total number of materialized instances.
func (s *Session) InstanceCount() int {
	n := 0
	for _, qs := range s.Questions {
		n += len(qs)
	}
	return n
}

// AnsweredCount returns how many instances have a submission.
func (s *Session) AnsweredCount() int {
	n := 0
	for _, byID := range s.Answers {
		n += len(byID)
	}
	return n
}
