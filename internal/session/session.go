// Package session implements the adaptive quiz: a per-learner state machine
// that walks the profile's categories, serves a deduplicated question set per
// category, and scores every category in one batch when the walk ends.
package session

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/careerquest/internal/catalog"
	qb "github.com/abhisek/careerquest/internal/questionbank"
	"github.com/abhisek/careerquest/internal/scoring"
)

// DefaultQuestionCount is the number of instances requested per category.
const DefaultQuestionCount = 10

var (
	// ErrCompleted is returned when mutating a completed session.
	ErrCompleted = errors.New("session completed")

	// ErrUnknownInstance is returned when an answer names an instance that is
	// not part of the current category.
	ErrUnknownInstance = errors.New("unknown question instance")
)

type options struct {
	sampler    Sampler
	count      int
	categories []qb.Category
	newID      func() string
	now        func() time.Time
}

// Option configures session construction.
type Option func(*options)

// WithSampler sets the sampler used to pick question instances.
func WithSampler(s Sampler) Option {
	return func(o *options) { o.sampler = s }
}

// WithQuestionCount sets the number of instances requested per category.
func WithQuestionCount(n int) Option {
	return func(o *options) { o.count = n }
}

// WithCategories overrides the category order. Categories outside the
// profile's valid set are kept in the walk with no questions.
func WithCategories(cats []qb.Category) Option {
	return func(o *options) { o.categories = slices.Clone(cats) }
}

// WithIDGenerator sets the session ID generator.
func WithIDGenerator(fn func() string) Option {
	return func(o *options) { o.newID = fn }
}

// WithClock sets the time source.
func WithClock(fn func() time.Time) Option {
	return func(o *options) { o.now = fn }
}

// New creates an active session for the profile with every category's
// question set materialized up front.
func New(profile catalog.Profile, opts ...Option) (*Session, error) {
	o := options{
		count: DefaultQuestionCount,
		newID: uuid.NewString,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.sampler == nil {
		o.sampler = NewRandomSampler()
	}

	if err := profile.Validate(); err != nil {
		return nil, err
	}
	profile = profile.Normalize()
	difficulty, err := profile.Stage.Difficulty()
	if err != nil {
		return nil, err
	}

	order := o.categories
	if order == nil {
		order = catalog.ValidCategories(profile)
	}

	s := &Session{
		ID:         o.newID(),
		Profile:    profile,
		Difficulty: difficulty,
		Order:      order,
		Questions:  make(map[qb.Category][]Instance, len(order)),
		Answers:    make(map[qb.Category]map[string][]string, len(order)),
		StartedAt:  o.now(),
		now:        o.now,
	}
	for _, c := range order {
		s.Answers[c] = make(map[string][]string)
		if !catalog.CategoryAllowed(profile, c) {
			s.Questions[c] = nil
			continue
		}
		s.Questions[c] = Materialize(s.ID, qb.Lookup(c, difficulty), o.count, o.sampler)
	}
	if len(order) == 0 {
		s.complete(o.now())
	}
	return s, nil
}

// Materialize samples n instances from pool and binds each to an ID of the
// form {baseID}_{sessionPrefix}_{ordinal}. IDs are unique even when the
// sample repeats a base question.
func Materialize(sessionID string, pool []qb.Question, n int, sampler Sampler) []Instance {
	picked := sampler.Sample(pool, n)
	if len(picked) == 0 {
		return nil
	}
	prefix := sessionID
	if len(prefix) > 8 {
		prefix = prefix[:8]
	}
	out := make([]Instance, len(picked))
	for i, q := range picked {
		out[i] = Instance{
			ID:   fmt.Sprintf("%s_%s_%d", q.BaseID, prefix, i),
			Base: q,
		}
	}
	return out
}

// Record stores the submitted options for an instance of the current
// category, replacing any earlier submission. It does not advance.
func (s *Session) Record(instanceID string, answers []string) error {
	if s.Completed() {
		return ErrCompleted
	}
	c, _, _ := s.Current()
	if _, ok := s.Instance(instanceID); !ok {
		return fmt.Errorf("%w: %q in category %s", ErrUnknownInstance, instanceID, c)
	}
	s.Answers[c][instanceID] = slices.Clone(answers)
	return nil
}

// RecordAll stores a batch of submissions for the current category. Either
// every entry is recorded or, when any instance is unknown, none is.
func (s *Session) RecordAll(answers map[string][]string) error {
	if s.Completed() {
		return ErrCompleted
	}
	c, _, _ := s.Current()
	ids := slices.Sorted(maps.Keys(answers))
	for _, id := range ids {
		if _, ok := s.Instance(id); !ok {
			return fmt.Errorf("%w: %q in category %s", ErrUnknownInstance, id, c)
		}
	}
	for _, id := range ids {
		s.Answers[c][id] = slices.Clone(answers[id])
	}
	return nil
}

// Advance moves to the next category. Leaving the last category completes
// the session and scores every category.
func (s *Session) Advance() (Phase, error) {
	if s.Completed() {
		return PhaseCompleted, ErrCompleted
	}
	s.Index++
	if s.Index >= len(s.Order) {
		s.complete(s.clock())
	}
	return s.Phase(), nil
}

func (s *Session) clock() time.Time {
	if s.now == nil {
		return time.Now()
	}
	return s.now()
}

func (s *Session) complete(now time.Time) {
	s.Index = len(s.Order)
	s.Scores = make(scoring.Vector, len(s.Order))
	for _, c := range s.Order {
		s.Scores[c] = scoring.Score(s.Questions[c], s.Answers[c])
	}
	s.CompletedAt = now
}
