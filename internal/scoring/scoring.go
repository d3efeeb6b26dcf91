// Package scoring turns quiz answers into category percentages.
package scoring

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	qb "github.com/abhisek/careerquest/internal/questionbank"
)

// Vector maps a category to a score in [0, 100].
type Vector map[qb.Category]float64

// Item is a question bound to the identifier its answers are recorded under.
type Item interface {
	InstanceID() string
	Question() qb.Question
}

// Score returns the percentage of items answered correctly. A single-answer
// question needs the submitted set to equal the correct set. A multi-select
// question accepts any non-empty subset of the correct set. No items scores 0.
func Score[T Item](items []T, answers map[string][]string) float64 {
	if len(items) == 0 {
		return 0
	}
	correct := 0
	for _, it := range items {
		if IsCorrect(it.Question(), answers[it.InstanceID()]) {
			correct++
		}
	}
	return 100 * float64(correct) / float64(len(items))
}

// IsCorrect grades one submission against a question.
func IsCorrect(q qb.Question, submitted []string) bool {
	got := toSet(submitted)
	want := toSet(q.Correct)

	switch q.Kind {
	case qb.Multiple:
		if len(got) == 0 {
			return false
		}
		for s := range got {
			if !want[s] {
				return false
			}
		}
		return true
	default:
		return maps.Equal(got, want)
	}
}

func toSet(xs []string) map[string]bool {
	set := make(map[string]bool, len(xs))
	for _, x := range xs {
		set[x] = true
	}
	return set
}

// Clamp returns a copy with every score limited to [0, 100].
func (v Vector) Clamp() Vector {
	out := make(Vector, len(v))
	for c, s := range v {
		out[c] = clamp(s)
	}
	return out
}

// Filter returns the scores whose category passes keep.
func (v Vector) Filter(keep func(qb.Category) bool) Vector {
	out := make(Vector, len(v))
	for c, s := range v {
		if keep(c) {
			out[c] = s
		}
	}
	return out
}

// Any reports whether some score satisfies pred.
func (v Vector) Any(pred func(float64) bool) bool {
	for _, s := range v {
		if pred(s) {
			return true
		}
	}
	return false
}

// Categories returns the vector's categories in sorted order.
func (v Vector) Categories() []qb.Category {
	return slices.Sorted(maps.Keys(v))
}

// String renders the vector in the form accepted by ParseVector.
func (v Vector) String() string {
	parts := make([]string, 0, len(v))
	for _, c := range v.Categories() {
		parts = append(parts, fmt.Sprintf("%s=%s", c, strconv.FormatFloat(v[c], 'f', -1, 64)))
	}
	return strings.Join(parts, ",")
}

// ParseVector reads "math=80,verbal=65.5". Scores are clamped to [0, 100].
func ParseVector(s string) (Vector, error) {
	v := make(Vector)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, raw, ok := strings.Cut(part, "=")
		if !ok {
			return nil, fmt.Errorf("score %q: expected category=value", part)
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, fmt.Errorf("score %q: %w", part, err)
		}
		v[qb.Category(strings.ToLower(strings.TrimSpace(name)))] = clamp(f)
	}
	return v, nil
}

// FromCGPA converts a 10-point CGPA to a percentage.
func FromCGPA(cgpa float64) float64 {
	return clamp(cgpa * 9.5)
}

func clamp(f float64) float64 {
	return min(max(f, 0), 100)
}
