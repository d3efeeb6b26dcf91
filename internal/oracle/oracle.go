// Package oracle defines the narrow contracts careerquest uses to consume
// predictive models: text embedding, career classification from a feature
// vector, and per-skill regression from a career index. Every backend
// failure surfaces as *ErrUnavailable; nothing in this package retries.
package oracle

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
)

// Oracle names used in ErrUnavailable.
const (
	NameEmbedder   = "embedder"
	NameClassifier = "classifier"
	NameRegressor  = "regressor"
)

// Embedder turns texts into fixed-length vectors, one per text.
type Embedder interface {
	Encode(ctx context.Context, texts ...string) ([][]float64, error)
}

// Classifier predicts a class index from a feature vector and decodes it to
// a label. The label set is fixed when the model is built.
type Classifier interface {
	Predict(ctx context.Context, features []float64) (int, error)
	Decode(index int) (string, error)
}

// Regressor predicts an expected score for a career index.
type Regressor interface {
	Predict(ctx context.Context, careerIndex int) (float64, error)
}

// ErrUnavailable is returned when an oracle call fails or times out.
type ErrUnavailable struct {
	Oracle string
	Err    error
}

func (e *ErrUnavailable) Error() string {
	return fmt.Sprintf("%s oracle unavailable: %v", e.Oracle, e.Err)
}

func (e *ErrUnavailable) Unwrap() error { return e.Err }

// Unavailable wraps err for the named oracle. nil stays nil and an error
// that is already *ErrUnavailable is returned as is.
func Unavailable(name string, err error) error {
	if err == nil {
		return nil
	}
	var ue *ErrUnavailable
	if errors.As(err, &ue) {
		return err
	}
	return &ErrUnavailable{Oracle: name, Err: err}
}

// IsUnavailable reports whether err is an oracle failure.
func IsUnavailable(err error) bool {
	var ue *ErrUnavailable
	return errors.As(err, &ue)
}

// CosineSimilarity returns the cosine of the angle between a and b, in
// [-1, 1]. Mismatched lengths compare the common prefix; a zero vector
// yields 0.
func CosineSimilarity(a, b []float64) float64 {
	n := min(len(a), len(b))
	var dot, na, nb float64
	for i := range n {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	sim := dot / (math.Sqrt(na) * math.Sqrt(nb))
	return max(-1, min(1, sim))
}

// Labels is a sorted, duplicate-free label set. A label's index is its
// position, matching how the training data was encoded.
type Labels []string

// NewLabels sorts and deduplicates names.
func NewLabels(names []string) Labels {
	l := slices.Clone(names)
	slices.Sort(l)
	return Labels(slices.Compact(l))
}

// Index returns the position of name.
func (l Labels) Index(name string) (int, bool) {
	return slices.BinarySearch(l, name)
}

// Name returns the label at index i.
func (l Labels) Name(i int) (string, error) {
	if i < 0 || i >= len(l) {
		return "", fmt.Errorf("label index %d out of range [0, %d)", i, len(l))
	}
	return l[i], nil
}
