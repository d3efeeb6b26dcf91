package oracle

import (
	"context"
	"time"
)

// WithEmbedderTimeout bounds every Encode call by d. A zero d returns e.
func WithEmbedderTimeout(e Embedder, d time.Duration) Embedder {
	if d <= 0 {
		return e
	}
	return timeoutEmbedder{inner: e, d: d}
}

type timeoutEmbedder struct {
	inner Embedder
	d     time.Duration
}

func (t timeoutEmbedder) Encode(ctx context.Context, texts ...string) ([][]float64, error) {
	ctx, cancel := context.WithTimeout(ctx, t.d)
	defer cancel()
	v, err := t.inner.Encode(ctx, texts...)
	return v, Unavailable(NameEmbedder, err)
}

// WithClassifierTimeout bounds every Predict call by d. A zero d returns c.
func WithClassifierTimeout(c Classifier, d time.Duration) Classifier {
	if d <= 0 {
		return c
	}
	return timeoutClassifier{inner: c, d: d}
}

type timeoutClassifier struct {
	inner Classifier
	d     time.Duration
}

func (t timeoutClassifier) Predict(ctx context.Context, features []float64) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, t.d)
	defer cancel()
	i, err := t.inner.Predict(ctx, features)
	return i, Unavailable(NameClassifier, err)
}

func (t timeoutClassifier) Decode(index int) (string, error) {
	return t.inner.Decode(index)
}

// WithRegressorTimeout bounds every Predict call by d. A zero d returns r.
func WithRegressorTimeout(r Regressor, d time.Duration) Regressor {
	if d <= 0 {
		return r
	}
	return timeoutRegressor{inner: r, d: d}
}

type timeoutRegressor struct {
	inner Regressor
	d     time.Duration
}

func (t timeoutRegressor) Predict(ctx context.Context, careerIndex int) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, t.d)
	defer cancel()
	v, err := t.inner.Predict(ctx, careerIndex)
	return v, Unavailable(NameRegressor, err)
}
