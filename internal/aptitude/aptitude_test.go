package aptitude

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/careerquest/internal/catalog"
	"github.com/abhisek/careerquest/internal/oracle"
	qb "github.com/abhisek/careerquest/internal/questionbank"
	"github.com/abhisek/careerquest/internal/scoring"
)

func TestFeatures(t *testing.T) {
	tests := []struct {
		name   string
		scores scoring.Vector
		want   []float64
	}{
		{
			name:   "empty",
			scores: scoring.Vector{},
			want:   []float64{0, 0, 0, 0, 0, 0, 0, 0},
		},
		{
			name: "direct columns",
			scores: scoring.Vector{
				qb.CategoryMath: 80, qb.CategoryBiology: 10, qb.CategoryPhysics: 20,
				qb.CategoryChemistry: 30, qb.CategoryVerbal: 40, qb.CategoryAnalytical: 50,
			},
			want: []float64{80, 10, 20, 30, 40, 50, 0, 0},
		},
		{
			name:   "mapped categories",
			scores: scoring.Vector{qb.CategoryExtra: 70, qb.CategoryCoding: 90, qb.CategoryAccounting: 60},
			want:   []float64{0, 0, 0, 0, 0, 60, 70, 90},
		},
		{
			name:   "collision keeps the highest",
			scores: scoring.Vector{qb.CategoryExtra: 30, qb.CategoryActivity: 75, qb.CategoryAnalytical: 40, qb.CategoryAccounting: 20},
			want:   []float64{0, 0, 0, 0, 0, 40, 75, 0},
		},
		{
			name:   "unknown category ignored",
			scores: scoring.Vector{"music": 99},
			want:   []float64{0, 0, 0, 0, 0, 0, 0, 0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Features(tt.scores))
		})
	}
}

func TestFeatureForCoversBank(t *testing.T) {
	for _, c := range qb.Categories() {
		_, ok := FeatureFor(c)
		assert.True(t, ok, c)
	}
}

func TestSkillScores(t *testing.T) {
	got := SkillScores(scoring.Vector{qb.CategoryCoding: 55, qb.CategoryActivity: 65, qb.CategoryMath: 100})
	assert.Equal(t, map[string]float64{"communication": 65, "technical": 55, "analytical": 0}, got)
}

type fakeClassifier struct {
	got    []float64
	index  int
	err    error
	labels oracle.Labels
}

func (f *fakeClassifier) Predict(_ context.Context, features []float64) (int, error) {
	f.got = features
	return f.index, f.err
}

func (f *fakeClassifier) Decode(i int) (string, error) { return f.labels.Name(i) }

func TestClassifier_Predict(t *testing.T) {
	profile := catalog.Profile{Stage: catalog.StageHigherSecondary, Stream: catalog.StreamPCB}

	f := &fakeClassifier{index: 1, labels: oracle.NewLabels([]string{"Doctor", "Nurse"})}
	label, err := New(f, nil).Predict(context.Background(), scoring.Vector{qb.CategoryBiology: 90}, profile)
	require.NoError(t, err)
	assert.Equal(t, "Nurse", label)
	assert.Equal(t, 90.0, f.got[1])

	f = &fakeClassifier{err: errors.New("model crashed")}
	_, err = New(f, nil).Predict(context.Background(), scoring.Vector{}, profile)
	assert.True(t, oracle.IsUnavailable(err))

	f = &fakeClassifier{index: 5, labels: oracle.NewLabels([]string{"Doctor"})}
	_, err = New(f, nil).Predict(context.Background(), scoring.Vector{}, profile)
	assert.True(t, oracle.IsUnavailable(err))
}

func TestClassifier_WithTrainedModel(t *testing.T) {
	m, err := oracle.DefaultModel()
	require.NoError(t, err)

	scores := scoring.Vector{
		qb.CategoryMath: 92, qb.CategoryPhysics: 70, qb.CategoryChemistry: 50, qb.CategoryBiology: 45,
		qb.CategoryVerbal: 68, qb.CategoryAnalytical: 90, qb.CategoryExtra: 62, qb.CategoryCoding: 88,
	}
	label, err := New(m, nil).Predict(context.Background(), scores, catalog.Profile{Stage: catalog.StageAfter12th, Stream: catalog.StreamPCM})
	require.NoError(t, err)
	assert.Equal(t, catalog.CareerDataScientist, label)
}
