package domains

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/careerquest/internal/locale"
	"github.com/abhisek/careerquest/internal/oracle"
)

// axisEmbedder maps each domain description onto its own axis and every
// other text onto goal.
type axisEmbedder struct {
	goal  []float64
	err   error
	calls int
}

func (a *axisEmbedder) Encode(_ context.Context, texts ...string) ([][]float64, error) {
	a.calls++
	if a.err != nil {
		return nil, a.err
	}
	out := make([][]float64, len(texts))
	for i, t := range texts {
		out[i] = a.goal
		for j, name := range Names() {
			if strings.HasPrefix(t, name+":") {
				v := make([]float64, len(knowledge))
				v[j] = 1
				out[i] = v
			}
		}
	}
	return out, nil
}

// goalVector weights domains in catalog order: AI, Healthcare, Design,
// Business, Education, Engineering, Law.
func goalVector() []float64 {
	return []float64{0.8, 0.9, 0, 0, 0, 0.7, 0.1}
}

func TestExplorer_TopReranksByAptitude(t *testing.T) {
	tests := []struct {
		name     string
		aptitude map[string]float64
		want     []string
	}{
		{"similarity order without aptitude", nil, []string{Healthcare, AI, Engineering}},
		{"aptitude reorders", map[string]float64{"math": 90, "Physics": 80}, []string{Engineering, AI, Healthcare}},
		{"ties keep similarity order", map[string]float64{"Math": 50, "Logic": 50, "Physics": 50}, []string{AI, Engineering, Healthcare}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := NewExplorer(&axisEmbedder{goal: goalVector()}, nil)
			got, err := x.Top(context.Background(), "my goals", tt.aptitude)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExplorer_TopCachesDomainVectors(t *testing.T) {
	e := &axisEmbedder{goal: goalVector()}
	x := NewExplorer(e, nil)
	for range 3 {
		_, err := x.Top(context.Background(), "goals", nil)
		require.NoError(t, err)
	}
	assert.Equal(t, 4, e.calls)
}

func TestExplorer_Errors(t *testing.T) {
	e := &axisEmbedder{goal: goalVector()}
	_, err := NewExplorer(e, nil).Top(context.Background(), "   ", nil)
	assert.ErrorIs(t, err, ErrNoGoals)
	assert.Zero(t, e.calls)

	_, err = NewExplorer(&axisEmbedder{err: errors.New("offline")}, nil).Top(context.Background(), "x", nil)
	assert.True(t, oracle.IsUnavailable(err))
}

func TestExplorer_Recommend(t *testing.T) {
	x := NewExplorer(&axisEmbedder{goal: goalVector()}, nil)
	res, err := x.Recommend(context.Background(), Profile{
		Goals:    "build machines",
		Skills:   []string{"physics", " CAD ", "Python"},
		Aptitude: map[string]float64{"Math": 90, "Physics": 80},
		Language: "hi",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{Engineering, AI, Healthcare}, res.Domains)
	assert.Equal(t, []string{
		"Mechanical Engineer", "Electrical Engineer", "Civil Engineer",
		"Machine Learning Engineer", "Data Scientist",
	}, res.CareerPaths)
	assert.Equal(t, Pathway{
		MissingSkills:    []string{"Problem Solving"},
		SuggestedCourses: []string{"Learn Problem Solving on SWAYAM"},
	}, res.Pathways[Engineering])
	assert.Equal(t, []string{"Math", "Statistics"}, res.Pathways[AI].MissingSkills)
	assert.Equal(t, []string{"NEET"}, res.ExamAlignment[Healthcare])
	assert.Equal(t, locale.Hindi, res.Language)
}

func TestExplorer_HashEmbedder(t *testing.T) {
	x := NewExplorer(oracle.HashEmbedder{}, nil)
	got, err := x.Top(context.Background(), "I want to build machine learning models in Python", nil)
	require.NoError(t, err)
	require.Len(t, got, TopDomains)
	assert.Equal(t, AI, got[0])
}

func TestDomain_Helpers(t *testing.T) {
	d, ok := Lookup("law")
	require.True(t, ok)
	assert.Equal(t, Law, d.Name)
	assert.Equal(t, []string{"Critical Thinking", "Legal Writing"}, d.MissingSkills([]string{"ethics"}))
	assert.InDelta(t, 40.0, d.AptitudeMatch(map[string]float64{"LANGUAGE": 80}), 1e-9)

	_, ok = Lookup("Astronomy")
	assert.False(t, ok)
	assert.Len(t, All(), 7)
	assert.Zero(t, Domain{}.AptitudeMatch(map[string]float64{"x": 1}))
}
