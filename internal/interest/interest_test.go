package interest

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/careerquest/internal/catalog"
	"github.com/abhisek/careerquest/internal/oracle"
	"github.com/abhisek/careerquest/internal/scoring"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"punctuation only", "!!!", ""},
		{"empty", "   ", ""},
		{"strips symbols", "I love coding!!! & robots :)", "I love coding  robots."},
		{"keeps commas", "coding, dancing, science", "coding, dancing, science."},
		{"keeps five sentences", "a. b. c. d. e. f. g", "a. b. c. d. e."},
		{"drops empty sentences", "..coding...  . art.", "coding. art."},
		{"comma only sentence", ", . music", "music."},
		{"hindi", "मुझे विज्ञान पसंद है!", "मुझे विज्ञान पसंद है."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clean(tt.in))
		})
	}
}

type countingEmbedder struct {
	inner oracle.Embedder
	calls int
	texts []string
	err   error
}

func (c *countingEmbedder) Encode(ctx context.Context, texts ...string) ([][]float64, error) {
	c.calls++
	c.texts = append(c.texts, texts...)
	if c.err != nil {
		return nil, c.err
	}
	return c.inner.Encode(ctx, texts...)
}

func TestRank_NoValidInterestsSkipsEmbedder(t *testing.T) {
	e := &countingEmbedder{inner: oracle.HashEmbedder{}}
	_, err := NewMatcher(e, nil).Rank(context.Background(), "!!!", scoring.Vector{}, catalog.Profile{Stream: catalog.StreamPCM})
	assert.ErrorIs(t, err, ErrNoValidInterests)
	assert.Zero(t, e.calls)
}

func TestRank_RestrictsToValidCareers(t *testing.T) {
	m := NewMatcher(oracle.HashEmbedder{}, nil)

	tests := []struct {
		name    string
		profile catalog.Profile
		allowed []string
	}{
		{"PCB stream", catalog.Profile{Stage: catalog.StageHigherSecondary, Stream: catalog.StreamPCB}, []string{"Doctor", "Nurse", "Biomedical Scientist"}},
		{"CLAT exam", catalog.Profile{Stage: catalog.StageAfter12th, Stream: catalog.StreamPCM, Exam: catalog.ExamCLAT}, []string{"Lawyer"}},
		{"Other exam falls back to stream", catalog.Profile{Stage: catalog.StageAfter12th, Stream: catalog.StreamCommerce, Exam: catalog.ExamOther}, []string{"MBA", "Chartered Accountant"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := m.Rank(context.Background(), "healthcare, law, business, coding", scoring.Vector{}, tt.profile)
			require.NoError(t, err)
			require.NotEmpty(t, got)
			assert.LessOrEqual(t, len(got), MaxMatches)
			for i, match := range got {
				assert.Contains(t, tt.allowed, match.Career)
				if i > 0 {
					assert.GreaterOrEqual(t, got[i-1].Similarity, match.Similarity)
				}
			}
		})
	}
}

func TestRank_OrdersBySimilarity(t *testing.T) {
	m := NewMatcher(oracle.HashEmbedder{}, nil)
	got, err := m.Rank(context.Background(), "coding algorithms software development", scoring.Vector{},
		catalog.Profile{Stage: catalog.StageHigherSecondary, Stream: catalog.StreamPCM})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, catalog.CareerSoftwareEngineer, got[0].Career)
}

func TestRank_CachesCareerEmbeddings(t *testing.T) {
	e := &countingEmbedder{inner: oracle.HashEmbedder{}}
	m := NewMatcher(e, nil)
	p := catalog.Profile{Stage: catalog.StageHigherSecondary, Stream: catalog.StreamArts}

	_, err := m.Rank(context.Background(), "justice", scoring.Vector{}, p)
	require.NoError(t, err)
	_, err = m.Rank(context.Background(), "policy", scoring.Vector{}, p)
	require.NoError(t, err)

	// Two profile texts once, then one interest text per call.
	assert.Equal(t, 3, e.calls)
	assert.Len(t, e.texts, 4)
	assert.True(t, strings.HasPrefix(e.texts[0], "Legal analysis"))
}

func TestRank_EmbedderFailure(t *testing.T) {
	e := &countingEmbedder{inner: oracle.HashEmbedder{}, err: errors.New("timeout")}
	_, err := NewMatcher(e, nil).Rank(context.Background(), "coding", scoring.Vector{}, catalog.Profile{Stream: catalog.StreamPCM})
	assert.True(t, oracle.IsUnavailable(err))
	assert.False(t, errors.Is(err, ErrNoValidInterests))
}
