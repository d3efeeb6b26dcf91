package recommend

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/careerquest/internal/aptitude"
	"github.com/abhisek/careerquest/internal/catalog"
	"github.com/abhisek/careerquest/internal/interest"
	"github.com/abhisek/careerquest/internal/locale"
	"github.com/abhisek/careerquest/internal/oracle"
	qb "github.com/abhisek/careerquest/internal/questionbank"
	"github.com/abhisek/careerquest/internal/scoring"
	"github.com/abhisek/careerquest/internal/skillgap"
)

type stubPredictor struct {
	career string
	err    error
	got    scoring.Vector
	calls  int
}

func (s *stubPredictor) Predict(_ context.Context, v scoring.Vector, _ catalog.Profile) (string, error) {
	s.calls++
	s.got = v
	return s.career, s.err
}

type stubRanker struct {
	matches []interest.Match
	err     error
	calls   int
}

func (s *stubRanker) Rank(context.Context, string, scoring.Vector, catalog.Profile) ([]interest.Match, error) {
	s.calls++
	return s.matches, s.err
}

type stubGaps map[string]float64

func (s stubGaps) Gaps(context.Context, string, scoring.Vector) (map[string]float64, error) {
	return s, nil
}

var pcm = catalog.Profile{Stage: catalog.StageHigherSecondary, Stream: catalog.StreamPCM}

func TestCompose_Narrative(t *testing.T) {
	ranker := &stubRanker{matches: []interest.Match{
		{Career: catalog.CareerSoftwareEngineer, Similarity: 0.82},
		{Career: catalog.CareerDataScientist, Similarity: 0.70},
		{Career: catalog.CareerMechanicalEngineer, Similarity: 0.10},
	}}
	pred := &stubPredictor{career: catalog.CareerSoftwareEngineer}
	c := NewComposer(pred, ranker, stubGaps{
		skillgap.SkillCommunication: 20,
		skillgap.SkillTechnical:     35,
		skillgap.SkillAnalytical:    21,
	}, nil)

	rec, err := c.Compose(context.Background(), Request{
		Profile:   pcm,
		Scores:    scoring.Vector{qb.CategoryMath: 85, qb.CategoryBiology: 99, qb.CategoryPhysics: 150},
		Interests: "coding",
		Locale:    locale.English,
	})
	require.NoError(t, err)

	assert.Equal(t, catalog.CareerSoftwareEngineer, rec.Predicted)
	require.Len(t, rec.Careers, 3)
	assert.True(t, rec.Careers[0].High)
	assert.Equal(t, "High match", rec.Careers[0].Label)
	assert.False(t, rec.Careers[1].High, "0.7 is not above the threshold")
	assert.Equal(t, "Good match", rec.Careers[2].Label)

	// Biology is not scored for PCM; physics is clamped.
	assert.Equal(t, scoring.Vector{qb.CategoryMath: 85, qb.CategoryPhysics: 100}, pred.got)

	assert.True(t, rec.Strong)
	assert.Equal(t, locale.T(locale.English, locale.KeyTraitStrong), rec.Trait)

	require.Len(t, rec.Actionable, 2)
	assert.Equal(t, Gap{Skill: skillgap.SkillTechnical, Points: 35, Tip: "learning tools like Python"}, rec.Actionable[0])
	assert.Equal(t, Gap{Skill: skillgap.SkillAnalytical, Points: 21, Tip: "practicing daily"}, rec.Actionable[1])
	assert.Len(t, rec.Gaps, 3, "all gaps are kept even when not actionable")

	assert.Equal(t, []Demand{
		{catalog.CareerSoftwareEngineer, 85},
		{catalog.CareerDataScientist, 80},
		{catalog.CareerMechanicalEngineer, 70},
	}, rec.JobMarket)

	lines := rec.Narrative(locale.English)
	assert.Contains(t, lines, "  Software Engineer: High match!")
	assert.Contains(t, lines, "  Technical: Improve by learning tools like Python!")
}

func TestCompose_Balanced(t *testing.T) {
	c := NewComposer(&stubPredictor{career: "Doctor"}, &stubRanker{}, stubGaps{}, nil)
	rec, err := c.Compose(context.Background(), Request{
		Profile:   catalog.Profile{Stage: catalog.StageHigherSecondary, Stream: catalog.StreamPCB},
		Scores:    scoring.Vector{qb.CategoryBiology: 80},
		Interests: "care",
		Locale:    locale.Hindi,
	})
	require.NoError(t, err)
	assert.False(t, rec.Strong)
	assert.Equal(t, locale.T(locale.Hindi, locale.KeyTraitBalanced), rec.Trait)
	assert.Empty(t, rec.Actionable)
}

func TestCompose_NoValidInterests(t *testing.T) {
	c := NewComposer(&stubPredictor{career: "Doctor"}, &stubRanker{err: interest.ErrNoValidInterests}, stubGaps{}, nil)

	for _, l := range locale.All() {
		_, err := c.Compose(context.Background(), Request{Profile: pcm, Interests: "!!!", Locale: l})
		assert.ErrorIs(t, err, interest.ErrNoValidInterests)
		var nv *NoValidInterestsError
		require.ErrorAs(t, err, &nv)
		assert.Equal(t, locale.T(l, locale.KeyNoValidInterests), nv.Message)
	}
}

func TestCompose_NoValidInterestsSkipsOracles(t *testing.T) {
	predictor := &stubPredictor{err: oracle.Unavailable(oracle.NameClassifier, errors.New("down"))}
	ranker := &stubRanker{}
	c := NewComposer(predictor, ranker, stubGaps{}, nil)

	for _, text := range []string{"!!!", "", " ... ,, "} {
		_, err := c.Compose(context.Background(), Request{Profile: pcm, Interests: text, Locale: locale.English})
		assert.ErrorIs(t, err, interest.ErrNoValidInterests, "interests %q", text)
		assert.False(t, oracle.IsUnavailable(err), "interests %q", text)
	}
	assert.Zero(t, predictor.calls)
	assert.Zero(t, ranker.calls)
}

func TestCompose_PropagatesOracleFailure(t *testing.T) {
	ranker := &stubRanker{}
	c := NewComposer(&stubPredictor{err: oracle.Unavailable(oracle.NameClassifier, errors.New("down"))}, ranker, stubGaps{}, nil)

	_, err := c.Compose(context.Background(), Request{Profile: pcm, Interests: "coding"})
	assert.True(t, oracle.IsUnavailable(err))
	assert.Zero(t, ranker.calls)
}

func TestCompose_InvalidProfile(t *testing.T) {
	c := NewComposer(&stubPredictor{}, &stubRanker{}, stubGaps{}, nil)
	_, err := c.Compose(context.Background(), Request{Profile: catalog.Profile{Stage: "12th grade"}, Interests: "x"})
	assert.ErrorIs(t, err, catalog.ErrInvalidConfiguration)
}

func TestCompose_EndToEnd(t *testing.T) {
	model, err := oracle.DefaultModel()
	require.NoError(t, err)
	est, err := skillgap.FromModel(model)
	require.NoError(t, err)

	c := NewComposer(aptitude.New(model, nil), interest.NewMatcher(oracle.HashEmbedder{}, nil), est, nil)
	rec, err := c.Compose(context.Background(), Request{
		Profile: catalog.Profile{Stage: catalog.StageAfter12th, Stream: catalog.StreamPCB, Exam: catalog.ExamNEET},
		Scores: scoring.Vector{
			qb.CategoryBiology: 92, qb.CategoryChemistry: 85, qb.CategoryPhysics: 65,
			qb.CategoryVerbal: 70, qb.CategoryExtra: 75,
		},
		Interests: "Patient care and nursing. Helping people in healthcare!",
		Locale:    locale.English,
	})
	require.NoError(t, err)

	require.NotEmpty(t, rec.Careers)
	for _, career := range rec.Careers {
		assert.Contains(t, []string{catalog.CareerDoctor, catalog.CareerNurse, catalog.CareerBiomedical}, career.Career)
	}
	assert.Equal(t, catalog.CareerNurse, rec.Careers[0].Career)
	for _, g := range rec.Gaps {
		assert.GreaterOrEqual(t, g, 0.0)
	}
}

func TestJobMarket(t *testing.T) {
	got := JobMarket([]string{catalog.CareerDoctor, "Astronaut"})
	assert.Equal(t, []Demand{{catalog.CareerDoctor, 90}, {"Astronaut", DefaultDemand}}, got)

	for _, name := range catalog.CareerNames() {
		assert.NotEqual(t, DefaultDemand, demandFor(name), name)
	}
}
