// Package recommend composes the aptitude prediction, interest ranking and
// skill-gap estimate into a single recommendation.
package recommend

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/abhisek/careerquest/internal/aptitude"
	"github.com/abhisek/careerquest/internal/catalog"
	"github.com/abhisek/careerquest/internal/interest"
	"github.com/abhisek/careerquest/internal/locale"
	"github.com/abhisek/careerquest/internal/logger"
	qb "github.com/abhisek/careerquest/internal/questionbank"
	"github.com/abhisek/careerquest/internal/scoring"
	"github.com/abhisek/careerquest/internal/skillgap"
)

// Narrative thresholds.
const (
	HighMatchThreshold  = 0.7
	StrongTraitScore    = 80.0
	ActionableGapPoints = 20.0
)

// Request is the input to Compose.
type Request struct {
	Profile   catalog.Profile `json:"profile"`
	Scores    scoring.Vector  `json:"scores"`
	Interests string          `json:"interests"`
	Locale    locale.Locale   `json:"locale"`
}

// RankedCareer is an interest match with its narrative label.
type RankedCareer struct {
	interest.Match
	High  bool   `json:"high"`
	Label string `json:"label"`
}

// Gap is a skill gap worth acting on.
type Gap struct {
	Skill  string  `json:"skill"`
	Points float64 `json:"points"`
	Tip    string  `json:"tip"`
}

// Recommendation is recomputed per request and never stored.
type Recommendation struct {
	Predicted  string             `json:"predicted"`
	Careers    []RankedCareer     `json:"careers"`
	Strong     bool               `json:"strong"`
	Trait      string             `json:"trait"`
	Gaps       map[string]float64 `json:"gaps"`
	Actionable []Gap              `json:"actionable_gaps"`
	JobMarket  []Demand           `json:"job_market"`
	Scores     scoring.Vector     `json:"scores"`
}

// Narrative renders the recommendation as display lines in l.
func (r *Recommendation) Narrative(l locale.Locale) []string {
	lines := []string{locale.T(l, locale.KeyRecommendedCareers) + ":"}
	for _, c := range r.Careers {
		lines = append(lines, fmt.Sprintf("  %s: %s!", c.Career, c.Label))
	}
	lines = append(lines, "", locale.T(l, locale.KeyTraits)+":", "  "+r.Trait)
	if len(r.Actionable) > 0 {
		lines = append(lines, "", locale.T(l, locale.KeySkillGaps)+":")
		for _, g := range r.Actionable {
			lines = append(lines, fmt.Sprintf("  %s: %s %s!", capitalize(g.Skill), locale.T(l, locale.KeyGapImprove), g.Tip))
		}
	}
	return lines
}

// Predictor is the aptitude stage.
type Predictor interface {
	Predict(ctx context.Context, scores scoring.Vector, p catalog.Profile) (string, error)
}

// Ranker is the interest stage.
type Ranker interface {
	Rank(ctx context.Context, text string, scores scoring.Vector, p catalog.Profile) ([]interest.Match, error)
}

// GapEstimator is the skill-gap stage.
type GapEstimator interface {
	Gaps(ctx context.Context, career string, scores scoring.Vector) (map[string]float64, error)
}

var (
	_ Predictor    = (*aptitude.Classifier)(nil)
	_ Ranker       = (*interest.Matcher)(nil)
	_ GapEstimator = (*skillgap.Estimator)(nil)
)

// Composer is the RecommendationComposer.
type Composer struct {
	aptitude Predictor
	interest Ranker
	gaps     GapEstimator
	log      *zap.Logger
}

// NewComposer wires the three stages. log may be nil.
func NewComposer(a Predictor, i Ranker, g GapEstimator, log *zap.Logger) *Composer {
	return &Composer{aptitude: a, interest: i, gaps: g, log: logger.Named(log, "recommend")}
}

// NoValidInterestsError carries the localized message for
// interest.ErrNoValidInterests.
type NoValidInterestsError struct {
	Message string
}

func (e *NoValidInterestsError) Error() string { return e.Message }

func (e *NoValidInterestsError) Unwrap() error { return interest.ErrNoValidInterests }

// Compose validates the request, drops scores for categories the profile
// does not use, then runs aptitude, interest and skill-gap stages in order.
func (c *Composer) Compose(ctx context.Context, req Request) (*Recommendation, error) {
	p := req.Profile.Normalize()
	if err := p.Validate(); err != nil {
		return nil, err
	}
	noValid := &NoValidInterestsError{Message: locale.T(req.Locale, locale.KeyNoValidInterests)}
	if interest.Clean(req.Interests) == "" {
		return nil, noValid
	}

	allowed := catalog.ValidCategories(p)
	scores := req.Scores.Clamp().Filter(func(cat qb.Category) bool {
		return slices.Contains(allowed, cat)
	})

	predicted, err := c.aptitude.Predict(ctx, scores, p)
	if err != nil {
		return nil, err
	}

	matches, err := c.interest.Rank(ctx, req.Interests, scores, p)
	if errors.Is(err, interest.ErrNoValidInterests) {
		return nil, noValid
	}
	if err != nil {
		return nil, err
	}

	gaps, err := c.gaps.Gaps(ctx, predicted, scores)
	if err != nil {
		return nil, err
	}

	rec := &Recommendation{
		Predicted: predicted,
		Gaps:      gaps,
		Scores:    scores,
		Strong:    scores.Any(func(s float64) bool { return s > StrongTraitScore }),
	}

	names := make([]string, 0, len(matches))
	for _, m := range matches {
		high := m.Similarity > HighMatchThreshold
		label := locale.T(req.Locale, locale.KeyGoodMatch)
		if high {
			label = locale.T(req.Locale, locale.KeyHighMatch)
		}
		rec.Careers = append(rec.Careers, RankedCareer{Match: m, High: high, Label: label})
		names = append(names, m.Career)
	}

	if rec.Strong {
		rec.Trait = locale.T(req.Locale, locale.KeyTraitStrong)
	} else {
		rec.Trait = locale.T(req.Locale, locale.KeyTraitBalanced)
	}

	for _, skill := range skillgap.Skills() {
		g, ok := gaps[skill]
		if !ok || g <= ActionableGapPoints {
			continue
		}
		tip := locale.T(req.Locale, locale.KeyGapTipDefault)
		if skill == skillgap.SkillTechnical {
			tip = locale.T(req.Locale, locale.KeyGapTipTechnical)
		}
		rec.Actionable = append(rec.Actionable, Gap{Skill: skill, Points: g, Tip: tip})
	}

	rec.JobMarket = JobMarket(names)

	c.log.Info("recommendation composed",
		zap.String("profile", p.Key()),
		zap.String("predicted", predicted),
		zap.Strings("careers", names),
		zap.Int("actionable_gaps", len(rec.Actionable)))
	return rec, nil
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
