// Package skillgap estimates how far a user's skill scores fall short of
// what a career typically shows.
package skillgap

import (
	"context"
	"fmt"

	"github.com/abhisek/careerquest/internal/aptitude"
	"github.com/abhisek/careerquest/internal/oracle"
	"github.com/abhisek/careerquest/internal/scoring"
)

// Skill dimensions with a regressor, in report order.
const (
	SkillCommunication = "communication"
	SkillTechnical     = "technical"
	SkillAnalytical    = "analytical"
)

// Skills returns the tracked skills in report order.
func Skills() []string {
	return []string{SkillCommunication, SkillTechnical, SkillAnalytical}
}

// Estimator is the SkillGapEstimator.
type Estimator struct {
	labels     oracle.Labels
	regressors map[string]oracle.Regressor
}

// New builds an estimator. regressors is keyed by skill name (see Skills)
// or by the training column name; every skill must be present.
func New(labels oracle.Labels, regressors map[string]oracle.Regressor) (*Estimator, error) {
	byskill := make(map[string]oracle.Regressor, len(regressors))
	for k, r := range regressors {
		byskill[aptitude.SkillName(k)] = r
	}
	for _, s := range Skills() {
		if _, ok := byskill[s]; !ok {
			return nil, fmt.Errorf("no regressor for skill %q", s)
		}
	}
	return &Estimator{labels: labels, regressors: byskill}, nil
}

// FromModel builds an estimator from a trained centroid model.
func FromModel(m *oracle.CentroidModel) (*Estimator, error) {
	return New(m.Labels(), m.Regressors())
}

// Gaps returns max(0, expected - actual) per skill for career. A career the
// label set does not know uses index 0.
func (e *Estimator) Gaps(ctx context.Context, career string, scores scoring.Vector) (map[string]float64, error) {
	idx, ok := e.labels.Index(career)
	if !ok {
		idx = 0
	}

	actual := aptitude.SkillScores(scores)
	gaps := make(map[string]float64, len(e.regressors))
	for _, skill := range Skills() {
		expected, err := e.regressors[skill].Predict(ctx, idx)
		if err != nil {
			return nil, fmt.Errorf("expected %s score: %w", skill, oracle.Unavailable(oracle.NameRegressor, err))
		}
		gaps[skill] = max(0, expected-actual[skill])
	}
	return gaps, nil
}
