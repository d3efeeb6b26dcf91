// Package aptitude predicts a career label from a score vector using a
// classification oracle.
package aptitude

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/abhisek/careerquest/internal/catalog"
	"github.com/abhisek/careerquest/internal/logger"
	"github.com/abhisek/careerquest/internal/oracle"
	qb "github.com/abhisek/careerquest/internal/questionbank"
	"github.com/abhisek/careerquest/internal/scoring"
)

// FeatureFor returns the feature column a category feeds. Categories without
// a trained feature report false and are ignored.
func FeatureFor(c qb.Category) (string, bool) {
	switch c {
	case qb.CategoryMath:
		return oracle.ColMath, true
	case qb.CategoryBiology:
		return oracle.ColBiology, true
	case qb.CategoryPhysics:
		return oracle.ColPhysics, true
	case qb.CategoryChemistry:
		return oracle.ColChemistry, true
	case qb.CategoryVerbal:
		return oracle.ColVerbal, true
	case qb.CategoryAnalytical, qb.CategoryAccounting:
		return oracle.ColAnalytical, true
	case qb.CategoryExtra, qb.CategoryActivity:
		return oracle.ColCommunication, true
	case qb.CategoryCoding:
		return oracle.ColTechnical, true
	default:
		return "", false
	}
}

// Features builds the classifier input in oracle.FeatureColumns order.
// Unmapped columns are 0; a column fed by several categories takes the
// highest score.
func Features(v scoring.Vector) []float64 {
	out := make([]float64, len(oracle.FeatureColumns))
	for c, score := range v {
		col, ok := FeatureFor(c)
		if !ok {
			continue
		}
		i := slices.Index(oracle.FeatureColumns, col)
		out[i] = max(out[i], score)
	}
	return out
}

// SkillName strips the column suffix: "technical_score" -> "technical".
func SkillName(column string) string {
	return strings.TrimSuffix(column, "_score")
}

// SkillScores returns the user's score per skill column, keyed by SkillName,
// read from the same features the classifier sees.
func SkillScores(v scoring.Vector) map[string]float64 {
	f := Features(v)
	out := make(map[string]float64, len(oracle.SkillColumns))
	for _, col := range oracle.SkillColumns {
		out[SkillName(col)] = f[slices.Index(oracle.FeatureColumns, col)]
	}
	return out
}

// Classifier is the AptitudeClassifier.
type Classifier struct {
	oracle oracle.Classifier
	log    *zap.Logger
}

// New wraps a classification oracle. log may be nil.
func New(c oracle.Classifier, log *zap.Logger) *Classifier {
	return &Classifier{oracle: c, log: logger.Named(log, "aptitude")}
}

// Predict returns the career label for scores. The profile is logged for
// context only; the model sees the feature vector alone.
func (c *Classifier) Predict(ctx context.Context, scores scoring.Vector, p catalog.Profile) (string, error) {
	features := Features(scores)

	idx, err := c.oracle.Predict(ctx, features)
	if err != nil {
		return "", fmt.Errorf("predict aptitude: %w", oracle.Unavailable(oracle.NameClassifier, err))
	}
	label, err := c.oracle.Decode(idx)
	if err != nil {
		return "", fmt.Errorf("decode aptitude: %w", oracle.Unavailable(oracle.NameClassifier, err))
	}

	c.log.Debug("aptitude predicted",
		zap.String("profile", p.Key()),
		zap.Float64s("features", features),
		zap.String("career", label))
	return label, nil
}
