package oracle

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Training data column names.
const (
	ColMath          = "math_score"
	ColBiology       = "biology_score"
	ColPhysics       = "physics_score"
	ColChemistry     = "chemistry_score"
	ColVerbal        = "verbal_score"
	ColAnalytical    = "analytical_score"
	ColCommunication = "communication_score"
	ColTechnical     = "technical_score"
	ColCareer        = "career"
)

// FeatureColumns is the fixed order of the classifier feature vector.
var FeatureColumns = []string{
	ColMath, ColBiology, ColPhysics, ColChemistry,
	ColVerbal, ColAnalytical, ColCommunication, ColTechnical,
}

// SkillColumns are the dimensions with a per-career regressor.
var SkillColumns = []string{ColCommunication, ColTechnical, ColAnalytical}

//go:embed data/career_data.csv
var careerData []byte

// CentroidModel is a nearest-centroid career classifier with per-career
// mean regressors, trained once and read-only afterwards.
type CentroidModel struct {
	labels    Labels
	centroids [][]float64
	skills    map[string][]float64
}

// DefaultModel trains on the bundled career data.
func DefaultModel() (*CentroidModel, error) {
	return TrainCentroids(bytes.NewReader(careerData))
}

// TrainCentroids reads CSV rows with every FeatureColumns column plus
// career, and averages each column per career.
func TrainCentroids(r io.Reader) (*CentroidModel, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	pos := make(map[string]int, len(header))
	for i, h := range header {
		pos[strings.TrimSpace(h)] = i
	}

	var missing []string
	for _, c := range slices.Concat(FeatureColumns, []string{ColCareer}) {
		if _, ok := pos[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing columns: %s", strings.Join(missing, ", "))
	}

	sums := make(map[string][]float64)
	counts := make(map[string]int)
	var names []string

	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		career := strings.TrimSpace(rec[pos[ColCareer]])
		if career == "" {
			return nil, fmt.Errorf("line %d: empty career", line)
		}
		row := make([]float64, len(FeatureColumns))
		for i, c := range FeatureColumns {
			v, err := strconv.ParseFloat(strings.TrimSpace(rec[pos[c]]), 64)
			if err != nil {
				return nil, fmt.Errorf("line %d column %s: %w", line, c, err)
			}
			row[i] = v
		}

		if _, ok := sums[career]; !ok {
			sums[career] = make([]float64, len(FeatureColumns))
			names = append(names, career)
		}
		for i, v := range row {
			sums[career][i] += v
		}
		counts[career]++
	}
	if len(names) == 0 {
		return nil, errors.New("no training rows")
	}

	m := &CentroidModel{
		labels: NewLabels(names),
		skills: make(map[string][]float64, len(SkillColumns)),
	}
	m.centroids = make([][]float64, len(m.labels))
	for i, name := range m.labels {
		c := sums[name]
		for j := range c {
			c[j] /= float64(counts[name])
		}
		m.centroids[i] = c
	}
	for _, skill := range SkillColumns {
		col := columnIndex(skill)
		means := make([]float64, len(m.labels))
		for i := range m.labels {
			means[i] = m.centroids[i][col]
		}
		m.skills[skill] = means
	}
	return m, nil
}

func columnIndex(name string) int {
	for i, c := range FeatureColumns {
		if c == name {
			return i
		}
	}
	return -1
}

// Labels returns the career label set.
func (m *CentroidModel) Labels() Labels {
	return m.labels
}

// Predict returns the index of the nearest centroid. Ties go to the lower
// index.
func (m *CentroidModel) Predict(ctx context.Context, features []float64) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, Unavailable(NameClassifier, err)
	}
	if len(features) != len(FeatureColumns) {
		return 0, fmt.Errorf("feature vector has %d values, want %d", len(features), len(FeatureColumns))
	}

	best, bestDist := 0, math.Inf(1)
	for i, c := range m.centroids {
		var d float64
		for j, v := range features {
			diff := v - c[j]
			d += diff * diff
		}
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, nil
}

// Decode implements Classifier.
func (m *CentroidModel) Decode(index int) (string, error) {
	return m.labels.Name(index)
}

// Regressor returns the expected-score model for a skill column.
func (m *CentroidModel) Regressor(skill string) (Regressor, error) {
	means, ok := m.skills[skill]
	if !ok {
		return nil, fmt.Errorf("no regressor for skill %q", skill)
	}
	return meanRegressor(means), nil
}

// Regressors returns one regressor per SkillColumns entry.
func (m *CentroidModel) Regressors() map[string]Regressor {
	out := make(map[string]Regressor, len(m.skills))
	for skill, means := range m.skills {
		out[skill] = meanRegressor(means)
	}
	return out
}

type meanRegressor []float64

func (r meanRegressor) Predict(ctx context.Context, careerIndex int) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, Unavailable(NameRegressor, err)
	}
	if careerIndex < 0 || careerIndex >= len(r) {
		return 0, fmt.Errorf("career index %d out of range [0, %d)", careerIndex, len(r))
	}
	return r[careerIndex], nil
}
