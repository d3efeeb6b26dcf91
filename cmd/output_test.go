package cmd

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/careerquest/internal/locale"
	qb "github.com/abhisek/careerquest/internal/questionbank"
	"github.com/abhisek/careerquest/internal/recommend"
	"github.com/abhisek/careerquest/internal/scoring"
	"github.com/abhisek/careerquest/internal/session"
)

func TestDemandBar(t *testing.T) {
	tests := []struct {
		demand float64
		want   string
	}{
		{0, "░░░░░░░░░░"},
		{50, "█████░░░░░"},
		{100, "██████████"},
		{140, "██████████"},
		{-5, "░░░░░░░░░░"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, demandBar(tt.demand, 10), "demand %v", tt.demand)
	}
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	sum := &session.Summary{
		SessionID: "s1",
		Duration:  time.Minute,
		Results: []session.CategoryResult{
			{Category: qb.CategoryPhysics, Questions: 5, Answered: 4, Score: 80},
		},
	}
	printSummary(&buf, sum, scoring.Vector{qb.CategoryPhysics: 80}, locale.English)

	out := buf.String()
	assert.Contains(t, out, locale.T(locale.English, locale.KeyQuizCompleted))
	assert.Contains(t, out, qb.CategoryPhysics.DisplayName())
	assert.Contains(t, out, "4/5")
	assert.Contains(t, out, "80.0")
}

func TestPrintRecommendation(t *testing.T) {
	var buf bytes.Buffer
	rec := &recommend.Recommendation{
		Predicted: "Doctor",
		Trait:     "curious",
		JobMarket: []recommend.Demand{{Career: "Doctor", Demand: 90}},
	}
	printRecommendation(&buf, rec, locale.English)

	out := buf.String()
	assert.Contains(t, out, locale.T(locale.English, locale.KeyRecommendedCareers))
	assert.Contains(t, out, locale.T(locale.English, locale.KeyJobMarket))
	assert.Contains(t, out, "Doctor")
	assert.Contains(t, out, " 90")
}
