package interests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/careerquest/internal/catalog"
	"github.com/abhisek/careerquest/internal/locale"
	qb "github.com/abhisek/careerquest/internal/questionbank"
	"github.com/abhisek/careerquest/internal/router"
	"github.com/abhisek/careerquest/internal/scoring"
	"github.com/abhisek/careerquest/internal/screens/screentest"
)

var profile = catalog.Profile{Stage: catalog.StageSecondary, Stream: catalog.StreamPCM, Exam: catalog.ExamNone}

func TestInterests_ComposesAndShowsResult(t *testing.T) {
	svc, _ := screentest.Services(t)
	s := New(svc, profile, scoring.Vector{qb.CategoryMath: 90, qb.CategoryPhysics: 80})

	screentest.Feed(s, screentest.Keys("coding software computers")...)
	_, cmd := s.Update(screentest.Enter)
	require.NotNil(t, cmd)
	assert.True(t, s.busy)
	assert.Contains(t, s.View(100, 20), "Thinking...")

	msg := cmd()
	require.IsType(t, composedMsg{}, msg)
	require.NoError(t, msg.(composedMsg).Err)

	_, next := s.Update(msg)
	require.NotNil(t, next)
	replace, ok := next().(router.ReplaceScreenMsg)
	require.True(t, ok)
	assert.Equal(t, "Your Career Recommendation", replace.Screen.Title())
}

func TestInterests_BlankInputAsksToComplete(t *testing.T) {
	svc, _ := screentest.Services(t)
	s := New(svc, profile, scoring.Vector{qb.CategoryMath: 50})

	_, cmd := s.Update(screentest.Enter)
	assert.Nil(t, cmd)
	assert.Equal(t, locale.T(locale.English, locale.KeyCompleteFields), s.errMsg)
}

func TestInterests_PunctuationOnlyShowsLocalizedError(t *testing.T) {
	svc, _ := screentest.Services(t)
	svc.Locale = locale.Hindi
	s := New(svc, profile, scoring.Vector{qb.CategoryMath: 50})

	screentest.Feed(s, screentest.Keys("!!! ???")...)
	_, cmd := s.Update(screentest.Enter)
	require.NotNil(t, cmd)

	_, next := s.Update(cmd())
	assert.Nil(t, next)
	assert.Equal(t, locale.T(locale.Hindi, locale.KeyNoValidInterests), s.errMsg)
	assert.False(t, s.busy)
}
