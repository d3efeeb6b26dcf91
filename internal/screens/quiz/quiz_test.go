package quiz

import (
	"fmt"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/careerquest/internal/catalog"
	"github.com/abhisek/careerquest/internal/router"
	"github.com/abhisek/careerquest/internal/screen"
	"github.com/abhisek/careerquest/internal/screens/screentest"
)

var secondary = catalog.Profile{Stage: catalog.StageSecondary, Stream: catalog.StreamPCM, Exam: catalog.ExamNone}

func open(t *testing.T, svc *screen.Services, p catalog.Profile) *QuizScreen {
	t.Helper()
	q := New(svc, p)
	cmd := q.Init()
	require.NotNil(t, cmd)
	q.Update(cmd())
	require.Empty(t, q.errMsg)
	require.NotNil(t, q.Session())
	return q
}

// answerAll presses Enter until the quiz hands over to the summary.
func answerAll(t *testing.T, q *QuizScreen) router.ReplaceScreenMsg {
	t.Helper()
	for range q.Session().InstanceCount() + 1 {
		_, cmd := q.Update(screentest.Enter)
		if cmd == nil {
			continue
		}
		msg, ok := cmd().(router.ReplaceScreenMsg)
		require.True(t, ok)
		return msg
	}
	t.Fatal("quiz did not complete")
	return router.ReplaceScreenMsg{}
}

func TestQuiz_AnswersEveryQuestionThenSummarizes(t *testing.T) {
	svc, _ := screentest.Services(t)
	q := open(t, svc, secondary)

	view := q.View(100, 30)
	assert.Contains(t, view, "Category 1/")
	assert.Contains(t, view, "Question 1/")

	msg := answerAll(t, q)
	assert.Equal(t, "Aptitude Test", msg.Screen.Title())

	s := q.Session()
	assert.True(t, s.Completed())
	assert.Equal(t, s.InstanceCount(), s.AnsweredCount())
	assert.Len(t, s.Scores, len(s.Order))
}

func TestQuiz_ResumesUnfinishedSession(t *testing.T) {
	svc, _ := screentest.Services(t)
	first := open(t, svc, secondary)
	first.Update(screentest.Enter)
	require.Equal(t, 1, first.Session().AnsweredCount())

	again := open(t, svc, secondary)
	assert.Equal(t, first.Session().ID, again.Session().ID)
	assert.True(t, again.resumed)
	assert.Equal(t, 1, again.cursor, "cursor skips the answered question")
}

func TestQuiz_CompletedSessionStartsFresh(t *testing.T) {
	svc, _ := screentest.Services(t)
	first := open(t, svc, secondary)
	answerAll(t, first)

	again := open(t, svc, secondary)
	assert.NotEqual(t, first.Session().ID, again.Session().ID)
	assert.False(t, again.Session().Completed())
}

func TestQuiz_IgnoresKeysAfterCompletion(t *testing.T) {
	svc, _ := screentest.Services(t)
	q := open(t, svc, secondary)
	answerAll(t, q)

	_, cmd := q.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Nil(t, cmd)
}

func TestQuiz_KeyHintsMentionToggleForMultiSelect(t *testing.T) {
	svc, _ := screentest.Services(t)
	q := open(t, svc, secondary)
	q.picker.Multiple = true

	var keys []string
	for _, h := range q.KeyHints() {
		keys = append(keys, h.Key)
	}
	assert.Contains(t, keys, "Space")
}

func TestQuiz_StatusCountsAnswers(t *testing.T) {
	svc, _ := screentest.Services(t)
	q := New(svc, secondary)
	assert.Empty(t, q.Status(), "no session yet")

	q.Update(q.Init()())
	total := q.Session().InstanceCount()
	assert.Equal(t, fmt.Sprintf("0/%d", total), q.Status())

	q.Update(screentest.Enter)
	assert.Equal(t, fmt.Sprintf("1/%d", total), q.Status())
}
