package questionbank

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/careerquest/internal/locale"
)

func TestValidate_SeedBankPasses(t *testing.T) {
	require.NoError(t, Validate())
}

func TestSize(t *testing.T) {
	assert.Equal(t, 40, Size())
}

func TestDifficultyForStage(t *testing.T) {
	tests := []struct {
		stage string
		want  Difficulty
	}{
		{"9th/10th", Easy},
		{"11th/12th", Medium},
		{"After 12th", Hard},
		{"Post-Graduation", Advanced},
	}
	for _, tt := range tests {
		t.Run(tt.stage, func(t *testing.T) {
			got, err := DifficultyForStage(tt.stage)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDifficultyForStage_Unknown(t *testing.T) {
	_, err := DifficultyForStage("College")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidStage))
}

func TestLookup_SeededMathEasy(t *testing.T) {
	d, err := DifficultyForStage("9th/10th")
	require.NoError(t, err)

	qs := Lookup(CategoryMath, d)
	require.Len(t, qs, 1)
	assert.Equal(t, "m1", qs[0].BaseID)
	assert.Equal(t, []string{"12"}, qs[0].Correct)
	assert.Equal(t, Single, qs[0].Kind)
}

func TestLookup_UnknownPairIsEmpty(t *testing.T) {
	assert.Empty(t, Lookup(Category("astrology"), Easy))
	assert.Empty(t, Lookup(CategoryMath, Difficulty(9)))
}

func TestLookup_ReturnsCopy(t *testing.T) {
	qs := Lookup(CategoryMath, Easy)
	qs[0] = Question{BaseID: "changed"}
	assert.Equal(t, "m1", Lookup(CategoryMath, Easy)[0].BaseID)
}

func TestTextFor_FallsBackToEnglish(t *testing.T) {
	q := Question{Text: map[locale.Locale]string{locale.English: "hello"}}
	assert.Equal(t, "hello", q.TextFor(locale.Hindi))

	hi := Lookup(CategoryMath, Easy)[0].TextFor(locale.Hindi)
	assert.Equal(t, "5 + 7 क्या है?", hi)
}

func TestCategoryDisplayName(t *testing.T) {
	assert.Equal(t, "Math", CategoryMath.DisplayName())
	assert.Equal(t, "General Knowledge", CategoryExtra.DisplayName())
	assert.Equal(t, "", Category("").DisplayName())
}

func TestValidateBank_DetectsProblems(t *testing.T) {
	bad := map[Category]map[Difficulty][]Question{
		CategoryMath: {
			Easy: {
				{BaseID: "x1", Text: map[locale.Locale]string{locale.English: "a"}, Options: []string{"1", "2"}, Correct: []string{"3"}},
				{BaseID: "x1", Text: map[locale.Locale]string{locale.English: "b"}, Options: []string{"1", "2"}, Correct: []string{"1", "2"}},
			},
		},
	}
	err := validateBank(bad)
	require.Error(t, err)

	msg := err.Error()
	for _, want := range []string{
		"duplicate base ID",
		"is not an option",
		"has 2 correct answers",
		`category "biology" has no questions`,
		"has no medium questions",
	} {
		assert.True(t, strings.Contains(msg, want), "missing %q in:\n%s", want, msg)
	}
}

func TestValidateBank_MultipleNeedsAnswer(t *testing.T) {
	errs := validateQuestion(CategoryMath, Easy, Question{
		BaseID:  "mx",
		Text:    map[locale.Locale]string{locale.English: "pick"},
		Options: []string{"A", "B"},
		Kind:    Multiple,
	})
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "no correct answers")
}
