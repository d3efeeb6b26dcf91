// Package questionbank is the static, versioned catalog of aptitude quiz
// questions keyed by category and difficulty.
package questionbank

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/abhisek/careerquest/internal/locale"
)

// Version identifies the bank content. Bump the minor version when questions
// are added and the major version when base IDs change meaning.
const Version = "v1.0.0"

// ErrInvalidStage is returned for an academic stage outside the known set.
var ErrInvalidStage = errors.New("invalid academic stage")

// Category names a skill dimension scored by the quiz or the sliders.
type Category string

const (
	CategoryMath       Category = "math"
	CategoryBiology    Category = "biology"
	CategoryPhysics    Category = "physics"
	CategoryChemistry  Category = "chemistry"
	CategoryVerbal     Category = "verbal"
	CategoryAnalytical Category = "analytical"
	CategoryExtra      Category = "extra"
	CategoryAccounting Category = "accounting"
	CategoryCoding     Category = "coding"
	CategoryActivity   Category = "activity"
)

// Categories returns every category the bank knows, in display order.
func Categories() []Category {
	return []Category{
		CategoryMath,
		CategoryBiology,
		CategoryPhysics,
		CategoryChemistry,
		CategoryVerbal,
		CategoryAnalytical,
		CategoryExtra,
		CategoryAccounting,
		CategoryCoding,
		CategoryActivity,
	}
}

// DisplayName returns a capitalized label for the category.
func (c Category) DisplayName() string {
	switch c {
	case CategoryExtra:
		return "General Knowledge"
	case "":
		return ""
	default:
		s := string(c)
		return strings.ToUpper(s[:1]) + s[1:]
	}
}

// Difficulty is a question difficulty level.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Advanced
)

// Difficulties returns all difficulty levels in ascending order.
func Difficulties() []Difficulty {
	return []Difficulty{Easy, Medium, Hard, Advanced}
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	case Advanced:
		return "advanced"
	default:
		return fmt.Sprintf("difficulty(%d)", int(d))
	}
}

// Academic stage labels. They are duplicated in the catalog package as a
// typed enum; the bank only needs the difficulty mapping.
const (
	StageSecondary       = "9th/10th"
	StageHigherSecondary = "11th/12th"
	StageAfter12th       = "After 12th"
	StagePostGraduation  = "Post-Graduation"
)

// DifficultyForStage maps an academic stage to the question difficulty.
func DifficultyForStage(stage string) (Difficulty, error) {
	switch stage {
	case StageSecondary:
		return Easy, nil
	case StageHigherSecondary:
		return Medium, nil
	case StageAfter12th:
		return Hard, nil
	case StagePostGraduation:
		return Advanced, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidStage, stage)
	}
}

// Kind distinguishes single-answer from multi-select questions.
type Kind int

const (
	Single Kind = iota
	Multiple
)

func (k Kind) String() string {
	if k == Multiple {
		return "multiple"
	}
	return "single"
}

// Question is an immutable bank entry.
type Question struct {
	BaseID  string
	Text    map[locale.Locale]string
	Options []string
	Correct []string
	Kind    Kind
}

// TextFor returns the question text in l, falling back to the default locale.
func (q Question) TextFor(l locale.Locale) string {
	if s, ok := q.Text[l]; ok && s != "" {
		return s
	}
	return q.Text[locale.Default]
}

// IsCorrectOption reports whether opt is one of the correct answers.
func (q Question) IsCorrectOption(opt string) bool {
	return slices.Contains(q.Correct, opt)
}

// Lookup returns the questions for a category and difficulty. Unknown pairs
// return nil. The returned slice is a copy; the questions themselves must be
// treated as read-only.
func Lookup(c Category, d Difficulty) []Question {
	byDifficulty, ok := bank[c]
	if !ok {
		return nil
	}
	return slices.Clone(byDifficulty[d])
}

// Known reports whether c is a bank category.
func Known(c Category) bool {
	_, ok := bank[c]
	return ok
}

// Size returns the total number of questions in the bank.
func Size() int {
	n := 0
	for _, byDifficulty := range bank {
		for _, qs := range byDifficulty {
			n += len(qs)
		}
	}
	return n
}
