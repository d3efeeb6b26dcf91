// Package catalog holds the fixed academic track tables: which quiz
// categories apply to a learner profile and which careers are candidates for
// it. Every table is a total lookup with a default arm, so no profile ever
// resolves to an empty list.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/careerquest/internal/questionbank"
)

// ErrInvalidConfiguration is returned for an academic stage outside the
// known set.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Stage is the learner's academic level.
type Stage string

const (
	StageSecondary       Stage = questionbank.StageSecondary
	StageHigherSecondary Stage = questionbank.StageHigherSecondary
	StageAfter12th       Stage = questionbank.StageAfter12th
	StagePostGraduation  Stage = questionbank.StagePostGraduation
)

// Stages returns all stages in progression order.
func Stages() []Stage {
	return []Stage{StageSecondary, StageHigherSecondary, StageAfter12th, StagePostGraduation}
}

// ParseStage matches s against the known stages, ignoring case and
// surrounding space.
func ParseStage(s string) (Stage, error) {
	for _, st := range Stages() {
		if strings.EqualFold(strings.TrimSpace(s), string(st)) {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: unknown stage %q", ErrInvalidConfiguration, s)
}

// Difficulty resolves the question difficulty for the stage.
func (s Stage) Difficulty() (questionbank.Difficulty, error) {
	d, err := questionbank.DifficultyForStage(string(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}
	return d, nil
}

// HasStream reports whether learners at this stage choose a stream.
func (s Stage) HasStream() bool {
	return s != StageSecondary
}

// Stream is the 11th/12th subject track.
type Stream string

const (
	StreamPCM      Stream = "PCM"
	StreamPCB      Stream = "PCB"
	StreamCommerce Stream = "Commerce"
	StreamArts     Stream = "Arts"
)

// Streams returns the known streams in menu order.
func Streams() []Stream {
	return []Stream{StreamPCM, StreamPCB, StreamCommerce, StreamArts}
}

// ParseStream canonicalizes s. Unknown values are kept as-is and resolve
// through the default arm of every table.
func ParseStream(s string) Stream {
	s = strings.TrimSpace(s)
	for _, st := range Streams() {
		if strings.EqualFold(s, string(st)) {
			return st
		}
	}
	return Stream(s)
}

// Exam is a competitive exam track.
type Exam string

const (
	ExamNone  Exam = "None"
	ExamJEE   Exam = "JEE"
	ExamNEET  Exam = "NEET"
	ExamCLAT  Exam = "CLAT"
	ExamCAT   Exam = "CAT"
	ExamSAT   Exam = "SAT"
	ExamUPSC  Exam = "UPSC"
	ExamGATE  Exam = "GATE"
	ExamGRE   Exam = "GRE"
	ExamGMAT  Exam = "GMAT"
	ExamOther Exam = "Other"
)

// ParseExam canonicalizes s. An empty string means no exam.
func ParseExam(s string) Exam {
	s = strings.TrimSpace(s)
	if s == "" {
		return ExamNone
	}
	for _, e := range []Exam{ExamNone, ExamJEE, ExamNEET, ExamCLAT, ExamCAT, ExamSAT, ExamUPSC, ExamGATE, ExamGRE, ExamGMAT, ExamOther} {
		if strings.EqualFold(s, string(e)) {
			return e
		}
	}
	return Exam(s)
}

// IsSet reports whether an exam track was chosen.
func (e Exam) IsSet() bool {
	return e != "" && e != ExamNone
}

// AllowedExams returns the exam choices offered at a stage.
func AllowedExams(s Stage) []Exam {
	switch s {
	case StageHigherSecondary, StageAfter12th:
		return []Exam{ExamNone, ExamJEE, ExamNEET, ExamCLAT, ExamCAT, ExamSAT, ExamUPSC, ExamGATE, ExamOther}
	case StagePostGraduation:
		return []Exam{ExamNone, ExamCAT, ExamGATE, ExamUPSC, ExamGRE, ExamGMAT, ExamOther}
	default:
		return nil
	}
}

// Degree is the undergraduate degree of a post-graduation learner.
type Degree string

const (
	DegreeNone  Degree = ""
	DegreeBTech Degree = "B.Tech"
	DegreeBSc   Degree = "B.Sc"
	DegreeBCom  Degree = "B.Com"
	DegreeBA    Degree = "B.A"
	DegreeBBA   Degree = "BBA"
	DegreeMBBS  Degree = "MBBS"
	DegreeLLB   Degree = "LLB"
	DegreeOther Degree = "Other"
)

// Degrees returns the known degrees in menu order.
func Degrees() []Degree {
	return []Degree{DegreeBTech, DegreeBSc, DegreeBCom, DegreeBA, DegreeBBA, DegreeMBBS, DegreeLLB, DegreeOther}
}

// ParseDegree canonicalizes s. Unknown values are kept as-is.
func ParseDegree(s string) Degree {
	s = strings.TrimSpace(s)
	for _, d := range Degrees() {
		if strings.EqualFold(s, string(d)) {
			return d
		}
	}
	return Degree(s)
}

// Profile is the academic configuration a quiz and a recommendation are
// computed for.
type Profile struct {
	Stage  Stage  `json:"stage"`
	Stream Stream `json:"stream"`
	Exam   Exam   `json:"exam"`
	Degree Degree `json:"degree"`
}

// ParseProfile builds a normalized profile from raw values.
func ParseProfile(stage, stream, exam, degree string) (Profile, error) {
	st, err := ParseStage(stage)
	if err != nil {
		return Profile{}, err
	}
	p := Profile{
		Stage:  st,
		Stream: ParseStream(stream),
		Exam:   ParseExam(exam),
		Degree: ParseDegree(degree),
	}
	return p.Normalize(), nil
}

// Normalize applies the stage rules: 9th/10th learners are on the PCM track
// with no exam, and only post-graduation learners carry a degree.
func (p Profile) Normalize() Profile {
	if p.Stream == "" || !p.Stage.HasStream() {
		p.Stream = StreamPCM
	}
	if p.Exam == "" || !p.Stage.HasStream() {
		p.Exam = ExamNone
	}
	if p.Stage != StagePostGraduation {
		p.Degree = DegreeNone
	}
	return p
}

// Validate checks that the stage is known.
func (p Profile) Validate() error {
	if _, err := ParseStage(string(p.Stage)); err != nil {
		return err
	}
	return nil
}

// Key identifies the configuration. A quiz session is discarded whenever the
// key of its owner's profile changes.
func (p Profile) Key() string {
	return strings.Join([]string{string(p.Stage), string(p.Stream), string(p.Exam), string(p.Degree)}, "|")
}

func (p Profile) String() string {
	var b strings.Builder
	b.WriteString(string(p.Stage))
	if p.Stage.HasStream() {
		b.WriteString(" / " + string(p.Stream))
	}
	if p.Exam.IsSet() {
		b.WriteString(" / " + string(p.Exam))
	}
	if p.Degree != DegreeNone {
		b.WriteString(" / " + string(p.Degree))
	}
	return b.String()
}
