package catalog

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	qb "github.com/abhisek/careerquest/internal/questionbank"
)

func allProfiles() []Profile {
	streams := append(Streams(), Stream(""), Stream("Vocational"))
	exams := []Exam{ExamNone, ExamJEE, ExamNEET, ExamCLAT, ExamCAT, ExamSAT, ExamUPSC, ExamGATE, ExamGRE, ExamGMAT, ExamOther, Exam("XAT")}
	degrees := append(Degrees(), DegreeNone, Degree("M.Phil"))

	var out []Profile
	for _, st := range Stages() {
		for _, s := range streams {
			for _, e := range exams {
				for _, d := range degrees {
					out = append(out, Profile{Stage: st, Stream: s, Exam: e, Degree: d})
				}
			}
		}
	}
	return out
}

func TestValidCategories_NeverEmpty(t *testing.T) {
	for _, p := range allProfiles() {
		cats := ValidCategories(p)
		require.NotEmpty(t, cats, "profile %+v", p)
		for _, c := range cats {
			assert.True(t, qb.Known(c), "profile %+v yields unknown category %q", p, c)
		}
	}
}

func TestValidCareers_NeverEmpty(t *testing.T) {
	for _, p := range allProfiles() {
		names := ValidCareers(p)
		require.NotEmpty(t, names, "profile %+v", p)
		for _, n := range names {
			_, ok := Career(n)
			assert.True(t, ok, "unknown career %q", n)
		}
	}
}

func TestValidCategories_Precedence(t *testing.T) {
	tests := []struct {
		name    string
		profile Profile
		want    []qb.Category
	}{
		{
			name:    "stream only",
			profile: Profile{Stage: StageHigherSecondary, Stream: StreamArts, Exam: ExamNone},
			want:    []qb.Category{"verbal", "analytical", "extra", "activity"},
		},
		{
			name:    "exam overrides stream",
			profile: Profile{Stage: StageAfter12th, Stream: StreamArts, Exam: ExamGATE},
			want:    []qb.Category{"coding", "math", "analytical", "verbal"},
		},
		{
			name:    "degree overrides exam",
			profile: Profile{Stage: StagePostGraduation, Stream: StreamPCM, Exam: ExamCAT, Degree: DegreeMBBS},
			want:    []qb.Category{"biology", "extra", "analytical", "verbal"},
		},
		{
			name:    "degree ignored before post-graduation",
			profile: Profile{Stage: StageAfter12th, Stream: StreamCommerce, Exam: ExamNone, Degree: DegreeMBBS},
			want:    []qb.Category{"math", "accounting", "analytical", "verbal", "extra", "activity"},
		},
		{
			name:    "other exam falls back to stream",
			profile: Profile{Stage: StageAfter12th, Stream: StreamPCB, Exam: ExamOther},
			want:    []qb.Category{"biology", "physics", "chemistry", "analytical", "verbal", "extra", "activity"},
		},
		{
			name:    "gre falls back to stream",
			profile: Profile{Stage: StagePostGraduation, Stream: StreamArts, Exam: ExamGRE},
			want:    []qb.Category{"verbal", "analytical", "extra", "activity"},
		},
		{
			name:    "unknown stream uses default list",
			profile: Profile{Stage: StageHigherSecondary, Stream: "Vocational"},
			want:    []qb.Category{"math", "verbal", "analytical", "physics", "chemistry", "extra", "activity"},
		},
		{
			name:    "unknown degree uses default list",
			profile: Profile{Stage: StagePostGraduation, Stream: StreamPCM, Degree: "M.Phil"},
			want:    []qb.Category{"math", "verbal", "analytical", "extra"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidCategories(tt.profile))
		})
	}
}

func TestCategoryAllowed(t *testing.T) {
	p := Profile{Stage: StageHigherSecondary, Stream: StreamPCB}
	assert.True(t, CategoryAllowed(p, qb.CategoryBiology))
	assert.False(t, CategoryAllowed(p, qb.CategoryMath))
	assert.False(t, CategoryAllowed(p, qb.CategoryCoding))
}

func TestValidCareers_Precedence(t *testing.T) {
	tests := []struct {
		name    string
		profile Profile
		want    []string
	}{
		{"pcm", Profile{Stream: StreamPCM}, []string{CareerSoftwareEngineer, CareerMechanicalEngineer, CareerDataScientist}},
		{"neet", Profile{Stream: StreamArts, Exam: ExamNEET}, []string{CareerDoctor, CareerNurse, CareerBiomedical}},
		{"sat", Profile{Stream: StreamPCB, Exam: ExamSAT}, []string{CareerSoftwareEngineer, CareerDataScientist}},
		{"other exam uses stream", Profile{Stream: StreamCommerce, Exam: ExamOther}, []string{CareerMBA, CareerCA}},
		{"unknown stream uses catalog", Profile{Stream: "Vocational"}, CareerNames()},
		{"jee", Profile{Stream: StreamPCB, Exam: ExamJEE}, []string{CareerSoftwareEngineer, CareerMechanicalEngineer}},
		{"gate", Profile{Stream: StreamArts, Exam: ExamGATE}, []string{CareerSoftwareEngineer, CareerDataScientist}},
		{"clat", Profile{Stream: StreamPCM, Exam: ExamCLAT}, []string{CareerLawyer}},
		{"cat", Profile{Stream: StreamPCM, Exam: ExamCAT}, []string{CareerMBA}},
		{"upsc", Profile{Stream: StreamPCM, Exam: ExamUPSC}, []string{CareerCivilServant}},
		{"gre uses stream", Profile{Stream: StreamArts, Exam: ExamGRE}, []string{CareerLawyer, CareerCivilServant}},
		{"pcb", Profile{Stream: StreamPCB, Exam: ExamNone}, []string{CareerDoctor, CareerNurse, CareerBiomedical}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidCareers(tt.profile))
		})
	}
}

func TestParseProfile(t *testing.T) {
	p, err := ParseProfile("post-graduation", "pcm", "gate", "b.tech")
	require.NoError(t, err)
	assert.Equal(t, Profile{Stage: StagePostGraduation, Stream: StreamPCM, Exam: ExamGATE, Degree: DegreeBTech}, p)

	p, err = ParseProfile("9th/10th", "Arts", "JEE", "LLB")
	require.NoError(t, err)
	assert.Equal(t, Profile{Stage: StageSecondary, Stream: StreamPCM, Exam: ExamNone, Degree: DegreeNone}, p)
}

func TestParseProfile_InvalidStage(t *testing.T) {
	_, err := ParseProfile("Kindergarten", "PCM", "", "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfiguration))
}

func TestStageDifficulty(t *testing.T) {
	d, err := StageAfter12th.Difficulty()
	require.NoError(t, err)
	assert.Equal(t, qb.Hard, d)

	_, err = Stage("College").Difficulty()
	assert.True(t, errors.Is(err, ErrInvalidConfiguration))
	assert.True(t, errors.Is(err, qb.ErrInvalidStage))
}

func TestProfileKey_ChangesWithStream(t *testing.T) {
	a := Profile{Stage: StageHigherSecondary, Stream: StreamPCM, Exam: ExamNone}
	b := a
	b.Stream = StreamPCB
	assert.NotEqual(t, a.Key(), b.Key())
	assert.Equal(t, a.Key(), a.Normalize().Key())
}

func TestAllowedExams(t *testing.T) {
	assert.Empty(t, AllowedExams(StageSecondary))
	assert.Contains(t, AllowedExams(StageAfter12th), ExamNEET)
	assert.Contains(t, AllowedExams(StagePostGraduation), ExamGMAT)
	assert.NotContains(t, AllowedExams(StagePostGraduation), ExamNEET)
}

func TestCareersReturnsCopy(t *testing.T) {
	cs := Careers()
	cs[0].Name = "changed"
	assert.Equal(t, CareerDoctor, Careers()[0].Name)
}

func TestCareerValidForTagsAreKnown(t *testing.T) {
	known := map[string]bool{}
	for _, s := range Streams() {
		known[string(s)] = true
	}
	for _, st := range Stages() {
		for _, e := range AllowedExams(st) {
			known[string(e)] = true
		}
	}
	for _, c := range Careers() {
		require.NotEmpty(t, c.ValidFor, c.Name)
		for _, tag := range c.ValidFor {
			assert.True(t, known[tag], "career %q has unknown tag %q", c.Name, tag)
		}
		// Every career is reachable from at least one of its own tags.
		reachable := false
		for _, tag := range c.ValidFor {
			if slices.Contains(ValidCareers(Profile{Stream: Stream(tag), Exam: Exam(tag)}), c.Name) {
				reachable = true
			}
		}
		assert.True(t, reachable, c.Name)
	}
}
