// Package domains matches free-text goals and aptitude scores against a
// fixed knowledge base of career domains.
package domains

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/abhisek/careerquest/internal/locale"
	"github.com/abhisek/careerquest/internal/logger"
	"github.com/abhisek/careerquest/internal/oracle"
)

// TopDomains is the number of domains kept after matching.
const TopDomains = 3

// MaxCareerPaths caps the career paths in a recommendation.
const MaxCareerPaths = 5

var (
	// ErrNoGoals is returned when the goals text is blank.
	ErrNoGoals = errors.New("goals text is empty")

	// ErrNoRecommendations is returned when no domain yields a career.
	ErrNoRecommendations = errors.New("no career recommendations found")
)

// Profile is the learner description used for domain exploration.
type Profile struct {
	Name           string             `json:"name"`
	Age            int                `json:"age"`
	EducationLevel string             `json:"education_level"`
	Subjects       []string           `json:"subjects"`
	Interests      []string           `json:"interests"`
	Skills         []string           `json:"skills"`
	Goals          string             `json:"goals_text"`
	Aptitude       map[string]float64 `json:"aptitude_scores"`
	Language       locale.Locale      `json:"preferred_language"`
}

// Pathway lists what a learner is missing for a domain.
type Pathway struct {
	MissingSkills    []string `json:"missing_skills"`
	SuggestedCourses []string `json:"suggested_courses"`
}

// Result is the outcome of Recommend.
type Result struct {
	Domains       []string            `json:"recommended_domains"`
	CareerPaths   []string            `json:"career_paths"`
	Pathways      map[string]Pathway  `json:"learning_pathways"`
	ExamAlignment map[string][]string `json:"exam_alignment"`
	Language      locale.Locale       `json:"language_support"`
}

// Explorer ranks domains. Domain embeddings are computed on first use.
type Explorer struct {
	embedder oracle.Embedder
	log      *zap.Logger

	mu      sync.Mutex
	vectors [][]float64
}

// NewExplorer returns an explorer over the built-in knowledge base. log may
// be nil.
func NewExplorer(e oracle.Embedder, log *zap.Logger) *Explorer {
	return &Explorer{embedder: e, log: logger.Named(log, "domains")}
}

// Top returns up to TopDomains domain names: the closest matches to goals by
// embedding similarity, re-ordered by descending aptitude match. Equal
// aptitude keeps the similarity order.
func (x *Explorer) Top(ctx context.Context, goals string, aptitude map[string]float64) ([]string, error) {
	goals = strings.TrimSpace(goals)
	if goals == "" {
		return nil, ErrNoGoals
	}

	domainVecs, err := x.domainVectors(ctx)
	if err != nil {
		return nil, err
	}
	vecs, err := x.embedder.Encode(ctx, goals)
	if err != nil {
		return nil, fmt.Errorf("embed goals: %w", oracle.Unavailable(oracle.NameEmbedder, err))
	}
	if len(vecs) != 1 {
		return nil, oracle.Unavailable(oracle.NameEmbedder, fmt.Errorf("got %d vectors for 1 text", len(vecs)))
	}

	type scored struct {
		domain     Domain
		similarity float64
		aptitude   float64
	}
	ranked := make([]scored, len(knowledge))
	for i, d := range knowledge {
		ranked[i] = scored{domain: d, similarity: oracle.CosineSimilarity(vecs[0], domainVecs[i])}
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].similarity > ranked[j].similarity })
	if len(ranked) > TopDomains {
		ranked = ranked[:TopDomains]
	}

	for i := range ranked {
		ranked[i].aptitude = ranked[i].domain.AptitudeMatch(aptitude)
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].aptitude > ranked[j].aptitude })

	names := make([]string, len(ranked))
	for i, r := range ranked {
		names[i] = r.domain.Name
	}
	x.log.Debug("domains ranked",
		zap.String("goals", logger.TruncateForLog(goals, 80)),
		zap.Strings("domains", names))
	return names, nil
}

// Recommend ranks domains for p and collects the careers, learning pathways
// and exam alignment of each. CareerPaths keeps the first MaxCareerPaths
// careers in domain order.
func (x *Explorer) Recommend(ctx context.Context, p Profile) (*Result, error) {
	top, err := x.Top(ctx, p.Goals, p.Aptitude)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Domains:       top,
		Pathways:      make(map[string]Pathway, len(top)),
		ExamAlignment: make(map[string][]string, len(top)),
		Language:      locale.Parse(string(p.Language)),
	}
	for _, name := range top {
		d, _ := Lookup(name)
		res.CareerPaths = append(res.CareerPaths, d.Careers...)

		missing := d.MissingSkills(p.Skills)
		courses := make([]string, len(missing))
		for i, s := range missing {
			courses[i] = fmt.Sprintf("Learn %s on SWAYAM", s)
		}
		res.Pathways[name] = Pathway{MissingSkills: missing, SuggestedCourses: courses}
		res.ExamAlignment[name] = append([]string(nil), d.Exams...)
	}
	if len(res.CareerPaths) == 0 {
		return nil, ErrNoRecommendations
	}
	if len(res.CareerPaths) > MaxCareerPaths {
		res.CareerPaths = res.CareerPaths[:MaxCareerPaths]
	}

	x.log.Info("domain recommendation composed",
		zap.Strings("domains", res.Domains),
		zap.Int("career_paths", len(res.CareerPaths)))
	return res, nil
}

func (x *Explorer) domainVectors(ctx context.Context) ([][]float64, error) {
	x.mu.Lock()
	defer x.mu.Unlock()
	if x.vectors != nil {
		return x.vectors, nil
	}

	texts := make([]string, len(knowledge))
	for i, d := range knowledge {
		texts[i] = d.Text()
	}
	vecs, err := x.embedder.Encode(ctx, texts...)
	if err != nil {
		return nil, fmt.Errorf("embed domains: %w", oracle.Unavailable(oracle.NameEmbedder, err))
	}
	if len(vecs) != len(texts) {
		return nil, oracle.Unavailable(oracle.NameEmbedder, fmt.Errorf("got %d vectors for %d texts", len(vecs), len(texts)))
	}
	x.vectors = vecs
	return vecs, nil
}
