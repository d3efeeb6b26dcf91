// Package interest ranks the career catalog against free-text interests by
// embedding similarity.
package interest

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/abhisek/careerquest/internal/catalog"
	"github.com/abhisek/careerquest/internal/logger"
	"github.com/abhisek/careerquest/internal/oracle"
	"github.com/abhisek/careerquest/internal/scoring"
)

// ErrNoValidInterests means the interest text is empty after cleaning. It is
// an input condition, not a fault.
var ErrNoValidInterests = errors.New("no valid interests")

// MaxMatches is the length cap of a ranking.
const MaxMatches = 3

// MaxSentences is how many sentences Clean keeps.
const MaxSentences = 5

var disallowed = regexp.MustCompile(`[^\p{L}\p{M}\p{N}_\s.,]`)

// Clean strips everything but word characters, whitespace, periods and
// commas, keeps the first MaxSentences non-empty sentences, and joins them
// with ". " plus a trailing period. It returns "" when nothing survives.
func Clean(text string) string {
	text = disallowed.ReplaceAllString(text, "")

	var sentences []string
	for _, s := range strings.Split(text, ".") {
		s = strings.TrimSpace(s)
		if s == "" || strings.Trim(s, ", \t\r\n") == "" {
			continue
		}
		sentences = append(sentences, s)
		if len(sentences) == MaxSentences {
			break
		}
	}
	if len(sentences) == 0 {
		return ""
	}
	return strings.Join(sentences, ". ") + "."
}

// Match is one ranked career.
type Match struct {
	Career     string  `json:"career"`
	Similarity float64 `json:"similarity"`
}

// Matcher is the InterestMatcher. Career description embeddings are
// computed once per matcher and reused.
type Matcher struct {
	embedder oracle.Embedder
	log      *zap.Logger

	mu       sync.Mutex
	profiles map[string][]float64
}

// NewMatcher builds a matcher over the career catalog. log may be nil.
func NewMatcher(e oracle.Embedder, log *zap.Logger) *Matcher {
	return &Matcher{embedder: e, log: logger.Named(log, "interest")}
}

// Rank returns up to MaxMatches careers from catalog.ValidCareers(p),
// ordered by descending similarity to the cleaned interests (ties by name).
// scores is accepted for parity with the other pipeline stages and does not
// change the ranking. ErrNoValidInterests is returned without calling the
// embedder when the text cleans to nothing.
func (m *Matcher) Rank(ctx context.Context, text string, scores scoring.Vector, p catalog.Profile) ([]Match, error) {
	cleaned := Clean(text)
	if cleaned == "" {
		return nil, ErrNoValidInterests
	}

	valid := catalog.ValidCareers(p)
	profiles, err := m.careerVectors(ctx, valid)
	if err != nil {
		return nil, err
	}

	vecs, err := m.embedder.Encode(ctx, cleaned)
	if err != nil {
		return nil, fmt.Errorf("embed interests: %w", oracle.Unavailable(oracle.NameEmbedder, err))
	}
	if len(vecs) != 1 {
		return nil, oracle.Unavailable(oracle.NameEmbedder, fmt.Errorf("got %d vectors for 1 text", len(vecs)))
	}

	matches := make([]Match, 0, len(valid))
	for _, name := range valid {
		matches = append(matches, Match{
			Career:     name,
			Similarity: oracle.CosineSimilarity(vecs[0], profiles[name]),
		})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Similarity != matches[j].Similarity {
			return matches[i].Similarity > matches[j].Similarity
		}
		return matches[i].Career < matches[j].Career
	})
	if len(matches) > MaxMatches {
		matches = matches[:MaxMatches]
	}

	m.log.Debug("interests ranked",
		zap.String("interests", logger.TruncateForLog(cleaned, 80)),
		zap.Int("candidates", len(valid)),
		zap.Any("matches", matches))
	return matches, nil
}

// careerVectors returns embeddings for the named careers, encoding the
// missing ones in one batch.
func (m *Matcher) careerVectors(ctx context.Context, names []string) (map[string][]float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.profiles == nil {
		m.profiles = make(map[string][]float64)
	}

	var missing, texts []string
	for _, name := range names {
		if _, ok := m.profiles[name]; ok {
			continue
		}
		c, ok := catalog.Career(name)
		if !ok {
			return nil, fmt.Errorf("career %q is not in the catalog", name)
		}
		missing = append(missing, name)
		texts = append(texts, c.Description)
	}

	if len(missing) > 0 {
		vecs, err := m.embedder.Encode(ctx, texts...)
		if err != nil {
			return nil, fmt.Errorf("embed career profiles: %w", oracle.Unavailable(oracle.NameEmbedder, err))
		}
		if len(vecs) != len(missing) {
			return nil, oracle.Unavailable(oracle.NameEmbedder, fmt.Errorf("got %d vectors for %d texts", len(vecs), len(missing)))
		}
		for i, name := range missing {
			m.profiles[name] = vecs[i]
		}
	}

	out := make(map[string][]float64, len(names))
	for _, name := range names {
		out[name] = m.profiles[name]
	}
	return out, nil
}
