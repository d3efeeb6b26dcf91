package oracle

import (
	"context"
	"hash/fnv"
	"math"
	"strings"
	"unicode"
)

// DefaultHashDims is the vector length used by a zero HashEmbedder.
const DefaultHashDims = 256

// stopwords is a compact English list; Hindi input keeps every token.
var stopwords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "are": {}, "but": {}, "not": {}, "you": {},
	"all": {}, "any": {}, "can": {}, "had": {}, "her": {}, "was": {}, "one": {},
	"our": {}, "out": {}, "has": {}, "him": {}, "his": {}, "how": {}, "its": {},
	"who": {}, "did": {}, "get": {}, "she": {}, "too": {}, "use": {}, "with": {},
	"that": {}, "this": {}, "from": {}, "they": {}, "have": {}, "like": {},
	"love": {}, "want": {}, "into": {}, "very": {}, "also": {}, "some": {},
	"what": {}, "when": {}, "your": {}, "more": {}, "about": {}, "would": {},
	"there": {}, "their": {}, "which": {}, "being": {}, "really": {}, "enjoy": {},
}

// HashEmbedder is a deterministic local embedder: each kept token and its
// character 4-grams are hashed into a fixed number of signed buckets and the
// result is L2-normalized. Tokens are lowercased letter/digit runs longer
// than two runes that are not stopwords.
type HashEmbedder struct {
	Dims int
}

// Encode implements Embedder. It never fails.
func (h HashEmbedder) Encode(_ context.Context, texts ...string) ([][]float64, error) {
	dims := h.Dims
	if dims <= 0 {
		dims = DefaultHashDims
	}

	out := make([][]float64, len(texts))
	for i, t := range texts {
		v := make([]float64, dims)
		for _, tok := range Tokens(t) {
			add(v, tok, 1)
			for _, g := range grams(tok, 4) {
				add(v, g, 0.35)
			}
		}
		normalize(v)
		out[i] = v
	}
	return out, nil
}

// Tokens returns the tokens HashEmbedder keeps for text.
func Tokens(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.Is(unicode.Mn, r) && !unicode.Is(unicode.Mc, r)
	})
	out := fields[:0]
	for _, f := range fields {
		if len([]rune(f)) <= 2 {
			continue
		}
		if _, stop := stopwords[f]; stop {
			continue
		}
		out = append(out, f)
	}
	return out
}

func grams(tok string, n int) []string {
	r := []rune("<" + tok + ">")
	if len(r) <= n {
		return nil
	}
	out := make([]string, 0, len(r)-n+1)
	for i := 0; i+n <= len(r); i++ {
		out = append(out, string(r[i:i+n]))
	}
	return out
}

func add(v []float64, feature string, weight float64) {
	h := fnv.New64a()
	h.Write([]byte(feature))
	sum := h.Sum64()
	idx := int(sum % uint64(len(v)))
	if sum>>63 == 1 {
		weight = -weight
	}
	v[idx] += weight
}

func normalize(v []float64) {
	var n float64
	for _, x := range v {
		n += x * x
	}
	if n == 0 {
		return
	}
	n = math.Sqrt(n)
	for i := range v {
		v[i] /= n
	}
}
