package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Locale
	}{
		{"en", English},
		{"hi", Hindi},
		{" HI ", Hindi},
		{"Hindi", Hindi},
		{"fr", English},
		{"", English},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Parse(tt.in), "Parse(%q)", tt.in)
	}
}

func TestT_FallsBackToDefaultLocale(t *testing.T) {
	// Hindi has no entry for the match labels.
	assert.False(t, Has(Hindi, KeyHighMatch))
	assert.Equal(t, "High match", T(Hindi, KeyHighMatch))
}

func TestT_UnknownLocaleUsesDefault(t *testing.T) {
	assert.Equal(t, T(English, KeyTitle), T(Locale("xx"), KeyTitle))
}

func TestT_UnknownKeyReturnsKey(t *testing.T) {
	assert.Equal(t, "no_such_key", T(English, "no_such_key"))
}

func TestT_Localized(t *testing.T) {
	assert.Equal(t, "कृपया वैध रुचियां प्रदान करें।", T(Hindi, KeyNoValidInterests))
	assert.Equal(t, "Please provide valid interests.", T(English, KeyNoValidInterests))
}

func TestEveryHindiKeyExistsInEnglish(t *testing.T) {
	for key := range table[Hindi] {
		assert.True(t, Has(English, key), "english table missing %q", key)
	}
}
