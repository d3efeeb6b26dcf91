package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestGeminiModelMapping(t *testing.T) {
	assert.Equal(t, "gemini-2.0-flash", resolveModel("gemini-flash", geminiModels))
	assert.Equal(t, "gemini-2.0-pro", resolveModel("gemini-pro", geminiModels))
	assert.Equal(t, "gemini-2.5-flash", resolveModel("gemini-2.5-flash", geminiModels))
}

func TestBuildGeminiSchema(t *testing.T) {
	schema := buildGeminiSchema(labelSchema().Definition)

	require.Equal(t, genai.TypeObject, schema.Type)
	require.Contains(t, schema.Properties, "label")
	assert.Equal(t, genai.TypeString, schema.Properties["label"].Type)
	assert.Equal(t, genai.TypeNumber, schema.Properties["confidence"].Type)
	assert.Equal(t, genai.TypeArray, schema.Properties["reasons"].Type)
	assert.Equal(t, genai.TypeString, schema.Properties["reasons"].Items.Type)
	assert.Len(t, schema.Properties["label"].Enum, 3)
	assert.Equal(t, []string{"label"}, schema.Required)
}

func TestNewGeminiProvider_RequiresKey(t *testing.T) {
	_, err := NewGeminiProvider(t.Context(), GeminiConfig{})
	assert.Error(t, err)
}
