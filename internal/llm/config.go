package llm

import (
	"fmt"
	"os"
	"time"
)

// Provider names accepted in Config.Provider.
const (
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderMock       = "mock"
)

// Config holds all LLM provider configuration.
type Config struct {
	// Provider is one of the Provider* names.
	Provider string `mapstructure:"provider"`

	Anthropic  AnthropicConfig  `mapstructure:"anthropic"`
	OpenAI     OpenAIConfig     `mapstructure:"openai"`
	Gemini     GeminiConfig     `mapstructure:"gemini"`
	OpenRouter OpenRouterConfig `mapstructure:"openrouter"`
	Retry      RetryConfig      `mapstructure:"retry"`

	// Timeout bounds a single request including retries.
	Timeout time.Duration `mapstructure:"timeout"`
}

// AnthropicConfig holds Anthropic settings.
type AnthropicConfig struct {
	APIKey string `mapstructure:"api-key"`
	Model  string `mapstructure:"model"`
}

// OpenAIConfig holds OpenAI settings.
type OpenAIConfig struct {
	APIKey         string `mapstructure:"api-key"`
	Model          string `mapstructure:"model"`
	EmbeddingModel string `mapstructure:"embedding-model"`
	BaseURL        string `mapstructure:"base-url"`
}

// GeminiConfig holds Gemini settings.
type GeminiConfig struct {
	APIKey         string `mapstructure:"api-key"`
	Model          string `mapstructure:"model"`
	EmbeddingModel string `mapstructure:"embedding-model"`
}

// OpenRouterConfig holds OpenRouter settings.
type OpenRouterConfig struct {
	APIKey  string `mapstructure:"api-key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base-url"`
}

// RetryConfig configures backoff for transient completion failures.
type RetryConfig struct {
	MaxAttempts int           `mapstructure:"max-attempts"`
	InitialWait time.Duration `mapstructure:"initial-wait"`
	MaxWait     time.Duration `mapstructure:"max-wait"`
	Multiplier  float64       `mapstructure:"multiplier"`
}

// DefaultConfig returns the built-in defaults. The OpenRouter model matches
// the free tier the advisor was first built against.
func DefaultConfig() Config {
	return Config{
		Provider:  ProviderOpenRouter,
		Anthropic: AnthropicConfig{Model: "claude-haiku"},
		OpenAI: OpenAIConfig{
			Model:          "gpt-4o-mini",
			EmbeddingModel: "text-embedding-3-small",
		},
		Gemini: GeminiConfig{
			Model:          "gemini-flash",
			EmbeddingModel: "text-embedding-004",
		},
		OpenRouter: OpenRouterConfig{Model: "meta-llama/llama-3.1-8b-instruct:free"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2,
		},
		Timeout: 30 * time.Second,
	}
}

// envOverrides lists the CAREERQUEST_* variables and the field each sets.
func envOverrides(cfg *Config) []struct {
	name   string
	target *string
} {
	return []struct {
		name   string
		target *string
	}{
		{"CAREERQUEST_LLM_PROVIDER", &cfg.Provider},
		{"CAREERQUEST_ANTHROPIC_API_KEY", &cfg.Anthropic.APIKey},
		{"CAREERQUEST_ANTHROPIC_MODEL", &cfg.Anthropic.Model},
		{"CAREERQUEST_OPENAI_API_KEY", &cfg.OpenAI.APIKey},
		{"CAREERQUEST_OPENAI_MODEL", &cfg.OpenAI.Model},
		{"CAREERQUEST_OPENAI_EMBEDDING_MODEL", &cfg.OpenAI.EmbeddingModel},
		{"CAREERQUEST_OPENAI_BASE_URL", &cfg.OpenAI.BaseURL},
		{"CAREERQUEST_GEMINI_API_KEY", &cfg.Gemini.APIKey},
		{"CAREERQUEST_GEMINI_MODEL", &cfg.Gemini.Model},
		{"CAREERQUEST_GEMINI_EMBEDDING_MODEL", &cfg.Gemini.EmbeddingModel},
		{"CAREERQUEST_OPENROUTER_API_KEY", &cfg.OpenRouter.APIKey},
		{"CAREERQUEST_OPENROUTER_MODEL", &cfg.OpenRouter.Model},
	}
}

// ApplyEnv overrides cfg with any CAREERQUEST_* variables that are set.
func ApplyEnv(cfg Config) Config {
	for _, o := range envOverrides(&cfg) {
		if v := os.Getenv(o.name); v != "" {
			*o.target = v
		}
	}
	return cfg
}

// ConfigFromEnv builds a Config from defaults plus environment overrides.
func ConfigFromEnv() Config {
	return ApplyEnv(DefaultConfig())
}

// DiscoverConfig picks the first provider whose standard API key variable is
// set, in the order OpenRouter, Gemini, OpenAI, Anthropic. It reports false
// when none is found.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()

	switch {
	case os.Getenv("OPENROUTER_API_KEY") != "":
		cfg.Provider = ProviderOpenRouter
		cfg.OpenRouter.APIKey = os.Getenv("OPENROUTER_API_KEY")
	case os.Getenv("GEMINI_API_KEY") != "":
		cfg.Provider = ProviderGemini
		cfg.Gemini.APIKey = os.Getenv("GEMINI_API_KEY")
	case os.Getenv("OPENAI_API_KEY") != "":
		cfg.Provider = ProviderOpenAI
		cfg.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")
	case os.Getenv("ANTHROPIC_API_KEY") != "":
		cfg.Provider = ProviderAnthropic
		cfg.Anthropic.APIKey = os.Getenv("ANTHROPIC_API_KEY")
	default:
		return Config{}, false
	}
	return cfg, true
}

// Validate checks that the selected provider has its API key.
func (c Config) Validate() error {
	var key, env string
	switch c.Provider {
	case ProviderAnthropic:
		key, env = c.Anthropic.APIKey, "CAREERQUEST_ANTHROPIC_API_KEY"
	case ProviderOpenAI:
		key, env = c.OpenAI.APIKey, "CAREERQUEST_OPENAI_API_KEY"
	case ProviderGemini:
		key, env = c.Gemini.APIKey, "CAREERQUEST_GEMINI_API_KEY"
	case ProviderOpenRouter:
		key, env = c.OpenRouter.APIKey, "CAREERQUEST_OPENROUTER_API_KEY"
	case ProviderMock:
		return nil
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if key == "" {
		return fmt.Errorf("%s is required for the %s provider", env, c.Provider)
	}
	return nil
}
