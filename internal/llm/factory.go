package llm

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/careerquest/internal/store"
)

// NewProvider builds the configured provider wrapped as
// caller -> retry -> logging -> base. events and log may be nil.
func NewProvider(ctx context.Context, cfg Config, events store.EventRepo, log *zap.Logger) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case ProviderAnthropic:
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case ProviderOpenAI:
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case ProviderGemini:
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case ProviderOpenRouter:
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case ProviderMock:
		base = NewMockProvider()
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	if log == nil {
		log = zap.NewNop()
	}
	return WithRetry(WithLogging(base, cfg.Provider, events, log), cfg.Retry), nil
}

// EmbedderOf returns p as an Embedder when the underlying provider supports
// embeddings.
func EmbedderOf(p Provider) (Embedder, bool) {
	for {
		switch v := p.(type) {
		case *RetryProvider:
			p = v.inner
		case *LoggingProvider:
			if _, ok := v.inner.(Embedder); !ok {
				return nil, false
			}
			return v, true
		case Embedder:
			return v, true
		default:
			return nil, false
		}
	}
}
