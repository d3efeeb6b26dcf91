package cmd

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/abhisek/careerquest/internal/catalog"
	"github.com/abhisek/careerquest/internal/config"
	"github.com/abhisek/careerquest/internal/llm"
	"github.com/abhisek/careerquest/internal/locale"
	qb "github.com/abhisek/careerquest/internal/questionbank"
	"github.com/abhisek/careerquest/internal/recommend"
	"github.com/abhisek/careerquest/internal/scoring"
	"github.com/abhisek/careerquest/internal/store"
)

func clearProviderKeys(t *testing.T) {
	t.Helper()
	for _, k := range []string{"OPENROUTER_API_KEY", "GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY"} {
		t.Setenv(k, "")
	}
}

func memoryConfig() config.Config {
	cfg := config.Default()
	cfg.Store.DSN = ":memory:"
	cfg.Quiz.Seed = 5
	return cfg
}

func TestBuildServices_WithoutLLM(t *testing.T) {
	clearProviderKeys(t)
	ctx := context.Background()

	svc, err := buildServices(ctx, memoryConfig(), zap.NewNop())
	require.NoError(t, err)
	defer svc.Close()

	assert.Nil(t, svc.provider)
	assert.Nil(t, svc.advisor)
	require.NotNil(t, svc.explorer)

	profile := catalog.Profile{Stage: catalog.StageAfter12th, Stream: catalog.StreamPCB, Exam: catalog.ExamNEET}
	s, created, err := svc.sessions.Open("tester", profile)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Positive(t, s.InstanceCount())

	events, err := svc.store.EventRepo().QuerySessionEvents(ctx, store.QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, s.ID, events[0].SessionID)

	rec, err := svc.composer.Compose(ctx, recommend.Request{
		Profile:   profile,
		Scores:    scoring.Vector{qb.CategoryBiology: 90, qb.CategoryChemistry: 80},
		Interests: "caring for patients in a hospital",
		Locale:    locale.English,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, rec.Careers)
}

func TestBuildServices_MockProviderEnablesAdvisor(t *testing.T) {
	clearProviderKeys(t)
	cfg := memoryConfig()
	cfg.LLM.Provider = llm.ProviderMock
	cfg.Oracle.Embedder = config.EmbedderLLM

	svc, err := buildServices(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	defer svc.Close()

	assert.NotNil(t, svc.provider)
	assert.NotNil(t, svc.advisor)
}

func TestBuildServices_LLMOracleNeedsProvider(t *testing.T) {
	clearProviderKeys(t)
	cfg := memoryConfig()
	cfg.LLM.Provider = llm.ProviderOpenAI
	cfg.Oracle.Classifier = config.ClassifierLLM

	_, err := buildServices(context.Background(), cfg, zap.NewNop())
	assert.Error(t, err)
}

func TestOpenStore_PostgresNeedsDSN(t *testing.T) {
	cfg := config.Default()
	cfg.Store.Driver = "postgres"

	_, err := openStore(context.Background(), cfg)
	assert.ErrorContains(t, err, "store.dsn")
}
