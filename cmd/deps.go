package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/abhisek/careerquest/internal/advisor"
	"github.com/abhisek/careerquest/internal/aptitude"
	"github.com/abhisek/careerquest/internal/config"
	"github.com/abhisek/careerquest/internal/domains"
	"github.com/abhisek/careerquest/internal/interest"
	"github.com/abhisek/careerquest/internal/llm"
	"github.com/abhisek/careerquest/internal/logger"
	"github.com/abhisek/careerquest/internal/oracle"
	"github.com/abhisek/careerquest/internal/recommend"
	"github.com/abhisek/careerquest/internal/session"
	"github.com/abhisek/careerquest/internal/skillgap"
	"github.com/abhisek/careerquest/internal/store"
)

// services holds everything a command needs to run quizzes and
// recommendations.
type services struct {
	cfg   config.Config
	log   *zap.Logger
	store *store.Store

	// provider is nil when no LLM is configured.
	provider llm.Provider

	sessions *session.Store
	composer *recommend.Composer
	explorer *domains.Explorer
	advisor  *advisor.Advisor
}

func (s *services) Close() error {
	if s.store == nil {
		return nil
	}
	return s.store.Close()
}

// openStore opens the configured event database, creating the SQLite file
// and its directory when needed.
func openStore(ctx context.Context, cfg config.Config) (*store.Store, error) {
	driver, err := store.ParseDriver(cfg.Store.Driver)
	if err != nil {
		return nil, err
	}

	dsn := cfg.Store.DSN
	switch {
	case driver == store.DriverPostgres && dsn == "":
		return nil, errors.New("store.dsn is required for postgres")
	case driver == store.DriverSQLite && dsn == "":
		if dsn, err = store.DefaultDBPath(); err != nil {
			return nil, fmt.Errorf("resolve database path: %w", err)
		}
	case driver == store.DriverSQLite && !strings.Contains(dsn, ":memory:"):
		if err := store.EnsureDir(dsn); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	st, err := store.OpenDriver(ctx, driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// buildProvider returns the configured LLM provider, or nil when none is
// configured and no oracle backend needs one.
func buildProvider(ctx context.Context, cfg config.Config, events store.EventRepo, log *zap.Logger) (llm.Provider, error) {
	lc, ok := cfg.ResolveLLM()
	if !ok {
		if cfg.UsesLLM() {
			return nil, fmt.Errorf("LLM provider not configured: %w", lc.Validate())
		}
		log.Debug("LLM provider not configured, advisor disabled")
		return nil, nil
	}
	p, err := llm.NewProvider(ctx, lc, events, logger.Named(log, "llm"))
	if err != nil {
		if cfg.UsesLLM() {
			return nil, err
		}
		log.Warn("LLM provider unavailable, advisor disabled", zap.Error(err))
		return nil, nil
	}
	return p, nil
}

// buildServices wires the store, the oracle backends and the recommendation
// pipeline from cfg.
func buildServices(ctx context.Context, cfg config.Config, log *zap.Logger) (*services, error) {
	st, err := openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	svc := &services{cfg: cfg, log: log, store: st}

	built := false
	defer func() {
		if !built {
			st.Close()
		}
	}()

	if svc.provider, err = buildProvider(ctx, cfg, st.EventRepo(), log); err != nil {
		return nil, err
	}

	model, err := oracle.DefaultModel()
	if err != nil {
		return nil, fmt.Errorf("load aptitude model: %w", err)
	}

	embedder, err := buildEmbedder(cfg, svc.provider)
	if err != nil {
		return nil, err
	}
	embedder = oracle.WithEmbedderTimeout(embedder, cfg.Oracle.Timeout)

	var classifier oracle.Classifier = model
	if cfg.Oracle.Classifier == config.ClassifierLLM {
		classifier = oracle.NewLLMClassifier(svc.provider, model.Labels())
	}
	classifier = oracle.WithClassifierTimeout(classifier, cfg.Oracle.Timeout)

	regressors := model.Regressors()
	for skill, r := range regressors {
		regressors[skill] = oracle.WithRegressorTimeout(r, cfg.Oracle.Timeout)
	}
	gaps, err := skillgap.New(model.Labels(), regressors)
	if err != nil {
		return nil, fmt.Errorf("build skill gap estimator: %w", err)
	}

	svc.composer = recommend.NewComposer(
		aptitude.New(classifier, logger.Named(log, "aptitude")),
		interest.NewMatcher(embedder, logger.Named(log, "interest")),
		gaps,
		logger.Named(log, "recommend"),
	)
	svc.explorer = domains.NewExplorer(embedder, logger.Named(log, "domains"))
	if svc.provider != nil {
		svc.advisor = advisor.New(svc.provider, cfg.Advisor, logger.Named(log, "advisor"))
	}

	var sampler session.Sampler = session.NewRandomSampler()
	if cfg.Quiz.Seed != 0 {
		sampler = session.NewSeededSampler(cfg.Quiz.Seed)
	}
	svc.sessions = session.NewStore(
		session.NewEventRecorder(st.EventRepo(), logger.Named(log, "session")),
		session.WithSampler(sampler),
		session.WithQuestionCount(cfg.Quiz.Questions),
	)

	built = true
	return svc, nil
}

func buildEmbedder(cfg config.Config, p llm.Provider) (oracle.Embedder, error) {
	if cfg.Oracle.Embedder != config.EmbedderLLM {
		return oracle.HashEmbedder{Dims: cfg.Oracle.HashDims}, nil
	}
	e, ok := llm.EmbedderOf(p)
	if !ok {
		return nil, errors.New("the configured LLM provider has no embeddings endpoint")
	}
	return oracle.NewLLMEmbedder(e), nil
}
