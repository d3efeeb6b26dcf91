// Package config loads careerquest settings from defaults, an optional YAML
// file, CAREERQUEST_* environment variables and bound command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/abhisek/careerquest/internal/advisor"
	"github.com/abhisek/careerquest/internal/llm"
	"github.com/abhisek/careerquest/internal/session"
	"github.com/abhisek/careerquest/internal/store"
)

const (
	// Name is the config file base name and the env prefix source.
	Name = "careerquest"

	// EnvPrefix prefixes every environment override.
	EnvPrefix = "CAREERQUEST"
)

// Oracle backends.
const (
	EmbedderHash       = "hash"
	EmbedderLLM        = "llm"
	ClassifierCentroid = "centroid"
	ClassifierLLM      = "llm"
)

// Config is the full application configuration.
type Config struct {
	Log     LogConfig      `mapstructure:"log"`
	Store   StoreConfig    `mapstructure:"store"`
	Server  ServerConfig   `mapstructure:"server"`
	Quiz    QuizConfig     `mapstructure:"quiz"`
	Oracle  OracleConfig   `mapstructure:"oracle"`
	LLM     llm.Config     `mapstructure:"llm"`
	Advisor advisor.Config `mapstructure:"advisor"`
}

// LogConfig selects the zap encoder and level.
type LogConfig struct {
	JSON  bool `mapstructure:"json"`
	Debug bool `mapstructure:"debug"`
	// File receives the log instead of stderr when set.
	File string `mapstructure:"file"`
}

// StoreConfig selects the event database.
type StoreConfig struct {
	Driver string `mapstructure:"driver"`
	// DSN is a file path for sqlite or a connection URL for postgres. Empty
	// means store.DefaultDBPath.
	DSN string `mapstructure:"dsn"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr           string        `mapstructure:"addr"`
	ReadTimeout    time.Duration `mapstructure:"read-timeout"`
	WriteTimeout   time.Duration `mapstructure:"write-timeout"`
	RequestTimeout time.Duration `mapstructure:"request-timeout"`
	CORSOrigins    []string      `mapstructure:"cors-origins"`
}

// QuizConfig configures quiz sessions.
type QuizConfig struct {
	Questions int `mapstructure:"questions"`
	// Seed makes question sampling reproducible. Zero samples randomly.
	Seed uint64 `mapstructure:"seed"`
}

// OracleConfig selects the model backends.
type OracleConfig struct {
	Embedder   string        `mapstructure:"embedder"`
	Classifier string        `mapstructure:"classifier"`
	HashDims   int           `mapstructure:"hash-dims"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Store: StoreConfig{Driver: string(store.DriverSQLite)},
		Server: ServerConfig{
			Addr:           ":8080",
			ReadTimeout:    10 * time.Second,
			WriteTimeout:   60 * time.Second,
			RequestTimeout: 45 * time.Second,
			CORSOrigins:    []string{"*"},
		},
		Quiz: QuizConfig{Questions: session.DefaultQuestionCount},
		Oracle: OracleConfig{
			Embedder:   EmbedderHash,
			Classifier: ClassifierCentroid,
			HashDims:   256,
			Timeout:    15 * time.Second,
		},
		LLM:     llm.DefaultConfig(),
		Advisor: advisor.DefaultConfig(),
	}
}

// SetDefaults registers every default with v so that environment variables
// reach keys no config file mentions.
func SetDefaults(v *viper.Viper) {
	d := Default()
	defaults := map[string]any{
		"log.json":                   d.Log.JSON,
		"log.debug":                  d.Log.Debug,
		"log.file":                   d.Log.File,
		"store.driver":               d.Store.Driver,
		"store.dsn":                  d.Store.DSN,
		"server.addr":                d.Server.Addr,
		"server.read-timeout":        d.Server.ReadTimeout,
		"server.write-timeout":       d.Server.WriteTimeout,
		"server.request-timeout":     d.Server.RequestTimeout,
		"server.cors-origins":        d.Server.CORSOrigins,
		"quiz.questions":             d.Quiz.Questions,
		"quiz.seed":                  d.Quiz.Seed,
		"oracle.embedder":            d.Oracle.Embedder,
		"oracle.classifier":          d.Oracle.Classifier,
		"oracle.hash-dims":           d.Oracle.HashDims,
		"oracle.timeout":             d.Oracle.Timeout,
		"llm.provider":               d.LLM.Provider,
		"llm.timeout":                d.LLM.Timeout,
		"llm.anthropic.api-key":      d.LLM.Anthropic.APIKey,
		"llm.anthropic.model":        d.LLM.Anthropic.Model,
		"llm.openai.api-key":         d.LLM.OpenAI.APIKey,
		"llm.openai.model":           d.LLM.OpenAI.Model,
		"llm.openai.embedding-model": d.LLM.OpenAI.EmbeddingModel,
		"llm.openai.base-url":        d.LLM.OpenAI.BaseURL,
		"llm.gemini.api-key":         d.LLM.Gemini.APIKey,
		"llm.gemini.model":           d.LLM.Gemini.Model,
		"llm.gemini.embedding-model": d.LLM.Gemini.EmbeddingModel,
		"llm.openrouter.api-key":     d.LLM.OpenRouter.APIKey,
		"llm.openrouter.model":       d.LLM.OpenRouter.Model,
		"llm.openrouter.base-url":    d.LLM.OpenRouter.BaseURL,
		"llm.retry.max-attempts":     d.LLM.Retry.MaxAttempts,
		"llm.retry.initial-wait":     d.LLM.Retry.InitialWait,
		"llm.retry.max-wait":         d.LLM.Retry.MaxWait,
		"llm.retry.multiplier":       d.LLM.Retry.Multiplier,
		"advisor.max-tokens":         d.Advisor.MaxTokens,
		"advisor.temperature":        d.Advisor.Temperature,
		"advisor.history-turns":      d.Advisor.HistoryTurns,
	}
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
}

// Init prepares v: defaults, CAREERQUEST_ environment binding with "." and
// "-" mapped to "_", and the config file. An explicit file must exist;
// otherwise careerquest.yaml is looked up in the working directory and the
// user config directory and skipped when absent.
func Init(v *viper.Viper, file string) error {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", file, err)
		}
		return nil
	}

	v.SetConfigName(Name)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, Name))
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// Load decodes every setting of v over Default. Values are weakly typed, so
// "7" fills an int and "5s" a duration.
func Load(v *viper.Viper) (Config, error) {
	cfg := Default()
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
		WeaklyTypedInput: true,
		Result:           &cfg,
	})
	if err != nil {
		return Config{}, fmt.Errorf("build config decoder: %w", err)
	}
	if err := dec.Decode(v.AllSettings()); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.LLM = llm.ApplyEnv(cfg.LLM)
	return cfg, nil
}

// UsesLLM reports whether any oracle backend needs a language model.
func (c Config) UsesLLM() bool {
	return c.Oracle.Embedder == EmbedderLLM || c.Oracle.Classifier == ClassifierLLM
}

// ResolveLLM returns the configured provider settings when they validate,
// falling back to the standard provider API key variables. ok is false when
// neither yields a usable provider.
func (c Config) ResolveLLM() (cfg llm.Config, ok bool) {
	if c.LLM.Validate() == nil {
		return c.LLM, true
	}
	d, found := llm.DiscoverConfig()
	if !found {
		return c.LLM, false
	}
	d.Retry, d.Timeout = c.LLM.Retry, c.LLM.Timeout
	return d, true
}

// Validate checks settings that have a fixed set of values.
func (c Config) Validate() error {
	var errs []error
	if _, err := store.ParseDriver(c.Store.Driver); err != nil {
		errs = append(errs, err)
	}
	if c.Quiz.Questions <= 0 {
		errs = append(errs, fmt.Errorf("quiz.questions must be positive, got %d", c.Quiz.Questions))
	}
	switch c.Oracle.Embedder {
	case EmbedderHash, EmbedderLLM:
	default:
		errs = append(errs, fmt.Errorf("unknown oracle.embedder %q", c.Oracle.Embedder))
	}
	switch c.Oracle.Classifier {
	case ClassifierCentroid, ClassifierLLM:
	default:
		errs = append(errs, fmt.Errorf("unknown oracle.classifier %q", c.Oracle.Classifier))
	}
	if c.Oracle.HashDims < 0 {
		errs = append(errs, errors.New("oracle.hash-dims must not be negative"))
	}
	if c.Server.Addr == "" {
		errs = append(errs, errors.New("server.addr is required"))
	}
	if c.UsesLLM() {
		if _, ok := c.ResolveLLM(); !ok {
			errs = append(errs, fmt.Errorf("the llm oracle backend needs a provider: %w", c.LLM.Validate()))
		}
	}
	return errors.Join(errs...)
}
