package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/abhisek/careerquest/internal/config"
	"github.com/abhisek/careerquest/internal/logger"
)

var (
	// Used for flags.
	cfgFile string

	v = viper.New()

	rootCmd = &cobra.Command{
		Use:   config.Name,
		Short: "Career guidance for students",
		Long: "careerquest runs a short aptitude quiz for school and college students and " +
			"recommends careers from the scores, their stated interests and the entrance exams they are preparing for.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd)
		},
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "a config file (default is careerquest.yaml in the current or user config directory)")
	flags.String("db", "", "database file or connection URL (overrides CAREERQUEST_DB)")
	flags.String("driver", "", "database driver: sqlite or postgres")
	flags.BoolP("debug", "d", false, "verbose/debug output")
	flags.BoolP("json", "j", false, "json format for logging")

	mustBind("store.dsn", flags.Lookup("db"))
	mustBind("store.driver", flags.Lookup("driver"))
	mustBind("log.debug", flags.Lookup("debug"))
	mustBind("log.json", flags.Lookup("json"))

	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(careersCmd)
	rootCmd.AddCommand(domainsCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(bankCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

func mustBind(key string, flag *pflag.Flag) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("binding flag for %s: %v", key, err))
	}
}

// readConfig reads the config file, environment and bound flags.
func readConfig() (config.Config, error) {
	if err := config.Init(v, cfgFile); err != nil {
		return config.Config{}, err
	}
	return config.Load(v)
}

// loadConfig is readConfig followed by validation.
func loadConfig() (config.Config, error) {
	cfg, err := readConfig()
	if err != nil {
		return config.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// setup loads the configuration and builds the logger, which writes to
// log.file or stderr.
func setup() (config.Config, *zap.Logger, error) {
	cfg, err := loadConfig()
	if err != nil {
		return config.Config{}, nil, err
	}
	var outputs []string
	if cfg.Log.File != "" {
		outputs = append(outputs, cfg.Log.File)
	}
	log, err := logger.New(cfg.Log.JSON, cfg.Log.Debug, outputs...)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("creating a logger: %w", err)
	}
	return cfg, log, nil
}
