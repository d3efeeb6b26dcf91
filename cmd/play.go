package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/abhisek/careerquest/internal/app"
	"github.com/abhisek/careerquest/internal/logger"
	"github.com/abhisek/careerquest/internal/screen"
	"github.com/abhisek/careerquest/internal/store"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the interactive terminal app",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("skip-intro", false, "go straight to the home menu")
	addLocaleFlag(cmd)
}

func runPlay(cmd *cobra.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The terminal belongs to the app, so logs go to a file.
	logFile := cfg.Log.File
	if logFile == "" {
		dbPath, err := store.DefaultDBPath()
		if err != nil {
			return fmt.Errorf("resolve log path: %w", err)
		}
		logFile = filepath.Join(filepath.Dir(dbPath), "careerquest.log")
	}
	log, err := logger.New(cfg.Log.JSON, cfg.Log.Debug, logFile)
	if err != nil {
		return fmt.Errorf("creating a logger: %w", err)
	}
	defer log.Sync()

	svc, err := buildServices(cmd.Context(), cfg, log)
	if err != nil {
		return err
	}
	defer svc.Close()

	skipIntro, _ := cmd.Flags().GetBool("skip-intro")
	return app.Run(&screen.Services{
		Sessions: svc.sessions,
		Composer: svc.composer,
		Advisor:  svc.advisor,
		Events:   svc.store.EventRepo(),
		Owner:    uuid.NewString(),
		Locale:   localeFromFlags(cmd),
		Timeout:  cfg.Server.RequestTimeout,
	}, skipIntro)
}
