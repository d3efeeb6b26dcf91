package cmd

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/careerquest/internal/api"
	"github.com/abhisek/careerquest/internal/logger"
	"github.com/abhisek/careerquest/internal/questionbank"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the quiz and recommendation JSON API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		defer log.Sync()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		svc, err := buildServices(ctx, cfg, log)
		if err != nil {
			return err
		}
		defer svc.Close()

		log.Info("starting careerquest",
			zap.String("version", version),
			zap.String("bank", questionbank.Version),
			zap.String("embedder", cfg.Oracle.Embedder),
			zap.String("classifier", cfg.Oracle.Classifier),
			zap.Bool("advisor", svc.advisor != nil))

		srv := api.New(api.Deps{
			Sessions: svc.sessions,
			Composer: svc.composer,
			Domains:  svc.explorer,
			Advisor:  svc.advisor,
		}, api.Options{
			Addr:           cfg.Server.Addr,
			ReadTimeout:    cfg.Server.ReadTimeout,
			WriteTimeout:   cfg.Server.WriteTimeout,
			RequestTimeout: cfg.Server.RequestTimeout,
			CORSOrigins:    cfg.Server.CORSOrigins,
		}, logger.Named(log, "api"))
		return srv.ListenAndServe(ctx)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default :8080)")
	mustBind("server.addr", serveCmd.Flags().Lookup("addr"))
}
