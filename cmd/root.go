package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ikl-data/loanpipe/lib/config"
	"github.com/ikl-data/loanpipe/lib/logger"
	"github.com/ikl-data/loanpipe/lib/telemetry/metrics"
	"github.com/ikl-data/loanpipe/lib/telemetry/metrics/base"
)

var (
	configPath string
	verbose    bool

	cfg           config.Config
	metricsClient base.Client
)

var rootCmd = &cobra.Command{
	Use:          "loanpipe",
	Short:        "Loan-defaulters warehouse pipeline",
	Long:         "Extracts defaulted loans from the staging dataset and keeps the transformed defaulters table in sync via an incremental merge.",
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		var err error
		cfg, err = config.ReadFile(configPath)
		if err != nil {
			return err
		}

		var sentryDSN string
		if cfg.Reporting.Sentry != nil {
			sentryDSN = cfg.Reporting.Sentry.DSN
		}

		log, usingSentry := logger.NewLogger(verbose, sentryDSN)
		slog.SetDefault(log)
		if usingSentry {
			slog.Info("Sentry logger enabled")
		}

		metricsClient = metrics.LoadExporter(cfg)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "path to the config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Fatal("Command failed", slog.Any("err", err))
	}
}
