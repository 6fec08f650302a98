package metrics

import (
	"log/slog"

	"github.com/ikl-data/loanpipe/lib/config"
	"github.com/ikl-data/loanpipe/lib/telemetry/metrics/base"
	"github.com/ikl-data/loanpipe/lib/telemetry/metrics/datadog"
)

const providerDatadog = "datadog"

func LoadExporter(cfg config.Config) base.Client {
	kind := cfg.Telemetry.Metrics.Provider
	switch kind {
	case providerDatadog:
		statsClient, err := datadog.NewDatadogClient(cfg.Telemetry.Metrics.Settings)
		if err != nil {
			slog.Error("Metrics client error", slog.Any("err", err), slog.String("provider", kind))
		} else {
			slog.Info("Metrics client loaded", slog.String("provider", kind))
			return statsClient
		}
	case "":
		// No provider configured, telemetry is a no-op.
	default:
		slog.Info("Invalid exporter kind passed in, skipping...", slog.String("exporterKind", kind))
	}

	return NullMetricsProvider{}
}
