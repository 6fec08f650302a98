package pipeline

import (
	"context"
	"fmt"
	"iter"
	"log/slog"
	"time"

	bigqueryclient "github.com/ikl-data/loanpipe/clients/bigquery"
	"github.com/ikl-data/loanpipe/lib/config"
	"github.com/ikl-data/loanpipe/lib/loans"
	"github.com/ikl-data/loanpipe/lib/sql"
	"github.com/ikl-data/loanpipe/lib/telemetry/metrics/base"
)

// Warehouse is what the pipeline needs from the destination.
type Warehouse interface {
	ResolveSource(ctx context.Context, id sql.TableIdentifier) error
	ReadTable(ctx context.Context, id sql.TableIdentifier) iter.Seq2[loans.Record, error]
	Merge(ctx context.Context, batch *loans.Batch, target sql.TableIdentifier) error
	TableExists(ctx context.Context, id sql.TableIdentifier) (bool, error)
	TableColumns(ctx context.Context, id sql.TableIdentifier) ([]string, error)
}

type Pipeline struct {
	cfg           config.Config
	warehouse     Warehouse
	metricsClient base.Client
}

func New(cfg config.Config, warehouse Warehouse, metricsClient base.Client) Pipeline {
	return Pipeline{
		cfg:           cfg,
		warehouse:     warehouse,
		metricsClient: metricsClient,
	}
}

// SourceID is the parameter-resolved source relation for this run.
func (p Pipeline) SourceID() sql.TableIdentifier {
	return bigqueryclient.NewTableIdentifier(p.cfg.BigQuery.ProjectID, p.cfg.Source.Dataset, p.cfg.Source.Table)
}

func (p Pipeline) TargetID() sql.TableIdentifier {
	return bigqueryclient.NewTableIdentifier(p.cfg.BigQuery.ProjectID, p.cfg.Target.Dataset, p.cfg.Target.Table)
}

// Run executes one pass: resolve the source, extract defaulters, merge them
// into the target. A failed run is retried wholesale by the orchestrator;
// nothing here retries the pass itself.
func (p Pipeline) Run(ctx context.Context) error {
	source := p.SourceID()
	target := p.TargetID()

	if err := p.warehouse.ResolveSource(ctx, source); err != nil {
		return err
	}

	start := time.Now()

	var scanned int
	var readErr error
	records := func(yield func(loans.Record) bool) {
		for record, err := range p.warehouse.ReadTable(ctx, source) {
			if err != nil {
				readErr = err
				return
			}

			scanned++
			if !yield(record) {
				return
			}
		}
	}

	batch, err := loans.BuildBatch(p.cfg.Merge.UniqueKey, loans.Defaulters(records))
	if err != nil {
		return fmt.Errorf("failed to build batch: %w", err)
	}

	if readErr != nil {
		return readErr
	}

	if err = p.warehouse.Merge(ctx, batch, target); err != nil {
		return fmt.Errorf("failed to merge into %s: %w", target.FullyQualifiedName(), err)
	}

	tags := map[string]string{"table": target.Table()}
	p.metricsClient.Count("rows.scanned", int64(scanned), tags)
	p.metricsClient.Count("rows.merged", int64(batch.Len()), tags)
	p.metricsClient.Timing("merge.duration", time.Since(start), tags)

	slog.Info("Merge complete",
		slog.Int("scanned", scanned),
		slog.Int("defaulters", batch.Len()),
		slog.Int("duplicates", batch.Duplicates()),
		slog.String("target", target.FullyQualifiedName()),
	)

	return nil
}
