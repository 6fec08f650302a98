package pipeline

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/ikl-data/loanpipe/lib/config"
)

type DatasetEnsurer interface {
	EnsureDataset(ctx context.Context, name string) error
}

type BucketEnsurer interface {
	EnsureBucket(ctx context.Context, projectID string, ttlDays int64) error
}

// Provision brings up the infrastructure the pipeline consumes: the object
// storage bucket (with its deletion lifecycle) and the staging and transformed
// datasets. Everything is idempotent, so re-running is safe.
func Provision(ctx context.Context, cfg config.Config, datasets DatasetEnsurer, buckets BucketEnsurer) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return buckets.EnsureBucket(ctx, cfg.BigQuery.ProjectID, cfg.GCS.BucketTTLDays)
	})

	for _, dataset := range []string{cfg.Source.Dataset, cfg.Target.Dataset} {
		g.Go(func() error {
			return datasets.EnsureDataset(ctx, dataset)
		})
	}

	return g.Wait()
}
