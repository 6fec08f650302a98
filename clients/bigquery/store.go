package bigquery

import (
	"context"
	"fmt"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/option"

	"github.com/ikl-data/loanpipe/clients/bigquery/dialect"
	"github.com/ikl-data/loanpipe/lib/config"
	"github.com/ikl-data/loanpipe/lib/retry"
)

type Store struct {
	client  *bigquery.Client
	config  config.Config
	dialect dialect.BigQueryDialect
}

func LoadStore(ctx context.Context, cfg config.Config) (*Store, error) {
	var opts []option.ClientOption
	if credPath := cfg.BigQuery.PathToCredentials; credPath != "" {
		opts = append(opts, option.WithCredentialsFile(credPath))
	}

	client, err := bigquery.NewClient(ctx, cfg.BigQuery.ProjectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to start bigquery client: %w", err)
	}

	client.Location = cfg.BigQuery.Location
	return &Store{
		client: client,
		config: cfg,
	}, nil
}

func (s *Store) Close() error {
	return s.client.Close()
}

// Exec runs one statement and waits for it to finish.
func (s *Store) Exec(ctx context.Context, query string) error {
	_, err := s.client.Query(query).Read(ctx)
	return err
}

func (s *Store) retryConfig() retry.RetryConfig {
	return retry.NewRetryConfig(retry.NewRetryConfigArgs{
		JitterBaseMs:   500,
		JitterMaxMs:    5000,
		MaxAttempts:    5,
		IsRetryableErr: isRetryableError,
	})
}
