package bigquery

import (
	"context"
	"fmt"
	"log/slog"

	"cloud.google.com/go/bigquery"
)

// EnsureDataset creates the dataset if it does not exist. An existing dataset
// is fine; its location is left alone.
func (s *Store) EnsureDataset(ctx context.Context, name string) error {
	err := s.client.Dataset(name).Create(ctx, &bigquery.DatasetMetadata{Location: s.config.BigQuery.Location})
	if err != nil {
		if isAlreadyExists(err) {
			slog.Info("Dataset already exists", slog.String("dataset", name))
			return nil
		}

		return fmt.Errorf("failed to create dataset %q: %w", name, err)
	}

	slog.Info("Created dataset", slog.String("dataset", name), slog.String("location", s.config.BigQuery.Location))
	return nil
}
