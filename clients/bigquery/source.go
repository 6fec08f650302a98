package bigquery

import (
	"context"
	"errors"
	"fmt"
	"iter"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/iterator"

	"github.com/ikl-data/loanpipe/lib/destination"
	"github.com/ikl-data/loanpipe/lib/loans"
	"github.com/ikl-data/loanpipe/lib/sql"
	"github.com/ikl-data/loanpipe/lib/typing"
	"github.com/ikl-data/loanpipe/lib/typing/columns"
)

func (s *Store) table(id sql.TableIdentifier) *bigquery.Table {
	return s.client.DatasetInProject(id.Project(), id.Dataset()).Table(id.Table())
}

// ResolveSource confirms the source relation exists before the run starts.
func (s *Store) ResolveSource(ctx context.Context, id sql.TableIdentifier) error {
	if _, err := s.table(id).Metadata(ctx); err != nil {
		if isNotFound(err) {
			return destination.SourceNotFoundError{Dataset: id.Dataset(), Table: id.Table()}
		}

		return fmt.Errorf("failed to resolve source %s.%s: %w", id.Dataset(), id.Table(), err)
	}

	return nil
}

// TableExists does a catalog lookup for the fully qualified table.
func (s *Store) TableExists(ctx context.Context, id sql.TableIdentifier) (bool, error) {
	if _, err := s.table(id).Metadata(ctx); err != nil {
		if isNotFound(err) {
			return false, nil
		}

		return false, fmt.Errorf("failed to look up %s.%s: %w", id.Dataset(), id.Table(), err)
	}

	return true, nil
}

// describeTable returns the table's current column set, or exists=false if the
// table is not there yet.
func (s *Store) describeTable(ctx context.Context, id sql.TableIdentifier) (*columns.Columns, bool, error) {
	metadata, err := s.table(id).Metadata(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, false, nil
		}

		return nil, false, fmt.Errorf("failed to describe %s.%s: %w", id.Dataset(), id.Table(), err)
	}

	var cols columns.Columns
	for _, field := range metadata.Schema {
		cols.AddColumn(columns.NewColumn(field.Name, typing.BigQueryToKind(field.Type)))
	}

	return &cols, true, nil
}

// TableColumns returns the table's column names in schema order.
func (s *Store) TableColumns(ctx context.Context, id sql.TableIdentifier) ([]string, error) {
	metadata, err := s.table(id).Metadata(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to describe %s.%s: %w", id.Dataset(), id.Table(), err)
	}

	var names []string
	for _, field := range metadata.Schema {
		names = append(names, field.Name)
	}

	return names, nil
}

// ReadTable lazily streams the table's rows. Iteration stops at the first
// error, which is yielded as the second value.
func (s *Store) ReadTable(ctx context.Context, id sql.TableIdentifier) iter.Seq2[loans.Record, error] {
	return func(yield func(loans.Record, error) bool) {
		it := s.table(id).Read(ctx)
		for {
			var values map[string]bigquery.Value
			err := it.Next(&values)
			if errors.Is(err, iterator.Done) {
				return
			}

			if err != nil {
				yield(nil, fmt.Errorf("failed to read %s.%s: %w", id.Dataset(), id.Table(), err))
				return
			}

			record := make(loans.Record, len(values))
			for name, value := range values {
				record[name] = value
			}

			if !yield(record, nil) {
				return
			}
		}
	}
}
