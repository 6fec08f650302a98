package bigquery

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"cloud.google.com/go/bigquery"
	"cloud.google.com/go/civil"
	"github.com/google/uuid"

	"github.com/ikl-data/loanpipe/lib/config/constants"
	"github.com/ikl-data/loanpipe/lib/destination"
	"github.com/ikl-data/loanpipe/lib/destination/ddl"
	"github.com/ikl-data/loanpipe/lib/destination/dml"
	"github.com/ikl-data/loanpipe/lib/loans"
	"github.com/ikl-data/loanpipe/lib/sql"
	"github.com/ikl-data/loanpipe/lib/typing"
	"github.com/ikl-data/loanpipe/lib/typing/columns"
)

type Row struct {
	data map[string]bigquery.Value
}

func NewRow(data map[string]bigquery.Value) *Row {
	return &Row{data: data}
}

func (r *Row) Save() (map[string]bigquery.Value, string, error) {
	return r.data, bigquery.NoDedupeID, nil
}

func toRows(batch *loans.Batch, cols *columns.Columns) []*Row {
	var rows []*Row
	for _, record := range batch.Rows() {
		data := make(map[string]bigquery.Value)
		for _, col := range cols.ValidColumns() {
			if value, ok := record[col.Name()]; ok && value != nil {
				data[col.Name()] = normalizeValue(value)
			}
		}

		rows = append(rows, NewRow(data))
	}

	return rows
}

// normalizeValue rewrites values whose inferred column kind differs from the
// bigquery library's native mapping, so staging inserts match the staging schema.
func normalizeValue(value any) bigquery.Value {
	switch convertedVal := value.(type) {
	case civil.DateTime:
		// Staged as TIMESTAMP; a wall-clock datetime is read as UTC.
		return convertedVal.In(time.UTC)
	case civil.Time:
		// Staged as STRING.
		return convertedVal.String()
	default:
		return convertedVal
	}
}

func schemaFor(cols []columns.Column) (bigquery.Schema, error) {
	var schema bigquery.Schema
	for _, col := range cols {
		fieldType, err := typing.KindToBigQuery(col.KindDetails)
		if err != nil {
			return nil, fmt.Errorf("failed to map column %q: %w", col.Name(), err)
		}

		schema = append(schema, &bigquery.FieldSchema{
			Name:     col.Name(),
			Type:     fieldType,
			Required: col.PrimaryKey(),
		})
	}

	return schema, nil
}

// Merge reconciles the batch against the target table: additive schema sync,
// then stage + MERGE. The MERGE itself is a single atomic statement from
// BigQuery's point of view.
func (s *Store) Merge(ctx context.Context, batch *loans.Batch, target sql.TableIdentifier) error {
	if batch.Len() == 0 {
		// There's no rows. Let's skip.
		slog.Info("Batch is empty, skipping merge", slog.String("table", target.FullyQualifiedName()))
		return nil
	}

	batchCols := batch.Columns()
	if err := s.syncSchema(ctx, batchCols, target); err != nil {
		return err
	}

	stagingID, err := s.stageBatch(ctx, batch, batchCols, target)
	if err != nil {
		return err
	}

	defer func() {
		if deleteErr := s.table(stagingID).Delete(context.WithoutCancel(ctx)); deleteErr != nil {
			slog.Warn("Failed to drop staging table",
				slog.String("table", stagingID.FullyQualifiedName()), slog.Any("err", deleteErr))
		}
	}()

	mergeArg := dml.MergeArgument{
		TableID:     target,
		SubQuery:    stagingID.FullyQualifiedName(),
		PrimaryKeys: batchCols.PrimaryKeys(),
		Columns:     batchCols,
		DeleteSync:  s.config.Merge.DeleteSync,
		Dialect:     s.dialect,
	}

	mergeQuery, err := mergeArg.BuildStatement()
	if err != nil {
		return fmt.Errorf("failed to build the merge statement: %w", err)
	}

	slog.Debug("Executing merge", slog.String("query", mergeQuery))
	return s.retryConfig().WithRetries(func(_ int, _ error) error {
		return s.Exec(ctx, mergeQuery)
	})
}

// syncSchema creates the target if needed, otherwise adds the batch's new
// columns. Type conflicts abort; existing columns are never retyped or dropped.
func (s *Store) syncSchema(ctx context.Context, batchCols *columns.Columns, target sql.TableIdentifier) error {
	destCols, exists, err := s.describeTable(ctx, target)
	if err != nil {
		return err
	}

	if !exists {
		createQuery, err := ddl.BuildCreateTableSQL(s.dialect, target, batchCols.GetColumns())
		if err != nil {
			return err
		}

		slog.Info("Target table does not exist, creating it", slog.String("table", target.FullyQualifiedName()))
		return s.Exec(ctx, createQuery)
	}

	missing, conflicts := columns.Diff(batchCols, destCols)
	if len(conflicts) > 0 {
		return destination.SchemaConflictError{
			Column:   conflicts[0].Name,
			Existing: conflicts[0].Existing,
			Incoming: conflicts[0].Incoming,
		}
	}

	alterStatements, err := ddl.BuildAddColumnSQL(s.dialect, target, missing)
	if err != nil {
		return err
	}

	for _, statement := range alterStatements {
		slog.Info("Adding column to target table", slog.String("query", statement))
		if err = s.retryConfig().WithRetries(func(_ int, _ error) error {
			return s.Exec(ctx, statement)
		}); err != nil {
			return fmt.Errorf("failed to alter table: %w", err)
		}
	}

	return nil
}

// stageBatch writes the deduplicated batch into a short-lived staging table
// next to the target and returns its identifier.
func (s *Store) stageBatch(ctx context.Context, batch *loans.Batch, batchCols *columns.Columns, target sql.TableIdentifier) (sql.TableIdentifier, error) {
	suffix := strings.Split(uuid.NewString(), "-")[0]
	stagingID := target.WithTable(fmt.Sprintf("%s_stg_%s", target.Table(), suffix))

	schema, err := schemaFor(batchCols.ValidColumns())
	if err != nil {
		return nil, err
	}

	err = s.table(stagingID).Create(ctx, &bigquery.TableMetadata{
		Schema:         schema,
		ExpirationTime: time.Now().Add(constants.StagingTableTTLMinutes * time.Minute),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create staging table %s: %w", stagingID.FullyQualifiedName(), err)
	}

	inserter := s.table(stagingID).Inserter()
	for chunk := range slices.Chunk(toRows(batch, batchCols), s.config.BigQuery.BatchSize) {
		if err = s.retryConfig().WithRetries(func(_ int, _ error) error {
			return inserter.Put(ctx, chunk)
		}); err != nil {
			return nil, fmt.Errorf("failed to insert into staging table %s: %w", stagingID.FullyQualifiedName(), err)
		}
	}

	return stagingID, nil
}
