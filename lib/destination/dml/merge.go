package dml

import (
	"fmt"
	"strings"

	"github.com/ikl-data/loanpipe/lib/sql"
	"github.com/ikl-data/loanpipe/lib/typing/columns"
)

type MergeArgument struct {
	TableID sql.TableIdentifier
	// SubQuery is the staging relation holding the deduplicated batch.
	SubQuery    string
	PrimaryKeys []columns.Column
	Columns     *columns.Columns

	// DeleteSync propagates source deletions: target rows whose key is absent
	// from the batch get deleted. Off by default (upsert-only merge).
	DeleteSync bool

	Dialect sql.Dialect
}

func (m *MergeArgument) Valid() error {
	if m == nil {
		return fmt.Errorf("merge argument is nil")
	}

	if len(m.PrimaryKeys) == 0 {
		return fmt.Errorf("merge argument does not contain primary keys")
	}

	if len(m.Columns.ValidColumns()) == 0 {
		return fmt.Errorf("columns cannot be empty")
	}

	if m.TableID == nil {
		return fmt.Errorf("tableID cannot be nil")
	}

	if m.SubQuery == "" {
		return fmt.Errorf("subQuery cannot be empty")
	}

	if m.Dialect == nil {
		return fmt.Errorf("dialect cannot be nil")
	}

	return nil
}

// BuildStatement returns one MERGE statement. The whole batch commits or none
// of it does; atomicity is the engine's.
func (m *MergeArgument) BuildStatement() (string, error) {
	if err := m.Valid(); err != nil {
		return "", err
	}

	var equalitySQLParts []string
	for _, primaryKey := range m.PrimaryKeys {
		quoted := m.Dialect.QuoteIdentifier(primaryKey.Name())
		equalitySQLParts = append(equalitySQLParts, fmt.Sprintf("tgt.%s = stg.%s", quoted, quoted))
	}

	quotedColumns := sql.QuoteIdentifiers(m.Columns.ValidColumnNames(), m.Dialect)

	// Matched rows are replaced wholesale, not patched field by field. Primary
	// keys are equal on both sides already, so they stay out of the SET list.
	var updateParts []string
	for _, col := range m.Columns.ValidColumns() {
		if col.PrimaryKey() {
			continue
		}

		quoted := m.Dialect.QuoteIdentifier(col.Name())
		updateParts = append(updateParts, fmt.Sprintf("%s = stg.%s", quoted, quoted))
	}

	var insertValues []string
	for _, quoted := range quotedColumns {
		insertValues = append(insertValues, fmt.Sprintf("stg.%s", quoted))
	}

	statement := fmt.Sprintf(`MERGE INTO %s AS tgt USING %s AS stg ON %s`,
		m.TableID.FullyQualifiedName(), m.SubQuery, strings.Join(equalitySQLParts, " AND "))

	if len(updateParts) > 0 {
		statement += fmt.Sprintf(" WHEN MATCHED THEN UPDATE SET %s", strings.Join(updateParts, ", "))
	}

	statement += fmt.Sprintf(" WHEN NOT MATCHED THEN INSERT (%s) VALUES (%s)",
		strings.Join(quotedColumns, ", "), strings.Join(insertValues, ", "))

	if m.DeleteSync {
		statement += " WHEN NOT MATCHED BY SOURCE THEN DELETE"
	}

	return statement + ";", nil
}
