package ddl

import (
	"fmt"
	"strings"

	"github.com/ikl-data/loanpipe/lib/sql"
	"github.com/ikl-data/loanpipe/lib/typing/columns"
)

// BuildCreateTableSQL builds a CREATE TABLE for the target with the given
// columns. Columns with an unknown kind are skipped.
func BuildCreateTableSQL(dialect sql.Dialect, tableID sql.TableIdentifier, cols []columns.Column) (string, error) {
	var parts []string
	for _, col := range cols {
		if col.ShouldSkip() {
			continue
		}

		dataType, err := dialect.DataTypeFor(col.KindDetails)
		if err != nil {
			return "", fmt.Errorf("failed to map column %q: %w", col.Name(), err)
		}

		parts = append(parts, fmt.Sprintf("%s %s", dialect.QuoteIdentifier(col.Name()), dataType))
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("no valid columns to create table %s with", tableID.FullyQualifiedName())
	}

	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", tableID.FullyQualifiedName(), strings.Join(parts, ", ")), nil
}

// BuildAddColumnSQL builds one additive ALTER TABLE statement per column.
// Existing rows get NULL for the new column; columns are never dropped.
func BuildAddColumnSQL(dialect sql.Dialect, tableID sql.TableIdentifier, cols []columns.Column) ([]string, error) {
	var statements []string
	for _, col := range cols {
		if col.ShouldSkip() {
			continue
		}

		dataType, err := dialect.DataTypeFor(col.KindDetails)
		if err != nil {
			return nil, fmt.Errorf("failed to map column %q: %w", col.Name(), err)
		}

		statements = append(statements, fmt.Sprintf("ALTER TABLE %s ADD COLUMN IF NOT EXISTS %s %s",
			tableID.FullyQualifiedName(), dialect.QuoteIdentifier(col.Name()), dataType))
	}

	return statements, nil
}
