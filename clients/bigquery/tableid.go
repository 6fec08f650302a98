package bigquery

import (
	"fmt"

	"github.com/ikl-data/loanpipe/lib/sql"
)

type TableIdentifier struct {
	project string
	dataset string
	table   string
}

func NewTableIdentifier(project, dataset, table string) TableIdentifier {
	return TableIdentifier{project: project, dataset: dataset, table: table}
}

func (ti TableIdentifier) Project() string {
	return ti.project
}

func (ti TableIdentifier) Dataset() string {
	return ti.dataset
}

func (ti TableIdentifier) Table() string {
	return ti.table
}

func (ti TableIdentifier) WithTable(table string) sql.TableIdentifier {
	return NewTableIdentifier(ti.project, ti.dataset, table)
}

func (ti TableIdentifier) FullyQualifiedName() string {
	return fmt.Sprintf("`%s`.`%s`.`%s`", ti.project, ti.dataset, ti.table)
}

// String is the unquoted project.dataset.table form for logs and failure rows.
func (ti TableIdentifier) String() string {
	return fmt.Sprintf("%s.%s.%s", ti.project, ti.dataset, ti.table)
}
