package destination

import (
	"fmt"

	"github.com/ikl-data/loanpipe/lib/typing"
)

// SourceNotFoundError - the resolved source relation does not exist. Fatal,
// aborts the run.
type SourceNotFoundError struct {
	Dataset string
	Table   string
}

func (s SourceNotFoundError) Error() string {
	return fmt.Sprintf("source table %s.%s does not exist", s.Dataset, s.Table)
}

// SchemaConflictError - an incoming column's type is incompatible with the
// existing column of the same name. Schema sync is additive-only; we never
// widen or narrow an existing column, so this aborts the run.
type SchemaConflictError struct {
	Column   string
	Existing typing.KindDetails
	Incoming typing.KindDetails
}

func (s SchemaConflictError) Error() string {
	return fmt.Sprintf("column %q type conflict: existing=%s, incoming=%s", s.Column, s.Existing.Kind, s.Incoming.Kind)
}
