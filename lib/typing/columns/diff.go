package columns

import "github.com/ikl-data/loanpipe/lib/typing"

// Conflict is a column present on both sides whose types cannot be reconciled.
// Schema sync is additive-only, so this aborts the run.
type Conflict struct {
	Name     string
	Existing typing.KindDetails
	Incoming typing.KindDetails
}

// Diff compares the incoming batch columns against the destination table's
// columns. It returns the columns missing from the destination (to be added,
// schema sync never drops the ones only the destination has) and any type
// conflicts on the overlap.
func Diff(incoming *Columns, destination *Columns) (missing []Column, conflicts []Conflict) {
	for _, col := range incoming.GetColumns() {
		destCol, ok := destination.GetColumn(col.Name())
		if !ok {
			missing = append(missing, col)
			continue
		}

		if !typing.Compatible(destCol.KindDetails, col.KindDetails) {
			conflicts = append(conflicts, Conflict{
				Name:     col.Name(),
				Existing: destCol.KindDetails,
				Incoming: col.KindDetails,
			})
		}
	}

	return missing, conflicts
}
