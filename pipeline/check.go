package pipeline

import (
	"context"
	"fmt"

	"github.com/ikl-data/loanpipe/lib/sql"
)

// CheckFailure is one failure row for the test harness. The harness convention
// is: empty result = pass, non-empty = fail.
type CheckFailure struct {
	Table  string
	Reason string
}

// CheckTableExists passes iff the catalog lookup finds the table. A missing
// table is the check's intended failure signal, not an error; errors are
// reserved for the lookup itself going wrong.
func (p Pipeline) CheckTableExists(ctx context.Context, id sql.TableIdentifier) ([]CheckFailure, error) {
	exists, err := p.warehouse.TableExists(ctx, id)
	if err != nil {
		return nil, err
	}

	if exists {
		return nil, nil
	}

	return []CheckFailure{
		{
			Table:  fmt.Sprintf("%s.%s.%s", id.Project(), id.Dataset(), id.Table()),
			Reason: "table not found",
		},
	}, nil
}
