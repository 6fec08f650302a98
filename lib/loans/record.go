package loans

import (
	"fmt"

	"github.com/ikl-data/loanpipe/lib/config/constants"
)

// Record is one loan row. The column set is open-ended; only the merge key and
// the status column have well-known names.
type Record map[string]any

// Key returns the record's value for the given key column as a string. ok is
// false when the value is null or empty - such a record cannot be merged.
func (r Record) Key(column string) (string, bool) {
	val, ok := r[column]
	if !ok || val == nil {
		return "", false
	}

	key := fmt.Sprint(val)
	return key, key != ""
}

// Status returns the loan status. ok is false when the status is null.
func (r Record) Status() (string, bool) {
	val, ok := r[constants.StatusColumn]
	if !ok || val == nil {
		return "", false
	}

	status, ok := val.(string)
	if !ok {
		return "", false
	}

	return status, true
}
