package loans

import (
	"iter"
	"strings"

	"github.com/ikl-data/loanpipe/lib/config/constants"
)

// IsDefaulter reports whether the record's status matches the defaulter status,
// case-insensitively. A null status never matches.
func IsDefaulter(record Record) bool {
	status, ok := record.Status()
	if !ok {
		return false
	}

	return strings.EqualFold(status, constants.DefaulterStatus)
}

// Defaulters lazily filters a record sequence down to defaulters. It makes no
// ordering guarantee beyond what the input sequence provides and reads nothing
// until the caller iterates.
func Defaulters(records iter.Seq[Record]) iter.Seq[Record] {
	return func(yield func(Record) bool) {
		for record := range records {
			if !IsDefaulter(record) {
				continue
			}

			if !yield(record) {
				return
			}
		}
	}
}
