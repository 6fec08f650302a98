package sql

import (
	"github.com/ikl-data/loanpipe/lib/typing"
)

type Dialect interface {
	QuoteIdentifier(identifier string) string
	DataTypeFor(kd typing.KindDetails) (string, error)
}

func QuoteIdentifiers(identifiers []string, dialect Dialect) []string {
	result := make([]string, 0, len(identifiers))
	for _, identifier := range identifiers {
		result = append(result, dialect.QuoteIdentifier(identifier))
	}

	return result
}
