package dialect

import (
	"fmt"
	"strings"

	"github.com/ikl-data/loanpipe/lib/typing"
)

type BigQueryDialect struct{}

func (BigQueryDialect) QuoteIdentifier(identifier string) string {
	// BigQuery needs backticks to quote.
	return fmt.Sprintf("`%s`", strings.ReplaceAll(identifier, "`", ""))
}

func (BigQueryDialect) DataTypeFor(kd typing.KindDetails) (string, error) {
	switch kd {
	case typing.String:
		return "STRING", nil
	case typing.Integer:
		return "INT64", nil
	case typing.Float:
		return "FLOAT64", nil
	case typing.Numeric:
		return "NUMERIC", nil
	case typing.Boolean:
		return "BOOL", nil
	case typing.Date:
		return "DATE", nil
	case typing.Timestamp:
		return "TIMESTAMP", nil
	}

	return "", fmt.Errorf("unsupported kind: %q", kd.Kind)
}
