package typing

import (
	"fmt"

	"cloud.google.com/go/bigquery"
)

// KindToBigQuery maps our in-memory kind to a BigQuery schema field type.
func KindToBigQuery(kd KindDetails) (bigquery.FieldType, error) {
	switch kd {
	case String:
		return bigquery.StringFieldType, nil
	case Integer:
		return bigquery.IntegerFieldType, nil
	case Float:
		return bigquery.FloatFieldType, nil
	case Numeric:
		return bigquery.NumericFieldType, nil
	case Boolean:
		return bigquery.BooleanFieldType, nil
	case Date:
		return bigquery.DateFieldType, nil
	case Timestamp:
		return bigquery.TimestampFieldType, nil
	}

	return "", fmt.Errorf("unsupported kind: %q", kd.Kind)
}

// BigQueryToKind maps a BigQuery schema field type back to our in-memory kind.
// Types we never produce (JSON, GEOGRAPHY, etc.) come back as Invalid so that
// schema reconciliation leaves them alone.
func BigQueryToKind(fieldType bigquery.FieldType) KindDetails {
	switch fieldType {
	case bigquery.StringFieldType:
		return String
	case bigquery.IntegerFieldType:
		return Integer
	case bigquery.FloatFieldType:
		return Float
	case bigquery.NumericFieldType, bigquery.BigNumericFieldType:
		return Numeric
	case bigquery.BooleanFieldType:
		return Boolean
	case bigquery.DateFieldType:
		return Date
	case bigquery.TimestampFieldType, bigquery.DateTimeFieldType:
		return Timestamp
	}

	return Invalid
}

// Compatible returns whether an incoming kind can be written into a column of
// the existing kind without widening or narrowing the destination type.
func Compatible(existing, incoming KindDetails) bool {
	if existing == incoming {
		return true
	}

	// Either side being unknown is not a conflict.
	if existing == Invalid || incoming == Invalid {
		return true
	}

	// BigQuery coerces INT64 into FLOAT64 and NUMERIC on write.
	if incoming == Integer && (existing == Float || existing == Numeric) {
		return true
	}

	// Dates parsed out of strings load fine into STRING columns.
	if incoming == Date && existing == String {
		return true
	}

	return false
}
