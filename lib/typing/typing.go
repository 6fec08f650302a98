package typing

import (
	"math/big"
	"time"

	"cloud.google.com/go/civil"
)

type KindDetails struct {
	Kind string
}

var (
	Invalid = KindDetails{
		Kind: "invalid",
	}

	Float = KindDetails{
		Kind: "float",
	}

	Integer = KindDetails{
		Kind: "int",
	}

	Numeric = KindDetails{
		Kind: "numeric",
	}

	Boolean = KindDetails{
		Kind: "bool",
	}

	String = KindDetails{
		Kind: "string",
	}

	Date = KindDetails{
		Kind: "date",
	}

	Timestamp = KindDetails{
		Kind: "timestamp",
	}
)

const dateLayout = "2006-01-02"

// ParseValue infers the column kind from a value as it comes off the BigQuery
// row iterator (or out of a CSV). A nil value tells us nothing about the column,
// so it maps to Invalid and the caller keeps whatever kind it has seen so far.
func ParseValue(val any) KindDetails {
	switch convertedVal := val.(type) {
	case nil:
		return Invalid
	case uint, int, uint8, uint16, uint32, uint64, int8, int16, int32, int64:
		return Integer
	case float32, float64:
		return Float
	case *big.Rat:
		return Numeric
	case bool:
		return Boolean
	case civil.Date:
		return Date
	case civil.DateTime, time.Time:
		return Timestamp
	case civil.Time:
		return String
	case string:
		if _, err := time.Parse(dateLayout, convertedVal); err == nil {
			return Date
		}

		return String
	default:
		return Invalid
	}
}
