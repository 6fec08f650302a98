package loans

import (
	"fmt"
	"iter"

	"github.com/ikl-data/loanpipe/lib/typing"
	"github.com/ikl-data/loanpipe/lib/typing/columns"
)

// NullKeyError - a record without a merge key has no deterministic match target.
type NullKeyError struct {
	Column string
}

func (n NullKeyError) Error() string {
	return fmt.Sprintf("record has a null or empty merge key: %q", n.Column)
}

// Batch is the set of records to merge in one run, keyed by the unique key.
// A key appearing more than once resolves last-wins in input order.
type Batch struct {
	uniqueKey  string
	keys       []string
	rows       map[string]Record
	duplicates int
}

func NewBatch(uniqueKey string) *Batch {
	return &Batch{
		uniqueKey: uniqueKey,
		rows:      make(map[string]Record),
	}
}

func (b *Batch) Add(record Record) error {
	key, ok := record.Key(b.uniqueKey)
	if !ok {
		return NullKeyError{Column: b.uniqueKey}
	}

	if _, exists := b.rows[key]; exists {
		// Last-wins: the later record replaces the earlier one wholesale.
		b.duplicates++
	} else {
		b.keys = append(b.keys, key)
	}

	b.rows[key] = record
	return nil
}

// BuildBatch drains a record sequence into a batch.
func BuildBatch(uniqueKey string, records iter.Seq[Record]) (*Batch, error) {
	batch := NewBatch(uniqueKey)
	for record := range records {
		if err := batch.Add(record); err != nil {
			return nil, err
		}
	}

	return batch, nil
}

func (b *Batch) Len() int {
	return len(b.keys)
}

// Duplicates is how many in-batch key collisions were resolved last-wins.
func (b *Batch) Duplicates() int {
	return b.duplicates
}

// Rows returns the deduplicated records in first-appearance key order.
func (b *Batch) Rows() []Record {
	rows := make([]Record, 0, len(b.keys))
	for _, key := range b.keys {
		rows = append(rows, b.rows[key])
	}

	return rows
}

// Columns infers the union of columns across the batch. A column's kind is
// taken from the first non-null value seen for it; the unique key is marked as
// the primary key.
func (b *Batch) Columns() *columns.Columns {
	var cols columns.Columns
	cols.AddColumn(columns.NewPrimaryKeyColumn(b.uniqueKey, typing.String))

	for _, key := range b.keys {
		for name, value := range b.rows[key] {
			kind := typing.ParseValue(value)
			if existing, ok := cols.GetColumn(name); ok {
				if existing.KindDetails == typing.Invalid && kind != typing.Invalid {
					updated := columns.NewColumn(existing.Name(), kind)
					if existing.PrimaryKey() {
						updated = columns.NewPrimaryKeyColumn(existing.Name(), kind)
					}

					cols.UpdateColumn(updated)
				}

				continue
			}

			cols.AddColumn(columns.NewColumn(name, kind))
		}
	}

	return &cols
}
