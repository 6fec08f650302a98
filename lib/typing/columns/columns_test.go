package columns

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ikl-data/loanpipe/lib/typing"
)

func TestColumn_ShouldSkip(t *testing.T) {
	{
		var col *Column
		assert.True(t, col.ShouldSkip())
	}
	{
		col := NewColumn("notes", typing.Invalid)
		assert.True(t, col.ShouldSkip())
	}
	{
		col := NewColumn("amount", typing.Float)
		assert.False(t, col.ShouldSkip())
	}
}

func TestColumns_Add_Get(t *testing.T) {
	var cols Columns
	cols.AddColumn(NewColumn("Loan_ID", typing.String))
	cols.AddColumn(NewColumn("amount", typing.Float))

	// Adding a dupe is a no-op
	cols.AddColumn(NewColumn("amount", typing.String))
	col, ok := cols.GetColumn("amount")
	assert.True(t, ok)
	assert.Equal(t, typing.Float, col.KindDetails)

	// Lookup is case-insensitive, like BigQuery column names
	col, ok = cols.GetColumn("LOAN_id")
	assert.True(t, ok)
	assert.Equal(t, "Loan_ID", col.Name())

	_, ok = cols.GetColumn("missing")
	assert.False(t, ok)

	// Empty names are dropped
	cols.AddColumn(NewColumn("", typing.String))
	assert.Len(t, cols.GetColumns(), 2)
}

func TestColumns_UpdateColumn(t *testing.T) {
	var cols Columns
	cols.AddColumn(NewColumn("amount", typing.Invalid))
	cols.AddColumn(NewColumn("region", typing.String))

	cols.UpdateColumn(NewColumn("amount", typing.Float))

	got := cols.GetColumns()
	assert.Equal(t, "amount", got[0].Name())
	assert.Equal(t, typing.Float, got[0].KindDetails)
	assert.Equal(t, "region", got[1].Name())
}

func TestColumns_ValidColumns(t *testing.T) {
	var cols Columns
	cols.AddColumn(NewPrimaryKeyColumn("Loan_ID", typing.String))
	cols.AddColumn(NewColumn("notes", typing.Invalid))
	cols.AddColumn(NewColumn("amount", typing.Float))

	assert.Equal(t, []string{"Loan_ID", "amount"}, cols.ValidColumnNames())

	pks := cols.PrimaryKeys()
	assert.Len(t, pks, 1)
	assert.Equal(t, "Loan_ID", pks[0].Name())
}
