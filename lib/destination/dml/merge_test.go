package dml

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ikl-data/loanpipe/clients/bigquery/dialect"
	"github.com/ikl-data/loanpipe/lib/sql"
	"github.com/ikl-data/loanpipe/lib/typing"
	"github.com/ikl-data/loanpipe/lib/typing/columns"
)

type mockTableID struct {
	project string
	dataset string
	table   string
}

func (m mockTableID) Project() string { return m.project }
func (m mockTableID) Dataset() string { return m.dataset }
func (m mockTableID) Table() string   { return m.table }
func (m mockTableID) WithTable(table string) sql.TableIdentifier {
	m.table = table
	return m
}
func (m mockTableID) FullyQualifiedName() string {
	return "`" + m.project + "`.`" + m.dataset + "`.`" + m.table + "`"
}

func buildColumns() *columns.Columns {
	var cols columns.Columns
	cols.AddColumn(columns.NewPrimaryKeyColumn("Loan_ID", typing.String))
	cols.AddColumn(columns.NewColumn("Status", typing.String))
	cols.AddColumn(columns.NewColumn("Loan_Amount", typing.Numeric))
	return &cols
}

func TestMergeArgument_Valid(t *testing.T) {
	cols := buildColumns()
	tableID := mockTableID{project: "proj", dataset: "cl_transformed", table: "defaulters"}

	testCases := []struct {
		name        string
		arg         *MergeArgument
		expectedErr string
	}{
		{
			name:        "nil",
			expectedErr: "merge argument is nil",
		},
		{
			name: "no primary keys",
			arg: &MergeArgument{
				Columns:  cols,
				TableID:  tableID,
				SubQuery: "stg",
				Dialect:  dialect.BigQueryDialect{},
			},
			expectedErr: "does not contain primary keys",
		},
		{
			name: "no columns",
			arg: &MergeArgument{
				PrimaryKeys: cols.PrimaryKeys(),
				Columns:     &columns.Columns{},
				TableID:     tableID,
				SubQuery:    "stg",
				Dialect:     dialect.BigQueryDialect{},
			},
			expectedErr: "columns cannot be empty",
		},
		{
			name: "no subquery",
			arg: &MergeArgument{
				PrimaryKeys: cols.PrimaryKeys(),
				Columns:     cols,
				TableID:     tableID,
				Dialect:     dialect.BigQueryDialect{},
			},
			expectedErr: "subQuery cannot be empty",
		},
		{
			name: "no dialect",
			arg: &MergeArgument{
				PrimaryKeys: cols.PrimaryKeys(),
				Columns:     cols,
				TableID:     tableID,
				SubQuery:    "stg",
			},
			expectedErr: "dialect cannot be nil",
		},
		{
			name: "valid",
			arg: &MergeArgument{
				PrimaryKeys: cols.PrimaryKeys(),
				Columns:     cols,
				TableID:     tableID,
				SubQuery:    "stg",
				Dialect:     dialect.BigQueryDialect{},
			},
		},
	}

	for _, testCase := range testCases {
		err := testCase.arg.Valid()
		if testCase.expectedErr == "" {
			assert.NoError(t, err, testCase.name)
		} else {
			assert.ErrorContains(t, err, testCase.expectedErr, testCase.name)
		}
	}
}

func TestMergeArgument_BuildStatement(t *testing.T) {
	cols := buildColumns()
	tableID := mockTableID{project: "proj", dataset: "cl_transformed", table: "defaulters"}
	stagingID := mockTableID{project: "proj", dataset: "cl_transformed", table: "defaulters_stg_abc123"}

	{
		// Upsert-only merge: matched rows replaced wholesale, unmatched target
		// rows untouched.
		arg := MergeArgument{
			TableID:     tableID,
			SubQuery:    stagingID.FullyQualifiedName(),
			PrimaryKeys: cols.PrimaryKeys(),
			Columns:     cols,
			Dialect:     dialect.BigQueryDialect{},
		}

		statement, err := arg.BuildStatement()
		assert.NoError(t, err)
		assert.Equal(t, "MERGE INTO `proj`.`cl_transformed`.`defaulters` AS tgt "+
			"USING `proj`.`cl_transformed`.`defaulters_stg_abc123` AS stg ON tgt.`Loan_ID` = stg.`Loan_ID` "+
			"WHEN MATCHED THEN UPDATE SET `Status` = stg.`Status`, `Loan_Amount` = stg.`Loan_Amount` "+
			"WHEN NOT MATCHED THEN INSERT (`Loan_ID`, `Status`, `Loan_Amount`) VALUES (stg.`Loan_ID`, stg.`Status`, stg.`Loan_Amount`);", statement)
	}
	{
		// DeleteSync propagates source deletions
		arg := MergeArgument{
			TableID:     tableID,
			SubQuery:    stagingID.FullyQualifiedName(),
			PrimaryKeys: cols.PrimaryKeys(),
			Columns:     cols,
			DeleteSync:  true,
			Dialect:     dialect.BigQueryDialect{},
		}

		statement, err := arg.BuildStatement()
		assert.NoError(t, err)
		assert.Contains(t, statement, "WHEN NOT MATCHED BY SOURCE THEN DELETE")
	}
	{
		// Applying the same batch twice builds the identical statement; the
		// upsert is idempotent per key.
		arg := MergeArgument{
			TableID:     tableID,
			SubQuery:    stagingID.FullyQualifiedName(),
			PrimaryKeys: cols.PrimaryKeys(),
			Columns:     cols,
			Dialect:     dialect.BigQueryDialect{},
		}

		first, err := arg.BuildStatement()
		assert.NoError(t, err)
		second, err := arg.BuildStatement()
		assert.NoError(t, err)
		assert.Equal(t, first, second)
	}
}
