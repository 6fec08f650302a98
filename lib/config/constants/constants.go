package constants

const (
	// DefaulterStatus is the loan status value that marks a record as a defaulter.
	// Comparison against it is always case-insensitive.
	DefaulterStatus = "default"

	LoanIDColumn = "Loan_ID"
	StatusColumn = "Status"

	// StagingTableTTL is how long a staging table sticks around before BigQuery
	// expires it, in case a run dies before the deferred drop.
	StagingTableTTLMinutes = 60
)
