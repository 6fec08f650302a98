package sql

// TableIdentifier is the fully qualified identity of a table: project, dataset
// and table name. Every component that touches a table receives one of these;
// nothing resolves tables from ambient state.
type TableIdentifier interface {
	Project() string
	Dataset() string
	Table() string
	WithTable(table string) TableIdentifier
	// FullyQualifiedName is quoted for direct use in SQL.
	FullyQualifiedName() string
}
