package columns

import (
	"strings"
	"sync"

	"github.com/ikl-data/loanpipe/lib/typing"
)

type Column struct {
	name        string
	primaryKey  bool
	KindDetails typing.KindDetails
}

func NewColumn(name string, kd typing.KindDetails) Column {
	return Column{
		name:        name,
		KindDetails: kd,
	}
}

func NewPrimaryKeyColumn(name string, kd typing.KindDetails) Column {
	col := NewColumn(name, kd)
	col.primaryKey = true
	return col
}

func (c Column) Name() string {
	return c.name
}

func (c Column) PrimaryKey() bool {
	return c.primaryKey
}

// ShouldSkip - we skip columns whose kind is still Invalid (we never saw a
// non-null value for them), they cannot be created or written anywhere.
func (c *Column) ShouldSkip() bool {
	if c == nil || c.KindDetails == typing.Invalid {
		return true
	}

	return false
}

type Columns struct {
	columns []Column
	sync.RWMutex
}

func (c *Columns) AddColumn(col Column) {
	if col.name == "" {
		return
	}

	if _, ok := c.GetColumn(col.name); ok {
		// Column exists.
		return
	}

	c.Lock()
	defer c.Unlock()

	c.columns = append(c.columns, col)
}

// GetColumn matches case-insensitively; BigQuery column names are
// case-insensitive within a table.
func (c *Columns) GetColumn(name string) (Column, bool) {
	c.RLock()
	defer c.RUnlock()

	for _, column := range c.columns {
		if strings.EqualFold(column.name, name) {
			return column, true
		}
	}

	return Column{}, false
}

// UpdateColumn replaces the column with the same name, keeping insertion order.
func (c *Columns) UpdateColumn(updateCol Column) {
	c.Lock()
	defer c.Unlock()

	for index, col := range c.columns {
		if strings.EqualFold(col.name, updateCol.name) {
			c.columns[index] = updateCol
			return
		}
	}
}

func (c *Columns) GetColumns() []Column {
	if c == nil {
		return nil
	}

	c.RLock()
	defer c.RUnlock()

	var cols []Column
	cols = append(cols, c.columns...)
	return cols
}

// ValidColumns filters out columns we never typed.
func (c *Columns) ValidColumns() []Column {
	var cols []Column
	for _, col := range c.GetColumns() {
		if col.ShouldSkip() {
			continue
		}

		cols = append(cols, col)
	}

	return cols
}

// ValidColumnNames returns the names of [ValidColumns], unquoted.
func (c *Columns) ValidColumnNames() []string {
	var names []string
	for _, col := range c.ValidColumns() {
		names = append(names, col.Name())
	}

	return names
}

func (c *Columns) PrimaryKeys() []Column {
	var pks []Column
	for _, col := range c.GetColumns() {
		if col.PrimaryKey() {
			pks = append(pks, col)
		}
	}

	return pks
}
