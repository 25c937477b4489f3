package schema

import (
	"github.com/syssam/persist"
	"github.com/syssam/persist/schema/field"
)

// Column describes one persistent field of a table.
type Column struct {
	Name          string      // column name.
	Type          field.Type  // value kind.
	Size          int         // length of parametric types.
	Value         field.Value // current value, null for empty descriptors.
	PrimaryKey    bool        // part of the primary key.
	AutoIncrement bool        // value generated by the database.
	Insertable    bool        // included in INSERT statements.
	Nullable      bool        // accepts NULL.
	Comment       string
}

// Table describes the table of an entity. Columns are kept in the
// declaration order of the entity fields.
type Table struct {
	Name    string
	Columns []*Column
}

// Column returns the column with the given name.
func (t *Table) Column(name string) (*Column, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// HasColumn reports if the table has a column with the given name.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.Column(name)
	return ok
}

// ColumnNames returns the names of all columns.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// InsertableColumns returns the columns written by INSERT statements.
func (t *Table) InsertableColumns() []*Column {
	var columns []*Column
	for _, c := range t.Columns {
		if c.Insertable {
			columns = append(columns, c)
		}
	}
	return columns
}

// PrimaryKeys returns the primary-key columns.
func (t *Table) PrimaryKeys() []*Column {
	var columns []*Column
	for _, c := range t.Columns {
		if c.PrimaryKey {
			columns = append(columns, c)
		}
	}
	return columns
}

// PrimaryKey returns the primary-key column of a table with a single-column
// primary key.
func (t *Table) PrimaryKey() (*Column, error) {
	pks := t.PrimaryKeys()
	if len(pks) != 1 {
		return nil, persist.NewSchemaError(t.Name, "expected exactly one primary key column, got %d", len(pks))
	}
	return pks[0], nil
}

// ValidateColumns returns a ColumnNotFoundError for the first name that is
// not a column of the table.
func (t *Table) ValidateColumns(names ...string) error {
	for _, name := range names {
		if !t.HasColumn(name) {
			return persist.NewColumnNotFoundError(t.Name, name)
		}
	}
	return nil
}
