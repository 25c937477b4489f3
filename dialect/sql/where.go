package sql

import (
	"strings"

	"github.com/syssam/persist"
	"github.com/syssam/persist/schema"
	"github.com/syssam/persist/schema/field"
)

// Cond is an equality predicate on one column. Value is a raw Go value; it
// is converted through the declared type of the column when rendered.
type Cond struct {
	Column string
	Value  any
}

// Group is a conjunction of conditions. A WHERE clause is a disjunction of
// groups.
type Group []Cond

// EQ returns a condition comparing the column with the value.
func EQ(column string, value any) Cond {
	return Cond{Column: column, Value: value}
}

// And returns a group of the given conditions, in order.
func And(conds ...Cond) Group {
	return Group(conds)
}

// Columns returns the column names referenced by the group.
func (g Group) Columns() []string {
	names := make([]string, len(g))
	for i, c := range g {
		names[i] = c.Column
	}
	return names
}

// Compose renders the groups as a WHERE predicate, without the WHERE
// keyword:
//
//	("c1" = v1 AND "c2" = v2) OR ("c3" = v3)
//
// Every column of every group is checked against the table before anything
// is rendered. Empty groups are skipped, and it returns an empty string
// when no group is left.
func Compose(d Dialect, t *schema.Table, groups []Group) (string, error) {
	for _, g := range groups {
		if err := t.ValidateColumns(g.Columns()...); err != nil {
			return "", err
		}
	}
	rendered := make([]string, 0, len(groups))
	for _, g := range groups {
		if len(g) == 0 {
			continue
		}
		preds := make([]string, 0, len(g))
		for _, c := range g {
			col, _ := t.Column(c.Column)
			v, err := field.NewValue(col.Type, c.Value)
			if err != nil {
				return "", persist.NewColumnInvalidError(t.Name, col.Name, "invalid predicate value", err)
			}
			p, err := predicate(d, col.Name, v)
			if err != nil {
				return "", err
			}
			preds = append(preds, p)
		}
		rendered = append(rendered, "("+strings.Join(preds, " AND ")+")")
	}
	return strings.Join(rendered, " OR "), nil
}

// predicate renders `"column" = value`.
func predicate(d Dialect, column string, v field.Value) (string, error) {
	qv, err := d.QuoteValue(v)
	if err != nil {
		return "", err
	}
	return d.QuoteIdentifier(column) + " = " + qv, nil
}
