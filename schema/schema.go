package schema

import (
	"reflect"
	"sync"

	"github.com/go-openapi/inflect"

	"github.com/syssam/persist"
	"github.com/syssam/persist/schema/field"
)

// tableNames caches the derived table name per entity type.
var tableNames sync.Map

// TableName returns the table name of the entity. It is the Config().Table
// override if set, or the snake_case form of the entity type name. A nil
// entity has no table name.
func TableName(e persist.Entity) string {
	if isNil(e) {
		return ""
	}
	if name := e.Config().Table; name != "" {
		return name
	}
	typ := reflect.TypeOf(e)
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if name, ok := tableNames.Load(typ); ok {
		return name.(string)
	}
	name, _ := tableNames.LoadOrStore(typ, inflect.Underscore(typ.Name()))
	return name.(string)
}

// Describe returns the table descriptor of the entity, with the current
// values of its fields.
func Describe(e persist.Entity) (*Table, error) {
	return describe(e, true)
}

// DescribeEmpty returns the table descriptor of the entity kind. It has
// the same columns as Describe, and every value is null.
func DescribeEmpty(e persist.Entity) (*Table, error) {
	return describe(e, false)
}

func describe(e persist.Entity, populated bool) (*Table, error) {
	if isNil(e) {
		return nil, persist.NewSchemaError("<nil>", "entity is nil")
	}
	t := &Table{Name: TableName(e)}
	if t.Name == "" {
		return nil, persist.NewSchemaError(reflect.TypeOf(e).String(), "empty table name")
	}
	seen := make(map[string]struct{})
	for _, f := range e.Fields() {
		d := f.Descriptor()
		if d.Err != nil {
			return nil, &persist.SchemaError{Entity: t.Name, Message: "field " + d.Name, Cause: d.Err}
		}
		if d.Transient {
			continue
		}
		name := d.Column()
		if name == "" {
			return nil, persist.NewSchemaError(t.Name, "field with empty column name")
		}
		if !d.Type.Valid() {
			return nil, persist.NewSchemaError(t.Name, "column %q has invalid type", name)
		}
		if _, ok := seen[name]; ok {
			return nil, persist.NewSchemaError(t.Name, "duplicate column %q", name)
		}
		seen[name] = struct{}{}
		c := &Column{
			Name:          name,
			Type:          d.Type,
			Size:          d.Size,
			Value:         field.Null(d.Type),
			PrimaryKey:    d.PrimaryKey,
			AutoIncrement: d.AutoIncrement,
			Nullable:      d.Nillable && !d.PrimaryKey,
			Comment:       d.Comment,
		}
		if populated {
			v, err := field.NewValue(d.Type, d.Value)
			if err != nil {
				return nil, persist.NewColumnInvalidError(t.Name, name, "invalid value", err)
			}
			c.Value = v
		}
		c.Insertable = !(c.PrimaryKey && c.AutoIncrement && c.Value.IsNull())
		t.Columns = append(t.Columns, c)
	}
	if len(t.Columns) == 0 {
		return nil, persist.NewSchemaError(t.Name, "entity declares no persistent columns")
	}
	return t, nil
}

func isNil(e persist.Entity) bool {
	if e == nil {
		return true
	}
	v := reflect.ValueOf(e)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
