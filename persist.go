// Package persist maps entities to single-table SQL statements and schema
// metadata.
//
// An entity declares its columns through Fields, binding the current values
// of its receiver:
//
//	type Person struct {
//	    persist.Schema
//	    ID    *int64
//	    Email string
//	}
//
//	func (Person) Config() persist.Config {
//	    return persist.Config{Table: "users"}
//	}
//
//	func (p Person) Fields() []persist.Field {
//	    return []persist.Field{
//	        field.Int64("id").Ptr(p.ID).PrimaryKey().AutoIncrement(),
//	        field.String("email").Value(p.Email),
//	    }
//	}
//
// The schema package derives table descriptors from entities, and the
// dialect/sql package renders them into statements for a target database.
package persist

import "github.com/syssam/persist/schema/field"

type (
	// Entity is the interface implemented by persistent types. Fields
	// returns the fields in declaration order; the order is kept for
	// column lists of INSERT statements.
	Entity interface {
		Fields() []Field
		Config() Config
	}

	// Field is the interface for entity fields.
	// It is implemented by the builders of the field package.
	Field interface {
		Descriptor() *field.Descriptor
	}

	// Config holds the configuration of an entity.
	Config struct {
		// Table overrides the table name of the entity. Defaults to the
		// snake_case form of the type name.
		Table string
	}

	// Schema is the default implementation of Entity. Embed it in entity
	// types and override the methods you need.
	Schema struct{}
)

// Fields of the schema.
func (Schema) Fields() []Field { return nil }

// Config of the schema.
func (Schema) Config() Config { return Config{} }

var _ Entity = (*Schema)(nil)
