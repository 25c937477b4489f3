// Package field provides fluent builders for declaring entity fields.
//
// Field names follow database conventions (snake_case). A field becomes a
// table column unless it is marked transient:
//
//	field.Int64("id")        // column: id
//	field.String("name").    // column: nick_name
//	    StorageKey("nick_name")
//
// # Field Types
//
//	field.Int("count")       // int
//	field.Int64("id")        // bigint
//	field.String("name")     // varchar(N)
//	field.Bool("active")     // boolean
//	field.Float("price")     // double precision
//	field.Time("created_at") // timestamp
//	field.UUID("token")      // uuid
//
// The SQL type name of each field type is decided by the active dialect.
//
// # Field Options
//
//	field.Int64("id").
//	    PrimaryKey().     // primary key column
//	    AutoIncrement()   // value generated by the database
//
//	field.String("email").
//	    MaxLen(120).      // varchar(120)
//	    Nillable()        // NULL allowed
//
//	field.Int("index").
//	    Transient()       // never persisted
//
// # Values
//
// Builders are generic over the Go type of the field, so bound values are
// checked at compile time. Ptr binds an optional value; a nil pointer is
// the null value:
//
//	func (p Person) Fields() []persist.Field {
//	    return []persist.Field{
//	        field.Int64("id").Ptr(p.ID).PrimaryKey().AutoIncrement(),
//	        field.String("email").Value(p.Email),
//	    }
//	}
package field
