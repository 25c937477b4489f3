// Package schema derives table descriptors from entities.
//
// A descriptor lists the persistent columns of an entity in declaration
// order, with the markers used by statement builders:
//
//	t, err := schema.Describe(person)      // current field values
//	t, err := schema.DescribeEmpty(Person{}) // column shape only
//
// # Derivation Rules
//
//   - The table name is Config().Table, or the snake_case form of the
//     entity type name (PersonRecord → person_record).
//   - The column name is the field StorageKey, or the field name.
//   - Transient fields are not columns.
//   - An auto-increment primary key without a value is not insertable.
//   - Absent values are null.
//
// Derivation fails with a persist.SchemaError when the entity has no
// persistent columns, a duplicate column name, or an invalid field.
package schema
