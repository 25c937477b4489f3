package sql

import (
	"fmt"
	"math"
	"strings"

	"github.com/lib/pq"

	"github.com/syssam/persist"
	"github.com/syssam/persist/dialect"
	"github.com/syssam/persist/schema/field"
)

// Dialect holds the syntax rules of one target database. Statement
// builders go through it for every identifier, literal and DDL phrase
// they render. Implementations must be safe for concurrent use.
type Dialect interface {
	// Name returns the dialect name, like dialect.Postgres.
	Name() string
	// QuoteIdentifier wraps a table or column name.
	QuoteIdentifier(name string) string
	// QuoteIdentifiers quotes and comma-joins the given names.
	QuoteIdentifiers(names []string) string
	// QuoteValue renders a typed value as a SQL literal.
	QuoteValue(v field.Value) (string, error)
	// QuoteValues renders and comma-joins the given values.
	QuoteValues(vs []field.Value) (string, error)
	// DataType returns the data type registered for t.
	DataType(t field.Type) (DataType, bool)
	// DataTypeFullName returns the SQL type name of t for a column of the given length.
	DataTypeFullName(t field.Type, length int) (string, error)
	CreateTablePhrase() string
	DropTablePhrase() string
	PrimaryKeyPhrase(columns []string) string
	AutoIncrementPhrase() string
	NullPhrase(isNull bool) string
	// RequiresExplicitNotNullOnIdentity reports if identity columns need
	// an explicit NOT NULL.
	RequiresExplicitNotNullOnIdentity() bool
}

// Base is a configurable Dialect implementation. The built-in dialects are
// Base values with different options.
type Base struct {
	name              string
	identOpen         string
	identClose        string
	quoteIdent        func(string) string
	valueQuote        string
	escape            func(string) string
	types             *Registry
	createTable       string
	dropTable         string
	autoIncrement     string
	nullPhrase        string
	notNullPhrase     string
	notNullOnIdentity bool
}

// DialectOption configures a Base dialect.
type DialectOption func(*Base)

// WithIdentifierQuote sets the delimiters wrapping identifiers.
func WithIdentifierQuote(left, right string) DialectOption {
	return func(b *Base) {
		b.identOpen, b.identClose = left, right
		b.quoteIdent = nil
	}
}

// WithIdentifierQuoter sets a function quoting identifiers. It takes
// precedence over the identifier delimiters.
func WithIdentifierQuoter(f func(string) string) DialectOption {
	return func(b *Base) {
		b.quoteIdent = f
	}
}

// WithValueQuote sets the delimiter wrapping quoted literals.
func WithValueQuote(q string) DialectOption {
	return func(b *Base) {
		b.valueQuote = q
	}
}

// WithEscaper sets the function escaping dialect-specific characters in
// the text of quoted literals, like backslashes in MySQL. It runs before
// the value quote is doubled and must leave the value quote untouched.
func WithEscaper(f func(string) string) DialectOption {
	return func(b *Base) {
		b.escape = f
	}
}

// WithDataTypes registers data types, overriding previous entries of the
// same field type.
func WithDataTypes(types ...DataType) DialectOption {
	return func(b *Base) {
		b.types = b.types.With(types...)
	}
}

// WithAutoIncrement sets the identity phrase of auto-increment columns.
// An empty phrase renders nothing.
func WithAutoIncrement(phrase string) DialectOption {
	return func(b *Base) {
		b.autoIncrement = phrase
	}
}

// WithNotNullOnIdentity sets whether identity columns get an explicit NOT NULL.
func WithNotNullOnIdentity(v bool) DialectOption {
	return func(b *Base) {
		b.notNullOnIdentity = v
	}
}

// WithCreateTable sets the CREATE TABLE phrase.
func WithCreateTable(phrase string) DialectOption {
	return func(b *Base) {
		b.createTable = phrase
	}
}

// WithDropTable sets the DROP TABLE phrase.
func WithDropTable(phrase string) DialectOption {
	return func(b *Base) {
		b.dropTable = phrase
	}
}

// NewDialect returns a Base dialect with the given name. Without options it
// quotes identifiers with double quotes and text with single quotes, and
// has no data types registered.
func NewDialect(name string, opts ...DialectOption) *Base {
	b := &Base{
		name:              name,
		identOpen:         `"`,
		identClose:        `"`,
		valueQuote:        "'",
		types:             NewRegistry(),
		createTable:       "CREATE TABLE",
		dropTable:         "DROP TABLE IF EXISTS",
		autoIncrement:     "AUTO_INCREMENT",
		nullPhrase:        "NULL",
		notNullPhrase:     "NOT NULL",
		notNullOnIdentity: true,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Name implements Dialect.
func (b *Base) Name() string { return b.name }

// QuoteIdentifier implements Dialect. Embedded closing delimiters are doubled.
func (b *Base) QuoteIdentifier(name string) string {
	if b.quoteIdent != nil {
		return b.quoteIdent(name)
	}
	return b.identOpen + strings.ReplaceAll(name, b.identClose, b.identClose+b.identClose) + b.identClose
}

// QuoteIdentifiers implements Dialect.
func (b *Base) QuoteIdentifiers(names []string) string {
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = b.QuoteIdentifier(name)
	}
	return strings.Join(quoted, ", ")
}

// QuoteValue implements Dialect. The null value renders as the null phrase,
// and a type without a registered data type fails with an
// UnsupportedTypeError.
func (b *Base) QuoteValue(v field.Value) (string, error) {
	if v.IsNull() {
		return b.NullPhrase(true), nil
	}
	dt, ok := b.types.Lookup(v.Type)
	if !ok {
		return "", persist.NewUnsupportedTypeError(v.Type, b.name)
	}
	if f, ok := v.V.(float64); ok && (math.IsNaN(f) || math.IsInf(f, 0)) {
		return "", fmt.Errorf("dialect/sql: non-finite value %v has no literal in dialect %s", f, b.name)
	}
	s := v.String()
	if !dt.QuoteRequired {
		return s, nil
	}
	if b.escape != nil {
		s = b.escape(s)
	}
	s = strings.ReplaceAll(s, b.valueQuote, b.valueQuote+b.valueQuote)
	return b.valueQuote + s + b.valueQuote, nil
}

// QuoteValues implements Dialect.
func (b *Base) QuoteValues(vs []field.Value) (string, error) {
	quoted := make([]string, len(vs))
	for i, v := range vs {
		s, err := b.QuoteValue(v)
		if err != nil {
			return "", err
		}
		quoted[i] = s
	}
	return strings.Join(quoted, ", "), nil
}

// DataType implements Dialect.
func (b *Base) DataType(t field.Type) (DataType, bool) {
	return b.types.Lookup(t)
}

// DataTypeFullName implements Dialect.
func (b *Base) DataTypeFullName(t field.Type, length int) (string, error) {
	dt, ok := b.types.Lookup(t)
	if !ok {
		return "", persist.NewUnsupportedTypeError(t, b.name)
	}
	return dt.FullName(length), nil
}

// CreateTablePhrase implements Dialect.
func (b *Base) CreateTablePhrase() string { return b.createTable }

// DropTablePhrase implements Dialect.
func (b *Base) DropTablePhrase() string { return b.dropTable }

// PrimaryKeyPhrase implements Dialect.
func (b *Base) PrimaryKeyPhrase(columns []string) string {
	return fmt.Sprintf("PRIMARY KEY (%s)", b.QuoteIdentifiers(columns))
}

// AutoIncrementPhrase implements Dialect.
func (b *Base) AutoIncrementPhrase() string { return b.autoIncrement }

// NullPhrase implements Dialect.
func (b *Base) NullPhrase(isNull bool) string {
	if isNull {
		return b.nullPhrase
	}
	return b.notNullPhrase
}

// RequiresExplicitNotNullOnIdentity implements Dialect.
func (b *Base) RequiresExplicitNotNullOnIdentity() bool { return b.notNullOnIdentity }

// H2 returns the H2 dialect.
func H2(opts ...DialectOption) *Base {
	return NewDialect(dialect.H2, append([]DialectOption{
		WithDataTypes(
			DataType{Type: field.TypeInt, Pattern: "int"},
			DataType{Type: field.TypeInt64, Pattern: "bigint"},
			DataType{Type: field.TypeString, Pattern: "varchar(%d)", QuoteRequired: true},
			DataType{Type: field.TypeBool, Pattern: "boolean"},
		),
	}, opts...)...)
}

// Postgres returns the PostgreSQL dialect.
func Postgres(opts ...DialectOption) *Base {
	return NewDialect(dialect.Postgres, append([]DialectOption{
		WithIdentifierQuoter(pq.QuoteIdentifier),
		WithAutoIncrement("GENERATED BY DEFAULT AS IDENTITY"),
		WithNotNullOnIdentity(false),
		WithDataTypes(
			DataType{Type: field.TypeInt, Pattern: "integer"},
			DataType{Type: field.TypeInt64, Pattern: "bigint"},
			DataType{Type: field.TypeString, Pattern: "varchar(%d)", QuoteRequired: true},
			DataType{Type: field.TypeBool, Pattern: "boolean"},
			DataType{Type: field.TypeFloat64, Pattern: "double precision"},
			DataType{Type: field.TypeTime, Pattern: "timestamp", QuoteRequired: true},
			DataType{Type: field.TypeUUID, Pattern: "uuid", QuoteRequired: true},
		),
	}, opts...)...)
}

// MySQL returns the MySQL dialect.
func MySQL(opts ...DialectOption) *Base {
	return NewDialect(dialect.MySQL, append([]DialectOption{
		WithIdentifierQuote("`", "`"),
		WithEscaper(escapeBackslash),
		WithDataTypes(
			DataType{Type: field.TypeInt, Pattern: "int"},
			DataType{Type: field.TypeInt64, Pattern: "bigint"},
			DataType{Type: field.TypeString, Pattern: "varchar(%d)", QuoteRequired: true},
			DataType{Type: field.TypeBool, Pattern: "boolean"},
			DataType{Type: field.TypeFloat64, Pattern: "double"},
			DataType{Type: field.TypeTime, Pattern: "datetime", QuoteRequired: true},
			DataType{Type: field.TypeUUID, Pattern: "char(36)", QuoteRequired: true},
		),
	}, opts...)...)
}

// SQLite returns the SQLite dialect. Integer primary keys are rowid
// aliases, so identity columns get no extra phrase.
func SQLite(opts ...DialectOption) *Base {
	return NewDialect(dialect.SQLite, append([]DialectOption{
		WithAutoIncrement(""),
		WithNotNullOnIdentity(false),
		WithDataTypes(
			DataType{Type: field.TypeInt, Pattern: "integer"},
			DataType{Type: field.TypeInt64, Pattern: "integer"},
			DataType{Type: field.TypeString, Pattern: "varchar(%d)", QuoteRequired: true},
			DataType{Type: field.TypeBool, Pattern: "boolean"},
			DataType{Type: field.TypeFloat64, Pattern: "real"},
			DataType{Type: field.TypeTime, Pattern: "datetime", QuoteRequired: true},
			DataType{Type: field.TypeUUID, Pattern: "text", QuoteRequired: true},
		),
	}, opts...)...)
}

// For returns the built-in dialect with the given name.
func For(name string, opts ...DialectOption) (Dialect, error) {
	return builtin(name, opts...)
}

func builtin(name string, opts ...DialectOption) (*Base, error) {
	switch name {
	case dialect.H2:
		return H2(opts...), nil
	case dialect.Postgres:
		return Postgres(opts...), nil
	case dialect.MySQL:
		return MySQL(opts...), nil
	case dialect.SQLite:
		return SQLite(opts...), nil
	default:
		return nil, fmt.Errorf("dialect/sql: unsupported dialect %q", name)
	}
}

// escapeBackslash doubles backslashes, which MySQL treats as escape
// characters inside string literals.
func escapeBackslash(s string) string {
	return strings.ReplaceAll(s, `\`, `\\`)
}

var _ Dialect = (*Base)(nil)
