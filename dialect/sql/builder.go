package sql

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/syssam/persist"
	"github.com/syssam/persist/schema"
)

// QueryBuilder renders single-table statements for entities in one
// dialect. It holds no per-call state and is safe for concurrent use.
type QueryBuilder struct {
	dialect Dialect
	log     *slog.Logger
}

// Option configures the QueryBuilder.
type Option func(*QueryBuilder)

// WithLogger sets the logger receiving rendered statements at debug level.
// Default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(b *QueryBuilder) {
		b.log = l
	}
}

// NewQueryBuilder returns a QueryBuilder for the given dialect.
//
//	b := sql.NewQueryBuilder(sql.Postgres())
//	stmt, err := b.Insert(person)
func NewQueryBuilder(d Dialect, opts ...Option) *QueryBuilder {
	b := &QueryBuilder{dialect: d, log: slog.Default()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Dialect returns the dialect of the builder.
func (b *QueryBuilder) Dialect() Dialect {
	return b.dialect
}

// Insert returns the INSERT statement of the entity. Only insertable columns
// are written, in declaration order:
//
//	INSERT INTO "users" ("id", "email") VALUES (1, 'a@b.com');
func (b *QueryBuilder) Insert(e persist.Entity) (string, error) {
	t, err := schema.Describe(e)
	if err != nil {
		return "", err
	}
	cols := t.InsertableColumns()
	if len(cols) == 0 {
		return "", persist.NewSchemaError(t.Name, "no insertable columns")
	}
	names := make([]string, len(cols))
	values := make([]string, len(cols))
	for i, c := range cols {
		v, err := b.dialect.QuoteValue(c.Value)
		if err != nil {
			return "", err
		}
		names[i], values[i] = c.Name, v
	}
	stmt := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s);",
		b.dialect.QuoteIdentifier(t.Name),
		b.dialect.QuoteIdentifiers(names),
		strings.Join(values, ", "),
	)
	return b.built("insert", t, stmt), nil
}

// selectSpec holds the options of a SELECT statement.
type selectSpec struct {
	columns []string
	where   []Group
}

// SelectOption configures a SELECT statement.
type SelectOption func(*selectSpec)

// Columns limits the selection to the given columns, in the given order.
// Without it, all columns are selected with *.
func Columns(names ...string) SelectOption {
	return func(s *selectSpec) {
		s.columns = append(s.columns, names...)
	}
}

// Where filters the selection by the given groups. Conditions of a group
// are joined by AND, and groups are joined by OR.
func Where(groups ...Group) SelectOption {
	return func(s *selectSpec) {
		s.where = append(s.where, groups...)
	}
}

// Select returns a SELECT statement on the table of the entity. Only the
// shape of the entity is used, not its values:
//
//	SELECT "email", "nick_name" FROM "users" WHERE ("id" = 1);
func (b *QueryBuilder) Select(e persist.Entity, opts ...SelectOption) (string, error) {
	spec := &selectSpec{}
	for _, opt := range opts {
		opt(spec)
	}
	t, err := schema.DescribeEmpty(e)
	if err != nil {
		return "", err
	}
	selection := "*"
	if len(spec.columns) > 0 {
		if err := t.ValidateColumns(spec.columns...); err != nil {
			return "", err
		}
		selection = b.dialect.QuoteIdentifiers(spec.columns)
	}
	where, err := Compose(b.dialect, t, spec.where)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "SELECT %s FROM %s", selection, b.dialect.QuoteIdentifier(t.Name))
	if where != "" {
		sb.WriteString(" WHERE ")
		sb.WriteString(where)
	}
	sb.WriteByte(';')
	return b.built("select", t, sb.String()), nil
}

// Update returns the UPDATE statement of the entity, setting every column
// except the primary key and matching the row by its primary key:
//
//	UPDATE "users" SET "nick_name" = 'Ann', "old" = 20 WHERE ("id" = 1);
func (b *QueryBuilder) Update(e persist.Entity) (string, error) {
	t, err := schema.Describe(e)
	if err != nil {
		return "", err
	}
	where, err := b.pkPredicate(t)
	if err != nil {
		return "", err
	}
	var sets []string
	for _, c := range t.Columns {
		if c.PrimaryKey {
			continue
		}
		p, err := predicate(b.dialect, c.Name, c.Value)
		if err != nil {
			return "", err
		}
		sets = append(sets, p)
	}
	if len(sets) == 0 {
		return "", persist.NewSchemaError(t.Name, "no columns to update")
	}
	stmt := fmt.Sprintf("UPDATE %s SET %s WHERE (%s);",
		b.dialect.QuoteIdentifier(t.Name),
		strings.Join(sets, ", "),
		where,
	)
	return b.built("update", t, stmt), nil
}

// Delete returns the DELETE statement of the entity, matching the row by
// its primary key:
//
//	DELETE FROM "users" WHERE ("id" = 1);
func (b *QueryBuilder) Delete(e persist.Entity) (string, error) {
	t, err := schema.Describe(e)
	if err != nil {
		return "", err
	}
	where, err := b.pkPredicate(t)
	if err != nil {
		return "", err
	}
	stmt := fmt.Sprintf("DELETE FROM %s WHERE (%s);", b.dialect.QuoteIdentifier(t.Name), where)
	return b.built("delete", t, stmt), nil
}

// pkPredicate renders the predicate matching the row of the single
// primary key column. A null key fails with a ColumnInvalidError.
func (b *QueryBuilder) pkPredicate(t *schema.Table) (string, error) {
	pk, err := t.PrimaryKey()
	if err != nil {
		return "", err
	}
	if pk.Value.IsNull() {
		return "", persist.NewColumnInvalidError(t.Name, pk.Name, "primary key value is missing", nil)
	}
	return predicate(b.dialect, pk.Name, pk.Value)
}

// CreateTable returns the CREATE TABLE statement of the entity kind:
//
//	CREATE TABLE "users" ("id" bigint NOT NULL AUTO_INCREMENT, "email" varchar(255) NOT NULL, PRIMARY KEY ("id"));
func (b *QueryBuilder) CreateTable(e persist.Entity) (string, error) {
	t, err := schema.DescribeEmpty(e)
	if err != nil {
		return "", err
	}
	defs := make([]string, 0, len(t.Columns)+1)
	for _, c := range t.Columns {
		def, err := b.columnDef(c)
		if err != nil {
			return "", err
		}
		defs = append(defs, def)
	}
	if pks := t.PrimaryKeys(); len(pks) > 0 {
		names := make([]string, len(pks))
		for i, c := range pks {
			names[i] = c.Name
		}
		defs = append(defs, b.dialect.PrimaryKeyPhrase(names))
	}
	stmt := fmt.Sprintf("%s %s (%s);",
		b.dialect.CreateTablePhrase(),
		b.dialect.QuoteIdentifier(t.Name),
		strings.Join(defs, ", "),
	)
	return b.built("create", t, stmt), nil
}

// columnDef renders the definition of a column in CREATE TABLE.
func (b *QueryBuilder) columnDef(c *schema.Column) (string, error) {
	typ, err := b.dialect.DataTypeFullName(c.Type, c.Size)
	if err != nil {
		return "", err
	}
	parts := []string{b.dialect.QuoteIdentifier(c.Name), typ}
	if c.AutoIncrement {
		if b.dialect.RequiresExplicitNotNullOnIdentity() {
			parts = append(parts, b.dialect.NullPhrase(false))
		}
		if p := b.dialect.AutoIncrementPhrase(); p != "" {
			parts = append(parts, p)
		}
		return strings.Join(parts, " "), nil
	}
	parts = append(parts, b.dialect.NullPhrase(c.Nullable))
	return strings.Join(parts, " "), nil
}

// DropTable returns the DROP TABLE statement of the entity kind.
func (b *QueryBuilder) DropTable(e persist.Entity) (string, error) {
	t, err := schema.DescribeEmpty(e)
	if err != nil {
		return "", err
	}
	stmt := fmt.Sprintf("%s %s;", b.dialect.DropTablePhrase(), b.dialect.QuoteIdentifier(t.Name))
	return b.built("drop", t, stmt), nil
}

func (b *QueryBuilder) built(op string, t *schema.Table, stmt string) string {
	b.log.Debug("statement built",
		"op", op,
		"dialect", b.dialect.Name(),
		"table", t.Name,
		"statement", stmt,
	)
	return stmt
}
