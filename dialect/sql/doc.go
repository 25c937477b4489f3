// Package sql renders entities into single-table SQL statements and runs
// them through database/sql.
//
// # Dialects
//
// A Dialect holds the syntax rules of a target database: identifier and
// value quoting, the data type of every field type, and the DDL phrases.
// The built-in dialects are H2, Postgres, MySQL and SQLite:
//
//	d := sql.Postgres()
//	d.QuoteIdentifier("users") // "users"
//
// Dialects are Base values configured with options, so a variant only
// states what differs:
//
//	d := sql.NewDialect("mssql",
//	    sql.WithIdentifierQuote("[", "]"),
//	    sql.WithDataTypes(sql.DataType{Type: field.TypeString, Pattern: "nvarchar(%d)", QuoteRequired: true}),
//	)
//
// LoadDialect reads the same definition from YAML, optionally starting
// from a built-in base.
//
// # Statements
//
// A QueryBuilder renders the statements of an entity. Values are inlined
// as literals and every statement ends with a semicolon:
//
//	b := sql.NewQueryBuilder(sql.H2())
//	b.Insert(user)   // INSERT INTO "users" ("id", "email") VALUES (1, 'a@b.com');
//	b.Update(user)   // UPDATE "users" SET "email" = 'a@b.com' WHERE ("id" = 1);
//	b.Delete(user)   // DELETE FROM "users" WHERE ("id" = 1);
//	b.CreateTable(User{})
//	b.DropTable(User{})
//
// # Where Clauses
//
// Select filters rows with groups of equality conditions. Conditions of a
// group are joined by AND, and groups are joined by OR:
//
//	b.Select(User{},
//	    sql.Columns("email"),
//	    sql.Where(sql.And(sql.EQ("id", 1), sql.EQ("old", 20)), sql.And(sql.EQ("id", 2))),
//	)
//	// SELECT "email" FROM "users" WHERE ("id" = 1 AND "old" = 20) OR ("id" = 2);
//
// Columns are checked against the table before anything is rendered.
//
// # Execution
//
// Driver wraps a *sql.DB, and Session runs builder output on a driver or
// a transaction:
//
//	drv, err := sql.Open(dialect.SQLite, "file:app.db")
//	s := sql.NewSession(drv, sql.NewQueryBuilder(sql.SQLite()))
//	res, err := s.Insert(ctx, user)
//
// StatsDriver and DebugDriver wrap any dialect.Driver with statement
// statistics and statement logging.
package sql
