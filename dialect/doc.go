// Package dialect names the supported database dialects and defines the
// interfaces of the execution layer.
//
// # Supported Dialects
//
//	dialect.H2       = "h2"
//	dialect.Postgres = "postgres"
//	dialect.MySQL    = "mysql"
//	dialect.SQLite   = "sqlite"
//
// # Driver Interface
//
// Rendered statements are run through a Driver:
//
//	type Driver interface {
//	    Exec(ctx context.Context, query string, args, v any) error
//	    Query(ctx context.Context, query string, args, v any) error
//	    Tx(ctx context.Context) (Tx, error)
//	    Close() error
//	    Dialect() string
//	}
//
// The Tx interface adds Commit and Rollback to the ExecQuerier operations.
//
// # Sub-packages
//
//   - dialect/sql: dialect rendering rules, statement builders and the
//     database/sql driver
//   - dialect/sql/drivers: database/sql driver registration
package dialect
