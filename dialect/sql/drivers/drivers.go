// Package drivers registers the database/sql drivers of the supported
// dialects under their dialect names. Import it for its side effects:
//
//	import _ "github.com/syssam/persist/dialect/sql/drivers"
//
//	drv, err := sql.Open(dialect.SQLite, "file::memory:")
package drivers

import (
	_ "github.com/go-sql-driver/mysql" // mysql
	_ "github.com/lib/pq"              // postgres
	_ "modernc.org/sqlite"             // sqlite
)
