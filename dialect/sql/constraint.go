package sql

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
)

// Constraint is the kind of integrity constraint a statement violated.
type Constraint uint8

// Constraint kinds.
const (
	ConstraintNone Constraint = iota
	ConstraintUnique
	ConstraintForeignKey
	ConstraintCheck
	ConstraintNotNull
)

var constraintNames = [...]string{
	ConstraintNone:       "none",
	ConstraintUnique:     "unique",
	ConstraintForeignKey: "foreign key",
	ConstraintCheck:      "check",
	ConstraintNotNull:    "not null",
}

func (c Constraint) String() string {
	if int(c) < len(constraintNames) {
		return constraintNames[c]
	}
	return constraintNames[ConstraintNone]
}

// PostgreSQL SQLSTATE codes of class 23.
const (
	pgNotNullViolation    = "23502"
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
	pgCheckViolation      = "23514"
)

// MySQL error numbers.
const (
	mysqlBadNull          = 1048
	mysqlDuplicateEntry   = 1062
	mysqlForeignKeyParent = 1451
	mysqlForeignKeyChild  = 1452
	mysqlCheckViolation   = 3819
)

// SQLite extended result codes.
const (
	sqliteConstraintCheck      = 275
	sqliteConstraintForeignKey = 787
	sqliteConstraintNotNull    = 1299
	sqliteConstraintPrimaryKey = 1555
	sqliteConstraintUnique     = 2067
)

// sqliteError is implemented by the errors of modernc.org/sqlite.
type sqliteError interface {
	error
	Code() int
}

// ConstraintOf classifies the constraint violation reported by err, if any.
// Driver error codes are checked first, and the error text is the fallback
// for wrapped or unknown drivers.
func ConstraintOf(err error) Constraint {
	if err == nil {
		return ConstraintNone
	}
	var pe *pq.Error
	if errors.As(err, &pe) {
		switch string(pe.Code) {
		case pgUniqueViolation:
			return ConstraintUnique
		case pgForeignKeyViolation:
			return ConstraintForeignKey
		case pgCheckViolation:
			return ConstraintCheck
		case pgNotNullViolation:
			return ConstraintNotNull
		}
		return ConstraintNone
	}
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		switch me.Number {
		case mysqlDuplicateEntry:
			return ConstraintUnique
		case mysqlForeignKeyParent, mysqlForeignKeyChild:
			return ConstraintForeignKey
		case mysqlCheckViolation:
			return ConstraintCheck
		case mysqlBadNull:
			return ConstraintNotNull
		}
		return ConstraintNone
	}
	var se sqliteError
	if errors.As(err, &se) {
		switch se.Code() {
		case sqliteConstraintUnique, sqliteConstraintPrimaryKey:
			return ConstraintUnique
		case sqliteConstraintForeignKey:
			return ConstraintForeignKey
		case sqliteConstraintCheck:
			return ConstraintCheck
		case sqliteConstraintNotNull:
			return ConstraintNotNull
		}
	}
	msg := err.Error()
	switch {
	case containsAny(msg, "Error 1062", "violates unique constraint", "UNIQUE constraint failed"):
		return ConstraintUnique
	case containsAny(msg, "Error 1451", "Error 1452", "violates foreign key constraint", "FOREIGN KEY constraint failed"):
		return ConstraintForeignKey
	case containsAny(msg, "Error 3819", "violates check constraint", "CHECK constraint failed"):
		return ConstraintCheck
	case containsAny(msg, "Error 1048", "violates not-null constraint", "NOT NULL constraint failed"):
		return ConstraintNotNull
	}
	return ConstraintNone
}

// IsConstraintError reports if err resulted from a constraint violation.
func IsConstraintError(err error) bool {
	return ConstraintOf(err) != ConstraintNone
}

// IsUniqueConstraintError reports if err resulted from a uniqueness or
// primary key violation.
func IsUniqueConstraintError(err error) bool {
	return ConstraintOf(err) == ConstraintUnique
}

// IsForeignKeyConstraintError reports if err resulted from a foreign key violation.
func IsForeignKeyConstraintError(err error) bool {
	return ConstraintOf(err) == ConstraintForeignKey
}

// IsCheckConstraintError reports if err resulted from a check constraint violation.
func IsCheckConstraintError(err error) bool {
	return ConstraintOf(err) == ConstraintCheck
}

func containsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
