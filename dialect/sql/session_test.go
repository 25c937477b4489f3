package sql

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/persist"
)

func TestSession(t *testing.T) {
	drv, mock := newMock(t)
	s := NewSession(drv, NewQueryBuilder(H2()))
	ctx := context.Background()

	mock.ExpectExec(`INSERT INTO "users" ("id", "nick_name", "old", "email") VALUES (1, 'Ann', 20, 'a@b.com');`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`UPDATE "users" SET "nick_name" = 'Ann', "old" = 20, "email" = 'a@b.com' WHERE ("id" = 1);`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT "email" FROM "users" WHERE ("id" = 1);`).
		WillReturnRows(sqlmock.NewRows([]string{"email"}).AddRow("a@b.com"))
	mock.ExpectExec(`DELETE FROM "users" WHERE ("id" = 1);`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	res, err := s.Insert(ctx, ann())
	require.NoError(t, err)
	id, err := res.LastInsertId()
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	res, err = s.Update(ctx, ann())
	require.NoError(t, err)
	n, err := res.RowsAffected()
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	rows, err := s.Select(ctx, User{}, Columns("email"), Where(And(EQ("id", 1))))
	require.NoError(t, err)
	require.True(t, rows.Next())
	var email string
	require.NoError(t, rows.Scan(&email))
	assert.Equal(t, "a@b.com", email)
	require.NoError(t, rows.Close())

	_, err = s.Delete(ctx, ann())
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSession_DDL(t *testing.T) {
	drv, mock := newMock(t)
	s := NewSession(drv, NewQueryBuilder(H2()))
	ctx := context.Background()

	mock.ExpectExec(`DROP TABLE IF EXISTS "tag";`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`CREATE TABLE "tag" ("name" varchar(255) NOT NULL);`).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, s.DropTable(ctx, Tag{}))
	require.NoError(t, s.CreateTable(ctx, Tag{}))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSession_Errors(t *testing.T) {
	drv, mock := newMock(t)
	s := NewSession(drv, NewQueryBuilder(H2()))
	ctx := context.Background()

	// Build errors never reach the database.
	_, err := s.Delete(ctx, User{})
	assert.True(t, persist.IsColumnInvalid(err))
	_, err = s.Select(ctx, User{}, Columns("unknown"))
	assert.True(t, persist.IsColumnNotFound(err))
	assert.True(t, persist.IsUnsupportedType(s.CreateTable(ctx, Event{})))

	failure := errors.New("disk full")
	mock.ExpectExec(`INSERT INTO "tag" ("name") VALUES ('go');`).WillReturnError(failure)
	_, err = s.Insert(ctx, Tag{Name: "go"})
	assert.ErrorIs(t, err, failure)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSession_Tx(t *testing.T) {
	drv, mock := newMock(t)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "tag" ("name") VALUES ('go');`).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	tx, err := drv.Tx(ctx)
	require.NoError(t, err)
	s := NewSession(tx, NewQueryBuilder(H2()))
	assert.Equal(t, "h2", s.Builder().Dialect().Name())
	_, err = s.Insert(ctx, Tag{Name: "go"})
	require.NoError(t, err)
	require.NoError(t, tx.Commit())
	require.NoError(t, mock.ExpectationsWereMet())
}
