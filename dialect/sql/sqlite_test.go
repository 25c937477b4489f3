package sql_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/persist"
	"github.com/syssam/persist/dialect"
	"github.com/syssam/persist/dialect/sql"
	_ "github.com/syssam/persist/dialect/sql/drivers"
	"github.com/syssam/persist/schema/field"
)

type Account struct {
	persist.Schema
	ID      *int64
	Owner   string
	Balance *int
}

func (a Account) Fields() []persist.Field {
	return []persist.Field{
		field.Int64("id").Ptr(a.ID).PrimaryKey().AutoIncrement(),
		field.String("owner").Value(a.Owner).MaxLen(64),
		field.Int("balance").Ptr(a.Balance).Nillable(),
	}
}

func ptr[T any](v T) *T { return &v }

func TestSQLite(t *testing.T) {
	drv, err := sql.Open(dialect.SQLite, "file::memory:")
	require.NoError(t, err)
	defer drv.Close()
	drv.DB().SetMaxOpenConns(1)

	ctx := context.Background()
	stats := sql.NewStatsDriver(drv)
	s := sql.NewSession(stats, sql.NewQueryBuilder(sql.SQLite()))

	require.NoError(t, s.DropTable(ctx, Account{}))
	require.NoError(t, s.CreateTable(ctx, Account{}))

	res, err := s.Insert(ctx, Account{Owner: "ann", Balance: ptr(10)})
	require.NoError(t, err)
	id, err := res.LastInsertId()
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	_, err = s.Insert(ctx, Account{Owner: "o'neil"})
	require.NoError(t, err)

	_, err = s.Update(ctx, Account{ID: ptr(id), Owner: "ann", Balance: ptr(25)})
	require.NoError(t, err)

	_, err = s.Insert(ctx, Account{ID: ptr[int64](2), Owner: "dup"})
	require.Error(t, err)
	assert.True(t, sql.IsUniqueConstraintError(err))

	owners := func(opts ...sql.SelectOption) map[string]*int64 {
		t.Helper()
		rows, err := s.Select(ctx, Account{}, append([]sql.SelectOption{sql.Columns("owner", "balance")}, opts...)...)
		require.NoError(t, err)
		defer rows.Close()
		got := make(map[string]*int64)
		for rows.Next() {
			var (
				owner   string
				balance *int64
			)
			require.NoError(t, rows.Scan(&owner, &balance))
			got[owner] = balance
		}
		require.NoError(t, rows.Err())
		return got
	}
	assert.Equal(t, map[string]*int64{"ann": ptr[int64](25), "o'neil": nil}, owners())
	assert.Equal(t, map[string]*int64{"o'neil": nil}, owners(sql.Where(sql.And(sql.EQ("owner", "o'neil")))))
	assert.Len(t, owners(sql.Where(sql.And(sql.EQ("id", 1)), sql.And(sql.EQ("id", 2)))), 2)

	res, err = s.Delete(ctx, Account{ID: ptr(id)})
	require.NoError(t, err)
	n, err := res.RowsAffected()
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.Len(t, owners(), 1)

	st := stats.QueryStats().Stats()
	assert.Equal(t, int64(4), st.TotalQueries)
	assert.Equal(t, int64(7), st.TotalExecs)
	assert.Equal(t, int64(1), st.Errors)
}
