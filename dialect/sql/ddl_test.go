package sql

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/persist"
	"github.com/syssam/persist/dialect"
)

func TestCreateTable(t *testing.T) {
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata"),
		goldie.WithNameSuffix(".golden"),
	)
	tests := []struct {
		name    string
		dialect Dialect
		entity  persist.Entity
	}{
		{"create_users_h2", H2(), User{}},
		{"create_users_postgres", Postgres(), User{}},
		{"create_users_mysql", MySQL(), User{}},
		{"create_users_sqlite", SQLite(), User{}},
		{"create_event_postgres", Postgres(), Event{}},
		{"create_event_mysql", MySQL(), Event{}},
		{"create_event_sqlite", SQLite(), Event{}},
		{"create_tag_h2", H2(), Tag{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt, err := NewQueryBuilder(tt.dialect).CreateTable(tt.entity)
			require.NoError(t, err)
			g.Assert(t, tt.name, []byte(stmt+"\n"))
		})
	}
}

func TestCreateTable_IgnoresValues(t *testing.T) {
	b := NewQueryBuilder(H2())
	empty, err := b.CreateTable(User{})
	require.NoError(t, err)
	full, err := b.CreateTable(ann())
	require.NoError(t, err)
	assert.Equal(t, empty, full)
}

func TestCreateTable_UnsupportedType(t *testing.T) {
	_, err := NewQueryBuilder(H2()).CreateTable(Event{})
	require.Error(t, err)
	assert.True(t, persist.IsUnsupportedType(err))
	var ut *persist.UnsupportedTypeError
	require.ErrorAs(t, err, &ut)
	assert.Equal(t, dialect.H2, ut.Dialect)
}

func TestDropTable(t *testing.T) {
	tests := []struct {
		dialect Dialect
		want    string
	}{
		{H2(), `DROP TABLE IF EXISTS "users";`},
		{MySQL(), "DROP TABLE IF EXISTS `users`;"},
		{H2(WithDropTable("DROP TABLE")), `DROP TABLE "users";`},
	}
	for _, tt := range tests {
		t.Run(tt.dialect.Name(), func(t *testing.T) {
			got, err := NewQueryBuilder(tt.dialect).DropTable(ann())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
