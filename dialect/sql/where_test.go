package sql

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/persist"
	"github.com/syssam/persist/schema"
)

func TestCompose(t *testing.T) {
	table, err := schema.DescribeEmpty(User{})
	require.NoError(t, err)
	d := H2()

	tests := []struct {
		name   string
		groups []Group
		want   string
	}{
		{"none", nil, ""},
		{"single", []Group{And(EQ("id", 1))}, `("id" = 1)`},
		{"conjunction", []Group{And(EQ("id", 1), EQ("nick_name", "Ann"))}, `("id" = 1 AND "nick_name" = 'Ann')`},
		{
			"disjunction",
			[]Group{And(EQ("id", 1), EQ("old", 20)), And(EQ("email", "a@b.com"))},
			`("id" = 1 AND "old" = 20) OR ("email" = 'a@b.com')`,
		},
		{"empty_group", []Group{And(), And(EQ("id", int64(2)))}, `("id" = 2)`},
		{"only_empty", []Group{And()}, ""},
		{"null", []Group{And(EQ("nick_name", nil))}, `("nick_name" = NULL)`},
		{"pointer", []Group{And(EQ("old", ptr(30)))}, `("old" = 30)`},
		{"escaped", []Group{And(EQ("email", "o'neil@b.com"))}, `("email" = 'o''neil@b.com')`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compose(d, table, tt.groups)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCompose_UnknownColumn(t *testing.T) {
	table, err := schema.DescribeEmpty(User{})
	require.NoError(t, err)

	// The unknown column is in the last group; nothing is rendered.
	_, err = Compose(H2(), table, []Group{
		And(EQ("id", 1)),
		And(EQ("name", "Ann")),
	})
	require.Error(t, err)
	assert.True(t, persist.IsColumnNotFound(err))
	var nf *persist.ColumnNotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "name", nf.Column)
	assert.Equal(t, "users", nf.Table)
}

func TestCompose_InvalidValue(t *testing.T) {
	table, err := schema.DescribeEmpty(User{})
	require.NoError(t, err)

	_, err = Compose(H2(), table, []Group{And(EQ("id", "1 OR 1=1"))})
	require.Error(t, err)
	assert.True(t, persist.IsColumnInvalid(err))
	assert.Contains(t, err.Error(), `"id"`)

	for _, v := range []any{^uint(0), uint64(math.MaxInt64 + 1)} {
		_, err = Compose(H2(), table, []Group{And(EQ("id", v))})
		require.Error(t, err)
		assert.True(t, persist.IsColumnInvalid(err), "%T overflowing int64", v)
	}
	got, err := Compose(H2(), table, []Group{And(EQ("id", uint64(math.MaxInt64)))})
	require.NoError(t, err)
	assert.Equal(t, `("id" = 9223372036854775807)`, got)
}

func TestGroupColumns(t *testing.T) {
	g := And(EQ("a", 1), EQ("b", 2))
	assert.Equal(t, []string{"a", "b"}, g.Columns())
	assert.Empty(t, And().Columns())
}
