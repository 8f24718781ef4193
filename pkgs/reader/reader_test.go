package reader

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aledsdavies/malgo/pkgs/printer"
	"github.com/aledsdavies/malgo/pkgs/types"
)

// valueEqual lets cmp.Diff compare *types.Value by this dialect's own
// notion of equality (types.Equal) rather than by struct field, since
// Value's fields are unexported and two equal lists need not share a
// backing array.
var valueEqual = cmp.Comparer(func(a, b *types.Value) bool {
	if a == nil || b == nil {
		return a == b
	}
	return types.Equal(a, b)
})

func TestReadStrRoundTripsThroughPrinter(t *testing.T) {
	forms := []string{
		`(+ 1 (* 2 3))`,
		`[1 "two" :three nil true false]`,
		`{:a 1 "b" [2 3]}`,
		`(quote (a b c))`,
	}
	for _, src := range forms {
		original, err := ReadStr(src)
		require.NoError(t, err)

		printed := printer.PrStr(original, true)
		reparsed, err := ReadStr(printed)
		require.NoError(t, err)

		if diff := cmp.Diff(original, reparsed, valueEqual); diff != "" {
			t.Errorf("round trip through %q changed structure:\n%s", printed, diff)
		}
	}
}

func TestReadStrInt(t *testing.T) {
	v, err := ReadStr("42")
	require.NoError(t, err)
	require.Equal(t, types.KindInt, v.Kind())
	assert.Equal(t, int64(42), v.Int())
}

func TestReadStrList(t *testing.T) {
	v, err := ReadStr("(+ 1 2)")
	require.NoError(t, err)
	require.Equal(t, types.KindList, v.Kind())
	items := v.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "+", items[0].Str())
}

func TestReadStrVectorAndMap(t *testing.T) {
	v, err := ReadStr("[1 2 3]")
	require.NoError(t, err)
	assert.Equal(t, types.KindVector, v.Kind())

	m, err := ReadStr(`{:a 1 "b" 2}`)
	require.NoError(t, err)
	require.Equal(t, types.KindMap, m.Kind())
	assert.Len(t, m.Pairs(), 2)
}

func TestReadStrOddMapIsError(t *testing.T) {
	_, err := ReadStr("{:a 1 :b}")
	require.Error(t, err)
}

func TestReadStrQuoteForms(t *testing.T) {
	v, err := ReadStr("'x")
	require.NoError(t, err)
	require.Equal(t, types.KindList, v.Kind())
	assert.Equal(t, "quote", v.Items()[0].Str())

	v, err = ReadStr("`(a ~b ~@c)")
	require.NoError(t, err)
	assert.Equal(t, "quasiquote", v.Items()[0].Str())
}

func TestReadStrDeref(t *testing.T) {
	v, err := ReadStr("@a")
	require.NoError(t, err)
	assert.Equal(t, "deref", v.Items()[0].Str())
}

func TestReadStrWithMeta(t *testing.T) {
	v, err := ReadStr("^{:a 1} [1 2]")
	require.NoError(t, err)
	require.Equal(t, types.KindList, v.Kind())
	assert.Equal(t, "with-meta", v.Items()[0].Str())
}

func TestReadStrKeywordAndLiterals(t *testing.T) {
	v, err := ReadStr(":foo")
	require.NoError(t, err)
	assert.True(t, v.IsKeyword())
	assert.Equal(t, "foo", v.KeywordName())

	v, err = ReadStr("nil")
	require.NoError(t, err)
	assert.True(t, v.IsNil())

	v, err = ReadStr("true")
	require.NoError(t, err)
	assert.Equal(t, types.True, v)
}

func TestReadStrUnbalancedParens(t *testing.T) {
	_, err := ReadStr("(+ 1 2")
	require.Error(t, err)
}

func TestReadStrBlankInput(t *testing.T) {
	v, err := ReadStr("   ; just a comment\n")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestReadStrStringEscapes(t *testing.T) {
	v, err := ReadStr(`"a\nb\"c"`)
	require.NoError(t, err)
	assert.Equal(t, "a\nb\"c", v.Str())
}
