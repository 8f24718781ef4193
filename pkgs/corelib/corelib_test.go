package corelib_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aledsdavies/malgo/pkgs/corelib"
	"github.com/aledsdavies/malgo/pkgs/env"
	"github.com/aledsdavies/malgo/pkgs/errors"
	"github.com/aledsdavies/malgo/pkgs/eval"
	"github.com/aledsdavies/malgo/pkgs/types"
)

func TestMain(m *testing.M) {
	corelib.Apply = eval.Apply
	m.Run()
}

func call(t *testing.T, e *env.Environment, name string, args ...*types.Value) *types.Value {
	t.Helper()
	fn, err := e.Get(name)
	require.NoError(t, err)
	v, err := fn.BuiltinFunc()(args)
	require.NoError(t, err)
	return v
}

func TestArithmetic(t *testing.T) {
	e := corelib.New()
	v := call(t, e, "+", types.NewInt(1), types.NewInt(2), types.NewInt(3))
	assert.Equal(t, int64(6), v.Int())

	v = call(t, e, "-", types.NewInt(10), types.NewInt(3))
	assert.Equal(t, int64(7), v.Int())
}

func TestDivisionByZero(t *testing.T) {
	e := corelib.New()
	fn, _ := e.Get("/")
	_, err := fn.BuiltinFunc()([]*types.Value{types.NewInt(1), types.NewInt(0)})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.KindArithmetic))
}

func TestListVectorEquality(t *testing.T) {
	e := corelib.New()
	l := call(t, e, "list", types.NewInt(1), types.NewInt(2))
	v := call(t, e, "vector", types.NewInt(1), types.NewInt(2))
	eq := call(t, e, "=", l, v)
	assert.True(t, eq.Bool())
}

func TestSeqOps(t *testing.T) {
	e := corelib.New()
	l := call(t, e, "list", types.NewInt(1), types.NewInt(2), types.NewInt(3))
	assert.Equal(t, int64(3), call(t, e, "count", l).Int())
	assert.Equal(t, int64(1), call(t, e, "first", l).Int())
	rest := call(t, e, "rest", l)
	assert.Len(t, rest.Items(), 2)

	empty := call(t, e, "list")
	assert.True(t, call(t, e, "empty?", empty).Bool())
	assert.True(t, call(t, e, "first", empty).IsNil())
}

func TestNthOutOfRangeIsIndexError(t *testing.T) {
	e := corelib.New()
	l := call(t, e, "list", types.NewInt(1))
	fn, _ := e.Get("nth")
	_, err := fn.BuiltinFunc()([]*types.Value{l, types.NewInt(5)})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.KindIndex))
}

func TestMapAndApply(t *testing.T) {
	e := corelib.New()
	inc := types.NewBuiltin(func(args []*types.Value) (*types.Value, error) {
		return types.NewInt(args[0].Int() + 1), nil
	})
	l := call(t, e, "list", types.NewInt(1), types.NewInt(2), types.NewInt(3))
	mapped := call(t, e, "map", inc, l)
	require.Len(t, mapped.Items(), 3)
	assert.Equal(t, int64(2), mapped.Items()[0].Int())

	plus, _ := e.Get("+")
	sum := call(t, e, "apply", plus, types.NewInt(1), l)
	assert.Equal(t, int64(7), sum.Int())
}

func TestAtomsAndSwap(t *testing.T) {
	e := corelib.New()
	a := call(t, e, "atom", types.NewInt(1))
	assert.True(t, call(t, e, "atom?", a).Bool())
	assert.Equal(t, int64(1), call(t, e, "deref", a).Int())

	inc := types.NewBuiltin(func(args []*types.Value) (*types.Value, error) {
		return types.NewInt(args[0].Int() + 1), nil
	})
	v := call(t, e, "swap!", a, inc)
	assert.Equal(t, int64(2), v.Int())
	assert.Equal(t, int64(2), call(t, e, "deref", a).Int())
}

func TestMapsAssocDissocGet(t *testing.T) {
	e := corelib.New()
	m := call(t, e, "hash-map", types.NewKeyword("a"), types.NewInt(1))
	m2 := call(t, e, "assoc", m, types.NewKeyword("b"), types.NewInt(2))
	assert.Equal(t, int64(2), call(t, e, "get", m2, types.NewKeyword("b")).Int())
	assert.True(t, call(t, e, "contains?", m2, types.NewKeyword("a")).Bool())

	m3 := call(t, e, "dissoc", m2, types.NewKeyword("a"))
	assert.False(t, call(t, e, "contains?", m3, types.NewKeyword("a")).Bool())
	assert.True(t, call(t, e, "get", m3, types.NewKeyword("a")).IsNil())
}

func TestPrintingBuiltins(t *testing.T) {
	var buf bytes.Buffer
	old := corelib.Stdout
	corelib.Stdout = &buf
	defer func() { corelib.Stdout = old }()

	e := corelib.New()
	call(t, e, "prn", types.NewStr("hi"))
	assert.Equal(t, "\"hi\"\n", buf.String())

	buf.Reset()
	call(t, e, "println", types.NewStr("hi"))
	assert.Equal(t, "hi\n", buf.String())
}

func TestKeywordIdempotent(t *testing.T) {
	e := corelib.New()
	k1 := call(t, e, "keyword", types.NewStr("foo"))
	k2 := call(t, e, "keyword", k1)
	assert.Equal(t, k1.Str(), k2.Str())
}
