package eval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aledsdavies/malgo/pkgs/env"
	"github.com/aledsdavies/malgo/pkgs/errors"
	"github.com/aledsdavies/malgo/pkgs/eval"
	"github.com/aledsdavies/malgo/pkgs/printer"
	"github.com/aledsdavies/malgo/pkgs/reader"
	"github.com/aledsdavies/malgo/pkgs/types"
)

func baseEnv() *env.Environment {
	e := env.New(nil)
	e.Set("+", types.NewBuiltin(func(args []*types.Value) (*types.Value, error) {
		return types.Add(args[0], args[1]), nil
	}))
	e.Set("-", types.NewBuiltin(func(args []*types.Value) (*types.Value, error) {
		return types.Sub(args[0], args[1]), nil
	}))
	e.Set("=", types.NewBuiltin(func(args []*types.Value) (*types.Value, error) {
		return types.Bool(types.Equal(args[0], args[1])), nil
	}))
	e.Set("list", types.NewBuiltin(func(args []*types.Value) (*types.Value, error) {
		return types.NewList(args), nil
	}))
	e.Set("cons", types.NewBuiltin(func(args []*types.Value) (*types.Value, error) {
		return types.NewList(append([]*types.Value{args[0]}, args[1].Items()...)), nil
	}))
	e.Set("concat", types.NewBuiltin(func(args []*types.Value) (*types.Value, error) {
		var out []*types.Value
		for _, a := range args {
			out = append(out, a.Items()...)
		}
		return types.NewList(out), nil
	}))
	e.Set("vec", types.NewBuiltin(func(args []*types.Value) (*types.Value, error) {
		return types.NewVector(args[0].Items()), nil
	}))
	return e
}

func evalStr(t *testing.T, e *env.Environment, src string) *types.Value {
	t.Helper()
	form, err := reader.ReadStr(src)
	require.NoError(t, err)
	require.NotNil(t, form)
	v, err := eval.Eval(form, e)
	require.NoError(t, err)
	return v
}

func TestEvalArithmetic(t *testing.T) {
	v := evalStr(t, baseEnv(), "(+ 1 (- 5 2))")
	assert.Equal(t, int64(4), v.Int())
}

func TestEvalDefAndLookup(t *testing.T) {
	e := baseEnv()
	evalStr(t, e, "(def! x 10)")
	v := evalStr(t, e, "x")
	assert.Equal(t, int64(10), v.Int())
}

func TestEvalLetStarScoping(t *testing.T) {
	e := baseEnv()
	v := evalStr(t, e, "(let* (x 1 y (+ x 1)) (+ x y))")
	assert.Equal(t, int64(3), v.Int())
	_, err := e.Get("x")
	assert.Error(t, err, "let* bindings must not leak into the enclosing environment")
}

func TestEvalIf(t *testing.T) {
	e := baseEnv()
	assert.Equal(t, int64(1), evalStr(t, e, "(if true 1 2)").Int())
	assert.Equal(t, int64(2), evalStr(t, e, "(if false 1 2)").Int())
	assert.True(t, evalStr(t, e, "(if false 1)").IsNil())
}

func TestEvalDoReturnsLastValue(t *testing.T) {
	e := baseEnv()
	v := evalStr(t, e, "(do 1 2 3)")
	assert.Equal(t, int64(3), v.Int())
}

func TestEvalFnAndTailRecursionDoesNotOverflow(t *testing.T) {
	e := baseEnv()
	evalStr(t, e, `(def! count-down
		(fn* (n) (if (= n 0) "done" (count-down (- n 1)))))`)
	v := evalStr(t, e, "(count-down 200000)")
	assert.Equal(t, "done", v.Str())
}

func TestEvalQuoteAndQuasiquote(t *testing.T) {
	e := baseEnv()
	v := evalStr(t, e, "(quote (1 2 3))")
	assert.Equal(t, "(1 2 3)", printer.PrStr(v, true))

	evalStr(t, e, "(def! x 7)")
	v = evalStr(t, e, "`(1 ~x 3)")
	assert.Equal(t, "(1 7 3)", printer.PrStr(v, true))

	evalStr(t, e, "(def! lst (list 2 3))")
	v = evalStr(t, e, "`(1 ~@lst)")
	assert.Equal(t, "(1 2 3)", printer.PrStr(v, true))
}

func TestEvalDefMacroAndExpansion(t *testing.T) {
	e := baseEnv()
	evalStr(t, e, `(defmacro! unless
		(fn* (pred a b) (list 'if (list 'not pred) a b)))`)
	e.Set("not", types.NewBuiltin(func(args []*types.Value) (*types.Value, error) {
		return types.Bool(args[0].IsFalsey()), nil
	}))
	v := evalStr(t, e, "(unless false 7 8)")
	assert.Equal(t, int64(7), v.Int())
}

func TestEvalTryCatchUserThrow(t *testing.T) {
	e := baseEnv()
	e.Set("throw", types.NewBuiltin(func(args []*types.Value) (*types.Value, error) {
		return nil, errors.Throw(args[0])
	}))
	v := evalStr(t, e, `(try* (throw "boom") (catch* e e))`)
	assert.Equal(t, "boom", v.Str())
}

func TestEvalTryCatchHostError(t *testing.T) {
	e := baseEnv()
	v := evalStr(t, e, `(try* (abc 1 2) (catch* e e))`)
	require.Equal(t, types.KindStr, v.Kind())
	assert.False(t, v.IsKeyword())
}

func TestEvalSymbolNotFound(t *testing.T) {
	e := baseEnv()
	form, err := reader.ReadStr("undefined-symbol")
	require.NoError(t, err)
	_, err = eval.Eval(form, e)
	require.Error(t, err)
}

