// Package eval implements the evaluator: the special-form dispatch, the
// tail-call loop that keeps recursive Lisp code from growing the host Go
// stack, and macro expansion.
//
// Eval is a single type-switching walker dispatching on a form's head
// symbol, built around an ast/env-reassigning loop that turns tail calls
// (let*, do, if, fn* application, and the other tail-position forms) into
// iteration instead of host recursion.
package eval

import (
	"github.com/aledsdavies/malgo/pkgs/env"
	"github.com/aledsdavies/malgo/pkgs/errors"
	"github.com/aledsdavies/malgo/pkgs/types"
)

// Eval evaluates ast in e. Forms in tail position reassign ast/e and loop
// rather than recurse, so `(def! f (fn* (n) (if (= n 0) 0 (f (- n 1)))))`-style
// self-recursion (and mutual recursion between named functions) runs in
// constant Go stack space.
func Eval(ast *types.Value, e *env.Environment) (*types.Value, error) {
	for {
		if ast.Kind() != types.KindList {
			return evalAst(ast, e)
		}
		if len(ast.Items()) == 0 {
			return ast, nil
		}

		expanded, err := macroexpand(ast, e)
		if err != nil {
			return nil, err
		}
		if expanded.Kind() != types.KindList {
			return evalAst(expanded, e)
		}
		items := expanded.Items()
		if len(items) == 0 {
			return expanded, nil
		}

		if items[0].Kind() == types.KindSymbol {
			switch items[0].Str() {
			case "def!":
				return evalDef(items, e)
			case "defmacro!":
				return evalDefMacro(items, e)
			case "let*":
				newEnv, body, err := evalLetBindings(items, e)
				if err != nil {
					return nil, err
				}
				ast, e = body, newEnv
				continue
			case "do":
				if len(items) < 2 {
					return types.Nil, nil
				}
				for _, f := range items[1 : len(items)-1] {
					if _, err := Eval(f, e); err != nil {
						return nil, err
					}
				}
				ast = items[len(items)-1]
				continue
			case "if":
				ast, err = evalIfBranch(items, e)
				if err != nil {
					return nil, err
				}
				if ast == nil {
					return types.Nil, nil
				}
				continue
			case "fn*":
				return evalFnStar(items, e)
			case "quote":
				if len(items) != 2 {
					return nil, errors.New(errors.KindArity, "quote requires exactly one argument")
				}
				return items[1], nil
			case "quasiquoteexpand":
				if len(items) != 2 {
					return nil, errors.New(errors.KindArity, "quasiquoteexpand requires exactly one argument")
				}
				return quasiquote(items[1]), nil
			case "quasiquote":
				if len(items) != 2 {
					return nil, errors.New(errors.KindArity, "quasiquote requires exactly one argument")
				}
				ast = quasiquote(items[1])
				continue
			case "macroexpand":
				if len(items) != 2 {
					return nil, errors.New(errors.KindArity, "macroexpand requires exactly one argument")
				}
				return macroexpand(items[1], e)
			case "try*":
				return evalTryStar(items, e)
			case "eval":
				if len(items) != 2 {
					return nil, errors.New(errors.KindArity, "eval requires exactly one argument")
				}
				val, err := Eval(items[1], e)
				if err != nil {
					return nil, err
				}
				ast, e = val, e.Root()
				continue
			}
		}

		fn, err := Eval(items[0], e)
		if err != nil {
			return nil, err
		}
		args := make([]*types.Value, len(items)-1)
		for i, a := range items[1:] {
			v, err := Eval(a, e)
			if err != nil {
				return nil, err
			}
			args[i] = v
		}

		switch fn.Kind() {
		case types.KindBuiltin:
			return fn.BuiltinFunc()(args)
		case types.KindClosure:
			cl := fn.ClosureData()
			outer, ok := cl.Env.(*env.Environment)
			if !ok {
				return nil, errors.New(errors.KindGeneric, "closure captured an incompatible environment")
			}
			newEnv, err := env.Bind(outer, cl.Params, args)
			if err != nil {
				return nil, err
			}
			ast, e = cl.Body, newEnv
			continue
		default:
			return nil, errors.Newf(errors.KindType, "cannot call value of kind %s", fn.Kind())
		}
	}
}

// evalAst evaluates a non-list form: symbols resolve against e, vectors
// and maps evaluate their elements (so `[1 (+ 1 1)]` is `[1 2]`, not
// literal data), everything else is self-evaluating.
func evalAst(ast *types.Value, e *env.Environment) (*types.Value, error) {
	switch ast.Kind() {
	case types.KindSymbol:
		return e.Get(ast.Str())
	case types.KindVector:
		items := ast.Items()
		out := make([]*types.Value, len(items))
		for i, it := range items {
			v, err := Eval(it, e)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return types.NewVector(out), nil
	case types.KindMap:
		pairs := ast.Pairs()
		out := make([]types.MapEntry, len(pairs))
		for i, p := range pairs {
			k, err := Eval(p.Key, e)
			if err != nil {
				return nil, err
			}
			v, err := Eval(p.Val, e)
			if err != nil {
				return nil, err
			}
			out[i] = types.MapEntry{Key: k, Val: v}
		}
		return types.NewMap(out), nil
	default:
		return ast, nil
	}
}

func evalDef(items []*types.Value, e *env.Environment) (*types.Value, error) {
	if len(items) != 3 {
		return nil, errors.New(errors.KindArity, "def! requires exactly two arguments")
	}
	if items[1].Kind() != types.KindSymbol {
		return nil, errors.New(errors.KindType, "def! requires a symbol as its first argument")
	}
	val, err := Eval(items[2], e)
	if err != nil {
		return nil, err
	}
	e.Set(items[1].Str(), val)
	return val, nil
}

func evalDefMacro(items []*types.Value, e *env.Environment) (*types.Value, error) {
	if len(items) != 3 {
		return nil, errors.New(errors.KindArity, "defmacro! requires exactly two arguments")
	}
	if items[1].Kind() != types.KindSymbol {
		return nil, errors.New(errors.KindType, "defmacro! requires a symbol as its first argument")
	}
	val, err := Eval(items[2], e)
	if err != nil {
		return nil, err
	}
	if val.Kind() != types.KindClosure {
		return nil, errors.New(errors.KindType, "defmacro! requires a function value")
	}
	macroClosure := *val.ClosureData()
	macroClosure.IsMacro = true
	macroVal := types.NewClosure(&macroClosure)
	e.Set(items[1].Str(), macroVal)
	return macroVal, nil
}

func evalLetBindings(items []*types.Value, e *env.Environment) (*env.Environment, *types.Value, error) {
	if len(items) != 3 {
		return nil, nil, errors.New(errors.KindArity, "let* requires exactly two arguments")
	}
	if !items[1].IsSequential() {
		return nil, nil, errors.New(errors.KindType, "let* bindings must be a list or vector")
	}
	pairs := items[1].Items()
	if len(pairs)%2 != 0 {
		return nil, nil, errors.New(errors.KindArity, "let* bindings must have an even number of forms")
	}
	newEnv := env.New(e)
	for i := 0; i < len(pairs); i += 2 {
		if pairs[i].Kind() != types.KindSymbol {
			return nil, nil, errors.New(errors.KindType, "let* binding names must be symbols")
		}
		val, err := Eval(pairs[i+1], newEnv)
		if err != nil {
			return nil, nil, err
		}
		newEnv.Set(pairs[i].Str(), val)
	}
	return newEnv, items[2], nil
}

func evalIfBranch(items []*types.Value, e *env.Environment) (*types.Value, error) {
	if len(items) != 3 && len(items) != 4 {
		return nil, errors.New(errors.KindArity, "if requires two or three arguments")
	}
	cond, err := Eval(items[1], e)
	if err != nil {
		return nil, err
	}
	if !cond.IsFalsey() {
		return items[2], nil
	}
	if len(items) == 4 {
		return items[3], nil
	}
	return nil, nil
}

func evalFnStar(items []*types.Value, e *env.Environment) (*types.Value, error) {
	if len(items) != 3 {
		return nil, errors.New(errors.KindArity, "fn* requires exactly two arguments")
	}
	if !items[1].IsSequential() {
		return nil, errors.New(errors.KindType, "fn* parameter list must be a list or vector")
	}
	return types.NewClosure(&types.Closure{Params: items[1], Body: items[2], Env: e}), nil
}

func evalTryStar(items []*types.Value, e *env.Environment) (*types.Value, error) {
	if len(items) < 2 || len(items) > 3 {
		return nil, errors.New(errors.KindArity, "try* requires one or two arguments")
	}
	result, err := Eval(items[1], e)
	if err == nil || len(items) == 2 {
		return result, err
	}

	catchForm := items[2]
	if catchForm.Kind() != types.KindList {
		return nil, errors.New(errors.KindType, "try*'s second argument must be a catch* form")
	}
	catchItems := catchForm.Items()
	if len(catchItems) != 3 || catchItems[0].Kind() != types.KindSymbol || catchItems[0].Str() != "catch*" {
		return nil, errors.New(errors.KindType, "try*'s second argument must be (catch* binding body)")
	}
	if catchItems[1].Kind() != types.KindSymbol {
		return nil, errors.New(errors.KindType, "catch* binding must be a symbol")
	}

	catchEnv := env.New(e)
	catchEnv.Set(catchItems[1].Str(), errors.CatchPayload(err))
	return Eval(catchItems[2], catchEnv)
}
