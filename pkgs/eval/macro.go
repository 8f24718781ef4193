package eval

import (
	"github.com/aledsdavies/malgo/pkgs/env"
	"github.com/aledsdavies/malgo/pkgs/errors"
	"github.com/aledsdavies/malgo/pkgs/types"
)

// isMacroCall reports whether ast is a list whose head symbol is bound to
// a macro closure, returning that closure for macroexpand/the eval loop to
// apply.
func isMacroCall(ast *types.Value, e *env.Environment) (*types.Closure, bool) {
	if ast.Kind() != types.KindList {
		return nil, false
	}
	items := ast.Items()
	if len(items) == 0 || items[0].Kind() != types.KindSymbol {
		return nil, false
	}
	val, err := e.Get(items[0].Str())
	if err != nil || val.Kind() != types.KindClosure {
		return nil, false
	}
	cl := val.ClosureData()
	if !cl.IsMacro {
		return nil, false
	}
	return cl, true
}

// macroexpand repeatedly expands ast while its head resolves to a macro,
// running each expansion's body the same way an ordinary call would,
// before the eval loop's special-form dispatch ever sees the result.
func macroexpand(ast *types.Value, e *env.Environment) (*types.Value, error) {
	for {
		cl, ok := isMacroCall(ast, e)
		if !ok {
			return ast, nil
		}
		outer, ok := cl.Env.(*env.Environment)
		if !ok {
			return nil, errors.New(errors.KindGeneric, "macro captured an incompatible environment")
		}
		args := ast.Items()[1:]
		newEnv, err := env.Bind(outer, cl.Params, args)
		if err != nil {
			return nil, err
		}
		expanded, err := Eval(cl.Body, newEnv)
		if err != nil {
			return nil, err
		}
		ast = expanded
	}
}
