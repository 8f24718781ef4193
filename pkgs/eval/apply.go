package eval

import (
	"github.com/aledsdavies/malgo/pkgs/env"
	"github.com/aledsdavies/malgo/pkgs/errors"
	"github.com/aledsdavies/malgo/pkgs/types"
)

// Apply invokes fn with already-evaluated args, from outside the Eval
// loop. It exists because the value model (package types) cannot hold a
// reference back to the evaluator without an import cycle, so callables
// captured in data — the function passed to `map`, `apply`, `swap!` —
// need a standalone entry point. The corelib package is wired
// to this function at startup rather than importing eval directly, for
// the same reason.
//
// Unlike the Eval loop's own call handling, a closure invoked through
// Apply does not get the tail-call loop's iteration: each Apply call
// recurses through Eval normally. That only matters for pathologically
// deep non-tail recursion driven through map/apply/swap!, which is not a
// pattern the core namespace itself produces.
func Apply(fn *types.Value, args []*types.Value) (*types.Value, error) {
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
		return Eval(cl.Body, newEnv)
	default:
		return nil, errors.Newf(errors.KindType, "cannot call value of kind %s", fn.Kind())
	}
}
