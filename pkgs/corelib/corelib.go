// Package corelib builds the root environment's builtin namespace: the
// fixed symbol-to-Builtin mapping every program starts with.
//
// The namespace is a name-keyed map seeded once at startup, with a single
// shared arity-checking helper used by every builtin that has an arity
// bound instead of a declarative per-argument spec; the unbounded
// variadic builtins (list, vector, concat, hash-map and the printing
// group) do not call it. It is built once, synchronously, before
// any program runs, so no lock guards it (see DESIGN.md).
package corelib

import (
	"bufio"
	"io"
	"os"

	"github.com/aledsdavies/malgo/pkgs/env"
	"github.com/aledsdavies/malgo/pkgs/errors"
	"github.com/aledsdavies/malgo/pkgs/types"
)

// Apply is wired to eval.Apply by the driver before the bootstrap forms
// run. The core namespace needs a way to invoke an arbitrary callable
// value (map, apply, swap!) without importing the
// evaluator, which would import corelib to build its root environment —
// an import cycle. See pkgs/eval.Apply's doc comment for the other half
// of this wiring.
var Apply func(fn *types.Value, args []*types.Value) (*types.Value, error)

// Stdout and Stdin back the I/O builtins (prn, println, readline);
// overridable so tests can capture output without touching the real
// console.
var (
	Stdout io.Writer = os.Stdout
	Stdin            = bufio.NewReader(os.Stdin)
)

// New builds a fresh root environment with every core builtin registered.
func New() *env.Environment {
	e := env.New(nil)
	for name, fn := range namespace() {
		e.Set(name, types.NewBuiltin(fn))
	}
	return e
}

// checkArity validates that args has at least min and, unless max is
// negative (unbounded), at most max elements, returning an ArityError
// named after the calling builtin otherwise.
func checkArity(name string, args []*types.Value, min, max int) error {
	if len(args) < min || (max >= 0 && len(args) > max) {
		return errors.Newf(errors.KindArity, "%s: wrong number of arguments (%d)", name, len(args))
	}
	return nil
}

func namespace() map[string]types.Builtin {
	ns := make(map[string]types.Builtin)
	addArithmetic(ns)
	addPrinting(ns)
	addIO(ns)
	addSeqs(ns)
	addPredicates(ns)
	addSymbols(ns)
	addMaps(ns)
	addAtoms(ns)
	addMeta(ns)
	return ns
}
