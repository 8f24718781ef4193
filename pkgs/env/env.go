// Package env implements the interpreter's lexical environments: mutable
// frames chained to an outer frame, searched outward on lookup and written
// only at the innermost frame on define.
//
// Each frame holds a plain symbol-to-value map and a pointer to its outer
// frame; lookup walks outward through that chain until it finds a binding
// or runs out of frames.
package env

import (
	"github.com/aledsdavies/malgo/pkgs/errors"
	"github.com/aledsdavies/malgo/pkgs/types"
)

// Environment is one lexical frame: a symbol table plus a link to the
// enclosing frame it falls back to on lookup miss.
type Environment struct {
	outer *Environment
	data  map[string]*types.Value
}

// New creates a frame nested inside outer. outer is nil for the top-level
// (root) environment.
func New(outer *Environment) *Environment {
	return &Environment{outer: outer, data: make(map[string]*types.Value)}
}

// NewWithCapacity is New with a size hint for the symbol table, used when
// binding a closure's parameter list to avoid repeated map growth.
func NewWithCapacity(outer *Environment, n int) *Environment {
	return &Environment{outer: outer, data: make(map[string]*types.Value, n)}
}

// Set binds symbol to val in this frame, shadowing (without mutating) any
// binding of the same name in an outer frame.
func (e *Environment) Set(symbol string, val *types.Value) {
	e.data[symbol] = val
}

// Root returns the outermost frame in e's chain — the global environment
// that `eval` re-evaluates its argument against, regardless of the
// lexical scope the `eval` call itself appears in.
func (e *Environment) Root() *Environment {
	frame := e
	for frame.outer != nil {
		frame = frame.outer
	}
	return frame
}

// find returns the innermost frame in the chain, starting at e, that binds
// symbol directly, or nil if none does.
func (e *Environment) find(symbol string) *Environment {
	for frame := e; frame != nil; frame = frame.outer {
		if _, ok := frame.data[symbol]; ok {
			return frame
		}
	}
	return nil
}

// Get resolves symbol by walking outward through the frame chain. A miss
// at the root frame is a SymbolNotFound error, since only def!/let*/fn*
// parameter binding may introduce new names.
func (e *Environment) Get(symbol string) (*types.Value, error) {
	frame := e.find(symbol)
	if frame == nil {
		return nil, errors.Newf(errors.KindSymbol, "'%s' not found", symbol)
	}
	return frame.data[symbol], nil
}

// Bind creates a new frame nested in outer, binding params (a list or
// vector of symbols) to args positionally. A "&" symbol in params marks
// the rest of the arguments to be collected into a single list bound to
// the symbol that follows it, the same variadic convention fn*/closures
// use throughout the core namespace.
func Bind(outer *Environment, params *types.Value, args []*types.Value) (*Environment, error) {
	names := params.Items()
	e := NewWithCapacity(outer, len(names))

	i := 0
	for ; i < len(names); i++ {
		name := names[i].Str()
		if name == "&" {
			if i+1 >= len(names) {
				return nil, errors.New(errors.KindArity, "'&' in parameter list must be followed by a binding name")
			}
			rest := names[i+1]
			e.Set(rest.Str(), types.NewList(append([]*types.Value(nil), args[i:]...)))
			return e, nil
		}
		if i >= len(args) {
			return nil, errors.Newf(errors.KindArity, "expected at least %d argument(s), got %d", requiredCount(names), len(args))
		}
		e.Set(name, args[i])
	}

	if i < len(args) {
		return nil, errors.Newf(errors.KindArity, "expected %d argument(s), got %d", i, len(args))
	}

	return e, nil
}

// requiredCount returns how many positional names precede a "&" rest
// marker, for arity-error messages.
func requiredCount(names []*types.Value) int {
	for i, n := range names {
		if n.Str() == "&" {
			return i
		}
	}
	return len(names)
}
