package corelib

import (
	"github.com/aledsdavies/malgo/pkgs/errors"
	"github.com/aledsdavies/malgo/pkgs/types"
)

func addArithmetic(ns map[string]types.Builtin) {
	ns["+"] = foldInts("+", types.Add)
	ns["-"] = foldInts("-", types.Sub)
	ns["*"] = foldInts("*", types.Mul)
	ns["/"] = foldDiv
	ns["="] = eq
	ns["<"] = order("<", func(a, b *types.Value) bool { return types.Less(a, b) })
	ns["<="] = order("<=", func(a, b *types.Value) bool { return types.LessEqual(a, b) })
	ns[">"] = order(">", func(a, b *types.Value) bool { return !types.LessEqual(a, b) })
	ns[">="] = order(">=", func(a, b *types.Value) bool { return !types.Less(a, b) })
}

func foldInts(name string, op func(a, b *types.Value) *types.Value) types.Builtin {
	return func(args []*types.Value) (*types.Value, error) {
		if err := checkArity(name, args, 2, -1); err != nil {
			return nil, err
		}
		if err := requireInts(name, args); err != nil {
			return nil, err
		}
		acc := args[0]
		for _, a := range args[1:] {
			acc = op(acc, a)
		}
		return acc, nil
	}
}

func foldDiv(args []*types.Value) (*types.Value, error) {
	if err := checkArity("/", args, 2, -1); err != nil {
		return nil, err
	}
	if err := requireInts("/", args); err != nil {
		return nil, err
	}
	acc := args[0]
	for _, a := range args[1:] {
		v, err := types.Div(acc, a)
		if err != nil {
			return nil, errors.Wrap(errors.KindArithmetic, "division by zero", err)
		}
		acc = v
	}
	return acc, nil
}

func requireInts(name string, args []*types.Value) error {
	for _, a := range args {
		if a.Kind() != types.KindInt {
			return errors.Newf(errors.KindType, "%s: expected integer, got %s", name, a.Kind())
		}
	}
	return nil
}

func eq(args []*types.Value) (*types.Value, error) {
	if err := checkArity("=", args, 2, 2); err != nil {
		return nil, err
	}
	return types.Bool(types.Equal(args[0], args[1])), nil
}

func order(name string, cmp func(a, b *types.Value) bool) types.Builtin {
	return func(args []*types.Value) (*types.Value, error) {
		if err := checkArity(name, args, 2, 2); err != nil {
			return nil, err
		}
		for _, a := range args {
			if a.Kind() != types.KindInt && a.Kind() != types.KindStr {
				return nil, errors.Newf(errors.KindType, "%s: expected integer or string, got %s", name, a.Kind())
			}
		}
		return types.Bool(cmp(args[0], args[1])), nil
	}
}
