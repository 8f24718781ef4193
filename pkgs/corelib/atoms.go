package corelib

import (
	"github.com/aledsdavies/malgo/pkgs/errors"
	"github.com/aledsdavies/malgo/pkgs/types"
)

func addAtoms(ns map[string]types.Builtin) {
	ns["atom"] = func(args []*types.Value) (*types.Value, error) {
		if err := checkArity("atom", args, 1, 1); err != nil {
			return nil, err
		}
		return types.NewAtomValue(types.NewAtom(args[0])), nil
	}
	ns["atom?"] = predicate1("atom?", func(v *types.Value) bool { return v.Kind() == types.KindAtom })
	ns["deref"] = func(args []*types.Value) (*types.Value, error) {
		if err := checkArity("deref", args, 1, 1); err != nil {
			return nil, err
		}
		if args[0].Kind() != types.KindAtom {
			return nil, errors.New(errors.KindType, "deref: argument must be an atom")
		}
		return args[0].AtomCell().Get(), nil
	}
	ns["reset!"] = func(args []*types.Value) (*types.Value, error) {
		if err := checkArity("reset!", args, 2, 2); err != nil {
			return nil, err
		}
		if args[0].Kind() != types.KindAtom {
			return nil, errors.New(errors.KindType, "reset!: first argument must be an atom")
		}
		return args[0].AtomCell().Set(args[1]), nil
	}
	ns["swap!"] = func(args []*types.Value) (*types.Value, error) {
		if err := checkArity("swap!", args, 2, -1); err != nil {
			return nil, err
		}
		if args[0].Kind() != types.KindAtom {
			return nil, errors.New(errors.KindType, "swap!: first argument must be an atom")
		}
		if !args[1].IsCallable() {
			return nil, errors.New(errors.KindType, "swap!: second argument must be callable")
		}
		cell := args[0].AtomCell()
		callArgs := append([]*types.Value{cell.Get()}, args[2:]...)
		newVal, err := Apply(args[1], callArgs)
		if err != nil {
			return nil, err
		}
		return cell.Set(newVal), nil
	}
}
