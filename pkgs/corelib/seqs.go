package corelib

import (
	"github.com/aledsdavies/malgo/pkgs/errors"
	"github.com/aledsdavies/malgo/pkgs/types"
)

func addSeqs(ns map[string]types.Builtin) {
	ns["list"] = func(args []*types.Value) (*types.Value, error) {
		return types.NewList(append([]*types.Value(nil), args...)), nil
	}
	ns["vector"] = func(args []*types.Value) (*types.Value, error) {
		return types.NewVector(append([]*types.Value(nil), args...)), nil
	}
	ns["list?"] = predicate1("list?", func(v *types.Value) bool { return v.Kind() == types.KindList })
	ns["vector?"] = predicate1("vector?", func(v *types.Value) bool { return v.Kind() == types.KindVector })
	ns["sequential?"] = predicate1("sequential?", func(v *types.Value) bool { return v.IsSequential() })
	ns["empty?"] = func(args []*types.Value) (*types.Value, error) {
		if err := checkArity("empty?", args, 1, 1); err != nil {
			return nil, err
		}
		return types.Bool(seqLen(args[0]) == 0), nil
	}
	ns["count"] = func(args []*types.Value) (*types.Value, error) {
		if err := checkArity("count", args, 1, 1); err != nil {
			return nil, err
		}
		return types.NewInt(int64(seqLen(args[0]))), nil
	}
	ns["cons"] = func(args []*types.Value) (*types.Value, error) {
		if err := checkArity("cons", args, 2, 2); err != nil {
			return nil, err
		}
		if !args[1].IsSequential() {
			return nil, errors.New(errors.KindType, "cons: second argument must be a list or vector")
		}
		items := append([]*types.Value{args[0]}, args[1].Items()...)
		return types.NewList(items), nil
	}
	ns["concat"] = func(args []*types.Value) (*types.Value, error) {
		var out []*types.Value
		for _, a := range args {
			if !a.IsSequential() {
				return nil, errors.New(errors.KindType, "concat: all arguments must be lists or vectors")
			}
			out = append(out, a.Items()...)
		}
		return types.NewList(out), nil
	}
	ns["vec"] = func(args []*types.Value) (*types.Value, error) {
		if err := checkArity("vec", args, 1, 1); err != nil {
			return nil, err
		}
		if !args[0].IsSequential() {
			return nil, errors.New(errors.KindType, "vec: argument must be a list or vector")
		}
		return types.NewVector(append([]*types.Value(nil), args[0].Items()...)), nil
	}
	ns["nth"] = func(args []*types.Value) (*types.Value, error) {
		if err := checkArity("nth", args, 2, 2); err != nil {
			return nil, err
		}
		if !args[0].IsSequential() || args[1].Kind() != types.KindInt {
			return nil, errors.New(errors.KindType, "nth: expected (seq int)")
		}
		items := args[0].Items()
		i := args[1].Int()
		if i < 0 || i >= int64(len(items)) {
			return nil, errors.Newf(errors.KindIndex, "nth: index %d out of range (length %d)", i, len(items))
		}
		return items[i], nil
	}
	ns["first"] = func(args []*types.Value) (*types.Value, error) {
		if err := checkArity("first", args, 1, 1); err != nil {
			return nil, err
		}
		if args[0].IsNil() || !args[0].IsSequential() || len(args[0].Items()) == 0 {
			return types.Nil, nil
		}
		return args[0].Items()[0], nil
	}
	ns["rest"] = func(args []*types.Value) (*types.Value, error) {
		if err := checkArity("rest", args, 1, 1); err != nil {
			return nil, err
		}
		if args[0].IsNil() || !args[0].IsSequential() || len(args[0].Items()) == 0 {
			return types.NewList(nil), nil
		}
		return types.NewList(append([]*types.Value(nil), args[0].Items()[1:]...)), nil
	}
	ns["conj"] = conj
	ns["seq"] = seq
	ns["map"] = mapFn
	ns["apply"] = applyFn
}

func seqLen(v *types.Value) int {
	if v.IsNil() {
		return 0
	}
	return len(v.Items())
}

func predicate1(name string, test func(v *types.Value) bool) types.Builtin {
	return func(args []*types.Value) (*types.Value, error) {
		if err := checkArity(name, args, 1, 1); err != nil {
			return nil, err
		}
		return types.Bool(test(args[0])), nil
	}
}

func conj(args []*types.Value) (*types.Value, error) {
	if err := checkArity("conj", args, 1, -1); err != nil {
		return nil, err
	}
	if !args[0].IsSequential() {
		return nil, errors.New(errors.KindType, "conj: first argument must be a list or vector")
	}
	toAdd := args[1:]
	switch args[0].Kind() {
	case types.KindVector:
		out := append([]*types.Value(nil), args[0].Items()...)
		out = append(out, toAdd...)
		return types.NewVector(out), nil
	default:
		out := make([]*types.Value, 0, len(toAdd)+len(args[0].Items()))
		for i := len(toAdd) - 1; i >= 0; i-- {
			out = append(out, toAdd[i])
		}
		out = append(out, args[0].Items()...)
		return types.NewList(out), nil
	}
}

func seq(args []*types.Value) (*types.Value, error) {
	if err := checkArity("seq", args, 1, 1); err != nil {
		return nil, err
	}
	v := args[0]
	switch {
	case v.IsNil():
		return types.Nil, nil
	case v.IsSequential():
		if len(v.Items()) == 0 {
			return types.Nil, nil
		}
		return types.NewList(append([]*types.Value(nil), v.Items()...)), nil
	case v.Kind() == types.KindStr && !v.IsKeyword():
		if v.Str() == "" {
			return types.Nil, nil
		}
		chars := make([]*types.Value, 0, len(v.Str()))
		for _, r := range v.Str() {
			chars = append(chars, types.NewStr(string(r)))
		}
		return types.NewList(chars), nil
	default:
		return nil, errors.New(errors.KindType, "seq: expected a list, vector, string or nil")
	}
}

func mapFn(args []*types.Value) (*types.Value, error) {
	if err := checkArity("map", args, 2, 2); err != nil {
		return nil, err
	}
	if !args[0].IsCallable() {
		return nil, errors.New(errors.KindType, "map: first argument must be callable")
	}
	if !args[1].IsSequential() {
		return nil, errors.New(errors.KindType, "map: second argument must be a list or vector")
	}
	items := args[1].Items()
	out := make([]*types.Value, len(items))
	for i, it := range items {
		v, err := Apply(args[0], []*types.Value{it})
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return types.NewList(out), nil
}

func applyFn(args []*types.Value) (*types.Value, error) {
	if err := checkArity("apply", args, 2, -1); err != nil {
		return nil, err
	}
	fn := args[0]
	last := args[len(args)-1]
	if !last.IsSequential() {
		return nil, errors.New(errors.KindType, "apply: last argument must be a list or vector")
	}
	callArgs := append([]*types.Value(nil), args[1:len(args)-1]...)
	callArgs = append(callArgs, last.Items()...)
	return Apply(fn, callArgs)
}
