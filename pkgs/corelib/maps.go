package corelib

import (
	"github.com/aledsdavies/malgo/pkgs/errors"
	"github.com/aledsdavies/malgo/pkgs/types"
)

func addMaps(ns map[string]types.Builtin) {
	ns["hash-map"] = func(args []*types.Value) (*types.Value, error) {
		if len(args)%2 != 0 {
			return nil, errors.Newf(errors.KindRead, "hash-map: odd number of forms (%d)", len(args))
		}
		return types.NewMap(pairsFromFlat(args)), nil
	}

	ns["assoc"] = func(args []*types.Value) (*types.Value, error) {
		if err := checkArity("assoc", args, 1, -1); err != nil {
			return nil, err
		}
		if args[0].Kind() != types.KindMap {
			return nil, errors.New(errors.KindType, "assoc: first argument must be a map")
		}
		rest := args[1:]
		if len(rest)%2 != 0 {
			return nil, errors.Newf(errors.KindArity, "assoc: odd number of key/value forms (%d)", len(rest))
		}
		out := append([]types.MapEntry(nil), args[0].Pairs()...)
		for i := 0; i < len(rest); i += 2 {
			out = setPair(out, rest[i], rest[i+1])
		}
		return types.NewMap(out), nil
	}

	ns["dissoc"] = func(args []*types.Value) (*types.Value, error) {
		if err := checkArity("dissoc", args, 1, -1); err != nil {
			return nil, err
		}
		if args[0].Kind() != types.KindMap {
			return nil, errors.New(errors.KindType, "dissoc: first argument must be a map")
		}
		out := append([]types.MapEntry(nil), args[0].Pairs()...)
		for _, k := range args[1:] {
			out = removeKey(out, k)
		}
		return types.NewMap(out), nil
	}

	ns["get"] = func(args []*types.Value) (*types.Value, error) {
		if err := checkArity("get", args, 2, 2); err != nil {
			return nil, err
		}
		if args[0].IsNil() {
			return types.Nil, nil
		}
		if args[0].Kind() != types.KindMap {
			return nil, errors.New(errors.KindType, "get: first argument must be a map or nil")
		}
		if v, ok := types.MapGet(args[0].Pairs(), args[1]); ok {
			return v, nil
		}
		return types.Nil, nil
	}

	ns["contains?"] = func(args []*types.Value) (*types.Value, error) {
		if err := checkArity("contains?", args, 2, 2); err != nil {
			return nil, err
		}
		if args[0].Kind() != types.KindMap {
			return nil, errors.New(errors.KindType, "contains?: first argument must be a map")
		}
		_, ok := types.MapGet(args[0].Pairs(), args[1])
		return types.Bool(ok), nil
	}

	ns["keys"] = func(args []*types.Value) (*types.Value, error) {
		if err := checkArity("keys", args, 1, 1); err != nil {
			return nil, err
		}
		if args[0].Kind() != types.KindMap {
			return nil, errors.New(errors.KindType, "keys: argument must be a map")
		}
		pairs := args[0].Pairs()
		out := make([]*types.Value, len(pairs))
		for i, p := range pairs {
			out[i] = p.Key
		}
		return types.NewList(out), nil
	}

	ns["vals"] = func(args []*types.Value) (*types.Value, error) {
		if err := checkArity("vals", args, 1, 1); err != nil {
			return nil, err
		}
		if args[0].Kind() != types.KindMap {
			return nil, errors.New(errors.KindType, "vals: argument must be a map")
		}
		pairs := args[0].Pairs()
		out := make([]*types.Value, len(pairs))
		for i, p := range pairs {
			out[i] = p.Val
		}
		return types.NewList(out), nil
	}
}

func pairsFromFlat(flat []*types.Value) []types.MapEntry {
	pairs := make([]types.MapEntry, 0, len(flat)/2)
	for i := 0; i < len(flat); i += 2 {
		pairs = setPair(pairs, flat[i], flat[i+1])
	}
	return pairs
}

func setPair(pairs []types.MapEntry, key, val *types.Value) []types.MapEntry {
	for i, p := range pairs {
		if types.Equal(p.Key, key) {
			pairs[i].Val = val
			return pairs
		}
	}
	return append(pairs, types.MapEntry{Key: key, Val: val})
}

func removeKey(pairs []types.MapEntry, key *types.Value) []types.MapEntry {
	out := pairs[:0:0]
	for _, p := range pairs {
		if !types.Equal(p.Key, key) {
			out = append(out, p)
		}
	}
	return out
}
