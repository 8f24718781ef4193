package corelib

import (
	"time"

	"github.com/aledsdavies/malgo/pkgs/errors"
	"github.com/aledsdavies/malgo/pkgs/types"
)

func addMeta(ns map[string]types.Builtin) {
	ns["meta"] = func(args []*types.Value) (*types.Value, error) {
		if err := checkArity("meta", args, 1, 1); err != nil {
			return nil, err
		}
		return types.Meta(args[0]), nil
	}
	ns["with-meta"] = func(args []*types.Value) (*types.Value, error) {
		if err := checkArity("with-meta", args, 2, 2); err != nil {
			return nil, err
		}
		return types.WithMeta(args[0], args[1]), nil
	}
	ns["time-ms"] = func(args []*types.Value) (*types.Value, error) {
		if err := checkArity("time-ms", args, 0, 0); err != nil {
			return nil, err
		}
		return types.NewInt(time.Now().UnixMilli()), nil
	}
	ns["throw"] = func(args []*types.Value) (*types.Value, error) {
		if err := checkArity("throw", args, 1, 1); err != nil {
			return nil, err
		}
		return nil, errors.Throw(args[0])
	}
}
