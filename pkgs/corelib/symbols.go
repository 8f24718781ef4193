package corelib

import (
	"github.com/aledsdavies/malgo/pkgs/errors"
	"github.com/aledsdavies/malgo/pkgs/types"
)

func addSymbols(ns map[string]types.Builtin) {
	ns["symbol"] = func(args []*types.Value) (*types.Value, error) {
		if err := checkArity("symbol", args, 1, 1); err != nil {
			return nil, err
		}
		if args[0].Kind() != types.KindStr || args[0].IsKeyword() {
			return nil, errors.New(errors.KindType, "symbol: expected a string")
		}
		return types.NewSymbol(args[0].Str()), nil
	}
	ns["keyword"] = func(args []*types.Value) (*types.Value, error) {
		if err := checkArity("keyword", args, 1, 1); err != nil {
			return nil, err
		}
		if args[0].IsKeyword() {
			return args[0], nil
		}
		if args[0].Kind() != types.KindStr {
			return nil, errors.New(errors.KindType, "keyword: expected a string")
		}
		return types.NewKeyword(args[0].Str()), nil
	}
}
