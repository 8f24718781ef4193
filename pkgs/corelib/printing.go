package corelib

import (
	"fmt"
	"strings"

	"github.com/aledsdavies/malgo/pkgs/printer"
	"github.com/aledsdavies/malgo/pkgs/types"
)

func addPrinting(ns map[string]types.Builtin) {
	ns["pr-str"] = func(args []*types.Value) (*types.Value, error) {
		return types.NewStr(joinValues(args, " ", true)), nil
	}
	ns["str"] = func(args []*types.Value) (*types.Value, error) {
		return types.NewStr(joinValues(args, "", false)), nil
	}
	ns["prn"] = func(args []*types.Value) (*types.Value, error) {
		fmt.Fprintln(Stdout, joinValues(args, " ", true))
		return types.Nil, nil
	}
	ns["println"] = func(args []*types.Value) (*types.Value, error) {
		fmt.Fprintln(Stdout, joinValues(args, " ", false))
		return types.Nil, nil
	}
}

func joinValues(args []*types.Value, sep string, readable bool) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = printer.PrStr(a, readable)
	}
	return strings.Join(parts, sep)
}
