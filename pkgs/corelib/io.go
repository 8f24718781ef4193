package corelib

import (
	"fmt"
	"io"
	"os"

	"github.com/aledsdavies/malgo/pkgs/errors"
	"github.com/aledsdavies/malgo/pkgs/reader"
	"github.com/aledsdavies/malgo/pkgs/types"
)

func addIO(ns map[string]types.Builtin) {
	ns["read-string"] = func(args []*types.Value) (*types.Value, error) {
		if err := checkArity("read-string", args, 1, 1); err != nil {
			return nil, err
		}
		if args[0].Kind() != types.KindStr {
			return nil, errors.New(errors.KindType, "read-string: expected a string")
		}
		v, err := reader.ReadStr(args[0].Str())
		if err != nil {
			return nil, err
		}
		if v == nil {
			return types.Nil, nil
		}
		return v, nil
	}

	ns["slurp"] = func(args []*types.Value) (*types.Value, error) {
		if err := checkArity("slurp", args, 1, 1); err != nil {
			return nil, err
		}
		if args[0].Kind() != types.KindStr {
			return nil, errors.New(errors.KindType, "slurp: expected a string")
		}
		data, err := os.ReadFile(args[0].Str())
		if err != nil {
			return nil, errors.Wrap(errors.KindFile, fmt.Sprintf("slurp: cannot read %q", args[0].Str()), err)
		}
		return types.NewStr(string(data)), nil
	}

	ns["readline"] = func(args []*types.Value) (*types.Value, error) {
		if err := checkArity("readline", args, 0, 1); err != nil {
			return nil, err
		}
		if len(args) == 1 {
			fmt.Fprint(Stdout, args[0].Str())
		}
		line, err := Stdin.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, errors.Wrap(errors.KindGeneric, "readline: read failed", err)
		}
		if err == io.EOF && line == "" {
			return types.Nil, nil
		}
		line = trimNewline(line)
		return types.NewStr(line), nil
	}
}

func trimNewline(s string) string {
	if len(s) > 0 && s[len(s)-1] == '\n' {
		s = s[:len(s)-1]
	}
	if len(s) > 0 && s[len(s)-1] == '\r' {
		s = s[:len(s)-1]
	}
	return s
}
