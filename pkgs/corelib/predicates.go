package corelib

import "github.com/aledsdavies/malgo/pkgs/types"

func addPredicates(ns map[string]types.Builtin) {
	ns["nil?"] = predicate1("nil?", func(v *types.Value) bool { return v.IsNil() })
	ns["true?"] = predicate1("true?", func(v *types.Value) bool { return v.Kind() == types.KindBool && v.Bool() })
	ns["false?"] = predicate1("false?", func(v *types.Value) bool { return v.Kind() == types.KindBool && !v.Bool() })
	ns["symbol?"] = predicate1("symbol?", func(v *types.Value) bool { return v.Kind() == types.KindSymbol })
	ns["keyword?"] = predicate1("keyword?", func(v *types.Value) bool { return v.IsKeyword() })
	ns["map?"] = predicate1("map?", func(v *types.Value) bool { return v.Kind() == types.KindMap })
	ns["number?"] = predicate1("number?", func(v *types.Value) bool { return v.Kind() == types.KindInt })
	ns["string?"] = predicate1("string?", func(v *types.Value) bool { return v.Kind() == types.KindStr && !v.IsKeyword() })
	ns["fn?"] = predicate1("fn?", func(v *types.Value) bool {
		if v.Kind() == types.KindBuiltin {
			return true
		}
		return v.Kind() == types.KindClosure && !v.ClosureData().IsMacro
	})
	ns["macro?"] = predicate1("macro?", func(v *types.Value) bool {
		return v.Kind() == types.KindClosure && v.ClosureData().IsMacro
	})
}
