package eval

import "github.com/aledsdavies/malgo/pkgs/types"

// quasiquote implements the quasiquote/unquote/splice-unquote transform:
// it rewrites a template into the list-construction code that builds the
// filled-in result when evaluated. A bare `~x` substitutes x's evaluated
// value in place; a `~@x` splices x's evaluated list into the surrounding
// one; everything else is quoted as-is.
func quasiquote(ast *types.Value) *types.Value {
	switch ast.Kind() {
	case types.KindList:
		items := ast.Items()
		if isUnquote(items) {
			return items[1]
		}
		return quasiquoteFoldList(items)
	case types.KindVector:
		return types.NewList([]*types.Value{
			types.NewSymbol("vec"),
			quasiquoteFoldList(ast.Items()),
		})
	case types.KindMap, types.KindSymbol:
		return types.NewList([]*types.Value{types.NewSymbol("quote"), ast})
	default:
		return ast
	}
}

func isUnquote(items []*types.Value) bool {
	return len(items) == 2 && items[0].Kind() == types.KindSymbol && items[0].Str() == "unquote"
}

func isSpliceUnquote(v *types.Value) ([]*types.Value, bool) {
	if v.Kind() != types.KindList {
		return nil, false
	}
	items := v.Items()
	if len(items) == 2 && items[0].Kind() == types.KindSymbol && items[0].Str() == "splice-unquote" {
		return items, true
	}
	return nil, false
}

// quasiquoteFoldList builds the (cons ... (concat ... ...)) chain for a
// list/vector's elements, right to left, so the result evaluates back into
// the elements in original order.
func quasiquoteFoldList(items []*types.Value) *types.Value {
	result := types.NewList(nil)
	for i := len(items) - 1; i >= 0; i-- {
		elt := items[i]
		if spliced, ok := isSpliceUnquote(elt); ok {
			result = types.NewList([]*types.Value{types.NewSymbol("concat"), spliced[1], result})
			continue
		}
		result = types.NewList([]*types.Value{types.NewSymbol("cons"), quasiquote(elt), result})
	}
	return result
}
