// Package printer renders values back to text. It is the mirror image of
// package reader: anything printer.PrStr produces in readable mode, reader
// can read back.
package printer

import (
	"strconv"
	"strings"

	"github.com/aledsdavies/malgo/pkgs/types"
)

// PrStr renders v as text. In readable mode, strings are quoted and
// escaped and keywords print with their ":" sigil — output meant to be fed
// back through the reader (pr-str, prn). In display mode, strings print
// their raw contents (str, println).
func PrStr(v *types.Value, readable bool) string {
	var sb strings.Builder
	writeValue(&sb, v, readable)
	return sb.String()
}

func writeValue(sb *strings.Builder, v *types.Value, readable bool) {
	switch v.Kind() {
	case types.KindNil:
		sb.WriteString("nil")
	case types.KindBool:
		if v.Bool() {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case types.KindInt:
		sb.WriteString(strconv.FormatInt(v.Int(), 10))
	case types.KindSymbol:
		sb.WriteString(v.Str())
	case types.KindStr:
		writeStr(sb, v, readable)
	case types.KindList:
		writeSeq(sb, v.Items(), "(", ")", readable)
	case types.KindVector:
		writeSeq(sb, v.Items(), "[", "]", readable)
	case types.KindMap:
		writeMap(sb, v, readable)
	case types.KindAtom:
		sb.WriteString("(atom ")
		writeValue(sb, v.AtomCell().Get(), readable)
		sb.WriteString(")")
	case types.KindBuiltin:
		sb.WriteString("#<fn>")
	case types.KindClosure:
		if v.ClosureData().IsMacro {
			sb.WriteString("#<macro>")
		} else {
			sb.WriteString("#<function>")
		}
	default:
		sb.WriteString("#<unknown>")
	}
}

func writeStr(sb *strings.Builder, v *types.Value, readable bool) {
	if v.IsKeyword() {
		sb.WriteString(":")
		sb.WriteString(v.KeywordName())
		return
	}
	if !readable {
		sb.WriteString(v.Str())
		return
	}
	sb.WriteString(escapeString(v.Str()))
}

// escapeString quotes and escapes a string for readable output: backslash,
// double-quote and newline are the only escapes the reader understands, so
// those are the only ones the printer produces.
func escapeString(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		case '\n':
			sb.WriteString(`\n`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

func writeSeq(sb *strings.Builder, items []*types.Value, open, close string, readable bool) {
	sb.WriteString(open)
	for i, item := range items {
		if i > 0 {
			sb.WriteString(" ")
		}
		writeValue(sb, item, readable)
	}
	sb.WriteString(close)
}

func writeMap(sb *strings.Builder, v *types.Value, readable bool) {
	sb.WriteString("{")
	for i, pair := range v.Pairs() {
		if i > 0 {
			sb.WriteString(" ")
		}
		writeValue(sb, pair.Key, readable)
		sb.WriteString(" ")
		writeValue(sb, pair.Val, readable)
	}
	sb.WriteString("}")
}
