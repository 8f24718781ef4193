// Package reader turns source text into values, directly — there is no
// separate AST, since this dialect's code is its own data representation.
// A Reader drives a token slice from pkgs/lexer through a recursive-descent
// parse, expanding reader-macro punctuation into the ordinary forms they
// abbreviate (quote, quasiquote, unquote, splice-unquote, deref, with-meta).
//
// A Reader carries one token of lookahead and position-carrying errors, and
// renders a "--> line:col" caret-pointer snippet on failure; a read either
// produces one value or fails outright, with no statement-level recovery.
package reader

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aledsdavies/malgo/pkgs/errors"
	"github.com/aledsdavies/malgo/pkgs/lexer"
	"github.com/aledsdavies/malgo/pkgs/types"
)

// Reader holds a fully tokenized input and a read cursor into it.
type Reader struct {
	input  string
	tokens []lexer.Token
	pos    int
}

// New tokenizes input and returns a Reader positioned at its first token.
func New(input string) *Reader {
	return &Reader{input: input, tokens: lexer.Tokenize(input)}
}

// ReadStr reads exactly one form from the front of input, ignoring any
// trailing text. Input that is blank or comment-only yields (nil, nil): the
// REPL treats that as "no form to evaluate" rather than an error, and
// read-string returns nil for it.
func ReadStr(input string) (*types.Value, error) {
	r := New(input)
	if r.peek().Type == lexer.EOF {
		return nil, nil
	}
	return r.ReadForm()
}

func (r *Reader) peek() lexer.Token { return r.tokens[r.pos] }

func (r *Reader) advance() lexer.Token {
	tok := r.tokens[r.pos]
	if r.pos < len(r.tokens)-1 {
		r.pos++
	}
	return tok
}

// ReadForm reads one form starting at the current token.
func (r *Reader) ReadForm() (*types.Value, error) {
	tok := r.peek()

	switch tok.Type {
	case lexer.EOF:
		return nil, r.errAt(tok, "unexpected end of input")

	case lexer.LPAREN:
		return r.readSeq(lexer.RPAREN, ")", types.NewList)
	case lexer.LBRACKET:
		return r.readSeq(lexer.RBRACKET, "]", types.NewVector)
	case lexer.LBRACE:
		return r.readMap()

	case lexer.RPAREN:
		return nil, r.errAt(tok, "unexpected ')'")
	case lexer.RBRACKET:
		return nil, r.errAt(tok, "unexpected ']'")
	case lexer.RBRACE:
		return nil, r.errAt(tok, "unexpected '}'")

	case lexer.QUOTE:
		r.advance()
		return r.readWrapped(tok, "quote")
	case lexer.QUASIQUOTE:
		r.advance()
		return r.readWrapped(tok, "quasiquote")
	case lexer.UNQUOTE:
		r.advance()
		return r.readWrapped(tok, "unquote")
	case lexer.SPLICE_UNQUOTE:
		r.advance()
		return r.readWrapped(tok, "splice-unquote")
	case lexer.DEREF:
		r.advance()
		return r.readWrapped(tok, "deref")

	case lexer.CARET:
		r.advance()
		meta, err := r.ReadForm()
		if err != nil {
			return nil, err
		}
		val, err := r.ReadForm()
		if err != nil {
			return nil, err
		}
		return types.NewList([]*types.Value{types.NewSymbol("with-meta"), val, meta}), nil

	case lexer.STRING:
		r.advance()
		return types.NewStr(tok.Value), nil

	case lexer.INT:
		r.advance()
		n, convErr := strconv.ParseInt(tok.Value, 10, 64)
		if convErr != nil {
			return nil, r.errAt(tok, "invalid integer literal %q", tok.Value)
		}
		return types.NewInt(n), nil

	case lexer.SYMBOL:
		r.advance()
		return atomFromSymbol(tok.Value), nil

	case lexer.ILLEGAL:
		r.advance()
		return nil, r.errAt(tok, "unterminated string or invalid token %q", tok.Value)

	default:
		r.advance()
		return nil, r.errAt(tok, "unexpected token %q", tok.Value)
	}
}

func atomFromSymbol(s string) *types.Value {
	switch s {
	case "nil":
		return types.Nil
	case "true":
		return types.True
	case "false":
		return types.False
	}
	if strings.HasPrefix(s, ":") {
		return types.NewKeyword(s[1:])
	}
	return types.NewSymbol(s)
}

func (r *Reader) readWrapped(macroTok lexer.Token, sym string) (*types.Value, error) {
	if r.peek().Type == lexer.EOF {
		return nil, r.errAt(macroTok, "reader macro %q needs a following form", sym)
	}
	form, err := r.ReadForm()
	if err != nil {
		return nil, err
	}
	return types.NewList([]*types.Value{types.NewSymbol(sym), form}), nil
}

func (r *Reader) readSeq(closeType lexer.TokenType, closeCh string, build func([]*types.Value) *types.Value) (*types.Value, error) {
	openTok := r.advance() // consume the opening bracket
	var items []*types.Value
	for {
		tok := r.peek()
		if tok.Type == lexer.EOF {
			return nil, r.errAt(openTok, "expected '%s', reached end of input", closeCh)
		}
		if tok.Type == closeType {
			r.advance()
			return build(items), nil
		}
		form, err := r.ReadForm()
		if err != nil {
			return nil, err
		}
		items = append(items, form)
	}
}

func (r *Reader) readMap() (*types.Value, error) {
	openTok := r.advance() // consume '{'
	var flat []*types.Value
	for {
		tok := r.peek()
		if tok.Type == lexer.EOF {
			return nil, r.errAt(openTok, "expected '}', reached end of input")
		}
		if tok.Type == lexer.RBRACE {
			r.advance()
			break
		}
		form, err := r.ReadForm()
		if err != nil {
			return nil, err
		}
		flat = append(flat, form)
	}
	if len(flat)%2 != 0 {
		return nil, r.errAt(openTok, "map literal requires an even number of forms, got %d", len(flat))
	}
	pairs := make([]types.MapEntry, 0, len(flat)/2)
	for i := 0; i < len(flat); i += 2 {
		pairs = append(pairs, types.MapEntry{Key: flat[i], Val: flat[i+1]})
	}
	return types.NewMap(pairs), nil
}

// errAt builds a ReadError positioned at tok, with a source snippet
// attached to the message.
func (r *Reader) errAt(tok lexer.Token, format string, args ...any) *errors.MalError {
	msg := fmt.Sprintf(format, args...)
	full := msg + "\n" + Snippet(r.input, tok.Line, tok.Column)
	return errors.New(errors.KindRead, full).AtPosition(tok.Line, tok.Column)
}
