/*
Package scanner defines an interface for scanners to be used with the parser of
package parser.

A scanner (a.k.a. tokenizer) delivers the tokens of an input, one at a time.
Reaching the end of input is not an error: scanners return a dedicated
end-of-input token, and continue to return it on every subsequent call.

Two implementations are provided: (1) a tokenizer replaying a fixed sequence of
tokens, useful for testing and for clients with their own lexers, and (2) an
adapter for lexmachine, living in sub-package `lexmach`.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"github.com/npillmayer/llcalc"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'llcalc.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("llcalc.scanner")
}

// EOF is the default token type for end of input, identical to text/scanner.EOF.
// Languages may choose a token type of their own.
const EOF llcalc.TokType = -1

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() llcalc.Token
	SetErrorHandler(func(error))
}

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// LogError is the error handler scanners use if clients do not set one.
func LogError(e error) {
	logError(e)
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used as default for the
// list tokenizer as well as the LexMachine scanner.
type DefaultToken struct {
	kind   llcalc.TokType
	lexeme string
	Val    interface{}
	span   llcalc.Span
}

// MakeDefaultToken creates a token from its parts.
func MakeDefaultToken(typ llcalc.TokType, lexeme string, span llcalc.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

func (t DefaultToken) TokType() llcalc.TokType {
	return t.kind
}

func (t DefaultToken) Value() interface{} {
	return t.Val
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() llcalc.Span {
	return t.span
}

var _ llcalc.Token = DefaultToken{}

// --- List tokenizer --------------------------------------------------------

// ListTokenizer replays a fixed sequence of tokens. After the sequence is
// exhausted it delivers an end-of-input token, again and again.
// Create one with NewListTokenizer.
type ListTokenizer struct {
	tokens []llcalc.Token
	pos    int
	eof    llcalc.TokType
	Error  func(error) // error handler, unused by a list tokenizer
}

var _ Tokenizer = (*ListTokenizer)(nil)

// NewListTokenizer creates a tokenizer for a token sequence.
// End of input is signalled with token type `eof`.
func NewListTokenizer(eof llcalc.TokType, tokens ...llcalc.Token) *ListTokenizer {
	return &ListTokenizer{
		tokens: tokens,
		eof:    eof,
		Error:  logError,
	}
}

// Kinds is a convenience function to create a list tokenizer from token types
// only. Lexemes are left empty, spans count token positions.
func Kinds(eof llcalc.TokType, kinds ...llcalc.TokType) *ListTokenizer {
	toks := make([]llcalc.Token, len(kinds))
	for i, k := range kinds {
		toks[i] = MakeDefaultToken(k, "", llcalc.Span{uint64(i), uint64(i + 1)})
	}
	return NewListTokenizer(eof, toks...)
}

// SetErrorHandler sets an error handler for the scanner.
func (lt *ListTokenizer) SetErrorHandler(h func(error)) {
	if h == nil {
		lt.Error = logError
		return
	}
	lt.Error = h
}

// NextToken is part of the Tokenizer interface.
func (lt *ListTokenizer) NextToken() llcalc.Token {
	if lt.pos >= len(lt.tokens) {
		end := uint64(lt.pos)
		if len(lt.tokens) > 0 {
			end = lt.tokens[len(lt.tokens)-1].Span().To()
		}
		tracer().Debugf("ListTokenizer reached end of input")
		return MakeDefaultToken(lt.eof, "", llcalc.Span{end, end})
	}
	tok := lt.tokens[lt.pos]
	lt.pos++
	return tok
}
