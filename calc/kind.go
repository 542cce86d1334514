package calc

import "github.com/npillmayer/llcalc"

//go:generate stringer -type=Kind -linecomment

// Kind is the terminal kind of a calculator token.
type Kind int

// Terminal kinds of the calculator language.
const (
	Read    Kind = iota // read
	Write               // write
	ID                  // id
	Literal             // literal
	Gets                // gets
	Eq                  // eq
	Neq                 // neq
	Less                // less
	Great               // great
	LessEq              // less_eq
	GreatEq             // great_eq
	Add                 // add
	Sub                 // sub
	Mul                 // mul
	Div                 // div
	LParen              // lparen
	RParen              // rparen
	EOF                 // eof
	If                  // if
	Do                  // do
	Fi                  // fi
	Od                  // od
	Check               // check
)

// KindCount is the number of terminal kinds.
const KindCount = int(Check) + 1

// MaxTokenLen is the maximum length of a lexeme in bytes.
const MaxTokenLen = 200

// TokType converts a kind to a token type.
func (k Kind) TokType() llcalc.TokType {
	return llcalc.TokType(k)
}

// KindOf returns the kind of a token.
func KindOf(tok llcalc.Token) Kind {
	return Kind(tok.TokType())
}

// TokTypeString is a llcalc.TokTypeStringer for calculator tokens.
func TokTypeString(t llcalc.TokType) string {
	return Kind(t).String()
}

var _ llcalc.TokTypeStringer = TokTypeString

// HasLexeme is true for kinds whose lexeme is significant (id and literal).
func (k Kind) HasLexeme() bool {
	return k == ID || k == Literal
}
