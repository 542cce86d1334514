package calc

import (
	"fmt"
	"sync"

	"github.com/npillmayer/llcalc/scanner"
	"github.com/npillmayer/llcalc/scanner/lexmach"
	"github.com/timtadh/lexmachine"
)

// The tokens representing operator lexemes
var operators = map[string]Kind{
	":=": Gets,
	"==": Eq,
	"<>": Neq,
	"<":  Less,
	">":  Great,
	"<=": LessEq,
	">=": GreatEq,
	"+":  Add,
	"-":  Sub,
	"*":  Mul,
	"/":  Div,
	"(":  LParen,
	")":  RParen,
}

// The keyword tokens
var keywords = []Kind{Read, Write, If, Fi, Do, Od, Check}

// Lexer is a scanner factory for the calculator language.
type Lexer struct {
	adapter *lexmach.LMAdapter
}

var (
	lexerOnce sync.Once
	lexer     *Lexer
	lexerErr  error
)

// NewLexer returns a lexer for the calculator language. Compiling the
// underlying DFA is done once and the result is shared.
func NewLexer() (*Lexer, error) {
	lexerOnce.Do(func() {
		lexer, lexerErr = compileLexer()
	})
	return lexer, lexerErr
}

func compileLexer() (*Lexer, error) {
	tokenIds := make(map[string]int)
	var literals, kws []string
	for op, k := range operators {
		literals = append(literals, op)
		tokenIds[op] = int(k)
	}
	for _, k := range keywords {
		kws = append(kws, k.String())
		tokenIds[k.String()] = int(k)
	}
	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`//[^\n]*\n?`), lexmach.Skip)
		lexer.Add([]byte(`/\*([^*]|\r|\n|(\*+([^*/]|\r|\n)))*\*+/`), lexmach.Skip)
		lexer.Add([]byte(`([a-z]|[A-Z])([a-z]|[A-Z]|[0-9]|_)*`), lexmach.MakeToken("id", int(ID)))
		lexer.Add([]byte(`[0-9]+(\.[0-9]*)?|\.[0-9]+`), lexmach.MakeToken("literal", int(Literal)))
		lexer.Add([]byte(`( |\t|\n|\r)+`), lexmach.Skip)
	}
	adapter, err := lexmach.NewLMAdapter(init, literals, kws, tokenIds)
	if err != nil {
		tracer().Errorf("cannot create lexer: %v", err)
		return nil, fmt.Errorf("calculator lexer: %w", err)
	}
	adapter.EOF = EOF.TokType()
	adapter.MaxLexemeLen = MaxTokenLen
	return &Lexer{adapter: adapter}, nil
}

// Scanner creates a tokenizer for an input string. Unrecognized input is
// reported to the tokenizer's error handler and skipped.
func (l *Lexer) Scanner(input string) (scanner.Tokenizer, error) {
	sc, err := l.adapter.Scanner(input)
	if err != nil {
		return nil, fmt.Errorf("calculator lexer: %w", err)
	}
	return sc, nil
}
