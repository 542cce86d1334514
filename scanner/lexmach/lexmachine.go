package lexmach

import (
	"fmt"
	"strings"

	"github.com/npillmayer/llcalc"
	"github.com/npillmayer/llcalc/scanner"
	"github.com/npillmayer/schuko/tracing"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// lexmachine adapter

// tracer traces with key 'llcalc.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("llcalc.scanner")
}

// LMAdapter is a lexmachine adapter to use lexmachine as a scanner.
type LMAdapter struct {
	Lexer        *lexmachine.Lexer
	EOF          llcalc.TokType // token type to signal end of input
	MaxLexemeLen int            // lexemes longer than this will be truncated; 0 = unlimited
}

// NewLMAdapter creates a new lexmachine adapter. It receives a list of
// literals ('[', ';', …), a list of keywords ("if", "for", …) and a
// map for translating token strings to their values.
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter(init func(*lexmachine.Lexer), literals []string, keywords []string, tokenIds map[string]int) (*LMAdapter, error) {
	adapter := &LMAdapter{EOF: scanner.EOF}
	adapter.Lexer = lexmachine.NewLexer()
	for _, lit := range literals {
		id, ok := tokenIds[lit]
		if !ok {
			return nil, fmt.Errorf("no token id for literal %q", lit)
		}
		r := "\\" + strings.Join(strings.Split(lit, ""), "\\")
		adapter.Lexer.Add([]byte(r), MakeToken(lit, id))
	}
	for _, name := range keywords {
		id, ok := tokenIds[name]
		if !ok {
			return nil, fmt.Errorf("no token id for keyword %q", name)
		}
		adapter.Lexer.Add([]byte(strings.ToLower(name)), MakeToken(name, id))
	}
	init(adapter.Lexer)
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// Scanner creates a scanner for a given input. The scanner will implement the
// Tokenizer interface.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{
		scanner: s,
		Error:   logError,
		eof:     lm.EOF,
		maxlen:  lm.MaxLexemeLen,
		end:     uint64(len(input)),
	}, nil
}

// LMScanner is a scanner type for lexmachine scanners, implementing the
// Tokenizer interface.
type LMScanner struct {
	scanner *lexmachine.Scanner
	Error   func(error)
	eof     llcalc.TokType
	maxlen  int
	end     uint64 // length of input
	done    bool   // end of input has been reached
}

var _ scanner.Tokenizer = (*LMScanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = logError
		return
	}
	lms.Error = h
}

// Default error reporting function for lexmachine-based scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// NextToken is part of the Tokenizer interface.
//
// Input which cannot be matched is reported to the error handler and skipped.
// After the end of input has been reached, every call returns an EOF token.
func (lms *LMScanner) NextToken() llcalc.Token {
	if lms.scanner == nil || lms.done {
		return lms.eofToken()
	}
	tok, err, eof := lms.scanner.Next()
	for err != nil {
		lms.Error(err)
		if ui, is := err.(*machines.UnconsumedInput); is {
			lms.scanner.TC = ui.FailTC
		}
		tok, err, eof = lms.scanner.Next()
	}
	if eof {
		lms.done = true
		tracer().Debugf("LMScanner reached end of input")
		return lms.eofToken()
	}
	tracer().Debugf("tok is %T | %v", tok, tok)
	token := tok.(*lexmachine.Token)
	lexeme := string(token.Lexeme)
	start := uint64(token.TC)
	span := llcalc.Span{start, start + uint64(len(token.Lexeme))}
	if lms.maxlen > 0 && len(lexeme) > lms.maxlen {
		lms.Error(fmt.Errorf("lexeme at %v exceeds %d bytes, truncated", span, lms.maxlen))
		lexeme = lexeme[:lms.maxlen]
	}
	return scanner.MakeDefaultToken(llcalc.TokType(token.Type), lexeme, span)
}

func (lms *LMScanner) eofToken() llcalc.Token {
	return scanner.MakeDefaultToken(lms.eof, "", llcalc.Span{lms.end, lms.end})
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token.
func MakeToken(name string, id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}
