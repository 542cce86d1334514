package parser

import (
	"errors"
	"fmt"
	"io"

	"github.com/npillmayer/llcalc"
	"github.com/npillmayer/llcalc/calc"
	"github.com/npillmayer/llcalc/scanner"
)

// ErrNestingTooDeep is returned if the input nests deeper than the parser's
// maximum depth. The partial result of the parse is returned along with it.
var ErrNestingTooDeep = errors.New("input nested too deeply")

// ErrNoInput is returned if Parse is called without a tokenizer.
var ErrNoInput = errors.New("no tokenizer for input")

// DefaultMaxDepth is the default limit for nesting levels of the input.
const DefaultMaxDepth = 10000

// Parser is a recursive descent parser for the calculator language.
// A parser may be used for more than one parse, but not concurrently.
type Parser struct {
	maxdepth int
	out      io.Writer
}

// Option configures a parser.
type Option func(*Parser)

// MaxDepth limits the nesting of parenthesized expressions and of if/do
// bodies. Values < 1 are ignored.
func MaxDepth(n int) Option {
	return func(p *Parser) {
		if n > 0 {
			p.maxdepth = n
		}
	}
}

// TraceOutput makes the parser write every trace line to w, as it occurs.
// The syntax tree is written as the last line.
func TraceOutput(w io.Writer) Option {
	return func(p *Parser) {
		p.out = w
	}
}

// NewParser creates a parser.
func NewParser(opts ...Option) *Parser {
	p := &Parser{maxdepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse parses the token stream of a tokenizer, up to end-of-input.
// Syntax errors do not make Parse fail; they are recovered from and listed
// in the result. A non-nil error is returned only if the parse had to be
// given up, in which case the partial result is returned as well.
func (p *Parser) Parse(tokens scanner.Tokenizer) (*Result, error) {
	if tokens == nil {
		return nil, ErrNoInput
	}
	s := &session{p: p, tokens: tokens, result: &Result{}}
	s.advance()
	s.result.Tree = s.program()
	s.emitLine(s.result.TreeString())
	if s.aborted {
		return s.result, fmt.Errorf("parse aborted at %v: %w", s.tok.Span(), ErrNestingTooDeep)
	}
	return s.result, nil
}

// ParseString scans and parses a calculator program. Scanner errors are
// collected in the result's ScanErrors.
func ParseString(input string, opts ...Option) (*Result, error) {
	lexer, err := calc.NewLexer()
	if err != nil {
		return nil, err
	}
	sc, err := lexer.Scanner(input)
	if err != nil {
		return nil, err
	}
	var scanErrors []error
	sc.SetErrorHandler(func(e error) {
		tracer().Infof("scanner: %v", e)
		scanErrors = append(scanErrors, e)
	})
	result, err := NewParser(opts...).Parse(sc)
	if result != nil {
		result.ScanErrors = scanErrors
	}
	return result, err
}

// --- Parse session ---------------------------------------------------------

// session holds the state of a single parse.
type session struct {
	p       *Parser
	tokens  scanner.Tokenizer
	tok     llcalc.Token // current token
	result  *Result
	depth   int
	aborted bool
}

func (s *session) current() calc.Kind {
	return calc.KindOf(s.tok)
}

func (s *session) advance() {
	s.tok = s.tokens.NextToken()
	tracer().Debugf("current token = %s %q", s.current(), s.tok.Lexeme())
}

// nested calls f one level of input nesting deeper. If the maximum depth
// is exceeded, the session is aborted and f is not called.
func (s *session) nested(f func()) {
	if !s.enter() {
		return
	}
	defer s.leave()
	f()
}

// enter guards the nesting depth of the input. Every successful enter
// has to be paired with a leave.
func (s *session) enter() bool {
	if s.aborted {
		return false
	}
	if s.depth >= s.p.maxdepth {
		tracer().Errorf("maximum nesting depth %d exceeded at %v", s.p.maxdepth, s.tok.Span())
		s.aborted = true
		return false
	}
	s.depth++
	return true
}

func (s *session) leave() {
	s.depth--
}

func (s *session) emit(ev Event) {
	s.result.Trace = append(s.result.Trace, ev)
	s.emitLine(ev.String())
}

func (s *session) emitLine(line string) {
	if s.p.out != nil {
		io.WriteString(s.p.out, line)
		io.WriteString(s.p.out, "\n")
	}
}

// --- Prediction and error recovery -----------------------------------------

type prediction int

const (
	proceed prediction = iota
	skipEpsilon
	fail
)

// predict decides whether N is to be expanded at the current token.
func (s *session) predict(N *calc.Nonterminal) prediction {
	if s.aborted {
		return fail
	}
	k := s.current()
	if N.First.Contains(k) {
		return proceed
	}
	if N.Eps {
		tracer().Debugf("%s --> ε", N.Name)
		return skipEpsilon
	}
	s.syntaxError(N, N.First)
	if s.resync(N.First, N.Follow) {
		return proceed
	}
	return fail
}

// resync skips the offending token, then skips further tokens until the
// current token is in first, in follow, or is end-of-input. It returns true
// if it stopped at a token in first.
func (s *session) resync(first, follow calc.TokenSet) bool {
	stop := first.Union(follow).Union(calc.SetOf(calc.EOF))
	for {
		tracer().Debugf("skipping %s", s.current())
		s.advance()
		if stop.Contains(s.current()) {
			break
		}
	}
	return first.Contains(s.current())
}

func (s *session) syntaxError(N *calc.Nonterminal, expected calc.TokenSet) {
	err := &SyntaxError{
		Token:       s.current(),
		Lexeme:      s.tok.Lexeme(),
		Span:        s.tok.Span(),
		Nonterminal: N.Name,
		Expected:    expected,
	}
	tracer().Infof("%s at %v in %s, expected one of %v", err, err.Span, N.Name, expected)
	s.result.Errors = append(s.result.Errors, err)
	s.emit(Event{Kind: ErrorEvent, Symbol: err.Token.String(), Lexeme: err.Lexeme})
}

type matchResult int

const (
	matched matchResult = iota
	mismatched
)

// match consumes a terminal t as part of a right hand side of N and appends
// it to node. On mismatch, it tries to resynchronize onto t.
func (s *session) match(t calc.Kind, N *calc.Nonterminal, node *Node) matchResult {
	if s.aborted {
		return mismatched
	}
	if s.current() != t {
		s.syntaxError(N, calc.SetOf(t))
		if !s.resync(calc.SetOf(t), N.Follow) {
			tracer().Debugf("abandoning %s", N.Name)
			return mismatched
		}
	}
	ev := Event{Kind: MatchEvent, Symbol: t.String()}
	if t.HasLexeme() {
		ev.Lexeme = s.tok.Lexeme()
	}
	s.emit(ev)
	if t != calc.EOF {
		node.add(terminal(s.tok))
	}
	s.advance()
	return matched
}

// matchAll matches a sequence of terminals, stopping at the first mismatch.
func (s *session) matchAll(N *calc.Nonterminal, node *Node, ts ...calc.Kind) matchResult {
	for _, t := range ts {
		if s.match(t, N, node) == mismatched {
			return mismatched
		}
	}
	return matched
}

func (s *session) predicted(N *calc.Nonterminal, rhs ...string) {
	s.emit(Event{Kind: PredictEvent, Symbol: N.Name, RHS: rhs})
}
