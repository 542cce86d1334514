package parser

import (
	"fmt"
	"strings"

	"github.com/cnf/structhash"
	"github.com/npillmayer/llcalc"
	"github.com/npillmayer/llcalc/calc"
)

// EventKind classifies trace events.
type EventKind int

// Kinds of trace events.
const (
	PredictEvent EventKind = iota // a rule has been predicted
	MatchEvent                    // a terminal has been matched
	ErrorEvent                    // a token has been rejected
)

// Event is an entry of the derivation trace.
type Event struct {
	Kind   EventKind
	Symbol string   // non-terminal for predict events, terminal otherwise
	RHS    []string // right hand side of a predicted rule
	Lexeme string   // lexeme of an id or literal
}

func (ev Event) String() string {
	switch ev.Kind {
	case PredictEvent:
		return fmt.Sprintf("predict %s --> %s", ev.Symbol, strings.Join(ev.RHS, " "))
	case MatchEvent:
		if ev.Lexeme != "" {
			return fmt.Sprintf("match %s: %s", ev.Symbol, ev.Lexeme)
		}
		return "match " + ev.Symbol
	case ErrorEvent:
		return "symbol not valid: " + ev.Symbol
	}
	return fmt.Sprintf("<event %d>", ev.Kind)
}

// SyntaxError is reported for every token the parser cannot accept at
// its position.
type SyntaxError struct {
	Token       calc.Kind     // offending token
	Lexeme      string        // lexeme of the offending token
	Span        llcalc.Span   // position of the offending token
	Nonterminal string        // non-terminal the parser tried to expand
	Expected    calc.TokenSet // tokens which would have been accepted
}

func (e *SyntaxError) Error() string {
	return "symbol not valid: " + e.Token.String()
}

// Result is the outcome of a parse.
type Result struct {
	Trace      []Event        // derivation trace, in pre-order
	Tree       *Node          // syntax tree, rooted at Program
	Errors     []*SyntaxError // syntax errors, in order of occurrence
	ScanErrors []error        // errors reported by the scanner, if collected
}

// TreeString returns the serialized syntax tree.
func (r *Result) TreeString() string {
	return r.Tree.String()
}

// Lines returns the trace as text, followed by the serialized tree.
func (r *Result) Lines() []string {
	lines := make([]string, 0, len(r.Trace)+1)
	for _, ev := range r.Trace {
		lines = append(lines, ev.String())
	}
	return append(lines, r.TreeString())
}

// OK is true if neither the parser nor the scanner reported errors.
func (r *Result) OK() bool {
	return len(r.Errors) == 0 && len(r.ScanErrors) == 0
}

// Digest returns a structural hash of trace and tree. Parsing the same
// token sequence twice results in identical digests.
func (r *Result) Digest() (string, error) {
	d := struct {
		Trace []string
		Tree  string
	}{}
	for _, ev := range r.Trace {
		d.Trace = append(d.Trace, ev.String())
	}
	d.Tree = r.TreeString()
	return structhash.Hash(d, 1)
}

// Report is a serializable summary of a parse result.
type Report struct {
	Trace      []string `yaml:"trace"`
	Tree       string   `yaml:"tree"`
	Errors     []string `yaml:"errors,omitempty"`
	ScanErrors []string `yaml:"scan_errors,omitempty"`
	Digest     string   `yaml:"digest,omitempty"`
}

// Report creates a serializable summary of r.
func (r *Result) Report() Report {
	rep := Report{Tree: r.TreeString()}
	for _, ev := range r.Trace {
		rep.Trace = append(rep.Trace, ev.String())
	}
	for _, e := range r.Errors {
		rep.Errors = append(rep.Errors, fmt.Sprintf("%v in %s: %s", e.Span, e.Nonterminal, e))
	}
	for _, e := range r.ScanErrors {
		rep.ScanErrors = append(rep.ScanErrors, e.Error())
	}
	if d, err := r.Digest(); err == nil {
		rep.Digest = d
	} else {
		tracer().Errorf("cannot compute digest: %v", err)
	}
	return rep
}
