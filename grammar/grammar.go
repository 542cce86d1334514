package grammar

import (
	"errors"
	"fmt"
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/llcalc"
	"github.com/npillmayer/llcalc/scanner"
)

// ErrUndefinedSymbol is returned by the grammar builder if a non-terminal is
// referenced on a right hand side but has no rule of its own.
var ErrUndefinedSymbol = errors.New("undefined symbol")

// ErrSymbolRedefined is returned by the grammar builder if a symbol name is
// used with inconsistent properties, e.g. as a terminal and as a non-terminal.
var ErrSymbolRedefined = errors.New("symbol redefined")

// EpsilonName is the display name for empty right hand sides.
const EpsilonName = "ε"

// --- Symbols ---------------------------------------------------------------

// Symbol is a symbol of a grammar, either a terminal or a non-terminal.
// Terminals carry their token value in Value. For non-terminals, Value is
// a serial number, starting at 0 with the LHS of the first rule.
type Symbol struct {
	Name     string
	Value    int
	terminal bool
}

// IsTerminal returns true if this symbol represents a terminal.
func (A *Symbol) IsTerminal() bool {
	return A.terminal
}

// TokenType returns the token type of a terminal symbol.
func (A *Symbol) TokenType() llcalc.TokType {
	return llcalc.TokType(A.Value)
}

func (A *Symbol) String() string {
	return A.Name
}

func symbolComparator(s1, s2 interface{}) int {
	return utils.IntComparator(s1.(*Symbol).Value, s2.(*Symbol).Value)
}

// --- Rules -----------------------------------------------------------------

// Rule is a type for rules of a grammar.
type Rule struct {
	Serial int     // ordinal of this rule within its grammar
	LHS    *Symbol // symbol of left hand side
	rhs    []*Symbol
}

// RHS returns the right hand side of a rule. For epsilon rules it is empty.
func (r *Rule) RHS() []*Symbol {
	return r.rhs
}

// IsEps returns true if this is an epsilon rule.
func (r *Rule) IsEps() bool {
	return len(r.rhs) == 0
}

// RHSString returns the right hand side of a rule as a string of symbol names.
func (r *Rule) RHSString() string {
	if r.IsEps() {
		return EpsilonName
	}
	names := make([]string, len(r.rhs))
	for i, A := range r.rhs {
		names[i] = A.Name
	}
	return strings.Join(names, " ")
}

func (r *Rule) String() string {
	return fmt.Sprintf("%s --> %s", r.LHS, r.RHSString())
}

// --- Grammar ---------------------------------------------------------------

// Grammar is a type for a context free grammar. Create one with a Builder.
type Grammar struct {
	Name         string
	rules        *arraylist.List // of *Rule
	terminals    *treeset.Set    // of *Symbol, sorted by token value
	nonterminals []*Symbol       // in order of appearance
	symbols      map[string]*Symbol
}

func newGrammar(name string) *Grammar {
	return &Grammar{
		Name:      name,
		rules:     arraylist.New(),
		terminals: treeset.NewWith(symbolComparator),
		symbols:   make(map[string]*Symbol),
	}
}

// Rule returns rule #no, or nil.
func (g *Grammar) Rule(no int) *Rule {
	r, ok := g.rules.Get(no)
	if !ok {
		return nil
	}
	return r.(*Rule)
}

// Size returns the number of rules.
func (g *Grammar) Size() int {
	return g.rules.Size()
}

// Start returns the start symbol, i.e., the LHS of rule #0.
func (g *Grammar) Start() *Symbol {
	if g.rules.Empty() {
		return nil
	}
	return g.Rule(0).LHS
}

// Symbol returns the symbol for a name, or nil.
func (g *Grammar) Symbol(name string) *Symbol {
	return g.symbols[name]
}

// Terminal returns the terminal symbol for a token value, or nil.
func (g *Grammar) Terminal(tokval int) *Symbol {
	it := g.terminals.Iterator()
	for it.Next() {
		if T := it.Value().(*Symbol); T.Value == tokval {
			return T
		}
	}
	return nil
}

// EachNonTerminal calls f for every non-terminal, in order of appearance.
func (g *Grammar) EachNonTerminal(f func(N *Symbol)) {
	for _, N := range g.nonterminals {
		f(N)
	}
}

// EachTerminal calls f for every terminal, ordered by token value.
func (g *Grammar) EachTerminal(f func(T *Symbol)) {
	it := g.terminals.Iterator()
	for it.Next() {
		f(it.Value().(*Symbol))
	}
}

// EachRule calls f for every rule, in order of definition.
func (g *Grammar) EachRule(f func(r *Rule)) {
	g.rules.Each(func(_ int, r interface{}) {
		f(r.(*Rule))
	})
}

// RulesFor returns all rules with LHS N.
func (g *Grammar) RulesFor(N *Symbol) []*Rule {
	var rules []*Rule
	g.EachRule(func(r *Rule) {
		if r.LHS == N {
			rules = append(rules, r)
		}
	})
	return rules
}

// Dump is a debugging helper.
func (g *Grammar) Dump() {
	tracer().Debugf("--- %s --------------------------------------------", g.Name)
	g.EachRule(func(r *Rule) {
		tracer().Debugf("%3d: %s", r.Serial, r)
	})
	tracer().Debugf("-------------------------------------------------------")
}

// --- Builder ---------------------------------------------------------------

// Builder is a builder type for grammars. Rules are added by starting with
// LHS(…), followed by the right hand side symbols, and finished with
// End(), EOF() or Epsilon().
type Builder struct {
	g        *Grammar
	eofName  string
	eofValue int
	err      error
}

// NewBuilder gets a new grammar builder, given the name of the grammar to build.
// End-of-input is represented by a terminal '#eof' with token value scanner.EOF,
// unless re-configured with SetEOF.
func NewBuilder(name string) *Builder {
	return &Builder{
		g:        newGrammar(name),
		eofName:  "#eof",
		eofValue: int(scanner.EOF),
	}
}

// SetEOF sets the name and token value of the terminal used for EOF().
func (b *Builder) SetEOF(name string, tokval int) *Builder {
	b.eofName = name
	b.eofValue = tokval
	return b
}

// RuleBuilder collects the right hand side of a rule.
type RuleBuilder struct {
	b    *Builder
	rule *Rule
}

// LHS starts a new rule for non-terminal `name`.
func (b *Builder) LHS(name string) *RuleBuilder {
	N := b.nonterminal(name)
	return &RuleBuilder{b: b, rule: &Rule{LHS: N}}
}

// N appends a non-terminal to the right hand side.
func (rb *RuleBuilder) N(name string) *RuleBuilder {
	rb.rule.rhs = append(rb.rule.rhs, rb.b.nonterminal(name))
	return rb
}

// T appends a terminal with token value tokval to the right hand side.
func (rb *RuleBuilder) T(name string, tokval int) *RuleBuilder {
	rb.rule.rhs = append(rb.rule.rhs, rb.b.terminal(name, tokval))
	return rb
}

// End finishes a rule.
func (rb *RuleBuilder) End() *Rule {
	return rb.b.appendRule(rb.rule)
}

// EOF appends the end-of-input terminal and finishes a rule.
func (rb *RuleBuilder) EOF() *Rule {
	rb.T(rb.b.eofName, rb.b.eofValue)
	return rb.End()
}

// Epsilon finishes an epsilon rule. Symbols collected so far are dropped.
func (rb *RuleBuilder) Epsilon() *Rule {
	rb.rule.rhs = nil
	return rb.End()
}

// Grammar returns the grammar built so far. It returns an error if a symbol
// has been used inconsistently or if a non-terminal has no rule.
func (b *Builder) Grammar() (*Grammar, error) {
	if b.err != nil {
		return nil, b.err
	}
	for _, N := range b.g.nonterminals {
		if len(b.g.RulesFor(N)) == 0 {
			return nil, fmt.Errorf("non-terminal %q has no rule: %w", N.Name, ErrUndefinedSymbol)
		}
	}
	return b.g, nil
}

func (b *Builder) appendRule(r *Rule) *Rule {
	r.Serial = b.g.rules.Size()
	b.g.rules.Add(r)
	tracer().Debugf("%3d: %s", r.Serial, r)
	return r
}

func (b *Builder) nonterminal(name string) *Symbol {
	if A, ok := b.g.symbols[name]; ok {
		if A.terminal {
			b.fail(fmt.Errorf("%q used as terminal and as non-terminal: %w", name, ErrSymbolRedefined))
		}
		return A
	}
	A := &Symbol{Name: name, Value: len(b.g.nonterminals)}
	b.g.symbols[name] = A
	b.g.nonterminals = append(b.g.nonterminals, A)
	return A
}

func (b *Builder) terminal(name string, tokval int) *Symbol {
	if A, ok := b.g.symbols[name]; ok {
		if !A.terminal {
			b.fail(fmt.Errorf("%q used as non-terminal and as terminal: %w", name, ErrSymbolRedefined))
		} else if A.Value != tokval {
			b.fail(fmt.Errorf("terminal %q with token values %d and %d: %w",
				name, A.Value, tokval, ErrSymbolRedefined))
		}
		return A
	}
	A := &Symbol{Name: name, Value: tokval, terminal: true}
	if b.g.terminals.Contains(A) {
		b.fail(fmt.Errorf("token value %d used for more than one terminal: %w", tokval, ErrSymbolRedefined))
	}
	b.g.symbols[name] = A
	b.g.terminals.Add(A)
	return A
}

func (b *Builder) fail(err error) {
	if b.err == nil {
		tracer().Errorf(err.Error())
		b.err = err
	}
}
