package grammar

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/llcalc/grammar/sparse"
)

// Table is an LL(1) predict table. Rows are non-terminals, columns are
// terminals, and entries are rule numbers.
type Table struct {
	g         *Grammar
	matrix    *sparse.IntMatrix
	mincol    int        // lowest token value => offset for access
	Conflicts []Conflict // entries with more than one rule
}

// Conflict is a predict table entry with more than one candidate rule.
type Conflict struct {
	Nonterminal *Symbol
	Terminal    *Symbol
	Rules       [2]int
}

func (c Conflict) String() string {
	return fmt.Sprintf("conflict at (%s, %s): rules %d and %d",
		c.Nonterminal, c.Terminal, c.Rules[0], c.Rules[1])
}

// PredictTable builds the predict table for an analysed grammar. For every
// rule A --> α, the rule is entered at (A, t) for every t in FIRST(α), and for
// every t in FOLLOW(A) if α derives epsilon.
func PredictTable(ga *LLAnalysis) *Table {
	g := ga.Grammar()
	mintok, maxtok := 0, 0
	first := true
	g.EachTerminal(func(T *Symbol) {
		if first || T.Value < mintok {
			mintok = T.Value
		}
		if first || T.Value > maxtok {
			maxtok = T.Value
		}
		first = false
	})
	extent := maxtok - mintok + 1
	tracer().Infof("predict table of size %d x (%d-%d=%d)", len(g.nonterminals), maxtok, mintok, extent)
	table := &Table{
		g:      g,
		matrix: sparse.NewIntMatrix(len(g.nonterminals), extent, sparse.DefaultNullValue),
		mincol: mintok,
	}
	g.EachRule(func(r *Rule) {
		la, eps := ga.FirstOfSequence(r.RHS())
		if eps {
			la = append(la, ga.Follow(r.LHS.Name)...)
		}
		for _, t := range la {
			table.add(r, t)
		}
	})
	return table
}

func (t *Table) add(r *Rule, tokval int) {
	j := tokval - t.mincol
	if prev := t.matrix.Value(r.LHS.Value, j); prev == int32(r.Serial) {
		return // t in FIRST and in FOLLOW for the same rule
	}
	if t.matrix.Add(r.LHS.Value, j, int32(r.Serial)) {
		c := Conflict{
			Nonterminal: r.LHS,
			Terminal:    t.g.Terminal(tokval),
			Rules:       [2]int{int(t.matrix.Value(r.LHS.Value, j)), r.Serial},
		}
		tracer().Infof(c.String())
		t.Conflicts = append(t.Conflicts, c)
	}
}

// HasConflicts is true if the grammar is not LL(1).
func (t *Table) HasConflicts() bool {
	return len(t.Conflicts) > 0
}

// Predict returns the rule to expand non-terminal `name` with, given a
// lookahead token value. If the entry is empty, ok is false.
// For conflicting entries, the rule entered first is returned.
func (t *Table) Predict(name string, tokval int) (rule *Rule, ok bool) {
	N := t.g.Symbol(name)
	if N == nil || N.IsTerminal() {
		return nil, false
	}
	v := t.matrix.Value(N.Value, tokval-t.mincol)
	if v == t.matrix.NullValue() {
		return nil, false
	}
	return t.g.Rule(int(v)), true
}

// Each calls f for every non-empty entry of the table, ordered by
// non-terminal and terminal.
func (t *Table) Each(f func(N *Symbol, T *Symbol, r *Rule)) {
	t.matrix.Each(func(i, j int, a, b int32) {
		N := t.g.nonterminals[i]
		T := t.g.Terminal(j + t.mincol)
		f(N, T, t.g.Rule(int(a)))
	})
}

// Dump writes the table in a human readable form to w.
func (t *Table) Dump(w io.Writer) {
	var row *Symbol
	var line strings.Builder
	flush := func() {
		if row != nil {
			io.WriteString(w, line.String())
			io.WriteString(w, "\n")
		}
		line.Reset()
	}
	t.Each(func(N *Symbol, T *Symbol, r *Rule) {
		if N != row {
			flush()
			row = N
			line.WriteString(fmt.Sprintf("%-12s", N.Name))
		}
		line.WriteString(fmt.Sprintf(" %s:%d", T, r.Serial))
	})
	flush()
}
