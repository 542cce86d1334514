package calc

import (
	"errors"
	"fmt"

	"github.com/npillmayer/llcalc/grammar"
)

// Grammar returns the grammar of the calculator language. Terminals are named
// by their kind and carry the kind as token value.
func Grammar() (*grammar.Grammar, error) {
	b := grammar.NewBuilder("calc")
	b.SetEOF(EOF.String(), int(EOF))
	rule(b, Program).N(StmtList).EOF()
	rule(b, StmtList).N(Stmt).N(StmtList).End()
	rule(b, StmtList).Epsilon()
	rule(b, Stmt).K(ID).K(Gets).N(Expr).End()
	rule(b, Stmt).K(Read).K(ID).End()
	rule(b, Stmt).K(Write).N(Rel).End()
	rule(b, Stmt).K(If).N(Rel).N(StmtList).K(Fi).End()
	rule(b, Stmt).K(Do).N(StmtList).K(Od).End()
	rule(b, Stmt).K(Check).N(Rel).End()
	rule(b, Rel).N(Expr).N(ExprTail).End()
	rule(b, Expr).N(Term).N(TermTail).End()
	rule(b, ExprTail).N(RelOp).N(Expr).End()
	rule(b, ExprTail).Epsilon()
	rule(b, Term).N(Factor).N(FactorTail).End()
	rule(b, TermTail).N(AddOp).N(Term).N(TermTail).End()
	rule(b, TermTail).Epsilon()
	rule(b, Factor).K(LParen).N(Rel).K(RParen).End()
	rule(b, Factor).K(ID).End()
	rule(b, Factor).K(Literal).End()
	rule(b, FactorTail).N(MulOp).N(Factor).N(FactorTail).End()
	rule(b, FactorTail).Epsilon()
	for _, op := range []struct {
		N   Nonterminal
		ops TokenSet
	}{{RelOp, relOps}, {AddOp, addOps}, {MulOp, mulOps}} {
		for _, k := range op.ops.Tokens() {
			rule(b, op.N).K(k).End()
		}
	}
	g, err := b.Grammar()
	if err != nil {
		return nil, fmt.Errorf("calculator grammar: %w", err)
	}
	return g, nil
}

// ErrTableMismatch is returned by Verify if the static tables differ from
// the grammar analysis.
var ErrTableMismatch = errors.New("static tables do not match grammar")

// Verify checks the static tables of this package against an analysis of
// Grammar(). It also checks that the grammar is LL(1) and that its EBNF form
// verifies.
func Verify() error {
	g, err := Grammar()
	if err != nil {
		return err
	}
	ga := grammar.Analysis(g)
	for _, N := range Nonterminals() {
		if first := setOfValues(ga.First(N.Name)); first != N.First {
			return fmt.Errorf("FIRST(%s) is %v, analysis has %v: %w", N.Name, N.First, first, ErrTableMismatch)
		}
		if follow := setOfValues(ga.Follow(N.Name)); follow != N.Follow {
			return fmt.Errorf("FOLLOW(%s) is %v, analysis has %v: %w", N.Name, N.Follow, follow, ErrTableMismatch)
		}
		if ga.Epsilon(N.Name) != N.Eps {
			return fmt.Errorf("EPS(%s) is %v: %w", N.Name, N.Eps, ErrTableMismatch)
		}
	}
	if table := grammar.PredictTable(ga); table.HasConflicts() {
		return fmt.Errorf("calculator grammar is not LL(1): %v", table.Conflicts[0])
	}
	if err := grammar.VerifyEBNF(g); err != nil {
		return err
	}
	tracer().Infof("tables of %d non-terminals verified", len(Nonterminals()))
	return nil
}

func setOfValues(vals []int) TokenSet {
	var s TokenSet
	for _, v := range vals {
		s = s.Union(SetOf(Kind(v)))
	}
	return s
}

// kindRule wraps a rule builder to append symbols from this package.
type kindRule struct {
	*grammar.RuleBuilder
}

func rule(b *grammar.Builder, lhs Nonterminal) kindRule {
	return kindRule{b.LHS(lhs.Name)}
}

// K appends a terminal of kind k.
func (kr kindRule) K(k Kind) kindRule {
	return kindRule{kr.RuleBuilder.T(k.String(), int(k))}
}

// N appends non-terminal A.
func (kr kindRule) N(A Nonterminal) kindRule {
	return kindRule{kr.RuleBuilder.N(A.Name)}
}
