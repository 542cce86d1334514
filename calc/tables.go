package calc

import (
	"math/bits"
	"strings"
)

// TokenSet is a set of terminal kinds. The zero value is the empty set.
type TokenSet uint32

// SetOf creates a token set from a list of kinds.
func SetOf(kinds ...Kind) TokenSet {
	var s TokenSet
	for _, k := range kinds {
		s |= 1 << uint(k)
	}
	return s
}

// Contains is true if k is a member of s.
func (s TokenSet) Contains(k Kind) bool {
	return k >= 0 && int(k) < KindCount && s&(1<<uint(k)) != 0
}

// Union returns s ∪ other.
func (s TokenSet) Union(other TokenSet) TokenSet {
	return s | other
}

// Size returns the number of kinds in s.
func (s TokenSet) Size() int {
	return bits.OnesCount32(uint32(s))
}

// Tokens returns the members of s in ascending order.
func (s TokenSet) Tokens() []Kind {
	kinds := make([]Kind, 0, s.Size())
	for k := Kind(0); int(k) < KindCount; k++ {
		if s.Contains(k) {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

func (s TokenSet) String() string {
	var names []string
	for _, k := range s.Tokens() {
		names = append(names, k.String())
	}
	return "{" + strings.Join(names, " ") + "}"
}

// Nonterminal describes a non-terminal of the calculator grammar: its
// FIRST-set, if it derives epsilon, and its FOLLOW-set.
type Nonterminal struct {
	Name   string
	First  TokenSet
	Eps    bool
	Follow TokenSet
}

// frequently used sets
var (
	stmtStart = SetOf(ID, Read, Write, If, Do, Check)
	exprStart = SetOf(LParen, ID, Literal)
	relOps    = SetOf(Eq, Neq, Less, Great, LessEq, GreatEq)
	addOps    = SetOf(Add, Sub)
	mulOps    = SetOf(Mul, Div)
)

var (
	followStmtList = SetOf(Fi, Od, EOF)
	followStmt     = stmtStart.Union(followStmtList)
	followRel      = SetOf(RParen).Union(followStmt)
	followExpr     = relOps.Union(followRel)
	followTerm     = addOps.Union(followExpr)
	followFactor   = mulOps.Union(followTerm)
)

// The non-terminals of the calculator grammar.
var (
	Program    = Nonterminal{"Program", stmtStart.Union(SetOf(EOF)), false, 0}
	StmtList   = Nonterminal{"StmtList", stmtStart, true, followStmtList}
	Stmt       = Nonterminal{"Stmt", stmtStart, false, followStmt}
	Rel        = Nonterminal{"Rel", exprStart, false, followRel}
	Expr       = Nonterminal{"Expr", exprStart, false, followExpr}
	ExprTail   = Nonterminal{"ExprTail", relOps, true, followRel}
	Term       = Nonterminal{"Term", exprStart, false, followTerm}
	TermTail   = Nonterminal{"TermTail", addOps, true, followExpr}
	Factor     = Nonterminal{"Factor", exprStart, false, followFactor}
	FactorTail = Nonterminal{"FactorTail", mulOps, true, followTerm}
	RelOp      = Nonterminal{"RelOp", relOps, false, exprStart}
	AddOp      = Nonterminal{"AddOp", addOps, false, exprStart}
	MulOp      = Nonterminal{"MulOp", mulOps, false, exprStart}
)

// Nonterminals returns all non-terminals, Program first.
func Nonterminals() []Nonterminal {
	return []Nonterminal{
		Program, StmtList, Stmt, Rel, Expr, ExprTail, Term,
		TermTail, Factor, FactorTail, RelOp, AddOp, MulOp,
	}
}
