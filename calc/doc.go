/*
Package calc defines the calculator language: its terminal kinds, the
static FIRST/FOLLOW tables of its non-terminals, its grammar and a lexer.

The grammar of the language (terminals lower case, non-terminals capitalized):

    Program    --> StmtList eof
    StmtList   --> Stmt StmtList | ε
    Stmt       --> id gets Expr | read id | write Rel
                 | if Rel StmtList fi | do StmtList od | check Rel
    Rel        --> Expr ExprTail
    Expr       --> Term TermTail
    ExprTail   --> RelOp Expr | ε
    Term       --> Factor FactorTail
    TermTail   --> AddOp Term TermTail | ε
    Factor     --> lparen Rel rparen | id | literal
    FactorTail --> MulOp Factor FactorTail | ε
    RelOp      --> eq | neq | less | great | less_eq | great_eq
    AddOp      --> add | sub
    MulOp      --> mul | div

The tables are package level data, shared between all parsers. They are
checked against a grammar analysis of Grammar() in the tests of this package.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package calc

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'llcalc.calc'.
func tracer() tracing.Trace {
	return tracing.Select("llcalc.calc")
}
