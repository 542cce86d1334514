/*
Package grammar implements prerequisites for LL(1) parsing.
It is used to check the hand-written tables of the calculator parser, but
may be of use for other predictive parsers, too.

Building a Grammar

Grammars are specified using a grammar builder object. Clients add
rules, consisting of non-terminal symbols and terminals. Terminals
carry a token value of type int. Grammars may contain epsilon-productions.

Example:

    b := grammar.NewBuilder("G")
    b.LHS("S").N("A").T("a", 1).EOF()  // S  ->  A a #eof
    b.LHS("A").N("B").N("D").End()     // A  ->  B D
    b.LHS("B").T("b", 2).End()         // B  ->  b
    b.LHS("B").Epsilon()               // B  ->
    b.LHS("D").T("d", 3).End()         // D  ->  d
    b.LHS("D").Epsilon()               // D  ->
    g, err := b.Grammar()

This results in the following trivial grammar:

   g.Dump()

   0: S --> A a #eof
   1: A --> B D
   2: B --> b
   3: B --> ε
   4: D --> d
   5: D --> ε

Static Grammar Analysis

After the grammar is complete, it has to be analysed. For this end, the
grammar is subjected to an LLAnalysis object, which computes FIRST and
FOLLOW sets for the grammar and determines all epsilon-derivable
non-terminals.

    ga := grammar.Analysis(g)
    ga.Grammar().EachNonTerminal(func(N *grammar.Symbol) {
        fmt.Printf("FIRST(%s) = %v\n", N, ga.First(N.Name))
    })

    // Output:
    FIRST(S) = [1 2 3]
    FIRST(A) = [2 3]
    FIRST(B) = [2]
    FIRST(D) = [3]

Epsilon is not a member of FIRST-sets; use ga.Epsilon(name) instead.
The start symbol's FOLLOW-set is not seeded with end-of-input. Grammars
are expected to match end-of-input explicitly, as in rule 0 above.

Predict Tables

From the analysis an LL(1) predict table is constructed, mapping pairs of
(non-terminal, lookahead terminal) to grammar rules. Multiple rules for one
entry are recorded as conflicts; a grammar is LL(1) if and only if its
predict table has no conflicts.

    table := grammar.PredictTable(ga)
    rule, ok := table.Predict("B", 3)   // => B --> ε

Grammars may be exported as EBNF, compatible with golang.org/x/exp/ebnf.
For this to verify, non-terminal names have to start with an upper case letter.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'llcalc.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("llcalc.grammar")
}
