package grammar

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/ebnf"
)

// EBNF renders a grammar in the EBNF dialect of golang.org/x/exp/ebnf.
// Terminals are written as quoted tokens. Non-terminals with epsilon rules
// have their other alternatives wrapped into an option, as the dialect does
// not know empty alternatives.
//
//	StmtList = [ Stmt StmtList ] .
func EBNF(g *Grammar) string {
	var b strings.Builder
	g.EachNonTerminal(func(N *Symbol) {
		var alts []string
		eps := false
		for _, r := range g.RulesFor(N) {
			if r.IsEps() {
				eps = true
				continue
			}
			terms := make([]string, len(r.RHS()))
			for i, A := range r.RHS() {
				if A.IsTerminal() {
					terms[i] = strconv.Quote(A.Name)
				} else {
					terms[i] = A.Name
				}
			}
			alts = append(alts, strings.Join(terms, " "))
		}
		expr := strings.Join(alts, " | ")
		if eps && expr != "" {
			expr = "[ " + expr + " ]"
		}
		if expr == "" {
			b.WriteString(fmt.Sprintf("%s = .\n", N.Name))
		} else {
			b.WriteString(fmt.Sprintf("%s = %s .\n", N.Name, expr))
		}
	})
	return b.String()
}

// VerifyEBNF exports a grammar as EBNF, re-parses it and checks that every
// production is defined and reachable from the start symbol.
func VerifyEBNF(g *Grammar) error {
	if g.Start() == nil {
		return fmt.Errorf("grammar %q has no rules: %w", g.Name, ErrUndefinedSymbol)
	}
	src := EBNF(g)
	tracer().Debugf("EBNF of %s:\n%s", g.Name, src)
	productions, err := ebnf.Parse(g.Name, strings.NewReader(src))
	if err != nil {
		return fmt.Errorf("grammar %q does not parse as EBNF: %w", g.Name, err)
	}
	if err = ebnf.Verify(productions, g.Start().Name); err != nil {
		return fmt.Errorf("grammar %q does not verify: %w", g.Name, err)
	}
	return nil
}
