package grammar

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func makeGrammar(t *testing.T) *Grammar {
	b := NewBuilder("G")
	b.LHS("S").N("A").T("a", 1).EOF()
	b.LHS("A").N("B").N("D").End()
	b.LHS("B").T("b", 2).End()
	b.LHS("B").Epsilon()
	b.LHS("D").T("d", 3).End()
	b.LHS("D").Epsilon()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestBuilder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llcalc.grammar")
	defer teardown()
	//
	g := makeGrammar(t)
	g.Dump()
	if g.Size() != 6 {
		t.Errorf("expected grammar to have 6 rules, has %d", g.Size())
	}
	if g.Start().Name != "S" {
		t.Errorf("expected start symbol S, is %v", g.Start())
	}
	if r := g.Rule(0); r.String() != "S --> A a #eof" {
		t.Errorf("unexpected rule #0: %s", r)
	}
	if r := g.Rule(3); !r.IsEps() || r.String() != "B --> ε" {
		t.Errorf("expected rule #3 to be epsilon, is %s", r)
	}
	var terms []string
	g.EachTerminal(func(T *Symbol) {
		terms = append(terms, T.Name)
	})
	if strings.Join(terms, " ") != "#eof a b d" {
		t.Errorf("expected terminals ordered by token value, have %v", terms)
	}
}

func TestBuilderUndefined(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llcalc.grammar")
	defer teardown()
	//
	b := NewBuilder("G")
	b.LHS("S").N("X").EOF()
	if _, err := b.Grammar(); !errors.Is(err, ErrUndefinedSymbol) {
		t.Errorf("expected undefined symbol X to be reported, have %v", err)
	}
}

func TestBuilderRedefined(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llcalc.grammar")
	defer teardown()
	//
	b := NewBuilder("G")
	b.LHS("S").T("a", 1).T("a", 2).EOF()
	if _, err := b.Grammar(); !errors.Is(err, ErrSymbolRedefined) {
		t.Errorf("expected inconsistent terminal to be reported, have %v", err)
	}
	b = NewBuilder("G")
	b.LHS("S").T("S", 1).EOF()
	if _, err := b.Grammar(); !errors.Is(err, ErrSymbolRedefined) {
		t.Errorf("expected S as terminal to be reported, have %v", err)
	}
}

func TestFirstFollow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llcalc.grammar")
	defer teardown()
	//
	ga := Analysis(makeGrammar(t))
	first := map[string][]int{
		"S": {1, 2, 3},
		"A": {2, 3},
		"B": {2},
		"D": {3},
	}
	follow := map[string][]int{
		"S": {},
		"A": {1},
		"B": {1, 3},
		"D": {1},
	}
	eps := map[string]bool{"S": false, "A": true, "B": true, "D": true}
	for N, F := range first {
		if !reflect.DeepEqual(ga.First(N), F) {
			t.Errorf("expected FIRST(%s) = %v, is %v", N, F, ga.First(N))
		}
		if !reflect.DeepEqual(ga.Follow(N), follow[N]) {
			t.Errorf("expected FOLLOW(%s) = %v, is %v", N, follow[N], ga.Follow(N))
		}
		if ga.Epsilon(N) != eps[N] {
			t.Errorf("expected EPS(%s) = %v", N, eps[N])
		}
	}
}

func TestPredictTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llcalc.grammar")
	defer teardown()
	//
	table := PredictTable(Analysis(makeGrammar(t)))
	if table.HasConflicts() {
		t.Errorf("expected grammar G to be LL(1), has conflicts %v", table.Conflicts)
	}
	expect := []struct {
		N    string
		la   int
		rule int
	}{
		{"S", 1, 0}, {"S", 2, 0}, {"A", 1, 1}, {"B", 2, 2},
		{"B", 3, 3}, {"B", 1, 3}, {"D", 3, 4}, {"D", 1, 5},
	}
	for _, x := range expect {
		r, ok := table.Predict(x.N, x.la)
		if !ok || r.Serial != x.rule {
			t.Errorf("expected predict(%s,%d) = rule %d, is %v", x.N, x.la, x.rule, r)
		}
	}
	if _, ok := table.Predict("D", 2); ok {
		t.Errorf("expected predict(D,b) to be empty")
	}
	var b strings.Builder
	table.Dump(&b)
	t.Logf("\n%s", b.String())
}

func TestPredictConflict(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llcalc.grammar")
	defer teardown()
	//
	b := NewBuilder("G")
	b.LHS("S").T("a", 1).T("b", 2).EOF()
	b.LHS("S").T("a", 1).T("c", 3).EOF()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	table := PredictTable(Analysis(g))
	if len(table.Conflicts) != 1 {
		t.Fatalf("expected 1 conflict, have %v", table.Conflicts)
	}
	c := table.Conflicts[0]
	if c.Terminal.Name != "a" || c.Rules != [2]int{0, 1} {
		t.Errorf("unexpected conflict: %v", c)
	}
}

func TestEBNF(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llcalc.grammar")
	defer teardown()
	//
	g := makeGrammar(t)
	src := EBNF(g)
	t.Logf("\n%s", src)
	if !strings.Contains(src, `B = [ "b" ] .`) {
		t.Errorf("expected epsilon rule of B to be rendered as option")
	}
	if err := VerifyEBNF(g); err != nil {
		t.Error(err)
	}
}

func TestEBNFUnreachable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llcalc.grammar")
	defer teardown()
	//
	b := NewBuilder("G")
	b.LHS("S").T("a", 1).EOF()
	b.LHS("U").T("u", 2).End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	if err := VerifyEBNF(g); err == nil {
		t.Errorf("expected unreachable U to be reported")
	}
}
