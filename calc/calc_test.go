package calc

import (
	"reflect"
	"strings"
	"testing"

	"github.com/npillmayer/llcalc/grammar"
	"github.com/npillmayer/llcalc/scanner"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestKindNames(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llcalc.calc")
	defer teardown()
	//
	if LessEq.String() != "less_eq" || Check.String() != "check" || EOF.String() != "eof" {
		t.Errorf("unexpected kind names: %s %s %s", LessEq, Check, EOF)
	}
	if Kind(99).String() != "Kind(99)" {
		t.Errorf("expected out of range kind to print numeric, is %s", Kind(99))
	}
	if KindCount != 23 {
		t.Errorf("expected 23 terminal kinds, have %d", KindCount)
	}
}

func TestTokenSet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llcalc.calc")
	defer teardown()
	//
	s := SetOf(Add, Sub)
	if !s.Contains(Add) || s.Contains(Mul) || s.Contains(Kind(-1)) {
		t.Errorf("unexpected members of %v", s)
	}
	u := s.Union(SetOf(EOF, Add))
	if u.Size() != 3 {
		t.Errorf("expected 3 members in %v", u)
	}
	if !reflect.DeepEqual(u.Tokens(), []Kind{Add, Sub, EOF}) {
		t.Errorf("expected tokens in kind order, have %v", u.Tokens())
	}
	if u.String() != "{add sub eof}" {
		t.Errorf("unexpected string for token set: %s", u)
	}
}

func TestTablesMatchAnalysis(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llcalc.calc")
	defer teardown()
	//
	g, err := Grammar()
	if err != nil {
		t.Fatal(err)
	}
	ga := grammar.Analysis(g)
	for _, N := range Nonterminals() {
		if first := setOfValues(ga.First(N.Name)); first != N.First {
			t.Errorf("FIRST(%s): table has %v, analysis has %v", N.Name, N.First, first)
		}
		if follow := setOfValues(ga.Follow(N.Name)); follow != N.Follow {
			t.Errorf("FOLLOW(%s): table has %v, analysis has %v", N.Name, N.Follow, follow)
		}
		if ga.Epsilon(N.Name) != N.Eps {
			t.Errorf("EPS(%s): table has %v", N.Name, N.Eps)
		}
	}
	cnt := 0
	g.EachNonTerminal(func(*grammar.Symbol) { cnt++ })
	if cnt != len(Nonterminals()) {
		t.Errorf("grammar has %d non-terminals, tables have %d", cnt, len(Nonterminals()))
	}
}

func TestGrammarIsLL1(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llcalc.calc")
	defer teardown()
	//
	g, err := Grammar()
	if err != nil {
		t.Fatal(err)
	}
	table := grammar.PredictTable(grammar.Analysis(g))
	if table.HasConflicts() {
		t.Errorf("calculator grammar is not LL(1): %v", table.Conflicts)
	}
	r, ok := table.Predict(Stmt.Name, int(Read))
	if !ok || r.RHSString() != "read id" {
		t.Errorf("expected predict(Stmt, read) to be 'read id', is %v", r)
	}
	if r, ok := table.Predict(StmtList.Name, int(EOF)); !ok || !r.IsEps() {
		t.Errorf("expected predict(StmtList, eof) to be epsilon, is %v", r)
	}
}

func TestGrammarEBNF(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llcalc.calc")
	defer teardown()
	//
	g, err := Grammar()
	if err != nil {
		t.Fatal(err)
	}
	if err := grammar.VerifyEBNF(g); err != nil {
		t.Error(err)
	}
	if src := grammar.EBNF(g); !strings.Contains(src, `StmtList = [ Stmt StmtList ] .`) {
		t.Errorf("unexpected EBNF:\n%s", src)
	}
}

var lexerInputs = []struct {
	input string
	kinds []Kind
}{
	{"x := 1", []Kind{ID, Gets, Literal}},
	{"read a write a*2.5", []Kind{Read, ID, Write, ID, Mul, Literal}},
	{"if a <= .5 do b := b-1 od fi", []Kind{If, ID, LessEq, Literal, Do, ID, Gets, ID, Sub, Literal, Od, Fi}},
	{"check (a<>b) == c >= 4.", []Kind{Check, LParen, ID, Neq, ID, RParen, Eq, ID, GreatEq, Literal}},
	{"/* comment */ x // another\n / y", []Kind{ID, Div, ID}},
	{"iffy reader do_it", []Kind{ID, ID, ID}},
	{"", []Kind{}},
}

func TestLexer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llcalc.calc")
	defer teardown()
	//
	lexer, err := NewLexer()
	if err != nil {
		t.Fatal(err)
	}
	for i, x := range lexerInputs {
		sc, err := lexer.Scanner(x.input)
		if err != nil {
			t.Fatal(err)
		}
		kinds := []Kind{}
		for tok := sc.NextToken(); KindOf(tok) != EOF; tok = sc.NextToken() {
			kinds = append(kinds, KindOf(tok))
			if len(kinds) > 100 {
				t.Fatalf("lexer does not stop for input #%d", i)
			}
		}
		if !reflect.DeepEqual(kinds, x.kinds) {
			t.Errorf("input #%d: expected %v, have %v", i, x.kinds, kinds)
		}
	}
}

func TestLexerLexemes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llcalc.calc")
	defer teardown()
	//
	lexer, _ := NewLexer()
	sc, _ := lexer.Scanner("abc := 12.5")
	if tok := sc.NextToken(); tok.Lexeme() != "abc" || tok.Span().From() != 0 {
		t.Errorf("unexpected first token %q at %v", tok.Lexeme(), tok.Span())
	}
	sc.NextToken()
	if tok := sc.NextToken(); tok.Lexeme() != "12.5" || tok.Span().From() != 7 {
		t.Errorf("unexpected literal %q at %v", tok.Lexeme(), tok.Span())
	}
	eof := sc.NextToken()
	if KindOf(eof) != EOF || KindOf(sc.NextToken()) != EOF {
		t.Errorf("expected repeated eof")
	}
}

func TestLexerLongIdentifier(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llcalc.calc")
	defer teardown()
	//
	lexer, _ := NewLexer()
	sc, _ := lexer.Scanner(strings.Repeat("a", 250))
	errs := 0
	sc.SetErrorHandler(func(error) { errs++ })
	tok := sc.NextToken()
	if len(tok.Lexeme()) != MaxTokenLen || errs != 1 {
		t.Errorf("expected lexeme to be truncated to %d and reported, is %d", MaxTokenLen, len(tok.Lexeme()))
	}
}

func TestLexerSkipsIllegalInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llcalc.calc")
	defer teardown()
	//
	lexer, _ := NewLexer()
	sc, _ := lexer.Scanner("a ? b")
	var reported error
	sc.SetErrorHandler(func(e error) { reported = e })
	if tok := sc.NextToken(); KindOf(tok) != ID {
		t.Errorf("expected id, have %s", KindOf(tok))
	}
	if tok := sc.NextToken(); KindOf(tok) != ID || tok.Lexeme() != "b" {
		t.Errorf("expected id 'b' after skipping '?', have %s", KindOf(tok))
	}
	if reported == nil {
		t.Errorf("expected illegal input to be reported")
	}
	var _ scanner.Tokenizer = sc
}

func TestVerify(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llcalc.calc")
	defer teardown()
	//
	if err := Verify(); err != nil {
		t.Error(err)
	}
}
