package scanner

import (
	"testing"

	"github.com/npillmayer/llcalc"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestListTokenizer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llcalc.scanner")
	defer teardown()
	//
	lt := Kinds(EOF, 1, 2, 3)
	for i := 1; i <= 3; i++ {
		tok := lt.NextToken()
		if tok.TokType() != llcalc.TokType(i) {
			t.Errorf("expected token type %d, have %d", i, tok.TokType())
		}
	}
	for i := 0; i < 3; i++ {
		tok := lt.NextToken()
		if tok.TokType() != EOF {
			t.Fatalf("expected EOF after end of list, have %d", tok.TokType())
		}
		if tok.Span() != (llcalc.Span{3, 3}) {
			t.Errorf("expected EOF at end of last token, is %v", tok.Span())
		}
	}
}

func TestEmptyListTokenizer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llcalc.scanner")
	defer teardown()
	//
	lt := NewListTokenizer(llcalc.TokType(17))
	if tok := lt.NextToken(); tok.TokType() != 17 {
		t.Errorf("expected custom EOF type 17, have %d", tok.TokType())
	}
}

func TestDefaultToken(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llcalc.scanner")
	defer teardown()
	//
	tok := MakeDefaultToken(5, "abc", llcalc.Span{4, 7})
	if tok.Lexeme() != "abc" || tok.Span().Len() != 3 || tok.Value() != nil {
		t.Errorf("unexpected token contents: %v", tok)
	}
}

func TestSpanExtend(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llcalc.scanner")
	defer teardown()
	//
	s := llcalc.Span{}
	s = s.Extend(llcalc.Span{3, 5})
	s = s.Extend(llcalc.Span{8, 9})
	if s != (llcalc.Span{3, 9}) {
		t.Errorf("expected span (3…9), is %v", s)
	}
}
