package grammar

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// LLAnalysis is an object for grammar analysis (compute FIRST and FOLLOW sets
// and the set of epsilon-derivable non-terminals).
type LLAnalysis struct {
	g      *Grammar
	eps    map[*Symbol]bool
	first  map[*Symbol]*treeset.Set // of token values
	follow map[*Symbol]*treeset.Set // of token values
}

// Analysis creates an analyser for a grammar. The analyser immediately
// computes FIRST and FOLLOW sets and epsilon-derivability of all non-terminals.
func Analysis(g *Grammar) *LLAnalysis {
	ga := &LLAnalysis{
		g:      g,
		eps:    make(map[*Symbol]bool),
		first:  make(map[*Symbol]*treeset.Set),
		follow: make(map[*Symbol]*treeset.Set),
	}
	g.EachNonTerminal(func(N *Symbol) {
		ga.first[N] = treeset.NewWith(utils.IntComparator)
		ga.follow[N] = treeset.NewWith(utils.IntComparator)
	})
	ga.markEps()
	ga.computeFirst()
	ga.computeFollow()
	return ga
}

// Grammar returns the grammar this analyser operates on.
func (ga *LLAnalysis) Grammar() *Grammar {
	return ga.g
}

// Epsilon returns true if non-terminal `name` derives the empty string.
func (ga *LLAnalysis) Epsilon(name string) bool {
	N := ga.g.Symbol(name)
	if N == nil {
		return false
	}
	return ga.eps[N]
}

// First returns FIRST(name) as an ordered list of token values. For terminals
// it is the terminal's own token value. Epsilon is never part of the result.
func (ga *LLAnalysis) First(name string) []int {
	A := ga.g.Symbol(name)
	if A == nil {
		return nil
	}
	if A.IsTerminal() {
		return []int{A.Value}
	}
	return ints(ga.first[A])
}

// Follow returns FOLLOW(name) as an ordered list of token values.
func (ga *LLAnalysis) Follow(name string) []int {
	A := ga.g.Symbol(name)
	if A == nil || A.IsTerminal() {
		return nil
	}
	return ints(ga.follow[A])
}

// FirstOfSequence returns the FIRST-set of a sequence of symbols and whether
// the sequence as a whole may derive epsilon.
func (ga *LLAnalysis) FirstOfSequence(seq []*Symbol) ([]int, bool) {
	S := treeset.NewWith(utils.IntComparator)
	eps := ga.firstOf(seq, S)
	return ints(S), eps
}

// firstOf adds FIRST(seq) to S and returns true if seq derives epsilon.
func (ga *LLAnalysis) firstOf(seq []*Symbol, S *treeset.Set) bool {
	for _, A := range seq {
		if A.IsTerminal() {
			S.Add(A.Value)
			return false
		}
		S.Add(ga.first[A].Values()...)
		if !ga.eps[A] {
			return false
		}
	}
	return true
}

func (ga *LLAnalysis) markEps() {
	changed := true
	for changed {
		changed = false
		ga.g.EachRule(func(r *Rule) {
			if ga.eps[r.LHS] {
				return
			}
			for _, A := range r.RHS() {
				if A.IsTerminal() || !ga.eps[A] {
					return
				}
			}
			tracer().Debugf("%s is epsilon-derivable", r.LHS)
			ga.eps[r.LHS] = true
			changed = true
		})
	}
}

func (ga *LLAnalysis) computeFirst() {
	changed := true
	for changed {
		changed = false
		ga.g.EachRule(func(r *Rule) {
			F := ga.first[r.LHS]
			size := F.Size()
			ga.firstOf(r.RHS(), F)
			if F.Size() > size {
				changed = true
			}
		})
	}
	ga.g.EachNonTerminal(func(N *Symbol) {
		tracer().Debugf("FIRST(%s) = %v", N, ga.first[N].Values())
	})
}

func (ga *LLAnalysis) computeFollow() {
	changed := true
	for changed {
		changed = false
		ga.g.EachRule(func(r *Rule) {
			rhs := r.RHS()
			for i, B := range rhs {
				if B.IsTerminal() {
					continue
				}
				F := ga.follow[B]
				size := F.Size()
				if ga.firstOf(rhs[i+1:], F) { // rest of RHS may vanish
					F.Add(ga.follow[r.LHS].Values()...)
				}
				if F.Size() > size {
					changed = true
				}
			}
		})
	}
	ga.g.EachNonTerminal(func(N *Symbol) {
		tracer().Debugf("FOLLOW(%s) = %v", N, ga.follow[N].Values())
	})
}

func ints(S *treeset.Set) []int {
	if S == nil {
		return nil
	}
	r := make([]int, 0, S.Size())
	for _, v := range S.Values() {
		r = append(r, v.(int))
	}
	return r
}
