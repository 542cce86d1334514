package parser

import "github.com/npillmayer/llcalc/calc"

// Production handlers, one per non-terminal.
//
// A handler either returns without touching its parent (epsilon, failed
// prediction) or attaches exactly one node to its parent. If a terminal
// cannot be matched, the handler returns early, keeping the partial node.

// Program --> StmtList eof
func (s *session) program() *Node {
	N := &calc.Program
	root := nonterminal(N.Name)
	pred := s.predict(N)
	if pred == fail {
		tracer().Infof("retrying %s", N.Name)
		pred = s.predict(N)
	}
	if pred != proceed {
		return root
	}
	s.predicted(N, calc.StmtList.Name, calc.EOF.String())
	s.stmtList(root)
	s.match(calc.EOF, N, root)
	return root
}

// StmtList --> Stmt StmtList | ε
func (s *session) stmtList(parent *Node) {
	N := &calc.StmtList
	node, ok := s.open(N, parent)
	if !ok {
		return
	}
	switch s.current() {
	case calc.ID, calc.Read, calc.Write, calc.If, calc.Do, calc.Check:
		s.predicted(N, calc.Stmt.Name, calc.StmtList.Name)
		s.stmt(node)
		s.stmtList(node)
	}
}

// Stmt --> id gets Expr | read id | write Rel | if Rel StmtList fi | do StmtList od | check Rel
func (s *session) stmt(parent *Node) {
	N := &calc.Stmt
	node, ok := s.open(N, parent)
	if !ok {
		return
	}
	switch s.current() {
	case calc.ID:
		s.predicted(N, "id", "gets", calc.Expr.Name)
		if s.matchAll(N, node, calc.ID, calc.Gets) == mismatched {
			return
		}
		s.expr(node)
	case calc.Read:
		s.predicted(N, "read", "id")
		s.matchAll(N, node, calc.Read, calc.ID)
	case calc.Write:
		s.predicted(N, "write", calc.Rel.Name)
		if s.match(calc.Write, N, node) == mismatched {
			return
		}
		s.rel(node)
	case calc.If:
		s.predicted(N, "if", calc.Rel.Name, calc.StmtList.Name, "fi")
		if s.match(calc.If, N, node) == mismatched {
			return
		}
		s.nested(func() {
			s.rel(node)
			s.stmtList(node)
		})
		s.match(calc.Fi, N, node)
	case calc.Do:
		s.predicted(N, "do", calc.StmtList.Name, "od")
		if s.match(calc.Do, N, node) == mismatched {
			return
		}
		s.nested(func() {
			s.stmtList(node)
		})
		s.match(calc.Od, N, node)
	case calc.Check:
		s.predicted(N, "check", calc.Rel.Name)
		if s.match(calc.Check, N, node) == mismatched {
			return
		}
		s.rel(node)
	}
}

// Rel --> Expr ExprTail
func (s *session) rel(parent *Node) {
	N := &calc.Rel
	node, ok := s.open(N, parent)
	if !ok {
		return
	}
	switch s.current() {
	case calc.LParen, calc.ID, calc.Literal:
		s.predicted(N, calc.Expr.Name, calc.ExprTail.Name)
		s.expr(node)
		s.exprTail(node)
	}
}

// Expr --> Term TermTail
func (s *session) expr(parent *Node) {
	N := &calc.Expr
	node, ok := s.open(N, parent)
	if !ok {
		return
	}
	switch s.current() {
	case calc.LParen, calc.ID, calc.Literal:
		s.predicted(N, calc.Term.Name, calc.TermTail.Name)
		s.term(node)
		s.termTail(node)
	}
}

// ExprTail --> RelOp Expr | ε
func (s *session) exprTail(parent *Node) {
	N := &calc.ExprTail
	node, ok := s.open(N, parent)
	if !ok {
		return
	}
	switch s.current() {
	case calc.Eq, calc.Neq, calc.Less, calc.Great, calc.LessEq, calc.GreatEq:
		s.predicted(N, calc.RelOp.Name, calc.Expr.Name)
		s.relOp(node)
		s.expr(node)
	}
}

// Term --> Factor FactorTail
func (s *session) term(parent *Node) {
	N := &calc.Term
	node, ok := s.open(N, parent)
	if !ok {
		return
	}
	switch s.current() {
	case calc.LParen, calc.ID, calc.Literal:
		s.predicted(N, calc.Factor.Name, calc.FactorTail.Name)
		s.factor(node)
		s.factorTail(node)
	}
}

// TermTail --> AddOp Term TermTail | ε
func (s *session) termTail(parent *Node) {
	N := &calc.TermTail
	node, ok := s.open(N, parent)
	if !ok {
		return
	}
	switch s.current() {
	case calc.Add, calc.Sub:
		s.predicted(N, calc.AddOp.Name, calc.Term.Name, calc.TermTail.Name)
		s.addOp(node)
		s.term(node)
		s.termTail(node)
	}
}

// Factor --> lparen Rel rparen | id | literal
func (s *session) factor(parent *Node) {
	N := &calc.Factor
	node, ok := s.open(N, parent)
	if !ok {
		return
	}
	switch s.current() {
	case calc.LParen:
		s.predicted(N, "lparen", calc.Rel.Name, "rparen")
		if s.match(calc.LParen, N, node) == mismatched {
			return
		}
		s.nested(func() {
			s.rel(node)
		})
		s.match(calc.RParen, N, node)
	case calc.ID:
		s.predicted(N, "id")
		s.match(calc.ID, N, node)
	case calc.Literal:
		s.predicted(N, "literal")
		s.match(calc.Literal, N, node)
	}
}

// FactorTail --> MulOp Factor FactorTail | ε
func (s *session) factorTail(parent *Node) {
	N := &calc.FactorTail
	node, ok := s.open(N, parent)
	if !ok {
		return
	}
	switch s.current() {
	case calc.Mul, calc.Div:
		s.predicted(N, calc.MulOp.Name, calc.Factor.Name, calc.FactorTail.Name)
		s.mulOp(node)
		s.factor(node)
		s.factorTail(node)
	}
}

// RelOp --> eq | neq | less | great | less_eq | great_eq
func (s *session) relOp(parent *Node) {
	s.operator(&calc.RelOp, parent)
}

// AddOp --> add | sub
func (s *session) addOp(parent *Node) {
	s.operator(&calc.AddOp, parent)
}

// MulOp --> mul | div
func (s *session) mulOp(parent *Node) {
	s.operator(&calc.MulOp, parent)
}

// operator handles non-terminals with single-terminal alternatives only.
func (s *session) operator(N *calc.Nonterminal, parent *Node) {
	node, ok := s.open(N, parent)
	if !ok {
		return
	}
	if k := s.current(); N.First.Contains(k) {
		s.predicted(N, k.String())
		s.match(k, N, node)
	}
}

// open predicts N and on success creates the node for N and attaches it
// to parent.
func (s *session) open(N *calc.Nonterminal, parent *Node) (*Node, bool) {
	if s.predict(N) != proceed {
		return nil, false
	}
	node := nonterminal(N.Name)
	parent.add(node)
	return node, true
}
