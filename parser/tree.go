package parser

import (
	"strings"

	"github.com/npillmayer/llcalc"
	"github.com/npillmayer/llcalc/calc"
)

// Node is a node of the syntax tree. Inner nodes represent non-terminals,
// leafs represent matched terminals and carry their token.
type Node struct {
	Symbol   string       // name of the non-terminal or terminal
	Token    llcalc.Token // nil for non-terminals
	Children []*Node
}

func nonterminal(name string) *Node {
	return &Node{Symbol: name}
}

func terminal(tok llcalc.Token) *Node {
	return &Node{Symbol: calc.KindOf(tok).String(), Token: tok}
}

// IsTerminal is true for leafs representing terminals.
func (n *Node) IsTerminal() bool {
	return n.Token != nil
}

func (n *Node) add(child *Node) {
	if n != nil && child != nil {
		n.Children = append(n.Children, child)
	}
}

// Span returns the span of input covered by the tree rooted at n.
func (n *Node) Span() llcalc.Span {
	if n == nil {
		return llcalc.Span{}
	}
	if n.IsTerminal() {
		return n.Token.Span()
	}
	var span llcalc.Span
	for _, c := range n.Children {
		span = span.Extend(c.Span())
	}
	return span
}

// Compact returns a copy of the tree rooted at n, where non-terminals without
// children are dropped and non-terminals with a single child are replaced by
// that child. If nothing remains, Compact returns nil.
func (n *Node) Compact() *Node {
	if n == nil {
		return nil
	}
	if n.IsTerminal() {
		return &Node{Symbol: n.Symbol, Token: n.Token}
	}
	var children []*Node
	for _, c := range n.Children {
		if cc := c.Compact(); cc != nil {
			children = append(children, cc)
		}
	}
	switch len(children) {
	case 0:
		return nil
	case 1:
		return children[0]
	}
	return &Node{Symbol: n.Symbol, Children: children}
}

// String serializes the compacted tree in parenthesized prefix form.
// Terminals are written as their kind, inner nodes as their children
// enclosed in parentheses.
func (n *Node) String() string {
	var b strings.Builder
	n.Compact().write(&b)
	return b.String()
}

func (n *Node) write(b *strings.Builder) {
	if n == nil {
		return
	}
	if n.IsTerminal() {
		b.WriteString(n.Symbol)
		return
	}
	b.WriteByte('(')
	for i, c := range n.Children {
		if i > 0 {
			b.WriteByte(' ')
		}
		c.write(b)
	}
	b.WriteByte(')')
}

// Walk calls f for every node of the tree in pre-order, together with its depth.
func (n *Node) Walk(f func(node *Node, depth int)) {
	n.walk(f, 0)
}

func (n *Node) walk(f func(*Node, int), depth int) {
	if n == nil {
		return
	}
	f(n, depth)
	for _, c := range n.Children {
		c.walk(f, depth+1)
	}
}
