package cmd

import (
	"fmt"

	"github.com/npillmayer/llcalc/calc"
	"github.com/npillmayer/llcalc/parser"
	"github.com/pterm/pterm"
)

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// printTree renders the compacted syntax tree on the terminal.
func printTree(tree *parser.Node) {
	ll := leveledTree(tree)
	if len(ll) == 0 {
		pterm.Info.Println("empty tree")
		return
	}
	root := pterm.NewTreeFromLeveledList(ll)
	pterm.DefaultTree.WithRoot(root).Render()
}

// leveledTree flattens the compacted tree into a leveled list, one item per
// node. Inner nodes are labeled with their non-terminal.
func leveledTree(tree *parser.Node) pterm.LeveledList {
	ll := pterm.LeveledList{}
	tree.Compact().Walk(func(n *parser.Node, depth int) {
		ll = append(ll, pterm.LeveledListItem{
			Level: depth,
			Text:  nodeLabel(n),
		})
	})
	return ll
}

func nodeLabel(n *parser.Node) string {
	if !n.IsTerminal() {
		return n.Symbol
	}
	if calc.KindOf(n.Token).HasLexeme() {
		return n.Symbol + " " + n.Token.Lexeme()
	}
	return n.Symbol
}

// printErrors lists syntax and scanner errors of a parse result.
func printErrors(r *parser.Result) {
	for _, e := range r.ScanErrors {
		pterm.Error.Println(e.Error())
	}
	for _, e := range r.Errors {
		pterm.Error.Println(fmt.Sprintf("%v: %s (in %s, expected one of %v)",
			e.Span, e.Error(), e.Nonterminal, e.Expected))
	}
}
