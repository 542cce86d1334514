package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/llcalc/calc"
	"github.com/npillmayer/llcalc/grammar"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	checkGrammar bool
	showEBNF     bool
)

var grammarCmd = &cobra.Command{
	Use:   "grammar",
	Short: "Print the grammar of the calculator language",
	Long: `Prints the rules of the calculator grammar, the FIRST and FOLLOW
sets of every non-terminal and the predict table. With --check, the
tables built into the parser are verified against an analysis of the
grammar.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if checkGrammar {
			if err := calc.Verify(); err != nil {
				pterm.Error.Println(err.Error())
				return err
			}
			pterm.Info.Println("grammar tables verified")
		}
		return printGrammar(os.Stdout, showEBNF)
	},
}

func init() {
	grammarCmd.Flags().BoolVar(&checkGrammar, "check", false, "verify the parser tables")
	grammarCmd.Flags().BoolVar(&showEBNF, "ebnf", false, "print the grammar in EBNF instead")
	rootCmd.AddCommand(grammarCmd)
}

func printGrammar(w io.Writer, ebnf bool) error {
	g, err := calc.Grammar()
	if err != nil {
		return err
	}
	if ebnf {
		_, err = fmt.Fprint(w, grammar.EBNF(g))
		return err
	}
	fmt.Fprintf(w, "Rules:\n")
	g.EachRule(func(r *grammar.Rule) {
		fmt.Fprintf(w, "  %3d: %s\n", r.Serial, r)
	})
	fmt.Fprintf(w, "\nNon-terminals:\n")
	for _, N := range calc.Nonterminals() {
		eps := ""
		if N.Eps {
			eps = " ε"
		}
		fmt.Fprintf(w, "  %-10s FIRST = %v%s\n", N.Name, N.First, eps)
		fmt.Fprintf(w, "  %-10s FOLLOW = %v\n", "", N.Follow)
	}
	fmt.Fprintf(w, "\nPredict table:\n")
	grammar.PredictTable(grammar.Analysis(g)).Dump(w)
	return nil
}
