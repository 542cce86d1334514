package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Parse programs interactively",
	Long: `Starts an interactive session. Every line entered is parsed as a
program on its own. Lines starting with a colon are commands:

  :tree   toggle rendering of syntax trees
  :quit   end the session (or <ctrl>D)`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rl, err := readline.New("llcalc> ")
		if err != nil {
			return err
		}
		defer rl.Close()
		pterm.Info.Println("Welcome to llcalc")
		tracer().Infof("Quit with <ctrl>D")
		intp := &Intp{repl: rl, out: os.Stdout, tree: showTree}
		intp.REPL()
		return nil
	},
}

func init() {
	replCmd.Flags().BoolVar(&showTree, "tree", false, "render syntax trees")
	rootCmd.AddCommand(replCmd)
}

// Intp is an interactive parse session.
type Intp struct {
	repl *readline.Instance
	out  io.Writer
	tree bool // render trees
}

// REPL reads lines until end of input or :quit.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if quit := intp.Eval(line); quit {
			break
		}
	}
	pterm.Println("Good bye!")
}

// Eval parses a line, or executes it if it is a command. It returns true
// if the session should end.
func (intp *Intp) Eval(line string) bool {
	if strings.HasPrefix(line, ":") {
		switch line {
		case ":quit", ":q":
			return true
		case ":tree":
			intp.tree = !intp.tree
			pterm.Info.Println(fmt.Sprintf("tree rendering %v", intp.tree))
		default:
			pterm.Error.Println("unknown command " + line)
		}
		return false
	}
	result, err := parseInput(intp.out, "<repl>", line, config)
	if result == nil {
		pterm.Error.Println(err.Error())
		return false
	}
	printErrors(result)
	if err != nil {
		pterm.Error.Println(err.Error())
	}
	if intp.tree {
		printTree(result.Tree)
	}
	return false
}
