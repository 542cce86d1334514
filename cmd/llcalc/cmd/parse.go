package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/llcalc/parser"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var showTree bool

// errSyntax signals that at least one input had syntax errors.
var errSyntax = errors.New("input contains syntax errors")

var parseCmd = &cobra.Command{
	Use:   "parse [file...]",
	Short: "Parse programs and print trace and syntax tree",
	Long: `Parses one or more files, or standard input if no file is given.
For every input, the derivation trace is printed line by line, followed
by the syntax tree in parenthesized form. With --format yaml, a report
including errors and a digest of the parse is printed instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		inputs, err := readInputs(args)
		if err != nil {
			return err
		}
		failed := false
		for _, in := range inputs {
			result, err := parseInput(os.Stdout, in.name, in.text, config)
			if err != nil {
				return fmt.Errorf("%s: %w", in.name, err)
			}
			if !result.OK() {
				printErrors(result)
				failed = true
			}
			if showTree {
				printTree(result.Tree)
			}
		}
		if failed {
			return errSyntax
		}
		return nil
	},
}

func init() {
	parseCmd.Flags().BoolVar(&showTree, "tree", false, "render the syntax tree")
	rootCmd.AddCommand(parseCmd)
}

type input struct {
	name string
	text string
}

func readInputs(files []string) ([]input, error) {
	if len(files) == 0 {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("cannot read stdin: %w", err)
		}
		return []input{{name: "<stdin>", text: string(b)}}, nil
	}
	inputs := make([]input, 0, len(files))
	for _, f := range files {
		b, err := os.ReadFile(f)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, input{name: f, text: string(b)})
	}
	return inputs, nil
}

// parseInput parses text and writes the outcome to w, in the output format
// set in conf. A partial result is written even if the parse had to be
// given up.
func parseInput(w io.Writer, name, text string, conf *Config) (*parser.Result, error) {
	tracer().P("run", runID).Infof("parsing %s", name)
	result, err := parser.ParseString(text, parser.MaxDepth(conf.GetInt("parser.maxdepth")))
	if result == nil {
		return nil, err
	}
	if werr := writeResult(w, name, result, conf.GetString("output.format")); werr != nil {
		return result, werr
	}
	return result, err
}

func writeResult(w io.Writer, name string, result *parser.Result, format string) error {
	switch format {
	case "yaml":
		doc := map[string]interface{}{
			"input":  name,
			"run":    runID,
			"result": result.Report(),
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	default:
		for _, line := range result.Lines() {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}
