/*
Package cmd implements the sub-commands of the llcalc command line driver.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile    string
	traceLevel string
	format     string
	maxDepth   int
	verbose    bool
)

// configuration in effect after flags have been applied
var config *Config

var rootCmd = &cobra.Command{
	Use:   "llcalc",
	Short: "llcalc - LL(1) parser for a calculator language",
	Long: `llcalc parses programs of a small calculator language with a
predictive recursive descent parser. For every parse it prints the
derivation trace and the syntax tree. Syntax errors are reported and
recovered from.

Statements:
  x := expr      assignment
  read x         input
  write rel      output
  if rel ... fi  conditional
  do ... od      loop
  check rel      loop exit condition`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command. Syntax errors have already been listed
// when it returns errSyntax; other errors are printed here.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errSyntax) {
		printError("llcalc", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (TOML)")
	rootCmd.PersistentFlags().StringVar(&traceLevel, "trace", "", "trace level [Debug|Info|Error]")
	rootCmd.PersistentFlags().StringVar(&format, "format", "", "output format [text|yaml]")
	rootCmd.PersistentFlags().IntVar(&maxDepth, "maxdepth", 0, "maximum nesting depth of the parser")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// setup loads the configuration, lets command line flags override it and
// initializes tracing and display.
func setup(cmd *cobra.Command, args []string) error {
	conf, err := LoadConfig(cfgFile)
	if err != nil {
		return err
	}
	if verbose && traceLevel == "" {
		traceLevel = "Info"
	}
	if traceLevel != "" {
		conf.SetTraceLevel(traceLevel)
	}
	if format != "" {
		conf.Set("output.format", format)
	}
	if maxDepth > 0 {
		conf.Set("parser.maxdepth", int64(maxDepth))
	}
	switch f := conf.GetString("output.format"); f {
	case "text", "yaml":
	default:
		return fmt.Errorf("unknown output format %q", f)
	}
	if err := initTracing(conf); err != nil {
		return err
	}
	initDisplay()
	config = conf
	return nil
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
}
