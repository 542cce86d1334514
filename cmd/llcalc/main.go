/*
Command llcalc parses programs of a small calculator language and prints
derivation traces and syntax trees.

    llcalc parse prog.calc            # parse a file
    echo "x := 1" | llcalc parse      # parse stdin
    llcalc repl                       # interactive mode
    llcalc grammar --check            # print and verify the grammar tables

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"os"

	"github.com/npillmayer/llcalc/cmd/llcalc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
