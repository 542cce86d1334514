/*
Package parser implements a predictive recursive descent parser for the
calculator language of package calc.

The parser has one method per non-terminal. Each method asks the
prediction engine whether to expand its non-terminal, skip it (epsilon),
or give up, then dispatches on the current token to select an alternative.
Decisions are based on the static FIRST/FOLLOW tables of package calc.

Error Recovery

Errors are recovered in panic mode: the parser skips input tokens until it
finds a token which lets it continue. Nothing is inserted, nothing is
pushed back. There are two flavours:

- At the entry of a non-terminal N, tokens are skipped until one from
FIRST(N) or FOLLOW(N) shows up. In the former case N is expanded, in
the latter case N is abandoned and the caller resumes.

- When a terminal t of a right hand side does not match, tokens are skipped
until t or a token from FOLLOW of the enclosing non-terminal shows up. On
t the match is retried; otherwise the enclosing non-terminal is abandoned,
keeping whatever it has built so far.

End-of-input stops every skip loop, therefore every parse terminates.

Output

Parsing produces a derivation trace (predicted rules, matched terminals,
syntax errors) and a syntax tree. Both are part of the Result. The tree
is serialized in parenthesized prefix form, dropping empty sub-trees and
replacing nodes having a single child by the child:

    x := 1   ⇒   (id gets literal)

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parser

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'llcalc.parser'.
func tracer() tracing.Trace {
	return tracing.Select("llcalc.parser")
}
