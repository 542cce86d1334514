/*
Package llcalc is a predictive parsing toolbox for a small calculator language.

The calculator language knows assignments, read/write statements, if…fi and
do…od blocks, check statements and expressions with relational, additive and
multiplicative operators. Package structure is as follows:

■ calc: Package calc holds the grammar tables (FIRST, FOLLOW, ε) of the
calculator language, its terminal kinds, and a lexmachine-based lexer.

■ parser: Package parser implements the LL(1) recursive-descent parser with
panic-mode error recovery, a derivation trace and a syntax tree.

■ grammar: Package grammar implements a grammar builder and the static analysis
(FIRST/FOLLOW sets, ε-derivability, LL(1) predict table) used to check the
grammar tables.

■ scanner: Package scanner defines the interface between scanners and the parser.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package llcalc
