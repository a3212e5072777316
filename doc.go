// Package mathexpr implements a small floating-point calculator.
//
// An expression is scanned, parsed, and evaluated in a single pass; there is
// no syntax tree to build or cache. The grammar covers the usual infix
// arithmetic with parentheses, a catalogue of built-in math functions and
// constants, and caller-registered variables and functions:
//
//	r, err := mathexpr.Eval("sqrt(16) + max(1 2 3)")
//
// Function arguments may be separated by commas or merely by whitespace, and
// a function applied to a single tight argument needs no parentheses at all:
// "sqrt 100 * 70" is sqrt(100)*70, not sqrt(100*70).
//
// One deliberate oddity, kept for compatibility with the implementations this
// package descends from: '^' binds at the same level as '*' and '/' and is
// evaluated left to right, so "2^3^2" is 64, not 512.
package mathexpr
