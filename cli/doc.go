// Package cli is the hamcycle command line: it loads a cost table from a text
// file, asks for a start vertex when none is given, runs the branch-and-bound
// solver and prints the tour.
//
// Vertices are 1-based on the command line and in every rendering; the tsp
// package works 0-based and the conversion happens here only.
//
// Settings come from, in increasing precedence: built-in defaults, an optional
// TOML file (--config), and flags given explicitly on the command line.
package cli
