// Package app runs the toboggan survey for the CLI.
//
// It loads the map once, counts trees for the single reported vector and
// for every survey vector, and writes the two result lines to Config.Out.
package app
