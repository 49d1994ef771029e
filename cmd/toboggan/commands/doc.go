// Package commands defines the toboggan CLI.
//
// Usage
//
//	toboggan [-v] [--] <input-file>
//
// The input file holds one map row per line, '.' for open slope and '#' for
// a tree. The command prints the trees met going right 3, down 1, followed by
// the product of the trees met on the five survey slopes. Without an input
// file it prints a reminder and exits successfully. Arguments after the input
// file are ignored. A file name starting with '-' must follow "--".
//
// # Implementation
//
// The root command builds a zap logger on the command's stderr before
// running (debug level with -v, warn otherwise) and hands it to the
// app package together with the command's output stream. Any load or
// traversal error is returned to cobra, which prints it to stderr, and main
// exits non-zero.
package commands
