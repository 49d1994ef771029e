// Package slope walks a toboggan map along a fixed step vector and counts
// the trees encountered on the way down.
package slope
