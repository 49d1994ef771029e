// Package terrain defines the two kinds of cell found on a toboggan map.
//
// A map is written with one character per cell:
//
//	.  open slope
//	#  tree
//
// Any other character is rejected by Parse.
package terrain
