// Package grid loads a toboggan map and answers cell lookups on it.
//
// The map tiles infinitely to the right: a lookup at any column wraps
// modulo the width of the row being read. Each row keeps its own width,
// so rows of different lengths are accepted as-is and wrap independently.
//
// A Grid is immutable once loaded and may be shared freely.
package grid
