package terrain

import (
	"errors"
	"fmt"
)

// ErrInvalidMarker is returned for a character that is neither '.' nor '#'.
var ErrInvalidMarker = errors.New("invalid terrain marker")

// Terrain is the content of a single map cell.
type Terrain uint8

const (
	Slope Terrain = iota // open
	Tree                 // obstacle
)

const (
	slopeMarker = '.'
	treeMarker  = '#'
)

// Parse maps a marker character to its Terrain.
func Parse(r rune) (Terrain, error) {
	switch r {
	case slopeMarker:
		return Slope, nil
	case treeMarker:
		return Tree, nil
	default:
		return 0, fmt.Errorf("%q is not a valid terrain marker: %w", r, ErrInvalidMarker)
	}
}

// String returns the marker character for t.
func (t Terrain) String() string {
	switch t {
	case Slope:
		return string(slopeMarker)
	case Tree:
		return string(treeMarker)
	default:
		return fmt.Sprintf("Terrain(%d)", uint8(t))
	}
}
