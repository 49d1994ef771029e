package slope

import (
	"errors"
	"fmt"

	"toboggan/internal/grid"
	"toboggan/internal/terrain"
)

var (
	// ErrZeroStride is returned for a vector that never moves down.
	ErrZeroStride = errors.New("vertical stride must be at least 1")
	// ErrNegativeStride is returned for a vector with a negative component.
	ErrNegativeStride = errors.New("stride must not be negative")
)

// Vector is the distance moved on each step of a traversal.
type Vector struct {
	Down  int
	Right int
}

// New returns the vector moving down rows and right columns per step.
func New(down, right int) Vector {
	return Vector{Down: down, Right: right}
}

func (v Vector) String() string {
	return fmt.Sprintf("right %d, down %d", v.Right, v.Down)
}

func (v Vector) validate() error {
	if v.Down < 0 || v.Right < 0 {
		return fmt.Errorf("%v: %w", v, ErrNegativeStride)
	}
	if v.Down == 0 {
		return fmt.Errorf("%v: %w", v, ErrZeroStride)
	}
	return nil
}

// CountTrees walks g from the top-left cell along v until it passes the last
// row and returns the number of trees it visited.
func CountTrees(g *grid.Grid, v Vector) (int, error) {
	if err := v.validate(); err != nil {
		return 0, err
	}

	trees := 0
	for row, col := 0, 0; row < g.Rows(); row, col = row+v.Down, col+v.Right {
		t, err := g.At(row, col)
		if err != nil {
			return 0, err
		}
		if t == terrain.Tree {
			trees++
		}
	}
	return trees, nil
}

// Product multiplies the tree counts of every vector in vs.
func Product(g *grid.Grid, vs []Vector) (uint64, error) {
	p := uint64(1)
	for _, v := range vs {
		n, err := CountTrees(g, v)
		if err != nil {
			return 0, err
		}
		p *= uint64(n)
	}
	return p, nil
}
