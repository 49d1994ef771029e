package grid

import (
	"errors"
	"fmt"

	"toboggan/internal/terrain"
)

var (
	// ErrNoRow is returned when a lookup addresses a row past the end of the map.
	ErrNoRow = errors.New("row out of range")
	// ErrEmptyRow is returned when a lookup lands on a row with no cells.
	ErrEmptyRow = errors.New("empty terrain")
)

// Grid is an ordered set of terrain rows.
type Grid struct {
	rows [][]terrain.Terrain
}

// New builds a Grid from already-parsed rows. The rows are copied.
func New(rows [][]terrain.Terrain) *Grid {
	cp := make([][]terrain.Terrain, len(rows))
	for i, r := range rows {
		cp[i] = append([]terrain.Terrain(nil), r...)
	}
	return &Grid{rows: cp}
}

// Rows returns the number of rows in the map.
func (g *Grid) Rows() int { return len(g.rows) }

// Width returns the number of cells in row, or 0 if row does not exist.
func (g *Grid) Width(row int) int {
	if row < 0 || row >= len(g.rows) {
		return 0
	}
	return len(g.rows[row])
}

// At returns the terrain at (row, col), wrapping col by the row's width.
func (g *Grid) At(row, col int) (terrain.Terrain, error) {
	if row < 0 || row >= len(g.rows) {
		return 0, fmt.Errorf("row %d of %d: %w", row, len(g.rows), ErrNoRow)
	}
	r := g.rows[row]
	if len(r) == 0 {
		return 0, fmt.Errorf("row %d: %w", row, ErrEmptyRow)
	}
	col %= len(r)
	if col < 0 {
		col += len(r)
	}
	return r[col], nil
}
