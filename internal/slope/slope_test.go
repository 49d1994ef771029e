package slope_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toboggan/internal/grid"
	"toboggan/internal/slope"
	"toboggan/internal/terrain"
)

const example = `..##.......
#...#...#..
.#....#..#.
..#.#...#.#
.#...##..#.
..#.##.....
.#.#.#....#
.#........#
#.##...#...
#...##....#
.#..#...#.#
`

func mustParse(t *testing.T, s string) *grid.Grid {
	t.Helper()
	g, err := grid.Parse(strings.NewReader(s))
	require.NoError(t, err)
	return g
}

func TestCountTrees_Example(t *testing.T) {
	g := mustParse(t, example)

	tests := []struct {
		v    slope.Vector
		want int
	}{
		{slope.New(1, 1), 2},
		{slope.New(1, 3), 7},
		{slope.New(1, 5), 3},
		{slope.New(1, 7), 4},
		{slope.New(2, 1), 2},
	}
	for _, tt := range tests {
		t.Run(tt.v.String(), func(t *testing.T) {
			got, err := slope.CountTrees(g, tt.v)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCountTrees_FirstVector(t *testing.T) {
	got, err := slope.CountTrees(mustParse(t, example), slope.First)
	require.NoError(t, err)
	assert.Equal(t, 7, got)
}

func TestProduct_Example(t *testing.T) {
	got, err := slope.Product(mustParse(t, example), slope.Survey())
	require.NoError(t, err)
	assert.Equal(t, uint64(336), got)
}

func TestProduct_RowFiveVariant(t *testing.T) {
	// Row 5 with its tree in column 10 instead of 9: the right 5 slope
	// lands on open snow there.
	variant := strings.Replace(example, ".#...##..#.", ".#...##...#", 1)
	g := mustParse(t, variant)

	got, err := slope.CountTrees(g, slope.New(1, 5))
	require.NoError(t, err)
	assert.Equal(t, 2, got)

	product, err := slope.Product(g, slope.Survey())
	require.NoError(t, err)
	assert.Equal(t, uint64(224), product)
}

func TestProduct_OrderIndependent(t *testing.T) {
	g := mustParse(t, example)
	vs := slope.Survey()

	want, err := slope.Product(g, vs)
	require.NoError(t, err)

	reversed := make([]slope.Vector, len(vs))
	for i, v := range vs {
		reversed[len(vs)-1-i] = v
	}
	got, err := slope.Product(g, reversed)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	rotated := append(append([]slope.Vector{}, vs[2:]...), vs[:2]...)
	got, err = slope.Product(g, rotated)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCountTrees_Idempotent(t *testing.T) {
	g := mustParse(t, example)
	first, err := slope.CountTrees(g, slope.First)
	require.NoError(t, err)
	second, err := slope.CountTrees(g, slope.First)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCountTrees_VisitsCeilRowsOverDown(t *testing.T) {
	// Every cell is a tree, so the count equals the number of visited cells.
	for rows := 0; rows <= 9; rows++ {
		g := mustParse(t, strings.Repeat("###\n", rows))
		for down := 1; down <= 4; down++ {
			got, err := slope.CountTrees(g, slope.New(down, 2))
			require.NoError(t, err)
			assert.Equal(t, (rows+down-1)/down, got, "rows=%d down=%d", rows, down)
		}
	}
}

func TestCountTrees_SingleRow(t *testing.T) {
	for _, right := range []int{0, 1, 3, 100} {
		got, err := slope.CountTrees(mustParse(t, "#..\n"), slope.New(1, right))
		require.NoError(t, err)
		assert.Equal(t, 1, got)

		got, err = slope.CountTrees(mustParse(t, ".##\n"), slope.New(1, right))
		require.NoError(t, err)
		assert.Equal(t, 0, got)
	}
}

func TestCountTrees_RaggedRowsWrapPerRow(t *testing.T) {
	// col 0 -> '#'; col 3 on width 2 -> index 1 '#'; col 6 on width 4 -> index 2 '#'.
	g := mustParse(t, "#\n.#\n..#.\n")
	got, err := slope.CountTrees(g, slope.New(1, 3))
	require.NoError(t, err)
	assert.Equal(t, 3, got)
}

func TestCountTrees_EmptyGrid(t *testing.T) {
	got, err := slope.CountTrees(grid.New(nil), slope.First)
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestCountTrees_EmptyRowIsFatal(t *testing.T) {
	g := grid.New([][]terrain.Terrain{{terrain.Tree}, {}})
	_, err := slope.CountTrees(g, slope.New(1, 1))
	assert.ErrorIs(t, err, grid.ErrEmptyRow)

	// An empty row that is stepped over is never looked up.
	got, err := slope.CountTrees(g, slope.New(2, 1))
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestCountTrees_InvalidVector(t *testing.T) {
	g := mustParse(t, example)

	_, err := slope.CountTrees(g, slope.New(0, 3))
	assert.ErrorIs(t, err, slope.ErrZeroStride)

	_, err = slope.CountTrees(g, slope.New(-1, 3))
	assert.ErrorIs(t, err, slope.ErrNegativeStride)

	_, err = slope.Product(g, []slope.Vector{slope.New(1, 1), slope.New(1, -3)})
	assert.ErrorIs(t, err, slope.ErrNegativeStride)
}
