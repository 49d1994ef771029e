package grid

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"toboggan/internal/terrain"
)

// ErrDecode is returned for a line that is not valid UTF-8.
var ErrDecode = errors.New("stream did not contain valid UTF-8")

// Load reads the map stored at path.
func Load(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads one row per line from r. Both "\n" and "\r\n" line endings
// are accepted; a trailing newline does not produce an extra row. Lines have
// no length limit.
func Parse(r io.Reader) (*Grid, error) {
	br := bufio.NewReader(r)

	var rows [][]terrain.Terrain
	for n := 1; ; n++ {
		line, readErr := br.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return nil, fmt.Errorf("read map: %w", readErr)
		}
		if line == "" && readErr != nil {
			break
		}
		if strings.HasSuffix(line, "\n") {
			line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
		}

		row, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		rows = append(rows, row)

		if readErr != nil {
			break
		}
	}
	return &Grid{rows: rows}, nil
}

func parseLine(line string) ([]terrain.Terrain, error) {
	if !utf8.ValidString(line) {
		return nil, ErrDecode
	}
	row := make([]terrain.Terrain, 0, len(line))
	for _, c := range line {
		t, err := terrain.Parse(c)
		if err != nil {
			return nil, err
		}
		row = append(row, t)
	}
	return row, nil
}
