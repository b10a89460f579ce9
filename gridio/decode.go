package gridio

import (
	"bufio"
	"io"

	"github.com/asciiart/citaa/grid"
)

// Decode reads r line by line, measures the longest line, right-pads every
// shorter line with spaces to that width, and builds a grid.Grid from the
// result. An empty stream (zero lines, or lines of zero length only)
// produces grid.ErrEmptyGrid, mirroring grid.New's contract — gridio never
// returns grid.ErrNonRectangular itself, since padding always makes the
// result rectangular.
func Decode(r io.Reader) (*grid.Grid, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines [][]rune
	width := 0
	for scanner.Scan() {
		line := []rune(scanner.Text())
		if len(line) > width {
			width = len(line)
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(lines) == 0 || width == 0 {
		return nil, grid.ErrEmptyGrid
	}

	rows := make([][]rune, len(lines))
	for i, line := range lines {
		row := make([]rune, width)
		copy(row, line)
		for x := len(line); x < width; x++ {
			row[x] = ' '
		}
		rows[i] = row
	}

	return grid.New(rows)
}
