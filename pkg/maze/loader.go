package maze

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Characters with special meaning in maze files. Every other non-space rune
// is a wall.
const (
	RuneEmpty = ' '
	RuneStart = 'p'
)

// Parse reads a text maze: one row per line, spaces are floor, 'p' marks the
// player start and any other rune is wall. Trailing blank lines are ignored.
func Parse(r io.Reader, cellSize float64) (*Grid, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read maze: %w", err)
	}

	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	rows := make([][]Cell, len(lines))
	startRow, startCol := -1, -1
	for r, line := range lines {
		runes := []rune(line)
		row := make([]Cell, len(runes))
		for c, ch := range runes {
			switch ch {
			case RuneEmpty:
				row[c] = Empty
			case RuneStart:
				row[c] = Empty
				if startRow >= 0 {
					return nil, fmt.Errorf("line %d: duplicate start marker", r+1)
				}
				startRow, startCol = r, c
			default:
				row[c] = Wall
			}
		}
		rows[r] = row
	}

	g, err := NewGrid(rows, cellSize)
	if err != nil {
		return nil, err
	}
	if startRow >= 0 {
		if err := g.SetStart(startRow, startCol); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Load parses the maze file at path.
func Load(path string, cellSize float64) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open maze: %w", err)
	}
	defer f.Close()

	g, err := Parse(f, cellSize)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// String renders the grid back to the text format.
func (g *Grid) String() string {
	var sb strings.Builder
	startRow, startCol := -1, -1
	if g.hasStart {
		startRow = int(g.start.Y / g.cellSize)
		startCol = int(g.start.X / g.cellSize)
	}
	for r, row := range g.cells {
		for c, cell := range row {
			switch {
			case r == startRow && c == startCol:
				sb.WriteRune(RuneStart)
			case cell == Wall:
				sb.WriteByte('#')
			default:
				sb.WriteRune(RuneEmpty)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
