package model

import (
	"bufio"
	"crypto/md5"
	"fmt"
	"io"
	"strings"

	"github.com/sheikhrachel/go-gol/rules"
)

// View is the read-only face of a grid handed to renderers
type View interface {
	Rows() int
	Cols() int
	Alive(row, col int) bool
}

// Grid is a fixed-size board of cell states indexed by (row, col)
type Grid struct {
	rows  int
	cols  int
	cells [][]rules.State
}

// NewGrid creates a dead grid with the specified dimensions
func NewGrid(rows, cols int) *Grid {
	rows, cols = max(rows, 0), max(cols, 0)
	cells := make([][]rules.State, rows)
	for i := range cells {
		cells[i] = make([]rules.State, cols)
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: cells,
	}
}

// Rows returns the number of rows
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns
func (g *Grid) Cols() int { return g.cols }

// Area returns rows*cols
func (g *Grid) Area() int { return g.rows * g.cols }

// Set sets a cell; out of range coordinates are ignored
func (g *Grid) Set(row, col int, state rules.State) {
	if g.inBounds(row, col) {
		g.cells[row][col] = state
	}
}

// Get returns the state of a cell, Dead when out of range
func (g *Grid) Get(row, col int) rules.State {
	if !g.inBounds(row, col) {
		return rules.Dead
	}
	return g.cells[row][col]
}

// Alive reports whether a cell is alive
func (g *Grid) Alive(row, col int) bool {
	return g.Get(row, col) == rules.Alive
}

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// CountNeighbors counts living cells among the eight surrounding positions.
// Positions outside the grid contribute nothing.
func (g *Grid) CountNeighbors(row, col int) int {
	count := 0

	minRow := max(0, row-1)
	maxRow := min(g.rows-1, row+1)
	minCol := max(0, col-1)
	maxCol := min(g.cols-1, col+1)

	for r := minRow; r <= maxRow; r++ {
		for c := minCol; c <= maxCol; c++ {
			if r == row && c == col {
				continue
			}
			if g.cells[r][c] == rules.Alive {
				count++
			}
		}
	}

	return count
}

// CopyFrom overwrites g with the contents of src. Dimensions must match.
func (g *Grid) CopyFrom(src *Grid) {
	if g.rows != src.rows || g.cols != src.cols {
		panic(fmt.Sprintf("CopyFrom: %dx%d into %dx%d", src.rows, src.cols, g.rows, g.cols))
	}
	for r := range g.rows {
		copy(g.cells[r], src.cells[r])
	}
}

// Clone returns an independent copy
func (g *Grid) Clone() *Grid {
	c := NewGrid(g.rows, g.cols)
	c.CopyFrom(g)
	return c
}

// Equal reports whether both grids have the same dimensions and cells
func (g *Grid) Equal(o *Grid) bool {
	if o == nil || g.rows != o.rows || g.cols != o.cols {
		return false
	}
	for r := range g.rows {
		for c := range g.cols {
			if g.cells[r][c] != o.cells[r][c] {
				return false
			}
		}
	}
	return true
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for r := range g.rows {
		for c := range g.cols {
			if g.cells[r][c] == rules.Alive {
				count++
			}
		}
	}
	return
}

// GetGridHash returns an MD5 hash of the current grid state
func (g *Grid) GetGridHash() string {
	h := md5.New()
	for r := range g.rows {
		for c := range g.cols {
			h.Write([]byte{byte(g.cells[r][c])})
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Format writes the grid in the pattern file format, one row per line
func (g *Grid) Format(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for r := range g.rows {
		for c := range g.cols {
			bw.WriteRune(g.cells[r][c].Rune())
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func (g *Grid) String() string {
	var sb strings.Builder
	_ = g.Format(&sb)
	return sb.String()
}
