package model

import (
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-gol/rules"
)

// minRowsPerWorker keeps tiny grids on the sequential path
const minRowsPerWorker = 16

// Engine owns the current and next generation buffers
type Engine struct {
	current *Grid
	next    *Grid
	workers int
}

// NewEngine copies initial into a fresh pair of buffers. workers <= 0 means
// one worker per CPU, 1 means a purely sequential advance.
func NewEngine(initial *Grid, workers int) (*Engine, error) {
	if initial == nil || initial.Area() == 0 {
		return nil, errors.Wrap(ErrEmptyGrid, "[NewEngine] cannot simulate an empty grid")
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Engine{
		current: initial.Clone(),
		next:    initial.Clone(),
		workers: workers,
	}, nil
}

// Rows returns the number of rows of both buffers
func (e *Engine) Rows() int { return e.current.rows }

// Cols returns the number of columns of both buffers
func (e *Engine) Cols() int { return e.current.cols }

// Workers returns the number of goroutines used per advance
func (e *Engine) Workers() int { return e.workers }

// Current exposes the current generation read-only
func (e *Engine) Current() View { return e.current }

// Snapshot returns a copy of the current generation that the engine never touches again
func (e *Engine) Snapshot() *Grid { return e.current.Clone() }

// Advance computes the next generation from the current one and copies it back
func (e *Engine) Advance() {
	var (
		rows       = e.current.rows
		numWorkers = min(e.workers, rows/minRowsPerWorker)
	)

	if numWorkers <= 1 {
		e.advanceRows(0, rows)
	} else {
		var (
			eg            errgroup.Group
			rowsPerWorker = (rows + numWorkers - 1) / numWorkers // Ceiling division
		)

		for i := range numWorkers {
			var (
				startRow = i * rowsPerWorker
				endRow   = min(startRow+rowsPerWorker, rows)
			)
			if startRow >= rows {
				break
			}

			eg.Go(func() error {
				e.advanceRows(startRow, endRow)
				return nil
			})
		}
		// workers never fail; Wait is the barrier before the copy below
		_ = eg.Wait()
	}

	e.current.CopyFrom(e.next)
}

// advanceRows fills rows [startRow, endRow) of next, reading only current
func (e *Engine) advanceRows(startRow, endRow int) {
	cur, next := e.current, e.next
	for r := startRow; r < endRow; r++ {
		for c := range cur.cols {
			next.cells[r][c] = rules.Next(cur.cells[r][c], cur.CountNeighbors(r, c))
		}
	}
}
