// Package window shows the simulation in a desktop window using ebiten.
// It is only functional when built with -tags ebiten.
package window

import "github.com/pkg/errors"

// ErrUnavailable is returned by Run in builds without the ebiten tag
var ErrUnavailable = errors.New("window renderer requires the ebiten build tag")

// Options configures the window
type Options struct {
	Title    string
	CellSize int
	TPS      int
}

// Size returns the window size in pixels for a rows x cols grid
func (o Options) Size(rows, cols int) (width, height int) {
	cell := max(o.CellSize, 1)
	return cols * cell, rows * cell
}
