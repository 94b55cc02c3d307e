//go:build !ebiten

package window

import (
	"github.com/sheikhrachel/go-gol/model"
)

// Run reports that the window renderer was not compiled in
func Run(sim *model.Simulation, opts Options) error {
	return ErrUnavailable
}
