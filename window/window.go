//go:build ebiten

package window

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pkg/errors"
	"golang.org/x/image/font/basicfont"

	"github.com/sheikhrachel/go-gol/model"
)

// Game adapts a simulation to the ebiten.Game interface
type Game struct {
	sim      *model.Simulation
	cellSize int
	width    int
	height   int
}

// New constructs a Game for the provided simulation
func New(sim *model.Simulation, opts Options) *Game {
	engine := sim.Engine()
	w, h := opts.Size(engine.Rows(), engine.Cols())
	return &Game{
		sim:      sim,
		cellSize: max(opts.CellSize, 1),
		width:    w,
		height:   h,
	}
}

// Update runs one tick per ebiten update, so the speed divisor counts frames
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.sim.Tick()
	return nil
}

// Draw renders the current grid and the generation counter
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	f := g.sim.Frame()
	grid := f.Grid
	size := float32(g.cellSize)
	for row := range grid.Rows() {
		for col := range grid.Cols() {
			if grid.Alive(row, col) {
				vector.DrawFilledRect(screen, float32(col)*size, float32(row)*size, size, size, color.White, false)
			}
		}
	}

	text.Draw(screen, strconv.FormatUint(f.Generation, 10), basicfont.Face7x13, 0, g.height-2, color.White)
}

// Layout returns the logical screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Run opens the window and blocks until it is closed
func Run(sim *model.Simulation, opts Options) error {
	game := New(sim, opts)

	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(game.width, game.height)
	if opts.TPS > 0 {
		ebiten.SetTPS(opts.TPS)
	}

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return errors.Wrap(err, "[window.Run] game loop failed")
	}
	return nil
}
