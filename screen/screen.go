// Package screen renders frames full-screen in a terminal using tcell.
package screen

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol/model"
)

var (
	aliveStyle  = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
	deadStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(tcell.ColorBlack)
)

// Renderer draws each grid cell as two terminal columns
type Renderer struct {
	screen     tcell.Screen
	showStatus bool
}

// New initializes s and takes ownership of it until Close
func New(s tcell.Screen, showStatus bool) (*Renderer, error) {
	if err := s.Init(); err != nil {
		return nil, errors.Wrap(err, "[screen.New] failed to initialize screen")
	}
	s.HideCursor()
	s.Clear()
	return &Renderer{screen: s, showStatus: showStatus}, nil
}

// NewTerminal opens the controlling terminal
func NewTerminal(showStatus bool) (*Renderer, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "[screen.NewTerminal] failed to create screen")
	}
	return New(s, showStatus)
}

// Clear erases the previous frame
func (r *Renderer) Clear() {
	r.screen.Clear()
}

// Display draws the frame and flushes it to the terminal
func (r *Renderer) Display(f model.Frame) {
	g := f.Grid
	for row := range g.Rows() {
		for col := range g.Cols() {
			style := deadStyle
			if g.Alive(row, col) {
				style = aliveStyle
			}
			r.screen.SetContent(col*2, row, ' ', nil, style)
			r.screen.SetContent(col*2+1, row, ' ', nil, style)
		}
	}

	if r.showStatus {
		status := fmt.Sprintf("Gen: %d | Generations: %d | Living: %d | %s | q to quit",
			f.Generation, f.Advances, f.Population, f.Status)
		drawText(r.screen, 0, g.Rows(), status, statusStyle)
	}
	r.screen.Show()
}

// WatchKeys blocks until q, Esc or Ctrl-C is pressed and then calls cancel.
// It returns without cancelling once the screen is closed.
func (r *Renderer) WatchKeys(cancel context.CancelFunc) {
	for {
		switch ev := r.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				cancel()
				return
			}
		case *tcell.EventResize:
			r.screen.Sync()
		}
	}
}

// Close restores the terminal
func (r *Renderer) Close() {
	r.screen.Fini()
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, ch := range text {
		s.SetContent(x, y, ch, nil, style)
		x++
	}
}
