package model

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	// ansiClear moves the cursor home and clears the screen
	ansiClear = "\033[H\033[2J"
)

// Renderer receives one frame per tick. Implementations must not retain
// Frame.Grid beyond the call or try to modify it.
type Renderer interface {
	Clear()
	Display(f Frame)
}

// NopRenderer discards every frame
type NopRenderer struct{}

func (NopRenderer) Clear()        {}
func (NopRenderer) Display(Frame) {}

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct {
	Out        io.Writer
	ShowStatus bool
}

// NewTerminalRenderer writes to stdout
func NewTerminalRenderer(showStatus bool) *TerminalRenderer {
	return &TerminalRenderer{Out: os.Stdout, ShowStatus: showStatus}
}

// Display renders the grid to the terminal
func (r *TerminalRenderer) Display(f Frame) {
	w := bufio.NewWriter(r.out())
	g := f.Grid

	if r.ShowStatus {
		fmt.Fprintf(w, "Gen: %d | Generations: %d | Living: %d | Status: %s\n",
			f.Generation, f.Advances, f.Population, f.Status)
	}
	for row := range g.Rows() {
		for col := range g.Cols() {
			if g.Alive(row, col) {
				w.WriteString(gridPosBlock)
			} else {
				w.WriteString(gridPosEmpty)
			}
		}
		w.WriteByte('\n')
	}

	if err := w.Flush(); err != nil {
		fmt.Fprintln(os.Stderr, "Error rendering frame:", err)
	}
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	if _, err := io.WriteString(r.out(), ansiClear); err != nil {
		fmt.Fprintln(os.Stderr, "Error clearing terminal:", err)
	}
}

func (r *TerminalRenderer) out() io.Writer {
	if r.Out == nil {
		return os.Stdout
	}
	return r.Out
}
