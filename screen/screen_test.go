package screen

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/sheikhrachel/go-gol/model"
)

func newSimScreen(t *testing.T) (tcell.SimulationScreen, *Renderer) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	r, err := New(sim, true)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	sim.SetSize(40, 10)
	t.Cleanup(r.Close)
	return sim, r
}

func mustParse(t *testing.T, text string) *model.Grid {
	t.Helper()
	g, err := model.Parse(strings.NewReader(text))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return g
}

func TestDisplayDrawsAliveCellsTwoColumnsWide(t *testing.T) {
	sim, r := newSimScreen(t)
	g := mustParse(t, "#_\n_#\n")

	r.Display(model.Frame{Generation: 3, Population: 2, Grid: g})

	checks := []struct {
		x, y  int
		alive bool
	}{
		{0, 0, true}, {1, 0, true}, {2, 0, false}, {3, 0, false},
		{0, 1, false}, {1, 1, false}, {2, 1, true}, {3, 1, true},
	}
	for _, c := range checks {
		_, _, style, _ := sim.GetContent(c.x, c.y)
		_, bg, _ := style.Decompose()
		if got := bg == tcell.ColorWhite; got != c.alive {
			t.Fatalf("cell (%d,%d) alive=%v, expected %v", c.x, c.y, got, c.alive)
		}
	}

	var line strings.Builder
	for x := range 40 {
		ch, _, _, _ := sim.GetContent(x, 2)
		line.WriteRune(ch)
	}
	if !strings.HasPrefix(line.String(), "Gen: 3 |") {
		t.Fatalf("status line = %q", line.String())
	}
}

func TestWatchKeysCancelsOnQuit(t *testing.T) {
	sim, r := newSimScreen(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		r.WatchKeys(cancel)
		close(done)
	}()
	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("WatchKeys did not return after q")
	}
	if ctx.Err() == nil {
		t.Fatal("context was not cancelled")
	}
}
