package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol/model"
	"github.com/sheikhrachel/go-gol/screen"
	"github.com/sheikhrachel/go-gol/utils"
	"github.com/sheikhrachel/go-gol/window"
)

// statsRenderer feeds every displayed frame into Stats
type statsRenderer struct {
	model.Renderer
	stats *utils.Stats
}

func (r statsRenderer) Display(f model.Frame) {
	r.stats.Update(f.Generation, f.Advances, f.Population, time.Now())
	r.Renderer.Display(f)
}

// initializeGame sets up the engine and simulation around a parsed grid
func initializeGame(
	config utils.Config,
	speed model.Speed,
	grid *model.Grid,
	renderer model.Renderer,
	stats *utils.Stats,
) (*model.Simulation, error) {
	engine, err := model.NewEngine(grid, config.Workers)
	if err != nil {
		return nil, err
	}
	return model.NewSimulation(engine, speed, statsRenderer{Renderer: renderer, stats: stats}), nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(w io.Writer, config utils.Config, sim *model.Simulation) {
	engine := sim.Engine()
	fmt.Fprintf(w, "Grid dimensions: H: %d, W: %d\n", engine.Rows(), engine.Cols())
	fmt.Fprintf(w, "Speed: %d (1 generation every %d frames) | Renderer: %s | Workers: %d\n",
		sim.Speed(), sim.Speed().Divisor(), config.Renderer, engine.Workers())
}

// displayFinalStats shows the summary printed on shutdown
func displayFinalStats(w io.Writer, sim *model.Simulation, stats *utils.Stats) {
	now := time.Now()
	fmt.Fprintf(w, "Final stats: %d frames, %d generations in %.1f seconds\n",
		sim.Generation(), sim.Advances(), stats.Runtime(now).Seconds())
	fmt.Fprintf(w, "Average: %.1f gen/sec, %.1f avg population\n",
		stats.GenerationsPerSecond(now), stats.AveragePopulation)
}

// runGame picks the renderer named in config and drives the simulation until
// it is cancelled, the frame limit is reached or the window is closed
func runGame(ctx context.Context, config utils.Config, speed model.Speed, grid *model.Grid, stdout io.Writer) error {
	var (
		stats    = utils.NewStats()
		renderer model.Renderer
		cleanup  = func() {}
	)

	switch config.Renderer {
	case utils.RendererTerminal:
		renderer = &model.TerminalRenderer{Out: stdout, ShowStatus: config.ShowStatus}
	case utils.RendererTcell:
		scr, err := screen.NewTerminal(config.ShowStatus)
		if err != nil {
			return err
		}
		var cancel context.CancelFunc
		ctx, cancel = context.WithCancel(ctx)
		go scr.WatchKeys(cancel)
		renderer = scr
		cleanup = func() {
			cancel()
			scr.Close()
		}
	case utils.RendererWindow, utils.RendererNone:
		renderer = model.NopRenderer{}
	default:
		return errors.Wrapf(utils.ErrUsage, "[runGame] unknown renderer %q", config.Renderer)
	}

	sim, err := initializeGame(config, speed, grid, renderer, stats)
	if err != nil {
		cleanup()
		return err
	}
	displayGameInfo(stdout, config, sim)

	switch config.Renderer {
	case utils.RendererWindow:
		err = window.Run(sim, window.Options{
			Title:    "go-gol - " + config.File,
			CellSize: config.CellSize,
			TPS:      config.TPS(),
		})
	case utils.RendererNone:
		err = runHeadless(ctx, sim, config)
		if err == nil {
			err = sim.Engine().Snapshot().Format(stdout)
		}
	default:
		err = runPaced(ctx, sim, config)
	}
	cleanup()
	if err != nil {
		return err
	}

	displayFinalStats(stdout, sim, stats)
	return nil
}

// runPaced ticks once per frame period
func runPaced(ctx context.Context, sim *model.Simulation, config utils.Config) error {
	ticker := time.NewTicker(config.FrameRate)
	defer ticker.Stop()

	return ignoreCancel(sim.Run(ctx, ticker.C, config.MaxFrames))
}

// runHeadless ticks as fast as possible when a frame limit is set
func runHeadless(ctx context.Context, sim *model.Simulation, config utils.Config) error {
	if config.MaxFrames == 0 {
		return runPaced(ctx, sim, config)
	}
	// a closed channel is always ready to receive
	ready := make(chan time.Time)
	close(ready)
	return ignoreCancel(sim.Run(ctx, ready, config.MaxFrames))
}

func ignoreCancel(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
