package model

import (
	"context"
	"time"
)

// historySize is how many recent grid hashes are kept for status detection
const historySize = 5

// Status summarizes how the population is evolving
type Status int

const (
	StatusActive Status = iota
	StatusStable
	StatusExtinct
)

func (s Status) String() string {
	switch s {
	case StatusStable:
		return "Stable"
	case StatusExtinct:
		return "Extinct"
	default:
		return "Active"
	}
}

// Frame is what a renderer sees once per tick
type Frame struct {
	Generation uint64 // ticks so far
	Advances   uint64 // generations actually computed
	Advanced   bool   // whether this tick advanced the grid
	Population int
	Status     Status
	Grid       View
}

// Simulation drives an Engine one tick at a time, advancing it every
// speed-divisor ticks and handing the current grid to a Renderer every tick.
//
// Visible speed is tied to the frame cadence of whatever calls Tick.
type Simulation struct {
	engine   *Engine
	speed    Speed
	divisor  uint64
	renderer Renderer

	generation uint64
	advances   uint64
	population int
	history    []string
	status     Status
	advanced   bool
}

// NewSimulation builds a simulation; a nil renderer discards frames
func NewSimulation(engine *Engine, speed Speed, renderer Renderer) *Simulation {
	if renderer == nil {
		renderer = NopRenderer{}
	}
	s := &Simulation{
		engine:   engine,
		speed:    speed,
		divisor:  speed.Divisor(),
		renderer: renderer,
	}
	s.population = engine.current.CountLivingCells()
	s.updateStatus()
	return s
}

// Engine returns the underlying engine
func (s *Simulation) Engine() *Engine { return s.engine }

// Speed returns the configured speed level
func (s *Simulation) Speed() Speed { return s.speed }

// Generation returns the tick counter
func (s *Simulation) Generation() uint64 { return s.generation }

// Advances returns how many generations have been computed
func (s *Simulation) Advances() uint64 { return s.advances }

// Step increments the tick counter and advances the engine when the
// counter is a multiple of the speed divisor
func (s *Simulation) Step() Frame {
	s.generation++
	s.advanced = false

	if s.generation%s.divisor == 0 {
		s.engine.Advance()
		s.advances++
		s.advanced = true
		s.population = s.engine.current.CountLivingCells()
		s.updateStatus()
	}

	return s.Frame()
}

// Tick runs Step and hands the resulting frame to the renderer
func (s *Simulation) Tick() Frame {
	f := s.Step()
	s.renderer.Clear()
	s.renderer.Display(f)
	return f
}

// Frame describes the current state without changing it
func (s *Simulation) Frame() Frame {
	return Frame{
		Generation: s.generation,
		Advances:   s.advances,
		Advanced:   s.advanced,
		Population: s.population,
		Status:     s.status,
		Grid:       s.engine.Current(),
	}
}

// Run ticks once per value received on frames. It returns nil after maxTicks
// ticks (0 runs until cancelled) and ctx.Err() once ctx is done. Cancellation
// is only observed between ticks.
func (s *Simulation) Run(ctx context.Context, frames <-chan time.Time, maxTicks uint64) error {
	for ticks := uint64(0); maxTicks == 0 || ticks < maxTicks; ticks++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-frames:
		}
		s.Tick()
	}
	return nil
}

// updateStatus records the current grid in the history and reclassifies it
func (s *Simulation) updateStatus() {
	hash := s.engine.current.GetGridHash()

	s.status = StatusActive
	switch {
	case s.population == 0:
		s.status = StatusExtinct
	case s.repeats(hash):
		s.status = StatusStable
	}

	s.history = append(s.history, hash)
	// Keep only the last few states to detect cycles
	if len(s.history) > historySize {
		s.history = s.history[1:]
	}
}

// repeats reports whether hash matches one of the previous two generations,
// which covers still lifes and period-2 oscillators
func (s *Simulation) repeats(hash string) bool {
	n := len(s.history)
	for i := n - 1; i >= 0 && i >= n-2; i-- {
		if s.history[i] == hash {
			return true
		}
	}
	return false
}
