package utils

import "time"

// Stats for performance monitoring
type Stats struct {
	FramesPerSecond   float64
	AveragePopulation float64
	TotalFrames       uint64
	TotalGenerations  uint64
	StartTime         time.Time

	lastFrame time.Time
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one rendered frame
func (s *Stats) Update(frames, generations uint64, population int, now time.Time) {
	s.TotalFrames = frames
	s.TotalGenerations = generations

	if !s.lastFrame.IsZero() {
		if d := now.Sub(s.lastFrame); d > 0 {
			s.FramesPerSecond = 1.0 / d.Seconds()
		}
	}
	s.lastFrame = now

	// Simple moving average for population
	if s.TotalFrames <= 1 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Runtime returns the time since the stats were created
func (s *Stats) Runtime(now time.Time) time.Duration {
	return now.Sub(s.StartTime)
}

// GenerationsPerSecond averages generations over the whole run
func (s *Stats) GenerationsPerSecond(now time.Time) float64 {
	secs := s.Runtime(now).Seconds()
	if secs <= 0 {
		return 0
	}
	return float64(s.TotalGenerations) / secs
}
