package utils

import "time"

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	Population           int
	Ticks                int
	StartTime            time.Time
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one tick that advanced the grid by steps generations in duration.
func (s *Stats) Update(generation, population, steps int, duration time.Duration) {
	s.TotalGenerations = generation
	s.Population = population
	s.Ticks++
	if duration > 0 && steps > 0 {
		s.GenerationsPerSecond = float64(steps) / duration.Seconds()
	}

	// Simple moving average for population
	if s.Ticks == 1 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Reset starts a fresh measurement window
func (s *Stats) Reset() {
	*s = Stats{StartTime: time.Now()}
}
