package utils

import (
	"fmt"
	"time"
)

// Stats for the end-of-run summary
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	Population           int
	ChangedCells         int
	StartTime            time.Time
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one generation, changed is the size of its delta
func (s *Stats) Update(generation, population, changed int) {
	s.TotalGenerations = generation
	s.Population = population
	s.ChangedCells += changed
	if elapsed := time.Since(s.StartTime); elapsed > 0 {
		s.GenerationsPerSecond = float64(generation) / elapsed.Seconds()
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

func (s *Stats) String() string {
	return fmt.Sprintf("Gen: %d | Living: %d | Avg Pop: %.1f | Changed: %d | %.1f gen/sec",
		s.TotalGenerations, s.Population, s.AveragePopulation, s.ChangedCells, s.GenerationsPerSecond)
}
