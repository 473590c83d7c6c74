package utils

import (
	"math"
	"testing"
	"time"
)

func TestStatsUpdate(t *testing.T) {
	s := NewStats()
	s.Update(4, 100, 4, 2*time.Second)
	if s.GenerationsPerSecond != 2 {
		t.Fatalf("gen/sec = %v, want 2", s.GenerationsPerSecond)
	}
	if s.AveragePopulation != 100 || s.TotalGenerations != 4 || s.Ticks != 1 {
		t.Fatalf("stats = %+v", s)
	}
	s.Update(5, 200, 1, 0)
	if math.Abs(s.AveragePopulation-110) > 1e-9 {
		t.Fatalf("average = %v, want 110", s.AveragePopulation)
	}
	if s.GenerationsPerSecond != 2 {
		t.Fatal("zero duration tick changed gen/sec")
	}
	s.Reset()
	if s.Ticks != 0 || s.StartTime.IsZero() {
		t.Fatalf("reset stats = %+v", s)
	}
}
