package model

import (
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/gol-engine/rules"
)

// EdgePolicy decides what lies beyond the border of the grid.
type EdgePolicy int

const (
	// EdgeBounded treats every off-grid neighbor as permanently dead.
	EdgeBounded EdgePolicy = iota
	// EdgeToroidal wraps the grid so opposite borders are adjacent.
	EdgeToroidal
)

// String returns the configuration name of the policy.
func (p EdgePolicy) String() string {
	if p == EdgeToroidal {
		return "toroidal"
	}
	return "bounded"
}

// ParseEdgePolicy maps a configuration name to an EdgePolicy. The empty string means bounded.
func ParseEdgePolicy(name string) (EdgePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "bounded":
		return EdgeBounded, nil
	case "toroidal", "wrap":
		return EdgeToroidal, nil
	}
	return EdgeBounded, errors.Errorf("[ParseEdgePolicy] unknown edge policy %q", name)
}

// Stepper is the step engine. It reads only the current buffer of a grid,
// writes only the next one, and swaps them once every row is done.
type Stepper struct {
	workers int
	edges   EdgePolicy
	counts  []int
}

// NewStepper returns a Stepper that splits each step across workers row
// bands. workers <= 0 uses one band per CPU.
func NewStepper(workers int, edges EdgePolicy) *Stepper {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Stepper{workers: workers, edges: edges}
}

// Workers returns the maximum number of row bands evaluated concurrently.
func (s *Stepper) Workers() int { return s.workers }

// Edges returns the edge policy applied to neighbor counts.
func (s *Stepper) Edges() EdgePolicy { return s.edges }

// Step advances g by exactly one generation. A step always runs to completion.
func (s *Stepper) Step(g *Grid) {
	workers := min(s.workers, g.height)
	if cap(s.counts) < workers {
		s.counts = make([]int, workers)
	}
	counts := s.counts[:workers]

	if workers == 1 {
		counts[0] = s.stepRows(g, 0, g.height)
	} else {
		var (
			eg            errgroup.Group
			rowsPerWorker = (g.height + workers - 1) / workers // Ceiling division
		)
		for i := range workers {
			var (
				startRow = i * rowsPerWorker
				endRow   = min(startRow+rowsPerWorker, g.height)
			)
			if startRow >= g.height {
				counts[i] = 0
				continue
			}
			eg.Go(func() error {
				counts[i] = s.stepRows(g, startRow, endRow)
				return nil
			})
		}
		// Bands never fail; Wait is the barrier before the swap.
		_ = eg.Wait()
	}

	population := 0
	for _, c := range counts {
		population += c
	}
	g.cur, g.next = g.next, g.cur
	g.generation++
	g.population = population
}

// stepRows writes rows [startRow, endRow) of the next generation and returns
// how many of them are alive.
func (s *Stepper) stepRows(g *Grid, startRow, endRow int) (alive int) {
	var (
		w, h = g.width, g.height
		cur  = g.cur
		next = g.next
	)
	count := countBounded
	if s.edges == EdgeToroidal {
		count = countWrapped
	}
	for y := startRow; y < endRow; y++ {
		row := y * w
		for x := 0; x < w; x++ {
			if rules.ApplyConwayRules(count(cur, w, h, x, y), cur[row+x] == Alive) {
				next[row+x] = Alive
				alive++
			} else {
				next[row+x] = Dead
			}
		}
	}
	return alive
}

// countBounded counts living neighbors, treating off-grid cells as dead
func countBounded(cur []Cell, w, h, x, y int) int {
	var (
		count = 0
		minX  = max(0, x-1)
		maxX  = min(w-1, x+1)
		minY  = max(0, y-1)
		maxY  = min(h-1, y+1)
	)
	for ny := minY; ny <= maxY; ny++ {
		row := ny * w
		for nx := minX; nx <= maxX; nx++ {
			count += int(cur[row+nx])
		}
	}
	return count - int(cur[y*w+x])
}

// countWrapped counts living neighbors on a torus
func countWrapped(cur []Cell, w, h, x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		ny := wrap(y+dy, h)
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			count += int(cur[ny*w+wrap(x+dx, w)])
		}
	}
	return count
}

func wrap(v, n int) int {
	switch {
	case v < 0:
		return v + n
	case v >= n:
		return v - n
	}
	return v
}
