package model

import (
	"crypto/md5"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/pkg/errors"
)

// Grid represents the game board as two same-shaped row-major buffers.
// Only cur is observable; next is scratch space owned by the step engine.
type Grid struct {
	width      int
	height     int
	cur        []Cell
	next       []Cell
	generation int
	population int
}

// NewGrid creates a new grid with the specified dimensions, all cells dead
func NewGrid(width, height int) (*Grid, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, errors.Wrap(err, "[NewGrid]")
	}
	return &Grid{
		width:  width,
		height: height,
		cur:    make([]Cell, width*height),
		next:   make([]Cell, width*height),
	}, nil
}

func checkDimensions(width, height int) error {
	if width <= 0 || height <= 0 {
		return errors.Wrapf(ErrInvalidDimensions, "%dx%d", width, height)
	}
	if height > math.MaxInt/width {
		return errors.Wrapf(ErrInvalidDimensions, "%dx%d overflows", width, height)
	}
	return nil
}

// Width returns the width of the grid
func (g *Grid) Width() int { return g.width }

// Height returns the height of the grid
func (g *Grid) Height() int { return g.height }

// Generation returns the number of steps applied since creation or the last resize.
func (g *Grid) Generation() int { return g.generation }

// Population returns the number of live cells in the current generation.
func (g *Grid) Population() int { return g.population }

// Cells exposes the current generation in row-major order. The slice is a
// view, not a copy: callers must not modify it and must not retain it across
// a step, since the buffers are swapped.
func (g *Grid) Cells() []Cell { return g.cur }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

func (g *Grid) index(x, y int) (int, error) {
	if !g.InBounds(x, y) {
		return 0, errors.Wrapf(ErrOutOfBounds, "(%d,%d) outside %dx%d", x, y, g.width, g.height)
	}
	return y*g.width + x, nil
}

// Get returns the state of a cell
func (g *Grid) Get(x, y int) (Cell, error) {
	i, err := g.index(x, y)
	if err != nil {
		return Dead, errors.Wrap(err, "[Grid.Get]")
	}
	return g.cur[i], nil
}

// Set sets a cell to the given state. Setting a cell to the state it already
// has is a no-op.
func (g *Grid) Set(x, y int, state Cell) error {
	i, err := g.index(x, y)
	if err != nil {
		return errors.Wrap(err, "[Grid.Set]")
	}
	g.write(i, state.normalized())
	return nil
}

// Toggle flips a cell and returns its new state.
func (g *Grid) Toggle(x, y int) (Cell, error) {
	i, err := g.index(x, y)
	if err != nil {
		return Dead, errors.Wrap(err, "[Grid.Toggle]")
	}
	state := Alive - g.cur[i]
	g.write(i, state)
	return state, nil
}

func (g *Grid) write(i int, state Cell) {
	if g.cur[i] == state {
		return
	}
	g.cur[i] = state
	if state == Alive {
		g.population++
	} else {
		g.population--
	}
}

// Randomize sets every cell alive with probability density. A nil rng falls
// back to the global source. The generation counter is left untouched.
func (g *Grid) Randomize(density float64, rng *rand.Rand) error {
	if math.IsNaN(density) || density < 0 || density > 1 {
		return errors.Wrapf(ErrInvalidDensity, "[Grid.Randomize] density %v", density)
	}
	random := rand.Float64
	if rng != nil {
		random = rng.Float64
	}
	population := 0
	for i := range g.cur {
		if random() < density {
			g.cur[i] = Alive
			population++
		} else {
			g.cur[i] = Dead
		}
	}
	g.population = population
	return nil
}

// Clear kills every cell. The generation counter is left untouched.
func (g *Grid) Clear() {
	clear(g.cur)
	g.population = 0
}

// Resize reallocates both buffers to the new dimensions, keeping the cells of
// the region both sizes share. The generation counter restarts at 0. On error
// the grid is left exactly as it was.
func (g *Grid) Resize(width, height int) error {
	if err := checkDimensions(width, height); err != nil {
		return errors.Wrap(err, "[Grid.Resize]")
	}
	cur := make([]Cell, width*height)
	population := 0
	for y := range min(height, g.height) {
		src := g.cur[y*g.width : y*g.width+min(width, g.width)]
		for x, c := range src {
			cur[y*width+x] = c
			population += int(c)
		}
	}
	g.width, g.height = width, height
	g.cur = cur
	g.next = make([]Cell, width*height)
	g.generation = 0
	g.population = population
	return nil
}

// CountLivingCells returns the number of living cells by full scan
func (g *Grid) CountLivingCells() (count int) {
	for _, c := range g.cur {
		count += int(c)
	}
	return
}

// Hash returns an MD5 digest of the current generation, used to spot cycles
func (g *Grid) Hash() string {
	var (
		h   = md5.New()
		buf [4096]byte
		n   int
	)
	for _, c := range g.cur {
		buf[n] = byte(c)
		n++
		if n == len(buf) {
			h.Write(buf[:])
			n = 0
		}
	}
	h.Write(buf[:n])
	return fmt.Sprintf("%x", h.Sum(nil))
}
