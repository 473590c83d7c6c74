package model

import (
	"math/rand/v2"
	"testing"

	"github.com/pkg/errors"
)

func TestNewGridInvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 10}, {10, 0}, {0, 0}, {-1, 5}} {
		g, err := NewGrid(dims[0], dims[1])
		if !errors.Is(err, ErrInvalidDimensions) {
			t.Fatalf("NewGrid(%d, %d) err = %v, want ErrInvalidDimensions", dims[0], dims[1], err)
		}
		if g != nil {
			t.Fatalf("NewGrid(%d, %d) returned a grid on error", dims[0], dims[1])
		}
	}
}

func TestNewGridStartsEmpty(t *testing.T) {
	g := gridWith(t, 7, 3)
	if g.Width() != 7 || g.Height() != 3 {
		t.Fatalf("size = %dx%d, want 7x3", g.Width(), g.Height())
	}
	if len(g.Cells()) != 21 || len(g.next) != 21 {
		t.Fatalf("buffers = %d/%d, want 21", len(g.Cells()), len(g.next))
	}
	if g.Population() != 0 || g.Generation() != 0 {
		t.Fatalf("population=%d generation=%d, want 0/0", g.Population(), g.Generation())
	}
}

func TestSetIsIdempotent(t *testing.T) {
	g := gridWith(t, 4, 4)
	for range 3 {
		if err := g.Set(1, 2, Alive); err != nil {
			t.Fatal(err)
		}
	}
	if g.Population() != 1 {
		t.Fatalf("population after repeated Set = %d, want 1", g.Population())
	}
	if err := g.Set(1, 2, Dead); err != nil {
		t.Fatal(err)
	}
	if err := g.Set(1, 2, Dead); err != nil {
		t.Fatal(err)
	}
	if g.Population() != 0 {
		t.Fatalf("population after clearing = %d, want 0", g.Population())
	}
}

func TestOutOfBounds(t *testing.T) {
	g := gridWith(t, 3, 2)
	for _, p := range []point{{-1, 0}, {0, -1}, {3, 0}, {0, 2}} {
		if _, err := g.Get(p.x, p.y); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("Get%v err = %v, want ErrOutOfBounds", p, err)
		}
		if err := g.Set(p.x, p.y, Alive); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("Set%v err = %v, want ErrOutOfBounds", p, err)
		}
		if _, err := g.Toggle(p.x, p.y); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("Toggle%v err = %v, want ErrOutOfBounds", p, err)
		}
	}
	if g.Population() != 0 {
		t.Fatalf("population = %d after rejected writes", g.Population())
	}
}

func TestToggle(t *testing.T) {
	g := gridWith(t, 3, 3)
	state, err := g.Toggle(1, 1)
	if err != nil || state != Alive {
		t.Fatalf("first toggle = %v, %v", state, err)
	}
	if c, _ := g.Get(1, 1); c != Alive || g.Population() != 1 {
		t.Fatalf("cell=%v population=%d after toggle on", c, g.Population())
	}
	state, err = g.Toggle(1, 1)
	if err != nil || state != Dead {
		t.Fatalf("second toggle = %v, %v", state, err)
	}
	if g.Population() != 0 {
		t.Fatalf("population = %d after toggle off", g.Population())
	}
}

func TestRandomize(t *testing.T) {
	g := gridWith(t, 40, 25)
	rng := rand.New(rand.NewPCG(1, 2))

	if err := g.Randomize(1, rng); err != nil {
		t.Fatal(err)
	}
	if g.Population() != 1000 {
		t.Fatalf("density 1 population = %d, want 1000", g.Population())
	}
	if err := g.Randomize(0, rng); err != nil {
		t.Fatal(err)
	}
	if g.Population() != 0 {
		t.Fatalf("density 0 population = %d, want 0", g.Population())
	}
	if err := g.Randomize(0.3, rng); err != nil {
		t.Fatal(err)
	}
	if g.Population() != g.CountLivingCells() {
		t.Fatalf("population %d != scan %d", g.Population(), g.CountLivingCells())
	}
	if g.Population() < 200 || g.Population() > 400 {
		t.Fatalf("density 0.3 population = %d, expected roughly 300", g.Population())
	}

	before := append([]Cell(nil), g.Cells()...)
	for _, d := range []float64{-0.1, 1.5} {
		if err := g.Randomize(d, rng); !errors.Is(err, ErrInvalidDensity) {
			t.Fatalf("Randomize(%v) err = %v, want ErrInvalidDensity", d, err)
		}
	}
	for i := range before {
		if before[i] != g.Cells()[i] {
			t.Fatal("rejected Randomize modified the grid")
		}
	}
}

func TestRandomizeDeterministic(t *testing.T) {
	a := gridWith(t, 30, 30)
	b := gridWith(t, 30, 30)
	if err := a.Randomize(0.5, rand.New(rand.NewPCG(42, 0))); err != nil {
		t.Fatal(err)
	}
	if err := b.Randomize(0.5, rand.New(rand.NewPCG(42, 0))); err != nil {
		t.Fatal(err)
	}
	if a.Hash() != b.Hash() {
		t.Fatal("same seed produced different grids")
	}
}

func TestClearKeepsGeneration(t *testing.T) {
	g := gridWith(t, 5, 5, point{1, 2}, point{2, 2}, point{3, 2})
	NewStepper(1, EdgeBounded).Step(g)
	g.Clear()
	if g.Population() != 0 || g.CountLivingCells() != 0 {
		t.Fatalf("population = %d after Clear", g.Population())
	}
	if g.Generation() != 1 {
		t.Fatalf("generation = %d after Clear, want 1", g.Generation())
	}
}

func TestResize(t *testing.T) {
	g := gridWith(t, 6, 6, point{0, 0}, point{2, 1}, point{5, 5})
	NewStepper(1, EdgeBounded).Step(g)
	g.Clear()
	for _, p := range []point{{0, 0}, {2, 1}, {5, 5}} {
		if err := g.Set(p.x, p.y, Alive); err != nil {
			t.Fatal(err)
		}
	}

	if err := g.Resize(4, 3); err != nil {
		t.Fatal(err)
	}
	if g.Width() != 4 || g.Height() != 3 || len(g.Cells()) != 12 || len(g.next) != 12 {
		t.Fatalf("resized to %dx%d with buffers %d/%d", g.Width(), g.Height(), len(g.Cells()), len(g.next))
	}
	if g.Generation() != 0 {
		t.Fatalf("generation = %d after Resize, want 0", g.Generation())
	}
	assertLive(t, g, point{0, 0}, point{2, 1})

	if err := g.Resize(8, 8); err != nil {
		t.Fatal(err)
	}
	assertLive(t, g, point{0, 0}, point{2, 1})
}

func TestResizeRejectedLeavesGrid(t *testing.T) {
	g := gridWith(t, 5, 4, point{1, 1})
	hash := g.Hash()
	for _, dims := range [][2]int{{0, 4}, {5, 0}} {
		if err := g.Resize(dims[0], dims[1]); !errors.Is(err, ErrInvalidDimensions) {
			t.Fatalf("Resize%v err = %v, want ErrInvalidDimensions", dims, err)
		}
	}
	if g.Width() != 5 || g.Height() != 4 || g.Hash() != hash || g.Population() != 1 {
		t.Fatal("rejected Resize changed the grid")
	}
}

func TestPopulationMatchesScan(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	g := gridWith(t, 20, 15)
	s := NewStepper(3, EdgeBounded)
	for i := range 2000 {
		x, y := rng.IntN(24)-2, rng.IntN(19)-2
		switch rng.IntN(6) {
		case 0:
			_ = g.Set(x, y, Alive)
		case 1:
			_ = g.Set(x, y, Dead)
		case 2:
			_, _ = g.Toggle(x, y)
		case 3:
			if i%50 == 0 {
				s.Step(g)
			}
		case 4:
			if i%200 == 0 {
				_ = g.Randomize(rng.Float64(), rng)
			}
		case 5:
			if i%300 == 0 {
				g.Clear()
			}
		}
		if g.Population() != g.CountLivingCells() {
			t.Fatalf("op %d: population %d != scan %d", i, g.Population(), g.CountLivingCells())
		}
	}
}

func TestHashChangesWithState(t *testing.T) {
	g := gridWith(t, 70, 70)
	empty := g.Hash()
	if err := g.Set(69, 69, Alive); err != nil {
		t.Fatal(err)
	}
	if g.Hash() == empty {
		t.Fatal("hash did not change after setting the last cell")
	}
}
