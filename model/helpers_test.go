package model

import (
	"sort"
	"testing"
)

type point struct{ x, y int }

func gridWith(t testing.TB, w, h int, live ...point) *Grid {
	t.Helper()
	g, err := NewGrid(w, h)
	if err != nil {
		t.Fatalf("NewGrid(%d, %d): %v", w, h, err)
	}
	for _, p := range live {
		if err := g.Set(p.x, p.y, Alive); err != nil {
			t.Fatalf("Set(%d, %d): %v", p.x, p.y, err)
		}
	}
	return g
}

func livePoints(g *Grid) []point {
	var out []point
	for i, c := range g.Cells() {
		if c == Alive {
			out = append(out, point{i % g.Width(), i / g.Width()})
		}
	}
	return out
}

func sortPoints(ps []point) []point {
	out := append([]point(nil), ps...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].y != out[j].y {
			return out[i].y < out[j].y
		}
		return out[i].x < out[j].x
	})
	return out
}

func assertLive(t *testing.T, g *Grid, want ...point) {
	t.Helper()
	got := sortPoints(livePoints(g))
	want = sortPoints(want)
	if len(got) != len(want) {
		t.Fatalf("live cells = %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("live cells = %v, want %v", got, want)
		}
	}
	if g.Population() != len(want) {
		t.Fatalf("population = %d, want %d", g.Population(), len(want))
	}
}

func shifted(ps []point, dx, dy int) []point {
	out := make([]point, len(ps))
	for i, p := range ps {
		out[i] = point{p.x + dx, p.y + dy}
	}
	return out
}
