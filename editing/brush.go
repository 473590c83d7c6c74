package editing

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-engine/model"
)

// Event is a pointer event in grid coordinates.
type Event interface {
	isEvent()
}

// PointerDown starts a drag gesture at (X, Y).
type PointerDown struct{ X, Y int }

// PointerMove continues the current drag gesture at (X, Y).
type PointerMove struct{ X, Y int }

// PointerUp ends the current drag gesture.
type PointerUp struct{}

func (PointerDown) isEvent() {}
func (PointerMove) isEvent() {}
func (PointerUp) isEvent()   {}

type point struct{ x, y int }

// Brush turns drag gestures into cell toggles. Every cell is toggled at most
// once per gesture, however often the pointer crosses it.
type Brush struct {
	grid    *model.Grid
	radius  int
	active  bool
	visited map[point]struct{}
}

// NewBrush returns a single-cell brush editing g.
func NewBrush(g *model.Grid) *Brush {
	return &Brush{grid: g, visited: make(map[point]struct{})}
}

// SetRadius sets the brush footprint to a (2r+1) square. Negative values mean 0.
func (b *Brush) SetRadius(r int) { b.radius = max(r, 0) }

// Radius returns the footprint radius.
func (b *Brush) Radius() int { return b.radius }

// Dragging reports whether a gesture is in progress.
func (b *Brush) Dragging() bool { return b.active }

// Handle dispatches a pointer event and returns the number of cells toggled.
func (b *Brush) Handle(ev Event) int {
	switch ev := ev.(type) {
	case PointerDown:
		return b.Down(ev.X, ev.Y)
	case PointerMove:
		return b.Move(ev.X, ev.Y)
	case PointerUp:
		b.Up()
	}
	return 0
}

// Down begins a new gesture, forgetting cells visited by the previous one.
func (b *Brush) Down(x, y int) int {
	clear(b.visited)
	b.active = true
	return b.paint(x, y)
}

// Move paints under the pointer if a gesture is in progress.
func (b *Brush) Move(x, y int) int {
	if !b.active {
		return 0
	}
	return b.paint(x, y)
}

// Up ends the gesture.
func (b *Brush) Up() {
	b.active = false
	clear(b.visited)
}

func (b *Brush) paint(x, y int) (toggled int) {
	if !b.grid.InBounds(x, y) {
		return 0
	}
	for py := y - b.radius; py <= y+b.radius; py++ {
		for px := x - b.radius; px <= x+b.radius; px++ {
			p := point{px, py}
			if _, seen := b.visited[p]; seen {
				continue
			}
			if _, err := b.grid.Toggle(px, py); err != nil {
				if errors.Is(err, model.ErrOutOfBounds) {
					continue
				}
				return toggled
			}
			b.visited[p] = struct{}{}
			toggled++
		}
	}
	return toggled
}
