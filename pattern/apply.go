package pattern

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-engine/model"
)

// Fits reports whether p's bounding box lies inside g with its top-left corner at (originX, originY).
func Fits(g *model.Grid, p *Pattern, originX, originY int) bool {
	return g.InBounds(originX, originY) &&
		p.width <= g.Width()-originX &&
		p.height <= g.Height()-originY
}

// Apply overlays p onto g with its top-left corner at (originX, originY),
// setting every listed cell alive and leaving the others as they were. The
// whole bounding box is validated first, so on error g is unchanged.
func Apply(g *model.Grid, p *Pattern, originX, originY int) error {
	if !Fits(g, p, originX, originY) {
		return errors.Wrapf(ErrPatternOutOfBounds,
			"[pattern.Apply] %dx%d pattern at (%d,%d) exceeds %dx%d grid",
			p.width, p.height, originX, originY, g.Width(), g.Height())
	}
	for _, c := range p.cells {
		if err := g.Set(originX+c.DX, originY+c.DY, model.Alive); err != nil {
			return errors.Wrap(err, "[pattern.Apply]")
		}
	}
	return nil
}

// Center returns the origin that places p in the middle of g.
func Center(g *model.Grid, p *Pattern) (int, int) {
	return (g.Width() - p.width) / 2, (g.Height() - p.height) / 2
}
