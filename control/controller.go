package control

import (
	"math/rand/v2"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-engine/editing"
	"github.com/sheikhrachel/gol-engine/model"
	"github.com/sheikhrachel/gol-engine/pattern"
	"github.com/sheikhrachel/gol-engine/utils"
)

// ErrInvalidTurbo is returned for negative turbo factors.
var ErrInvalidTurbo = errors.New("turbo factor must be >= 0")

// Report is what a tick hands back to the caller for display.
type Report struct {
	Generation int
	Population int
	Steps      int
}

// Controller owns the grid and decouples simulation cadence from the caller's
// tick cadence. All methods must be called from one goroutine.
type Controller struct {
	grid    *model.Grid
	stepper *model.Stepper
	brush   *editing.Brush
	rng     *rand.Rand
	stats   *utils.Stats

	turbo  int
	resume int
}

// New builds a controller with an empty grid sized and tuned by config.
func New(config utils.Config) (*Controller, error) {
	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "[control.New]")
	}
	grid, err := model.NewGrid(config.Width, config.Height)
	if err != nil {
		return nil, errors.Wrap(err, "[control.New]")
	}
	brush := editing.NewBrush(grid)
	brush.SetRadius(config.BrushRadius)
	return &Controller{
		grid:    grid,
		stepper: model.NewStepper(config.Workers, config.EdgePolicy()),
		brush:   brush,
		rng:     rand.New(rand.NewPCG(uint64(config.Seed), 0)),
		stats:   utils.NewStats(),
		turbo:   config.Turbo,
		resume:  max(config.Turbo, 1),
	}, nil
}

// Grid exposes the simulated grid for rendering. Callers must treat it as read-only.
func (c *Controller) Grid() *model.Grid { return c.grid }

// Brush returns the editing surface bound to the grid.
func (c *Controller) Brush() *editing.Brush { return c.brush }

// Stats returns a copy of the running statistics.
func (c *Controller) Stats() utils.Stats { return *c.stats }

// TurboFactor returns the number of generations run per tick.
func (c *Controller) TurboFactor() int { return c.turbo }

// Paused reports whether ticks currently leave the grid untouched.
func (c *Controller) Paused() bool { return c.turbo == 0 }

// SetTurboFactor changes how many generations the next ticks run. 0 pauses.
func (c *Controller) SetTurboFactor(t int) error {
	if t < 0 {
		return errors.Wrapf(ErrInvalidTurbo, "[Controller.SetTurboFactor] %d", t)
	}
	c.turbo = t
	if t > 0 {
		c.resume = t
	}
	return nil
}

// Pause sets the turbo factor to 0, remembering the current one for Resume.
func (c *Controller) Pause() {
	if c.turbo > 0 {
		c.resume = c.turbo
	}
	c.turbo = 0
}

// Resume restores the turbo factor in effect before Pause.
func (c *Controller) Resume() {
	if c.turbo == 0 {
		c.turbo = c.resume
	}
}

// Tick runs TurboFactor generations back to back and reports the result.
func (c *Controller) Tick() Report {
	return c.advance(c.turbo)
}

// StepOnce runs exactly one generation regardless of the turbo factor.
func (c *Controller) StepOnce() Report {
	return c.advance(1)
}

func (c *Controller) advance(steps int) Report {
	if steps > 0 {
		start := time.Now()
		for range steps {
			c.stepper.Step(c.grid)
		}
		c.stats.Update(c.grid.Generation(), c.grid.Population(), steps, time.Since(start))
	}
	return Report{
		Generation: c.grid.Generation(),
		Population: c.grid.Population(),
		Steps:      steps,
	}
}

// Report describes the current generation without stepping.
func (c *Controller) Report() Report {
	return Report{Generation: c.grid.Generation(), Population: c.grid.Population()}
}

// Pointer feeds a pointer event to the brush and returns the cells toggled.
func (c *Controller) Pointer(ev editing.Event) int {
	return c.brush.Handle(ev)
}

// LoadPattern parses RLE data and overlays it at (originX, originY). Nothing
// is modified unless both steps succeed.
func (c *Controller) LoadPattern(data []byte, originX, originY int) error {
	p, err := pattern.Parse(data)
	if err != nil {
		return errors.Wrap(err, "[Controller.LoadPattern]")
	}
	return c.PlacePattern(p, originX, originY)
}

// LoadNamedPattern overlays a built-in pattern at (originX, originY).
func (c *Controller) LoadNamedPattern(name string, originX, originY int) error {
	p, err := pattern.Lookup(name)
	if err != nil {
		return errors.Wrap(err, "[Controller.LoadNamedPattern]")
	}
	return c.PlacePattern(p, originX, originY)
}

// PlacePattern overlays an already parsed pattern, so parsing can happen off the tick path.
func (c *Controller) PlacePattern(p *pattern.Pattern, originX, originY int) error {
	if err := pattern.Apply(c.grid, p, originX, originY); err != nil {
		return errors.Wrap(err, "[Controller.PlacePattern]")
	}
	return nil
}

// Resize reallocates the grid, ending any drag in progress. On error the grid is unchanged.
func (c *Controller) Resize(width, height int) error {
	if err := c.grid.Resize(width, height); err != nil {
		return errors.Wrap(err, "[Controller.Resize]")
	}
	c.brush.Up()
	c.stats.Reset()
	return nil
}

// Clear kills every cell.
func (c *Controller) Clear() {
	c.grid.Clear()
}

// Randomize refills the grid from the controller's seeded source.
func (c *Controller) Randomize(density float64) error {
	if err := c.grid.Randomize(density, c.rng); err != nil {
		return errors.Wrap(err, "[Controller.Randomize]")
	}
	return nil
}
