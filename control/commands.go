package control

// Command is a control event applied between ticks.
type Command interface {
	apply(c *Controller) error
}

type (
	// SetTurboFactor changes the generations run per tick; 0 pauses.
	SetTurboFactor struct{ T int }
	// LoadPattern parses RLE bytes and overlays them at (X, Y).
	LoadPattern struct {
		Data []byte
		X, Y int
	}
	// LoadNamedPattern overlays a built-in pattern at (X, Y).
	LoadNamedPattern struct {
		Name string
		X, Y int
	}
	// Resize reallocates the grid.
	Resize struct{ Width, Height int }
	// Clear kills every cell.
	Clear struct{}
	// Randomize refills the grid with the given live density.
	Randomize struct{ Density float64 }
	// Pause sets the turbo factor to 0.
	Pause struct{}
	// Resume restores the turbo factor in effect before Pause.
	Resume struct{}
	// StepOnce runs a single generation.
	StepOnce struct{}
)

// Apply executes cmd against the controller.
func (c *Controller) Apply(cmd Command) error {
	return cmd.apply(c)
}

func (cmd SetTurboFactor) apply(c *Controller) error { return c.SetTurboFactor(cmd.T) }

func (cmd LoadPattern) apply(c *Controller) error { return c.LoadPattern(cmd.Data, cmd.X, cmd.Y) }

func (cmd LoadNamedPattern) apply(c *Controller) error {
	return c.LoadNamedPattern(cmd.Name, cmd.X, cmd.Y)
}

func (cmd Resize) apply(c *Controller) error { return c.Resize(cmd.Width, cmd.Height) }

func (Clear) apply(c *Controller) error {
	c.Clear()
	return nil
}

func (cmd Randomize) apply(c *Controller) error { return c.Randomize(cmd.Density) }

func (Pause) apply(c *Controller) error {
	c.Pause()
	return nil
}

func (Resume) apply(c *Controller) error {
	c.Resume()
	return nil
}

func (StepOnce) apply(c *Controller) error {
	c.StepOnce()
	return nil
}
