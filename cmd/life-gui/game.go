//go:build ebiten

package main

import (
	"fmt"
	"io/fs"
	"path"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/sheikhrachel/gol-engine/control"
	"github.com/sheikhrachel/gol-engine/editing"
	"github.com/sheikhrachel/gol-engine/model"
	"github.com/sheikhrachel/gol-engine/pattern"
)

// game adapts the controller to the ebiten.Game interface.
type game struct {
	ctrl    *control.Controller
	pool    *model.SnapshotPool
	scale   int
	density float64

	frame  *ebiten.Image
	pixels []byte

	patterns []string
	selected int
	message  string
	report   control.Report
}

func newGame(ctrl *control.Controller, scale int, density float64) *game {
	return &game{
		ctrl:     ctrl,
		pool:     model.NewSnapshotPool(),
		scale:    max(scale, 1),
		density:  density,
		patterns: pattern.Names(),
		report:   ctrl.Report(),
	}
}

func (g *game) cursor() (int, int) {
	x, y := ebiten.CursorPosition()
	return x / g.scale, y / g.scale
}

func (g *game) run(cmd control.Command) {
	if err := g.ctrl.Apply(cmd); err != nil {
		g.message = err.Error()
		return
	}
	g.message = ""
}

// Update handles input between ticks, then advances the simulation.
func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if g.ctrl.Paused() {
			g.run(control.Resume{})
		} else {
			g.run(control.Pause{})
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) && g.ctrl.Paused() {
		g.run(control.StepOnce{})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.run(control.Clear{})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.run(control.Randomize{Density: g.density})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.run(control.SetTurboFactor{T: g.ctrl.TurboFactor() + 1})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) && g.ctrl.TurboFactor() > 0 {
		g.run(control.SetTurboFactor{T: g.ctrl.TurboFactor() - 1})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) && len(g.patterns) > 0 {
		g.selected = (g.selected + 1) % len(g.patterns)
	}

	x, y := g.cursor()
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.ctrl.Pointer(editing.PointerDown{X: x, Y: y})
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		g.ctrl.Pointer(editing.PointerMove{X: x, Y: y})
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.ctrl.Pointer(editing.PointerUp{})
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) && len(g.patterns) > 0 {
		g.run(control.LoadNamedPattern{Name: g.patterns[g.selected], X: x, Y: y})
	}
	if dropped := ebiten.DroppedFiles(); dropped != nil {
		g.loadDropped(dropped, x, y)
	}

	g.report = g.ctrl.Tick()
	return nil
}

// loadDropped places the first .rle file of a drop at the cursor.
func (g *game) loadDropped(files fs.FS, x, y int) {
	entries, err := fs.ReadDir(files, ".")
	if err != nil {
		g.message = err.Error()
		return
	}
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".rle" {
			continue
		}
		data, err := fs.ReadFile(files, e.Name())
		if err != nil {
			g.message = err.Error()
			return
		}
		g.run(control.LoadPattern{Data: data, X: x, Y: y})
		return
	}
}

// Draw renders the current generation and the status line.
func (g *game) Draw(screen *ebiten.Image) {
	snap := g.pool.Get(g.ctrl.Grid())
	defer model.SnapshotToPool(snap, g.pool)

	if g.frame == nil || g.frame.Bounds().Dx() != snap.Width || g.frame.Bounds().Dy() != snap.Height {
		g.frame = ebiten.NewImage(snap.Width, snap.Height)
	}
	need := 4 * len(snap.Cells)
	if cap(g.pixels) < need {
		g.pixels = make([]byte, need)
	}
	pix := g.pixels[:need]
	for i, c := range snap.Cells {
		v := byte(0)
		if c == model.Alive {
			v = 0xff
		}
		pix[4*i], pix[4*i+1], pix[4*i+2], pix[4*i+3] = v, v, v, 0xff
	}
	g.frame.WritePixels(pix)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.frame, op)

	selected := ""
	if len(g.patterns) > 0 {
		selected = g.patterns[g.selected]
	}
	status := fmt.Sprintf("Gen: %d | Living: %d | Turbo: %d | Pattern: %s | FPS: %.0f",
		g.report.Generation, g.report.Population, g.ctrl.TurboFactor(), selected, ebiten.ActualFPS())
	if g.message != "" {
		status += "\n" + g.message
	}
	ebitenutil.DebugPrint(screen, status)
}

// Layout returns the logical screen size.
func (g *game) Layout(_, _ int) (int, int) {
	grid := g.ctrl.Grid()
	return grid.Width() * g.scale, grid.Height() * g.scale
}
