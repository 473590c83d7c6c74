package main

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-engine/control"
	"github.com/sheikhrachel/gol-engine/model"
	"github.com/sheikhrachel/gol-engine/pattern"
	"github.com/sheikhrachel/gol-engine/utils"
)

// initializeGame sets up the initial game state
func initializeGame(config utils.Config) (
	*control.Controller,
	*model.SnapshotPool,
	*model.TerminalRenderer,
	*utils.History,
	error,
) {
	game, err := control.New(config)
	if err != nil {
		return nil, nil, nil, nil, errors.Wrap(err, "[initializeGame]")
	}
	if err = seedGame(game, config); err != nil {
		return nil, nil, nil, nil, errors.Wrap(err, "[initializeGame]")
	}

	return game, model.NewSnapshotPool(), &model.TerminalRenderer{}, utils.NewHistory(5), nil
}

// readPattern resolves the configured pattern, first as a built-in name, then as an RLE file path
func readPattern(name string) (*pattern.Pattern, error) {
	p, err := pattern.Lookup(name)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, pattern.ErrUnknownPattern) {
		return nil, err
	}

	data, err := os.ReadFile(name)
	if err != nil {
		return nil, errors.Wrapf(err, "[readPattern] failed to read file: %+v", name)
	}
	return pattern.Parse(data)
}

// seedGame fills the grid from the configured pattern, or with random life when there is none
func seedGame(game *control.Controller, config utils.Config) error {
	if config.Pattern == "" {
		return game.Randomize(config.RandomDensity)
	}

	p, err := readPattern(config.Pattern)
	if err != nil {
		return errors.Wrap(err, "[seedGame]")
	}
	x, y := config.PatternX, config.PatternY
	if config.CenterPattern {
		x, y = pattern.Center(game.Grid(), p)
	}
	game.Clear()
	return game.PlacePattern(p, x, y)
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, game *control.Controller) {
	seed := "random"
	if config.Pattern != "" {
		seed = config.Pattern
	}
	fmt.Printf("Edges: %s | Workers: %d | Turbo: %d | Seed: %s\n",
		config.EdgePolicy(), config.Workers, game.TurboFactor(), seed)
	fmt.Printf("Grid: %dx%d | Initial living cells: %d\n",
		game.Grid().Width(), game.Grid().Height(), game.Grid().Population())
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
	time.Sleep(2 * time.Second)
}

// displayGameStatus shows the current game status
func displayGameStatus(
	report control.Report,
	status string,
	game *control.Controller,
	lastRestartGen int,
) {
	grid := game.Grid()
	density := float64(report.Population) / float64(grid.Width()*grid.Height()) * 100
	stats := game.Stats()

	fmt.Printf("Gen: %d | Living: %d | Density: %.1f%% | Turbo: %d | Status: %s\n",
		report.Generation, report.Population, density, game.TurboFactor(), status)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, time.Since(stats.StartTime).Seconds())

	// Show time since last restart
	if report.Generation > lastRestartGen {
		fmt.Printf("Generations since restart: %d\n", report.Generation-lastRestartGen)
	}
	fmt.Println()
}

// gameStatus describes the population for the status line
func gameStatus(livingCells int, isStagnant bool, generation int) string {
	switch {
	case livingCells == 0:
		return "Extinct"
	case isStagnant:
		return fmt.Sprintf("Stagnant (%d)", generation)
	}
	return "Active"
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(
	livingCells, stagnantCount int,
	config utils.Config,
) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}

// restartGame reseeds the grid in place and forgets the recorded history
func restartGame(game *control.Controller, history *utils.History, config utils.Config) error {
	fmt.Printf("\n🔄 Restarting...\n")
	time.Sleep(1 * time.Second)

	game.Clear()
	if err := game.Randomize(config.RandomDensity); err != nil {
		return errors.Wrap(err, "[restartGame]")
	}
	history.Reset()

	fmt.Printf("✨ New cells seeded! Living cells: %d\n", game.Grid().Population())
	time.Sleep(2 * time.Second)

	return nil
}
