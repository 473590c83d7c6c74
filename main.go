package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sheikhrachel/gol-engine/model"
	"github.com/sheikhrachel/gol-engine/utils"
)

func main() {
	configPath := flag.String("config", "config.json", "path to the JSON configuration file")
	flag.Parse()

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(*configPath)
	if err != nil {
		fmt.Printf("Using default configuration (%v)\n", err)
		config = utils.DefaultConfig()
	}

	// Initialize game
	game, pool, renderer, history, err := initializeGame(config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start: %+v\n", err)
		os.Exit(1)
	}
	displayGameInfo(config, game)

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(config.FrameRate)
	defer ticker.Stop()

	var (
		stagnantCount  = 0
		lastRestartGen = 0
		report         = game.Report()
	)

	for {
		select {
		case <-sigChan:
			stats := game.Stats()
			fmt.Println("\n🛑 Shutting down gracefully...")
			fmt.Printf("Final stats: %d generations in %.1f seconds\n",
				report.Generation, time.Since(stats.StartTime).Seconds())
			fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
				stats.GenerationsPerSecond, stats.AveragePopulation)
			return
		case <-ticker.C:
		}

		// Draw the current generation before advancing it
		snapshot := pool.Get(game.Grid())
		if err = renderer.Clear(); err == nil {
			err = renderer.Display(snapshot)
		}
		model.SnapshotToPool(snapshot, pool)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Render failed: %v\n", err)
			return
		}

		isStagnant := config.AutoRestart && history.Observe(game.Grid().Hash())
		if isStagnant {
			stagnantCount++
		} else {
			stagnantCount = 0
		}
		displayGameStatus(report, gameStatus(report.Population, isStagnant, report.Generation), game, lastRestartGen)

		// Check for max generations limit
		if config.MaxGenerations > 0 && report.Generation >= config.MaxGenerations {
			fmt.Printf("\n🏁 Reached maximum generations limit (%d)\n", config.MaxGenerations)
			return
		}

		if config.AutoRestart {
			if shouldRestart, reason := checkRestartConditions(report.Population, stagnantCount, config); shouldRestart {
				fmt.Printf("🔄 Restarting due to %s...\n", reason)
				if err = restartGame(game, history, config); err != nil {
					fmt.Fprintf(os.Stderr, "Restart failed: %v\n", err)
					return
				}
				lastRestartGen = report.Generation
				stagnantCount = 0
			}
		}

		report = game.Tick()
	}
}
