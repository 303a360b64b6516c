package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sheikhrachel/go-colorlife/model"
	"github.com/sheikhrachel/go-colorlife/utils"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("Error: %+v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig("config.json")
	if err != nil {
		fmt.Println("Using default configuration:", err)
		config = utils.DefaultConfig()
	}
	if err = config.Validate(); err != nil {
		return err
	}

	s, err := initializeGame(config)
	if err != nil {
		return err
	}
	displayGameInfo(config, s.grid)

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	var (
		generation     = 0
		stagnantCount  = 0
		lastRestartGen = 0
	)

	ticker := time.NewTicker(max(config.FrameRate, time.Millisecond))
	defer ticker.Stop()

	for {
		frameStart := time.Now()
		s.renderer.Clear()

		livingCells, density, status, isStagnant := updateGameState(s.grid)
		if isStagnant {
			stagnantCount++
		} else {
			stagnantCount = 0
		}

		displayGameStatus(generation, livingCells, density, status, config, s.grid, s.stats, lastRestartGen)
		if err = s.renderer.Display(s.grid); err != nil {
			return err
		}

		if config.MaxGenerations > 0 && generation >= config.MaxGenerations {
			fmt.Printf("\n🏁 Reached maximum generations limit (%d)\n", config.MaxGenerations)
			break
		}

		shouldRestart, restartReason := checkRestartConditions(livingCells, stagnantCount, generation, config)
		if shouldRestart && config.AutoRestart {
			fmt.Printf("🔄 Restarting due to %s...\n", restartReason)
			if err = s.restartGame(); err != nil {
				return err
			}
			lastRestartGen = generation
			stagnantCount = 0
		} else if stagnantCount >= 2 && stagnantCount < config.StagnationThreshold {
			// Inject some life to try to break the stagnation
			s.grid.InjectRandomLife(config.InjectionCount, s.palette, s.rng)
		}

		if err = applyEdits(s.grid, config.EditsFor(generation)); err != nil {
			return err
		}

		var summary model.Summary
		if summary, err = s.grid.NextGeneration(config); err != nil {
			return err
		}
		generation++
		s.stats.Update(generation, summary.Population, summary.Births, summary.Deaths, time.Since(frameStart))

		select {
		case <-sigChan:
			fmt.Println("\n🛑 Shutting down gracefully...")
			printFinalStats(generation, s)
			return nil
		case <-ticker.C:
		}
	}

	printFinalStats(generation, s)
	model.GridToPool(s.grid, s.pool)
	return nil
}

func printFinalStats(generation int, s *session) {
	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		generation, time.Since(s.stats.StartTime).Seconds())
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population, %d births, %d deaths\n",
		s.stats.GenerationsPerSecond, s.stats.AveragePopulation, s.stats.TotalBirths, s.stats.TotalDeaths)
}
