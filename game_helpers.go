package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-colorlife/model"
	"github.com/sheikhrachel/go-colorlife/utils"
)

// session is everything the driver loop owns; it is the only writer of grid
type session struct {
	config   utils.Config
	palette  []model.RGB
	rng      *rand.Rand
	grid     *model.Grid
	pool     *model.GridPool
	renderer *model.TerminalRenderer
	stats    *utils.Stats
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config) (*session, error) {
	palette, err := model.ParsePalette(config.Palette)
	if err != nil {
		return nil, errors.Wrap(err, "[initializeGame] invalid palette")
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &session{
		config:   config,
		palette:  palette,
		rng:      rand.New(rand.NewSource(seed)),
		renderer: model.NewTerminalRenderer(),
		stats:    utils.NewStats(),
	}
	if config.UseMemoryPool {
		s.pool = model.NewGridPool()
	}

	if s.grid, err = s.newBoard(); err != nil {
		return nil, errors.Wrap(err, "[initializeGame] failed to build board")
	}
	return s, nil
}

// newBoard builds a freshly seeded board, from the pool when one is configured
func (s *session) newBoard() (*model.Grid, error) {
	var (
		grid *model.Grid
		err  error
	)
	if s.pool != nil {
		grid, err = s.pool.Get(s.config.Width, s.config.Height)
	} else {
		grid, err = model.NewGrid(s.config.Width, s.config.Height)
	}
	if err != nil {
		return nil, err
	}

	grid.ResetWithInterestingPatterns(s.config.RandomDensity, s.palette, s.rng)
	if err = applySeeds(grid, s.config.Seeds); err != nil {
		model.GridToPool(grid, s.pool)
		return nil, err
	}
	return grid, nil
}

// applySeeds brings the configured cells to life, recoloring any already alive
func applySeeds(grid *model.Grid, seeds []utils.SeedCell) error {
	for _, seed := range seeds {
		color, err := model.ParseHex(seed.Color)
		if err != nil {
			return errors.Wrapf(err, "[applySeeds] seed at (%d, %d)", seed.X, seed.Y)
		}
		cell, err := grid.CellAt(seed.X, seed.Y)
		if err != nil {
			return errors.Wrap(err, "[applySeeds] failed to read seed cell")
		}
		if cell.Alive() && cell.Color() == color {
			continue
		}
		if err = grid.SetCell(seed.X, seed.Y, model.Toggle(color)); err != nil {
			return errors.Wrap(err, "[applySeeds] failed to seed cell")
		}
	}
	return nil
}

// applyEdits applies the scripted edits due before the grid's next generation
func applyEdits(grid *model.Grid, edits []utils.Edit) error {
	for _, edit := range edits {
		action := model.Kill()
		if !edit.Kill {
			color, err := model.ParseHex(edit.Color)
			if err != nil {
				return errors.Wrapf(err, "[applyEdits] edit at (%d, %d)", edit.X, edit.Y)
			}
			action = model.Toggle(color)
		}
		if err := grid.SetCell(edit.X, edit.Y, action); err != nil {
			return errors.Wrap(err, "[applyEdits] failed to apply edit")
		}
	}
	return nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, grid *model.Grid) {
	fmt.Printf("Features: Memory Pool: %v, Bounded: %v, Parallel: %v\n",
		config.UseMemoryPool, config.UseBoundedGrid, config.UseParallel)
	fmt.Printf("Grid: %dx%d | Palette: %d colors | Initial living cells: %d\n",
		grid.GetWidth(), grid.GetHeight(), len(config.Palette), grid.CountLivingCells())
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
	time.Sleep(2 * time.Second)
}

// updateGameState checks stagnation against history, then records the current state
func updateGameState(grid *model.Grid) (int, float64, string, bool) {
	livingCells := grid.CountLivingCells()
	density := float64(livingCells) / float64(grid.GetWidth()*grid.GetHeight()) * 100

	isStagnant := grid.IsStagnant()
	grid.UpdateHistory()

	status := "Active"
	if isStagnant {
		status = "Stagnant"
	}
	if livingCells == 0 {
		status = "Extinct"
	}

	return livingCells, density, status, isStagnant
}

// displayGameStatus shows the current game status
func displayGameStatus(
	generation, livingCells int,
	density float64,
	status string,
	config utils.Config,
	grid *model.Grid,
	stats *utils.Stats,
	lastRestartGen int,
) {

	// Show bounding box info for bounded grids
	boundingInfo := ""
	if config.UseBoundedGrid {
		boundingInfo = fmt.Sprintf(" | Bounding box: %d cells", grid.GetBoundingBoxSize())
	}

	fmt.Printf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s%s\n",
		generation, livingCells, density, status, boundingInfo)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Births: %d | Deaths: %d | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.TotalBirths, stats.TotalDeaths,
		time.Since(stats.StartTime).Seconds())

	// Show time since last restart
	if generation > lastRestartGen {
		fmt.Printf("Generations since restart: %d\n", generation-lastRestartGen)
	}
	fmt.Println()
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(
	livingCells, stagnantCount, generation int,
	config utils.Config,
) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if config.StagnationThreshold > 0 && stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	if generation > 0 && generation%200 == 0 {
		return true, "periodic refresh"
	}
	return false, ""
}

// restartGame swaps the current board for a freshly seeded one
func (s *session) restartGame() error {
	fmt.Printf("\n🔄 Restarting...\n")
	time.Sleep(1 * time.Second)

	grid, err := s.newBoard()
	if err != nil {
		return errors.Wrap(err, "[restartGame] failed to build board")
	}
	model.GridToPool(s.grid, s.pool)
	s.grid = grid

	fmt.Printf("✨ New patterns loaded! Living cells: %d\n", grid.CountLivingCells())
	time.Sleep(2 * time.Second)
	return nil
}
