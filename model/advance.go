package model

import (
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-colorlife/rules"
	"github.com/sheikhrachel/go-colorlife/utils"
)

// staged is the next-generation record for one cell. Birth colors are captured
// while the current generation is still intact, so applying never reads neighbors.
type staged struct {
	alive bool
	color RGB
}

// Summary describes the generation produced by an advance
type Summary struct {
	Generation int
	Births     int
	Deaths     int
	Population int
}

// region is an inclusive rectangle of cells
type region struct {
	minX, maxX, minY, maxY int
}

func (g *Grid) fullRegion() region {
	return region{0, g.width - 1, 0, g.height - 1}
}

// stage evaluates the rules for every cell in r against the current generation
// and records the outcome in the staging buffer. Cell state is not touched.
func (g *Grid) stage(r region) error {
	parents := make([]RGB, 0, len(neighborOffsets))
	for y := r.minY; y <= r.maxY; y++ {
		for x := r.minX; x <= r.maxX; x++ {
			alive := g.cells[y][x].alive
			parents = g.appendLivingNeighborColors(parents[:0], x, y)

			next := staged{alive: rules.ApplyConwayRules(len(parents), alive)}
			if rules.IsBirth(len(parents), alive) {
				color, err := InheritColor(parents)
				if err != nil {
					return errors.Wrapf(err, "[stage] birth at (%d, %d)", x, y)
				}
				next.color = color
			}
			g.next[y][x] = next
		}
	}
	return nil
}

// apply moves the staged records for r into the current generation
func (g *Grid) apply(r region) (births, deaths int) {
	for y := r.minY; y <= r.maxY; y++ {
		for x := r.minX; x <= r.maxX; x++ {
			cell, next := &g.cells[y][x], g.next[y][x]
			switch {
			case cell.alive && next.alive:
				cell.survive()
			case cell.alive:
				cell.Kill()
				deaths++
			case next.alive:
				cell.birth(next.color)
				births++
			}
		}
	}
	return
}

func (g *Grid) finish(births, deaths int) Summary {
	g.generation++
	g.activeBounds.valid = false
	return Summary{
		Generation: g.generation,
		Births:     births,
		Deaths:     deaths,
		Population: g.CountLivingCells(),
	}
}

func (g *Grid) advanceRegion(r region) (Summary, error) {
	if err := g.stage(r); err != nil {
		return Summary{}, err
	}
	births, deaths := g.apply(r)
	return g.finish(births, deaths), nil
}

// Advance computes the next generation over the whole board. If staging fails
// the grid is left on the previous generation.
func (g *Grid) Advance() (Summary, error) {
	s, err := g.advanceRegion(g.fullRegion())
	if err != nil {
		return Summary{}, errors.Wrap(err, "[Advance] failed to advance generation")
	}
	return s, nil
}

// AdvanceBounded calculates next generation only in the active region plus a
// one cell margin; everything outside is dead with no living neighbors
func (g *Grid) AdvanceBounded() (Summary, error) {
	if !g.activeBounds.valid {
		g.calculateActiveBounds()
	}

	// If no active cells, nothing can change
	if !g.activeBounds.valid {
		return g.finish(0, 0), nil
	}

	r := region{
		minX: max(0, g.activeBounds.minX-1),
		maxX: min(g.width-1, g.activeBounds.maxX+1),
		minY: max(0, g.activeBounds.minY-1),
		maxY: min(g.height-1, g.activeBounds.maxY+1),
	}
	s, err := g.advanceRegion(r)
	if err != nil {
		return Summary{}, errors.Wrap(err, "[AdvanceBounded] failed to advance generation")
	}
	return s, nil
}

// rowShards splits the board into at most workers horizontal bands
func (g *Grid) rowShards(workers int) []region {
	var (
		shards        []region
		rowsPerWorker = (g.height + workers - 1) / workers // Ceiling division
	)
	for i := range workers {
		startRow := i * rowsPerWorker
		if startRow >= g.height {
			break
		}
		endRow := min(startRow+rowsPerWorker, g.height)
		shards = append(shards, region{0, g.width - 1, startRow, endRow - 1})
	}
	return shards
}

// AdvanceParallel calculates the next generation with row shards processed
// concurrently. All shards finish staging before any shard applies, and the
// call returns only once the whole board is on the new generation.
func (g *Grid) AdvanceParallel() (Summary, error) {
	shards := g.rowShards(max(1, runtime.NumCPU()))

	var stageGroup errgroup.Group
	for _, shard := range shards {
		stageGroup.Go(func() error {
			return g.stage(shard)
		})
	}
	if err := stageGroup.Wait(); err != nil {
		return Summary{}, errors.Wrap(err, "[AdvanceParallel] failed to stage generation")
	}

	var (
		applyGroup errgroup.Group
		births     = make([]int, len(shards))
		deaths     = make([]int, len(shards))
	)
	for i, shard := range shards {
		applyGroup.Go(func() error {
			births[i], deaths[i] = g.apply(shard)
			return nil
		})
	}
	if err := applyGroup.Wait(); err != nil {
		return Summary{}, errors.Wrap(err, "[AdvanceParallel] failed to apply generation")
	}

	var totalBirths, totalDeaths int
	for i := range shards {
		totalBirths += births[i]
		totalDeaths += deaths[i]
	}
	return g.finish(totalBirths, totalDeaths), nil
}

// NextGeneration advances the grid with the strategy selected by config
func (g *Grid) NextGeneration(config utils.Config) (Summary, error) {
	switch {
	case config.UseBoundedGrid:
		return g.AdvanceBounded()
	case config.UseParallel:
		return g.AdvanceParallel()
	default:
		return g.Advance()
	}
}
