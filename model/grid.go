package model

import (
	"crypto/md5"
	"fmt"
	"iter"
	"math/rand"
	"slices"

	"github.com/pkg/errors"
)

// historySize is how many recent alive-patterns are kept for cycle detection
const historySize = 5

// neighborOffsets lists the 8 compass neighbors clockwise starting at due left.
// The order fixes which parents contribute which color channel on birth.
var neighborOffsets = [8]struct{ dx, dy int }{
	{-1, 0},  // left
	{-1, -1}, // top-left
	{0, -1},  // top
	{1, -1},  // top-right
	{1, 0},   // right
	{1, 1},   // bottom-right
	{0, 1},   // bottom
	{-1, 1},  // bottom-left
}

// Grid represents the game board: the current generation plus a staging buffer
// written during Advance and applied once the whole board has been evaluated
type Grid struct {
	width      int
	height     int
	cells      [][]Cell
	next       [][]staged
	generation int
	history    []string // Store recent grid states for cycle detection

	// Optional bounded grid optimization
	activeBounds struct {
		minX, maxX, minY, maxY int
		valid                  bool
	}
}

// NewGrid creates a new grid with all cells dead, default color and birth maturity
func NewGrid(width, height int) (*Grid, error) {
	g := &Grid{}
	if err := g.Reset(width, height); err != nil {
		return nil, errors.Wrap(err, "[NewGrid] failed to build grid")
	}
	return g, nil
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// Generation returns how many generations have been advanced since the last reset
func (g *Grid) Generation() int {
	return g.generation
}

// Reset resizes the grid and kills every cell
func (g *Grid) Reset(width, height int) error {
	if width < 1 || height < 1 {
		return errors.Wrapf(ErrInvalidArgument, "[Reset] grid dimensions must be >= 1, got %dx%d", width, height)
	}
	g.width = width
	g.height = height
	g.generation = 0
	g.history = nil
	g.activeBounds.valid = false

	// Resize cells if needed
	if len(g.cells) != height {
		g.cells = make([][]Cell, height)
		g.next = make([][]staged, height)
	}
	for y := range g.cells {
		if len(g.cells[y]) != width {
			g.cells[y] = make([]Cell, width)
			g.next[y] = make([]staged, width)
		}
		for x := range g.cells[y] {
			g.cells[y][x] = newCell()
		}
	}
	return nil
}

// Clear kills every cell
func (g *Grid) Clear() {
	for y := range g.height {
		for x := range g.width {
			g.cells[y][x].Kill()
		}
	}
	g.history = nil
	g.activeBounds.valid = false
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// CellAt returns a copy of the cell at (x, y)
func (g *Grid) CellAt(x, y int) (Cell, error) {
	if !g.inBounds(x, y) {
		return Cell{}, errors.Wrapf(ErrInvalidArgument, "[CellAt] (%d, %d) outside %dx%d grid", x, y, g.width, g.height)
	}
	return g.cells[y][x], nil
}

// ActionKind selects what SetCell does to a cell
type ActionKind uint8

const (
	ActionToggle ActionKind = iota + 1
	ActionKill
)

// Action is a manual edit applied by SetCell
type Action struct {
	Kind  ActionKind
	Color RGB
}

// Toggle returns an action that toggles a cell with the requested color
func Toggle(color RGB) Action {
	return Action{Kind: ActionToggle, Color: color}
}

// Kill returns an action that kills a cell
func Kill() Action {
	return Action{Kind: ActionKill}
}

// SetCell applies a manual edit immediately, outside of the generation advance
func (g *Grid) SetCell(x, y int, action Action) error {
	if !g.inBounds(x, y) {
		return errors.Wrapf(ErrInvalidArgument, "[SetCell] (%d, %d) outside %dx%d grid", x, y, g.width, g.height)
	}
	switch action.Kind {
	case ActionToggle:
		g.cells[y][x].Toggle(action.Color)
	case ActionKill:
		g.cells[y][x].Kill()
	default:
		return errors.Wrapf(ErrInvalidArgument, "[SetCell] unknown action kind: %d", action.Kind)
	}
	g.activeBounds.valid = false
	return nil
}

// livingNeighbors yields the alive in-bounds neighbors of (x, y) in neighborOffsets order
func (g *Grid) livingNeighbors(x, y int) iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for _, o := range neighborOffsets {
			nx, ny := x+o.dx, y+o.dy
			if !g.inBounds(nx, ny) || !g.cells[ny][nx].alive {
				continue
			}
			if !yield(g.cells[ny][nx]) {
				return
			}
		}
	}
}

// LivingNeighborCount counts alive cells among the up to 8 in-bounds neighbors
func (g *Grid) LivingNeighborCount(x, y int) (count int) {
	for range g.livingNeighbors(x, y) {
		count++
	}
	return
}

// LivingNeighbors returns the alive neighbors of (x, y) clockwise from due left
func (g *Grid) LivingNeighbors(x, y int) []Cell {
	return slices.Collect(g.livingNeighbors(x, y))
}

// appendLivingNeighborColors collects parent colors into buf, used by Advance
func (g *Grid) appendLivingNeighborColors(buf []RGB, x, y int) []RGB {
	for c := range g.livingNeighbors(x, y) {
		buf = append(buf, c.color)
	}
	return buf
}

// calculateActiveBounds calculates the bounding box of living cells
func (g *Grid) calculateActiveBounds() {
	g.activeBounds.valid = false

	for y := range g.height {
		for x := range g.width {
			if !g.cells[y][x].alive {
				continue
			}
			if !g.activeBounds.valid {
				g.activeBounds.minX, g.activeBounds.maxX = x, x
				g.activeBounds.minY, g.activeBounds.maxY = y, y
				g.activeBounds.valid = true
				continue
			}
			g.activeBounds.minX = min(g.activeBounds.minX, x)
			g.activeBounds.maxX = max(g.activeBounds.maxX, x)
			g.activeBounds.minY = min(g.activeBounds.minY, y)
			g.activeBounds.maxY = max(g.activeBounds.maxY, y)
		}
	}
}

// GetBoundingBoxSize returns the size of the active region
func (g *Grid) GetBoundingBoxSize() int {
	if !g.activeBounds.valid {
		g.calculateActiveBounds()
	}
	if !g.activeBounds.valid {
		return 0
	}
	return (g.activeBounds.maxX - g.activeBounds.minX + 1) *
		(g.activeBounds.maxY - g.activeBounds.minY + 1)
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x].alive {
				count++
			}
		}
	}
	return
}

// GetGridHash returns an MD5 hash of the alive pattern, colors excluded
func (g *Grid) GetGridHash() string {
	h := md5.New()
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x].alive {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// UpdateHistory adds current state to history and maintains size
func (g *Grid) UpdateHistory() {
	g.history = append(g.history, g.GetGridHash())
	if len(g.history) > historySize {
		g.history = g.history[1:]
	}
}

// IsStagnant checks if the grid is static or cycling with period 1 to 3.
// Call it before UpdateHistory records the current state.
func (g *Grid) IsStagnant() bool {
	if len(g.history) < 3 {
		return false
	}

	currentHash := g.GetGridHash()
	for back := 1; back <= 3; back++ {
		if g.history[len(g.history)-back] == currentHash {
			return true
		}
	}
	return false
}

// place brings a dead cell to life. Pattern cells that fall outside the grid
// or land on a living cell are skipped.
func (g *Grid) place(x, y int, color RGB) {
	if !g.inBounds(x, y) || g.cells[y][x].alive {
		return
	}
	g.cells[y][x].birth(color)
	g.activeBounds.valid = false
}

func pick(rng *rand.Rand, palette []RGB) RGB {
	if len(palette) == 0 {
		return DefaultColor
	}
	return palette[rng.Intn(len(palette))]
}

// InjectRandomLife brings up to count random dead cells to life to break stagnation
func (g *Grid) InjectRandomLife(count int, palette []RGB, rng *rand.Rand) {
	for range count {
		g.place(rng.Intn(g.width), rng.Intn(g.height), pick(rng, palette))
	}
}

// Randomize brings each dead cell to life with the given probability; living
// cells keep their color and maturity
func (g *Grid) Randomize(density float64, palette []RGB, rng *rand.Rand) {
	for y := range g.height {
		for x := range g.width {
			if rng.Float64() < density {
				g.place(x, y, pick(rng, palette))
			}
		}
	}
}

// AddGlider adds a glider pattern at the specified position
func (g *Grid) AddGlider(startX, startY int, color RGB) {
	pattern := [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}

	for y, row := range pattern {
		for x, cell := range row {
			if cell {
				g.place(startX+x, startY+y, color)
			}
		}
	}
}

// AddOscillator adds a horizontal blinker pattern
func (g *Grid) AddOscillator(startX, startY int, color RGB) {
	for dx := range 3 {
		g.place(startX+dx, startY, color)
	}
}

// ResetWithInterestingPatterns clears the grid and seeds gliders, blinkers and random life
func (g *Grid) ResetWithInterestingPatterns(density float64, palette []RGB, rng *rand.Rand) {
	g.Clear()
	g.generation = 0

	if g.width >= 10 && g.height >= 10 {
		g.AddGlider(5, 5, pick(rng, palette))
		if g.width >= 20 && g.height >= 15 {
			g.AddGlider(g.width-8, 5, pick(rng, palette))
		}

		g.AddOscillator(g.width/4, g.height/4, pick(rng, palette))
		if g.width >= 30 {
			g.AddOscillator(3*g.width/4, 3*g.height/4, pick(rng, palette))
		}
	}

	g.Randomize(density, palette, rng)
}
