package model

import "github.com/sheikhrachel/go-colorlife/rules"

// Cell is a single grid unit: alive flag, inherited color and maturity
type Cell struct {
	alive    bool
	color    RGB
	maturity uint8 // tenths, see rules.BirthMaturity
}

func newCell() Cell {
	return Cell{color: DefaultColor, maturity: rules.BirthMaturity}
}

// Alive reports whether the cell is alive
func (c Cell) Alive() bool {
	return c.alive
}

// Color returns the last color the cell held; dead cells keep it until overwritten
func (c Cell) Color() RGB {
	return c.color
}

// Maturity returns the cell's maturity in [0.1, 1.0]
func (c Cell) Maturity() float64 {
	return rules.MaturityValue(c.maturity)
}

/*
Toggle applies a user edit with the requested color:
  - dead: born with the requested color and birth maturity
  - alive with the same color: killed
  - alive with another color: recolored, maturity untouched
*/
func (c *Cell) Toggle(requested RGB) {
	switch {
	case !c.alive:
		c.birth(requested)
	case c.color == requested:
		c.Kill()
	default:
		c.color = requested
	}
}

// Kill marks the cell dead and resets its maturity. Idempotent.
func (c *Cell) Kill() {
	c.alive = false
	c.maturity = rules.BirthMaturity
}

func (c *Cell) birth(color RGB) {
	c.alive = true
	c.color = color
	c.maturity = rules.BirthMaturity
}

func (c *Cell) survive() {
	c.maturity = rules.NextMaturity(c.maturity)
}
