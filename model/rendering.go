package model

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/pkg/errors"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	ansiReset = "\x1b[0m"

	macosClearCmd = "clear"

	// minBrightness keeps newborn cells visible
	minBrightness = 0.4
)

// TerminalRenderer draws the grid with 24-bit ANSI colors, dimming young cells
type TerminalRenderer struct {
	Out io.Writer
}

// NewTerminalRenderer returns a renderer writing to stdout
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{Out: os.Stdout}
}

// CellColor is the color a living cell is drawn with
func CellColor(c Cell) RGB {
	return c.color.Shade(minBrightness + (1-minBrightness)*c.Maturity())
}

// Display renders the grid. It must not be called while an advance is running.
func (r *TerminalRenderer) Display(g *Grid) error {
	w := bufio.NewWriter(r.Out)
	for y := range g.height {
		for x := range g.width {
			cell := g.cells[y][x]
			if !cell.alive {
				w.WriteString(gridPosEmpty)
				continue
			}
			c := CellColor(cell)
			fmt.Fprintf(w, "\x1b[38;2;%d;%d;%dm%s%s", c.R, c.G, c.B, gridPosBlock, ansiReset)
		}
		w.WriteByte('\n')
	}
	return errors.Wrap(w.Flush(), "[Display] failed to write frame")
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(macosClearCmd)
	cmd.Stdout = r.Out
	if err := cmd.Run(); err != nil {
		fmt.Fprintln(r.Out, "Error clearing terminal:", err)
	}
}
