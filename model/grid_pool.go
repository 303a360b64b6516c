package model

import (
	"sync"

	"github.com/pkg/errors"
)

// GridToPool returns a grid to the pool for reuse
func GridToPool(grid *Grid, pool *GridPool) {
	if pool == nil || grid == nil {
		return
	}

	pool.Put(grid)
}

// GridPool recycles grids across restarts and board resizes
type GridPool struct {
	pool sync.Pool
}

func NewGridPool() *GridPool {
	return &GridPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Grid{}
			},
		},
	}
}

// Get retrieves a grid from the pool, resetting its dimensions
func (p *GridPool) Get(width, height int) (*Grid, error) {
	g := p.pool.Get().(*Grid)
	if err := g.Reset(width, height); err != nil {
		p.pool.Put(g)
		return nil, errors.Wrap(err, "[GridPool.Get] failed to reset pooled grid")
	}
	return g, nil
}

// Put returns a grid to the pool, clearing its state
func (p *GridPool) Put(g *Grid) {
	g.Clear()
	p.pool.Put(g)
}
