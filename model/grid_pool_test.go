package model

import (
	"testing"

	"github.com/pkg/errors"
)

func TestGridPool(t *testing.T) {
	pool := NewGridPool()

	g, err := pool.Get(6, 4)
	if err != nil {
		t.Fatal(err)
	}
	mustToggle(t, g, red, [2]int{1, 1}, [2]int{2, 1}, [2]int{3, 1})
	mustAdvance(t, g, (*Grid).Advance)
	GridToPool(g, pool)

	resized, err := pool.Get(3, 8)
	if err != nil {
		t.Fatal(err)
	}
	if resized.GetWidth() != 3 || resized.GetHeight() != 8 {
		t.Fatalf("pooled grid is %dx%d, want 3x8", resized.GetWidth(), resized.GetHeight())
	}
	if resized.CountLivingCells() != 0 || resized.Generation() != 0 {
		t.Error("pooled grid should come back empty at generation 0")
	}
	mustToggle(t, resized, red, [2]int{2, 7})

	if _, err = pool.Get(0, 3); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Get(0, 3) err = %v, want ErrInvalidArgument", err)
	}

	// nil pool is a no-op
	GridToPool(resized, nil)
}
