package panel

import (
	"testing"
	"time"
)

func TestFindSpawnColumn(t *testing.T) {
	t.Run("empty grid spawns centered", func(t *testing.T) {
		g := NewTestGrid()
		if got := g.findSpawnColumn(3, 1); got != 1 {
			t.Errorf("wanted centered column 1, got %d", got)
		}
		if got := g.findSpawnColumn(6, 2); got != 0 {
			t.Errorf("wanted full width at column 0, got %d", got)
		}
	})

	t.Run("blocked center falls back to a left to right scan", func(t *testing.T) {
		g := NewTestGrid()
		g.PlaceTile(1, g.h-1, 0)
		if got := g.findSpawnColumn(3, 1); got != 2 {
			t.Errorf("wanted the first free window at column 2, got %d", got)
		}
	})

	t.Run("no window fits", func(t *testing.T) {
		g := NewTestGrid()
		g.PlaceTile(2, g.h-1, 0)
		if got := g.findSpawnColumn(6, 1); got != -1 {
			t.Errorf("wanted -1 for a blocked spawn, got %d", got)
		}
	})
}

func TestReceiveAttackSpawnsGarbage(t *testing.T) {
	g := NewTestGrid()
	g.ReceiveAttack(2000)

	if len(g.garbage) != 1 {
		t.Fatalf("wanted 1 garbage block, got %d", len(g.garbage))
	}
	gb := g.garbage[0]
	if gb.Width != 6 || gb.Height != 2 {
		t.Errorf("wanted a 6x2 block, got %dx%d", gb.Width, gb.Height)
	}
	if !gb.Falling {
		t.Error("wanted the block to be falling toward the stack")
	}
	if got := countEvents(g, EventGarbageReceived); got != 1 {
		t.Errorf("wanted 1 received event, got %d", got)
	}
}

func TestReceiveAttackDefersDuringCombo(t *testing.T) {
	g := NewTestGrid()
	g.PlaceTile(0, 0, 0)
	g.PlaceTile(1, 0, 0)
	g.PlaceTile(2, 0, 0)
	g.resolver.requestScan()
	g.Step(g.cfg.TickInterval) // enters highlight, resolver active

	g.ReceiveAttack(2000)
	if len(g.garbage) != 0 {
		t.Fatalf("wanted no blocks mid-combo, got %d", len(g.garbage))
	}
	if g.PendingGarbage() != 2000 {
		t.Errorf("wanted 2000 pending, got %d", g.PendingGarbage())
	}

	// the pool materializes when the combo ends, after the combo's own
	// attack of 30 countered part of it: 1970 packs into three blocks
	run(g, 2*time.Second)
	if len(g.garbage) != 3 {
		t.Errorf("wanted 3 blocks spawned after the combo, got %d", len(g.garbage))
	}
}

func TestSpawnQueueDeliversAllBlocks(t *testing.T) {
	// each block falls out of the top rows before the next window search, so
	// a multi-block delivery on an open grid loses nothing
	cfg := TestConfig()
	cfg.GarbageCosts = []GarbageCost{{Width: 6, Height: 1, Cost: 1000}}
	g := NewGrid(cfg, nil)

	g.ReceiveAttack(3000)

	if len(g.garbage) != 3 {
		t.Fatalf("wanted all 3 blocks spawned, got %d", len(g.garbage))
	}
	if got := countEvents(g, EventGarbageDropped); got != 0 {
		t.Errorf("wanted no dropped events on an open grid, got %d", got)
	}
	// the blocks stack bottom-up as they land
	rows := map[int]bool{}
	for _, gb := range g.garbage {
		rows[gb.Y] = true
	}
	for y := 0; y < 3; y++ {
		if !rows[y] {
			t.Errorf("wanted a block resting at row %d", y)
		}
	}
}

func TestGarbageQueueOverflow(t *testing.T) {
	cfg := TestConfig()
	cfg.GarbageCosts = []GarbageCost{{Width: 1, Height: 1, Cost: 250}}
	cfg.GarbageQueueMax = 2
	g := NewGrid(cfg, nil)

	g.ReceiveAttack(250 * 5)

	if len(g.garbage) != 2 {
		t.Errorf("wanted 2 blocks spawned, got %d", len(g.garbage))
	}
	if got := countEvents(g, EventGarbageDropped); got != 3 {
		t.Errorf("wanted 3 dropped events, got %d", got)
	}
}

func TestGarbageDroppedWithoutSpawnWindow(t *testing.T) {
	g := NewTestGrid()
	for x := 0; x < g.w; x++ {
		g.PlaceTile(x, g.h-1, TileType(x%3))
	}
	g.ReceiveAttack(250)

	if len(g.garbage) != 0 {
		t.Errorf("wanted no blocks with the top row full, got %d", len(g.garbage))
	}
	if got := countEvents(g, EventGarbageDropped); got != 1 {
		t.Errorf("wanted 1 dropped event, got %d", got)
	}
}

func TestGarbageConversion(t *testing.T) {
	//		0 1 2 3 4 5			0 1 2 3 4 5
	//	1	# # # . . .	->	1	. . . . . .
	//	0	A . . . . .		0	t t t . . .		t = spawned tiles
	g := NewTestGrid()
	gb := g.PlaceGarbage(0, 1, 3, 1)
	a := g.PlaceTile(0, 0, 0)

	g.popTile(a)
	if !gb.Converting {
		t.Fatal("wanted the block converting after the adjacent pop")
	}

	// nothing happens until the conversion delay has elapsed
	g.stepGarbage(g.cfg.ConversionDelay / 2)
	if len(g.garbage) != 1 {
		t.Fatal("wanted the block still present mid-delay")
	}

	g.stepGarbage(g.cfg.ConversionDelay)
	if len(g.garbage) != 0 {
		t.Fatalf("wanted the block gone, got %d", len(g.garbage))
	}
	for x := 0; x < 3; x++ {
		if g.cells[0][x].tile == nil {
			t.Errorf("wanted a tile dropped into column %d", x)
		}
		if g.cells[1][x].garbage != nil {
			t.Errorf("wanted the garbage reference cleared at column %d", x)
		}
	}
}
