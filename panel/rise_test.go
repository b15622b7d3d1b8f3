package panel

import (
	"math"
	"testing"
	"time"
)

func TestRiseSpeedCurve(t *testing.T) {
	cfg := DefaultConfig()
	r := newRiseState()

	r.level = 1
	if got := r.speed(cfg); math.Abs(got-cfg.RiseBase) > 1e-9 {
		t.Errorf("wanted level 1 speed %v, got %v", cfg.RiseBase, got)
	}
	r.level = cfg.MaxLevel
	want := cfg.RiseBase * cfg.SpeedGrowth
	if got := r.speed(cfg); math.Abs(got-want) > 1e-9 {
		t.Errorf("wanted max level speed %v, got %v", want, got)
	}
	// the curve is monotonic
	r.level = 50
	mid := r.speed(cfg)
	if mid <= cfg.RiseBase || mid >= want {
		t.Errorf("wanted mid-level speed between the endpoints, got %v", mid)
	}
}

func TestRiseLevelTimer(t *testing.T) {
	g := NewTestGrid()
	run(g, 2*g.cfg.LevelInterval+time.Second)
	if g.rise.level != 3 {
		t.Errorf("wanted level 3 after two level intervals, got %d", g.rise.level)
	}
}

func TestSwapFreezesRiseIntoDebt(t *testing.T) {
	g := NewTestGrid()
	g.PlaceTile(2, 3, 0)
	g.PlaceTile(3, 3, 1)
	g.SetCursor(2, 3)
	g.Swap()

	g.stepRise(50 * time.Millisecond)
	if g.rise.debt != 50*time.Millisecond {
		t.Errorf("wanted 50ms of debt during the swap, got %v", g.rise.debt)
	}

	// once the swap is done the catch-up multiplier pays the debt down by
	// the extra distance covered, (mult-1) * dt per tick
	g.anims = nil
	g.stepRise(10 * time.Millisecond)
	if want := 30 * time.Millisecond; g.rise.debt != want {
		t.Errorf("wanted debt paid down to %v, got %v", want, g.rise.debt)
	}
}

func TestBreathingRoom(t *testing.T) {
	g := NewTestGrid()
	g.grantBreathing(2)
	if want := 2 * g.cfg.BreathingPerTile; g.rise.breathing != want {
		t.Errorf("wanted %v breathing, got %v", want, g.rise.breathing)
	}
	g.grantBreathing(100)
	if g.rise.breathing != g.cfg.BreathingMax {
		t.Errorf("wanted breathing capped at %v, got %v", g.cfg.BreathingMax, g.rise.breathing)
	}

	// breathing suspends the rise without accruing debt
	g.stepRise(time.Second)
	if g.rise.debt != 0 {
		t.Errorf("wanted no debt during breathing, got %v", g.rise.debt)
	}
	if g.rise.breathing != g.cfg.BreathingMax-time.Second {
		t.Errorf("wanted breathing consumed, got %v", g.rise.breathing)
	}
}

func TestGracePeriodGameOver(t *testing.T) {
	g := NewTestGrid()
	g.PlaceTile(0, g.h-1, 0)

	g.stepRise(16 * time.Millisecond)
	if !g.rise.graceActive {
		t.Fatal("wanted the grace countdown to start")
	}
	if g.gameOver {
		t.Fatal("wanted the game still running inside the grace period")
	}

	g.stepRise(g.cfg.GracePeriod)
	if !g.gameOver {
		t.Error("wanted game over after the grace period expired")
	}
	if got := countEvents(g, EventGameOver); got != 1 {
		t.Errorf("wanted 1 game over event, got %d", got)
	}
}

func TestGraceResetsWhenTopClears(t *testing.T) {
	g := NewTestGrid()
	g.PlaceTile(0, g.h-1, 0)
	g.stepRise(time.Second)
	if !g.rise.graceActive {
		t.Fatal("wanted the grace countdown to start")
	}

	g.cells[g.h-1][0].tile = nil
	g.stepRise(16 * time.Millisecond)
	if g.rise.graceActive {
		t.Error("wanted the grace countdown cleared once the top row emptied")
	}
	if g.gameOver {
		t.Error("wanted the game still running")
	}
}

func TestInjectRowShiftsEverything(t *testing.T) {
	g := NewTestGrid()
	a := g.PlaceTile(0, 0, 0)
	gb := g.PlaceGarbage(2, 1, 2, 1)
	b := g.PlaceTile(4, 5, 1)
	g.startFall(b, 8, 5, false)
	cursorY := g.cursorY
	nextRow := make([]TileType, g.w)
	for x, tl := range g.preload[0] {
		nextRow[x] = tl.Type
	}

	g.injectRow()

	if a.Y != 1 || g.cells[1][0].tile != a {
		t.Errorf("wanted the settled tile shifted to row 1, got %d", a.Y)
	}
	if gb.Y != 2 || g.cells[2][2].garbage != gb {
		t.Errorf("wanted the garbage anchor shifted to row 2, got %d", gb.Y)
	}
	if b.Y != 6 {
		t.Errorf("wanted the faller's committed row shifted to 6, got %d", b.Y)
	}
	if fa := g.animFor(b); fa == nil || fa.toY != 6 {
		t.Error("wanted the fall animation shifted in lockstep")
	}
	for x := 0; x < g.w; x++ {
		tl := g.cells[0][x].tile
		if tl == nil || tl.Type != nextRow[x] {
			t.Fatalf("wanted the preload row surfaced at the bottom, col %d differs", x)
		}
		if tl.Y != 0 {
			t.Errorf("wanted surfaced tile row 0, got %d", tl.Y)
		}
	}
	if g.cursorY != cursorY+1 {
		t.Errorf("wanted the cursor to ride up to %d, got %d", cursorY+1, g.cursorY)
	}
	if len(g.preload) != g.cfg.PreloadHeight {
		t.Errorf("wanted the preload buffer refilled to %d rows, got %d", g.cfg.PreloadHeight, len(g.preload))
	}
	if got := countEvents(g, EventRowRisen); got != 1 {
		t.Errorf("wanted 1 row risen event, got %d", got)
	}
	if !g.resolver.scanQueued {
		t.Error("wanted a match scan queued after the injection")
	}
	if !g.checkInvariants() {
		t.Error("wanted grid invariants to hold after the injection")
	}
}

func TestInjectRowRefusedWhenTopOccupied(t *testing.T) {
	g := NewTestGrid()
	g.PlaceTile(0, g.h-1, 0)
	a := g.PlaceTile(1, 0, 1)

	g.injectRow()
	if a.Y != 0 {
		t.Errorf("wanted the injection skipped, tile moved to row %d", a.Y)
	}
}

func TestFastRise(t *testing.T) {
	cfg := TestConfig()
	cfg.RiseBase = 0.5
	g := NewGrid(cfg, nil)
	g.FastRise()
	if !g.rise.fastRise {
		t.Fatal("wanted fast rise armed")
	}

	// 0.5 cells/s at 30x covers a full row well within a second
	run(g, time.Second)
	if g.rise.fastRise {
		t.Error("wanted fast rise cleared after a row surfaced")
	}
	if got := countEvents(g, EventRowRisen); got == 0 {
		t.Error("wanted at least one row to surface")
	}
}
