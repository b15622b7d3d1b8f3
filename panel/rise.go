package panel

import (
	"math"
	"time"
)

// riseState is the continuous upward motion of a grid: fractional offset,
// speed level, the grace countdown once the stack reaches the top, and the
// time debt owed after swap pauses.
type riseState struct {
	offset float64 // fractional rise, in cells
	level  int

	levelTimer time.Duration
	fastRise   bool

	// debt accrues while a swap freezes the rise; it is paid back by
	// rising faster than normal afterwards.
	debt time.Duration

	breathing time.Duration

	graceActive bool
	grace       time.Duration
}

func newRiseState() *riseState {
	return &riseState{level: 1}
}

// speed is cells per second at the current level: RiseBase at level 1
// growing exponentially to RiseBase*SpeedGrowth at MaxLevel.
func (r *riseState) speed(cfg *Config) float64 {
	if cfg.MaxLevel <= 1 {
		return cfg.RiseBase
	}
	exp := float64(r.level-1) / float64(cfg.MaxLevel-1)
	return cfg.RiseBase * math.Pow(cfg.SpeedGrowth, exp)
}

// grantBreathing rewards a scoring step with a pause of the rise, in
// proportion to the tiles matched and capped.
func (g *Grid) grantBreathing(tiles int) {
	b := g.rise.breathing + time.Duration(tiles)*g.cfg.BreathingPerTile
	if b > g.cfg.BreathingMax {
		b = g.cfg.BreathingMax
	}
	g.rise.breathing = b
}

// stepRise advances the offset, injects surfaced rows and runs the grace
// countdown. Order matters: the grace check sees the stack as the player
// does, before any new row appears.
func (g *Grid) stepRise(dt time.Duration) {
	r := g.rise
	cfg := g.cfg

	if g.topRowOccupied() {
		if !r.graceActive {
			r.graceActive = true
			r.grace = cfg.GracePeriod
		}
		// the countdown holds while matches are being resolved
		if !g.resolver.active() {
			r.grace -= dt
			if r.grace <= 0 {
				g.setGameOver()
				return
			}
		}
	} else if r.graceActive {
		r.graceActive = false
		r.grace = 0
	}

	r.levelTimer += dt
	for r.levelTimer >= cfg.LevelInterval && r.level < cfg.MaxLevel {
		r.levelTimer -= cfg.LevelInterval
		r.level++
	}

	if r.breathing > 0 {
		r.breathing -= dt
		if r.breathing < 0 {
			r.breathing = 0
		}
		return
	}
	if r.graceActive || g.resolver.active() {
		return
	}
	if g.swapInFlight() {
		// the only suspension the player owes back
		r.debt += dt
		return
	}

	mult := 1.0
	if r.fastRise {
		mult = cfg.FastRiseMultiplier
	}
	if r.debt > 0 {
		mult *= cfg.CatchUpMultiplier
		// only the distance beyond normal speed pays the debt down
		repay := time.Duration(float64(dt) * (cfg.CatchUpMultiplier - 1))
		if repay >= r.debt {
			r.debt = 0
		} else {
			r.debt -= repay
		}
	}

	r.offset += r.speed(cfg) * mult * dt.Seconds()
	for r.offset >= 1 {
		r.offset--
		g.injectRow()
		r.fastRise = false
		if g.gameOver {
			return
		}
	}
}

// topRowOccupied reports a settled occupant in the topmost row.
func (g *Grid) topRowOccupied() bool {
	for x := 0; x < g.w; x++ {
		c := g.cells[g.h-1][x]
		if c.garbage != nil {
			return true
		}
		if c.tile != nil && c.tile.State == Idle && !c.tile.processing {
			return true
		}
	}
	return false
}

// injectRow shifts the whole grid up one logical row, surfaces the next
// preload row at the bottom and spawns a fresh hidden one. Garbage anchors
// and in-flight animations reflow in lockstep so nothing tears.
func (g *Grid) injectRow() {
	for x := 0; x < g.w; x++ {
		if !g.cells[g.h-1][x].empty() {
			g.logger.Error("row injection with occupied top row skipped", "col", x)
			return
		}
	}

	for y := g.h - 1; y >= 1; y-- {
		for x := 0; x < g.w; x++ {
			g.cells[y][x] = g.cells[y-1][x]
			if t := g.cells[y][x].tile; t != nil {
				t.Y = y
			}
		}
	}
	for _, gb := range g.garbage {
		gb.Y++
		gb.fromY++
	}
	for _, a := range g.anims {
		a.toY++
		a.fromY++
	}

	next := g.preload[0]
	g.preload = g.preload[1:]
	for x := 0; x < g.w; x++ {
		next[x].Y = 0
		g.cells[0][x] = cell{tile: next[x]}
	}
	g.preload = append(g.preload, g.newPreloadRow())

	if g.cursorY < g.h-1 {
		g.cursorY++
	}
	g.emit(Event{Kind: EventRowRisen})
	g.resolver.requestScan()
}
