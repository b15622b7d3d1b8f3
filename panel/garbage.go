package panel

import "time"

// garbageRequest is a block shape awaiting a free spawn window.
type garbageRequest struct {
	width, height int
}

// ReceiveAttack adds incoming attack score to the pending pool. Unless a
// combo is being resolved the pool materializes into blocks immediately;
// mid-combo it waits, which is also the window in which the player's own
// attack can counter it.
func (g *Grid) ReceiveAttack(score int) {
	if g.gameOver || score <= 0 {
		return
	}
	g.pendingIncoming += score
	g.emit(Event{Kind: EventGarbageReceived, Score: score})
	if !g.resolver.active() {
		g.flushPendingGarbage()
	}
}

// CancelGarbage reduces the pending-incoming score by up to n and returns
// how much was actually cancelled.
func (g *Grid) CancelGarbage(n int) int {
	if n < 0 {
		n = 0
	}
	cancelled := n
	if cancelled > g.pendingIncoming {
		cancelled = g.pendingIncoming
	}
	g.pendingIncoming -= cancelled
	return cancelled
}

// PendingGarbage returns the attack score queued against this grid.
func (g *Grid) PendingGarbage() int { return g.pendingIncoming }

// flushPendingGarbage converts the pending score into blocks and spawns
// them. Residual score below the cheapest block is wasted, not carried.
func (g *Grid) flushPendingGarbage() {
	if g.pendingIncoming <= 0 {
		return
	}
	blocks := ConvertScoreToBlocks(g.cfg, g.pendingIncoming)
	g.pendingIncoming = 0
	for _, b := range blocks {
		if len(g.garbageQ) >= g.cfg.GarbageQueueMax {
			g.logger.Warn("garbage queue full, dropping block",
				"width", b.Width, "height", b.Height)
			g.emit(Event{Kind: EventGarbageDropped})
			continue
		}
		g.garbageQ = append(g.garbageQ, garbageRequest{width: b.Width, height: b.Height})
	}
	g.spawnQueuedGarbage()
}

// spawnQueuedGarbage drains the queue. A block with no valid spawn window
// is dropped with a warning; gameplay continues.
func (g *Grid) spawnQueuedGarbage() {
	queue := g.garbageQ
	g.garbageQ = nil
	for _, req := range queue {
		x := g.findSpawnColumn(req.width, req.height)
		if x < 0 {
			g.logger.Warn("no spawn column for garbage block",
				"width", req.width, "height", req.height)
			g.emit(Event{Kind: EventGarbageDropped})
			continue
		}
		gb := &Garbage{X: x, Y: g.h - req.height, Width: req.width, Height: req.height}
		for y := gb.Y; y < gb.Y+gb.Height; y++ {
			for xx := gb.X; xx < gb.X+gb.Width; xx++ {
				g.cells[y][xx].garbage = gb
			}
		}
		g.garbage = append(g.garbage, gb)
		// the block falls before the next window search, so one spawn never
		// starves the rest of the queue out of the top rows
		g.dropGarbage()
	}
	d := g.resolveDrops(false)
	g.armSettle(d)
}

// findSpawnColumn tries a centered window first, then scans left to right
// for the first window of the required width whose rows are entirely
// empty. Returns -1 when nothing fits.
func (g *Grid) findSpawnColumn(width, height int) int {
	if width > g.w || height > g.h {
		return -1
	}
	centered := (g.w - width) / 2
	if g.spawnWindowFree(centered, width, height) {
		return centered
	}
	for x := 0; x+width <= g.w; x++ {
		if g.spawnWindowFree(x, width, height) {
			return x
		}
	}
	return -1
}

func (g *Grid) spawnWindowFree(x0, width, height int) bool {
	for y := g.h - height; y < g.h; y++ {
		for x := x0; x < x0+width; x++ {
			if !g.cells[y][x].empty() {
				return false
			}
		}
	}
	return true
}

// triggerConversion arms a garbage block cleared by an adjacent match. The
// block stays in place for the conversion delay, then every covered cell
// becomes an ordinary tile.
func (g *Grid) triggerConversion(gb *Garbage) {
	if gb.Converting {
		return
	}
	gb.Converting = true
	gb.Falling = false
	gb.convertTimer = g.cfg.ConversionDelay
}

// stepGarbage advances block falls and conversion timers.
func (g *Grid) stepGarbage(dt time.Duration) {
	for _, gb := range g.garbage {
		if gb.Falling {
			gb.elapsed += dt
			if gb.elapsed >= gb.duration {
				gb.Falling = false
			}
		}
	}
	var remaining []*Garbage
	converted := false
	for _, gb := range g.garbage {
		if !gb.Converting {
			remaining = append(remaining, gb)
			continue
		}
		gb.convertTimer -= dt
		if gb.convertTimer > 0 {
			remaining = append(remaining, gb)
			continue
		}
		g.convertGarbage(gb)
		converted = true
	}
	g.garbage = remaining
	if converted {
		d := g.resolveDrops(false)
		g.armSettle(d)
	}
}

// convertGarbage removes the anchor and all its references atomically and
// spawns tiles into every covered cell.
func (g *Grid) convertGarbage(gb *Garbage) {
	for y := gb.Y; y < gb.Y+gb.Height; y++ {
		for x := gb.X; x < gb.X+gb.Width; x++ {
			g.cells[y][x].garbage = nil
			g.cells[y][x].tile = newTile(TileType(g.rng.Intn(g.cfg.TileTypes)), x, y)
		}
	}
}
