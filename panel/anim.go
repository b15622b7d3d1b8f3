package panel

import "time"

type animKind int

const (
	animSwap animKind = iota
	animKick // the horizontal slide of a slip's kicked tile
	animFall
	animNudge
)

// anim is one in-flight movement. The grid array already holds the tile at
// (toX, toY); the anim only tracks where the visual is on its way there.
// Records are kept in insertion order so a tick resolves them
// deterministically.
type anim struct {
	tile    *Tile
	version int
	kind    animKind

	fromX, fromY float64
	toX, toY     int

	elapsed  time.Duration
	duration time.Duration

	// obstruct enables the per-tick column check below the tile. Only
	// slip- and interception-originated falls carry it; plain gravity
	// drops are pre-validated conflict-free.
	obstruct bool

	// dx remembers the horizontal swap direction for momentum tiles.
	dx int
}

func (a *anim) progress() float64 {
	if a.duration <= 0 {
		return 1
	}
	p := float64(a.elapsed) / float64(a.duration)
	if p > 1 {
		p = 1
	}
	return p
}

func (a *anim) visualX() float64 {
	return a.fromX + (float64(a.toX)-a.fromX)*a.progress()
}

func (a *anim) visualY() float64 {
	return a.fromY + (float64(a.toY)-a.fromY)*a.progress()
}

// fallDepth is how far the visual has sunk into the destination cell,
// 0 at the cell's top edge, 1 when seated.
func (a *anim) fallDepth() float64 {
	d := float64(a.toY) + 1 - a.visualY()
	if d < 0 {
		return 0
	}
	if d > 1 {
		return 1
	}
	return d
}

// pastHalf reports whether a falling tile is 50% or deeper into its
// destination cell. Swaps and slips must leave such tiles alone.
func (a *anim) pastHalf() bool {
	return a.kind == animFall && a.fallDepth() >= 0.5
}

func (g *Grid) animFor(t *Tile) *anim {
	for _, a := range g.anims {
		if a.tile == t {
			return a
		}
	}
	return nil
}

// startAnim cancels any animation the tile already has and registers a new
// one under a fresh version, so a stale completion can never finalize into
// the wrong cell.
func (g *Grid) startAnim(a *anim) {
	g.cancelAnim(a.tile)
	a.tile.version++
	a.version = a.tile.version
	g.anims = append(g.anims, a)
}

// cancelAnim removes the tile's in-flight record and bumps its version.
// The caller is responsible for putting the tile back into a sane state.
func (g *Grid) cancelAnim(t *Tile) {
	for i, a := range g.anims {
		if a.tile == t {
			g.anims = append(g.anims[:i], g.anims[i+1:]...)
			t.version++
			return
		}
	}
}

// stepAnims advances every record by dt and finalizes the finished ones.
// Completion side effects run in insertion order.
func (g *Grid) stepAnims(dt time.Duration) {
	var done []*anim
	for _, a := range g.anims {
		a.elapsed += dt
		if a.kind == animFall && a.obstruct {
			g.checkObstruction(a)
		}
		if a.elapsed >= a.duration {
			done = append(done, a)
		}
	}
	for _, a := range done {
		g.finishAnim(a)
	}
}

func (g *Grid) finishAnim(a *anim) {
	// a retarget may have replaced this record mid-iteration
	if a.version != a.tile.version || g.animFor(a.tile) != a {
		return
	}
	g.cancelAnim(a.tile)
	t := a.tile
	t.State = Idle
	switch a.kind {
	case animFall:
		g.emit(Event{Kind: EventTileLanded, X: t.X, Y: t.Y})
	case animSwap:
		g.finishSwapStep(t, a.dx)
	case animKick:
		// the slip committed the cell and armed its own settle; touching the
		// pendingSwap accounting here would corrupt an unrelated swap
	case animNudge:
		// nothing: the logical cell was committed when the nudge started
	}
}

func (g *Grid) startFall(t *Tile, fromY float64, toY int, obstruct bool) {
	t.State = Falling
	dist := fromY - float64(toY)
	if dist < 0 {
		dist = 0
	}
	g.startAnim(&anim{
		tile:     t,
		kind:     animFall,
		fromX:    float64(t.X),
		fromY:    fromY,
		toX:      t.X,
		toY:      toY,
		duration: time.Duration(dist / g.cfg.FallSpeed * float64(time.Second)),
		obstruct: obstruct,
	})
}

func (g *Grid) startNudge(t *Tile, fromY float64, toY int) {
	t.State = Falling
	g.startAnim(&anim{
		tile:     t,
		kind:     animNudge,
		fromX:    float64(t.X),
		fromY:    fromY,
		toX:      t.X,
		toY:      toY,
		duration: g.cfg.NudgeDuration,
	})
}

// checkObstruction scans the column between the tile's current height and
// its landing cell for a solid occupant and retargets one row above it.
// Solid means a stationary tile, garbage, or another faller whose committed
// landing cell is in the way; the logical array stores fallers at their
// targets, so one cell scan covers both.
func (g *Grid) checkObstruction(a *anim) {
	below := int(a.visualY())
	if below > g.h-1 {
		below = g.h - 1
	}
	for y := below; y >= a.toY; y-- {
		c := g.cells[y][a.toX]
		if c.empty() || c.tile == a.tile {
			continue
		}
		// obstruction found at y; land one row above it
		newY := y + 1
		if newY >= g.h || newY == a.tile.Y {
			return
		}
		g.retarget(a.tile, newY)
		return
	}
}

// retarget commits the tile to a new landing row and restarts its fall from
// the current visual position with zero elapsed time, so the visual never
// snaps.
func (g *Grid) retarget(t *Tile, newY int) {
	a := g.animFor(t)
	if a == nil {
		return
	}
	if !g.cells[newY][t.X].empty() {
		g.logger.Error("retarget into occupied cell skipped",
			"x", t.X, "from", t.Y, "to", newY)
		return
	}
	fromY := a.visualY()
	obstruct := a.obstruct
	g.cells[t.Y][t.X].tile = nil
	g.cells[newY][t.X].tile = t
	t.Y = newY
	g.startFall(t, fromY, newY, obstruct)
}
