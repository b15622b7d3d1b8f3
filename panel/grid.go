package panel

import (
	"log/slog"
	"math/rand"
	"time"
)

// Grid owns the cell array and serializes every mutation: swaps, drops,
// slips, cascade resolution and the rise all commit through it on the
// simulation tick. Sub-resolvers hold no state of their own beyond what the
// grid hands them.
type Grid struct {
	cfg    *Config
	w, h   int
	logger *slog.Logger
	rng    *rand.Rand

	// cells[y][x], row 0 is the bottom. preload rows sit below the visible
	// area; preload[0] is the next row to surface.
	cells   [][]cell
	preload [][]*Tile

	cursorX, cursorY int

	anims    []*anim
	resolver *cascadeResolver
	rise     *riseState

	garbage  []*Garbage
	garbageQ []garbageRequest

	// pendingIncoming is attack score received but not yet materialized
	// into blocks; it is what a counter cancels.
	pendingIncoming int

	router AttackRouter
	index  int

	score    int
	gameOver bool

	pendingSwap struct {
		active    bool
		remaining int
		cols      [2]int
		row       int
	}

	settlePending bool
	settleTimer   time.Duration

	pendingEvents []Event
}

// NewGrid builds a grid with the configured initial fill and preload buffer.
// A nil logger falls back to slog.Default().
func NewGrid(cfg *Config, logger *slog.Logger) *Grid {
	if logger == nil {
		logger = slog.Default()
	}
	g := &Grid{
		cfg:    cfg,
		w:      cfg.Width,
		h:      cfg.Height,
		logger: logger,
		rng:    rand.New(rand.NewSource(cfg.Seed)),
	}
	g.cells = make([][]cell, g.h)
	for y := range g.cells {
		g.cells[y] = make([]cell, g.w)
	}
	g.resolver = newCascadeResolver(g)
	g.rise = newRiseState()
	g.cursorX = g.w/2 - 1
	g.cursorY = cfg.InitialRows / 2

	for y := 0; y < cfg.InitialRows; y++ {
		for x := 0; x < g.w; x++ {
			g.cells[y][x].tile = newTile(g.randomType(g.typeAt(x-1, y), g.typeAt(x-2, y), g.typeAt(x, y-1), g.typeAt(x, y-2)), x, y)
		}
	}
	for i := 0; i < cfg.PreloadHeight; i++ {
		g.preload = append(g.preload, g.newPreloadRow())
	}
	return g
}

// typeAt is a generation helper: the type at (x, y), or NoTile when out of
// bounds or empty.
func (g *Grid) typeAt(x, y int) TileType {
	if x < 0 || x >= g.w || y < 0 || y >= g.h {
		return NoTile
	}
	if t := g.cells[y][x].tile; t != nil {
		return t.Type
	}
	return NoTile
}

// randomType draws a type that cannot complete a 3-in-a-row against the two
// neighbors on either axis.
func (g *Grid) randomType(left1, left2, down1, down2 TileType) TileType {
	for {
		t := TileType(g.rng.Intn(g.cfg.TileTypes))
		if t == left1 && t == left2 {
			continue
		}
		if t == down1 && t == down2 {
			continue
		}
		return t
	}
}

// newPreloadRow spawns the next hidden row, avoiding instant matches
// against the rows that will sit above it once it surfaces.
func (g *Grid) newPreloadRow() []*Tile {
	above1 := make([]TileType, g.w)
	above2 := make([]TileType, g.w)
	for x := 0; x < g.w; x++ {
		above1[x], above2[x] = NoTile, NoTile
		// the most recently buffered row surfaces right above this one
		if n := len(g.preload); n > 0 {
			above1[x] = g.preload[n-1][x].Type
			if n > 1 {
				above2[x] = g.preload[n-2][x].Type
			} else {
				above2[x] = g.typeAt(x, 0)
			}
		} else {
			above1[x] = g.typeAt(x, 0)
			above2[x] = g.typeAt(x, 1)
		}
	}
	row := make([]*Tile, g.w)
	var l1, l2 TileType = NoTile, NoTile
	for x := 0; x < g.w; x++ {
		row[x] = newTile(g.randomType(l1, l2, above1[x], above2[x]), x, -1)
		l2, l1 = l1, row[x].Type
	}
	return row
}

// MoveCursor shifts the two-cell cursor, clamped to the grid.
func (g *Grid) MoveCursor(dx, dy int) {
	g.cursorX += dx
	g.cursorY += dy
	if g.cursorX < 0 {
		g.cursorX = 0
	}
	if g.cursorX > g.w-2 {
		g.cursorX = g.w - 2
	}
	if g.cursorY < 0 {
		g.cursorY = 0
	}
	if g.cursorY > g.h-1 {
		g.cursorY = g.h - 1
	}
}

// FastRise boosts the rise speed until the next row surfaces.
func (g *Grid) FastRise() {
	if !g.gameOver {
		g.rise.fastRise = true
	}
}

// Swap exchanges the two tiles under the cursor. A rejected swap is
// silently ignored: the grid is never left half-swapped.
func (g *Grid) Swap() {
	if g.gameOver {
		return
	}
	lx, rx, y := g.cursorX, g.cursorX+1, g.cursorY
	lc, rc := g.cells[y][lx], g.cells[y][rx]
	if lc.garbage != nil || rc.garbage != nil {
		return
	}
	if lc.tile == nil && rc.tile == nil {
		return
	}
	for _, t := range []*Tile{lc.tile, rc.tile} {
		if t == nil {
			continue
		}
		if t.processing || t.State == Swapping || !t.CanSwap {
			return
		}
		// the lateness threshold: a faller half-seated into its cell is
		// committed, no swap or slip may touch it
		if a := g.animFor(t); a != nil && a.pastHalf() {
			return
		}
	}
	if g.trySlip(lx, rx, y) {
		return
	}
	if (lc.tile != nil && lc.tile.State == Falling) || (rc.tile != nil && rc.tile.State == Falling) {
		return
	}
	g.plainSwap(lx, rx, y)
}

// plainSwap commits the logical exchange immediately and lets the visuals
// catch up over SwapDuration.
func (g *Grid) plainSwap(lx, rx, y int) {
	lt, rt := g.cells[y][lx].tile, g.cells[y][rx].tile
	g.cells[y][lx].tile, g.cells[y][rx].tile = rt, lt

	g.pendingSwap.active = true
	g.pendingSwap.remaining = 0
	g.pendingSwap.cols = [2]int{lx, rx}
	g.pendingSwap.row = y

	if lt != nil {
		lt.X, lt.Y = rx, y
		g.startSwapAnim(lt, lx, rx, y, 1)
	}
	if rt != nil {
		rt.X, rt.Y = lx, y
		g.startSwapAnim(rt, rx, lx, y, -1)
	}
}

func (g *Grid) startSwapAnim(t *Tile, fromX, toX, y, dx int) {
	t.State = Swapping
	g.pendingSwap.remaining++
	g.startAnim(&anim{
		tile:     t,
		kind:     animSwap,
		fromX:    float64(fromX),
		fromY:    float64(y),
		toX:      toX,
		toY:      y,
		duration: g.cfg.SwapDuration,
		dx:       dx,
	})
}

// finishSwapStep runs when one swap animation completes. Momentum tiles
// keep sliding into open cells before the swap as a whole settles.
func (g *Grid) finishSwapStep(t *Tile, dx int) {
	if t.Momentum && dx != 0 {
		nx := t.X + dx
		if nx >= 0 && nx < g.w && g.cells[t.Y][nx].empty() {
			g.cells[t.Y][t.X].tile = nil
			g.cells[t.Y][nx].tile = t
			fromX := t.X
			t.X = nx
			g.startSwapAnim(t, fromX, nx, t.Y, dx)
			g.pendingSwap.remaining-- // startSwapAnim re-counted it
			return
		}
	}
	if !g.pendingSwap.active {
		return
	}
	g.pendingSwap.remaining--
	if g.pendingSwap.remaining <= 0 {
		g.pendingSwap.active = false
		g.postSwap()
	}
}

// postSwap runs once both halves of a swap have settled: stop fallers that
// were heading for the freshly filled cells, then let gravity sort out the
// rest and rescan.
func (g *Grid) postSwap() {
	row := g.pendingSwap.row
	for _, col := range g.pendingSwap.cols {
		g.interceptFalling(col, row)
	}
	d := g.resolveDrops(false)
	g.armSettle(d)
}

// interceptFalling stops every faller above the given cell and cascades it
// up into the free rows above, so nothing lands in a cell a swap just
// filled. Fallers already half-seated are left alone.
func (g *Grid) interceptFalling(col, row int) {
	var items []restackItem
	for _, a := range g.anims {
		if a.kind != animFall || a.toX != col {
			continue
		}
		if a.pastHalf() {
			continue
		}
		if a.visualY() <= float64(row) {
			continue
		}
		items = append(items, restackItem{tile: a.tile, visual: a.visualY(), nudge: true})
	}
	if len(items) == 0 {
		return
	}
	if !g.restack(col, row, items) {
		g.logger.Error("swap interception overflowed the column", "col", col, "row", row)
	}
}

func (g *Grid) armSettle(d time.Duration) {
	g.settlePending = true
	if d > g.settleTimer {
		g.settleTimer = d
	}
}

func (g *Grid) settleExpired() {
	d := g.resolveDrops(false)
	if d > 0 {
		g.armSettle(d)
		return
	}
	g.resolver.requestScan()
}

// Step advances the whole simulation by one tick.
func (g *Grid) Step(dt time.Duration) {
	if g.gameOver {
		return
	}
	g.stepAnims(dt)
	g.stepGarbage(dt)
	if g.settlePending {
		g.settleTimer -= dt
		if g.settleTimer <= 0 {
			g.settlePending = false
			g.settleTimer = 0
			g.settleExpired()
		}
	}
	g.resolver.step(dt)
	g.stepRise(dt)
}

// swapInFlight reports whether any swap animation is still interpolating.
// The rise controller owes the player this time back.
func (g *Grid) swapInFlight() bool {
	for _, a := range g.anims {
		if a.kind == animSwap || a.kind == animKick {
			return true
		}
	}
	return false
}

func (g *Grid) setGameOver() {
	if g.gameOver {
		return
	}
	g.gameOver = true
	g.emit(Event{Kind: EventGameOver})
}

// GameOver reports the terminal state.
func (g *Grid) GameOver() bool { return g.gameOver }

// Score returns the accumulated match score.
func (g *Grid) Score() int { return g.score }

// stackHeight is the highest occupied row plus one, used by the
// lowest/highest-stack targeting modes.
func (g *Grid) stackHeight() int {
	for y := g.h - 1; y >= 0; y-- {
		for x := 0; x < g.w; x++ {
			if !g.cells[y][x].empty() {
				return y + 1
			}
		}
	}
	return 0
}

// checkInvariants verifies that every occupant's stored coordinate matches
// the cell it is filed under. Violations are logged, never fatal.
func (g *Grid) checkInvariants() bool {
	ok := true
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			c := g.cells[y][x]
			if c.tile != nil && c.garbage != nil {
				g.logger.Error("cell holds two occupants", "x", x, "y", y)
				ok = false
			}
			if c.tile != nil && (c.tile.X != x || c.tile.Y != y) {
				g.logger.Error("tile coordinate mismatch",
					"cellX", x, "cellY", y, "tileX", c.tile.X, "tileY", c.tile.Y)
				ok = false
			}
			if c.garbage != nil && !c.garbage.covers(x, y) {
				g.logger.Error("garbage reference outside its block", "x", x, "y", y)
				ok = false
			}
		}
	}
	return ok
}

// CellSnapshot is the per-cell view handed to the presentation layer.
type CellSnapshot struct {
	Type    TileType // NoTile when empty or garbage
	Garbage bool
	State   TileState
	// VisualY is the interpolated height for renderers that animate;
	// equal to the row index for settled occupants.
	VisualY float64
}

// Snapshot is a deep copy of everything a presentation layer needs for one
// frame, safe to read concurrently with the simulation.
type Snapshot struct {
	Width, Height    int
	Cells            [][]CellSnapshot // [y][x], row 0 at the bottom
	CursorX, CursorY int
	Score            int
	Combo            int
	Chain            int
	Level            int
	RiseOffset       float64
	PendingGarbage   int
	GameOver         bool
	Events           []Event
}

// Snapshot drains the pending events into the returned copy.
func (g *Grid) Snapshot() *Snapshot {
	s := &Snapshot{
		Width:          g.w,
		Height:         g.h,
		CursorX:        g.cursorX,
		CursorY:        g.cursorY,
		Score:          g.score,
		Combo:          g.resolver.combo,
		Chain:          g.resolver.chain,
		Level:          g.rise.level,
		RiseOffset:     g.rise.offset,
		PendingGarbage: g.pendingIncoming,
		GameOver:       g.gameOver,
		Events:         g.pendingEvents,
	}
	g.pendingEvents = nil
	s.Cells = make([][]CellSnapshot, g.h)
	for y := range s.Cells {
		s.Cells[y] = make([]CellSnapshot, g.w)
		for x := range s.Cells[y] {
			cs := CellSnapshot{Type: NoTile, VisualY: float64(y)}
			c := g.cells[y][x]
			switch {
			case c.garbage != nil:
				cs.Garbage = true
				if c.garbage.Falling {
					cs.VisualY = c.garbage.visualY() + float64(y-c.garbage.Y)
				}
			case c.tile != nil:
				cs.Type = c.tile.Type
				cs.State = c.tile.State
				if a := g.animFor(c.tile); a != nil {
					cs.VisualY = a.visualY()
				}
			}
			s.Cells[y][x] = cs
		}
	}
	return s
}
