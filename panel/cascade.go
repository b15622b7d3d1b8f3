package panel

import (
	"sort"
	"time"
)

type resolvePhase int

const (
	phaseIdle resolvePhase = iota
	phaseHighlight
	phasePopping
	phaseSettling
)

// popTask pops one group's tiles in sequence with a fixed stagger. Groups
// run their tasks concurrently and independently.
type popTask struct {
	tiles []*Tile
	next  time.Duration
}

// cascadeResolver drives detect → score → clear → drop cycles on its grid.
// The combo number is per cascade step: every group found by one scan
// shares it.
type cascadeResolver struct {
	g     *Grid
	phase resolvePhase
	timer time.Duration

	groups []MatchGroup
	pops   []*popTask

	combo int
	chain int
	sizes []int // matched-tile counts for the active loop

	scanQueued bool
}

func newCascadeResolver(g *Grid) *cascadeResolver {
	return &cascadeResolver{g: g}
}

// active reports whether a resolution loop is running. The rise controller
// suspends while it is, and garbage delivery defers to it.
func (r *cascadeResolver) active() bool { return r.phase != phaseIdle }

func (r *cascadeResolver) requestScan() {
	r.scanQueued = true
}

func (r *cascadeResolver) step(dt time.Duration) {
	switch r.phase {
	case phaseIdle:
		if r.scanQueued {
			r.scanQueued = false
			r.scan()
		}
	case phaseHighlight:
		r.timer -= dt
		if r.timer <= 0 {
			r.scoreAndPop()
		}
	case phasePopping:
		done := true
		for _, p := range r.pops {
			p.next -= dt
			for p.next <= 0 && len(p.tiles) > 0 {
				r.g.popTile(p.tiles[0])
				p.tiles = p.tiles[1:]
				p.next += r.g.cfg.PopStagger
			}
			if len(p.tiles) > 0 {
				done = false
			}
		}
		if done {
			r.settle()
		}
	case phaseSettling:
		r.timer -= dt
		if r.timer <= 0 {
			r.scan()
		}
	}
}

// scan is the loop's terminal test: no groups means the cascade is over.
func (r *cascadeResolver) scan() {
	r.groups = r.g.findMatches()
	if len(r.groups) == 0 {
		r.endCombo()
		r.phase = phaseIdle
		return
	}
	if r.combo == 0 {
		r.g.emit(Event{Kind: EventComboStarted})
	}
	for _, grp := range r.groups {
		for _, t := range grp.Tiles {
			t.processing = true
		}
	}
	r.phase = phaseHighlight
	r.timer = r.g.cfg.HighlightDelay
}

func (r *cascadeResolver) scoreAndPop() {
	r.combo++
	if r.combo > r.chain {
		r.chain = r.combo
	}
	total := 0
	for _, grp := range r.groups {
		size := len(grp.Tiles)
		total += size
		r.sizes = append(r.sizes, size)
		r.g.score += size
		r.g.emit(Event{Kind: EventMatchScored, Size: size, Combo: r.combo, Chain: r.chain})
	}
	r.g.grantBreathing(total)

	r.pops = r.pops[:0]
	for _, grp := range r.groups {
		tiles := make([]*Tile, len(grp.Tiles))
		copy(tiles, grp.Tiles)
		sort.Slice(tiles, func(i, j int) bool {
			if tiles[i].Y != tiles[j].Y {
				return tiles[i].Y > tiles[j].Y
			}
			return tiles[i].X < tiles[j].X
		})
		r.pops = append(r.pops, &popTask{tiles: tiles})
	}
	r.groups = nil
	r.phase = phasePopping
}

// settle clears the claim marks and lets gravity fill the holes; the
// longest fall decides when the next scan runs.
func (r *cascadeResolver) settle() {
	r.pops = r.pops[:0]
	d := r.g.resolveDrops(false)
	r.phase = phaseSettling
	r.timer = d
}

// endCombo converts the loop's statistics into an attack and resets the
// counters. Garbage received mid-combo materializes now.
func (r *cascadeResolver) endCombo() {
	if r.combo == 0 {
		r.g.flushPendingGarbage()
		return
	}
	stats := MatchStats{Sizes: r.sizes, Combo: r.combo, Chain: r.chain}
	r.g.emit(Event{Kind: EventComboEnded, Combo: r.combo, Chain: r.chain})
	r.g.onComboEnd(stats)
	r.combo = 0
	r.chain = 0
	r.sizes = nil
}

// popTile removes one tile and wakes any garbage block sitting next to it.
func (g *Grid) popTile(t *Tile) {
	if g.cells[t.Y][t.X].tile != t {
		g.logger.Error("popping a tile that moved", "x", t.X, "y", t.Y)
		return
	}
	g.cells[t.Y][t.X].tile = nil
	g.emit(Event{Kind: EventTilePopped, X: t.X, Y: t.Y})
	for _, d := range [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		nx, ny := t.X+d[0], t.Y+d[1]
		if nx < 0 || nx >= g.w || ny < 0 || ny >= g.h {
			continue
		}
		if gb := g.cells[ny][nx].garbage; gb != nil {
			g.triggerConversion(gb)
		}
	}
}
