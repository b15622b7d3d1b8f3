// Package panel contains the simulation core of Panel Pop: a continuously
// rising grid of typed tiles that the player swaps pairwise to form matches,
// cascades and chains, which convert into garbage attacks against the
// opponent's grid.
package panel

import "time"

// TileType is a small type id in [0, Config.TileTypes).
type TileType int

// NoTile marks an empty cell in snapshots.
const NoTile TileType = -1

type TileState int

const (
	Idle TileState = iota
	Swapping
	Falling
)

func (s TileState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Swapping:
		return "swapping"
	case Falling:
		return "falling"
	}
	return "unknown"
}

// Tile is a single grid-occupying unit. X and Y are the logical cell the
// grid array stores the tile under; during a swap or fall they already name
// the committed target cell while the visual interpolates toward it.
type Tile struct {
	Type  TileType
	X, Y  int
	State TileState

	// CanMatch and CanSwap are capability flags set by an external status
	// system (frozen tiles, etc). The core only reads them.
	CanMatch bool
	CanSwap  bool

	// Momentum tiles keep sliding in the swap direction until blocked.
	Momentum bool

	// processing marks a tile claimed by the cascade resolver: it is part
	// of an active match and excluded from drops and swaps.
	processing bool

	// version invalidates stale animation completions after a cancel.
	version int
}

func newTile(t TileType, x, y int) *Tile {
	return &Tile{Type: t, X: x, Y: y, CanMatch: true, CanSwap: true}
}

// Garbage is a multi-cell attack block anchored at its bottom-left cell.
// Every covered cell in the grid holds a back-reference to the anchor; only
// the anchor carries state.
type Garbage struct {
	X, Y          int // anchor cell, bottom-left
	Width, Height int

	Falling    bool
	Converting bool

	// fall interpolation, advanced by the grid tick
	fromY    float64
	elapsed  time.Duration
	duration time.Duration

	convertTimer time.Duration
}

func (gb *Garbage) covers(x, y int) bool {
	return x >= gb.X && x < gb.X+gb.Width && y >= gb.Y && y < gb.Y+gb.Height
}

// visualY is the interpolated height of the anchor row while falling.
func (gb *Garbage) visualY() float64 {
	if !gb.Falling || gb.duration <= 0 {
		return float64(gb.Y)
	}
	p := float64(gb.elapsed) / float64(gb.duration)
	if p > 1 {
		p = 1
	}
	return gb.fromY + (float64(gb.Y)-gb.fromY)*p
}

// cell holds at most one occupant: a tile, or a back-reference to the
// garbage block covering it. Both nil means empty.
type cell struct {
	tile    *Tile
	garbage *Garbage
}

func (c cell) empty() bool { return c.tile == nil && c.garbage == nil }
