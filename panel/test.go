package panel

import (
	"sync"
	"time"
)

// MockTicker is a mock implementation of the ticker interface.
type MockTicker struct {
	ch          chan time.Time
	stop, reset bool
	mu          sync.Mutex
}

func NewMockTicker() *MockTicker          { return &MockTicker{ch: make(chan time.Time)} }
func (m *MockTicker) C() <-chan time.Time { return m.ch }
func (m *MockTicker) Tick()               { m.ch <- time.Now() }
func (m *MockTicker) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stop = true
}
func (m *MockTicker) Reset(time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reset = true
}
func (m *MockTicker) IsReset() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reset
}
func (m *MockTicker) IsStop() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stop
}

// TestConfig is the default tuning shrunk for fast deterministic tests:
// the grid starts empty and the rise is effectively parked.
func TestConfig() *Config {
	cfg := DefaultConfig()
	cfg.InitialRows = 0
	cfg.RiseBase = 0.000001
	return cfg
}

// NewTestGrid creates an empty grid from TestConfig.
func NewTestGrid() *Grid {
	return NewGrid(TestConfig(), nil)
}

// PlaceTile puts an idle tile of the given type at (x, y), replacing
// whatever was there. Test setup only.
func (g *Grid) PlaceTile(x, y int, tt TileType) *Tile {
	t := newTile(tt, x, y)
	g.cells[y][x] = cell{tile: t}
	return t
}

// PlaceGarbage installs a garbage block with its anchor at (x, y).
// Test setup only.
func (g *Grid) PlaceGarbage(x, y, width, height int) *Garbage {
	gb := &Garbage{X: x, Y: y, Width: width, Height: height}
	for yy := y; yy < y+height; yy++ {
		for xx := x; xx < x+width; xx++ {
			g.cells[yy][xx] = cell{garbage: gb}
		}
	}
	g.garbage = append(g.garbage, gb)
	return gb
}

// TileAt returns the tile stored at (x, y), nil when empty or garbage.
func (g *Grid) TileAt(x, y int) *Tile { return g.cells[y][x].tile }

// SetCursor moves the cursor without clamping checks. Test setup only.
func (g *Grid) SetCursor(x, y int) { g.cursorX, g.cursorY = x, y }
