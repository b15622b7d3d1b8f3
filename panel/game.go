package panel

import (
	"log/slog"
	"sync"
	"time"
)

type Action string

const (
	MoveLeft  Action = "left"  // Moves the cursor one cell to the left.
	MoveRight Action = "right" // Moves the cursor one cell to the right.
	MoveUp    Action = "up"    // Moves the cursor one row up.
	MoveDown  Action = "down"  // Moves the cursor one row down.
	SwapTiles Action = "swap"  // Swaps the two tiles under the cursor.
	FastRise  Action = "rise"  // Speeds up the rise until the next row surfaces.
)

type Ticker interface {
	C() <-chan time.Time
	Reset(time.Duration)
	Stop()
}

type wrappedTicker struct {
	ticker *time.Ticker
}

func newWrappedTicker(d time.Duration) *wrappedTicker {
	return &wrappedTicker{ticker: time.NewTicker(d)}
}

func (t *wrappedTicker) C() <-chan time.Time   { return t.ticker.C }
func (t *wrappedTicker) Stop()                 { t.ticker.Stop() }
func (t *wrappedTicker) Reset(d time.Duration) { t.ticker.Reset(d) }

// Game drives one grid on a fixed tick and serializes player actions and
// incoming attacks onto it. Every mutation happens inside the listen loop;
// readers only ever see snapshots.
type Game struct {
	updateCh chan *Snapshot
	actionCh chan Action
	attackCh chan int
	doneCh   chan bool

	cfg    *Config
	logger *slog.Logger
	grid   *Grid
	ticker Ticker

	mu sync.Mutex
}

func NewGame(cfg *Config, logger *slog.Logger) *Game {
	// the ticker is parked until Start
	return NewConfigurableGame(cfg, logger, newWrappedTicker(1*time.Hour))
}

func NewConfigurableGame(cfg *Config, logger *slog.Logger, ticker Ticker) *Game {
	return &Game{
		updateCh: make(chan *Snapshot),
		actionCh: make(chan Action),
		attackCh: make(chan int),
		doneCh:   make(chan bool, 1),
		cfg:      cfg,
		logger:   logger,
		grid:     NewGrid(cfg, logger),
		ticker:   ticker,
	}
}

// Start resets the grid and begins ticking. Safe to call again after a
// game over for a rematch.
func (g *Game) Start() {
	g.mu.Lock()
	g.grid = NewGrid(g.cfg, g.logger)
	g.mu.Unlock()
	go g.listen()
}

func (g *Game) Stop() {
	g.ticker.Stop()
	g.doneCh <- true
}

func (g *Game) Action(a Action) {
	g.actionCh <- a
}

// ReceiveAttack queues opponent attack score onto the next tick.
func (g *Game) ReceiveAttack(score int) {
	g.attackCh <- score
}

// GetUpdate delivers a snapshot after every tick and every action.
func (g *Game) GetUpdate() <-chan *Snapshot {
	return g.updateCh
}

func (g *Game) listen() {
	g.ticker.Reset(g.cfg.TickInterval)
	for {
		select {
		case <-g.ticker.C():
			g.mu.Lock()
			g.grid.Step(g.cfg.TickInterval)
		case a := <-g.actionCh:
			g.mu.Lock()
			g.apply(a)
		case score := <-g.attackCh:
			g.mu.Lock()
			g.grid.ReceiveAttack(score)
		case <-g.doneCh:
			return
		}
		snap := g.grid.Snapshot()
		gameOver := g.grid.GameOver()
		g.mu.Unlock()
		g.updateCh <- snap
		if gameOver {
			g.ticker.Stop()
			return
		}
	}
}

func (g *Game) apply(a Action) {
	switch a {
	case MoveLeft:
		g.grid.MoveCursor(-1, 0)
	case MoveRight:
		g.grid.MoveCursor(1, 0)
	case MoveUp:
		g.grid.MoveCursor(0, 1)
	case MoveDown:
		g.grid.MoveCursor(0, -1)
	case SwapTiles:
		g.grid.Swap()
	case FastRise:
		g.grid.FastRise()
	}
}
