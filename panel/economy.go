package panel

import (
	"log/slog"
	"math/rand"
	"sort"
	"time"
)

// MatchStats is what one finished resolution loop hands the economy.
type MatchStats struct {
	Sizes []int // tiles per match, one entry per group per step
	Combo int
	Chain int
}

// BlockSize is one garbage block shape produced by packing.
type BlockSize struct {
	Width, Height int
}

// AttackRouter delivers attack score from one grid to others. A session
// implements it in-process; the online client implements it over the wire.
type AttackRouter interface {
	RouteAttack(from, score int)
}

// SetRouter wires the grid into a routing domain under the given index.
func (g *Grid) SetRouter(r AttackRouter, index int) {
	g.router = r
	g.index = index
}

// clampLookup indexes a score table, clamping past-the-end lookups to the
// last entry.
func clampLookup(table []int, i int) int {
	if len(table) == 0 {
		return 0
	}
	if i < 0 {
		i = 0
	}
	if i >= len(table) {
		i = len(table) - 1
	}
	return table[i]
}

// AttackScore totals a combo's worth: every match's size score, plus the
// combo and chain bonuses.
func AttackScore(cfg *Config, stats MatchStats) int {
	score := 0
	for _, size := range stats.Sizes {
		score += clampLookup(cfg.MatchSizeScore, size)
	}
	score += clampLookup(cfg.ComboBonus, stats.Combo)
	score += clampLookup(cfg.ChainBonus, stats.Chain)
	return score
}

// ConvertScoreToBlocks greedily packs a score into block shapes, most
// expensive first. Whatever is left below the cheapest cost is wasted; the
// total cost of the result never exceeds the score.
func ConvertScoreToBlocks(cfg *Config, score int) []BlockSize {
	costs := make([]GarbageCost, len(cfg.GarbageCosts))
	copy(costs, cfg.GarbageCosts)
	sort.SliceStable(costs, func(i, j int) bool { return costs[i].Cost > costs[j].Cost })

	var blocks []BlockSize
	for _, c := range costs {
		if c.Cost <= 0 {
			continue
		}
		for score >= c.Cost {
			score -= c.Cost
			blocks = append(blocks, BlockSize{Width: c.Width, Height: c.Height})
		}
	}
	return blocks
}

// onComboEnd settles the attack: counter the player's own pending garbage
// first, then route the remainder to the opponents.
func (g *Grid) onComboEnd(stats MatchStats) {
	attack := AttackScore(g.cfg, stats)
	if countered := g.CancelGarbage(attack); countered > 0 {
		attack -= countered
		g.emit(Event{Kind: EventGarbageCountered, Score: countered})
	}
	if attack > 0 {
		g.emit(Event{Kind: EventGarbageSent, Score: attack})
		if g.router != nil {
			g.router.RouteAttack(g.index, attack)
		}
	}
	// anything that arrived during the combo materializes now
	g.flushPendingGarbage()
}

// Session runs several grids in one process and routes attacks between
// them. Each grid owns its state exclusively; the grids only ever touch
// each other through RouteAttack.
type Session struct {
	cfg   *Config
	grids []*Grid
	seq   int
	rng   *rand.Rand
}

// NewSession creates n grids seeded apart from the session seed.
func NewSession(cfg *Config, n int, logger *slog.Logger) *Session {
	s := &Session{
		cfg: cfg,
		rng: rand.New(rand.NewSource(cfg.Seed)),
	}
	for i := 0; i < n; i++ {
		gcfg := *cfg
		gcfg.Seed = cfg.Seed + int64(i)
		g := NewGrid(&gcfg, logger)
		g.SetRouter(s, i)
		s.grids = append(s.grids, g)
	}
	return s
}

// Grid returns the grid at index i.
func (s *Session) Grid(i int) *Grid { return s.grids[i] }

// Step advances every grid by one tick.
func (s *Session) Step(dt time.Duration) {
	for _, g := range s.grids {
		g.Step(dt)
	}
}

// RouteAttack splits and delivers an attack according to the configured
// targeting mode. The sender never targets itself.
func (s *Session) RouteAttack(from, score int) {
	if score <= 0 || len(s.grids) < 2 {
		return
	}
	opponents := make([]int, 0, len(s.grids)-1)
	for i := range s.grids {
		if i != from {
			opponents = append(opponents, i)
		}
	}

	switch s.cfg.TargetMode {
	case SplitEvenly:
		share := score / len(opponents)
		rem := score % len(opponents)
		for i, idx := range opponents {
			amount := share
			if i < rem {
				amount++
			}
			if amount > 0 {
				s.grids[idx].ReceiveAttack(amount)
			}
		}
	case AllOpponents:
		for _, idx := range opponents {
			s.grids[idx].ReceiveAttack(score)
		}
	case RandomTarget:
		s.grids[opponents[s.rng.Intn(len(opponents))]].ReceiveAttack(score)
	case LowestStack:
		best := opponents[0]
		for _, idx := range opponents[1:] {
			if s.grids[idx].stackHeight() < s.grids[best].stackHeight() {
				best = idx
			}
		}
		s.grids[best].ReceiveAttack(score)
	case HighestStack:
		best := opponents[0]
		for _, idx := range opponents[1:] {
			if s.grids[idx].stackHeight() > s.grids[best].stackHeight() {
				best = idx
			}
		}
		s.grids[best].ReceiveAttack(score)
	default: // Sequential: round-robin over the opponents, one advance per send
		target := opponents[s.seq%len(opponents)]
		s.seq++
		s.grids[target].ReceiveAttack(score)
	}
}
