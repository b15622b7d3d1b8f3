package panel

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// TargetMode selects how an attack score is routed between grids in a session.
type TargetMode string

const (
	Sequential   TargetMode = "sequential"
	SplitEvenly  TargetMode = "split"
	AllOpponents TargetMode = "all"
	RandomTarget TargetMode = "random"
	LowestStack  TargetMode = "lowest"
	HighestStack TargetMode = "highest"
)

// GarbageCost is one entry of the garbage packing table: a block shape and
// the attack score it costs to send it.
type GarbageCost struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Cost   int `yaml:"cost"`
}

// Config holds every session constant and difficulty table the simulation
// needs. Zero third-party systems reach into the grid at runtime; everything
// tunable is decided here at construction time.
type Config struct {
	Width         int   `yaml:"width"`
	Height        int   `yaml:"height"`
	PreloadHeight int   `yaml:"preload_height"`
	TileTypes     int   `yaml:"tile_types"`
	InitialRows   int   `yaml:"initial_rows"`
	Seed          int64 `yaml:"seed"`

	TickInterval    time.Duration `yaml:"tick_interval"`
	SwapDuration    time.Duration `yaml:"swap_duration"`
	NudgeDuration   time.Duration `yaml:"nudge_duration"`
	HighlightDelay  time.Duration `yaml:"highlight_delay"`
	PopStagger      time.Duration `yaml:"pop_stagger"`
	ConversionDelay time.Duration `yaml:"conversion_delay"`

	// FallSpeed and RiseBase are in cells per second.
	FallSpeed float64 `yaml:"fall_speed"`
	RiseBase  float64 `yaml:"rise_base"`

	MaxLevel           int           `yaml:"max_level"`
	SpeedGrowth        float64       `yaml:"speed_growth"`
	LevelInterval      time.Duration `yaml:"level_interval"`
	FastRiseMultiplier float64       `yaml:"fast_rise_multiplier"`
	CatchUpMultiplier  float64       `yaml:"catch_up_multiplier"`
	GracePeriod        time.Duration `yaml:"grace_period"`
	BreathingPerTile   time.Duration `yaml:"breathing_per_tile"`
	BreathingMax       time.Duration `yaml:"breathing_max"`

	// Score tables are indexed by match size, combo count and chain depth
	// respectively. Lookups past the end clamp to the last entry.
	MatchSizeScore []int `yaml:"match_size_score"`
	ComboBonus     []int `yaml:"combo_bonus"`
	ChainBonus     []int `yaml:"chain_bonus"`

	GarbageCosts    []GarbageCost `yaml:"garbage_costs"`
	GarbageQueueMax int           `yaml:"garbage_queue_max"`
	TargetMode      TargetMode    `yaml:"target_mode"`
}

// DefaultConfig returns the standard 6x12 session tuning.
func DefaultConfig() *Config {
	return &Config{
		Width:         6,
		Height:        12,
		PreloadHeight: 2,
		TileTypes:     6,
		InitialRows:   5,
		Seed:          1,

		TickInterval:    16 * time.Millisecond,
		SwapDuration:    80 * time.Millisecond,
		NudgeDuration:   48 * time.Millisecond,
		HighlightDelay:  200 * time.Millisecond,
		PopStagger:      96 * time.Millisecond,
		ConversionDelay: 400 * time.Millisecond,

		FallSpeed: 20,
		RiseBase:  0.05,

		MaxLevel:           99,
		SpeedGrowth:        80,
		LevelInterval:      20 * time.Second,
		FastRiseMultiplier: 30,
		CatchUpMultiplier:  3,
		GracePeriod:        2 * time.Second,
		BreathingPerTile:   300 * time.Millisecond,
		BreathingMax:       4 * time.Second,

		// index 0..2 unused: a match is at least 3 tiles.
		MatchSizeScore: []int{0, 0, 0, 30, 70, 120, 200, 300, 450, 600, 800, 1000},
		ComboBonus:     []int{0, 0, 50, 120, 230, 400, 650, 1000, 1500},
		ChainBonus:     []int{0, 0, 80, 200, 400, 700, 1100, 1600, 2200},

		GarbageCosts: []GarbageCost{
			{Width: 6, Height: 2, Cost: 2000},
			{Width: 6, Height: 1, Cost: 1000},
			{Width: 4, Height: 1, Cost: 700},
			{Width: 3, Height: 1, Cost: 500},
			{Width: 1, Height: 1, Cost: 250},
		},
		GarbageQueueMax: 8,
		TargetMode:      Sequential,
	}
}

// LoadConfig reads a yaml tuning file over the defaults, so partial files
// only override what they name. An empty path returns the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.Width < 2 || c.Height < 3:
		return fmt.Errorf("grid %dx%d is too small", c.Width, c.Height)
	case c.TileTypes < 3:
		return fmt.Errorf("need at least 3 tile types, got %d", c.TileTypes)
	case c.InitialRows >= c.Height:
		return fmt.Errorf("initial rows %d must leave empty space in a %d tall grid", c.InitialRows, c.Height)
	case c.PreloadHeight < 1:
		return fmt.Errorf("preload height must be at least 1, got %d", c.PreloadHeight)
	case c.TickInterval <= 0:
		return fmt.Errorf("tick interval must be positive, got %v", c.TickInterval)
	case c.FallSpeed <= 0 || c.RiseBase <= 0:
		return fmt.Errorf("fall speed and rise base must be positive")
	case len(c.MatchSizeScore) == 0 || len(c.ComboBonus) == 0 || len(c.ChainBonus) == 0:
		return fmt.Errorf("score tables must not be empty")
	case len(c.GarbageCosts) == 0:
		return fmt.Errorf("garbage cost table must not be empty")
	}
	return nil
}
