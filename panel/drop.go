package panel

import "time"

// DropRecord is one tile reassignment produced by a gravity pass. All
// records of a single pass must have pairwise-distinct destinations.
type DropRecord struct {
	Tile       *Tile
	Col        int
	FromY, ToY int
}

// resolveDrops runs gravity passes until one produces no movement. A pass
// can uncover new eligible drops (a slip or a garbage landing frees cells
// mid-resolution), so passes iterate under a hard ceiling rather than loop
// forever. Returns the longest fall duration started, which is how long
// callers should wait before rescanning.
func (g *Grid) resolveDrops(obstruct bool) time.Duration {
	var longest time.Duration
	ceiling := g.w * g.h
	for pass := 0; pass < ceiling; pass++ {
		moved := g.dropGarbage()
		records := g.dropPass()
		if len(records) == 0 && !moved {
			return longest
		}
		if !g.validateRecords(records) {
			return longest
		}
		for _, r := range records {
			g.startFall(r.Tile, float64(r.FromY), r.ToY, obstruct)
			if d := g.animFor(r.Tile).duration; d > longest {
				longest = d
			}
		}
		for _, gb := range g.garbage {
			if gb.Falling && gb.duration > longest {
				longest = gb.duration
			}
		}
	}
	g.logger.Error("gravity pass ceiling reached, aborting resolution", "ceiling", ceiling)
	return longest
}

// dropPass sweeps each column bottom-up, pulling the nearest eligible tile
// down into each empty cell. The logical array is reassigned immediately;
// the caller starts the fall animations. Nothing falls through garbage, a
// mid-swap tile, a claimed tile or another faller.
func (g *Grid) dropPass() []DropRecord {
	var records []DropRecord
	for x := 0; x < g.w; x++ {
		write := -1 // lowest reachable empty row, -1 when blocked
		for y := 0; y < g.h; y++ {
			c := g.cells[y][x]
			if c.garbage != nil {
				write = -1
				continue
			}
			if c.tile == nil {
				if write == -1 {
					write = y
				}
				continue
			}
			t := c.tile
			if t.State != Idle || t.processing {
				write = -1
				continue
			}
			if write == -1 || write >= y {
				continue
			}
			records = append(records, DropRecord{Tile: t, Col: x, FromY: y, ToY: write})
			g.cells[write][x].tile = t
			g.cells[y][x].tile = nil
			t.Y = write
			write++
		}
	}
	return records
}

// validateRecords catches duplicate destinations. That is a logic error in
// the resolvers, not a game state, so the whole batch is abandoned.
func (g *Grid) validateRecords(records []DropRecord) bool {
	seen := make(map[[2]int]bool, len(records))
	for _, r := range records {
		key := [2]int{r.Col, r.ToY}
		if seen[key] {
			g.logger.Error("duplicate drop destination", "col", r.Col, "row", r.ToY)
			// undo the batch's logical moves so the grid stays coherent
			for _, u := range records {
				if g.cells[u.ToY][u.Col].tile == u.Tile {
					g.cells[u.ToY][u.Col].tile = nil
				}
				g.cells[u.FromY][u.Col].tile = u.Tile
				u.Tile.Y = u.FromY
			}
			return false
		}
		seen[key] = true
	}
	return true
}

// dropGarbage lets whole blocks descend as units. A block falls by the
// smallest free distance under its footprint; per-tile gravity never moves
// garbage cells.
func (g *Grid) dropGarbage() bool {
	moved := false
	for _, gb := range g.garbage {
		if gb.Falling || gb.Converting {
			continue
		}
		dist := g.garbageFallDistance(gb)
		if dist == 0 {
			continue
		}
		g.moveGarbage(gb, dist)
		moved = true
	}
	return moved
}

func (g *Grid) garbageFallDistance(gb *Garbage) int {
	dist := gb.Y
	for x := gb.X; x < gb.X+gb.Width; x++ {
		free := 0
		for y := gb.Y - 1; y >= 0 && g.cells[y][x].empty(); y-- {
			free++
		}
		if free < dist {
			dist = free
		}
	}
	return dist
}

func (g *Grid) moveGarbage(gb *Garbage, dist int) {
	for y := gb.Y; y < gb.Y+gb.Height; y++ {
		for x := gb.X; x < gb.X+gb.Width; x++ {
			g.cells[y][x].garbage = nil
		}
	}
	fromY := float64(gb.Y)
	gb.Y -= dist
	for y := gb.Y; y < gb.Y+gb.Height; y++ {
		for x := gb.X; x < gb.X+gb.Width; x++ {
			g.cells[y][x].garbage = gb
		}
	}
	gb.Falling = true
	gb.fromY = fromY
	gb.elapsed = 0
	gb.duration = time.Duration(float64(dist) / g.cfg.FallSpeed * float64(time.Second))
}
