package panel

// MatchGroup is a set of tiles connected through straight-line triples of
// equal type. Groups from one detection pass are disjoint.
type MatchGroup struct {
	Tiles []*Tile
}

// matchable tiles are settled, unclaimed and not capability-suppressed.
// Garbage never matches; it only converts.
func (g *Grid) matchable(c cell) bool {
	return c.tile != nil && c.garbage == nil &&
		c.tile.State == Idle && !c.tile.processing && c.tile.CanMatch
}

// findMatches scans every horizontal and vertical triple of equal-typed
// matchable tiles, then groups the matched set into connected components
// with a 4-directional flood fill. The fill is restricted to the matched
// set: two parallel matches that merely touch corner-wise stay separate
// groups.
func (g *Grid) findMatches() []MatchGroup {
	matched := make([][]bool, g.h)
	for y := range matched {
		matched[y] = make([]bool, g.w)
	}
	any := false

	same := func(a, b, c cell) bool {
		return g.matchable(a) && g.matchable(b) && g.matchable(c) &&
			a.tile.Type == b.tile.Type && b.tile.Type == c.tile.Type
	}

	for y := 0; y < g.h; y++ {
		for x := 0; x+2 < g.w; x++ {
			if same(g.cells[y][x], g.cells[y][x+1], g.cells[y][x+2]) {
				matched[y][x], matched[y][x+1], matched[y][x+2] = true, true, true
				any = true
			}
		}
	}
	for y := 0; y+2 < g.h; y++ {
		for x := 0; x < g.w; x++ {
			if same(g.cells[y][x], g.cells[y+1][x], g.cells[y+2][x]) {
				matched[y][x], matched[y+1][x], matched[y+2][x] = true, true, true
				any = true
			}
		}
	}
	if !any {
		return nil
	}

	var groups []MatchGroup
	seen := make([][]bool, g.h)
	for y := range seen {
		seen[y] = make([]bool, g.w)
	}
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			if !matched[y][x] || seen[y][x] {
				continue
			}
			var group MatchGroup
			queue := [][2]int{{x, y}}
			seen[y][x] = true
			for len(queue) > 0 {
				cx, cy := queue[0][0], queue[0][1]
				queue = queue[1:]
				group.Tiles = append(group.Tiles, g.cells[cy][cx].tile)
				for _, d := range [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
					nx, ny := cx+d[0], cy+d[1]
					if nx < 0 || nx >= g.w || ny < 0 || ny >= g.h {
						continue
					}
					if matched[ny][nx] && !seen[ny][nx] {
						seen[ny][nx] = true
						queue = append(queue, [2]int{nx, ny})
					}
				}
			}
			groups = append(groups, group)
		}
	}
	return groups
}
