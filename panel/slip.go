package panel

import "sort"

// Block-slip: a swap request at the cursor may kick a stationary tile into
// a column a tile is still falling through, redirecting the fall instead of
// performing a plain exchange.

type restackItem struct {
	tile   *Tile
	visual float64
	// nudge items were close enough to seated that they hop up with a
	// quick fixed-length bump; the rest resume falling to their new rows.
	nudge bool
}

// trySlip recognizes the two slip shapes and executes the kick. Returns
// false when the cursor cells call for an ordinary swap instead.
func (g *Grid) trySlip(lx, rx, y int) bool {
	lt, rt := g.cells[y][lx].tile, g.cells[y][rx].tile
	leftFalling := lt != nil && lt.State == Falling
	rightFalling := rt != nil && rt.State == Falling

	var kicked *Tile
	var fallCol int

	switch {
	case leftFalling && rightFalling:
		return false
	case leftFalling || rightFalling:
		// kick-under: the idle side slides beneath the faller
		if leftFalling {
			kicked, fallCol = rt, lx
		} else {
			kicked, fallCol = lt, rx
		}
		if kicked == nil || kicked.State != Idle {
			return false
		}
	default:
		// slip: both cursor cells are settled, but a faller higher up in
		// one column will land at or below the cursor row
		col, ok := g.findSlipColumn(lx, rx, y)
		if !ok {
			return false
		}
		fallCol = col
		if col == lx {
			kicked = rt
		} else {
			kicked = lt
		}
		if kicked == nil || kicked.State != Idle {
			return false
		}
	}

	return g.executeSlip(kicked, fallCol, y)
}

// findSlipColumn looks above the cursor for a falling tile whose committed
// landing row is at or below the cursor row. Left column wins a tie.
func (g *Grid) findSlipColumn(lx, rx, y int) (int, bool) {
	for _, col := range []int{lx, rx} {
		for _, a := range g.anims {
			if a.kind != animFall || a.toX != col {
				continue
			}
			if a.toY <= y && a.visualY() > float64(y) {
				return col, true
			}
		}
	}
	return 0, false
}

// executeSlip kicks the tile sideways into the slip cell and restacks every
// occupant of the target column at or above the slip row. All the old grid
// slots are cleared before any new slot is written, so the cell array never
// holds a transient double occupancy.
func (g *Grid) executeSlip(kicked *Tile, fallCol, slipRow int) bool {
	var items []restackItem
	for yy := slipRow; yy < g.h; yy++ {
		c := g.cells[yy][fallCol]
		if c.garbage != nil {
			// nothing slips through or around garbage
			return false
		}
		t := c.tile
		if t == nil {
			continue
		}
		if a := g.animFor(t); a != nil && a.kind == animFall {
			items = append(items, restackItem{
				tile:   t,
				visual: a.visualY(),
				nudge:  a.visualY() < float64(a.toY)+1 && a.fallDepth() < 0.5,
			})
		} else {
			items = append(items, restackItem{tile: t, visual: float64(yy), nudge: true})
		}
	}

	// a faller committed to a row below the slip row is stored at its target
	// cell, which the scan above cannot see; it still redirects while its
	// visual is above the cursor
	for _, a := range g.anims {
		if a.kind != animFall || a.toX != fallCol || a.toY >= slipRow {
			continue
		}
		if a.visualY() <= float64(slipRow) {
			continue
		}
		items = append(items, restackItem{tile: a.tile, visual: a.visualY()})
	}

	if !g.restack(fallCol, slipRow, items) {
		g.logger.Error("slip cascade overflowed the top of the grid",
			"col", fallCol, "row", slipRow)
		return false
	}

	// the kicked tile swaps horizontally into the freed slip cell
	fromX := kicked.X
	g.cells[kicked.Y][kicked.X].tile = nil
	g.cells[slipRow][fallCol].tile = kicked
	kicked.X, kicked.Y = fallCol, slipRow
	kicked.State = Swapping
	g.startAnim(&anim{
		tile:     kicked,
		kind:     animKick,
		fromX:    float64(fromX),
		fromY:    float64(slipRow),
		toX:      fallCol,
		toY:      slipRow,
		duration: g.cfg.SwapDuration,
	})

	// wait out the slowest of swap, nudges and retargeted falls, then let
	// gravity settle the residual gaps and rescan
	longest := g.cfg.SwapDuration
	for _, it := range items {
		if a := g.animFor(it.tile); a != nil && a.duration > longest {
			longest = a.duration
		}
	}
	g.armSettle(longest)
	return true
}

// restack reassigns every item to consecutive free rows above base, lowest
// visual first, and restarts their animations from where the visuals
// currently are. Returns false (and commits nothing) if the stack would
// overflow the top of the grid.
func (g *Grid) restack(col, base int, items []restackItem) bool {
	if len(items) == 0 {
		return true
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].visual < items[j].visual
	})

	// plan against the column occupancy with the movers removed
	moving := make(map[*Tile]bool, len(items))
	for _, it := range items {
		moving[it.tile] = true
	}
	free := func(y int) bool {
		c := g.cells[y][col]
		if c.garbage != nil {
			return false
		}
		return c.tile == nil || moving[c.tile]
	}
	targets := make([]int, len(items))
	row := base + 1
	for i := range items {
		for row < g.h && !free(row) {
			row++
		}
		if row >= g.h {
			return false
		}
		targets[i] = row
		row++
	}

	// two-pass commit: clear every old slot, then write every new one
	for _, it := range items {
		g.cells[it.tile.Y][col].tile = nil
	}
	for i, it := range items {
		t := it.tile
		g.cells[targets[i]][col].tile = t
		t.Y = targets[i]
		if it.nudge {
			g.startNudge(t, it.visual, targets[i])
		} else {
			g.startFall(t, it.visual, targets[i], true)
		}
	}
	return true
}
