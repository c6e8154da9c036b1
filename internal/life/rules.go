package life

// CountLiveNeighbors returns how many of the up to eight cells around c are
// alive. Coordinates outside the grid are skipped rather than wrapped.
func CountLiveNeighbors(g *Grid, c Cell) int {
	count := 0

	minX := max(0, c.X-1)
	maxX := min(g.Width-1, c.X+1)
	minY := max(0, c.Y-1)
	maxY := min(g.Height-1, c.Y+1)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if x == c.X && y == c.Y {
				continue
			}
			if g.Cells[x+y*g.Width].Alive {
				count++
			}
		}
	}

	return count
}

/*
NextState applies the B3/S23 rule to a cell.

	fewer than 2 neighbours   -> dies (underpopulation)
	2 or 3 and alive          -> survives
	exactly 3 and dead        -> born
	more than 3               -> dies (overpopulation)
	anything else             -> stays dead
*/
func NextState(alive bool, liveNeighbors int) bool {
	switch {
	case liveNeighbors < 2:
		return false
	case liveNeighbors > 3:
		return false
	case liveNeighbors == 3:
		return true
	default:
		return alive
	}
}
