package life

// Fate is the computed but not yet applied state of a cell.
type Fate uint8

const (
	Unset Fate = iota
	Live
	Dead
)

// Cell is one grid position. X and Y are in grid units, not pixels.
type Cell struct {
	X, Y  int
	Alive bool
	Next  Fate
}

// setNext records the cell's fate.
func (c *Cell) setNext(alive bool) {
	if alive {
		c.Next = Live
	} else {
		c.Next = Dead
	}
}

// commit applies the fate. An unset fate keeps the current state.
func (c *Cell) commit() {
	switch c.Next {
	case Live:
		c.Alive = true
	case Dead:
		c.Alive = false
	}
}
