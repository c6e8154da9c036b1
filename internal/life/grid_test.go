package life

import (
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func aliveSet(g *Grid) [][2]int {
	var out [][2]int
	for _, c := range g.Cells {
		if c.Alive {
			out = append(out, [2]int{c.X, c.Y})
		}
	}
	return out
}

var _ = Describe("Grid", func() {
	It("rejects non-positive dimensions", func() {
		_, err := NewGrid(0, 3)
		Expect(err).To(MatchError(ErrInvalidDimensions))
		_, err = NewGrid(3, -1)
		Expect(err).To(MatchError(ErrInvalidDimensions))
	})

	It("maps coordinates with index = x + y*width", func() {
		g := mustGrid(7, 3)
		Expect(g.Cells).To(HaveLen(21))
		Expect(g.Index(2, 1)).To(Equal(9))
		Expect(g.Cells[9].X).To(Equal(2))
		Expect(g.Cells[9].Y).To(Equal(1))
		Expect(g.Index(7, 0)).To(Equal(-1))
		Expect(g.Index(0, -1)).To(Equal(-1))
	})

	It("seeds according to the limit percentage", func() {
		g := mustGrid(50, 50)
		Seed(g, rand.New(rand.NewSource(7)), 0)
		Expect(g.Living()).To(BeZero())
		Seed(g, rand.New(rand.NewSource(7)), 100)
		Expect(g.Living()).To(Equal(2500))
		Seed(g, rand.New(rand.NewSource(7)), 30)
		Expect(g.Living()).To(BeNumerically("~", 750, 150))
	})

	It("keeps the current state when no next state is pending", func() {
		g := mustGrid(3, 3)
		g.Set(1, 1, true)
		g.Commit()
		Expect(g.Living()).To(Equal(1))
	})

	It("records each cell's fate before committing it", func() {
		g := mustGrid(5, 5)
		g.Set(1, 2, true)
		g.Set(2, 2, true)
		g.Set(3, 2, true)
		Expect(g.Cells[g.Index(2, 1)].Next).To(Equal(Unset))

		g.ComputeNext()
		Expect(g.Cells[g.Index(2, 2)].Next).To(Equal(Live))
		Expect(g.Cells[g.Index(1, 2)].Next).To(Equal(Dead))
		Expect(g.Cells[g.Index(2, 1)].Next).To(Equal(Live))
		Expect(g.Cells[g.Index(0, 0)].Next).To(Equal(Dead))
		Expect(g.Cells[g.Index(1, 2)].Alive).To(BeTrue())

		g.Commit()
		Expect(g.Cells[g.Index(1, 2)].Alive).To(BeFalse())
		Expect(g.Cells[g.Index(2, 1)].Alive).To(BeTrue())
	})

	It("changes its hash when the population changes", func() {
		g := mustGrid(4, 4)
		before := g.Hash()
		g.Set(2, 2, true)
		Expect(g.Hash()).NotTo(Equal(before))
	})
})

var _ = Describe("AdvanceGeneration", func() {
	It("never births cells on an all-dead grid", func() {
		for _, dims := range [][2]int{{1, 1}, {3, 3}, {10, 4}, {17, 23}} {
			g := mustGrid(dims[0], dims[1])
			for range 5 {
				AdvanceGeneration(g)
				Expect(g.Living()).To(BeZero())
			}
		}
	})

	It("oscillates a blinker with period 2", func() {
		g := mustGrid(5, 5)
		horizontal := [][2]int{{1, 2}, {2, 2}, {3, 2}}
		vertical := [][2]int{{2, 1}, {2, 2}, {2, 3}}
		for _, xy := range horizontal {
			g.Set(xy[0], xy[1], true)
		}

		AdvanceGeneration(g)
		Expect(aliveSet(g)).To(ConsistOf(vertical))

		AdvanceGeneration(g)
		Expect(aliveSet(g)).To(ConsistOf(horizontal))
	})

	It("leaves still lifes unchanged", func() {
		for _, name := range []string{"block", "tub"} {
			p, err := PatternByName(name)
			Expect(err).NotTo(HaveOccurred())
			g := mustGrid(8, 8)
			Expect(PlaceCentered(g, p)).To(Succeed())
			before := aliveSet(g)
			AdvanceGeneration(g)
			Expect(aliveSet(g)).To(ConsistOf(before), name)
		}
	})

	It("does not depend on the phase 1 iteration order", func() {
		forward := mustGrid(24, 16)
		Seed(forward, rand.New(rand.NewSource(42)), 35)

		reverse := mustGrid(24, 16)
		copy(reverse.Cells, forward.Cells)

		AdvanceGeneration(forward)

		for i := len(reverse.Cells) - 1; i >= 0; i-- {
			c := &reverse.Cells[i]
			c.setNext(NextState(c.Alive, CountLiveNeighbors(reverse, *c)))
		}
		reverse.Commit()

		Expect(aliveSet(reverse)).To(Equal(aliveSet(forward)))
	})
})

var _ = Describe("Patterns", func() {
	It("lists every registered pattern", func() {
		Expect(PatternNames()).To(ContainElements("beacon", "blinker", "block", "glider", "tub"))
	})

	It("rejects unknown names", func() {
		_, err := PatternByName("spaceship")
		Expect(err).To(MatchError(ErrUnknownPattern))
	})

	It("rejects placements that fall off the grid", func() {
		p, _ := PatternByName("glider")
		g := mustGrid(4, 4)
		Expect(Place(g, p, 2, 2)).To(MatchError(ErrPatternTooLarge))
		Expect(g.Living()).To(BeZero())
	})

	It("moves a glider one cell diagonally every four generations", func() {
		p, _ := PatternByName("glider")
		g := mustGrid(10, 10)
		Expect(Place(g, p, 1, 1)).To(Succeed())
		var want [][2]int
		for _, c := range p.Coords {
			want = append(want, [2]int{c[0] + 2, c[1] + 2})
		}
		for range 4 {
			AdvanceGeneration(g)
		}
		Expect(aliveSet(g)).To(ConsistOf(want))
	})

	It("populates from a pattern name or at random", func() {
		g := mustGrid(9, 9)
		Expect(Populate(g, "block", nil, 0)).To(Succeed())
		Expect(g.Living()).To(Equal(4))

		Expect(Populate(g, "", rand.New(rand.NewSource(1)), 100)).To(Succeed())
		Expect(g.Living()).To(Equal(81))

		Expect(Populate(g, "spaceship", nil, 0)).To(MatchError(ErrUnknownPattern))
	})
})
