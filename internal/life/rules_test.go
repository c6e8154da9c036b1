package life

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func mustGrid(w, h int) *Grid {
	g, err := NewGrid(w, h)
	Expect(err).NotTo(HaveOccurred())
	return g
}

func fill(g *Grid) {
	for i := range g.Cells {
		g.Cells[i].Alive = true
	}
}

var _ = Describe("NextState", func() {
	DescribeTable("B3/S23",
		func(alive bool, n int, want bool) {
			Expect(NextState(alive, n)).To(Equal(want))
		},
		Entry("dead, 0", false, 0, false),
		Entry("alive, 0", true, 0, false),
		Entry("dead, 1", false, 1, false),
		Entry("alive, 1", true, 1, false),
		Entry("alive, 2 survives", true, 2, true),
		Entry("dead, 2 stays dead", false, 2, false),
		Entry("alive, 3 survives", true, 3, true),
		Entry("dead, 3 is born", false, 3, true),
		Entry("alive, 4", true, 4, false),
		Entry("dead, 4", false, 4, false),
		Entry("alive, 8", true, 8, false),
		Entry("dead, 8", false, 8, false),
	)

	It("never keeps a cell with fewer than two or more than three neighbours", func() {
		for _, alive := range []bool{true, false} {
			for _, n := range []int{0, 1, 4, 5, 6, 7, 8} {
				Expect(NextState(alive, n)).To(BeFalse(), "alive=%v n=%d", alive, n)
			}
		}
	})
})

var _ = Describe("CountLiveNeighbors", func() {
	It("excludes the cell itself", func() {
		g := mustGrid(3, 3)
		g.Set(1, 1, true)
		c, _ := g.At(1, 1)
		Expect(CountLiveNeighbors(g, *c)).To(Equal(0))
	})

	It("clamps corners to three neighbours", func() {
		g := mustGrid(5, 4)
		fill(g)
		for _, xy := range [][2]int{{0, 0}, {4, 0}, {0, 3}, {4, 3}} {
			c, _ := g.At(xy[0], xy[1])
			Expect(CountLiveNeighbors(g, *c)).To(Equal(3), "corner %v", xy)
		}
	})

	It("clamps edges to five neighbours and leaves interiors at eight", func() {
		g := mustGrid(5, 4)
		fill(g)
		top, _ := g.At(2, 0)
		left, _ := g.At(0, 2)
		inner, _ := g.At(2, 2)
		Expect(CountLiveNeighbors(g, *top)).To(Equal(5))
		Expect(CountLiveNeighbors(g, *left)).To(Equal(5))
		Expect(CountLiveNeighbors(g, *inner)).To(Equal(8))
	})

	It("does not wrap to the far edge", func() {
		g := mustGrid(4, 4)
		g.Set(3, 3, true)
		g.Set(3, 0, true)
		g.Set(0, 3, true)
		c, _ := g.At(0, 0)
		Expect(CountLiveNeighbors(g, *c)).To(Equal(0))
	})

	It("counts the scenario centre cell as surviving with three neighbours", func() {
		g := mustGrid(3, 3)
		g.Set(1, 1, true)
		g.Set(0, 0, true)
		g.Set(0, 1, true)
		g.Set(1, 0, true)
		centre, _ := g.At(1, 1)
		n := CountLiveNeighbors(g, *centre)
		Expect(n).To(Equal(3))
		Expect(NextState(centre.Alive, n)).To(BeTrue())
	})
})
