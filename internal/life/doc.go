// Package life implements Conway's Game of Life (B3/S23) on a fixed-size,
// edge-clamped grid.
//
// The package is built around two types:
//
//   - [Cell]: one grid position with its current and pending state
//   - [Grid]: a flat, row-major array of cells, index = x + y*Width
//
// A generation is advanced in two phases. [Grid.ComputeNext] stores the
// next state of every cell using only the alive flags frozen at the start
// of the pass, then [Grid.Commit] applies them. [AdvanceGeneration] runs
// both phases back to back.
//
// Neighbourhoods are clamped at the grid edges: a corner cell has three
// neighbours, an edge cell five. Nothing wraps around.
//
// # Example
//
//	g, _ := life.NewGrid(40, 20)
//	life.Seed(g, rand.New(rand.NewSource(1)), 10)
//	life.AdvanceGeneration(g)
//	fmt.Println(g.Living())
//
// # Thread Safety
//
// Grid is NOT thread-safe. A grid is owned by one controller which mutates
// it from sequential frame callbacks.
package life
