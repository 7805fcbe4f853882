// Package tilegrid_test provides examples demonstrating how to use the
// grid pathfinder. Each example is runnable via “go test -run Example”,
// showing both code and expected output.
package tilegrid_test

import (
	"fmt" // fmt is used to print results in examples
	"math"

	"github.com/katalvlaran/pathfinder/tilegrid"
)

// ExamplePathfinder_FindPathBlocked demonstrates a search across a small
// map with a wall. Movement is 8-direction, orthogonal moves cost 1.0 and
// diagonal moves 1.4; the blocking predicate doubles as the map boundary.
// Complexity: O(E log V) over the explored region.
func ExamplePathfinder_FindPathBlocked() {
	// The map, as humans draw it: '#' is a wall.
	//	. . # . .
	//	. . # . .
	//	. . # . .
	//	. . . . .
	const width, height = 5, 4
	walls := map[tilegrid.Coord]bool{
		{X: 2, Y: 0}: true,
		{X: 2, Y: 1}: true,
		{X: 2, Y: 2}: true,
	}

	// 1) Price a single move.
	moveCost := func(from, to tilegrid.Coord) float64 {
		if from.X != to.X && from.Y != to.Y {
			return 1.4
		}

		return 1.0
	}
	// 2) Forbid leaving the map and entering walls.
	blocked := func(_, to tilegrid.Coord) bool {
		return to.X < 0 || to.X >= width || to.Y < 0 || to.Y >= height || walls[to]
	}
	// 3) Estimate the remaining cost: Chebyshev distance, admissible here.
	estimate := func(n, g tilegrid.Coord) float64 {
		return math.Max(math.Abs(float64(n.X-g.X)), math.Abs(float64(n.Y-g.Y)))
	}

	// 4) Search from the top-left corner to the top-right one; the wall
	//    forces a detour through the gap at y=3. The path is goal→start.
	p := tilegrid.New(tilegrid.WithMapWidth(width))
	res, path, err := p.FindPathBlocked(
		tilegrid.Coord{X: 0, Y: 0}, tilegrid.Coord{X: 4, Y: 0},
		moveCost, blocked, estimate,
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("result:", res)
	fmt.Println("tiles:", len(path))
	// Output:
	// result: found
	// tiles: 7
}

// ExamplePathfinder_Index demonstrates row-major indexing, the identity
// under which each tile's out-edges are cached.
func ExamplePathfinder_Index() {
	p := tilegrid.New(tilegrid.WithMapWidth(10))

	idx := p.Index(tilegrid.Coord{X: 3, Y: 2})
	fmt.Println("index:", idx)
	fmt.Println("coordinate:", p.CoordinateOf(idx))
	// Output:
	// index: 23
	// coordinate: {3 2}
}
