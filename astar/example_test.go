// Package astar_test provides examples demonstrating how to use the search
// engines. Each example is runnable via “go test -run Example”, showing
// both code and expected output.
package astar_test

import (
	"fmt" // fmt is used to print results in examples
	"math"

	"github.com/katalvlaran/pathfinder/astar"
)

// ExampleEngine_FindPath demonstrates a search across an open 3×3 tile map
// with 8-direction movement: orthogonal moves cost 1.0, diagonal 1.4.
// The best route from (0,0) to (2,2) is the straight diagonal.
// Complexity: O(E log V) over the explored region.
func ExampleEngine_FindPath() {
	type tile struct{ X, Y int }

	// 1) The remaining-cost estimate: Chebyshev distance, admissible for
	//    this movement model.
	estimate := func(n, g tile) float64 {
		return math.Max(math.Abs(float64(n.X-g.X)), math.Abs(float64(n.Y-g.Y)))
	}

	// 2) The neighbor relation: emit the in-bounds surrounding tiles with
	//    their move costs.
	neighbors := func(node tile, add astar.AddNeighborFunc[tile]) {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				to := tile{node.X + dx, node.Y + dy}
				if to.X < 0 || to.X > 2 || to.Y < 0 || to.Y > 2 {
					continue
				}
				cost := 1.0
				if dx != 0 && dy != 0 {
					cost = 1.4
				}
				add(to, cost)
			}
		}
	}

	// 3) Run the search. The path comes back goal→start.
	e := astar.NewEngine[tile]()
	res, path, err := e.FindPath(tile{0, 0}, tile{2, 2}, estimate, neighbors)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("result:", res)
	for _, p := range path {
		fmt.Printf("(%d,%d) ", p.X, p.Y)
	}
	fmt.Println()
	// Output:
	// result: found
	// (2,2) (1,1) (0,0)
}

// ExampleCachedEngine_FindPath demonstrates the neighbor cache: the first
// search enumerates each expanded state once, the second search replays
// every out-edge from the cache without calling the enumerator at all.
func ExampleCachedEngine_FindPath() {
	// 1) A three-state line 0—1—2 with unit move costs, keyed by the state
	//    itself (states are already dense integers).
	calls := 0
	neighbors := func(node int, add astar.AddIndexedNeighborFunc[int]) {
		calls++
		if node > 0 {
			add(node-1, node-1, 1)
		}
		if node < 2 {
			add(node+1, node+1, 1)
		}
	}
	zero := func(int, int) float64 { return 0 }

	// 2) First search: the enumerator runs for every expanded state.
	e := astar.NewCachedEngine[int]()
	res, path, err := e.FindPath(0, 0, 2, zero, neighbors)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("first: %s, path=%v, enumerator calls=%d\n", res, path, calls)

	// 3) Second search over the same region: served from the cache.
	res, path, _ = e.FindPath(0, 0, 2, zero, neighbors)
	fmt.Printf("second: %s, path=%v, enumerator calls=%d\n", res, path, calls)
	// Output:
	// first: found, path=[2 1 0], enumerator calls=2
	// second: found, path=[2 1 0], enumerator calls=2
}

// ExampleEngine_Step demonstrates incremental searching: one node expansion
// per Step call, so long searches can be spread across frames or ticks.
func ExampleEngine_Step() {
	// 1) A five-state line 0—1—2—3—4 with unit move costs.
	neighbors := func(node int, add astar.AddNeighborFunc[int]) {
		if node > 0 {
			add(node-1, 1)
		}
		if node < 4 {
			add(node+1, 1)
		}
	}
	zero := func(int, int) float64 { return 0 }

	// 2) Seed the search, then pump Step until it reports a terminal result.
	e := astar.NewEngine[int]()
	if err := e.InitializeStep(0, 4, zero, neighbors); err != nil {
		fmt.Println("error:", err)
		return
	}

	steps := 0
	res := astar.PathSearching
	for res == astar.PathSearching {
		res = e.Step()
		steps++
	}

	fmt.Printf("result=%s steps=%d path=%v\n", res, steps, e.Path())
	// Output: result=found steps=5 path=[4 3 2 1 0]
}
