// Package pathfinder is a reusable best-first search toolkit for finding
// connected paths from one state to another.
//
// 🚀 What is pathfinder?
//
//	A small, focused library built around one engine and two specializations:
//		• astar.Engine        — fully generic A*: you supply the states,
//		  the heuristic and the neighbor relation, the engine does the rest
//		• astar.CachedEngine  — the same engine with a per-origin neighbor
//		  cache addressed by integer index, for topologies that rarely change
//		• tilegrid.Pathfinder — 8-direction 2D tile maps with row-major
//		  indexing, optional per-edge blocking and the same caching strategy
//
// ✨ Why choose pathfinder?
//
//   - Allocation-friendly – search nodes live in a recycled slot arena,
//     so repeated queries stop allocating once the pool is warm
//   - Resumable – every engine runs blocking to completion (FindPath) or
//     one expansion at a time (InitializeStep/Step), with identical results
//   - Pure Go – no cgo, no hidden deps
//   - Predictable – "no path" is a result, not an error; the step API is
//     safe to call defensively
//
// Under the hood, everything is organized under two subpackages:
//
//	astar/    — the priority-ordered expansion loop, node pool, membership
//	            bookkeeping and neighbor cache
//	tilegrid/ — the 8-direction grid specialization
//
// Quick ASCII example:
//
//	S . . .        S * * .
//	. # # .   →    . # # *
//	. . . G        . . . G
//
//	a route threaded over a wall on a 4×3 map.
//
// Dive into the package docs of astar and tilegrid for the full contracts.
//
//	go get github.com/katalvlaran/pathfinder
package pathfinder
