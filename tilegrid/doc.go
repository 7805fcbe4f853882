// Package tilegrid specializes the astar engines to 2D tile maps where
// movement is possible in the 8 directions surrounding each tile.
//
// What:
//
//   - Pathfinder wraps an astar.CachedEngine[Coord] with a fixed topology:
//     from (x, y), the 8 surrounding cells are candidate neighbors.
//   - States are addressed row-major: index = y*mapWidth + x. Changing the
//     map width invalidates the whole cache, because coordinates under the
//     old and new width alias different cells.
//   - FindPath assumes all 8 neighbors are always traversable and consults
//     only the caller's move-cost evaluator. FindPathBlocked additionally
//     consults a move-blocked predicate per candidate edge.
//
// Why:
//
//   - Tile-based games: unit movement over mostly static terrain, where
//     caching each tile's out-edges pays off across many queries.
//   - The blocked predicate doubles as the map boundary: candidate
//     neighbors are generated without bounds checks, so a predicate (or a
//     move-cost function returning prohibitive costs) is how the caller
//     keeps the search inside the map.
//
// Cache and blocking — a documented asymmetry:
//
//	Blocked edges are never recorded into the cache, and cache hits skip
//	the predicate entirely. A FindPathBlocked over a cached region trusts
//	whatever blocking held when the region was first enumerated. When a
//	tile's blocking or costs change, call ClearCachePosition for it (or
//	ClearCache); the engine does not re-validate on replay. A tile whose
//	candidate edges were all blocked records nothing, so blocking is
//	re-derived for it on every expansion.
//
// Complexity:
//
//   - FindPath / FindPathBlocked: O((V + E) log V), E ≤ 8V.
//   - Index / CoordinateOf: O(1).
//
// Errors:
//
//   - ErrMapWidthNotSet: a search was started before SetMapWidth (or
//     WithMapWidth) provided a positive width.
//
// Not safe for concurrent use; one Pathfinder owns one search at a time.
package tilegrid
