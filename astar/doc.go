// Package astar implements the A* best-first search algorithm over an
// abstract state space, in two forms: a fully generic engine and a cached
// engine that memoizes each origin's out-edges by integer index.
//
// What:
//
//   - Engine[S] runs A* over caller-supplied states: you provide a
//     destination-cost (heuristic) evaluator and a neighbor enumerator,
//     the engine owns the open set, the closed set and the node pool.
//   - CachedEngine[S] additionally requires a unique integer index per
//     state (any int, negative included) and records each origin's
//     (neighbor, index, cost) tuples the first time it is expanded. Later
//     expansions of the same origin, in the same or a later search, replay
//     the recorded tuples instead of invoking the enumerator, until the
//     entry is invalidated.
//   - Both engines run blocking to completion (FindPath) or one expansion
//     per call (InitializeStep + Step), producing identical results; the
//     step form is a suspension point, not an approximation.
//
// Why:
//
//   - Game AI and robotics: many short path queries on mostly-static maps.
//   - Host applications that interleave pathfinding with per-frame work
//     drive Step at their own pace; cancellation is simply to stop calling.
//   - Search nodes are recycled through a slot arena, so a warm engine
//     performs repeated searches without allocating.
//
// Complexity:
//
//   - FindPath: O((V + E) log V) time, O(V + E) memory,
//     where V = states reached and E = edges relaxed.
//   - Step: O(d log V) per call (d = out-degree of the expanded state).
//   - Cache lookup and membership lookup: O(1) amortized per index,
//     independent of how far indices range from zero.
//
// Cost convention (inherited deliberately):
//
//   - The start node's g is seeded with destCost(start, goal) rather than 0,
//     and its h is 0. Relative ordering of the open set is unaffected, but
//     Cost reports true path cost plus that seed. Callers comparing against
//     absolute costs should subtract destCost(start, goal).
//
// Results:
//
//   - PathFound     — a path exists; Path returns it in goal→start order.
//   - PathNotFound  — the reachable space was exhausted; no path.
//   - PathSearching — returned by Step while work remains.
//
// Errors:
//
//   - ErrNilDestinationCost: a nil heuristic evaluator was supplied.
//   - ErrNilNeighborFunc: a nil neighbor enumerator was supplied.
//
// Engines are not safe for concurrent use; one engine instance owns one
// search at a time.
package astar
