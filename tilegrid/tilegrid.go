// Package tilegrid: the 8-direction Pathfinder. See doc.go for the
// package contract.
package tilegrid

import (
	"github.com/katalvlaran/pathfinder/astar"
)

// Pathfinder finds paths on a 2D tile map with 8-direction movement,
// caching each tile's out-edges by row-major index. See the package doc
// for the cache/blocking contract.
type Pathfinder struct {
	engine *astar.CachedEngine[Coord]
	width  int
}

// New constructs a Pathfinder with the given options. If WithMapWidth is
// not supplied, SetMapWidth must be called before the first search.
func New(opts ...Option) *Pathfinder {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Pathfinder{
		engine: astar.NewCachedEngine[Coord](astar.WithPoolCapacity(cfg.PoolCapacity)),
		width:  cfg.MapWidth,
	}
}

// SetMapWidth sets the width used for row-major indexing. Changing the
// width discards the entire neighbor cache: indexes computed under the old
// width alias different cells under the new one. Setting the same width
// again is a no-op.
func (p *Pathfinder) SetMapWidth(width int) {
	if width == p.width {
		return
	}
	p.width = width
	p.engine.ClearCache()
}

// MapWidth returns the configured map width (0 if unset).
func (p *Pathfinder) MapWidth() int {
	return p.width
}

// Index maps a coordinate to its row-major index: y*mapWidth + x.
func (p *Pathfinder) Index(pos Coord) int {
	return pos.Y*p.width + pos.X
}

// CoordinateOf converts a row-major index back to a coordinate.
func (p *Pathfinder) CoordinateOf(index int) Coord {
	return Coord{X: index % p.width, Y: index / p.width}
}

// FindPath searches from start to goal assuming all 8 surrounding tiles
// are always reachable; only the move-cost evaluator is consulted. Blocks
// until PathFound (path returned goal→start) or PathNotFound (nil path).
//
// The caller must bound the map through moveCost (or use FindPathBlocked):
// candidate neighbors are generated without bounds checks.
func (p *Pathfinder) FindPath(start, goal Coord, moveCost MoveCostFunc, destCost DestinationCostFunc) (astar.PathResult, []Coord, error) {
	if p.width <= 0 {
		return astar.PathNotFound, nil, ErrMapWidthNotSet
	}

	return p.engine.FindPath(start, p.Index(start), goal, destCost, p.neighborFunc(moveCost, nil))
}

// FindPathBlocked searches from start to goal, additionally consulting the
// move-blocked predicate for every candidate edge before it is relaxed.
// Blocked edges are not recorded into the cache; once a region is cached,
// replays skip the predicate (see the package doc).
func (p *Pathfinder) FindPathBlocked(start, goal Coord, moveCost MoveCostFunc, blocked MoveBlockedFunc, destCost DestinationCostFunc) (astar.PathResult, []Coord, error) {
	if p.width <= 0 {
		return astar.PathNotFound, nil, ErrMapWidthNotSet
	}

	return p.engine.FindPath(start, p.Index(start), goal, destCost, p.neighborFunc(moveCost, blocked))
}

// ClearCache discards every tile's recorded out-edges.
func (p *Pathfinder) ClearCache() {
	p.engine.ClearCache()
}

// ClearCachePosition invalidates one tile's recorded out-edges. Call it
// when the cost or blocking of moves out of that tile changed. Positions
// never cached are a no-op.
func (p *Pathfinder) ClearCachePosition(pos Coord) {
	p.engine.ClearCacheIndex(p.Index(pos))
}

// neighborFunc adapts the fixed 8-direction topology to the cached
// engine's enumerator contract. A nil blocked predicate means every
// surrounding tile is a candidate.
func (p *Pathfinder) neighborFunc(moveCost MoveCostFunc, blocked MoveBlockedFunc) astar.IndexedNeighborFunc[Coord] {
	return func(node Coord, add astar.AddIndexedNeighborFunc[Coord]) {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				to := Coord{X: node.X + dx, Y: node.Y + dy}
				if blocked != nil && blocked(node, to) {
					continue
				}
				add(to, p.Index(to), moveCost(node, to))
			}
		}
	}
}
