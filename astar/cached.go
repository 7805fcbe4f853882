// Package astar: cached engine. See doc.go for the package contract.
package astar

// cachedEdge is one recorded out-edge of a cached origin.
type cachedEdge[S comparable] struct {
	state S
	index int
	cost  float64
}

// cacheEntry holds an origin's recorded out-edges. An entry only becomes
// populated when at least one edge is recorded, so an origin whose
// enumerator emitted nothing is enumerated again on its next expansion.
type cacheEntry[S comparable] struct {
	populated bool
	edges     []cachedEdge[S]
}

// CachedEngine is an A* pathfinder that memoizes each origin's out-edges
// by integer index. If state-change costs can change frequently, use the
// plain Engine instead.
//
// Every state must carry a unique index (any int, negative included) used
// for membership and cache addressing, independent of equality on S. The
// cache persists across searches until ClearCache or ClearCacheIndex;
// everything else is per-search state, and the node arena persists only as
// a pool. Not safe for concurrent use.
type CachedEngine[S comparable] struct {
	arena  *nodeArena[S]
	open   openHeap[S]
	closed []int32
	seen   sparseTable[listEntry]
	cache  sparseTable[cacheEntry[S]]

	current   int32
	goal      S
	destCost  DestinationCostFunc[S]
	neighbors IndexedNeighborFunc[S]

	done   bool
	result PathResult
}

// NewCachedEngine constructs a cached engine with the given options.
func NewCachedEngine[S comparable](opts ...Option) *CachedEngine[S] {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	arena := newNodeArena[S](cfg.PoolCapacity)

	return &CachedEngine[S]{
		arena:   arena,
		open:    openHeap[S]{arena: arena},
		current: noSlot,
	}
}

// FindPath searches from start (whose index is startIndex) to goal,
// blocking until a path is found or every reachable state has been
// expanded. Semantics match Engine.FindPath; the neighbor enumerator is
// only consulted for origins without a populated cache entry, and its
// emissions are recorded as they relax.
func (e *CachedEngine[S]) FindPath(start S, startIndex int, goal S, destCost DestinationCostFunc[S], neighbors IndexedNeighborFunc[S]) (PathResult, []S, error) {
	if err := e.InitializeStep(start, startIndex, goal, destCost, neighbors); err != nil {
		return PathNotFound, nil, err
	}

	for {
		switch e.Step() {
		case PathFound:
			return PathFound, e.Path(), nil
		case PathNotFound:
			return PathNotFound, nil, nil
		}
	}
}

// InitializeStep prepares the engine for single stepping. Per-search state
// is cleared; the neighbor cache is kept.
func (e *CachedEngine[S]) InitializeStep(start S, startIndex int, goal S, destCost DestinationCostFunc[S], neighbors IndexedNeighborFunc[S]) error {
	if destCost == nil {
		return ErrNilDestinationCost
	}
	if neighbors == nil {
		return ErrNilNeighborFunc
	}

	// 1) Clear per-search state, recycling the previous search's nodes.
	e.reset()

	e.goal = goal
	e.destCost = destCost
	e.neighbors = neighbors

	// 2) Create the start node: g seeded with destCost(start, goal), h = 0.
	slot := e.arena.acquire()
	n := e.arena.at(slot)
	n.state = start
	n.parent = noSlot
	n.g = destCost(start, goal)
	n.h = 0
	n.f = n.g + n.h
	n.index = startIndex

	// 3) Push it open and record membership under its index.
	e.open.push(slot)
	ent := e.seen.at(startIndex)
	ent.slot = slot
	ent.onOpen = true

	return nil
}

// Step performs exactly one expansion. Same contract as Engine.Step.
func (e *CachedEngine[S]) Step() PathResult {
	if e.done {
		return e.result
	}
	r := e.expandOnce()
	if r != PathSearching {
		e.done = true
		e.result = r
	}

	return r
}

// Path returns the states from the most recently expanded node back to the
// start (goal→start after PathFound). Nil before any expansion.
func (e *CachedEngine[S]) Path() []S {
	var path []S
	for slot := e.current; slot != noSlot; slot = e.arena.at(slot).parent {
		path = append(path, e.arena.at(slot).state)
	}

	return path
}

// Cost returns the g value of the most recently expanded node (true path
// cost plus the start seed after PathFound). Zero before any expansion.
func (e *CachedEngine[S]) Cost() float64 {
	if e.current == noSlot {
		return 0
	}

	return e.arena.at(e.current).g
}

// Expanded reports how many nodes the current search has closed so far.
func (e *CachedEngine[S]) Expanded() int {
	return len(e.closed)
}

// ClearCache discards every recorded neighbor list. Call it when edge
// costs changed globally.
func (e *CachedEngine[S]) ClearCache() {
	e.cache.reset()
}

// ClearCacheIndex invalidates the recorded neighbor list of one origin.
// Call it when the cost of moving out of that state changed; a stale entry
// would otherwise replay the old costs. Unknown indexes are a no-op.
func (e *CachedEngine[S]) ClearCacheIndex(index int) {
	if ce, ok := e.cache.peek(index); ok {
		ce.populated = false
		ce.edges = ce.edges[:0]
	}
}

// expandOnce pops and expands the minimum-f open node, replaying the
// origin's cache entry when populated and enumerating (while recording)
// otherwise.
func (e *CachedEngine[S]) expandOnce() PathResult {
	if e.open.Len() == 0 {
		return PathNotFound
	}

	slot := e.open.popMin()
	e.current = slot
	n := e.arena.at(slot)

	ent := e.seen.at(n.index)
	ent.onOpen = false
	ent.onClosed = true
	e.closed = append(e.closed, slot)

	if n.state == e.goal {
		return PathFound
	}

	state, index := n.state, n.index
	if ce, ok := e.cache.peek(index); ok && ce.populated {
		// Cache hit: replay the recorded tuples through relaxation without
		// invoking the enumerator and without re-recording.
		edges := ce.edges
		for i := range edges {
			e.relax(edges[i].state, edges[i].index, edges[i].cost)
		}
	} else {
		// Cache miss: the caller's enumerator runs once; addNeighbor
		// records each emission into this origin's entry as a side effect.
		e.neighbors(state, e.addNeighbor)
	}

	return PathSearching
}

// addNeighbor relaxes one emitted neighbor and records the edge into the
// current origin's cache entry, marking the entry populated.
func (e *CachedEngine[S]) addNeighbor(neighbor S, index int, moveCost float64) {
	e.relax(neighbor, index, moveCost)

	ce := e.cache.at(e.arena.at(e.current).index)
	ce.populated = true
	ce.edges = append(ce.edges, cachedEdge[S]{state: neighbor, index: index, cost: moveCost})
}

// relax applies the A* relaxation rule to a candidate neighbor, addressed
// by its integer index.
func (e *CachedEngine[S]) relax(neighbor S, index int, moveCost float64) {
	ent := e.seen.at(index)

	// Closed states are never reconsidered.
	if ent.onClosed {
		return
	}

	// curG must be read before any acquire: growing the arena may move it.
	curG := e.arena.at(e.current).g

	if ent.onOpen {
		node := e.arena.at(ent.slot)
		if curG+moveCost < node.g {
			node.g = curG + moveCost
			node.f = node.g + node.h
			node.parent = e.current
			e.open.rebuild()
		}

		return
	}

	slot := e.arena.acquire()
	n := e.arena.at(slot)
	n.state = neighbor
	n.parent = e.current
	n.g = curG + moveCost
	n.h = e.destCost(neighbor, e.goal)
	n.f = n.g + n.h
	n.index = index

	e.open.push(slot)

	// ent is still valid: the seen table only moves on seen.at, and none
	// has run since ent was taken.
	ent.slot = slot
	ent.onOpen = true
}

// reset clears per-search state and recycles node slots. The cache is
// deliberately untouched: it is scoped to the engine, not the search.
func (e *CachedEngine[S]) reset() {
	for _, slot := range e.open.slots {
		e.arena.release(slot)
	}
	e.open.reset()
	for _, slot := range e.closed {
		e.arena.release(slot)
	}
	e.closed = e.closed[:0]
	e.seen.reset()

	e.current = noSlot
	e.done = false
	e.result = PathSearching
}
