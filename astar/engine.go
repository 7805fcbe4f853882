// Package astar: generic engine. See doc.go for the package contract.
package astar

// listEntry records, for one state seen during the current search, whether
// it is on the open set, on the closed set, and — while open — which arena
// slot holds its live node. A state has at most one live node per search;
// reopening updates that node in place instead of creating a duplicate.
type listEntry struct {
	slot     int32
	onOpen   bool
	onClosed bool
}

// Engine is a fully generic A* pathfinder over states of type S. Use
// CachedEngine instead if state-change costs mostly remain the same.
//
// An Engine owns all of its internal state (node arena, open set, closed
// list, membership index) and is not safe for concurrent use: at most one
// search may be in flight per instance. Per-search state is cleared by the
// next FindPath or InitializeStep call; the node arena persists for the
// engine's lifetime so slots are recycled across searches.
type Engine[S comparable] struct {
	arena  *nodeArena[S]
	open   openHeap[S]
	closed []int32 // retained only so slots can be released at search end
	seen   map[S]*listEntry

	current   int32 // most recently expanded slot, or noSlot
	goal      S
	destCost  DestinationCostFunc[S]
	neighbors NeighborFunc[S]

	done   bool
	result PathResult
}

// NewEngine constructs a generic engine with the given options.
func NewEngine[S comparable](opts ...Option) *Engine[S] {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	arena := newNodeArena[S](cfg.PoolCapacity)

	return &Engine[S]{
		arena:   arena,
		open:    openHeap[S]{arena: arena},
		seen:    make(map[S]*listEntry),
		current: noSlot,
	}
}

// FindPath searches from start to goal, blocking until a path is found or
// every reachable state has been expanded.
//
// On PathFound the returned path runs goal→start (reverse it for
// start→goal order); consecutive elements are connected by the neighbor
// relation. On PathNotFound the path is nil. The only errors are nil
// caller-supplied functions.
//
// Complexity: O((V + E) log V) time, O(V + E) memory.
func (e *Engine[S]) FindPath(start, goal S, destCost DestinationCostFunc[S], neighbors NeighborFunc[S]) (PathResult, []S, error) {
	if err := e.InitializeStep(start, goal, destCost, neighbors); err != nil {
		return PathNotFound, nil, err
	}

	// Run the identical per-step loop to completion. FindPath and Step are
	// the same state machine; only the suspension point differs.
	for {
		switch e.Step() {
		case PathFound:
			return PathFound, e.Path(), nil
		case PathNotFound:
			return PathNotFound, nil, nil
		}
	}
}

// InitializeStep prepares the engine for single stepping: it clears all
// per-search state, creates the start node and pushes it onto the open set.
// Call Step repeatedly afterwards until it stops returning PathSearching.
func (e *Engine[S]) InitializeStep(start, goal S, destCost DestinationCostFunc[S], neighbors NeighborFunc[S]) error {
	if destCost == nil {
		return ErrNilDestinationCost
	}
	if neighbors == nil {
		return ErrNilNeighborFunc
	}

	// 1) Clear the open list, closed list and membership index, returning
	//    every node acquired by the previous search to the pool.
	e.reset()

	e.goal = goal
	e.destCost = destCost
	e.neighbors = neighbors

	// 2) Create the start node. g is seeded with destCost(start, goal) and
	//    h is zero — the library's cost convention (see package doc).
	slot := e.arena.acquire()
	n := e.arena.at(slot)
	n.state = start
	n.parent = noSlot
	n.g = destCost(start, goal)
	n.h = 0
	n.f = n.g + n.h

	// 3) Push the start node onto the open set and mark it open.
	e.open.push(slot)
	ent := e.entry(start)
	ent.slot = slot
	ent.onOpen = true

	return nil
}

// Step performs exactly one expansion of the search loop.
//
// It returns PathSearching while work remains, then PathFound or
// PathNotFound. After a terminal result, further calls return the same
// result without doing work. Step before InitializeStep is safe and
// returns PathNotFound.
func (e *Engine[S]) Step() PathResult {
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
// start, in that order (goal→start once Step has returned PathFound). It
// may be called mid-search to inspect the best-path-so-far; before any
// expansion it returns nil.
func (e *Engine[S]) Path() []S {
	var path []S
	for slot := e.current; slot != noSlot; slot = e.arena.at(slot).parent {
		path = append(path, e.arena.at(slot).state)
	}

	return path
}

// Cost returns the g value of the most recently expanded node: after
// PathFound, the path's total cost under the start-seeding convention
// (true cost plus destCost(start, goal)). Zero before any expansion.
func (e *Engine[S]) Cost() float64 {
	if e.current == noSlot {
		return 0
	}

	return e.arena.at(e.current).g
}

// Expanded reports how many nodes the current search has expanded (closed)
// so far. Useful for comparing blocking and step-wise runs, or for callers
// bounding search effort externally.
func (e *Engine[S]) Expanded() int {
	return len(e.closed)
}

// expandOnce pops and expands the minimum-f open node: one iteration of
// the A* loop shared by FindPath and Step.
func (e *Engine[S]) expandOnce() PathResult {
	// 1) Open set empty: the reachable space is exhausted.
	if e.open.Len() == 0 {
		return PathNotFound
	}

	// 2) Pop the minimum-f node and make it current.
	slot := e.open.popMin()
	e.current = slot
	n := e.arena.at(slot)

	// 3) Move it from open to closed; closed is final, the node is never
	//    re-expanded even if a cheaper path to it appears later.
	ent := e.seen[n.state]
	ent.onOpen = false
	ent.onClosed = true
	e.closed = append(e.closed, slot)

	// 4) Goal reached: terminate. Path reconstruction walks parents.
	if n.state == e.goal {
		return PathFound
	}

	// 5) Otherwise enumerate neighbors and relax each one.
	e.neighbors(n.state, e.addNeighbor)

	return PathSearching
}

// addNeighbor relaxes one candidate neighbor of the current node, reached
// with the given move cost. Handed to the caller's NeighborFunc.
func (e *Engine[S]) addNeighbor(neighbor S, moveCost float64) {
	ent := e.entry(neighbor)

	// Closed states are never reconsidered.
	if ent.onClosed {
		return
	}

	// curG must be read before any acquire: growing the arena may move it.
	curG := e.arena.at(e.current).g

	if ent.onOpen {
		// Already open: improve in place if this path is strictly cheaper,
		// then restore heap order. Otherwise leave it unchanged.
		node := e.arena.at(ent.slot)
		if curG+moveCost < node.g {
			node.g = curG + moveCost
			node.f = node.g + node.h
			node.parent = e.current
			e.open.rebuild()
		}

		return
	}

	// First time this state is seen: create, fill and push a new node.
	// h is computed exactly once, here.
	slot := e.arena.acquire()
	n := e.arena.at(slot)
	n.state = neighbor
	n.parent = e.current
	n.g = curG + moveCost
	n.h = e.destCost(neighbor, e.goal)
	n.f = n.g + n.h

	e.open.push(slot)
	ent.slot = slot
	ent.onOpen = true
}

// entry returns the membership entry for state, creating it on first use.
func (e *Engine[S]) entry(state S) *listEntry {
	ent, ok := e.seen[state]
	if !ok {
		ent = &listEntry{slot: noSlot}
		e.seen[state] = ent
	}

	return ent
}

// reset clears all per-search state and recycles every node slot the
// previous search acquired. The pool must not leak across searches: every
// slot on the open or closed list goes back to the free list here.
func (e *Engine[S]) reset() {
	for _, slot := range e.open.slots {
		e.arena.release(slot)
	}
	e.open.reset()
	for _, slot := range e.closed {
		e.arena.release(slot)
	}
	e.closed = e.closed[:0]
	clear(e.seen)

	e.current = noSlot
	e.done = false
	e.result = PathSearching
}
