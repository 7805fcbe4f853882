package astar

// noSlot marks the absence of a node slot: the parent of a start node, or
// a membership entry whose state has no live node.
const noSlot = int32(-1)

// searchNode represents one explored state during one search.
//
// Nodes live inside a nodeArena; parent is a slot index into the same
// arena rather than a pointer, so arena growth never invalidates a chain.
type searchNode[S comparable] struct {
	state  S
	parent int32 // predecessor slot on the best known path, or noSlot
	g      float64
	h      float64
	f      float64 // g + h, the open-set ordering key
	index  int     // sparse-array identity (cached engines only)
}

// nodeArena recycles search-node slots across searches. acquire prefers a
// previously released slot over growing the backing array; release returns
// a slot for reuse and invalidates its content. Exhaustion is a fatal
// allocation failure (append panics), not a recoverable error.
type nodeArena[S comparable] struct {
	nodes []searchNode[S]
	free  []int32 // released slots, reused LIFO
}

// newNodeArena returns an arena pre-sized for capacity slots.
func newNodeArena[S comparable](capacity int) *nodeArena[S] {
	return &nodeArena[S]{
		nodes: make([]searchNode[S], 0, capacity),
		free:  make([]int32, 0, capacity),
	}
}

// acquire returns a slot ready for field initialization. The slot content
// is whatever the previous occupant left; callers must set every field.
//
// Growing the backing array may move it: take any *searchNode pointers
// after acquire, never across it.
func (a *nodeArena[S]) acquire() int32 {
	if n := len(a.free); n > 0 {
		slot := a.free[n-1]
		a.free = a.free[:n-1]

		return slot
	}
	a.nodes = append(a.nodes, searchNode[S]{})

	return int32(len(a.nodes) - 1)
}

// release returns slot to the free list for reuse.
func (a *nodeArena[S]) release(slot int32) {
	a.free = append(a.free, slot)
}

// at returns the node stored in slot. The pointer is valid until the next
// acquire that grows the arena.
func (a *nodeArena[S]) at(slot int32) *searchNode[S] {
	return &a.nodes[slot]
}

// size reports how many slots the arena has ever allocated, reused or not.
func (a *nodeArena[S]) size() int {
	return len(a.nodes)
}
