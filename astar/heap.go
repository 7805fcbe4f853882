package astar

import "container/heap"

// openHeap is the open set: a binary min-heap of arena slots ordered by
// each node's f value. Ties are broken arbitrarily; callers must not
// depend on which of two equal-f nodes is expanded first, because rebuild
// re-heapifies in full and may reorder equal keys.
type openHeap[S comparable] struct {
	arena *nodeArena[S]
	slots []int32
}

// Len returns the number of open nodes.
func (h *openHeap[S]) Len() int { return len(h.slots) }

// Less orders slots by ascending f.
func (h *openHeap[S]) Less(i, j int) bool {
	return h.arena.nodes[h.slots[i]].f < h.arena.nodes[h.slots[j]].f
}

// Swap swaps two slots in the heap.
func (h *openHeap[S]) Swap(i, j int) {
	h.slots[i], h.slots[j] = h.slots[j], h.slots[i]
}

// Push adds a slot onto the heap. Called by heap.Push; x must be an int32.
func (h *openHeap[S]) Push(x interface{}) {
	h.slots = append(h.slots, x.(int32))
}

// Pop removes and returns the last slot. Called by heap.Pop.
func (h *openHeap[S]) Pop() interface{} {
	old := h.slots
	n := len(old)
	slot := old[n-1]
	h.slots = old[:n-1]

	return slot
}

// push inserts slot in O(log n).
func (h *openHeap[S]) push(slot int32) {
	heap.Push(h, slot)
}

// popMin removes and returns the slot with the smallest f in O(log n).
func (h *openHeap[S]) popMin() int32 {
	return heap.Pop(h).(int32)
}

// rebuild restores the heap invariant after an open node's f was decreased
// in place. A full re-heapify is used instead of a localized decrease-key;
// O(n), still correct, and the reason equal-f order is unspecified.
func (h *openHeap[S]) rebuild() {
	heap.Init(h)
}

// reset empties the heap without releasing the backing array.
func (h *openHeap[S]) reset() {
	h.slots = h.slots[:0]
}
