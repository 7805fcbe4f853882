package astar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHeap(fs ...float64) (*openHeap[int], []int32) {
	a := newNodeArena[int](len(fs))
	h := &openHeap[int]{arena: a}
	slots := make([]int32, 0, len(fs))
	for i, f := range fs {
		slot := a.acquire()
		n := a.at(slot)
		n.state = i
		n.f = f
		h.push(slot)
		slots = append(slots, slot)
	}

	return h, slots
}

func TestOpenHeap_PopsAscendingF(t *testing.T) {
	h, _ := newTestHeap(5, 1, 4, 2, 3)

	got := make([]float64, 0, h.Len())
	for h.Len() > 0 {
		got = append(got, h.arena.at(h.popMin()).f)
	}
	assert.Equal(t, []float64{1, 2, 3, 4, 5}, got)
}

func TestOpenHeap_RebuildAfterDecrease(t *testing.T) {
	h, slots := newTestHeap(5, 3, 7)

	// Decrease the worst node below the current minimum, then re-heapify.
	h.arena.at(slots[2]).f = 1
	h.rebuild()

	require.Equal(t, 3, h.Len())
	assert.Equal(t, slots[2], h.popMin())
	assert.Equal(t, slots[1], h.popMin())
	assert.Equal(t, slots[0], h.popMin())
}

func TestOpenHeap_ResetKeepsCapacity(t *testing.T) {
	h, _ := newTestHeap(2, 1, 3)

	h.reset()
	assert.Equal(t, 0, h.Len())

	// The heap is usable again after reset.
	slot := h.arena.acquire()
	h.arena.at(slot).f = 9
	h.push(slot)
	assert.Equal(t, slot, h.popMin())
}
