package astar

// sparseTable is an index-addressed table re-based on a sliding start
// index. Entries may be addressed by any int, including negative values;
// the backing slice grows in either direction to cover the span between
// the smallest and largest index touched so far.
//
// Lookup and insert are O(1) amortized regardless of how far indices range
// from zero; extending the span toward smaller indices copies the existing
// entries once per re-base.
type sparseTable[T any] struct {
	items []T
	start int // index addressed by items[0]
}

// at returns the entry for index, growing the table to cover it. Fresh
// entries are zero values of T.
func (t *sparseTable[T]) at(index int) *T {
	switch {
	case len(t.items) == 0:
		var zero T
		t.items = append(t.items, zero)
		t.start = index
	case index < t.start:
		grown := make([]T, t.start-index, (t.start-index)+len(t.items))
		t.items = append(grown, t.items...)
		t.start = index
	case index-t.start >= len(t.items):
		need := (index - t.start + 1) - len(t.items)
		t.items = append(t.items, make([]T, need)...)
	}

	return &t.items[index-t.start]
}

// peek returns the entry for index only if the table already covers it.
// It never grows the table.
func (t *sparseTable[T]) peek(index int) (*T, bool) {
	if index < t.start || index-t.start >= len(t.items) {
		return nil, false
	}

	return &t.items[index-t.start], true
}

// reset discards all entries and the base offset, keeping the backing
// array for reuse. Every live entry is re-appended as a zero value by at,
// so stale content never resurfaces.
func (t *sparseTable[T]) reset() {
	t.items = t.items[:0]
	t.start = 0
}
