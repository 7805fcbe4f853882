// Package astar defines core types, configuration options and sentinel
// errors shared by the generic and cached A* engines.
package astar

import (
	"errors"
)

// Sentinel errors returned by the engine constructors and entry points.
var (
	// ErrNilDestinationCost indicates that a nil destination-cost
	// (heuristic) evaluator was passed to FindPath or InitializeStep.
	ErrNilDestinationCost = errors.New("astar: destination-cost evaluator is nil")

	// ErrNilNeighborFunc indicates that a nil neighbor enumerator was
	// passed to FindPath or InitializeStep.
	ErrNilNeighborFunc = errors.New("astar: neighbor enumerator is nil")

	// ErrBadPoolCapacity indicates that WithPoolCapacity was given a
	// negative capacity.
	ErrBadPoolCapacity = errors.New("astar: pool capacity must be non-negative")
)

// PathResult is the outcome of a search operation.
type PathResult int

const (
	// PathFound means a path from start to goal exists and has been built.
	PathFound PathResult = iota + 1
	// PathNotFound means every reachable state was expanded without
	// reaching the goal. This is a regular result, not a failure.
	PathNotFound
	// PathSearching means more work remains; call Step again.
	PathSearching
)

// String implements fmt.Stringer for PathResult.
func (r PathResult) String() string {
	switch r {
	case PathFound:
		return "found"
	case PathNotFound:
		return "not found"
	case PathSearching:
		return "searching"
	default:
		return "unknown"
	}
}

// DestinationCostFunc estimates the cost of moving from node to goal.
// It is called once per newly created search node and must be a pure
// function. For A* optimality it must be admissible (never overestimate);
// the engine does not enforce this.
type DestinationCostFunc[S comparable] func(node, goal S) float64

// AddNeighborFunc is handed to a NeighborFunc; the enumerator must call it
// once per directly reachable neighbor of the state being expanded.
type AddNeighborFunc[S comparable] func(neighbor S, moveCost float64)

// NeighborFunc enumerates the direct neighbors of a state for the generic
// Engine. It must terminate and must not mutate engine-owned state or
// retain the add callback beyond the call.
type NeighborFunc[S comparable] func(node S, add AddNeighborFunc[S])

// AddIndexedNeighborFunc is the cached-engine counterpart of
// AddNeighborFunc; every neighbor also carries its unique integer index.
type AddIndexedNeighborFunc[S comparable] func(neighbor S, index int, moveCost float64)

// IndexedNeighborFunc enumerates the direct neighbors of a state for
// CachedEngine. The index supplied for each neighbor identifies the state
// for membership and cache addressing, independent of equality on S.
type IndexedNeighborFunc[S comparable] func(node S, add AddIndexedNeighborFunc[S])

// defaultPoolCapacity is the number of search-node slots pre-sized into a
// fresh arena. Matches the block size the pool grows by.
const defaultPoolCapacity = 1000

// Options configures an engine at construction time.
//
// PoolCapacity – initial number of node slots reserved in the arena.
// Searches that touch more states grow the arena; slots are recycled
// across searches and never shrink.
type Options struct {
	PoolCapacity int
}

// Option represents a functional option for configuring an engine.
type Option func(*Options)

// WithPoolCapacity sets the initial node-arena capacity.
// Must be non-negative; negative values cause ErrBadPoolCapacity.
func WithPoolCapacity(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadPoolCapacity.Error())
		}
		o.PoolCapacity = n
	}
}

// DefaultOptions returns an Options struct with sensible defaults:
// PoolCapacity = 1000.
func DefaultOptions() Options {
	return Options{PoolCapacity: defaultPoolCapacity}
}
