// Package tilegrid defines core types, options and sentinel errors for the
// 8-direction grid pathfinder.
package tilegrid

import (
	"errors"

	"github.com/katalvlaran/pathfinder/astar"
)

// Sentinel errors for tilegrid operations.
var (
	// ErrMapWidthNotSet indicates a search was started without a positive
	// map width (see SetMapWidth / WithMapWidth).
	ErrMapWidthNotSet = errors.New("tilegrid: map width must be set to a positive value before searching")

	// ErrBadMapWidth indicates WithMapWidth was given a non-positive width.
	ErrBadMapWidth = errors.New("tilegrid: map width must be positive")
)

// Coord is a tile position on the map.
type Coord struct {
	X, Y int
}

// DestinationCostFunc estimates the remaining cost from node to goal.
// Must be admissible for optimal paths; not enforced.
type DestinationCostFunc = astar.DestinationCostFunc[Coord]

// MoveCostFunc computes the exact cost of the direct move from one tile to
// an adjacent tile. Pure function over the coordinate pair.
type MoveCostFunc func(from, to Coord) float64

// MoveBlockedFunc reports whether the direct move from one tile to an
// adjacent tile is impossible. Pure function over the coordinate pair.
type MoveBlockedFunc func(from, to Coord) bool

// Options configures a Pathfinder at construction time.
//
// MapWidth     – row-major indexing width; must be positive before the
// first search. PoolCapacity – initial node-arena capacity, forwarded to
// the underlying astar engine.
type Options struct {
	MapWidth     int
	PoolCapacity int
}

// Option represents a functional option for configuring a Pathfinder.
type Option func(*Options)

// WithMapWidth sets the map width used for row-major indexing.
// Must be positive; non-positive values cause ErrBadMapWidth.
func WithMapWidth(width int) Option {
	return func(o *Options) {
		if width <= 0 {
			panic(ErrBadMapWidth.Error())
		}
		o.MapWidth = width
	}
}

// WithPoolCapacity sets the initial node-arena capacity of the underlying
// engine. Must be non-negative; negative values cause
// astar.ErrBadPoolCapacity.
func WithPoolCapacity(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(astar.ErrBadPoolCapacity.Error())
		}
		o.PoolCapacity = n
	}
}

// DefaultOptions returns an Options struct with sensible defaults:
// MapWidth unset (0, must be provided before searching) and the astar
// default pool capacity.
func DefaultOptions() Options {
	return Options{
		MapWidth:     0,
		PoolCapacity: astar.DefaultOptions().PoolCapacity,
	}
}
