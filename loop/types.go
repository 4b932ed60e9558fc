package loop

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/pipeloop/pipe"
)

// Sentinel errors returned by Build.
var (
	// ErrOpenStart indicates the resolved start cell cannot close a cycle.
	ErrOpenStart = errors.New("loop: start cell has fewer than two connections")

	// ErrNotCycle indicates the traversal did not produce a single simple cycle.
	ErrNotCycle = errors.New("loop: traversal did not form a closed simple cycle")

	// ErrOptionViolation indicates an invalid Option was supplied.
	ErrOptionViolation = errors.New("loop: invalid option supplied")
)

// GeometryError reports a diagram whose pipes do not form the expected loop.
// At is the cell where the defect was detected.
type GeometryError struct {
	At  pipe.Point
	Err error
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("geometry error at %v: %v", e.At, e.Err)
}

// Unwrap exposes the underlying sentinel for errors.Is.
func (e *GeometryError) Unwrap() error { return e.Err }

// Strategy selects the frontier discipline used by Build.
type Strategy int

const (
	// StrategyHeap orders the frontier with a binary min-heap on distance.
	StrategyHeap Strategy = iota
	// StrategyLevelOrder uses a FIFO queue; valid because all edges weigh 1.
	StrategyLevelOrder
)

func (s Strategy) String() string {
	switch s {
	case StrategyHeap:
		return "heap"
	case StrategyLevelOrder:
		return "level-order"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy maps "heap" or "level-order" to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "heap", "":
		return StrategyHeap, nil
	case "level-order", "bfs":
		return StrategyLevelOrder, nil
	}
	return 0, fmt.Errorf("%w: unknown strategy %q", ErrOptionViolation, name)
}

// Options configures Build.
type Options struct {
	// Ctx allows cancellation; checked once per frontier pop.
	Ctx context.Context

	// Strategy picks the frontier discipline.
	Strategy Strategy

	// OnVisit is called when a cell is finalized with its distance.
	OnVisit func(p pipe.Point, dist int)

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Build.
type Option func(*Options)

// DefaultOptions returns Options with a background context, the heap
// strategy and a no-op visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Strategy: StrategyHeap,
		OnVisit:  func(pipe.Point, int) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithStrategy selects the frontier discipline.
// Unknown values surface as ErrOptionViolation from Build.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		switch s {
		case StrategyHeap, StrategyLevelOrder:
			o.Strategy = s
		default:
			o.err = fmt.Errorf("%w: unknown strategy %d", ErrOptionViolation, int(s))
		}
	}
}

// WithOnVisit registers a callback run when a cell's distance is final.
func WithOnVisit(fn func(p pipe.Point, dist int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
