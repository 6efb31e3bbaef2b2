// Package assign defines options, the worker-pool handle, and sentinel
// errors for the assignment solver.
package assign

import (
	"errors"
	"runtime"
)

// Sentinel errors for assignment operations. All public entry points return
// these sentinels (optionally wrapped with context); tests and callers match
// them via errors.Is. The solver never panics on user-triggered conditions.
var (
	// ErrNegativeDimension indicates rows or cols below zero.
	ErrNegativeDimension = errors.New("assign: dimensions must be >= 0")

	// ErrDimensionMismatch indicates len(cost) != rows*cols.
	ErrDimensionMismatch = errors.New("assign: cost length does not match rows*cols")

	// ErrNonFinite indicates a NaN or ±Inf cost entry. Non-finite costs make
	// the reduced-cost arithmetic meaningless, so they are rejected up front.
	ErrNonFinite = errors.New("assign: cost entries must be finite")

	// ErrRagged indicates a 2-D cost matrix whose rows differ in length.
	ErrRagged = errors.New("assign: all cost rows must have the same length")
)

// Pool reports the size of an externally owned worker pool. The solver only
// observes the pool to size its fork-join padding fill — it never creates,
// resizes, or tears one down. Hosting runtimes with their own scheduler can
// satisfy this interface to cap the solver's fan-out.
type Pool interface {
	// Workers returns the number of workers currently usable. Values < 1
	// are treated as 1 (sequential).
	Workers() int
}

// GoroutinePool is the process-default Pool, sized by GOMAXPROCS.
// It carries no state; the zero value is ready to use.
type GoroutinePool struct{}

// Workers returns the current GOMAXPROCS setting.
func (GoroutinePool) Workers() int { return runtime.GOMAXPROCS(0) }

// ThreadsAvailable reports whether p offers more than one usable worker,
// i.e. whether the parallel padding fill can help at all. A nil p is
// answered for the process-default GoroutinePool.
func ThreadsAvailable(p Pool) bool {
	return WorkerCount(p) > 1
}

// WorkerCount returns the number of workers p currently offers, never below
// one. A nil p is answered for the process-default GoroutinePool.
func WorkerCount(p Pool) int {
	if p == nil {
		p = GoroutinePool{}
	}
	if n := p.Workers(); n > 1 {
		return n
	}

	return 1
}

// Options configures Solve.
//
// Fields:
//   - Pool — worker pool observed by the padding fill. Nil means the
//     process-default GoroutinePool.
//
// Example:
//
//	opts := assign.DefaultOptions()
//	opts.Pool = myRuntimePool
//	result, err := assign.Solve(cost, rows, cols, &opts)
type Options struct {
	Pool Pool
}

// DefaultOptions returns Options with the process-default pool.
func DefaultOptions() Options {
	return Options{Pool: GoroutinePool{}}
}

// pool resolves the effective Pool for a possibly nil Options value.
func (o *Options) pool() Pool {
	if o == nil || o.Pool == nil {
		return GoroutinePool{}
	}

	return o.Pool
}
