// Package assign shared constants, kept in one place so defaults and
// sentinels never drift between the builder, the solver, and tests.
package assign

// Unassigned marks a result row that received no real column — it was
// matched only against zero-cost padding (possible whenever rows > cols).
const Unassigned = -1

// ParallelThreshold is the padded dimension above which the cost-matrix
// builder distributes row filling across pool workers. Below it, goroutine
// dispatch overhead dominates the plain copy loop (empirically around 50).
const ParallelThreshold = 50

// freeRow marks a column not yet matched to any row inside the solver's
// match map. Kept distinct from Unassigned: freeRow is solver scratch,
// Unassigned is part of the public result contract.
const freeRow = -1
