// Package assign computes minimum-cost one-to-one assignments between the
// rows and columns of a numeric cost matrix (the linear assignment problem).
//
// 🚀 What is the assignment problem?
//
//	Given cost[i][j] — the price of pairing row i with column j — find a
//	matching where every row gets at most one column, every column at most
//	one row, and the total price is the smallest achievable. It shows up in:
//	  • Task / worker scheduling
//	  • Object tracking (detections ↔ existing tracks)
//	  • Image mosaics (cells ↔ tile inventory)
//	  • Resource and slot allocation of every kind
//
// ✨ Key features:
//   - Hungarian method (Kuhn–Munkres) with dual potentials: exact, O(n³)
//   - Rectangular matrices accepted; zero-padded to square internally
//   - Unmatched rows reported as Unassigned (-1), never silently dropped
//   - Parallel padding fill above ParallelThreshold via an injected Pool
//   - Strict validation: dimension and finiteness errors, fail-fast
//
// ⚙️ Usage:
//
//	import "github.com/martijnenco/assignment/assign"
//
//	cost := []float64{
//	  1, 5, 2,
//	  3, 1, 4,
//	}
//	result, err := assign.Solve(cost, 2, 3, nil)
//	// result[0] = 0, result[1] = 1 — row i is assigned column result[i]
//
// Performance:
//
//   - Time:   O(size³), size = max(rows, cols)
//   - Memory: O(size²) for the padded matrix, O(size) scratch
//
// The solver is a pure function: no state survives a call, and concurrent
// calls from multiple goroutines are safe.
package assign
