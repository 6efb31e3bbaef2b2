// Package assign - public entry points for the assignment solver.
//
// This file provides the canonical surface:
//
//   - Solve:       flat row-major cost slice + explicit dimensions.
//   - SolveTotal:  Solve plus the optimal total cost.
//   - SolveMatrix: convenience for rectangular [][]float64 inputs.
//   - TotalCost:   price an already-computed assignment.
//
// Design principles:
//   - Strict sentinels: validation failures return errors from types.go,
//     matched via errors.Is; no partial or degraded results.
//   - Determinism: identical input yields a matching of identical total
//     cost on every call, regardless of pool size or scheduling.
//   - Statelessness: every working array is allocated inside the call and
//     owned by it; concurrent Solve calls never interact.
package assign

import "math"

// Solve computes a minimum-cost assignment for a rows×cols cost matrix
// given as a flat row-major slice (cost[i*cols+j] prices row i against
// column j). It returns a slice of length rows where entry i is the
// 0-indexed column assigned to row i, or Unassigned (-1) when row i was
// matched only against zero-cost padding.
//
// opts may be nil, which means DefaultOptions.
//
// Degenerate cases: rows == 0 yields an empty result; cols == 0 yields a
// result of length rows with every entry Unassigned.
//
// Errors: ErrNegativeDimension, ErrDimensionMismatch, ErrNonFinite.
//
// Complexity: O(size³) time, size = max(rows, cols).
func Solve(cost []float64, rows, cols int, opts *Options) ([]int, error) {
	result, _, err := SolveTotal(cost, rows, cols, opts)

	return result, err
}

// SolveTotal is Solve plus the minimum total cost over all perfect
// matchings of the zero-padded square matrix. Padding cells cost zero, so
// the total equals the summed real costs of the returned assignment.
func SolveTotal(cost []float64, rows, cols int, opts *Options) ([]int, float64, error) {
	if err := validate(cost, rows, cols); err != nil {
		return nil, 0, err
	}
	if rows == 0 {
		return []int{}, 0, nil
	}

	size := rows
	if cols > size {
		size = cols
	}

	padded := padSquare(cost, rows, cols, size, opts.pool())
	rowOf := solveHungarian(padded, size)
	total := matchingCost(padded, rowOf, size)

	return project(rowOf, rows, cols), total, nil
}

// SolveMatrix computes a minimum-cost assignment for a 2-D cost matrix.
// Every row must have the same length; rows may be empty only if all are.
//
// Errors: ErrRagged, plus everything Solve returns.
func SolveMatrix(cost [][]float64, opts *Options) ([]int, error) {
	rows := len(cost)
	cols := 0
	if rows > 0 {
		cols = len(cost[0])
	}

	flat := make([]float64, 0, rows*cols)
	for _, row := range cost {
		if len(row) != cols {
			return nil, ErrRagged
		}
		flat = append(flat, row...)
	}

	return Solve(flat, rows, cols, opts)
}

// TotalCost prices an assignment previously returned by Solve against the
// original flat cost matrix. Unassigned rows contribute nothing.
//
// Complexity: O(rows).
func TotalCost(cost []float64, rows, cols int, result []int) float64 {
	var total float64
	for i := 0; i < rows && i < len(result); i++ {
		if j := result[i]; j != Unassigned {
			total += cost[i*cols+j]
		}
	}

	return total
}

// validate enforces the Solve preconditions: non-negative dimensions, a
// cost slice of exactly rows*cols entries, and finite values throughout.
func validate(cost []float64, rows, cols int) error {
	if rows < 0 || cols < 0 {
		return ErrNegativeDimension
	}
	if len(cost) != rows*cols {
		return ErrDimensionMismatch
	}
	for _, c := range cost {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return ErrNonFinite
		}
	}

	return nil
}
