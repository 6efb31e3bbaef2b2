package assign

import "math"

// solveHungarian — Hungarian method (Kuhn–Munkres), potential formulation.
//
// Description:
//
//	Computes a minimum-cost perfect matching of a size×size cost matrix by
//	successive shortest augmenting paths. Dual potentials u (rows) and
//	v (columns) keep every tentatively matched pair at reduced cost zero,
//	which certifies optimality of each partial matching as it grows.
//
// Algorithm Outline:
//  1. Start with u = v = 0 and every column free.
//  2. For each row i in ascending order, grow an alternating search tree
//     from a synthetic virtual column that tentatively holds i:
//     a. Visit the current column; let i0 be the row it holds.
//     b. For every unvisited column j, relax its tracked minimum with the
//     reduced cost cost[i0][j] − u[i0] − v[j], recording the current
//     column as j's predecessor on improvement.
//     c. Pick delta = smallest tracked minimum and its column j1
//     (first-encountered on ties, ascending scan).
//     d. Shift potentials: visited columns get u[rowOf] += delta,
//     v −= delta; unvisited trackers drop by delta. Tree edges stay at
//     reduced cost zero and dual feasibility is preserved.
//     e. Advance to j1; stop once it is free.
//  3. Walk the recorded predecessors backward from the free column,
//     handing each column the row held by its predecessor, until the
//     virtual column is reached. The matching grows by exactly one row.
//
// Invariant: after processing row i, exactly i+1 columns are matched and
// form a minimum-cost matching of rows 0..i, consistent with u and v.
//
// Ties between equally cheap matchings are resolved by scan order; which
// optimum is returned is an artifact, only the total cost is contractual.
//
// Complexity:
//
//	Time   = O(size³)
//	Memory = O(size) scratch beyond the matrix, allocated fresh per call
//
// Returns rowOf, where rowOf[j] is the row matched to column j. Every
// column 0..size-1 holds a distinct row once the loop completes.
func solveHungarian(cost []float64, size int) []int {
	virtual := size // synthetic starting column for every augmenting search

	u := make([]float64, size)    // row potentials
	v := make([]float64, size+1)  // column potentials, incl. virtual
	rowOf := make([]int, size+1)  // match map: column → row, freeRow if open
	way := make([]int, size)      // predecessor column on the current path
	minv := make([]float64, size) // per-column minimal reduced cost tracker
	used := make([]bool, size+1)  // visited columns, incl. virtual

	for j := range rowOf {
		rowOf[j] = freeRow
	}

	for i := 0; i < size; i++ {
		// New augmenting search: the virtual column tentatively holds row i.
		rowOf[virtual] = i
		j0 := virtual

		for j := 0; j < size; j++ {
			minv[j] = math.Inf(1)
			used[j] = false
		}
		used[virtual] = false

		for {
			used[j0] = true
			i0 := rowOf[j0]
			delta := math.Inf(1)
			j1 := -1

			// Relax all unvisited columns against the newly exposed row i0.
			for j := 0; j < size; j++ {
				if used[j] {
					continue
				}
				if cur := cost[i0*size+j] - u[i0] - v[j]; cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}

			// Dual update: tree nodes shift by delta, trackers follow.
			for j := 0; j <= size; j++ {
				if used[j] {
					u[rowOf[j]] += delta
					v[j] -= delta
				} else if j < size {
					minv[j] -= delta
				}
			}

			j0 = j1
			if rowOf[j0] == freeRow {
				break // free column reached: augmenting path complete
			}
		}

		// Augment: pull each column's row from its predecessor, back to the
		// virtual source. Row i enters the matching at the far end.
		for j0 != virtual {
			j1 := way[j0]
			rowOf[j0] = rowOf[j1]
			j0 = j1
		}
	}

	return rowOf[:size]
}

// matchingCost prices the perfect matching rowOf against the padded matrix.
// O(size); used to report the optimal total alongside the assignment.
func matchingCost(cost []float64, rowOf []int, size int) float64 {
	var total float64
	for j := 0; j < size; j++ {
		total += cost[rowOf[j]*size+j]
	}

	return total
}
