package assign

import "golang.org/x/sync/errgroup"

// padSquare normalizes a rows×cols cost matrix into a size×size matrix,
// size = max(rows, cols), by zero-padding.
//
// Fill rule:
//
//	cell(i,j) = cost[i*cols+j]  if i < rows && j < cols
//	cell(i,j) = 0               otherwise (dummy row/column)
//
// Strategy selection:
//   - size > ParallelThreshold and the pool offers >1 worker: disjoint
//     contiguous row ranges are filled by independent tasks (fork-join,
//     no shared write target, no communication).
//   - otherwise: a single sequential pass.
//
// Both paths are referentially transparent: each cell depends only on its
// index pair, never on scheduling, so the output is bit-identical across
// strategies and worker counts.
//
// Complexity: O(size²) time, O(size²) memory for the result.
func padSquare(cost []float64, rows, cols, size int, p Pool) []float64 {
	padded := make([]float64, size*size) // zero-initialized: padding is free

	workers := WorkerCount(p)
	if size > ParallelThreshold && workers > 1 {
		fillParallel(padded, cost, rows, cols, size, workers)
	} else {
		fillSequential(padded, cost, rows, cols, size)
	}

	return padded
}

// fillSequential copies every real row into the padded matrix in one pass.
func fillSequential(padded, cost []float64, rows, cols, size int) {
	for i := 0; i < rows; i++ {
		copy(padded[i*size:i*size+cols], cost[i*cols:(i+1)*cols])
	}
}

// fillParallel splits the real rows into at most `workers` contiguous
// chunks and copies each chunk in its own task. Chunks are disjoint, so no
// two tasks ever touch the same cell; the join is the only synchronization.
func fillParallel(padded, cost []float64, rows, cols, size, workers int) {
	if rows == 0 {
		return // nothing but padding; already zeroed
	}

	chunk := (rows + workers - 1) / workers
	g := new(errgroup.Group)
	for lo := 0; lo < rows; lo += chunk {
		lo, hi := lo, lo+chunk
		if hi > rows {
			hi = rows
		}
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				copy(padded[i*size:i*size+cols], cost[i*cols:(i+1)*cols])
			}

			return nil
		})
	}
	// Tasks cannot fail; Wait is purely the join point.
	_ = g.Wait()
}
