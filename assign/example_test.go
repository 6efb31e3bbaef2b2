package assign_test

import (
	"fmt"

	"github.com/martijnenco/assignment/assign"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleSolve
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Two workers, three jobs. Worker 0 is cheapest on job 0, worker 1 on
//	job 1; job 2 stays unstaffed (more jobs than workers).
//
// Use case:
//
//	Any task/agent pairing where the cost of every pairing is known.
//
// Complexity: O(size³), size = max(rows, cols)
func ExampleSolve() {
	cost := []float64{
		1, 5, 2,
		3, 1, 4,
	}

	result, err := assign.Solve(cost, 2, 3, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(result)
	// Output:
	// [0 1]
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleSolveTotal
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Four couriers, three deliveries. One courier inevitably idles and is
//	reported as Unassigned (-1); the chosen three minimize the summed
//	travel cost.
func ExampleSolveTotal() {
	cost := []float64{
		4, 1, 3,
		2, 0, 5,
		3, 2, 2,
		8, 7, 4,
	}

	result, total, err := assign.SolveTotal(cost, 4, 3, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("assignment=%v total=%.0f\n", result, total)
	// Output:
	// assignment=[1 0 2 -1] total=5
}

// ExampleSolveMatrix demonstrates the 2-D convenience surface.
func ExampleSolveMatrix() {
	result, err := assign.SolveMatrix([][]float64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	}, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(result)
	// Output:
	// [0 1 2]
}
